package ui

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/sgaunet/git-weblink/pkg/action"
)

// BrowserSink opens the URL in the default browser.
type BrowserSink struct {
	open func(url string) error
}

// NewBrowserSink creates a sink backed by the system URL handler.
func NewBrowserSink() *BrowserSink {
	return &BrowserSink{open: browser.OpenURL}
}

func (s *BrowserSink) Kind() action.SinkKind { return action.SinkBrowser }

func (s *BrowserSink) Action() string { return "opening browser" }

func (s *BrowserSink) Deliver(url string) error {
	return s.open(url)
}

func (s *BrowserSink) SuccessMessage(url string) string {
	return "Opened " + url
}

// ClipboardSink copies the URL to the system clipboard.
type ClipboardSink struct {
	write func(text string) error
}

// NewClipboardSink creates a sink backed by the system clipboard.
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{write: writeClipboard}
}

func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

func (s *ClipboardSink) Kind() action.SinkKind { return action.SinkClipboard }

func (s *ClipboardSink) Action() string { return "copying to clipboard" }

func (s *ClipboardSink) Deliver(url string) error {
	return s.write(url)
}

func (s *ClipboardSink) SuccessMessage(url string) string {
	return "Copied to clipboard: " + url
}

// PrintSink writes the URL on its own line, for scripts and pipes.
type PrintSink struct {
	w io.Writer
}

// NewPrintSink creates a sink writing to w.
func NewPrintSink(w io.Writer) *PrintSink {
	return &PrintSink{w: w}
}

func (s *PrintSink) Kind() action.SinkKind { return action.SinkPrint }

func (s *PrintSink) Action() string { return "writing output" }

func (s *PrintSink) Deliver(url string) error {
	_, err := fmt.Fprintln(s.w, url)
	return err
}

func (s *PrintSink) SuccessMessage(string) string {
	return "URL written"
}

// Sinks returns one sink of each kind, printing to out.
func Sinks(out io.Writer) []action.Sink {
	return []action.Sink{NewBrowserSink(), NewClipboardSink(), NewPrintSink(out)}
}
