package ui

import "github.com/AlecAivazis/survey/v2"

// NewBranchPickerWith creates a picker answering through ask.
func NewBranchPickerWith(ask func(prompt survey.Prompt, response any, opts ...survey.AskOpt) error) *BranchPicker {
	return &BranchPicker{ask: ask}
}

// NewBrowserSinkWith creates a browser sink calling open.
func NewBrowserSinkWith(open func(url string) error) *BrowserSink {
	return &BrowserSink{open: open}
}

// NewClipboardSinkWith creates a clipboard sink calling write.
func NewClipboardSinkWith(write func(text string) error) *ClipboardSink {
	return &ClipboardSink{write: write}
}
