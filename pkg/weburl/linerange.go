package weburl

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	errInvalidLineSpec = errors.New("invalid line specification")

	// ErrInvalidLineSpec is returned by [ParseLineSpec] for malformed input.
	ErrInvalidLineSpec = errInvalidLineSpec

	// path:42 or path:10-20, the colon form used by compilers and grep
	locationSuffix = regexp.MustCompile(`^(.+?):([Ll]?\d+(?:[-:][Ll]?\d+)?)$`)
)

// LineRange is a 1-based inclusive line selection. Zero means absent:
// End == 0 is a single line, Start == 0 is no line at all.
type LineRange struct {
	Start int
	End   int
}

// SingleLine returns the zero-width range of one line, as produced by a
// context menu invocation on a line.
func SingleLine(line int) *LineRange {
	r := LineRange{Start: line}.Normalize()
	return &r
}

// NewLineRange returns the normalized range start..end.
func NewLineRange(start, end int) *LineRange {
	r := LineRange{Start: start, End: end}.Normalize()
	return &r
}

// Normalize swaps a reversed selection and collapses End when it does not
// lie after Start, so a one-line selection is never rendered as a range.
// A range without a valid Start becomes the zero range.
func (r LineRange) Normalize() LineRange {
	if r.Start <= 0 {
		return LineRange{}
	}
	if r.End > 0 && r.End < r.Start {
		r.Start, r.End = r.End, r.Start
	}
	if r.End <= r.Start {
		r.End = 0
	}
	return r
}

// IsZero reports whether the range selects no line.
func (r LineRange) IsZero() bool {
	return r.Start <= 0
}

// IsRange reports whether the range spans more than one line.
func (r LineRange) IsRange() bool {
	return r.Start > 0 && r.End > r.Start
}

func (r LineRange) String() string {
	switch {
	case r.IsZero():
		return ""
	case r.IsRange():
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	default:
		return strconv.Itoa(r.Start)
	}
}

// ParseLineSpec parses "42", "10-20", "10:20" or the anchor-like "L10-L20".
// An empty spec returns nil and no error.
func ParseLineSpec(spec string) (*LineRange, error) {
	spec = strings.TrimSpace(spec)
	spec = strings.TrimPrefix(spec, "#")
	if spec == "" {
		return nil, nil
	}

	startSpec, endSpec, hasEnd := strings.Cut(spec, "-")
	if !hasEnd {
		startSpec, endSpec, hasEnd = strings.Cut(spec, ":")
	}

	start, err := parseLine(startSpec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errInvalidLineSpec, spec, err)
	}

	end := 0
	if hasEnd {
		if end, err = parseLine(endSpec); err != nil {
			return nil, fmt.Errorf("%w %q: %w", errInvalidLineSpec, spec, err)
		}
	}

	return NewLineRange(start, end), nil
}

func parseLine(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "L"), "l")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a line number: %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("line numbers start at 1, got %d", n)
	}
	return n, nil
}

// SplitLocation splits "path:10-20" into the path and its line range. An
// argument without a line suffix is returned unchanged with a nil range.
func SplitLocation(arg string) (string, *LineRange) {
	m := locationSuffix.FindStringSubmatch(arg)
	if m == nil {
		return arg, nil
	}
	lines, err := ParseLineSpec(m[2])
	if err != nil {
		return arg, nil
	}
	return m[1], lines
}
