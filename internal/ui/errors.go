package ui

import "errors"

var errClipboardUnsupported = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")
