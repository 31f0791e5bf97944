package debugger

import "errors"

var ErrNoFrame = errors.New("no frame to return from")
