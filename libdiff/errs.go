package libdiff

import "errors"

var ErrDiff = errors.New("diff error")
