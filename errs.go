package screp

import "errors"

var (
	ErrParse   = errors.New("replay parse error")
	ErrNoTree  = errors.New("parser returned no tree")
	ErrOptions = errors.New("invalid options")
)
