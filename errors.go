package modswitch

import "errors"

var (
	ErrDirectoryNotFound = errors.New("mods directory not found")
	ErrUnknownMod        = errors.New("unknown mod")
	ErrParse             = errors.New("malformed aggregate file")
)
