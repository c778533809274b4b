package core

import (
	"errors"
)

// Sentinel errors
var (
	ErrInvalidSong    = errors.New("invalid song configuration")
	ErrProfileCorrupt = errors.New("corrupt profile data")
)
