package core

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid config")
)
