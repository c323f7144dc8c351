package deepl

import "errors"

var (
	ErrInvalidConfig = errors.New("deepl: invalid configuration")
)
