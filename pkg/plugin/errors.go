package plugin

import "errors"

var (
	ErrNilHost       = errors.New("plugin: host must not be nil")
	ErrNilTranslator = errors.New("plugin: translator must not be nil")
)
