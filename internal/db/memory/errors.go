package memory

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrOutOfRange   = errors.New("index out of range")
)
