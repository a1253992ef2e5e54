package store

import "errors"

var (
	ErrEmptyDocument = errors.New("session document is empty")
)
