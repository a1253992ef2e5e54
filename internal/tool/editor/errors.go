package editor

import "errors"

var (
	ErrPathRequired    = errors.New("path is required")
	ErrContentTooLarge = errors.New("content exceeds the configured size limit")
	ErrOldStrRequired  = errors.New("old_str is required and must be non-empty")
	ErrNegativeLine    = errors.New("insert_line must not be negative")
	ErrInvalidRange    = errors.New("view_range must be [start, end] with 1 <= start <= end")
)
