package model

import (
	"errors"
	"fmt"
)

var (
	ErrArgument       = errors.New("invalid argument")
	ErrValidation     = errors.New("invalid scanline range")
	ErrConfigNotFound = errors.New("config file not found")
	ErrPathNotFound   = errors.New("path not found")
)

// ProcessingError marks a batch run as failed because of a single item.
// Unwrap exposes the original error from the processing call.
type ProcessingError struct {
	Item string
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing %s: %s", e.Item, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
