package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("invalid input")
	ErrNoCredential  = errors.New("no credential provided")
	ErrBadCredential = errors.New("invalid or expired credential")
	ErrNotFound      = errors.New("not found")
	ErrMediaUpload   = errors.New("media upload failed")
	ErrStore         = errors.New("store unavailable")
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}
