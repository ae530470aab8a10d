package nativelib

import (
	"github.com/dropbox/godropbox/errors"
)

var (
	ErrNullReference = errors.New("null reference passed across the native boundary")
	ErrNullElement   = errors.New("null element in string array")
	ErrHostFailure   = errors.New("host runtime call failed")
)

// IsNullReference reports whether err was caused by a null reference,
// either the array itself or one of its elements.
func IsNullReference(err error) bool {
	return errors.IsError(err, ErrNullReference) || errors.IsError(err, ErrNullElement)
}
