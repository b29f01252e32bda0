package errs

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyCheckedOut = errors.New("book already checked out by user")
	ErrQuantityExhausted = errors.New("no copies available")
	ErrOutstandingFee    = errors.New("outstanding fees")
	ErrDuplicateReview   = errors.New("review already created")
)
