package vocab

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateWord means the user already owns a word with that prompt.
	ErrDuplicateWord = errors.New("word already exists")
	ErrNotFound      = errors.New("word not found")
	ErrInvalidUser   = errors.New("invalid user id")
)

// StorageError wraps any database failure that is not an expected conflict.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage failure: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
