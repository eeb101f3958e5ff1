package engine

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned before any table is allocated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTableCorruption means a traceback met an unset cell or a parent that
	// cannot occur on a correctly filled table.
	ErrTableCorruption = errors.New("table corruption")
)

func invalidf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

func corruptf(format string, args ...any) error {
	return errors.Wrapf(ErrTableCorruption, format, args...)
}
