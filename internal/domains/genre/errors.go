package genre

import "errors"

var (
	ErrGenreNotFound = errors.New("genre not found")
)
