package repository

import "errors"

// Returned by every repository when the requested row does not exist.
var ErrNotFound = errors.New("not found")
