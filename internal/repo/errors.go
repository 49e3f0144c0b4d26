package repo

import "errors"

// ErrNotFound is returned when a statement matched no User/Product node.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a create hits a uniqueness constraint.
var ErrConflict = errors.New("already exists")
