package domain

import "errors"

// ErrNotFound marks a lookup whose id does not exist. Handlers translate it
// to a 404; everything else is a transport or composition failure.
var ErrNotFound = errors.New("record not found")
