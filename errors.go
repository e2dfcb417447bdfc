package chainmap

import "errors"

// ErrInvalidCapacity is returned by the constructors when the requested
// initial capacity is not a positive integer.
var ErrInvalidCapacity = errors.New("chainmap: capacity must be positive")

// ErrNilHashFunc is returned by the constructors when WithHashFunc is given nil.
var ErrNilHashFunc = errors.New("chainmap: hash function is nil")
