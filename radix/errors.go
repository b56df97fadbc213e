package radix

import "github.com/pkg/errors"

var (
	// ErrInvalidBits is returned by constructors for a key width outside [1..64].
	ErrInvalidBits = errors.New("radix: invalid number of bits")
	// ErrInvalidRadix is returned by constructors for a radix outside [1..MaxRadix].
	ErrInvalidRadix = errors.New("radix: invalid radix")
	// ErrKeyRange is returned when a key has significant bits beyond the tree's width.
	ErrKeyRange = errors.New("radix: key out of range")
	// ErrNilLeaf is returned when a creation function reports neither a leaf nor an error.
	ErrNilLeaf = errors.New("radix: create returned a nil leaf")
	// ErrDeleted is returned by a tree that has been torn down.
	ErrDeleted = errors.New("radix: tree deleted")
)
