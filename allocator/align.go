package allocator

import "github.com/QuangTung97/smemlayout/errors"

// IsPowerOfTwo reports whether n is a positive power of two
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AlignUp rounds n up to a multiple of alignment, which must be a power of two
func AlignUp(n int, alignment int) int {
	mask := alignment - 1
	return (n + mask) &^ mask
}

// PaddedSize rounds size up to alignment, failing when alignment is not a
// positive power of two.
func PaddedSize(size int, alignment int) (int, error) {
	if !IsPowerOfTwo(alignment) {
		return 0, errors.InvalidAlignment(nil, alignment)
	}
	return AlignUp(size, alignment), nil
}
