package hexbytes

import (
	"fmt"
	"github.com/pkg/errors"
)

// ErrOddLength is returned when the input's length is not a multiple of two.
var ErrOddLength = errors.New("hex string of odd length")

// InvalidByteError reports a byte outside 0-9, a-f, A-F. Index is the byte's
// position in the input string, or -1 when a single digit was decoded.
type InvalidByteError struct {
	Byte  byte
	Index int
}

func (e *InvalidByteError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid hex byte %q", e.Byte)
	}
	return fmt.Sprintf("invalid hex byte %q at index %d", e.Byte, e.Index)
}

// LengthMismatchError reports a destination buffer whose size disagrees with
// the number of bytes the input encodes.
type LengthMismatchError struct {
	DstLen  int
	Implied int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("destination holds %d bytes but input encodes %d", e.DstLen, e.Implied)
}
