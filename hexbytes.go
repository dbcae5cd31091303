// Package hexbytes decodes hexadecimal strings into raw bytes. Input is
// case-insensitive and carries no 0x prefix, separators or whitespace.
package hexbytes

import (
	"github.com/pkg/errors"
)

// DecodeDigit returns the nibble a single ASCII hex digit encodes.
func DecodeDigit(c byte) (byte, error) {
	n, ok := decodeDigit(c)
	if !ok {
		return 0, errors.WithStack(&InvalidByteError{Byte: c, Index: -1})
	}
	return n, nil
}

func decodeDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Decode returns the bytes encoded by s. The result has length len(s)/2 and
// preserves pair order; an empty string decodes to an empty slice.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.Wrapf(ErrOddLength, "length %d", len(s))
	}
	out := make([]byte, len(s)/2)
	if err := decodePairs(out, s); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeInto fills dst with the bytes encoded by s. The input must encode
// exactly len(dst) bytes; a shorter or longer input is an error, not a
// partial fill.
func DecodeInto(dst []byte, s string) error {
	if len(s)%2 != 0 {
		return errors.Wrapf(ErrOddLength, "length %d", len(s))
	}
	if len(s) != 2*len(dst) {
		return errors.WithStack(&LengthMismatchError{DstLen: len(dst), Implied: len(s) / 2})
	}
	return decodePairs(dst, s)
}

func decodePairs(dst []byte, s string) error {
	for i := 0; i < len(dst); i++ {
		hi, ok := decodeDigit(s[2*i])
		if !ok {
			return errors.WithStack(&InvalidByteError{Byte: s[2*i], Index: 2 * i})
		}
		lo, ok := decodeDigit(s[2*i+1])
		if !ok {
			return errors.WithStack(&InvalidByteError{Byte: s[2*i+1], Index: 2*i + 1})
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

// MustDecode is Decode for inputs known to be well-formed, such as
// package-level literals. It panics on malformed input so that a bad
// literal fails at process init.
func MustDecode(s string) []byte {
	out, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return out
}

// MustDecodeInto is DecodeInto with the same panic policy as MustDecode.
// Slicing a fixed-size array makes it fill [N]byte values in place:
//
//	var key [4]byte
//	hexbytes.MustDecodeInto(key[:], "deadbeef")
func MustDecodeInto(dst []byte, s string) {
	if err := DecodeInto(dst, s); err != nil {
		panic(err)
	}
}
