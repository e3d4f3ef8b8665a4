// Package base16 provides encoding and decoding for hexadecimal strings.
package base16

import (
	"github.com/iamNilotpal/checksum/pkg/errors"
)

// Hexadecimal alphabets. Each byte encodes to two characters: the high
// nibble indexed first, then the low nibble.
const (
	uppercaseAlphabet = "0123456789ABCDEF"
	lowercaseAlphabet = "0123456789abcdef"
)

// Encode converts data into hexadecimal characters, two per input byte,
// in order. The lowercase flag selects the lowercase alphabet; the
// default is uppercase. The result is always exactly twice the length
// of data. Encoding cannot fail.
func Encode(data []byte, lowercase bool) []byte {
	return EncodeRange(data, 0, len(data), lowercase)
}

// EncodeToString is Encode returning a string.
func EncodeToString(data []byte, lowercase bool) string {
	return string(Encode(data, lowercase))
}

// EncodeRange encodes exactly length bytes of data starting at offset.
// The caller guarantees offset+length <= len(data); violating that
// panics with a slice bounds error rather than truncating.
func EncodeRange(data []byte, offset, length int, lowercase bool) []byte {
	alphabet := uppercaseAlphabet
	if lowercase {
		alphabet = lowercaseAlphabet
	}

	src := data[offset : offset+length]
	buffer := make([]byte, 2*len(src))

	for i, b := range src {
		buffer[2*i] = alphabet[b>>4]
		buffer[2*i+1] = alphabet[b&0x0F]
	}

	return buffer
}

// Decode converts hexadecimal characters back into the bytes they
// represent. The result is half the length of data, as two characters
// encode one byte. Digits are accepted case-insensitively. Returns an
// InvalidInputError if data has an odd number of characters or contains
// a character outside 0-9a-fA-F.
func Decode(data []byte) ([]byte, error) {
	return DecodeRange(data, 0, len(data))
}

// DecodeString is Decode over the bytes of input.
func DecodeString(input string) ([]byte, error) {
	return Decode([]byte(input))
}

// DecodeRange decodes exactly length characters of data starting at
// offset, with the same bounds contract as EncodeRange. Reported
// character positions are indexes into data, not into the range.
func DecodeRange(data []byte, offset, length int) ([]byte, error) {
	if length%2 != 0 {
		return nil, errors.NewOddLengthError()
	}

	buffer := make([]byte, length/2)

	for i := range buffer {
		pos := offset + 2*i

		high, err := toDigit(data[pos], pos)
		if err != nil {
			return nil, err
		}

		low, err := toDigit(data[pos+1], pos+1)
		if err != nil {
			return nil, err
		}

		buffer[i] = high<<4 | low
	}

	return buffer, nil
}

// toDigit converts a single hexadecimal character to its value.
func toDigit(char byte, position int) (byte, error) {
	switch {
	case char >= '0' && char <= '9':
		return char - '0', nil
	case char >= 'a' && char <= 'f':
		return char - 'a' + 10, nil
	case char >= 'A' && char <= 'F':
		return char - 'A' + 10, nil
	default:
		return 0, errors.NewInvalidCharacterError(char, position)
	}
}
