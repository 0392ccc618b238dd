// Package password implements the game's save and password section
// codec: a salt stream, a prefix-xor chain and a 6 bit checksum over 8
// byte sections. The checksum recalculator relies on Encode being the
// exact inverse of the validation arithmetic the patched game runs.
package password

import (
	"errors"
	"fmt"
)

// SectionSize is the size of one encoded section.
const SectionSize = 8

// ErrChecksum is returned when a decoded section's checksum does not
// match its payload.
var ErrChecksum = errors.New("section checksum mismatch")

// saltTable is the 64 entry xor stream the game indexes with the salt
// seed of each section.
var saltTable = [64]byte{
	0x1f, 0x3a, 0x06, 0x3f, 0x21, 0x3f, 0x30, 0x37,
	0x1a, 0x01, 0x20, 0x3f, 0x35, 0x03, 0x29, 0x2b,
	0x3e, 0x3f, 0x01, 0x00, 0x03, 0x2c, 0x37, 0x07,
	0x3d, 0x11, 0x1e, 0x34, 0x3f, 0x19, 0x30, 0x28,
	0x37, 0x37, 0x3c, 0x0d, 0x1e, 0x31, 0x0c, 0x05,
	0x35, 0x11, 0x3f, 0x24, 0x3f, 0x3b, 0x3f, 0x26,
	0x3b, 0x33, 0x3c, 0x39, 0x2e, 0x3e, 0x31, 0x08,
	0x38, 0x1f, 0x00, 0x37, 0x19, 0x24, 0x12, 0x00,
}

func saltByte(i byte) byte {
	return saltTable[i&0x3f]
}

// Checksum returns the 6 bit sum over the seven payload bytes of a
// plain section.
func Checksum(section []byte) byte {
	var sum byte
	for i := 0; i < SectionSize-1; i++ {
		sum += section[i] & 0x3f
	}
	return sum & 0x3f
}

// Encode transforms a plain section in place into its stored form:
// checksum into the last byte, prefix-xor chain over the payload, then
// the salt stream keyed by the section's first byte.
func Encode(section []byte) error {
	if len(section) != SectionSize {
		return fmt.Errorf("section must be %d bytes, got %d", SectionSize, len(section))
	}

	section[7] = Checksum(section)

	for i := 0; i < 6; i++ {
		section[i+1] ^= section[i]
	}

	salt := section[0]
	for i := 1; i < SectionSize; i++ {
		section[i] ^= saltByte(salt)
		salt = (salt + 1) & 0x3f
	}
	return nil
}

// Decode reverses Encode in place and verifies the checksum. This is
// the same arithmetic the in-game validation routine executes.
func Decode(section []byte) error {
	if len(section) != SectionSize {
		return fmt.Errorf("section must be %d bytes, got %d", SectionSize, len(section))
	}

	salt := section[0]
	for i := 1; i < SectionSize; i++ {
		section[i] ^= saltByte(salt)
		salt = (salt + 1) & 0x3f
	}

	for i := 5; i >= 0; i-- {
		section[i+1] ^= section[i]
	}

	sum := Checksum(section)
	if expected := section[7] & 0x3f; sum != expected {
		return fmt.Errorf("%w: computed %02x, stored %02x", ErrChecksum, sum, expected)
	}
	return nil
}

// DecodeChar maps one password character to its 6 bit value.
func DecodeChar(c byte) (byte, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A', nil
	case c >= '1' && c <= '9':
		return c - '1' + 26, nil
	case c >= 'a' && c <= 'z':
		return c - 'a' + 35, nil
	case c == '#':
		return 61, nil
	case c == '$':
		return 62, nil
	case c == '%':
		return 63, nil
	}
	return 0, fmt.Errorf("invalid password character %q", c)
}

// PasswordLength is the length of a full password: three sections of
// eight characters.
const PasswordLength = 3 * SectionSize

// DecodePassword converts a 24 character password into its three plain
// sections, verifying each section checksum.
func DecodePassword(password string) ([]byte, error) {
	if len(password) != PasswordLength {
		return nil, fmt.Errorf("password must be %d characters, got %d", PasswordLength, len(password))
	}

	buf := make([]byte, PasswordLength)
	for i := 0; i < PasswordLength; i++ {
		value, err := DecodeChar(password[i])
		if err != nil {
			return nil, err
		}
		buf[i] = value
	}

	for i := 0; i < PasswordLength; i += SectionSize {
		if err := Decode(buf[i : i+SectionSize]); err != nil {
			return nil, fmt.Errorf("section %d: %w", i/SectionSize, err)
		}
	}
	return buf, nil
}
