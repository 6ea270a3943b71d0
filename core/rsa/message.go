package rsa

import (
	"unicode/utf8"

	"github.com/cronokirby/saferith"
)

type kind uint8

const (
	kindInt kind = iota
	kindText
)

// Message is a plaintext: either a UTF-8 string or a raw non-negative
// integer. The kind tag is unexported so a mismatched tag/payload pair
// cannot be constructed.
type Message struct {
	kind  kind
	text  string
	value *saferith.Nat
}

// TextMessage wraps a UTF-8 string as a plaintext.
func TextMessage(s string) *Message {
	return &Message{kind: kindText, text: s}
}

// IntMessage wraps a raw integer as a plaintext. The value is not copied.
func IntMessage(v *saferith.Nat) *Message {
	return &Message{kind: kindInt, value: v}
}

// IsText returns true if the plaintext is a string.
func (m *Message) IsText() bool {
	return m.kind == kindText
}

// Text returns the string payload; empty for integer messages.
func (m *Message) Text() string {
	return m.text
}

// Int returns the integer payload; nil for text messages.
func (m *Message) Int() *saferith.Nat {
	return m.value
}

// nat returns the integer the transforms operate on: the payload itself
// for integer messages, the codec image for text messages.
func (m *Message) nat() *saferith.Nat {
	if m.kind == kindText {
		return textToNat(m.text)
	}
	return m.value
}

// textToNat interprets the UTF-8 bytes of s as a big-endian unsigned
// integer. The empty string maps to zero.
func textToNat(s string) *saferith.Nat {
	if len(s) == 0 {
		return new(saferith.Nat).SetUint64(0)
	}
	return new(saferith.Nat).SetBytes([]byte(s))
}

// natToText is the inverse of textToNat: the minimal big-endian byte
// form of x read as UTF-8. Zero maps to the empty string. Bytes that do
// not form valid UTF-8 cannot have come from textToNat and are rejected
// rather than coerced.
func natToText(x *saferith.Nat) (string, error) {
	b := x.Big().Bytes()
	if !utf8.Valid(b) {
		return "", ErrEncoding
	}
	return string(b), nil
}
