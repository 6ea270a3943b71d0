package rsa

import (
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	for _, text := range []string{"hej", "Alice signatur", "a", "πθλ"} {
		v := textToNat(text)
		got, err := natToText(v)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestCodecZero(t *testing.T) {
	// the empty string and the zero integer map to each other
	v := textToNat("")
	assert.Equal(t, saferith.Choice(1), v.Eq(new(saferith.Nat).SetUint64(0)))

	got, err := natToText(new(saferith.Nat).SetUint64(0))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestCodecRejectsInvalidUTF8(t *testing.T) {
	// 0xFF can never start a UTF-8 sequence
	v := new(saferith.Nat).SetBytes([]byte{0xFF, 'h', 'i'})
	_, err := natToText(v)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestMessageConstructors(t *testing.T) {
	text := TextMessage("hej")
	assert.True(t, text.IsText())
	assert.Equal(t, "hej", text.Text())
	assert.Nil(t, text.Int())

	v := new(saferith.Nat).SetUint64(1488)
	num := IntMessage(v)
	assert.False(t, num.IsText())
	assert.Equal(t, saferith.Choice(1), num.Int().Eq(v))
}
