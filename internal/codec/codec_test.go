package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Codec_RoundTrip(t *testing.T) {
	c := NewBase64Codec()

	inputs := []string{
		"",
		"Starry Night",
		"unicode: Ночь ☾ 星月夜",
		"whitespace\tand\nnewlines",
		`{"nested":"json","n":42}`,
	}

	for _, in := range inputs {
		encoded, err := c.Encode(in)
		require.NoError(t, err)

		decoded, err := c.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func TestBase64Codec_DecodeGarbage(t *testing.T) {
	c := NewBase64Codec()
	_, err := c.Decode("%%% not base64 %%%")
	assert.Error(t, err)
}

func TestSealedCodec_RoundTrip(t *testing.T) {
	c := NewSealedCodec("correct horse battery staple")

	encoded, err := c.Encode("The Scream")
	require.NoError(t, err)
	assert.NotContains(t, encoded, "The Scream")

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "The Scream", decoded)
}

func TestSealedCodec_UniqueCipherTexts(t *testing.T) {
	c := NewSealedCodec("passphrase")

	first, err := c.Encode("same input")
	require.NoError(t, err)
	second, err := c.Encode("same input")
	require.NoError(t, err)

	// fresh salt and nonce per payload
	assert.NotEqual(t, first, second)
}

func TestSealedCodec_WrongPassphrase(t *testing.T) {
	encoded, err := NewSealedCodec("right").Encode("Mona Lisa")
	require.NoError(t, err)

	_, err = NewSealedCodec("wrong").Decode(encoded)
	assert.Error(t, err)
}

func TestSealedCodec_TruncatedPayload(t *testing.T) {
	c := NewSealedCodec("passphrase")
	_, err := c.Decode("c2hvcnQ=") // decodes to "short"
	assert.ErrorIs(t, err, ErrSealedPayloadTooShort)
}
