package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		input    string
		expected Encoding
	}{
		{"utf8", EncodingUTF8},
		{"UTF-8", EncodingUTF8},
		{"latin-1", EncodingLatin1},
		{"ISO-8859-1", EncodingLatin1},
		{"ascii", EncodingASCII},
		{" us-ascii ", EncodingASCII},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			enc, err := ParseEncoding(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, enc)
		})
	}

	_, err := ParseEncoding("utf16")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "utf16")
}

func TestEncoding_Decode(t *testing.T) {
	latin1 := []byte{'c', 'a', 'f', 0xe9}

	t.Run("utf8 accepts valid text", func(t *testing.T) {
		text, err := EncodingUTF8.Decode([]byte("café"))
		require.NoError(t, err)
		assert.Equal(t, "café", text)
	})

	t.Run("utf8 rejects invalid sequences", func(t *testing.T) {
		_, err := EncodingUTF8.Decode(latin1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "offset 3")
	})

	t.Run("latin-1 decodes every byte", func(t *testing.T) {
		text, err := EncodingLatin1.Decode(latin1)
		require.NoError(t, err)
		assert.Equal(t, "café", text)
	})

	t.Run("ascii rejects high bytes", func(t *testing.T) {
		_, err := EncodingASCII.Decode(latin1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0xe9")
	})

	t.Run("ascii accepts plain text", func(t *testing.T) {
		text, err := EncodingASCII.Decode([]byte("class Post {}"))
		require.NoError(t, err)
		assert.Equal(t, "class Post {}", text)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := Encoding("ebcdic").Decode([]byte("x"))
		assert.Error(t, err)
	})
}
