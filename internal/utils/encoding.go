package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the character encoding used to decode source files
type Encoding string

const (
	EncodingUTF8   Encoding = "utf8"
	EncodingLatin1 Encoding = "latin-1"
	EncodingASCII  Encoding = "ascii"
)

// SupportedEncodings lists the encodings accepted on the command line
func SupportedEncodings() []Encoding {
	return []Encoding{EncodingUTF8, EncodingLatin1, EncodingASCII}
}

// ParseEncoding maps a user supplied name to an Encoding.
// Common aliases such as "utf-8" and "iso-8859-1" are accepted.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf8", "utf-8":
		return EncodingUTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "ascii", "us-ascii":
		return EncodingASCII, nil
	}
	return "", fmt.Errorf("unsupported encoding '%s' (expected one of %v)", name, SupportedEncodings())
}

func (e Encoding) String() string {
	return string(e)
}

// Decode converts raw file bytes to text
func (e Encoding) Decode(data []byte) (string, error) {
	switch e {
	case EncodingUTF8, "":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid utf8 byte sequence at offset %d", invalidUTF8Offset(data))
		}
		return string(data), nil
	case EncodingASCII:
		for i, b := range data {
			if b >= utf8.RuneSelf {
				return "", fmt.Errorf("non-ascii byte 0x%02x at offset %d", b, i)
			}
		}
		return string(data), nil
	case EncodingLatin1:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
	return "", fmt.Errorf("unsupported encoding '%s'", string(e))
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
