package csvload

import (
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// lookupEncoding resolves a WHATWG encoding label (e.g. "windows-1252",
// "shift_jis", "utf-16le"). The empty label selects UTF-8.
func lookupEncoding(label string) (encoding.Encoding, error) {
	if label == "" {
		return unicode.UTF8, nil
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("unknown text encoding %q", label)
	}
	return enc, nil
}

// decodeText reads all of r and returns it as a UTF-8 string.
//
// A byte order mark always wins over the requested encoding, matching how
// browsers decode blobs. Invalid byte sequences are replaced with U+FFFD
// rather than reported.
func decodeText(r io.Reader, label string) (string, error) {
	enc, err := lookupEncoding(label)
	if err != nil {
		return "", err
	}

	decoder := unicode.BOMOverride(enc.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return string(data), nil
}
