package mdpress

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// readMarkdownFile reads the input as UTF-8 and, when the bytes are not
// valid UTF-8, retries under ISO-8859-1 — the permissive single-byte
// fallback in which every byte sequence decodes.
func readMarkdownFile(path string) (content string, fallback bool, err error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	if utf8.Valid(data) {
		return string(data), false, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", false, fmt.Errorf("%w: decoding %q: %v", ErrReadMarkdown, path, err)
	}
	return string(decoded), true, nil
}
