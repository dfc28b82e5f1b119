package scene

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var charsetAliases = map[string]encoding.Encoding{
	"latin1": charmap.ISO8859_1,
	"cp1252": charmap.Windows1252,
	"cp437":  charmap.CodePage437,
	"cp850":  charmap.CodePage850,
}

// lookupCharset resolves a charset name. The empty name and UTF-8 mean no
// decoding and return nil.
func lookupCharset(name string) (encoding.Encoding, error) {
	key := charsetKey(name)
	switch key {
	case "", "utf8":
		return nil, nil
	}
	if enc, ok := charsetAliases[key]; ok {
		return enc, nil
	}
	for _, enc := range charmap.All {
		cm, ok := enc.(*charmap.Charmap)
		if !ok {
			continue
		}
		if charsetKey(cm.String()) == key {
			return cm, nil
		}
	}
	return nil, fmt.Errorf("scene: unknown charset %q", name)
}

// charsetKey folds "Windows 1252", "windows-1252" and "WINDOWS_1252" together.
func charsetKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// decodeCharset converts data from the named charset to UTF-8.
func decodeCharset(data []byte, name string) ([]byte, error) {
	enc, err := lookupCharset(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return data, nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w", name, err)
	}
	return out, nil
}
