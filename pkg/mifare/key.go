package mifare

import (
	"encoding/hex"
	"productreader/pkg/serrors"
	"strings"
)

// KeyLength is the size in bytes of a sector key.
const KeyLength = 6

// Key is a MIFARE Classic sector key.
type Key [KeyLength]byte

// DefaultKey is the factory transport key FF FF FF FF FF FF.
var DefaultKey = Key{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF} //nolint: gochecknoglobals

// ParseKey decodes a key written as 12 hex digits. Spaces and colons
// between bytes are accepted.
func ParseKey(s string) (Key, error) {
	var k Key

	raw := strings.NewReplacer(" ", "", ":", "").Replace(s)
	if len(raw) != 2*KeyLength {
		return k, serrors.With(serrors.ErrBadRequest, "key must have %d hex digits, got %d", 2*KeyLength, len(raw))
	}
	if _, err := hex.Decode(k[:], []byte(raw)); err != nil {
		return k, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode key")
	}

	return k, nil
}

// String renders the key as uppercase hex.
func (k Key) String() string {
	return strings.ToUpper(hex.EncodeToString(k[:]))
}
