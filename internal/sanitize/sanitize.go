// Package sanitize derives filesystem-safe identifiers for the Gemini cache.
//
// Project directories under the cache are named by the SHA-256 of the
// project's absolute path. Checkpoint names are percent-encoded before they
// become part of a filename.
package sanitize

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

const (
	// CheckpointPrefix is the filename prefix of a saved checkpoint.
	CheckpointPrefix = "checkpoint-"

	// CheckpointSuffix is the filename suffix of a saved checkpoint.
	CheckpointSuffix = ".json"
)

const upperhex = "0123456789ABCDEF"

// ProjectHash returns the lowercase hex SHA-256 of path.
//
// The caller is responsible for making path absolute; the hash is taken over
// the exact bytes given so it matches the directory the Gemini CLI creates.
func ProjectHash(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:])
}

// EncodeName percent-encodes every byte outside the unreserved set
// (A-Z a-z 0-9 _ . - ~). Path separators and spaces are always escaped.
//
// Examples:
//
//	"my chat"  -> "my%20chat"
//	"a/b"      -> "a%2Fb"
//	"..\\x"    -> "..%5Cx"
func EncodeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// CheckpointName returns the checkpoint filename for a user-supplied name.
func CheckpointName(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	return CheckpointPrefix + EncodeName(name) + CheckpointSuffix, nil
}

// NameFromCheckpointFile reverses CheckpointName. ok is false when filename
// does not look like a checkpoint. A name part that does not decode is
// returned as-is.
func NameFromCheckpointFile(filename string) (name string, ok bool) {
	if !strings.HasPrefix(filename, CheckpointPrefix) || !strings.HasSuffix(filename, CheckpointSuffix) {
		return "", false
	}
	encoded := strings.TrimSuffix(strings.TrimPrefix(filename, CheckpointPrefix), CheckpointSuffix)
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		return encoded, true
	}
	return decoded, true
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-' || c == '~':
		return true
	}
	return false
}
