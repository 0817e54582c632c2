package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// ShortHash returns the first n hex characters of the SHA256 digest of content.
// A non-positive or oversized n returns the whole digest.
func ShortHash(content []byte, n int) string {
	sum := sha256.Sum256(content)
	digest := hex.EncodeToString(sum[:])
	if n <= 0 || n > len(digest) {
		return digest
	}
	return digest[:n]
}

// HashReader consumes r and returns the hex SHA256 digest of everything read.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
