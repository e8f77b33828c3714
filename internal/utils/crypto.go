// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// Slugify derives a catalog id from a product name: lowercased, runs of
// non-alphanumerics collapsed to single hyphens, edges trimmed.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
