package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const gravatarDefaultSize = 80

// GetGravatarURL builds the avatar URL for an email address, falling
// back to the "mystery person" placeholder for unknown addresses.
func GetGravatarURL(email string, size int) string {
	if size <= 0 {
		size = gravatarDefaultSize
	}

	// Gravatar hashes the trimmed, lowercased address
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, size)
}
