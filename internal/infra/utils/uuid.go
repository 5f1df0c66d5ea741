package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.NewString()
}

func GenerateHEX(size int) string {
	bytes := make([]byte, size)
	if _, err := rand.Read(bytes); err != nil {
		return strings.Repeat("0", size)
	}
	return hex.EncodeToString(bytes)
}

const keyCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateKey returns a random key of the requested length drawn from an
// uppercase alphanumeric charset.
func GenerateKey(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return strings.Repeat("0", length)
	}
	for i, b := range bytes {
		bytes[i] = keyCharset[int(b)%len(keyCharset)]
	}
	return string(bytes)
}
