package verify

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	codePrefix = "dright-verify-"
	codeLength = 6
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ0123456789"

// GenerateCode returns a short human-typed ownership code, e.g.
// "dright-verify-AB12CD". The alphabet skips I and O to keep the code easy
// to copy by hand.
func GenerateCode() string {
	var bytes = make([]byte, codeLength)
	rand.Read(bytes)
	for i, b := range bytes {
		bytes[i] = codeAlphabet[b%byte(len(codeAlphabet))]
	}
	return fmt.Sprintf("%s%s", codePrefix, string(bytes))
}

// GenerateProofToken returns an opaque token tied to one claim attempt.
func GenerateProofToken() string {
	var bytes = make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
