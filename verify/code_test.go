package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	code := GenerateCode()

	assert.True(t, strings.HasPrefix(code, "dright-verify-"))
	assert.Len(t, code, len("dright-verify-")+6)

	suffix := strings.TrimPrefix(code, "dright-verify-")
	for _, char := range suffix {
		assert.Contains(t, codeAlphabet, string(char))
	}
	assert.NotContains(t, suffix, "I")
	assert.NotContains(t, suffix, "O")
}

func TestGenerateCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		seen[GenerateCode()] = true
	}

	assert.Greater(t, len(seen), 1)
}

func TestGenerateProofToken(t *testing.T) {
	token := GenerateProofToken()

	assert.Len(t, token, 32)
	assert.NotEqual(t, token, GenerateProofToken())
}
