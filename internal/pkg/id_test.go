package pkg

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNewSessionID(t *testing.T) {
	// When: two ids are generated
	first := GenerateNewSessionID()
	second := GenerateNewSessionID()

	// Then: both are a timestamp plus a hex suffix and they differ
	assert.Regexp(t, regexp.MustCompile(`^\d{13}[0-9a-f]{9}$`), first)
	assert.NotEqual(t, first, second)
}
