package pkg

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const sessionSuffixLength = 9

// GenerateNewSessionID - millisecond timestamp followed by a short random suffix.
func GenerateNewSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:sessionSuffixLength]

	return strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix
}
