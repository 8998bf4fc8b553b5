// Package ids generates unique identifiers for domain entities.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a canonical UUIDv4 string.
func New() string {
	return uuid.NewString()
}

// Short returns a compact 8-character id fragment, used as the suffix for
// entity ids added mid-questionnaire.
func Short() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
