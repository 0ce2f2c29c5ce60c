package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces artwork ids of the form "<epoch_ms>-<suffix>".
// The millisecond prefix keeps ids roughly chronological; the random suffix
// makes collisions within the index implausible even for same-millisecond
// submissions from independent clients.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a fresh artwork id stamped with the current time.
func (g *IDGenerator) Generate() string {
	return g.GenerateAt(time.Now())
}

// GenerateAt returns a fresh artwork id stamped with the given time.
func (g *IDGenerator) GenerateAt(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s", t.UnixMilli(), suffix)
}
