package utils

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_Format(t *testing.T) {
	g := NewIDGenerator()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	id := g.GenerateAt(at)

	prefix, suffix, found := strings.Cut(id, "-")
	require.True(t, found, "id must contain a '-' separator")

	ms, err := strconv.ParseInt(prefix, 10, 64)
	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), ms)
	assert.Len(t, suffix, 12)
}

func TestIDGenerator_Unique(t *testing.T) {
	g := NewIDGenerator()

	seen := make(map[string]bool)
	for range 100 {
		id := g.Generate()
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}
