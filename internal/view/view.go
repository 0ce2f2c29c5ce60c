// SPDX-License-Identifier: Apache-2.0

// Package view derives presentation data from an artwork snapshot.
// Everything here is a pure function over a slice the caller already holds;
// nothing reads the cache or the ledger, so the same snapshot always yields
// the same numbers regardless of what the sync engine does concurrently.
package view

import (
	"strings"

	"github.com/provenart/go-art-registry/models"
)

// Counts holds per-status totals for a snapshot.
type Counts struct {
	Total     int
	Pending   int
	Authentic int
	Forgery   int
}

// Count tallies a snapshot by status. Statuses outside the known three still
// count toward the total so corrupt records are not silently hidden from it.
func Count(artworks []models.Artwork) Counts {
	counts := Counts{Total: len(artworks)}
	for _, a := range artworks {
		switch a.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusAuthentic:
			counts.Authentic++
		case models.StatusForgery:
			counts.Forgery++
		}
	}
	return counts
}

// Percentages holds per-status shares of a snapshot, in percent.
type Percentages struct {
	Pending   float64
	Authentic float64
	Forgery   float64
}

// Shares converts counts into percentages. An empty snapshot yields all
// zeros rather than dividing by zero.
func Shares(counts Counts) Percentages {
	total := counts.Total
	if total < 1 {
		total = 1
	}
	return Percentages{
		Pending:   float64(counts.Pending) / float64(total) * 100,
		Authentic: float64(counts.Authentic) / float64(total) * 100,
		Forgery:   float64(counts.Forgery) / float64(total) * 100,
	}
}

// Filter returns the artworks whose label or owner contains term,
// case-insensitively. A blank term matches everything. Input order is
// preserved and the input slice is never modified.
func Filter(artworks []models.Artwork, term string) []models.Artwork {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]models.Artwork, len(artworks))
		copy(out, artworks)
		return out
	}

	out := make([]models.Artwork, 0, len(artworks))
	for _, a := range artworks {
		if strings.Contains(strings.ToLower(a.Label), term) ||
			strings.Contains(strings.ToLower(a.Owner), term) {
			out = append(out, a)
		}
	}
	return out
}
