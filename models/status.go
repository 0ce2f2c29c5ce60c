package models

// Status is the authenticity verdict of an artwork.
// The lifecycle is one-way: a pending artwork may be judged authentic or a
// forgery exactly once; judged artworks never change again.
type Status string

const (
	// StatusPending marks a freshly submitted artwork awaiting a verdict.
	StatusPending Status = "PENDING"

	// StatusAuthentic marks an artwork judged genuine by its owner.
	StatusAuthentic Status = "AUTHENTIC"

	// StatusForgery marks an artwork judged counterfeit by its owner.
	StatusForgery Status = "FORGERY"
)

// Valid reports whether s is one of the three defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAuthentic, StatusForgery:
		return true
	}
	return false
}

// Verdict reports whether s is a terminal verdict (authentic or forgery).
// Only verdicts are legal targets of a status transition.
func (s Status) Verdict() bool {
	return s == StatusAuthentic || s == StatusForgery
}
