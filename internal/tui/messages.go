// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/provenart/go-art-registry/models"

type refreshDoneMsg struct {
	err error
}

type createDoneMsg struct {
	artwork models.Artwork
	err     error
}

// verificationDoneMsg fires when the simulated authenticity check finishes
// and the verdict may be submitted.
type verificationDoneMsg struct {
	id     string
	status models.Status
}

type verdictDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
