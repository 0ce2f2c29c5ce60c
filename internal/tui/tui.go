// SPDX-License-Identifier: Apache-2.0

// Package tui renders the gallery client: a terminal UI over the registry's
// cached snapshot with flows for submitting artworks, recording verdicts,
// and filtering the collection.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/registry"
)

type TUI struct {
	registry *registry.Registry
	identity string
}

func New(reg *registry.Registry, identity string, _ *logger.Logger) (*TUI, error) {
	return &TUI{registry: reg, identity: identity}, nil
}

// Run drives the gallery until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newGalleryModel(ctx, t.registry, t.identity)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
