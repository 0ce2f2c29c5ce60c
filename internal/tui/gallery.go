// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/provenart/go-art-registry/internal/registry"
	"github.com/provenart/go-art-registry/internal/view"
	"github.com/provenart/go-art-registry/models"
)

// verificationDelay imitates the latency of the authenticity check the
// production pipeline performs on encrypted payloads before a verdict is
// accepted.
const verificationDelay = 1200 * time.Millisecond

const statusLifetime = 3 * time.Second

type galleryModel struct {
	ctx      context.Context
	registry *registry.Registry
	identity string

	artworks []models.Artwork
	idx      int

	filtering bool
	filter    textinput.Model
	term      string

	loading    bool
	refreshing bool
	status     string
	errMsg     string

	detail   bool
	revealed string

	creating     bool
	createSaving bool
	labelInput   textinput.Model
	sourceArea   textarea.Model
	createFocus  int

	judging   bool
	verifying bool
	spinner   spinner.Model
}

func newGalleryModel(ctx context.Context, reg *registry.Registry, identity string) galleryModel {
	filter := textinput.New()
	filter.Placeholder = "label or owner"
	filter.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return galleryModel{
		ctx:      ctx,
		registry: reg,
		identity: identity,
		filter:   filter,
		spinner:  s,
		loading:  true,
	}
}

func (m galleryModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m galleryModel) current() (models.Artwork, bool) {
	if len(m.artworks) == 0 || m.idx < 0 || m.idx >= len(m.artworks) {
		return models.Artwork{}, false
	}
	return m.artworks[m.idx], true
}

// reload re-derives the visible list from the cache snapshot and the active
// filter term.
func (m *galleryModel) reload() {
	m.artworks = view.Filter(m.registry.Artworks(), m.term)
	if m.idx >= len(m.artworks) {
		m.idx = len(m.artworks) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.loading = false
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.reload()
		return m, nil

	case createDoneMsg:
		m.createSaving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.creating = false
		m.errMsg = ""
		m.status = "Submitted " + msg.artwork.Label
		m.reload()
		return m, m.cmdClearStatus()

	case verificationDoneMsg:
		return m, m.cmdVerdict(msg.id, msg.status)

	case verdictDoneMsg:
		m.verifying = false
		m.judging = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Verdict recorded"
		m.detail = false
		m.revealed = ""
		m.reload()
		return m, m.cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.verifying && !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.creating {
			return m.updateCreate(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.verifying:
		// The simulated check is not cancellable; ignore keys until done.
		return m, nil
	case m.creating:
		return m.updateCreate(msg)
	case m.filtering:
		return m.updateFilter(msg)
	case m.judging:
		return m.updateJudging(keyMsg)
	case m.detail:
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m galleryModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.artworks)-1 {
			m.idx++
		}
	case "r":
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdRefresh(), m.spinner.Tick)
	case "/":
		m.filtering = true
		m.filter.SetValue(m.term)
		m.filter.Focus()
		return m, nil
	case "n":
		m.startCreate()
		return m, nil
	case "enter":
		item, ok := m.current()
		if !ok {
			m.status = "No artworks"
			return m, m.cmdClearStatus()
		}
		source, err := m.registry.Reveal(item)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.revealed = source
		m.detail = true
	case "v":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		if item.Status != models.StatusPending {
			m.status = "Already judged"
			return m, m.cmdClearStatus()
		}
		if !item.OwnedBy(m.identity) {
			m.status = "Only the owner may judge this artwork"
			return m, m.cmdClearStatus()
		}
		m.judging = true
		return m, nil
	}

	return m, nil
}

func (m galleryModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "enter":
			m.term = strings.TrimSpace(m.filter.Value())
			m.filtering = false
			m.filter.Blur()
			m.idx = 0
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m galleryModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.detail = false
		m.revealed = ""
	case "c":
		if err := clipboard.WriteAll(item.ID); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Artwork id copied"
		return m, m.cmdClearStatus()
	case "v":
		if item.Status != models.StatusPending {
			m.status = "Already judged"
			return m, m.cmdClearStatus()
		}
		if !item.OwnedBy(m.identity) {
			m.status = "Only the owner may judge this artwork"
			return m, m.cmdClearStatus()
		}
		m.judging = true
	}

	return m, nil
}

func (m galleryModel) updateJudging(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.judging = false
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "n":
		m.judging = false
		return m, nil
	case "a":
		return m.startVerification(item, models.StatusAuthentic)
	case "f":
		return m.startVerification(item, models.StatusForgery)
	}

	return m, nil
}

func (m galleryModel) startVerification(item models.Artwork, status models.Status) (tea.Model, tea.Cmd) {
	m.verifying = true
	m.errMsg = ""
	return m, tea.Batch(
		m.spinner.Tick,
		tea.Tick(verificationDelay, func(time.Time) tea.Msg {
			return verificationDoneMsg{id: item.ID, status: status}
		}),
	)
}

func (m *galleryModel) startCreate() {
	label := textinput.New()
	label.Placeholder = "Title"
	label.Width = 40
	label.Focus()

	source := textarea.New()
	source.Placeholder = "Artwork content"
	source.SetWidth(60)
	source.SetHeight(6)

	m.labelInput = label
	m.sourceArea = source
	m.createFocus = 0
	m.creating = true
	m.errMsg = ""
}

func (m galleryModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.creating = false
			m.createSaving = false
			m.errMsg = ""
			return m, nil
		case "tab", "shift+tab":
			if m.createFocus == 0 {
				m.createFocus = 1
				m.labelInput.Blur()
				return m, m.sourceArea.Focus()
			}
			m.createFocus = 0
			m.sourceArea.Blur()
			m.labelInput.Focus()
			return m, nil
		case "ctrl+s":
			if m.createSaving {
				return m, nil
			}
			label := strings.TrimSpace(m.labelInput.Value())
			source := m.sourceArea.Value()
			if label == "" || strings.TrimSpace(source) == "" {
				m.errMsg = "title and content are both required"
				return m, nil
			}
			m.errMsg = ""
			m.createSaving = true
			return m, m.cmdCreate(label, source)
		case "enter":
			// Enter submits from the title field and inserts a newline in
			// the content area.
			if m.createFocus == 0 {
				m.createFocus = 1
				m.labelInput.Blur()
				return m, m.sourceArea.Focus()
			}
		}
	}

	var cmd tea.Cmd
	if m.createFocus == 0 {
		m.labelInput, cmd = m.labelInput.Update(msg)
	} else {
		m.sourceArea, cmd = m.sourceArea.Update(msg)
	}
	return m, cmd
}

func (m galleryModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.registry.Refresh(m.ctx)}
	}
}

func (m galleryModel) cmdCreate(label, source string) tea.Cmd {
	return func() tea.Msg {
		artwork, err := m.registry.Create(m.ctx, label, source, m.identity)
		return createDoneMsg{artwork: artwork, err: err}
	}
}

func (m galleryModel) cmdVerdict(id string, status models.Status) tea.Cmd {
	return func() tea.Msg {
		return verdictDoneMsg{err: m.registry.SetVerdict(m.ctx, id, status, m.identity)}
	}
}

func (m galleryModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
