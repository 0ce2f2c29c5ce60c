// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/provenart/go-art-registry/internal/view"
	"github.com/provenart/go-art-registry/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (m galleryModel) View() string {
	switch {
	case m.verifying:
		return m.viewVerifying()
	case m.creating:
		return m.viewCreate()
	case m.judging:
		return m.viewJudging()
	case m.detail:
		return m.viewDetail()
	}
	return m.viewList()
}

func (m galleryModel) viewList() string {
	var b strings.Builder

	header := "Art Registry"
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	b.WriteString(titleStyle.Render(header) + "\n")
	b.WriteString(uiDivider + "\n\n")

	if m.filtering {
		b.WriteString("filter: " + m.filter.View() + "\n\n")
	} else if m.term != "" {
		b.WriteString("filter: " + m.term + "  (/ to change)\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.artworks) == 0:
		b.WriteString("No artworks\n")
	default:
		for i, item := range m.artworks {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
				cursor, statusBadge(item.Status), fitText(item.Label, 32), helpStyle.Render(item.Owner)))
		}
	}

	b.WriteString("\n" + m.viewFooter())
	b.WriteString("\n\n" + helpStyle.Render("n new  v verdict  enter open  / filter  r refresh  q quit"))
	return b.String()
}

func (m galleryModel) viewDetail() string {
	item, ok := m.current()
	if !ok {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ARTWORK: "+item.Label) + "\n")
	b.WriteString(uiDivider + "\n\n")
	b.WriteString("ID        : " + item.ID + "\n")
	b.WriteString("Owner     : " + item.Owner + "\n")
	b.WriteString("Created   : " + item.Created().Format("2006-01-02 15:04:05") + "\n")
	b.WriteString("Status    : " + statusBadge(item.Status) + "\n\n")
	b.WriteString("[ CONTENT ]\n")
	if strings.TrimSpace(m.revealed) != "" {
		b.WriteString(m.revealed + "\n")
	} else {
		b.WriteString("(empty)\n")
	}

	b.WriteString("\n" + m.viewMessages())
	b.WriteString("\n" + helpStyle.Render("c copy id  v verdict  esc back"))
	return b.String()
}

func (m galleryModel) viewJudging() string {
	item, ok := m.current()
	if !ok {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("VERDICT: "+item.Label) + "\n")
	b.WriteString(uiDivider + "\n\n")
	b.WriteString("Judge the authenticity of this artwork.\n")
	b.WriteString("The verdict is final and cannot be changed.\n\n")
	b.WriteString("  a  " + genuineStyle.Render("AUTHENTIC") + "\n")
	b.WriteString("  f  " + forgedStyle.Render("FORGERY") + "\n")

	b.WriteString("\n" + m.viewMessages())
	b.WriteString("\n" + helpStyle.Render("esc cancel"))
	return b.String()
}

func (m galleryModel) viewVerifying() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Verifying") + "\n")
	b.WriteString(uiDivider + "\n\n")
	b.WriteString(m.spinner.View() + " Running authenticity check...\n")
	return b.String()
}

func (m galleryModel) viewCreate() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("NEW ARTWORK") + "\n")
	b.WriteString(uiDivider + "\n\n")
	b.WriteString("Title:\n" + m.labelInput.View() + "\n\n")
	b.WriteString("Content:\n" + m.sourceArea.View() + "\n")
	if m.createSaving {
		b.WriteString("\nSubmitting...\n")
	}

	b.WriteString("\n" + m.viewMessages())
	b.WriteString("\n" + helpStyle.Render("tab switch field  ctrl+s submit  esc cancel"))
	return b.String()
}

func (m galleryModel) viewFooter() string {
	counts := view.Count(m.registry.Artworks())
	shares := view.Shares(counts)

	return fmt.Sprintf("%d artworks · %s %d (%.0f%%) · %s %d (%.0f%%) · %s %d (%.0f%%)",
		counts.Total,
		pendingStyle.Render("pending"), counts.Pending, shares.Pending,
		genuineStyle.Render("authentic"), counts.Authentic, shares.Authentic,
		forgedStyle.Render("forgery"), counts.Forgery, shares.Forgery,
	)
}

func (m galleryModel) viewMessages() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	return b.String()
}

func statusBadge(s models.Status) string {
	switch s {
	case models.StatusPending:
		return pendingStyle.Render("[PENDING]  ")
	case models.StatusAuthentic:
		return genuineStyle.Render("[AUTHENTIC]")
	case models.StatusForgery:
		return forgedStyle.Render("[FORGERY]  ")
	default:
		return "[?]        "
	}
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
