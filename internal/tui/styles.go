// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	genuineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	forgedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
