package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Melek-Sahlia/AI-Agent-Assistant/style"
)

// StatusModel renders the single status line under the transcript:
//
//   - sending: spinner + "thinking" + elapsed seconds
//   - idle: approximate transcript token count + last reply type tag
type StatusModel struct {
	sp        spinner.Model
	active    bool
	start     time.Time
	tokens    int
	replyType string
}

// NewStatus returns a StatusModel with a Dot spinner.
func NewStatus() StatusModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = style.SpinnerStyle
	return StatusModel{sp: sp}
}

// SetActive toggles the sending display and restarts the elapsed clock.
func (m *StatusModel) SetActive(active bool) {
	m.active = active
	if active {
		m.start = time.Now()
	}
}

// SetTokens updates the transcript token estimate shown when idle.
func (m *StatusModel) SetTokens(n int) {
	m.tokens = n
}

// SetReplyType records the last reply's type tag for idle display.
func (m *StatusModel) SetReplyType(t string) {
	m.replyType = t
}

// Tick starts the spinner's frame stream.
func (m StatusModel) Tick() tea.Cmd {
	return m.sp.Tick
}

// Update advances the spinner while active. The frame stream dies when the
// model goes inactive; Tick restarts it on the next send.
func (m StatusModel) Update(message tea.Msg) (StatusModel, tea.Cmd) {
	if _, ok := message.(spinner.TickMsg); ok && m.active {
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(message)
		return m, cmd
	}
	return m, nil
}

// View renders the status line.
func (m StatusModel) View() string {
	if m.active {
		elapsed := int(time.Since(m.start).Seconds())
		return m.sp.View() + style.StatusBar.Render(fmt.Sprintf("thinking · %ds", elapsed))
	}

	parts := []string{fmt.Sprintf("~%s tokens", formatTokens(m.tokens))}
	if m.replyType != "" {
		parts = append(parts, m.replyType)
	}
	return style.StatusBar.Render(strings.Join(parts, " · "))
}

// formatTokens renders counts compactly: 840, 1.2k, 12.0k.
func formatTokens(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
