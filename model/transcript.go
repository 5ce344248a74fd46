package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Melek-Sahlia/AI-Agent-Assistant/markdown"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/style"
)

// TranscriptModel is the scrollable conversation view: an append-only list
// of entries rendered into a viewport that follows the newest entry. The
// only permitted removal is of the thinking placeholder, by ID.
type TranscriptModel struct {
	vp      viewport.Model
	entries []Entry
	width   int
	height  int
}

// NewTranscript constructs a TranscriptModel sized to width x height.
func NewTranscript(width, height int) TranscriptModel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return TranscriptModel{
		vp:     vp,
		width:  width,
		height: height,
	}
}

// AddUserMessage appends a user entry and returns its ID.
func (m *TranscriptModel) AddUserMessage(text string) string {
	return m.add(newEntry(RoleUser, text, nil))
}

// AddAgentMessage appends a plain-text assistant entry (the greeting, the
// thinking placeholder, a clear-failure notice) and returns its ID.
func (m *TranscriptModel) AddAgentMessage(text string) string {
	return m.add(newEntry(RoleAgent, text, nil))
}

// AddAgentReply appends a structured assistant reply and returns its ID.
func (m *TranscriptModel) AddAgentReply(r Reply) string {
	return m.add(newEntry(RoleAgent, "", &r))
}

// AddSystemMessage appends a dimmed local notice and returns its ID.
func (m *TranscriptModel) AddSystemMessage(text string) string {
	return m.add(newEntry(RoleSystem, text, nil))
}

// AddSystemError appends a local error notice and returns its ID.
func (m *TranscriptModel) AddSystemError(text string) string {
	return m.add(newEntry(RoleError, text, nil))
}

// Remove deletes the entry with the given ID and reports whether it was
// present. It exists for placeholder removal; nothing else is ever removed.
func (m *TranscriptModel) Remove(id string) bool {
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.refresh()
			return true
		}
	}
	return false
}

// Reset drops every entry.
func (m *TranscriptModel) Reset() {
	m.entries = nil
	m.refresh()
}

// Len returns the number of entries.
func (m *TranscriptModel) Len() int { return len(m.entries) }

// Entries returns a copy of the entry list, newest last.
func (m *TranscriptModel) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// SetSize resizes the underlying viewport and re-renders.
func (m *TranscriptModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.vp.Width = width
	m.vp.Height = height
	m.refresh()
}

// Refresh re-renders every entry. Call after a theme change.
func (m *TranscriptModel) Refresh() { m.refresh() }

// ScrollToTop jumps the viewport to the oldest entry.
func (m *TranscriptModel) ScrollToTop() { m.vp.GotoTop() }

// ScrollToBottom jumps the viewport to the newest entry.
func (m *TranscriptModel) ScrollToBottom() { m.vp.GotoBottom() }

// Init satisfies tea.Model.
func (m TranscriptModel) Init() tea.Cmd {
	return nil
}

// Update forwards keyboard and mouse events to the viewport. It satisfies
// tea.Model so callers can type-assert the return value.
func (m TranscriptModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(message)
	return m, cmd
}

// View returns the rendered viewport content.
func (m TranscriptModel) View() string {
	return m.vp.View()
}

// add appends e, re-renders and scrolls to the newest entry.
func (m *TranscriptModel) add(e Entry) string {
	m.entries = append(m.entries, e)
	m.refresh()
	return e.ID
}

func (m *TranscriptModel) refresh() {
	m.vp.SetContent(m.renderAll())
	m.vp.GotoBottom()
}

func (m *TranscriptModel) renderAll() string {
	if len(m.entries) == 0 {
		return style.Faint.Render("  No messages yet. Type below to get started.")
	}

	var sb strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(renderEntry(e))
	}
	return sb.String()
}

// renderEntry converts a single Entry to its display string. Plain content
// is shown verbatim, never interpreted as Markdown; only structured reply
// bodies pass through the Markdown renderer.
func renderEntry(e Entry) string {
	switch e.Role {
	case RoleUser:
		return style.UserLabel.Render("❯ You") + "\n" + e.Content

	case RoleAgent:
		label := style.AgentLabel.Render("◆ Agent")
		if e.Reply == nil {
			return label + "\n" + e.Content
		}
		return label + "\n" + renderReply(*e.Reply)

	case RoleSystem:
		return style.Faint.Render(e.Content)

	case RoleError:
		return style.ErrorText.Render(e.Content)

	default:
		return e.Content
	}
}

// renderReply renders the badge row, then the Markdown body. An empty body
// renders the documented fallback literal so a reply is never blank.
func renderReply(r Reply) string {
	text := r.Text
	if text == "" {
		text = NoResponseText
	}
	body := markdown.Render(text)
	row := renderBadgeRow(DeriveBadges(r.Type, r.Tools))
	if row == "" {
		return body
	}
	return row + "\n" + body
}
