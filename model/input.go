package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Melek-Sahlia/AI-Agent-Assistant/style"
)

// InputModel is the message entry bar with input history and slash-command
// completion.
//
//   - Up/Down walk through previously submitted inputs
//   - Tab cycles matching /commands when the buffer starts with "/"
type InputModel struct {
	ti         textinput.Model
	history    []string
	historyIdx int // one past the newest entry when not navigating

	commands []string // completable slash commands, e.g. ["/clear", "/help"]
	compIdx  int      // current completion cursor (-1 = none)
	compList []string // current completion candidates
}

// NewInput returns a ready-to-use InputModel.
func NewInput() InputModel {
	ti := textinput.New()
	ti.Placeholder = "Message the agent, or / for commands"
	ti.PlaceholderStyle = style.Placeholder
	ti.CharLimit = 4000
	return InputModel{ti: ti, compIdx: -1}
}

// SetCommands replaces the slash commands offered by Tab completion.
func (m *InputModel) SetCommands(cmds []string) {
	m.commands = cmds
}

// SetWidth resizes the text field, leaving room for the prompt glyph.
func (m *InputModel) SetWidth(w int) {
	if w > 4 {
		m.ti.Width = w - 4
	}
}

// Focus gives keyboard focus to the input.
func (m *InputModel) Focus() tea.Cmd {
	return m.ti.Focus()
}

// Blur removes keyboard focus from the input.
func (m *InputModel) Blur() {
	m.ti.Blur()
}

// Focused reports whether the input currently has keyboard focus.
func (m InputModel) Focused() bool {
	return m.ti.Focused()
}

// Value returns the current raw text in the field.
func (m InputModel) Value() string {
	return m.ti.Value()
}

// SetValue replaces the field text and moves the cursor to the end.
func (m *InputModel) SetValue(text string) {
	m.ti.SetValue(text)
	m.ti.CursorEnd()
}

// Reset clears the field and any in-progress completion.
func (m *InputModel) Reset() {
	m.historyIdx = len(m.history)
	m.ti.SetValue("")
	m.resetCompletion()
}

// Submit records text in the history and clears the field.
func (m *InputModel) Submit(text string) {
	if text != "" {
		m.history = append(m.history, text)
	}
	m.Reset()
}

func (m *InputModel) resetCompletion() {
	m.compIdx = -1
	m.compList = nil
}

// Init satisfies tea.Model.
func (m InputModel) Init() tea.Cmd {
	return nil
}

// Update intercepts Up/Down for history and Tab for completion before
// delegating remaining keys to the underlying textinput. It satisfies
// tea.Model so callers can type-assert the return value.
func (m InputModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := message.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyUp:
			return m.recallHistory(-1), nil
		case tea.KeyDown:
			return m.recallHistory(+1), nil
		case tea.KeyTab:
			return m.cycleCompletion(), nil
		default:
			// Any other key starts the next Tab press fresh.
			m.resetCompletion()
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(message)
	return m, cmd
}

// View renders the prompt glyph followed by the text field.
func (m InputModel) View() string {
	return style.PromptChar.Render("❯ ") + m.ti.View()
}

// recallHistory moves the history cursor by delta (-1 older, +1 newer) and
// loads that entry into the field. Walking past the newest entry restores a
// blank field.
func (m InputModel) recallHistory(delta int) InputModel {
	if len(m.history) == 0 {
		return m
	}

	next := m.historyIdx + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.history) {
		next = len(m.history)
	}
	m.historyIdx = next

	if next == len(m.history) {
		m.ti.SetValue("")
		return m
	}
	m.ti.SetValue(m.history[next])
	m.ti.CursorEnd()
	return m
}

// cycleCompletion advances through /command candidates. It only engages
// when the buffer starts with "/".
func (m InputModel) cycleCompletion() InputModel {
	current := m.ti.Value()
	if !strings.HasPrefix(current, "/") {
		return m
	}

	if m.compIdx == -1 {
		m.compList = prefixMatches(m.commands, current)
		if len(m.compList) == 0 {
			return m
		}
		m.compIdx = 0
	} else {
		m.compIdx = (m.compIdx + 1) % len(m.compList)
	}

	m.ti.SetValue(m.compList[m.compIdx])
	m.ti.CursorEnd()
	return m
}

func prefixMatches(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
