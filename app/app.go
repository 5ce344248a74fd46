package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Melek-Sahlia/AI-Agent-Assistant/client"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/config"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/model"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/msg"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/style"
	"github.com/Melek-Sahlia/AI-Agent-Assistant/tokenizer"
)

// ProfileDir is where config and logs live. The command layer sets it
// before the program starts.
var ProfileDir string

// Fixed conversation texts.
const (
	greetingText     = "Hello! How can I assist you today?"
	sendFailureText  = "Error: Could not send message. Please try again."
	clearFailureText = "Error: Could not clear conversation history."
)

// slashCommands feed the input's tab completion.
var slashCommands = []string{"/clear", "/exit", "/help", "/quit", "/theme"}

// Model is the dispatcher. It owns the send state machine, the clear flow
// and every sub-model on screen.
type Model struct {
	banner     model.BannerModel
	transcript model.TranscriptModel
	input      model.InputModel
	status     model.StatusModel
	state      State
	client     *client.Client
	keys       KeyMap
	estimator  *tokenizer.Estimator

	width  int
	height int

	sendEpoch  int    // bumped on every clear; tags in-flight sends
	pendingID  string // placeholder entry ID while a send is outstanding
	tokenCount int

	confirmQuit bool
}

// New assembles the dispatcher around a service client.
func New(c *client.Client, version string) Model {
	input := model.NewInput()
	input.SetCommands(slashCommands)
	return Model{
		banner:     model.NewBanner(version, c.BaseURL),
		transcript: model.NewTranscript(80, 20),
		input:      input,
		status:     model.NewStatus(),
		state:      StateIdle,
		client:     c,
		keys:       DefaultKeyMap(),
		estimator:  tokenizer.New(),
		width:      80,
		height:     24,
	}
}

// Init starts the session: focus the input, size to the terminal and reset
// the server-side history so every run begins a fresh conversation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.clearHistory(true), m.input.Focus(), tea.WindowSize())
}

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.transcript.SetSize(v.Width, m.transcriptHeight())
		m.input.SetWidth(v.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(v)
	case msg.SendResult:
		return m.handleSendResult(v)
	case msg.ClearResult:
		return m.handleClearResult(v)
	case msg.TickMsg:
		if m.state == StateSending {
			return m, m.tickCmd()
		}
		return m, nil
	}
	// Spinner frames and other stray messages feed the status line while a
	// send is outstanding.
	if m.state == StateSending {
		var cmd tea.Cmd
		m.status, cmd = m.status.Update(rawMsg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	sections := []string{
		m.banner.View(),
		m.transcript.View(),
		m.status.View(),
		m.input.View(),
	}
	if m.confirmQuit {
		sections = append(sections, style.WarnText.Render("  Press ctrl+c again to quit, any other key to stay."))
	}
	return strings.Join(sections, "\n")
}

// handleKey routes keys by state. The split keeps the single-flight rule
// visible: submits and typing exist only in the idle handler.
func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit {
		if key.Matches(k, m.keys.Quit) {
			return m, tea.Quit
		}
		m.confirmQuit = false
		return m, nil
	}
	switch m.state {
	case StateSending:
		return m.handleSendingKey(k)
	default:
		return m.handleIdleKey(k)
	}
}

func (m Model) handleIdleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		if m.input.Value() != "" {
			m.input.Reset()
			return m, nil
		}
		m.confirmQuit = true
		return m, nil
	case key.Matches(k, m.keys.QuitEOF):
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(k, m.keys.ClearChat):
		return m.clearChat()
	case key.Matches(k, m.keys.ClearInput):
		m.input.Reset()
		return m, nil
	case key.Matches(k, m.keys.Submit):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Submit(text)
		return m.submitInput(text)
	case key.Matches(k, m.keys.ScrollTop):
		m.transcript.ScrollToTop()
		return m, nil
	case key.Matches(k, m.keys.ScrollBottom):
		m.transcript.ScrollToBottom()
		return m, nil
	case key.Matches(k, m.keys.PageUp), key.Matches(k, m.keys.PageDown):
		return m.scrollTranscript(k)
	}
	updated, cmd := m.input.Update(k)
	if inp, ok := updated.(model.InputModel); ok {
		m.input = inp
	}
	return m, cmd
}

// handleSendingKey is deliberately narrow: while a send is outstanding the
// input is disabled, but quitting, clearing and scrolling stay available.
func (m Model) handleSendingKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		m.confirmQuit = true
		return m, nil
	case key.Matches(k, m.keys.ClearChat):
		return m.clearChat()
	case key.Matches(k, m.keys.ScrollTop):
		m.transcript.ScrollToTop()
		return m, nil
	case key.Matches(k, m.keys.ScrollBottom):
		m.transcript.ScrollToBottom()
		return m, nil
	case key.Matches(k, m.keys.PageUp), key.Matches(k, m.keys.PageDown):
		return m.scrollTranscript(k)
	}
	return m, nil
}

func (m Model) scrollTranscript(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.transcript.Update(k)
	if t, ok := updated.(model.TranscriptModel); ok {
		m.transcript = t
	}
	return m, cmd
}

// submitInput routes a submitted line: slash commands run locally,
// everything else goes to the agent.
func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	if strings.HasPrefix(text, "/") {
		return m.runCommand(text)
	}
	return m.submitMessage(text)
}

func (m Model) runCommand(text string) (tea.Model, tea.Cmd) {
	name, arg := splitCommand(text)
	switch name {
	case "/exit", "/quit":
		return m, tea.Quit
	case "/help":
		m.transcript.AddSystemMessage(helpText())
		return m, nil
	case "/clear":
		return m.clearChat()
	case "/theme":
		return m.switchTheme(arg), nil
	}
	m.transcript.AddSystemError(fmt.Sprintf("Unknown command %q. Try /help.", name))
	return m, nil
}

func splitCommand(text string) (name, arg string) {
	parts := strings.SplitN(text, " ", 2)
	name = parts[0]
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return name, arg
}

// switchTheme applies a theme and persists the choice.
func (m Model) switchTheme(name string) Model {
	if name == "" {
		m.transcript.AddSystemMessage("Themes: " + strings.Join(style.ThemeNames, ", "))
		return m
	}
	if !style.SetTheme(name) {
		m.transcript.AddSystemError(fmt.Sprintf("Unknown theme %q. Themes: %s", name, strings.Join(style.ThemeNames, ", ")))
		return m
	}
	m.transcript.Refresh()
	m.transcript.AddSystemMessage("Theme set to " + name + ".")
	if ProfileDir != "" {
		cfg := config.Load(ProfileDir)
		cfg.Theme = name
		if err := config.Save(ProfileDir, cfg); err != nil {
			slog.Warn("could not persist theme", "error", err)
		}
	}
	return m
}

// submitMessage starts a send cycle: the user entry and the thinking
// placeholder appear synchronously, in that order, before the request
// command is handed to the runtime.
func (m Model) submitMessage(text string) (tea.Model, tea.Cmd) {
	m.transcript.AddUserMessage(text)
	m.pendingID = m.transcript.AddAgentMessage(model.ThinkingText)
	m.state = StateSending
	m.tokenCount += m.estimator.Count(text)
	m.status.SetActive(true)
	m.status.SetTokens(m.tokenCount)
	m.input.Blur()
	return m, tea.Batch(m.send(text, m.sendEpoch), m.tickCmd(), m.status.Tick())
}

// send issues POST /chat off the UI loop. The epoch captured at issue time
// lets the handler discard results that settle after a clear.
func (m Model) send(text string, epoch int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		resp, err := c.Send(text)
		if err != nil {
			return msg.SendResult{Epoch: epoch, Err: err}
		}
		return msg.SendResult{Epoch: epoch, Text: resp.ResponseText, Type: resp.ResponseType, Tools: resp.ToolNames}
	}
}

// handleSendResult settles a send cycle: drop the placeholder, append the
// final entry, re-enable the input. Every path ends back at idle with
// focus restored.
func (m Model) handleSendResult(r msg.SendResult) (tea.Model, tea.Cmd) {
	if r.Epoch != m.sendEpoch {
		slog.Debug("discarding stale send result", "epoch", r.Epoch, "current", m.sendEpoch)
		return m, nil
	}
	if m.pendingID != "" {
		m.transcript.Remove(m.pendingID)
		m.pendingID = ""
	}
	m.state = StateIdle
	m.status.SetActive(false)

	reply := model.Reply{Text: r.Text, Type: r.Type, Tools: r.Tools}
	if r.Err != nil {
		reply = model.Reply{Type: model.ReplyError, Text: sendFailureText}
		var apiErr *client.APIError
		if errors.As(r.Err, &apiErr) {
			reply.Text = "Error: " + apiErr.Message
		}
		slog.Warn("chat request failed", "error", r.Err)
	}
	m.transcript.AddAgentReply(reply)
	m.tokenCount += m.estimator.Count(reply.Text)
	m.status.SetTokens(m.tokenCount)
	m.status.SetReplyType(reply.Type)
	return m, m.input.Focus()
}

// clearChat wipes the transcript, reseeds the greeting and tells the
// service to drop its history. Clearing is optimistic: a failed request
// reports but never rolls the visual reset back. Bumping the epoch makes
// any in-flight send settle into the void.
func (m Model) clearChat() (tea.Model, tea.Cmd) {
	m.sendEpoch++
	m.pendingID = ""
	m.state = StateIdle
	m.status.SetActive(false)
	m.transcript.Reset()
	m.transcript.AddAgentMessage(greetingText)
	m.tokenCount = m.estimator.Count(greetingText)
	m.status.SetTokens(m.tokenCount)
	m.status.SetReplyType("")
	return m, tea.Batch(m.clearHistory(false), m.input.Focus())
}

// clearHistory issues POST /clear off the UI loop.
func (m Model) clearHistory(startup bool) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		return msg.ClearResult{Startup: startup, Err: c.ClearHistory()}
	}
}

func (m Model) handleClearResult(r msg.ClearResult) (tea.Model, tea.Cmd) {
	if r.Err == nil {
		return m, nil
	}
	slog.Error("history clear failed", "startup", r.Startup, "error", r.Err)
	if r.Startup {
		m.transcript.AddSystemError(fmt.Sprintf("Could not reach the agent service: %v", r.Err))
		return m, nil
	}
	m.transcript.AddAgentMessage(clearFailureText)
	return m, nil
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return msg.TickMsg{} })
}

// transcriptHeight is the terminal height minus the banner, status and
// input lines.
func (m Model) transcriptHeight() int {
	h := m.height - 3
	if h < 5 {
		h = 5
	}
	return h
}

func helpText() string {
	return strings.TrimSpace(`Commands:
  /clear          wipe the conversation here and on the server
  /theme <name>   switch the color theme (dark, light, catppuccin)
  /help           show this help
  /quit, /exit    leave

Keys:
  enter           send the message
  up/down         walk input history
  tab             complete a /command
  pgup/pgdn       scroll the transcript
  home/end        jump to the oldest/newest entry
  ctrl+l          clear the conversation
  esc             clear the input line
  ctrl+c          quit (press twice)
  ctrl+d          quit when the input is empty`)
}
