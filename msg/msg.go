// Package msg defines the tea.Msg types dispatched within the TUI.
// It has no upstream imports (client, model) so every package can depend
// on it without cycles.
package msg

// SendResult settles one POST /chat cycle. Fields mirror client.ChatResponse
// so this package stays import-free.
type SendResult struct {
	Epoch int      // send epoch at issue time; stale results are discarded
	Text  string   // response_text
	Type  string   // response_type tag
	Tools []string // tool_names in invocation order
	Err   error
}

// ClearResult settles one POST /clear.
type ClearResult struct {
	Startup bool // history reset issued at program start, not by the user
	Err     error
}

// TickMsg drives the elapsed-time display while a send is in flight.
type TickMsg struct{}
