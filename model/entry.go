package model

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who an Entry belongs to.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "assistant"
	RoleSystem Role = "system"       // local notices: help text, theme changes
	RoleError  Role = "system-error" // local failures that are not agent replies
)

// Literal strings fixed by the conversation contract.
const (
	// ThinkingText is the transient placeholder shown while a send is
	// outstanding.
	ThinkingText = "Agent thinking..."

	// NoResponseText substitutes for an empty reply body.
	NoResponseText = "(No response text)"
)

// Known response_type tags. The field is open-ended: unknown tags flow
// through untouched and only influence badge rendering.
const (
	ReplyGeneralKnowledge = "general_knowledge"
	ReplyToolSuccess      = "tool_success"
	ReplyToolFailure      = "tool_failure"
	ReplyToolUnknown      = "tool_invocation_unknown_outcome"
	ReplyToolDirect       = "tool_result_direct"
	ReplyError            = "error"
)

// Reply is the structured assistant payload: a Markdown body, a type tag
// and the tools invoked, in order.
type Reply struct {
	Text  string
	Type  string
	Tools []string
}

// Entry is one rendered unit in the transcript. Content holds plain text;
// assistant entries may carry a structured Reply instead.
type Entry struct {
	ID        string
	Role      Role
	Content   string
	Reply     *Reply
	Timestamp time.Time
}

func newEntry(role Role, content string, reply *Reply) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Reply:     reply,
		Timestamp: time.Now(),
	}
}
