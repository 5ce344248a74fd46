package model

import (
	"strings"

	"github.com/Melek-Sahlia/AI-Agent-Assistant/style"
)

// Category names the shared pill a badge resolves to. Failure outranks a
// tool-specific pill, which outranks the shared success pill.
type Category string

const (
	CategorySuccess Category = "success"
	CategoryFailure Category = "failure"
	CategoryTool    Category = "tool"
)

// Badge is one tool tag on an assistant reply. Label is the raw tool name;
// Key is the derived style key it resolves pills through.
type Badge struct {
	Label    string
	Key      string
	Category Category
}

// StyleKey derives the stable style key for a tool name: lower-cased, every
// underscore replaced by a hyphen ("Read_Email" becomes "read-email").
func StyleKey(toolName string) string {
	return strings.ReplaceAll(strings.ToLower(toolName), "_", "-")
}

// DeriveBadges maps a reply's type tag and tool list to badges, one per tool
// in input order. It is a pure function of its arguments plus the fixed tool
// pill table: general knowledge replies and untagged ones carry no badges; a
// tool_failure tag forces the failure category on every badge regardless of
// tool; otherwise a tool with its own pill gets it, and anything unknown
// falls back to the shared success pill.
func DeriveBadges(replyType string, tools []string) []Badge {
	if replyType == "" || replyType == ReplyGeneralKnowledge {
		return nil
	}
	if len(tools) == 0 {
		return nil
	}
	badges := make([]Badge, 0, len(tools))
	for _, name := range tools {
		b := Badge{Label: name, Key: StyleKey(name), Category: CategorySuccess}
		switch {
		case replyType == ReplyToolFailure:
			b.Category = CategoryFailure
		case style.HasToolBadge(b.Key):
			b.Category = CategoryTool
		}
		badges = append(badges, b)
	}
	return badges
}

// Render paints the badge with its resolved pill.
func (b Badge) Render() string {
	s := style.BadgeSuccess
	switch b.Category {
	case CategoryFailure:
		s = style.BadgeFailure
	case CategoryTool:
		if ts, ok := style.ToolBadge(b.Key); ok {
			s = ts
		}
	}
	return s.Render(b.Label)
}

// renderBadgeRow joins rendered badges with single spaces. No badges means
// no row at all.
func renderBadgeRow(badges []Badge) string {
	if len(badges) == 0 {
		return ""
	}
	parts := make([]string, len(badges))
	for i, b := range badges {
		parts[i] = b.Render()
	}
	return strings.Join(parts, " ")
}
