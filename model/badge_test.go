package model

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// StyleKey
// ---------------------------------------------------------------------------

func TestStyleKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Google_Search", "google-search"},
		{"Browse_Website", "browse-website"},
		{"Read_Email", "read-email"},
		{"Send_Email", "send-email"},
		{"already-keyed", "already-keyed"},
		{"MiXeD_CaSe_Tool", "mixed-case-tool"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := StyleKey(tc.in); got != tc.want {
			t.Errorf("StyleKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// DeriveBadges
// ---------------------------------------------------------------------------

func TestDeriveBadges_NoneForGeneralKnowledge(t *testing.T) {
	if got := DeriveBadges(ReplyGeneralKnowledge, []string{"Google_Search"}); got != nil {
		t.Errorf("general knowledge reply must carry no badges, got %v", got)
	}
}

func TestDeriveBadges_NoneForUntaggedReply(t *testing.T) {
	if got := DeriveBadges("", []string{"Google_Search"}); got != nil {
		t.Errorf("untagged reply must carry no badges, got %v", got)
	}
}

func TestDeriveBadges_NoneWithoutTools(t *testing.T) {
	if got := DeriveBadges(ReplyToolSuccess, nil); got != nil {
		t.Errorf("reply without tools must carry no badges, got %v", got)
	}
	if got := DeriveBadges(ReplyToolSuccess, []string{}); got != nil {
		t.Errorf("reply with empty tool list must carry no badges, got %v", got)
	}
}

func TestDeriveBadges_FailureOverridesToolPills(t *testing.T) {
	got := DeriveBadges(ReplyToolFailure, []string{"Google_Search", "Unknown_Tool"})
	if len(got) != 2 {
		t.Fatalf("want 2 badges, got %d", len(got))
	}
	for _, b := range got {
		if b.Category != CategoryFailure {
			t.Errorf("badge %q: want failure category, got %q", b.Label, b.Category)
		}
	}
	if got[0].Key != "google-search" {
		t.Errorf("want key google-search, got %q", got[0].Key)
	}
}

func TestDeriveBadges_KnownToolGetsOwnPill(t *testing.T) {
	got := DeriveBadges(ReplyToolSuccess, []string{"Send_Email", "Unknown_Tool"})
	if len(got) != 2 {
		t.Fatalf("want 2 badges, got %d", len(got))
	}
	if got[0].Category != CategoryTool {
		t.Errorf("Send_Email: want tool category, got %q", got[0].Category)
	}
	if got[1].Category != CategorySuccess {
		t.Errorf("Unknown_Tool: want success fallback, got %q", got[1].Category)
	}
}

func TestDeriveBadges_LabelKeepsRawName(t *testing.T) {
	got := DeriveBadges(ReplyToolSuccess, []string{"Google_Search"})
	if len(got) != 1 {
		t.Fatalf("want 1 badge, got %d", len(got))
	}
	if got[0].Label != "Google_Search" {
		t.Errorf("label must keep the raw tool name, got %q", got[0].Label)
	}
	if got[0].Key != "google-search" {
		t.Errorf("key must be the derived style key, got %q", got[0].Key)
	}
}

func TestDeriveBadges_PreservesToolOrder(t *testing.T) {
	tools := []string{"Read_Email", "Google_Search", "Browse_Website"}
	got := DeriveBadges(ReplyToolSuccess, tools)
	if len(got) != len(tools) {
		t.Fatalf("want %d badges, got %d", len(tools), len(got))
	}
	for i, name := range tools {
		if got[i].Label != name {
			t.Errorf("badge %d: want %q, got %q", i, name, got[i].Label)
		}
	}
}

func TestDeriveBadges_OpaqueTypeStillBadges(t *testing.T) {
	// A type tag the client has never seen must not suppress badges.
	got := DeriveBadges("tool_quantum_result", []string{"Google_Search"})
	if len(got) != 1 {
		t.Fatalf("want 1 badge, got %d", len(got))
	}
	if got[0].Category != CategoryTool {
		t.Errorf("want tool category, got %q", got[0].Category)
	}
}

func TestDeriveBadges_DoesNotMutateInput(t *testing.T) {
	tools := []string{"Google_Search", "Send_Email"}
	DeriveBadges(ReplyToolFailure, tools)
	if tools[0] != "Google_Search" || tools[1] != "Send_Email" {
		t.Errorf("input slice was mutated: %v", tools)
	}
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func TestRenderBadgeRow_EmptyIsNoRow(t *testing.T) {
	if got := renderBadgeRow(nil); got != "" {
		t.Errorf("no badges must render no row, got %q", got)
	}
}

func TestRenderBadgeRow_ContainsLabels(t *testing.T) {
	badges := DeriveBadges(ReplyToolSuccess, []string{"Google_Search", "Send_Email"})
	row := renderBadgeRow(badges)
	for _, want := range []string{"Google_Search", "Send_Email"} {
		if !strings.Contains(row, want) {
			t.Errorf("badge row missing %q: %q", want, row)
		}
	}
}
