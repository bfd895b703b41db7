package nlp

import (
	"strings"
	"testing"

	"github.com/notesift/notesift/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt([]string{"First sentence.", "Second one?"})

	if !strings.Contains(prompt, "1. First sentence.") {
		t.Errorf("prompt missing numbered first sentence:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2. Second one?") {
		t.Errorf("prompt missing numbered second sentence:\n%s", prompt)
	}
	for _, label := range []string{"ACTION", "DECISION", "QUESTION", "NONE"} {
		if !strings.Contains(prompt, label) {
			t.Errorf("prompt missing label %s", label)
		}
	}
}

func TestParseLabels_Success(t *testing.T) {
	reply := "1: DECISION\n2: QUESTION\n3: ACTION\n4: NONE"
	labels, err := parseLabels(reply, 4)
	if err != nil {
		t.Fatalf("parseLabels failed: %v", err)
	}

	expected := []model.Category{
		model.CategoryDecision,
		model.CategoryOpenQuestion,
		model.CategoryActionItem,
		model.CategoryUncategorized,
	}
	for i, want := range expected {
		if labels[i] != want {
			t.Errorf("label %d: expected %s, got %s", i, want, labels[i])
		}
	}
}

func TestParseLabels_FormattingDrift(t *testing.T) {
	// Models drift from "N: LABEL"; tolerate common variants
	cases := []string{
		"1. ACTION",
		"1) ACTION",
		"1 - ACTION",
		"  1:  action",
	}
	for _, reply := range cases {
		labels, err := parseLabels(reply, 1)
		if err != nil {
			t.Errorf("parseLabels(%q) failed: %v", reply, err)
			continue
		}
		if labels[0] != model.CategoryActionItem {
			t.Errorf("parseLabels(%q): expected action_item, got %s", reply, labels[0])
		}
	}
}

func TestParseLabels_IgnoresCommentary(t *testing.T) {
	reply := "Here are the labels:\n1: DECISION\nThat concludes the labeling.\n2: NONE"
	labels, err := parseLabels(reply, 2)
	if err != nil {
		t.Fatalf("parseLabels failed: %v", err)
	}
	if labels[0] != model.CategoryDecision || labels[1] != model.CategoryUncategorized {
		t.Errorf("unexpected labels: %v", labels)
	}
}

func TestParseLabels_MissingIndex(t *testing.T) {
	if _, err := parseLabels("1: ACTION\n3: NONE", 3); err == nil {
		t.Fatal("expected error for missing sentence 2")
	}
}

func TestParseLabels_DuplicateIndex(t *testing.T) {
	if _, err := parseLabels("1: ACTION\n1: DECISION", 1); err == nil {
		t.Fatal("expected error for duplicate index")
	}
}

func TestParseLabels_IndexOutOfRange(t *testing.T) {
	if _, err := parseLabels("5: ACTION", 2); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if _, err := parseLabels("0: ACTION", 2); err == nil {
		t.Fatal("expected error for index zero")
	}
}

func TestParseLabels_EmptyReply(t *testing.T) {
	if _, err := parseLabels("", 1); err == nil {
		t.Fatal("expected error for empty reply")
	}
}

func TestCategoryForLabel(t *testing.T) {
	cases := map[string]model.Category{
		"ACTION":   model.CategoryActionItem,
		"action":   model.CategoryActionItem,
		"DECISION": model.CategoryDecision,
		"QUESTION": model.CategoryOpenQuestion,
		"NONE":     model.CategoryUncategorized,
	}
	for label, want := range cases {
		if got := categoryForLabel(label); got != want {
			t.Errorf("categoryForLabel(%q): expected %s, got %s", label, want, got)
		}
	}
}
