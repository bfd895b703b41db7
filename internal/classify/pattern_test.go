package classify

import (
	"context"
	"testing"

	"github.com/notesift/notesift/internal/model"
)

func newTestClassifier(t *testing.T) *PatternClassifier {
	t.Helper()
	c, err := NewPatternClassifier(model.DefaultConfig().Classifier)
	if err != nil {
		t.Fatalf("NewPatternClassifier failed: %v", err)
	}
	return c
}

func TestPatternClassifier_Example(t *testing.T) {
	c := newTestClassifier(t)

	text := "We decided to ship on Friday. Can we confirm the budget? John will email the client."
	outcome, err := c.Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	sentences := outcome.Result.Sentences
	if len(sentences) != 3 {
		t.Fatalf("expected 3 classified sentences, got %d", len(sentences))
	}

	expected := []model.Category{
		model.CategoryDecision,
		model.CategoryOpenQuestion,
		model.CategoryActionItem,
	}
	for i, want := range expected {
		if sentences[i].Category != want {
			t.Errorf("sentence %d (%q): expected %s, got %s", i, sentences[i].Text, want, sentences[i].Category)
		}
	}

	if outcome.Method != "pattern" {
		t.Errorf("expected method pattern, got %s", outcome.Method)
	}
}

func TestPatternClassifier_PriorityTieBreak(t *testing.T) {
	c := newTestClassifier(t)

	// Matches both an action keyword ("will") and a decision keyword
	// ("decided"); default priority puts action items first
	outcome, err := c.Classify(context.Background(), "We decided that John will own the rollout.")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if got := outcome.Result.Sentences[0].Category; got != model.CategoryActionItem {
		t.Errorf("expected action_item to win the tie-break, got %s", got)
	}
}

func TestPatternClassifier_ConfiguredPriority(t *testing.T) {
	cfg := model.DefaultConfig().Classifier
	cfg.Priority = []string{"decision", "action_item", "open_question"}

	c, err := NewPatternClassifier(cfg)
	if err != nil {
		t.Fatalf("NewPatternClassifier failed: %v", err)
	}

	outcome, err := c.Classify(context.Background(), "We decided that John will own the rollout.")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if got := outcome.Result.Sentences[0].Category; got != model.CategoryDecision {
		t.Errorf("expected decision to win under custom priority, got %s", got)
	}
}

func TestPatternClassifier_InvalidPriority(t *testing.T) {
	cfg := model.DefaultConfig().Classifier
	cfg.Priority = []string{"urgent"}

	if _, err := NewPatternClassifier(cfg); err == nil {
		t.Fatal("expected error for unknown priority category")
	}

	cfg.Priority = []string{"uncategorized"}
	if _, err := NewPatternClassifier(cfg); err == nil {
		t.Fatal("expected error for uncategorized in priority")
	}
}

func TestPatternClassifier_QuestionMark(t *testing.T) {
	c := newTestClassifier(t)

	outcome, err := c.Classify(context.Background(), "Who owns the migration?")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	s := outcome.Result.Sentences[0]
	if s.Category != model.CategoryOpenQuestion {
		t.Errorf("expected open_question, got %s", s.Category)
	}
	if s.Rule != "suffix:?" {
		t.Errorf("expected rule suffix:?, got %q", s.Rule)
	}
}

func TestPatternClassifier_Checkbox(t *testing.T) {
	c := newTestClassifier(t)

	cases := []string{
		"[ ] prepare slides",
		"- [ ] prepare slides",
		"* [x] prepare slides",
		"[] prepare slides",
	}
	for _, text := range cases {
		outcome, err := c.Classify(context.Background(), text)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", text, err)
		}
		s := outcome.Result.Sentences[0]
		if s.Category != model.CategoryActionItem {
			t.Errorf("%q: expected action_item, got %s", text, s.Category)
		}
		if s.Rule != "checkbox" {
			t.Errorf("%q: expected rule checkbox, got %q", text, s.Rule)
		}
	}
}

func TestPatternClassifier_WordBoundaries(t *testing.T) {
	c := newTestClassifier(t)

	// "willing" contains "will" but must not match on word boundaries
	outcome, err := c.Classify(context.Background(), "Everyone seemed willing enough.")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if got := outcome.Result.Sentences[0].Category; got != model.CategoryUncategorized {
		t.Errorf("expected uncategorized for substring match, got %s", got)
	}
}

func TestPatternClassifier_CaseInsensitive(t *testing.T) {
	c := newTestClassifier(t)

	outcome, err := c.Classify(context.Background(), "DECIDED: we go with option B.")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if got := outcome.Result.Sentences[0].Category; got != model.CategoryDecision {
		t.Errorf("expected decision for uppercase keyword, got %s", got)
	}
}

func TestPatternClassifier_Coverage(t *testing.T) {
	c := newTestClassifier(t)

	text := "We decided to ship. Random chatter here. Who reviews the PR? John will file the ticket."
	outcome, err := c.Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	// Every input sentence appears exactly once in the result
	split := Split(text)
	if len(outcome.Result.Sentences) != len(split) {
		t.Fatalf("coverage broken: %d input sentences, %d classified", len(split), len(outcome.Result.Sentences))
	}
	for i, s := range outcome.Result.Sentences {
		if s.Text != split[i].Text {
			t.Errorf("sentence %d: order or text changed: %q vs %q", i, s.Text, split[i].Text)
		}
	}

	// Counts across all categories sum to the sentence total
	counts := outcome.Result.Counts()
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != len(split) {
		t.Errorf("category counts sum to %d, expected %d", total, len(split))
	}
	if counts[model.CategoryUncategorized] != 1 {
		t.Errorf("expected 1 uncategorized sentence, got %d", counts[model.CategoryUncategorized])
	}
}

func TestPatternClassifier_Idempotent(t *testing.T) {
	c := newTestClassifier(t)
	text := "We decided to ship on Friday. Can we confirm the budget? John will email the client."

	first, err := c.Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("first Classify failed: %v", err)
	}
	second, err := c.Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("second Classify failed: %v", err)
	}

	if len(first.Result.Sentences) != len(second.Result.Sentences) {
		t.Fatalf("runs disagree on sentence count")
	}
	for i := range first.Result.Sentences {
		a, b := first.Result.Sentences[i], second.Result.Sentences[i]
		if a.Category != b.Category || a.Text != b.Text || a.Rule != b.Rule {
			t.Errorf("sentence %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestPatternClassifier_CustomKeywords(t *testing.T) {
	cfg := model.ClassifierConfig{
		Priority:         []string{"action_item", "decision", "open_question"},
		ActionKeywords:   []string{"circle back"},
		DecisionKeywords: []string{"locked in"},
	}
	c, err := NewPatternClassifier(cfg)
	if err != nil {
		t.Fatalf("NewPatternClassifier failed: %v", err)
	}

	outcome, err := c.Classify(context.Background(), "Locked in the venue. Sam to circle back on catering.")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	sentences := outcome.Result.Sentences
	if sentences[0].Category != model.CategoryDecision {
		t.Errorf("expected decision from custom keyword, got %s", sentences[0].Category)
	}
	if sentences[1].Category != model.CategoryActionItem {
		t.Errorf("expected action_item from custom phrase, got %s", sentences[1].Category)
	}
}

func TestPatternClassifier_EmptyText(t *testing.T) {
	c := newTestClassifier(t)

	outcome, err := c.Classify(context.Background(), "")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(outcome.Result.Sentences) != 0 {
		t.Errorf("expected empty result, got %d sentences", len(outcome.Result.Sentences))
	}
}
