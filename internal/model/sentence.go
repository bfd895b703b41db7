package model

// Sentence is a contiguous span of the normalized input text
type Sentence struct {
	Text   string `json:"text"`   // The sentence text itself
	Offset int    `json:"offset"` // Byte offset of the sentence start in the input
}

// Category tags a sentence with the kind of meeting outcome it records
type Category string

const (
	CategoryActionItem    Category = "action_item"   // A task assigned to someone
	CategoryDecision      Category = "decision"      // A resolution reached by participants
	CategoryOpenQuestion  Category = "open_question" // An unresolved issue
	CategoryUncategorized Category = "uncategorized" // No rule matched
)

// Categories lists the displayable categories in default priority order
func Categories() []Category {
	return []Category{CategoryActionItem, CategoryDecision, CategoryOpenQuestion}
}

// ParseCategory resolves a category name from configuration
func ParseCategory(name string) (Category, bool) {
	switch Category(name) {
	case CategoryActionItem, CategoryDecision, CategoryOpenQuestion, CategoryUncategorized:
		return Category(name), true
	default:
		return "", false
	}
}

// Title returns the human-readable heading for a category
func (c Category) Title() string {
	switch c {
	case CategoryActionItem:
		return "Action Items"
	case CategoryDecision:
		return "Decisions Made"
	case CategoryOpenQuestion:
		return "Open Questions"
	default:
		return "Uncategorized"
	}
}

// ClassifiedSentence pairs a sentence with exactly one category.
// Immutable once produced.
type ClassifiedSentence struct {
	Sentence
	Category Category `json:"category"`
	Rule     string   `json:"rule,omitempty"` // Which rule matched (e.g., "keyword:will", "suffix:?", "nlp")
}

// AnalysisResult is the ordered outcome of one classification run.
// Every input sentence appears exactly once, Uncategorized included.
type AnalysisResult struct {
	Sentences []ClassifiedSentence `json:"sentences"`
}

// ByCategory returns the sentences tagged with the given category, in input order
func (r *AnalysisResult) ByCategory(c Category) []ClassifiedSentence {
	var out []ClassifiedSentence
	for _, s := range r.Sentences {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// Counts returns the number of sentences per category
func (r *AnalysisResult) Counts() map[Category]int {
	counts := make(map[Category]int)
	for _, s := range r.Sentences {
		counts[s.Category]++
	}
	return counts
}
