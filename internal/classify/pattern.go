package classify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/notesift/notesift/internal/model"
)

// checkboxPattern matches task-list style prefixes like "[ ]", "- [x]", "* []"
var checkboxPattern = regexp.MustCompile(`^\s*(?:[-*•]\s*)?\[[ xX]?\]`)

// rule is a single named match against a sentence
type rule struct {
	name  string
	match func(sentence string) bool
}

// keywordRule matches a keyword on word boundaries, case-insensitively
func keywordRule(keyword string) rule {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	return rule{
		name:  "keyword:" + keyword,
		match: re.MatchString,
	}
}

// PatternClassifier assigns categories via keyword/regex rules.
// Rules and tie-break order come from configuration; the first matching
// category in priority order wins.
type PatternClassifier struct {
	priority []model.Category
	rules    map[model.Category][]rule
}

// NewPatternClassifier builds a classifier from the configured rule lists
func NewPatternClassifier(cfg model.ClassifierConfig) (*PatternClassifier, error) {
	priority := make([]model.Category, 0, len(cfg.Priority))
	for _, name := range cfg.Priority {
		cat, ok := model.ParseCategory(name)
		if !ok || cat == model.CategoryUncategorized {
			return nil, fmt.Errorf("invalid priority category: %q", name)
		}
		priority = append(priority, cat)
	}
	if len(priority) == 0 {
		priority = model.Categories()
	}

	rules := make(map[model.Category][]rule)

	rules[model.CategoryActionItem] = append(rules[model.CategoryActionItem], rule{
		name:  "checkbox",
		match: checkboxPattern.MatchString,
	})
	for _, kw := range cfg.ActionKeywords {
		rules[model.CategoryActionItem] = append(rules[model.CategoryActionItem], keywordRule(kw))
	}

	for _, kw := range cfg.DecisionKeywords {
		rules[model.CategoryDecision] = append(rules[model.CategoryDecision], keywordRule(kw))
	}

	rules[model.CategoryOpenQuestion] = append(rules[model.CategoryOpenQuestion], rule{
		name:  "suffix:?",
		match: func(s string) bool { return strings.HasSuffix(s, "?") },
	})
	for _, kw := range cfg.QuestionKeywords {
		rules[model.CategoryOpenQuestion] = append(rules[model.CategoryOpenQuestion], keywordRule(kw))
	}

	return &PatternClassifier{priority: priority, rules: rules}, nil
}

// Name returns the classifier name
func (c *PatternClassifier) Name() string {
	return "pattern"
}

// Classify splits text into sentences and tags each with one category
func (c *PatternClassifier) Classify(_ context.Context, text string) (*Outcome, error) {
	sentences := Split(text)

	result := model.AnalysisResult{
		Sentences: make([]model.ClassifiedSentence, 0, len(sentences)),
	}
	for _, sentence := range sentences {
		category, matched := c.classifySentence(sentence.Text)
		result.Sentences = append(result.Sentences, model.ClassifiedSentence{
			Sentence: sentence,
			Category: category,
			Rule:     matched,
		})
	}

	return &Outcome{Result: result, Method: c.Name()}, nil
}

// classifySentence evaluates the rule sets in priority order
func (c *PatternClassifier) classifySentence(sentence string) (model.Category, string) {
	for _, category := range c.priority {
		for _, r := range c.rules[category] {
			if r.match(sentence) {
				return category, r.name
			}
		}
	}
	return model.CategoryUncategorized, ""
}
