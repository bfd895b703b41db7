package classify

import (
	"strings"

	"github.com/notesift/notesift/internal/model"
)

// Split segments text into sentences with their start byte offsets.
// Boundaries are sentence terminators (. ! ?) followed by whitespace or end
// of input, and hard newlines, so bullet-list notes split per line. Every
// non-blank span of the input lands in exactly one sentence.
func Split(text string) []model.Sentence {
	var sentences []model.Sentence
	start := -1 // -1 while between sentences

	flush := func(end int) {
		if start < 0 || end <= start {
			start = -1
			return
		}
		raw := strings.TrimRight(text[start:end], " \t")
		if raw != "" {
			sentences = append(sentences, model.Sentence{Text: raw, Offset: start})
		}
		start = -1
	}

	for i, r := range text {
		if start < 0 {
			if r == ' ' || r == '\t' || r == '\n' {
				continue
			}
			start = i
		}

		switch r {
		case '\n':
			flush(i)
		case '.', '!', '?':
			// Boundary only when followed by whitespace or end of input,
			// to avoid splitting on decimals and abbreviations
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' || text[i+1] == '\n' {
				flush(i + 1)
			}
		}
	}
	flush(len(text))

	return sentences
}
