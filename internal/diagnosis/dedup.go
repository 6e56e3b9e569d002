package diagnosis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minDedupRunes is the length above which repeated sentences are dropped.
const minDedupRunes = 10

var blankLines = regexp.MustCompile(`\n\s*\n\s*\n`)

type sentence struct {
	text string
	sep  string
}

// splitSentences splits text after '.', '!' or '?' followed by whitespace,
// keeping the whitespace run as the sentence separator.
func splitSentences(text string) []sentence {
	var out []sentence
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		out = append(out, sentence{text: string(runes[start : i+1]), sep: string(runes[i+1 : j])})
		start = j
		i = j - 1
	}
	if start < len(runes) {
		out = append(out, sentence{text: string(runes[start:])})
	}
	return out
}

// DedupSentences removes repeated sentences longer than ten characters, keeping the
// first occurrence. Shorter sentences are kept as they are. Runs of blank lines
// collapse to one.
func DedupSentences(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = blankLines.ReplaceAllString(text, "\n\n")

	seen := make(map[string]struct{})
	var b strings.Builder
	for _, s := range splitSentences(text) {
		key := strings.TrimSpace(s.text)
		if utf8.RuneCountInString(key) > minDedupRunes {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		b.WriteString(s.text)
		b.WriteString(s.sep)
	}
	return strings.TrimSpace(b.String())
}
