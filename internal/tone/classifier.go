package tone

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Scores holds the number of distinct keywords matched per set.
type Scores struct {
	Warm   int `json:"warm"`
	Cool   int `json:"cool"`
	Spring int `json:"spring"`
	Summer int `json:"summer"`
	Autumn int `json:"autumn"`
	Winter int `json:"winter"`
}

// Classifier is a deterministic keyword matcher. It is immutable and safe for
// concurrent use.
type Classifier struct {
	warm, cool                     []string
	spring, summer, autumn, winter []string
}

// NewClassifier prepares a classifier for the given table.
func NewClassifier(table KeywordTable) *Classifier {
	return &Classifier{
		warm:   prepare(table.Warm),
		cool:   prepare(table.Cool),
		spring: prepare(table.Spring),
		summer: prepare(table.Summer),
		autumn: prepare(table.Autumn),
		winter: prepare(table.Winter),
	}
}

// NewDefaultClassifier returns a classifier over DefaultKeywords.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultKeywords())
}

// normalize folds text for matching: NFC composition then lowercase.
func normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// prepare normalizes keywords and drops empty and duplicate entries.
func prepare(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = normalize(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// countHits counts keywords present in text, one point per keyword.
func countHits(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}

// Score returns the per-set hit counts for text.
func (c *Classifier) Score(text string) Scores {
	blob := normalize(text)
	return Scores{
		Warm:   countHits(blob, c.warm),
		Cool:   countHits(blob, c.cool),
		Spring: countHits(blob, c.spring),
		Summer: countHits(blob, c.summer),
		Autumn: countHits(blob, c.autumn),
		Winter: countHits(blob, c.winter),
	}
}

// Verdict derives the tone verdict from scores. Balanced warm/cool evidence,
// including none at all, yields DefaultVerdict. Season ties favor winter for
// cool and autumn for warm.
func (s Scores) Verdict() Verdict {
	switch {
	case s.Cool > s.Warm:
		if s.Summer > s.Winter {
			return Verdict{Primary: Cool, Season: Summer}
		}
		return Verdict{Primary: Cool, Season: Winter}
	case s.Warm > s.Cool:
		if s.Spring > s.Autumn {
			return Verdict{Primary: Warm, Season: Spring}
		}
		return Verdict{Primary: Warm, Season: Autumn}
	default:
		return DefaultVerdict
	}
}

// Classify returns the verdict for text.
func (c *Classifier) Classify(text string) Verdict {
	return c.Score(text).Verdict()
}

// ClassifyTurns concatenates the texts and classifies the result.
func (c *Classifier) ClassifyTurns(texts []string) Verdict {
	return c.Classify(strings.Join(texts, " "))
}
