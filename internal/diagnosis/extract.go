package diagnosis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedModelOutput is returned when a model reply holds no usable JSON object.
var ErrMalformedModelOutput = errors.New("malformed model output")

// ExtractJSONObject returns the text between the first '{' and the last '}'.
func ExtractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON object found", ErrMalformedModelOutput)
	}
	return raw[start : end+1], nil
}

// Draft is the model's structured proposal before repair.
type Draft struct {
	PrimaryTone     string
	SubTone         string
	Description     string
	Recommendations Value

	EmotionalDescription string
	DetailedAnalysis     string
	ColorPalette         []string
	StyleKeywords        []string
	MakeupTips           []string

	ResultTone string
	Confidence *float64
	TotalScore *float64
	TopTypes   []TopTypeDraft
}

// TopTypeDraft is one proposed entry of a survey ranking.
type TopTypeDraft struct {
	Type          string
	Name          string
	Description   string
	ColorPalette  []string
	StyleKeywords []string
	MakeupTips    []string
	Score         *float64
}

// ParseDraft extracts and decodes the JSON object in a model reply.
// Errors wrap ErrMalformedModelOutput.
func ParseDraft(raw string) (*Draft, error) {
	obj, err := ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	v, err := DecodeValue([]byte(obj))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	if v.Kind() != KindMapping {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrMalformedModelOutput)
	}

	d := &Draft{Recommendations: NullValue()}
	for _, f := range v.Fields() {
		switch f.Key {
		case "primary_tone":
			d.PrimaryTone = text(f.Value)
		case "sub_tone":
			d.SubTone = text(f.Value)
		case "description":
			d.Description = text(f.Value)
		case "recommendations":
			d.Recommendations = f.Value
		case "emotional_description":
			d.EmotionalDescription = text(f.Value)
		case "detailed_analysis":
			d.DetailedAnalysis = text(f.Value)
		case "color_palette":
			d.ColorPalette = NormalizeRecommendations(f.Value)
		case "style_keywords":
			d.StyleKeywords = NormalizeRecommendations(f.Value)
		case "makeup_tips":
			d.MakeupTips = NormalizeRecommendations(f.Value)
		case "result_tone":
			d.ResultTone = text(f.Value)
		case "confidence":
			d.Confidence = number(f.Value)
		case "total_score":
			d.TotalScore = number(f.Value)
		case "top_types":
			for _, item := range f.Value.Items() {
				if item.Kind() != KindMapping {
					continue
				}
				d.TopTypes = append(d.TopTypes, parseTopType(item))
			}
		}
	}
	return d, nil
}

func parseTopType(v Value) TopTypeDraft {
	var t TopTypeDraft
	for _, f := range v.Fields() {
		switch f.Key {
		case "type":
			t.Type = text(f.Value)
		case "name":
			t.Name = text(f.Value)
		case "description":
			t.Description = text(f.Value)
		case "color_palette":
			t.ColorPalette = NormalizeRecommendations(f.Value)
		case "style_keywords":
			t.StyleKeywords = NormalizeRecommendations(f.Value)
		case "makeup_tips":
			t.MakeupTips = NormalizeRecommendations(f.Value)
		case "score":
			t.Score = number(f.Value)
		}
	}
	return t
}

func text(v Value) string {
	s, _ := v.Text()
	return strings.TrimSpace(s)
}

func number(v Value) *float64 {
	if n, ok := v.Number(); ok {
		return &n
	}
	return nil
}
