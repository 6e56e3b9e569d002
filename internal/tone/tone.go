// Package tone implements the keyword-frequency personal color classifier.
package tone

import "strings"

// Tone is the top-level warm/cool classification.
type Tone string

// Season refines a tone into the four-season taxonomy.
type Season string

const (
	Warm Tone = "warm"
	Cool Tone = "cool"
)

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// Seasons lists all seasons in display order.
var Seasons = []Season{Spring, Summer, Autumn, Winter}

// Verdict is the classifier output.
type Verdict struct {
	Primary Tone   `json:"primary_tone"`
	Season  Season `json:"sub_season"`
}

// DefaultVerdict is returned when warm and cool evidence is balanced.
var DefaultVerdict = Verdict{Primary: Warm, Season: Spring}

// Korean returns the Korean label used in prompts and stored records ("웜", "쿨").
func (t Tone) Korean() string {
	if t == Cool {
		return "쿨"
	}
	return "웜"
}

// Korean returns the Korean season label ("봄", "여름", "가을", "겨울").
func (s Season) Korean() string {
	switch s {
	case Summer:
		return "여름"
	case Autumn:
		return "가을"
	case Winter:
		return "겨울"
	default:
		return "봄"
	}
}

// Tone returns the tone a season belongs to.
func (s Season) Tone() Tone {
	if s == Summer || s == Winter {
		return Cool
	}
	return Warm
}

// Valid reports whether t is warm or cool.
func (t Tone) Valid() bool {
	return t == Warm || t == Cool
}

// Valid reports whether s is one of the four seasons.
func (s Season) Valid() bool {
	switch s {
	case Spring, Summer, Autumn, Winter:
		return true
	}
	return false
}

// ParseTone accepts English or Korean labels ("warm", "웜", "웜톤").
func ParseTone(s string) (Tone, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "warm" || strings.HasPrefix(s, "웜"):
		return Warm, true
	case s == "cool" || strings.HasPrefix(s, "쿨"):
		return Cool, true
	}
	return "", false
}

// ParseSeason accepts English or Korean labels ("autumn", "fall", "가을").
func ParseSeason(s string) (Season, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "spring" || strings.HasPrefix(s, "봄"):
		return Spring, true
	case s == "summer" || strings.HasPrefix(s, "여름"):
		return Summer, true
	case s == "autumn" || s == "fall" || strings.HasPrefix(s, "가을"):
		return Autumn, true
	case s == "winter" || strings.HasPrefix(s, "겨울"):
		return Winter, true
	}
	return "", false
}

// TypeName returns the combined label, e.g. "봄 웜톤".
func (v Verdict) TypeName() string {
	return v.Season.Korean() + " " + v.Primary.Korean() + "톤"
}
