package tone

import "testing"

func TestParseTone(t *testing.T) {
	tests := []struct {
		in     string
		want   Tone
		wantOK bool
	}{
		{"웜", Warm, true},
		{"웜톤", Warm, true},
		{"WARM", Warm, true},
		{"쿨", Cool, true},
		{" cool ", Cool, true},
		{"뉴트럴", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTone(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTone(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseSeason(t *testing.T) {
	tests := []struct {
		in     string
		want   Season
		wantOK bool
	}{
		{"봄", Spring, true},
		{"여름", Summer, true},
		{"가을", Autumn, true},
		{"fall", Autumn, true},
		{"겨울", Winter, true},
		{"Winter", Winter, true},
		{"장마", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSeason(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSeason(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestVerdict_TypeName(t *testing.T) {
	if got := (Verdict{Cool, Summer}).TypeName(); got != "여름 쿨톤" {
		t.Errorf("TypeName() = %q, want 여름 쿨톤", got)
	}
	if got := DefaultVerdict.TypeName(); got != "봄 웜톤" {
		t.Errorf("TypeName() = %q, want 봄 웜톤", got)
	}
}

func TestSeason_Tone(t *testing.T) {
	for _, s := range Seasons {
		want := Warm
		if s == Summer || s == Winter {
			want = Cool
		}
		if s.Tone() != want {
			t.Errorf("%s.Tone() = %s, want %s", s, s.Tone(), want)
		}
	}
}
