package tone

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewDefaultClassifier()

	tests := []struct {
		name string
		text string
		want Verdict
	}{
		{name: "empty text", text: "", want: DefaultVerdict},
		{name: "no keywords", text: "안녕하세요 반갑습니다", want: DefaultVerdict},
		{name: "warm spring", text: "따뜻한 봄 코랄 느낌이 좋아요", want: Verdict{Warm, Spring}},
		{name: "warm autumn", text: "골드 액세서리랑 브라운, 카키 옷이 잘 어울려요", want: Verdict{Warm, Autumn}},
		{name: "warm tie favors autumn", text: "웜톤인데 잘 모르겠어요", want: Verdict{Warm, Autumn}},
		{name: "cool summer", text: "실버가 잘 어울리고 라벤더랑 파스텔 색이 좋아요", want: Verdict{Cool, Summer}},
		{name: "cool winter", text: "블랙 앤 화이트처럼 선명한 대비가 좋아요", want: Verdict{Cool, Winter}},
		{name: "cool tie favors winter", text: "쿨톤 같아요", want: Verdict{Cool, Winter}},
		{name: "balanced evidence", text: "웜톤인지 쿨톤인지 궁금해요", want: DefaultVerdict},
		{name: "case insensitive", text: "I love COOL SILVER and Navy", want: Verdict{Cool, Winter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifier_ExampleScores(t *testing.T) {
	s := NewDefaultClassifier().Score("따뜻한 봄 코랄 느낌이 좋아요")
	if s.Warm < 1 {
		t.Errorf("Warm = %d, want >= 1", s.Warm)
	}
	if s.Cool != 0 {
		t.Errorf("Cool = %d, want 0", s.Cool)
	}
	if s.Spring < 1 {
		t.Errorf("Spring = %d, want >= 1", s.Spring)
	}
	if s.Autumn != 0 {
		t.Errorf("Autumn = %d, want 0", s.Autumn)
	}
}

func TestClassifier_OnePointPerKeyword(t *testing.T) {
	c := NewClassifier(KeywordTable{Warm: []string{"웜", "웜"}, Cool: []string{"쿨"}})
	s := c.Score("웜 웜 웜 웜")
	if s.Warm != 1 {
		t.Errorf("Warm = %d, want 1", s.Warm)
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := NewDefaultClassifier()
	text := "가을 웜톤 같은데 버건디 립이 좋고 여름에는 라벤더도 입어요"
	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		if got := c.Classify(text); got != first {
			t.Fatalf("Classify() not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestClassifier_NormalizesDecomposedHangul(t *testing.T) {
	decomposed := norm.NFD.String("따뜻한 봄 코랄")
	if got := NewDefaultClassifier().Classify(decomposed); got != (Verdict{Warm, Spring}) {
		t.Errorf("Classify(NFD) = %+v, want warm/spring", got)
	}
}

func TestClassifyTurns(t *testing.T) {
	got := NewDefaultClassifier().ClassifyTurns([]string{"실버가 좋아요", "겨울 느낌"})
	if got != (Verdict{Cool, Winter}) {
		t.Errorf("ClassifyTurns() = %+v, want cool/winter", got)
	}
}

func TestLoadKeywordTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "warm:\n  - sunny\ncool:\n  - icy\n  - frost\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}

	table, err := LoadKeywordTable(path)
	if err != nil {
		t.Fatalf("LoadKeywordTable() error = %v", err)
	}
	if len(table.Warm) != 1 || table.Warm[0] != "sunny" {
		t.Errorf("Warm = %v, want [sunny]", table.Warm)
	}
	if len(table.Spring) == 0 {
		t.Error("Spring should keep the default set")
	}

	if got := NewClassifier(table).Classify("icy frost"); got.Primary != Cool {
		t.Errorf("Classify() = %+v, want cool", got)
	}
}

func TestLoadKeywordTable_Errors(t *testing.T) {
	if _, err := LoadKeywordTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(path, []byte("warm: [unclosed"), 0o644)
	if _, err := LoadKeywordTable(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
