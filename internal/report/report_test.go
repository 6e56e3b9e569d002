package report

import (
	"strings"
	"testing"
	"time"

	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/tone"
)

func fixedBuilder() *Builder {
	return &Builder{now: func() time.Time { return time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC) }}
}

func sampleDiagnosis() *diagnosis.Diagnosis {
	return &diagnosis.Diagnosis{
		PrimaryTone:      tone.Warm,
		SubSeason:        tone.Autumn,
		Name:             "가을 웜톤 🍂",
		Description:      " 깊고 따뜻한 당신 ",
		DetailedAnalysis: "첫 문단입니다.\n\n\n두 번째 문단입니다.\r\n\r\n",
		Recommendations:  []string{"카멜 코트", "  ", "골드 액세서리"},
		Confidence:       90,
		TotalScore:       88,
		ColorPalette:     []string{"#800020", "#800020", "burgundy", "#abc", " #556b2f "},
		StyleKeywords:    []string{"따뜻함"},
		MakeupTips:       []string{"브릭레드 립"},
		TopTypes: []diagnosis.TopType{
			{Type: tone.Autumn, Name: "가을 웜톤 🍂", Score: 88},
			{Type: tone.Spring, Name: "봄 웜톤 🌸", Score: 68},
		},
	}
}

func TestBuilder_Build(t *testing.T) {
	data := fixedBuilder().Build(sampleDiagnosis(), nil)

	if data.Title != "가을 웜톤 🍂 퍼스널 컬러 진단 리포트" {
		t.Errorf("Title = %q", data.Title)
	}
	if data.Summary != "깊고 따뜻한 당신" {
		t.Errorf("Summary = %q", data.Summary)
	}
	wantPalette := []string{"#800020", "#ABC", "#556B2F"}
	if strings.Join(data.ColorPalette, ",") != strings.Join(wantPalette, ",") {
		t.Errorf("ColorPalette = %v, want %v", data.ColorPalette, wantPalette)
	}
	if len(data.Recommendations) != 2 {
		t.Errorf("Recommendations = %v, want blanks dropped", data.Recommendations)
	}
	if len(data.Analysis) != 2 || data.Analysis[1] != "두 번째 문단입니다." {
		t.Errorf("Analysis = %q", data.Analysis)
	}
	if data.Conversation != nil {
		t.Error("Conversation should be nil without turns")
	}
	if !data.GeneratedAt.Equal(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("GeneratedAt = %v", data.GeneratedAt)
	}
}

func TestBuilder_Build_NameFallback(t *testing.T) {
	d := sampleDiagnosis()
	d.Name = ""
	if got := fixedBuilder().Build(d, nil).TypeName; got != "가을 웜톤" {
		t.Errorf("TypeName = %q, want verdict type name", got)
	}
}

func TestBuilder_Build_ConversationStats(t *testing.T) {
	t0 := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	turns := []diagnosis.Turn{
		{Role: diagnosis.RoleUser, Text: "골드가 좋아요", CreatedAt: t0},
		{Role: diagnosis.RoleAssistant, Text: "웜톤이시네요", CreatedAt: t0.Add(time.Second)},
		{Role: diagnosis.RoleUser, Text: "브라운", CreatedAt: t0.Add(2 * time.Minute)},
	}

	c := fixedBuilder().Build(sampleDiagnosis(), turns).Conversation
	if c == nil {
		t.Fatal("Conversation should be set")
	}
	if c.Turns != 3 || c.UserTurns != 2 || c.AssistantTurns != 1 {
		t.Errorf("counts = %+v", c)
	}
	// "골드가 좋아요" is 7 runes, "브라운" is 3.
	if c.AvgUserRunes != 5 {
		t.Errorf("AvgUserRunes = %d, want 5", c.AvgUserRunes)
	}
	if !c.StartedAt.Equal(t0) || !c.LastAt.Equal(t0.Add(2*time.Minute)) {
		t.Errorf("span = %v..%v", c.StartedAt, c.LastAt)
	}
}

func TestRenderer_Markdown(t *testing.T) {
	md := NewRenderer().Markdown(fixedBuilder().Build(sampleDiagnosis(), nil))

	for _, want := range []string{
		"# 가을 웜톤 🍂 퍼스널 컬러 진단 리포트",
		"**신뢰도**: 90%",
		"| `#ABC` |",
		"## 메이크업 팁\n\n- 브릭레드 립",
		"| 2 | 봄 웜톤 🌸 | 68 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q\n%s", want, md)
		}
	}
	if strings.Contains(md, "## 대화 요약") {
		t.Error("conversation section should be omitted for survey reports")
	}
}

func TestRenderHTML(t *testing.T) {
	d := sampleDiagnosis()
	d.Recommendations = []string{"<script>alert(1)</script> 골드"}
	data := fixedBuilder().Build(d, []diagnosis.Turn{{Role: diagnosis.RoleUser, Text: "안녕"}})

	html, err := RenderHTML(data)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("RenderHTML() should produce a full page")
	}
	if !strings.Contains(html, "<title>가을 웜톤 🍂 퍼스널 컬러 진단 리포트</title>") {
		t.Error("page title missing")
	}
	if !strings.Contains(html, "<table>") {
		t.Error("palette table not rendered")
	}
	if strings.Contains(html, "<script>") {
		t.Error("raw HTML from report text must not be rendered")
	}
	if !strings.Contains(html, "대화 요약") {
		t.Error("conversation section missing")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"*bold*", `\*bold\*`},
		{" [link](x) ", `\[link\](x)`},
		{"a|b", `a\|b`},
	}
	for _, tt := range tests {
		if got := escape(tt.in); got != tt.want {
			t.Errorf("escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
