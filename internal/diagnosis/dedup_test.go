package diagnosis

import (
	"strings"
	"testing"
)

func TestDedupSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "duplicate long sentence removed",
			in:   "코랄 컬러가 잘 어울리는 타입입니다. 골드 액세서리를 추천해요. 코랄 컬러가 잘 어울리는 타입입니다. 감사합니다.",
			want: "코랄 컬러가 잘 어울리는 타입입니다. 골드 액세서리를 추천해요. 감사합니다.",
		},
		{
			name: "short sentences kept even when repeated",
			in:   "좋아요. 좋아요. 정말 잘 어울리는 색상이에요!",
			want: "좋아요. 좋아요. 정말 잘 어울리는 색상이에요!",
		},
		{
			name: "paragraph breaks preserved",
			in:   "첫 번째 문단의 긴 문장입니다.\n\n두 번째 문단의 긴 문장입니다.",
			want: "첫 번째 문단의 긴 문장입니다.\n\n두 번째 문단의 긴 문장입니다.",
		},
		{
			name: "excess blank lines collapsed",
			in:   "첫 번째 문단의 긴 문장입니다.\n\n\n\n두 번째 문단의 긴 문장입니다.",
			want: "첫 번째 문단의 긴 문장입니다.\n\n두 번째 문단의 긴 문장입니다.",
		},
		{
			name: "decimal points do not split",
			in:   "채도 1.5배 높은 색을 피하세요. 채도 1.5배 높은 색을 피하세요.",
			want: "채도 1.5배 높은 색을 피하세요.",
		},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DedupSentences(tt.in); got != tt.want {
				t.Errorf("DedupSentences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDedupSentences_FirstSeenOrder(t *testing.T) {
	a := "첫 번째로 등장하는 긴 문장입니다."
	b := "두 번째로 등장하는 긴 문장입니다."
	got := DedupSentences(strings.Join([]string{a, b, a, b, a}, " "))
	if got != a+" "+b {
		t.Errorf("DedupSentences() = %q", got)
	}
	if strings.Count(got, a) != 1 {
		t.Errorf("sentence %q appears %d times", a, strings.Count(got, a))
	}
}
