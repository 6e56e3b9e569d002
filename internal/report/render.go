package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer turns ReportData into markdown and HTML.
type Renderer struct {
	md   goldmark.Markdown
	page *template.Template
}

// reportPageData holds template data for rendered report pages.
type reportPageData struct {
	Title   string
	Content template.HTML
}

// NewRenderer creates a Renderer. Raw HTML in report text is not passed through.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		page: template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Apple SD Gothic Neo', 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 820px;
      line-height: 1.7;
      background: #fdfaf6;
      color: #2d2a32;
    }
    article {
      background: #fff;
      border-radius: 16px;
      padding: 2rem;
      box-shadow: 0 10px 30px rgba(45, 42, 50, 0.08);
    }
    h1 { margin-top: 0; }
    table { border-collapse: collapse; }
    td, th { padding: 0.4rem 0.8rem; border: 1px solid #eee; }
    code { font-family: 'SFMono-Regular', Consolas, monospace; }
    @media (max-width: 640px) {
      body { padding: 1rem; }
      article { padding: 1.25rem; }
    }
  </style>
</head>
<body>
  <article>{{.Content}}</article>
</body>
</html>`)),
	}
}

var defaultRenderer = NewRenderer()

// RenderHTML renders data as a standalone HTML page with the default renderer.
func RenderHTML(data *ReportData) (string, error) {
	return defaultRenderer.RenderHTML(data)
}

// Markdown returns the markdown rendition of data.
func (r *Renderer) Markdown(data *ReportData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(data.Title))
	if data.Summary != "" {
		fmt.Fprintf(&b, "> %s\n\n", escape(data.Summary))
	}
	fmt.Fprintf(&b, "**타입**: %s (%s / %s) · **신뢰도**: %d%%\n\n",
		escape(data.TypeName), data.PrimaryTone.Korean()+"톤", data.SubSeason.Korean(), data.Confidence)

	if len(data.ColorPalette) > 0 {
		b.WriteString("## 추천 컬러 팔레트\n\n| 색상 |\n| --- |\n")
		for _, c := range data.ColorPalette {
			fmt.Fprintf(&b, "| `%s` |\n", c)
		}
		b.WriteString("\n")
	}

	writeList(&b, "스타일 키워드", data.StyleKeywords)
	writeList(&b, "메이크업 팁", data.MakeupTips)
	writeList(&b, "추천 사항", data.Recommendations)

	if len(data.Analysis) > 0 {
		b.WriteString("## 상세 분석\n\n")
		for _, p := range data.Analysis {
			b.WriteString(escape(p))
			b.WriteString("\n\n")
		}
	}

	if len(data.TopTypes) > 1 {
		b.WriteString("## 타입 순위\n\n| 순위 | 타입 | 점수 |\n| --- | --- | --- |\n")
		for i, t := range data.TopTypes {
			fmt.Fprintf(&b, "| %d | %s | %d |\n", i+1, escapeCell(t.Name), t.Score)
		}
		b.WriteString("\n")
	}

	if c := data.Conversation; c != nil {
		b.WriteString("## 대화 요약\n\n")
		fmt.Fprintf(&b, "- 전체 메시지: %d\n- 사용자 메시지: %d\n- 평균 메시지 길이: %d자\n\n",
			c.Turns, c.UserTurns, c.AvgUserRunes)
	}

	return b.String()
}

// RenderHTML renders data as a standalone HTML page.
func (r *Renderer) RenderHTML(data *ReportData) (string, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(r.Markdown(data)), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	var page bytes.Buffer
	err := r.page.Execute(&page, reportPageData{
		Title:   data.Title,
		Content: template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("execute report template: %w", err)
	}
	return page.String(), nil
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", escape(item))
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`,
	"<", `\<`, ">", `\>`, "#", `\#`, "|", `\|`,
)

// escape neutralizes markdown syntax in model-written text.
func escape(s string) string {
	return markdownEscaper.Replace(strings.TrimSpace(s))
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escape(s), "\n", " ")
}
