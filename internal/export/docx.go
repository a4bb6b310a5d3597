package export

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reQuote   = regexp.MustCompile(`^>\s?(.*)$`)
)

// WriteDocx renders a markdown summary into a styled docx file at path.
func WriteDocx(title, markdown, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		renderLine(doc, trimmed)
	}

	return doc.SaveTo(path)
}

func renderLine(doc *docx.RootDoc, line string) {
	if m := reHeading.FindStringSubmatch(line); m != nil {
		addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
		return
	}
	if m := reBullet.FindStringSubmatch(line); m != nil {
		addRichText(doc.AddParagraph(""), "• "+m[1])
		return
	}
	if m := reQuote.FindStringSubmatch(line); m != nil {
		p := doc.AddParagraph("")
		p.AddText(cleanMarkdownInline(m[1])).Font(fontName).Size(fontSize).Color("444444").Italic(true)
		return
	}
	// numbered items keep their number
	addRichText(doc.AddParagraph(""), line)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	for _, span := range splitBold(text) {
		run := p.AddText(span.text).Font(fontName).Size(fontSize).Color("000000")
		if span.bold {
			run.Bold(true)
		}
	}
}

type span struct {
	text string
	bold bool
}

// splitBold cuts text at **bold** markers. Empty plain spans are dropped.
func splitBold(text string) []span {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	var spans []span
	for i, part := range parts {
		if part != "" {
			spans = append(spans, span{text: cleanMarkdownInline(part)})
		}
		if i < len(matches) {
			spans = append(spans, span{text: cleanMarkdownInline(matches[i][1]), bold: true})
		}
	}
	return spans
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
