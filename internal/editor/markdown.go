package editor

import (
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/renobook/internal/store"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	importParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	// 导入的 markdown 里可能夹带原始 HTML，区块内容只接受纯文本。
	htmlStripper = bluemonday.StrictPolicy()
)

// ImportMarkdown converts a pasted markdown document into sections appended
// to the draft: a leading level-1 heading opens a hero section, every other
// heading opens a text section, and paragraph text flows into the current
// section's content one paragraph per line. Returns the appended sections.
func (d *Draft) ImportMarkdown(source string) []store.Section {
	d.mu.Lock()
	defer d.mu.Unlock()

	src := []byte(source)
	doc := importParser.Parser().Parse(text.NewReader(src))

	var built []store.Section
	var lines []string
	open := false
	var pending store.Section

	flush := func() {
		if !open {
			return
		}
		pending.Content = strings.Join(lines, "\n")
		built = append(built, pending)
		lines = nil
		open = false
	}
	start := func(sectionType store.SectionType, title string) {
		flush()
		pending = defaultSection(sectionType, title)
		open = true
	}
	appendLine := func(line string) {
		if line == "" {
			return
		}
		if !open {
			start(store.SectionText, "")
		}
		lines = append(lines, line)
	}

	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Heading:
			title := nodeText(node, src)
			if !open && len(built) == 0 && len(d.page.Sections) == 0 && node.Level == 1 {
				start(store.SectionHero, title)
			} else {
				start(store.SectionText, title)
			}
		case *ast.Paragraph, *ast.TextBlock:
			appendLine(nodeText(child, src))
		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				appendLine(nodeText(item, src))
			}
		case *ast.Blockquote:
			appendLine(nodeText(node, src))
		case *ast.HTMLBlock:
			var raw strings.Builder
			for i := 0; i < node.Lines().Len(); i++ {
				line := node.Lines().At(i)
				raw.Write(line.Value(src))
			}
			appendLine(strings.TrimSpace(htmlStripper.Sanitize(raw.String())))
		}
	}
	flush()

	for i := range built {
		built[i].Order = len(d.page.Sections) + 1
		d.page.Sections = append(d.page.Sections, built[i])
	}

	return built
}

func defaultSection(sectionType store.SectionType, title string) store.Section {
	section := store.Section{
		ID:              uuid.NewString(),
		Type:            sectionType,
		Title:           title,
		BackgroundColor: "bg-white",
		TextColor:       "text-gray-900",
	}
	if sectionType == store.SectionHero {
		section.BackgroundColor = "bg-gradient-to-br from-gray-900 to-gray-800"
		section.TextColor = "text-white"
	}
	return section
}

func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := child.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.RawHTML:
			var raw strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				segment := node.Segments.At(i)
				raw.Write(segment.Value(source))
			}
			sb.WriteString(htmlStripper.Sanitize(raw.String()))
		case *ast.AutoLink:
			sb.Write(node.URL(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
