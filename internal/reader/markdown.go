package reader

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownReader handles Markdown files using goldmark. Headings are
// flattened to standalone plain-text lines so the downstream boundary
// detector can pick them up the same way it does in extracted PDF text.
type MarkdownReader struct{}

func (p *MarkdownReader) Read(r io.Reader, filename string) (Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	out := Document{Title: titleFromFilename(filename)}

	var blocks []string
	sawHeading := false

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title == "" {
				continue
			}
			// The first top-level heading doubles as the document title.
			if !sawHeading && node.Level == 1 {
				out.Title = title
			}
			sawHeading = true
			blocks = append(blocks, title)
		default:
			if t := extractText(n, src); t != "" {
				blocks = append(blocks, t)
			}
		}
	}

	out.Text = strings.Join(blocks, "\n\n")
	return out, nil
}

// extractText gets the text content of a goldmark block node. Leaf
// blocks carry their raw source lines; container blocks (lists, quotes)
// only have children.
func extractText(n ast.Node, src []byte) string {
	if n.Type() != ast.TypeBlock {
		return ""
	}
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	if buf.Len() == 0 {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t := extractText(c, src); t != "" {
				buf.WriteString(t)
				buf.WriteByte('\n')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
