package reader

import (
	"bufio"
	"io"
	"strings"
)

// TextReader handles plain text files. The text passes through almost
// untouched: line endings are normalized and trailing whitespace dropped,
// so the section detector sees consistent input.
type TextReader struct{}

func (r *TextReader) Read(src io.Reader, filename string) (Document, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return Document{}, err
	}

	return Document{
		Title: titleFromFilename(filename),
		Text:  strings.Join(lines, "\n"),
	}, nil
}
