// Package diagnostics renders tokenization failures the way compilers
// report them: a colored header, a file:line:column location, the
// offending source line and a caret marker. The core only stores absolute
// arena offsets, so line and column are recovered here on demand by
// scanning the owning file's bytes.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"cpre/internal/lexer"
	"cpre/internal/source"
)

// Reporter formats failures against the source map they refer to.
type Reporter struct {
	sources *source.Map
}

func NewReporter(m *source.Map) *Reporter {
	return &Reporter{sources: m}
}

// Format renders one unrecognized-token failure. Failures in anonymous
// byte buffers have no file to show context from, so those fall back to
// the error's own offset-and-preview line.
func (r *Reporter) Format(err *lexer.UnrecognizedTokenError) string {
	errColor := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s: unrecognized token\n", errColor("error")))

	fileSpan, ok := r.fileSpan(err)
	if !ok {
		result.WriteString(fmt.Sprintf("  %s input, offset %d: %q\n\n",
			dim("-->"), err.Span.Lo, err.Preview))
		return result.String()
	}

	content := r.sources.View(fileSpan)
	line, column := position(content, err.Span.Lo-fileSpan.Lo)
	lines := strings.Split(string(content), "\n")

	width := numberWidth(line + 1)
	indent := strings.Repeat(" ", width)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), err.Path, line, column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if line > 1 {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, line-1)), dim("│"), lines[line-2]))
	}

	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", width, line)), dim("│"), lines[line-1]))
	marker := strings.Repeat(" ", column-1) + errColor("^")
	result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))

	if line < len(lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, line+1)), dim("│"), lines[line]))
	}

	result.WriteString("\n")
	return result.String()
}

func (r *Reporter) fileSpan(err *lexer.UnrecognizedTokenError) (source.Span, bool) {
	if err.Path == "" {
		return source.Span{}, false
	}
	return r.sources.Find(err.Path)
}

// position converts a byte offset within content into a 1-based line and
// column pair.
func position(content []byte, offset int) (line, column int) {
	line, column = 1, 1
	for _, b := range content[:offset] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

func numberWidth(line int) int {
	width := 1
	for line >= 10 {
		line /= 10
		width++
	}
	return width
}
