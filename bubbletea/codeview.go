package bubbletea

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"

	"github.com/solventhq/solvent"
)

// CodeView renders solution code with line numbers, syntax
// highlighting, key-line markers and an optional highlighted line.
type CodeView struct {
	styles Styles
}

// NewCodeView creates a CodeView with the given styles.
func NewCodeView(styles Styles) CodeView {
	return CodeView{styles: styles}
}

// Render lays out the code panel. highlight selects a 1-based line
// (-1 for none); notes supplies key-line markers when present. Lines
// wider than width are truncated, not wrapped, so line numbers stay
// aligned with the backend's line references.
func (cv CodeView) Render(code, language string, highlight, width int, notes *solvent.CodeExplanation) string {
	if code == "" {
		return ""
	}
	code = strings.TrimRight(code, "\n")
	plain := strings.Split(code, "\n")
	colored := strings.Split(highlightSource(code, language), "\n")

	keyLines := make(map[int]bool)
	if notes != nil {
		for _, ln := range notes.Lines {
			if ln.IsKeyLine {
				keyLines[ln.LineNumber] = true
			}
		}
	}

	gutterW := len(fmt.Sprintf("%d", len(plain)))
	codeW := width - gutterW - 4
	if codeW < 20 {
		codeW = 20
	}

	var b strings.Builder
	for i, line := range plain {
		num := i + 1
		gutter := cv.styles.Muted.Render(fmt.Sprintf("%*d", gutterW, num))

		marker := " "
		if keyLines[num] {
			marker = cv.styles.KeyLine.Render("*")
		}

		var body string
		if num == highlight {
			// The highlight background replaces syntax coloring so the
			// selection stays visible on any terminal theme.
			body = cv.styles.HighlightBg.Render(runewidth.FillRight(runewidth.Truncate(line, codeW, "…"), codeW))
		} else if i < len(colored) {
			body = colored[i]
		} else {
			body = line
		}

		b.WriteString(gutter)
		b.WriteString(" ")
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(body)
		if i < len(plain)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Annotation returns the explanation attached to the highlighted line,
// or "" when there is none.
func Annotation(notes *solvent.CodeExplanation, highlight int) string {
	if notes == nil || highlight < 1 {
		return ""
	}
	for _, ln := range notes.Lines {
		if ln.LineNumber == highlight {
			if ln.ComplexityNote != "" {
				return ln.Explanation + " (" + ln.ComplexityNote + ")"
			}
			return ln.Explanation
		}
	}
	return ""
}

// highlightSource applies chroma syntax highlighting, falling back to
// the plain source when tokenization fails.
func highlightSource(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, it); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}
