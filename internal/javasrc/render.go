package javasrc

import (
	"strings"
	"unicode"
)

// memberIndent is the indentation applied to depth-1 members on render.
const memberIndent = "    "

// Render produces the full source text of the class: prologue and trailer
// verbatim, members re-indented one level inside the class body and
// separated by blank lines. Rendering the same member set always yields the
// same text.
func (c *Class) Render() string {
	var b strings.Builder
	b.WriteString(c.prologue)
	b.WriteString(c.header)
	b.WriteString("\n")
	for _, m := range c.members {
		b.WriteString("\n")
		b.WriteString(reindent(m.text, memberIndent))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimRightFunc(c.epilogue, unicode.IsSpace))
	b.WriteString("\n")
	return b.String()
}

// reindent shifts a member to the given base indentation while preserving
// its internal relative indentation: the common leading whitespace of the
// continuation lines is stripped before the base is applied.
func reindent(text, base string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return base + strings.TrimLeftFunc(text, unicode.IsSpace)
	}

	common := ""
	first := true
	for _, ln := range lines[1:] {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		ws := leadingWhitespace(ln)
		if first {
			common = ws
			first = false
			continue
		}
		common = commonPrefix(common, ws)
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString(strings.TrimLeftFunc(lines[0], unicode.IsSpace))
	for _, ln := range lines[1:] {
		b.WriteString("\n")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		b.WriteString(base)
		b.WriteString(strings.TrimPrefix(ln, common))
	}
	return b.String()
}

func leadingWhitespace(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}
	return s
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
