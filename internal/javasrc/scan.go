package javasrc

import (
	"strings"
	"unicode"
)

// scanner walks Java source one byte at a time while tracking comment and
// literal context, so brace counting and token extraction never trip over
// braces inside strings or comments.
type scanner struct {
	src string
	pos int
}

// next returns the byte at the current position and whether it is plain code
// (outside comments and literals), then advances past whatever construct it
// belongs to. For code bytes the advance is a single byte.
func (s *scanner) next() (b byte, code bool) {
	b = s.src[s.pos]
	switch {
	case b == '/' && s.peek(1) == '/':
		s.skipLineComment()
		return b, false
	case b == '/' && s.peek(1) == '*':
		s.skipBlockComment()
		return b, false
	case b == '"':
		s.skipStringLiteral()
		return b, false
	case b == '\'':
		s.skipCharLiteral()
		return b, false
	}
	s.pos++
	return b, true
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek(offset int) byte {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func (s *scanner) skipLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

func (s *scanner) skipBlockComment() {
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
}

// skipStringLiteral consumes a quoted literal, including the """ text block
// form introduced in Java 15.
func (s *scanner) skipStringLiteral() {
	if s.peek(1) == '"' && s.peek(2) == '"' {
		s.pos += 3
		for s.pos < len(s.src) {
			if s.src[s.pos] == '"' && s.peek(1) == '"' && s.peek(2) == '"' {
				s.pos += 3
				return
			}
			s.pos++
		}
		return
	}
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '"', '\n':
			s.pos++
			return
		}
		s.pos++
	}
}

func (s *scanner) skipCharLiteral() {
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '\'', '\n':
			s.pos++
			return
		}
		s.pos++
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// modifiers that may precede a member declaration. Annotations are stripped
// separately before modifier filtering.
var modifierTokens = map[string]bool{
	"public": true, "protected": true, "private": true,
	"static": true, "final": true, "abstract": true,
	"transient": true, "volatile": true, "synchronized": true,
	"native": true, "strictfp": true, "default": true, "sealed": true,
	"non-sealed": true,
}

// splitTokens splits a declaration head on whitespace while keeping generic
// argument lists and array brackets glued to their type token, so
// "Map<String, Integer> byName" yields exactly two tokens.
func splitTokens(head string) []string {
	var (
		out   []string
		cur   strings.Builder
		depth int
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range head {
		switch {
		case r == '<':
			depth++
			cur.WriteRune(r)
		case r == '>':
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case unicode.IsSpace(r) && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// stripComments removes leading line and block comments from a declaration
// head, so an attached javadoc never confuses classification.
func stripComments(head string) string {
	for {
		head = strings.TrimLeftFunc(head, unicode.IsSpace)
		switch {
		case strings.HasPrefix(head, "//"):
			if i := strings.IndexByte(head, '\n'); i >= 0 {
				head = head[i+1:]
				continue
			}
			return ""
		case strings.HasPrefix(head, "/*"):
			if i := strings.Index(head[2:], "*/"); i >= 0 {
				head = head[i+4:]
				continue
			}
			return ""
		}
		return head
	}
}

// stripAnnotations removes leading annotation tokens (with optional argument
// lists) from a declaration head.
func stripAnnotations(head string) string {
	for {
		head = strings.TrimLeftFunc(head, unicode.IsSpace)
		if !strings.HasPrefix(head, "@") {
			return head
		}
		// "@interface" is the annotation-type keyword, not an annotation use.
		if strings.HasPrefix(head, "@interface") {
			return head
		}
		i := 1
		for i < len(head) && (isIdentByte(head[i]) || head[i] == '.') {
			i++
		}
		// optional (...) argument list
		if i < len(head) && head[i] == '(' {
			depth := 0
			for ; i < len(head); i++ {
				if head[i] == '(' {
					depth++
				} else if head[i] == ')' {
					depth--
					if depth == 0 {
						i++
						break
					}
				}
			}
		}
		head = head[i:]
	}
}

// stripModifiers drops leading modifier tokens and returns the rest.
func stripModifiers(tokens []string) (rest []string, static bool) {
	i := 0
	for i < len(tokens) && modifierTokens[tokens[i]] {
		if tokens[i] == "static" {
			static = true
		}
		i++
	}
	return tokens[i:], static
}
