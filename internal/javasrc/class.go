// Package javasrc models a single Java top-level class closely enough to
// enumerate its members, delete them, and splice new ones in at anchored
// positions. It is the host collaborator behind gen.ClassModel: a pragmatic
// span-based representation, not a full Java front-end.
package javasrc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vabshroo/builgen/internal/gen"
	"github.com/vabshroo/builgen/internal/model"
)

var ErrNoTypeDeclaration = errors.New("no top-level type declaration found")

type memberKind int

const (
	memberField memberKind = iota
	memberConstructor
	memberMethod
	memberType
	memberInitializer
)

// member is one depth-1 declaration of the class body, held as raw source
// text plus just enough structure to classify and address it.
type member struct {
	id     gen.Anchor
	kind   memberKind
	name   string
	text   string
	fields []model.FieldDescriptor // populated for memberField
}

// Class is a parsed Java source file focused on its primary type. The
// prologue (package, imports, leading comments) and everything after the
// class body are preserved verbatim; members are re-rendered.
type Class struct {
	name     string
	kind     model.ClassKind
	prologue string
	header   string
	epilogue string
	members  []*member
	nextID   gen.Anchor
}

// analyze produces, per byte of src, whether it is plain code (outside
// comments and literals) and the brace depth in effect before that byte.
func analyze(src string) (mask []bool, depth []int) {
	mask = make([]bool, len(src))
	depth = make([]int, len(src))
	s := &scanner{src: src}
	d := 0
	for !s.done() {
		start := s.pos
		b, code := s.next()
		for i := start; i < s.pos && i < len(src); i++ {
			depth[i] = d
		}
		if code {
			mask[start] = true
			if b == '{' {
				d++
			} else if b == '}' && d > 0 {
				d--
			}
		}
	}
	return mask, depth
}

var typeKeywords = map[string]model.ClassKind{
	"class":      model.KindClass,
	"interface":  model.KindInterface,
	"enum":       model.KindEnum,
	"record":     model.KindRecord,
	"@interface": model.KindAnnotation,
}

// Parse builds a Class from raw source text. Only the first top-level type
// declaration is considered, matching the original single-type behavior.
func Parse(source string) (*Class, error) {
	mask, depth := analyze(source)

	kwPos, kwLen := -1, 0
	var kind model.ClassKind
	for i := 0; i < len(source); i++ {
		if !mask[i] || depth[i] != 0 {
			continue
		}
		for kw, k := range typeKeywords {
			if !strings.HasPrefix(source[i:], kw) {
				continue
			}
			if i > 0 && (isIdentByte(source[i-1]) || source[i-1] == '.') {
				continue
			}
			end := i + len(kw)
			if end < len(source) && isIdentByte(source[end]) {
				continue
			}
			kwPos, kwLen, kind = i, len(kw), k
			break
		}
		if kwPos >= 0 {
			break
		}
	}
	if kwPos < 0 {
		return nil, ErrNoTypeDeclaration
	}

	// Type name follows the keyword.
	i := kwPos + kwLen
	for i < len(source) && unicode.IsSpace(rune(source[i])) {
		i++
	}
	j := i
	for j < len(source) && isIdentByte(source[j]) {
		j++
	}
	name := source[i:j]
	if name == "" {
		return nil, fmt.Errorf("unnamed %s declaration", kind)
	}

	// Body braces.
	bodyOpen := -1
	for k := kwPos; k < len(source); k++ {
		if mask[k] && depth[k] == 0 && source[k] == '{' {
			bodyOpen = k
			break
		}
	}
	if bodyOpen < 0 {
		return nil, fmt.Errorf("class %s: missing body", name)
	}
	bodyClose := -1
	for k := bodyOpen + 1; k < len(source); k++ {
		if mask[k] && depth[k] == 1 && source[k] == '}' {
			bodyClose = k
			break
		}
	}
	if bodyClose < 0 {
		return nil, fmt.Errorf("class %s: unbalanced braces", name)
	}

	// The declaration starts after the last top-level ';' or '}' before the
	// keyword, which keeps class-level annotations with the header.
	declStart := 0
	for k := 0; k < kwPos; k++ {
		if mask[k] && depth[k] == 0 && (source[k] == ';' || source[k] == '}') {
			declStart = k + 1
		}
	}

	c := &Class{
		name:     name,
		kind:     kind,
		prologue: source[:declStart],
		header:   strings.TrimRight(source[declStart:bodyOpen+1], " \t"),
		epilogue: source[bodyClose:],
	}
	c.splitMembers(source[bodyOpen+1 : bodyClose])
	return c, nil
}

// splitMembers cuts the class body into depth-1 member declarations. Fields
// end at ';', everything with a body ends at its matching '}'. Array and
// lambda initializers are carried through to the terminating ';'.
func (c *Class) splitMembers(body string) {
	mask, depth := analyze(body)

	pos := 0
	for pos < len(body) {
		for pos < len(body) && unicode.IsSpace(rune(body[pos])) {
			pos++
		}
		if pos >= len(body) {
			break
		}

		end := len(body) - 1
		parens := 0
		sawEq := false
	scan:
		for k := pos; k < len(body); k++ {
			if !mask[k] {
				continue
			}
			switch body[k] {
			case '(':
				parens++
			case ')':
				if parens > 0 {
					parens--
				}
			case '=':
				if parens == 0 && depth[k] == 0 {
					sawEq = true
				}
			case ';':
				if parens == 0 && depth[k] == 0 {
					end = k
					break scan
				}
			case '{':
				if parens == 0 && depth[k] == 0 && !sawEq {
					end = len(body) - 1
					for k2 := k + 1; k2 < len(body); k2++ {
						if mask[k2] && depth[k2] == 1 && body[k2] == '}' {
							end = k2
							break
						}
					}
					break scan
				}
			}
		}

		text := strings.TrimRightFunc(body[pos:end+1], unicode.IsSpace)
		if text != "" {
			c.members = append(c.members, c.newMember(text))
		}
		pos = end + 1
	}
}

// newMember classifies raw member text and assigns it a fresh anchor.
func (c *Class) newMember(text string) *member {
	m := &member{id: c.nextID, text: text}
	c.nextID++
	m.kind, m.name, m.fields = classify(text, c.name)
	return m
}

// classify decides what a depth-1 declaration is and extracts its name.
func classify(text, className string) (memberKind, string, []model.FieldDescriptor) {
	head := stripAnnotations(stripComments(text))

	// Cut the head at the first structural character outside generics.
	cut := len(head)
	var cutByte byte
	angle := 0
	for i := 0; i < len(head); i++ {
		switch head[i] {
		case '<':
			angle++
		case '>':
			if angle > 0 {
				angle--
			}
		case '(', '=', ';', '{':
			if angle == 0 {
				cut, cutByte = i, head[i]
			}
		}
		if cutByte != 0 {
			break
		}
	}

	tokens := splitTokens(head[:cut])
	rest, static := stripModifiers(tokens)

	if strings.HasPrefix(strings.TrimSpace(strings.Join(rest, " ")), "@interface") {
		if len(rest) > 1 {
			return memberType, rest[1], nil
		}
		return memberType, "", nil
	}
	if len(rest) > 1 {
		if _, ok := typeKeywords[rest[0]]; ok {
			return memberType, rest[1], nil
		}
	}

	switch cutByte {
	case '{':
		if len(rest) == 0 {
			return memberInitializer, "", nil
		}
	case '(':
		// Drop a leading type-parameter token of a generic method/ctor.
		if len(rest) > 0 && strings.HasPrefix(rest[0], "<") {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return memberMethod, "", nil
		}
		name := rest[len(rest)-1]
		if len(rest) == 1 && name == className {
			return memberConstructor, name, nil
		}
		return memberMethod, name, nil
	}

	fields := fieldDescriptors(rest, static)
	name := ""
	if len(fields) > 0 {
		name = fields[0].Name
	}
	return memberField, name, fields
}

// fieldDescriptors expands one field declaration head (modifiers already
// stripped) into descriptors, handling multi-declarator forms like
// "int x, y". The type text is preserved verbatim.
func fieldDescriptors(rest []string, static bool) []model.FieldDescriptor {
	if len(rest) == 0 {
		return nil
	}
	typeName := rest[0]
	declarators := strings.Join(rest[1:], " ")
	if declarators == "" {
		return nil
	}

	var out []model.FieldDescriptor
	for _, d := range splitDeclarators(declarators) {
		d = strings.TrimSpace(d)
		i := 0
		for i < len(d) && isIdentByte(d[i]) {
			i++
		}
		if i == 0 {
			continue
		}
		ft := typeName
		if strings.HasPrefix(strings.TrimSpace(d[i:]), "[") {
			ft += "[]" // C-style array suffix folds into the type
		}
		out = append(out, model.FieldDescriptor{Name: d[:i], TypeName: ft, Static: static})
	}
	return out
}

// splitDeclarators splits on commas outside generics, parens and brackets.
func splitDeclarators(s string) []string {
	var (
		out   []string
		start int
		depth int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

// ---------------------------------------------------------------------------
// gen.ClassModel
// ---------------------------------------------------------------------------

// Descriptor reports the class name, kind and declared fields in source
// order. Multi-declarator fields expand to one descriptor each.
func (c *Class) Descriptor() *model.ClassDescriptor {
	desc := &model.ClassDescriptor{Name: c.name, Kind: c.kind}
	for _, m := range c.members {
		if m.kind == memberField {
			desc.Fields = append(desc.Fields, m.fields...)
		}
	}
	return desc
}

// Constructors lists anchors of all constructors declared directly on the
// class, in source order.
func (c *Class) Constructors() []gen.Anchor {
	var out []gen.Anchor
	for _, m := range c.members {
		if m.kind == memberConstructor {
			out = append(out, m.id)
		}
	}
	return out
}

// NestedType resolves a directly nested type by exact name.
func (c *Class) NestedType(name string) (gen.Anchor, bool) {
	for _, m := range c.members {
		if m.kind == memberType && m.name == name {
			return m.id, true
		}
	}
	return 0, false
}

// DeleteMember removes the member behind the anchor.
func (c *Class) DeleteMember(a gen.Anchor) error {
	for i, m := range c.members {
		if m.id == a {
			c.members = append(c.members[:i], c.members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no member for anchor %d", a)
}

// InsertAfter splices a new member immediately after the anchored one, or at
// the end of the class body for gen.AnchorTail. A pre-existing member of the
// same kind and name is replaced (forced creation), which is what makes
// regeneration converge for getters and the factory method.
func (c *Class) InsertAfter(a gen.Anchor, source string) (gen.Anchor, error) {
	m := c.newMember(source)

	if m.name != "" {
		for i, old := range c.members {
			if old.kind == m.kind && old.name == m.name {
				c.members = append(c.members[:i], c.members[i+1:]...)
				break
			}
		}
	}

	if a == gen.AnchorTail {
		c.members = append(c.members, m)
		return m.id, nil
	}
	for i, old := range c.members {
		if old.id == a {
			c.members = append(c.members[:i+1], append([]*member{m}, c.members[i+1:]...)...)
			return m.id, nil
		}
	}
	return 0, fmt.Errorf("no member for anchor %d", a)
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Kind returns the declaration kind of the primary type.
func (c *Class) Kind() model.ClassKind { return c.kind }
