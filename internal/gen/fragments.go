package gen

import (
	"strings"
	"unicode"

	"github.com/vabshroo/builgen/internal/model"
)

// BuilderTypeName is the fixed name of the generated nested builder type.
// A pre-existing nested type of this name is deleted before regeneration,
// never renamed around.
const BuilderTypeName = "Builder"

// Fragment sources are produced with a one-level relative indent; the host
// class model shifts them to the insertion depth when splicing.
const indent = "    "

// PrivateConstructor renders the private constructor taking the nested
// builder as its sole parameter, assigning every eligible field from it in
// declaration order.
func PrivateConstructor(className string, fields []model.FieldDescriptor) model.CodeFragment {
	var b strings.Builder
	b.WriteString("private ")
	b.WriteString(className)
	b.WriteString("(")
	b.WriteString(BuilderTypeName)
	b.WriteString(" builder) {\n")
	for _, f := range fields {
		b.WriteString(indent)
		b.WriteString("this.")
		b.WriteString(f.Name)
		b.WriteString(" = builder.")
		b.WriteString(f.Name)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return model.CodeFragment{Kind: model.FragmentConstructor, Source: b.String()}
}

// Getter renders a public getter returning the field. The accessor name is
// "get" + the field name with its first rune uppercased.
func Getter(field model.FieldDescriptor) model.CodeFragment {
	var b strings.Builder
	b.WriteString("public ")
	b.WriteString(field.TypeName)
	b.WriteString(" get")
	b.WriteString(capitalize(field.Name))
	b.WriteString("() {\n")
	b.WriteString(indent)
	b.WriteString("return this.")
	b.WriteString(field.Name)
	b.WriteString(";\n}")
	return model.CodeFragment{Kind: model.FragmentGetter, Source: b.String()}
}

// NestedBuilderType renders the public static Builder class: per-field
// private storage, a no-arg constructor, one chainable setter per field and
// a trailing build() that feeds the builder to the private constructor.
// Field and setter order matches the eligible-field order.
func NestedBuilderType(className string, fields []model.FieldDescriptor) model.CodeFragment {
	var b strings.Builder
	b.WriteString("public static class ")
	b.WriteString(BuilderTypeName)
	b.WriteString(" {\n")

	for _, f := range fields {
		b.WriteString(indent)
		b.WriteString("private ")
		b.WriteString(f.TypeName)
		b.WriteString(" ")
		b.WriteString(f.Name)
		b.WriteString(";\n")
	}

	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("public ")
	b.WriteString(BuilderTypeName)
	b.WriteString("() {\n")
	b.WriteString(indent)
	b.WriteString("}\n")

	for _, f := range fields {
		b.WriteString("\n")
		writeBuilderSetter(&b, f)
	}

	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("public ")
	b.WriteString(className)
	b.WriteString(" build() {\n")
	b.WriteString(indent)
	b.WriteString(indent)
	b.WriteString("return new ")
	b.WriteString(className)
	b.WriteString("(this);\n")
	b.WriteString(indent)
	b.WriteString("}\n")

	b.WriteString("}")
	return model.CodeFragment{Kind: model.FragmentNestedBuilderType, Source: b.String()}
}

// writeBuilderSetter renders one fluent setter. The parameter name shadows
// the builder field on purpose; the setter always returns the builder.
func writeBuilderSetter(b *strings.Builder, f model.FieldDescriptor) {
	b.WriteString(indent)
	b.WriteString("public ")
	b.WriteString(BuilderTypeName)
	b.WriteString(" ")
	b.WriteString(f.Name)
	b.WriteString("(")
	b.WriteString(f.TypeName)
	b.WriteString(" ")
	b.WriteString(f.Name)
	b.WriteString(") {\n")
	b.WriteString(indent)
	b.WriteString(indent)
	b.WriteString("this.")
	b.WriteString(f.Name)
	b.WriteString(" = ")
	b.WriteString(f.Name)
	b.WriteString(";\n")
	b.WriteString(indent)
	b.WriteString(indent)
	b.WriteString("return this;\n")
	b.WriteString(indent)
	b.WriteString("}\n")
}

// StaticFactory renders the zero-argument static factory returning a fresh
// builder. Independent of the field list.
func StaticFactory(className string) model.CodeFragment {
	var b strings.Builder
	b.WriteString("public static ")
	b.WriteString(BuilderTypeName)
	b.WriteString(" builder() {\n")
	b.WriteString(indent)
	b.WriteString("return new ")
	b.WriteString(BuilderTypeName)
	b.WriteString("();\n}")
	return model.CodeFragment{Kind: model.FragmentFactoryMethod, Source: b.String()}
}

// Fragments produces the full ordered fragment list for a builder spec:
// constructor, getters in field order, nested Builder type, static factory.
func Fragments(spec *model.BuilderSpec) []model.CodeFragment {
	if spec == nil {
		return nil
	}
	out := make([]model.CodeFragment, 0, len(spec.Fields)+3)
	out = append(out, PrivateConstructor(spec.ClassName, spec.Fields))
	for _, f := range spec.Fields {
		out = append(out, Getter(f))
	}
	out = append(out, NestedBuilderType(spec.ClassName, spec.Fields))
	out = append(out, StaticFactory(spec.ClassName))
	return out
}

// capitalize uppercases the first rune only; an empty name passes through.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
