// Package gogen emits the Go rendition of the immutable builder pattern:
// for a struct S it produces an SBuilder with chainable setters, a
// NewSBuilder factory, an unexported constructor taking the builder, and
// Build(). Output is a single generated file per package, rewritten whole on
// every run.
package gogen

import (
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/jinzhu/inflection"

	"github.com/vabshroo/builgen/internal/goparse"
)

// GenerateFile renders builders for the given structs into one jen file
// belonging to the structs' own package.
func GenerateFile(pkg *goparse.Package, structs []goparse.Struct) *jen.File {
	f := jen.NewFilePathName(pkg.Path, pkg.Name)
	f.HeaderComment("Code generated by builgen. DO NOT EDIT.")
	for _, s := range structs {
		generateBuilder(f, s)
	}
	return f
}

func generateBuilder(f *jen.File, s goparse.Struct) {
	builderName := s.Name + "Builder"

	// Builder storage mirrors the target struct field for field.
	f.Commentf("%s accumulates values for an immutable %s.", builderName, s.Name)
	f.Type().Id(builderName).StructFunc(func(g *jen.Group) {
		for _, fld := range s.Fields {
			g.Id(storageName(fld.Name)).Add(typeCode(fld.Type))
		}
	})

	f.Commentf("New%s returns an empty builder.", builderName)
	f.Func().Id("New" + builderName).Params().Op("*").Id(builderName).Block(
		jen.Return(jen.Op("&").Id(builderName).Values()),
	)

	for _, fld := range s.Fields {
		generateSetter(f, builderName, fld)
		if fld.Type != nil && fld.Type.IsSlice {
			generateAppender(f, builderName, fld)
		}
	}

	// Unexported constructor consuming the builder, then Build on top of it.
	f.Func().Id(constructorName(s.Name)).Params(jen.Id("b").Op("*").Id(builderName)).Id(s.Name).Block(
		jen.Return(jen.Id(s.Name).Values(jen.DictFunc(func(d jen.Dict) {
			for _, fld := range s.Fields {
				d[jen.Id(fld.Name)] = jen.Id("b").Dot(storageName(fld.Name))
			}
		}))),
	)

	f.Commentf("Build assembles the %s value.", s.Name)
	f.Func().Params(jen.Id("b").Op("*").Id(builderName)).Id("Build").Params().Id(s.Name).Block(
		jen.Return(jen.Id(constructorName(s.Name)).Call(jen.Id("b"))),
	)

	// Getters only where the field itself is not already accessible.
	for _, fld := range s.Fields {
		if isExported(fld.Name) {
			continue
		}
		f.Func().Params(jen.Id("v").Id(s.Name)).Id("Get" + capitalize(fld.Name)).Params().Add(typeCode(fld.Type)).Block(
			jen.Return(jen.Id("v").Dot(fld.Name)),
		)
	}
}

// generateSetter emits the chainable per-field setter, returning the builder.
func generateSetter(f *jen.File, builderName string, fld goparse.Field) {
	param := storageName(fld.Name)
	f.Func().Params(jen.Id("b").Op("*").Id(builderName)).
		Id(capitalize(fld.Name)).
		Params(jen.Id(param).Add(typeCode(fld.Type))).
		Op("*").Id(builderName).
		Block(
			jen.Id("b").Dot(storageName(fld.Name)).Op("=").Id(param),
			jen.Return(jen.Id("b")),
		)
}

// generateAppender emits Add<Singular> for slice fields, so callers can grow
// the collection without rebuilding it.
func generateAppender(f *jen.File, builderName string, fld goparse.Field) {
	elem := fld.Type.Elem
	single := inflection.Singular(fld.Name)
	if single == "" {
		single = fld.Name
	}
	param := lowerFirst(single)
	if param == fld.Name {
		param = "v"
	}
	f.Func().Params(jen.Id("b").Op("*").Id(builderName)).
		Id("Add" + capitalize(single)).
		Params(jen.Id(param).Add(typeCode(elem))).
		Op("*").Id(builderName).
		Block(
			jen.Id("b").Dot(storageName(fld.Name)).Op("=").
				Append(jen.Id("b").Dot(storageName(fld.Name)), jen.Id(param)),
			jen.Return(jen.Id("b")),
		)
}

// typeCode renders a TypeRef as jen code, qualifying imported names so the
// emitted file picks up its import block automatically.
func typeCode(t *goparse.TypeRef) jen.Code {
	switch {
	case t == nil:
		return jen.Id("any")
	case t.IsPtr:
		return jen.Op("*").Add(typeCode(t.Elem))
	case t.IsSlice:
		return jen.Index().Add(typeCode(t.Elem))
	case t.IsMap:
		return jen.Map(typeCode(t.Key)).Add(typeCode(t.Elem))
	case t.PkgPath != "":
		return jen.Qual(t.PkgPath, t.Name)
	default:
		return jen.Id(t.Name)
	}
}

func constructorName(structName string) string {
	return "new" + capitalize(structName)
}

// storageName is the builder-internal field name: the target field with its
// first rune lowered.
func storageName(name string) string {
	return lowerFirst(name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func isExported(name string) bool {
	if name == "" {
		return false
	}
	return unicode.IsUpper([]rune(name)[0])
}
