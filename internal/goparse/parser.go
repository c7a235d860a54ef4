// Package goparse collects struct declarations from a Go package so builders
// can be generated for them. It loads syntax through x/tools go/packages and
// resolves field types into a small TypeRef graph the emitter understands.
package goparse

import (
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"
)

// TypeRef is a resolved field type: a leaf (builtin, local or imported name)
// or a pointer/slice/map over another TypeRef.
type TypeRef struct {
	PkgPath string // import path, "" for builtins and same-package types
	Name    string
	IsPtr   bool
	IsSlice bool
	IsMap   bool
	Key     *TypeRef // map key
	Elem    *TypeRef // pointer, slice or map element
}

// Field is one named struct field eligible for builder generation.
type Field struct {
	Name string
	Type *TypeRef
}

// Struct is a collected struct declaration.
type Struct struct {
	Name    string
	Comment string
	Fields  []Field
}

// Package is the result of loading one directory.
type Package struct {
	Name    string // package name, used for the generated file
	Path    string // import path of the package
	Structs []Struct
}

// Find returns the struct with the given name, or nil.
func (p *Package) Find(name string) *Struct {
	for i := range p.Structs {
		if p.Structs[i].Name == name {
			return &p.Structs[i]
		}
	}
	return nil
}

// Load parses the package in dir and collects its struct declarations.
func Load(dir string) (*Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  dir,
		Fset: token.NewFileSet(),
	}, ".")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package found in %s", dir)
	}

	pkg := pkgs[0]
	out := &Package{Name: pkg.Name, Path: pkg.PkgPath}
	if out.Path == "" {
		// go/packages could not resolve the import path; derive it from the
		// nearest go.mod instead.
		out.Path, _ = modulePath(dir)
	}

	for _, file := range pkg.Syntax {
		imports := collectImports(file)
		collectStructs(out, file, imports)
	}
	return out, nil
}

// collectImports maps import aliases to paths for one file.
func collectImports(file *ast.File) map[string]string {
	m := make(map[string]string, len(file.Imports))
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		alias := filepath.Base(path)
		if imp.Name != nil && imp.Name.Name != "_" && imp.Name.Name != "." {
			alias = imp.Name.Name
		}
		m[alias] = path
	}
	return m
}

// collectStructs appends every plain struct declaration of the file. Generic
// declarations and type aliases are skipped; builders are generated for
// concrete structs only.
func collectStructs(out *Package, file *ast.File, imports map[string]string) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Assign.IsValid() || ts.TypeParams != nil {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}

			s := Struct{Name: ts.Name.Name, Comment: commentText(doc)}
			for _, fld := range st.Fields.List {
				// Embedded fields have no builder setter of their own.
				if len(fld.Names) == 0 {
					continue
				}
				t := resolveTypeExpr(fld.Type, imports)
				for _, id := range fld.Names {
					if id.Name == "_" {
						continue
					}
					s.Fields = append(s.Fields, Field{Name: id.Name, Type: t})
				}
			}
			out.Structs = append(out.Structs, s)
		}
	}
}

// resolveTypeExpr maps an ast type expression onto a TypeRef graph. Exotic
// expressions (func, chan, anonymous structs) degrade to an opaque name.
func resolveTypeExpr(expr ast.Expr, imports map[string]string) *TypeRef {
	switch t := expr.(type) {
	case *ast.Ident:
		return &TypeRef{Name: t.Name}
	case *ast.StarExpr:
		return &TypeRef{IsPtr: true, Elem: resolveTypeExpr(t.X, imports)}
	case *ast.ArrayType:
		if t.Len != nil {
			return &TypeRef{Name: "any"} // fixed arrays are out of scope
		}
		return &TypeRef{IsSlice: true, Elem: resolveTypeExpr(t.Elt, imports)}
	case *ast.MapType:
		return &TypeRef{
			IsMap: true,
			Key:   resolveTypeExpr(t.Key, imports),
			Elem:  resolveTypeExpr(t.Value, imports),
		}
	case *ast.SelectorExpr:
		if pkgIdent, ok := t.X.(*ast.Ident); ok {
			if path, ok := imports[pkgIdent.Name]; ok {
				return &TypeRef{PkgPath: path, Name: t.Sel.Name}
			}
		}
		return &TypeRef{Name: t.Sel.Name}
	default:
		return &TypeRef{Name: "any"}
	}
}

// modulePath walks up from dir to the nearest go.mod and returns the module
// path joined with dir's relative position below it.
func modulePath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	from := abs
	for {
		data, err := os.ReadFile(filepath.Join(from, "go.mod"))
		if err == nil {
			mf, err := modfile.Parse("go.mod", data, nil)
			if err != nil {
				return "", err
			}
			rel, err := filepath.Rel(from, abs)
			if err != nil || rel == "." {
				return mf.Module.Mod.Path, nil
			}
			return mf.Module.Mod.Path + "/" + filepath.ToSlash(rel), nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		from = parent
	}
}

func commentText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range cg.List {
		txt := strings.TrimSpace(strings.Trim(strings.TrimPrefix(strings.TrimPrefix(c.Text, "//"), "/*"), "*/"))
		b.WriteString(txt)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
