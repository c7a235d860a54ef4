package gogen

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vabshroo/builgen/internal/goparse"
)

func samplePackage() (*goparse.Package, []goparse.Struct) {
	user := goparse.Struct{
		Name: "User",
		Fields: []goparse.Field{
			{Name: "Name", Type: &goparse.TypeRef{Name: "string"}},
			{Name: "CreatedAt", Type: &goparse.TypeRef{PkgPath: "time", Name: "Time"}},
			{Name: "Tags", Type: &goparse.TypeRef{IsSlice: true, Elem: &goparse.TypeRef{Name: "string"}}},
			{Name: "internal", Type: &goparse.TypeRef{Name: "bool"}},
		},
	}
	pkg := &goparse.Package{Name: "sample", Path: "example.com/sample", Structs: []goparse.Struct{user}}
	return pkg, pkg.Structs
}

func render(t *testing.T) string {
	t.Helper()
	pkg, structs := samplePackage()
	f := GenerateFile(pkg, structs)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func TestGenerateFile(t *testing.T) {
	out := render(t)

	require.Contains(t, out, "// Code generated by builgen. DO NOT EDIT.")
	require.Contains(t, out, "package sample")
	require.Contains(t, out, "type UserBuilder struct {")
	require.Contains(t, out, "func NewUserBuilder() *UserBuilder {")

	// chainable setters, one per field
	require.Contains(t, out, "func (b *UserBuilder) Name(name string) *UserBuilder {")
	require.Contains(t, out, "func (b *UserBuilder) CreatedAt(createdAt time.Time) *UserBuilder {")
	require.Contains(t, out, "func (b *UserBuilder) Tags(tags []string) *UserBuilder {")
	require.Contains(t, out, "func (b *UserBuilder) Internal(internal bool) *UserBuilder {")

	// slice fields get a singularized appender
	require.Contains(t, out, "func (b *UserBuilder) AddTag(tag string) *UserBuilder {")

	// unexported constructor consuming the builder, Build on top
	require.Contains(t, out, "func newUser(b *UserBuilder) User {")
	require.Contains(t, out, "func (b *UserBuilder) Build() User {")
	require.Contains(t, out, "return newUser(b)")

	// getters only for fields that are not already exported
	require.Contains(t, out, "func (v User) GetInternal() bool {")
	require.NotContains(t, out, "GetName")

	// imported field types pull in their import
	require.Contains(t, out, `"time"`)
}

func TestGenerateFileDeterministic(t *testing.T) {
	require.Empty(t, cmp.Diff(render(t), render(t)))
}

func TestStorageAndNames(t *testing.T) {
	require.Equal(t, "name", storageName("Name"))
	require.Equal(t, "internal", storageName("internal"))
	require.Equal(t, "newUser", constructorName("User"))
	require.Equal(t, "Tag", capitalize("tag"))
	require.Equal(t, "", capitalize(""))
}
