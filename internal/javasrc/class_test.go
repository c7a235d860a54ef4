package javasrc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vabshroo/builgen/internal/gen"
	"github.com/vabshroo/builgen/internal/model"
)

const pointSource = `package geometry;

import java.util.List;

/**
 * A 2D point.
 */
public class Point {

    public static final int SCALE = 2;

    private int x;
    private int y;

    public Point(int x, int y) {
        this.x = x;
        this.y = y;
    }

    public int hash() {
        return x * 31 + y;
    }
}
`

func TestParsePoint(t *testing.T) {
	cls, err := Parse(pointSource)
	require.NoError(t, err)
	require.Equal(t, "Point", cls.Name())
	require.Equal(t, model.KindClass, cls.Kind())

	desc := cls.Descriptor()
	require.Equal(t, []model.FieldDescriptor{
		{Name: "SCALE", TypeName: "int", Static: true},
		{Name: "x", TypeName: "int"},
		{Name: "y", TypeName: "int"},
	}, desc.Fields)

	require.Len(t, cls.Constructors(), 1)

	_, ok := cls.NestedType("Builder")
	require.False(t, ok)
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind model.ClassKind
	}{
		{"interface", "package p;\npublic interface Shape {\n}\n", model.KindInterface},
		{"enum", "package p;\npublic enum Color {\n    RED\n}\n", model.KindEnum},
		{"record", "package p;\npublic record Pair(int a, int b) {\n}\n", model.KindRecord},
		{"annotation", "package p;\npublic @interface Marker {\n}\n", model.KindAnnotation},
		{"abstract class", "package p;\npublic abstract class Base {\n}\n", model.KindClass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, err := Parse(tt.src)
			require.NoError(t, err)
			require.Equal(t, tt.kind, cls.Kind())
		})
	}
}

func TestParseNoType(t *testing.T) {
	_, err := Parse("package p;\n\nimport java.util.List;\n")
	require.ErrorIs(t, err, ErrNoTypeDeclaration)
}

func TestFieldParsingEdgeCases(t *testing.T) {
	src := `package p;

public class Edge {
    private int a, b;
    private Map<String, Integer> byName;
    private int[] data;
    private int more[];
    private int[] primes = {2, 3, 5};
    private String note = "static final class { nope; }";
    private Runnable task = () -> {
        run();
    };

    public void run() {
    }
}
`
	cls, err := Parse(src)
	require.NoError(t, err)

	desc := cls.Descriptor()
	require.Equal(t, []model.FieldDescriptor{
		{Name: "a", TypeName: "int"},
		{Name: "b", TypeName: "int"},
		{Name: "byName", TypeName: "Map<String, Integer>"},
		{Name: "data", TypeName: "int[]"},
		{Name: "more", TypeName: "int[]"},
		{Name: "primes", TypeName: "int[]"},
		{Name: "note", TypeName: "String"},
		{Name: "task", TypeName: "Runnable"},
	}, desc.Fields)

	// keywords inside the string literal must not be mistaken for members
	_, ok := cls.NestedType("nope")
	require.False(t, ok)
}

func TestMemberJavadocDoesNotConfuseClassification(t *testing.T) {
	src := `package p;

public class Doc {
    private int n;

    /**
     * Builds a Doc; (some punctuation) = {braces}.
     */
    public Doc(int n) {
        this.n = n;
    }

    // line comment
    public int n() {
        return n;
    }
}
`
	cls, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, cls.Constructors(), 1)
	require.Len(t, cls.Descriptor().Fields, 1)
}

func TestCommentsAndStringsIgnoredForClassDetection(t *testing.T) {
	src := `package p;

// not a class here: class Bogus {}
/* enum Sneaky { } */
public class Real {
    private String s = "interface Fake {";
}
`
	cls, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, "Real", cls.Name())
	require.Equal(t, model.KindClass, cls.Kind())
}

func TestDeleteMember(t *testing.T) {
	cls, err := Parse(pointSource)
	require.NoError(t, err)

	ctors := cls.Constructors()
	require.Len(t, ctors, 1)
	require.NoError(t, cls.DeleteMember(ctors[0]))
	require.Empty(t, cls.Constructors())

	require.Error(t, cls.DeleteMember(ctors[0]))
}

func TestInsertAfterOrdering(t *testing.T) {
	cls, err := Parse(pointSource)
	require.NoError(t, err)

	a1, err := cls.InsertAfter(gen.AnchorTail, "public int first() {\n    return 1;\n}")
	require.NoError(t, err)
	_, err = cls.InsertAfter(a1, "public int second() {\n    return 2;\n}")
	require.NoError(t, err)

	out := cls.Render()
	require.Less(t, strings.Index(out, "first()"), strings.Index(out, "second()"))
}

func TestInsertReplacesSameNameMember(t *testing.T) {
	cls, err := Parse(pointSource)
	require.NoError(t, err)

	_, err = cls.InsertAfter(gen.AnchorTail, "public int hash() {\n    return 0;\n}")
	require.NoError(t, err)

	out := cls.Render()
	require.Equal(t, 1, strings.Count(out, "public int hash()"))
	require.Contains(t, out, "return 0;")
	require.NotContains(t, out, "x * 31")
}

func TestRenderPreservesPrologue(t *testing.T) {
	cls, err := Parse(pointSource)
	require.NoError(t, err)

	out := cls.Render()
	require.Contains(t, out, "package geometry;")
	require.Contains(t, out, "import java.util.List;")
	require.Contains(t, out, "A 2D point.")
	require.Contains(t, out, "public class Point {")
}

func generatePoint(t *testing.T, src string) string {
	t.Helper()
	cls, err := Parse(src)
	require.NoError(t, err)
	_, err = gen.NewOrchestrator().Run(cls)
	require.NoError(t, err)
	return cls.Render()
}

func TestGenerateScenario(t *testing.T) {
	out := generatePoint(t, pointSource)

	require.Contains(t, out, "private Point(Builder builder) {")
	require.Contains(t, out, "public int getX() {")
	require.Contains(t, out, "public int getY() {")
	require.Contains(t, out, "public static class Builder {")
	require.Contains(t, out, "public Builder x(int x) {")
	require.Contains(t, out, "public Builder y(int y) {")
	require.Contains(t, out, "return new Point(this);")
	require.Contains(t, out, "public static Builder builder() {")
	require.Contains(t, out, "return new Builder();")

	// the old two-arg constructor is gone, replaced by the builder one
	require.NotContains(t, out, "public Point(int x, int y)")

	// static field is untouched in place but absent from generated members
	require.Contains(t, out, "public static final int SCALE = 2;")
	require.NotContains(t, out, "builder.SCALE")
	require.NotContains(t, out, "getSCALE")

	// emission order: constructor, getters, Builder type, factory
	iCtor := strings.Index(out, "private Point(Builder builder)")
	iGetX := strings.Index(out, "getX")
	iGetY := strings.Index(out, "getY")
	iType := strings.Index(out, "public static class Builder")
	iFact := strings.Index(out, "public static Builder builder()")
	require.Less(t, iCtor, iGetX)
	require.Less(t, iGetX, iGetY)
	require.Less(t, iGetY, iType)
	require.Less(t, iType, iFact)
}

func TestGenerateIsIdempotent(t *testing.T) {
	once := generatePoint(t, pointSource)
	twice := generatePoint(t, once)
	require.Empty(t, cmp.Diff(once, twice))
}

func TestGenerateRejectsAllStaticClass(t *testing.T) {
	src := `package p;

public class Constants {
    public static final int A = 1;
    public static final int B = 2;
}
`
	cls, err := Parse(src)
	require.NoError(t, err)
	before := cls.Render()

	_, err = gen.NewOrchestrator().Run(cls)
	var verr *gen.ValidationError
	require.ErrorAs(t, err, &verr)

	// validation failures leave the class untouched
	require.Equal(t, before, cls.Render())
}

func TestReindent(t *testing.T) {
	in := "public int f() {\n        return 1;\n    }"
	want := "    public int f() {\n        return 1;\n    }"
	require.Equal(t, want, reindent(in, "    "))
}
