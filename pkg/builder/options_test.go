package builder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeInfersLang(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"java file", "Point.java", LangJava},
		{"go file", "model.go", LangGo},
		{"bare directory", "mypkg", LangGo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Options{Input: tt.input}
			require.NoError(t, o.Normalize())
			require.Equal(t, tt.want, o.Lang)
			require.True(t, filepath.IsAbs(o.Input))
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	require.Error(t, (&Options{}).Normalize())
	require.Error(t, (&Options{Input: "Point.java", Lang: "rust"}).Normalize())
}

func TestNormalizeKeepsExplicitLang(t *testing.T) {
	o := &Options{Input: "Point.txt", Lang: LangJava}
	require.NoError(t, o.Normalize())
	require.Equal(t, LangJava, o.Lang)
}

func TestFunctionalOptions(t *testing.T) {
	o := NewOptions()
	for _, fn := range []Option{
		WithInput("Point.java"),
		WithClass("Point"),
		WithOutput("out.java"),
		WithDryRun(),
		WithManifest("builgen.yaml"),
	} {
		fn(o)
	}
	require.Equal(t, "Point.java", o.Input)
	require.Equal(t, "Point", o.Class)
	require.Equal(t, "out.java", o.Output)
	require.True(t, o.DryRun)
	require.Equal(t, "builgen.yaml", o.Manifest)
}
