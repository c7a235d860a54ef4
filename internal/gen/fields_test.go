package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vabshroo/builgen/internal/model"
)

func TestFilterEligible(t *testing.T) {
	tests := []struct {
		name   string
		fields []model.FieldDescriptor
		want   []string
	}{
		{
			name: "static fields dropped, order kept",
			fields: []model.FieldDescriptor{
				{Name: "x", TypeName: "int"},
				{Name: "SCALE", TypeName: "int", Static: true},
				{Name: "y", TypeName: "int"},
			},
			want: []string{"x", "y"},
		},
		{
			name: "all static yields empty",
			fields: []model.FieldDescriptor{
				{Name: "A", TypeName: "int", Static: true},
				{Name: "B", TypeName: "int", Static: true},
			},
			want: []string{},
		},
		{
			name:   "no fields",
			fields: nil,
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEligible(tt.fields)
			names := make([]string, 0, len(got))
			for _, f := range got {
				names = append(names, f.Name)
			}
			require.Equal(t, tt.want, names)
		})
	}
}

func TestNewBuilderSpec(t *testing.T) {
	desc := &model.ClassDescriptor{
		Name: "Point",
		Kind: model.KindClass,
		Fields: []model.FieldDescriptor{
			{Name: "x", TypeName: "int"},
			{Name: "SCALE", TypeName: "int", Static: true},
		},
	}
	spec := NewBuilderSpec(desc)
	require.Equal(t, "Point", spec.ClassName)
	require.Len(t, spec.Fields, 1)
	require.Equal(t, "x", spec.Fields[0].Name)

	// input descriptor is untouched
	require.Len(t, desc.Fields, 2)

	require.Nil(t, NewBuilderSpec(nil))
}
