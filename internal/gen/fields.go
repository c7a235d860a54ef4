package gen

import "github.com/vabshroo/builgen/internal/model"

// FilterEligible drops static fields from the declaration list. The result
// keeps declaration order and may be empty when every field is static.
func FilterEligible(fields []model.FieldDescriptor) []model.FieldDescriptor {
	out := make([]model.FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		if f.Static {
			continue
		}
		out = append(out, f)
	}
	return out
}

// NewBuilderSpec derives the per-run generation input from a class
// descriptor: the class name plus its eligible fields.
func NewBuilderSpec(desc *model.ClassDescriptor) *model.BuilderSpec {
	if desc == nil {
		return nil
	}
	return &model.BuilderSpec{
		ClassName: desc.Name,
		Fields:    FilterEligible(desc.Fields),
	}
}
