package model

// ClassKind classifies the primary type declaration of a source file.
type ClassKind int

const (
	KindInvalid    ClassKind = iota
	KindClass                // concrete class, the only generatable kind
	KindInterface            // interface declaration
	KindEnum                 // enum declaration
	KindRecord               // record declaration
	KindAnnotation           // @interface declaration
)

func (k ClassKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindAnnotation:
		return "annotation"
	}
	return "invalid"
}

// FieldDescriptor is one declared field of the target class. TypeName is the
// source-text form of the declared type and is carried verbatim into generated
// fragments; it is never interpreted or validated here.
type FieldDescriptor struct {
	Name     string
	TypeName string
	Static   bool
}

// ClassDescriptor is the structural description of the class being
// transformed. Read-only input to generation; Fields keeps the declaration
// order from source.
type ClassDescriptor struct {
	Name   string
	Kind   ClassKind
	Fields []FieldDescriptor
}

// BuilderSpec is the ephemeral input of one generation run: the class name
// plus its eligible (non-static) fields, in declaration order. It is derived
// at the start of a run and discarded once fragments are produced.
type BuilderSpec struct {
	ClassName string
	Fields    []FieldDescriptor
}

// FragmentKind identifies which builder-pattern member a CodeFragment holds.
type FragmentKind int

const (
	FragmentConstructor FragmentKind = iota
	FragmentGetter
	FragmentNestedBuilderType
	FragmentFactoryMethod
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentConstructor:
		return "constructor"
	case FragmentGetter:
		return "getter"
	case FragmentNestedBuilderType:
		return "builder-type"
	case FragmentFactoryMethod:
		return "factory-method"
	}
	return "unknown"
}

// CodeFragment is one generated member, ready for insertion by the host.
// Fragments of the same kind keep field declaration order; across kinds the
// emission order is constructor, getters, nested Builder type, factory.
type CodeFragment struct {
	Kind   FragmentKind
	Source string
}
