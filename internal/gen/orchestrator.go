package gen

import (
	"log/slog"

	"github.com/vabshroo/builgen/internal/model"
)

// Anchor is an opaque handle to a class member held by a ClassModel. An
// anchor stays valid until the member it references is deleted.
type Anchor int

// AnchorTail addresses the end of the class body; inserting after it appends.
const AnchorTail Anchor = -1

// ClassModel is the narrow capability surface the core needs from the host's
// class representation. Implementations own parsing, text manipulation and
// rendering; the core only reads the descriptor and requests member edits.
type ClassModel interface {
	// Descriptor returns the structural description of the class. The
	// returned value is not mutated by the core.
	Descriptor() *model.ClassDescriptor
	// Constructors lists anchors of all constructors declared directly on
	// the class, in source order.
	Constructors() []Anchor
	// NestedType resolves a directly nested type by exact name.
	NestedType(name string) (Anchor, bool)
	// DeleteMember removes the member behind the anchor.
	DeleteMember(a Anchor) error
	// InsertAfter splices a new member immediately after the anchored one
	// (or at the end of the class body for AnchorTail) and returns the new
	// member's anchor.
	InsertAfter(a Anchor, source string) (Anchor, error)
}

// Cleanup removes every constructor declared directly on the class and the
// nested Builder type when present, so regeneration never duplicates or
// conflicts with earlier output. Runs before any fragment is inserted; a
// failed deletion aborts the whole run.
func Cleanup(cm ClassModel) error {
	for _, a := range cm.Constructors() {
		if err := cm.DeleteMember(a); err != nil {
			return &MutationError{Op: "delete constructor", Err: err}
		}
	}
	if a, ok := cm.NestedType(BuilderTypeName); ok {
		if err := cm.DeleteMember(a); err != nil {
			return &MutationError{Op: "delete nested " + BuilderTypeName, Err: err}
		}
	}
	return nil
}

// State is the orchestrator's position in one generation run.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateCleaning
	StateGenerating
	StateEmitting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateCleaning:
		return "cleaning"
	case StateGenerating:
		return "generating"
	case StateEmitting:
		return "emitting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Orchestrator sequences one generation run: validate, clean, generate,
// emit. It holds no state across runs beyond the last observed State, which
// exists for inspection only.
type Orchestrator struct {
	state State
	log   *slog.Logger
}

func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		state: StateIdle,
		log:   slog.Default().With("component", "orchestrator"),
	}
}

// State reports where the previous Run ended (StateDone or StateFailed), or
// StateIdle before the first run.
func (o *Orchestrator) State() State {
	return o.state
}

func (o *Orchestrator) enter(s State) {
	o.state = s
	o.log.Debug("state", "state", s.String())
}

func (o *Orchestrator) fail(err error) error {
	o.state = StateFailed
	o.log.Warn("run failed", "error", err)
	return err
}

// Run executes the full sequence against the class model and returns the
// fragments that were emitted. Validation failures abort before the model is
// touched; cleanup or insertion failures abort mid-flight without rollback.
// Running twice over the same class converges on the same member set.
func (o *Orchestrator) Run(cm ClassModel) ([]model.CodeFragment, error) {
	o.enter(StateValidating)
	desc := cm.Descriptor()
	if desc == nil {
		return nil, o.fail(&ValidationError{Reason: "no class selected"})
	}
	if desc.Kind != model.KindClass {
		return nil, o.fail(&ValidationError{Reason: "target is a " + desc.Kind.String() + ", not a concrete class"})
	}
	spec := NewBuilderSpec(desc)
	if len(spec.Fields) == 0 {
		return nil, o.fail(&ValidationError{Reason: "class has no non-static fields"})
	}

	o.enter(StateCleaning)
	if err := Cleanup(cm); err != nil {
		return nil, o.fail(err)
	}

	o.enter(StateGenerating)
	frags := Fragments(spec)

	o.enter(StateEmitting)
	anchor := AnchorTail
	for _, frag := range frags {
		var err error
		anchor, err = cm.InsertAfter(anchor, frag.Source)
		if err != nil {
			return nil, o.fail(&MutationError{Op: "insert " + frag.Kind.String(), Err: err})
		}
	}

	o.enter(StateDone)
	o.log.Info("builder generated",
		"class", desc.Name,
		"fields", len(spec.Fields),
		"fragments", len(frags))
	return frags, nil
}
