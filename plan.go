package traversal

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/traversal/params"
	"github.com/viant/xunsafe"
)

// Mode selects between read-only and mutating traversal
type Mode int

const (
	//ModeRead drives Visitor hooks over read-only node views
	ModeRead Mode = iota
	//ModeMutate drives VisitorMut hooks over mutable node views
	ModeMutate
)

func (m Mode) String() string {
	if m == ModeMutate {
		return "mutate"
	}
	return "read"
}

type (
	//Plan is an immutable traversal routine compiled once from a type
	//declaration: an ordered sequence of child visit steps bracketed by
	//optional self enter/leave hooks. A compiled plan cannot fail at run
	//time; its only early exit is a visitor break signal.
	Plan struct {
		rType     reflect.Type
		mode      Mode
		selfHooks bool
		skipSelf  bool
		steps     []*step
	}

	step struct {
		name string
		ref  string
		fn   stepFn
	}

	stepFn func(ptr unsafe.Pointer, h hooks) Flow

	compiler struct {
		mode    Mode
		options *options
		plans   map[reflect.Type]*Plan
	}
)

// Compile builds a traversal plan for t in the given mode. All attribute
// parsing, validation and synthesis errors surface here; the returned plan
// is deterministic in declaration order.
func Compile(t reflect.Type, mode Mode, opts ...Option) (*Plan, error) {
	c := &compiler{mode: mode, options: newOptions(opts), plans: map[reflect.Type]*Plan{}}
	return c.plan(t)
}

// Type returns the plan subject type
func (p *Plan) Type() reflect.Type {
	return p.rType
}

// Mode returns the plan traversal mode
func (p *Plan) Mode() Mode {
	return p.mode
}

// Traverse runs a read plan over node, which has to be a T or *T instance
// of the plan type
func (p *Plan) Traverse(node interface{}, visitor Visitor) Flow {
	if p.mode != ModeRead {
		panic("traversal: Traverse called on a mutate plan")
	}
	return p.run(p.pointerOf(node), hooks{visitor: visitor}, false)
}

// TraverseMut runs a mutate plan over node, which has to be a *T instance
// of the plan type
func (p *Plan) TraverseMut(node interface{}, visitor VisitorMut) Flow {
	if p.mode != ModeMutate {
		panic("traversal: TraverseMut called on a read plan")
	}
	return p.run(p.pointerOf(node), hooks{mutator: visitor}, false)
}

func (p *Plan) pointerOf(node interface{}) unsafe.Pointer {
	t := reflect.TypeOf(node)
	if t == reflect.PtrTo(p.rType) {
		return xunsafe.AsPointer(node)
	}
	if t == p.rType && p.mode == ModeRead {
		value := reflect.New(p.rType)
		value.Elem().Set(reflect.ValueOf(node))
		return value.UnsafePointer()
	}
	panic(fmt.Sprintf("traversal: expected %v, got %T", reflect.PtrTo(p.rType), node))
}

// run executes the routine: self enter, child steps in declaration order,
// self leave; the first break short-circuits and propagates unchanged, so a
// leave hook is only reached when no earlier step signaled break.
func (p *Plan) run(ptr unsafe.Pointer, h hooks, suppressSelf bool) Flow {
	self := p.selfHooks && !p.skipSelf && !suppressSelf
	var node interface{}
	if self {
		node = asNode(p.rType, ptr)
		if flow := h.enter(node); flow.IsBreak() {
			return flow
		}
	}
	for _, s := range p.steps {
		if flow := s.fn(ptr, h); flow.IsBreak() {
			return flow
		}
	}
	if self {
		if flow := h.leave(node); flow.IsBreak() {
			return flow
		}
	}
	return Continue()
}

func (c *compiler) plan(t reflect.Type) (*Plan, error) {
	if existing, ok := c.plans[t]; ok {
		return existing, nil
	}
	result := &Plan{rType: t, mode: c.mode}
	c.plans[t] = result
	if err := c.build(result, t); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *compiler) build(p *Plan, t reflect.Type) error {
	custom, err := c.customStep(t)
	if err != nil {
		return err
	}
	if custom != nil {
		p.steps = append(p.steps, custom)
		return nil
	}
	s, err := shapeOf(t, c.options)
	if err != nil {
		return err
	}
	switch s.kind {
	case shapeLeaf:
		p.selfHooks = true
		return nil
	case shapeRecord:
		p.selfHooks = true
		return c.record(p, s)
	case shapeSum:
		return c.sum(p, s)
	case shapePointer:
		return c.pointer(p, t)
	case shapeSlice:
		return c.slice(p, t)
	case shapeArray:
		return c.array(p, t)
	case shapeMap:
		return c.mapEntries(p, t)
	}
	return nil
}

// customStep delegates to a hand written Traversable/TraversableMut
// implementation when *t provides one for the current mode
func (c *compiler) customStep(t reflect.Type) (*step, error) {
	ptrType := reflect.PtrTo(t)
	switch c.mode {
	case ModeRead:
		if !ptrType.Implements(traversableType) {
			return nil, nil
		}
	case ModeMutate:
		if !ptrType.Implements(traversableMutType) {
			return nil, nil
		}
	}
	if ptrType.Implements(elemTyperType) {
		// guarded wrappers expose their element type so element plans
		// compile eagerly and surface errors here, not mid traversal
		elem := reflect.New(t).Interface().(elemTyper).traversalElem()
		if _, err := Compiled(elem, c.mode); err != nil {
			return nil, err
		}
	}
	mode := c.mode
	return &step{name: typeName(t), fn: func(ptr unsafe.Pointer, h hooks) Flow {
		node := asNode(t, ptr)
		if mode == ModeMutate {
			return node.(TraversableMut).TraverseMut(h.mutator)
		}
		return node.(Traversable).Traverse(h.visitor)
	}}, nil
}

func (c *compiler) record(p *Plan, s *shape) error {
	if s.params != nil {
		if err := s.params.Validate("skip"); err != nil {
			return err
		}
		if skip := s.params.Take("skip"); skip != nil {
			if err := skip.Unit(); err != nil {
				return err
			}
			p.skipSelf = true
		}
	}
	for _, field := range s.fields {
		fieldStep, err := c.fieldStep(field)
		if err != nil {
			return err
		}
		if fieldStep == nil {
			continue
		}
		p.steps = append(p.steps, fieldStep)
	}
	return nil
}

func (c *compiler) fieldStep(field *fieldSchema) (*step, error) {
	if field.params != nil {
		if err := field.params.Validate("skip", "with"); err != nil {
			return nil, err
		}
		if skip := field.params.Take("skip"); skip != nil {
			if err := skip.Unit(); err != nil {
				return nil, err
			}
			return nil, nil
		}
		if with := field.params.Take("with"); with != nil {
			return c.overrideStep(field, with)
		}
	}
	sub, err := c.plan(field.rType)
	if err != nil {
		return nil, err
	}
	xField := field.xField
	return &step{name: field.name, fn: func(ptr unsafe.Pointer, h hooks) Flow {
		return sub.run(xField.Pointer(ptr), h, false)
	}}, nil
}

func (c *compiler) overrideStep(field *fieldSchema, with *params.Param) (*step, error) {
	ref, err := with.StringLiteral()
	if err != nil {
		return nil, err
	}
	if !isFuncRef(ref) {
		return nil, fmt.Errorf("%v: invalid parameter with: %v", field.location, ref)
	}
	xField := field.xField
	fType := field.rType
	switch c.mode {
	case ModeMutate:
		fn, ok := c.options.funcs.lookupMut(ref)
		if !ok {
			return nil, fmt.Errorf("%v: unknown traversal function %v", field.location, ref)
		}
		return &step{name: field.name, ref: ref, fn: func(ptr unsafe.Pointer, h hooks) Flow {
			return fn(asNode(fType, xField.Pointer(ptr)), h.mutator)
		}}, nil
	default:
		fn, ok := c.options.funcs.lookup(ref)
		if !ok {
			return nil, fmt.Errorf("%v: unknown traversal function %v", field.location, ref)
		}
		return &step{name: field.name, ref: ref, fn: func(ptr unsafe.Pointer, h hooks) Flow {
			return fn(asNode(fType, xField.Pointer(ptr)), h.visitor)
		}}, nil
	}
}

func asNode(t reflect.Type, ptr unsafe.Pointer) interface{} {
	return reflect.NewAt(t, ptr).Interface()
}

var (
	traversableType    = reflect.TypeOf((*Traversable)(nil)).Elem()
	traversableMutType = reflect.TypeOf((*TraversableMut)(nil)).Elem()
	elemTyperType      = reflect.TypeOf((*elemTyper)(nil)).Elem()
)
