package traversal

import (
	"reflect"
	"unsafe"
)

// variantArm is one synthesized case of a sum dispatch: it matches a dynamic
// type and either runs the variant plan or, when the variant is skipped,
// keeps the match with an empty body
type variantArm struct {
	name     string
	plan     *Plan
	skipBody bool
}

func (a *variantArm) run(ptr unsafe.Pointer, h hooks, suppressSelf bool) Flow {
	if !a.skipBody {
		return a.plan.run(ptr, h, suppressSelf)
	}
	if suppressSelf || a.plan.skipSelf || !a.plan.selfHooks {
		return Continue()
	}
	node := asNode(a.plan.rType, ptr)
	if flow := h.enter(node); flow.IsBreak() {
		return flow
	}
	return h.leave(node)
}

func (c *compiler) sum(p *Plan, s *shape) error {
	skipSelf := false
	if s.params != nil {
		if err := s.params.Validate("skip"); err != nil {
			return err
		}
		if skip := s.params.Take("skip"); skip != nil {
			if err := skip.Unit(); err != nil {
				return err
			}
			skipSelf = true
		}
	}
	arms := make(map[reflect.Type]*variantArm, len(s.variants))
	for _, variant := range s.variants {
		arm := &variantArm{name: variant.name}
		if variant.params != nil {
			if err := variant.params.Validate("skip"); err != nil {
				return err
			}
			if skip := variant.params.Take("skip"); skip != nil {
				if err := skip.Unit(); err != nil {
					return err
				}
				arm.skipBody = true
			}
		}
		variantPlan, err := c.plan(variant.rType)
		if err != nil {
			return err
		}
		arm.plan = variantPlan
		arms[variant.rType] = arm
	}
	t := s.rType
	registered := s.registered
	mode := c.mode
	p.steps = append(p.steps, &step{name: typeName(t), fn: func(ptr unsafe.Pointer, h hooks) Flow {
		holder := reflect.NewAt(t, ptr).Elem()
		if holder.IsNil() {
			return Continue()
		}
		dyn := holder.Elem()
		dynType := dyn.Type()
		if dynType.Kind() == reflect.Ptr {
			if arm, ok := arms[dynType.Elem()]; ok {
				if dyn.IsNil() {
					return Continue()
				}
				return arm.run(dyn.UnsafePointer(), h, skipSelf)
			}
		}
		if arm, ok := arms[dynType]; ok {
			value := reflect.New(dynType)
			value.Elem().Set(dyn)
			flow := arm.run(value.UnsafePointer(), h, skipSelf)
			if mode == ModeMutate {
				holder.Set(value.Elem())
			}
			return flow
		}
		if registered {
			return Continue()
		}
		return dynamicStep(dyn, h, mode)
	}})
	return nil
}

// dynamicStep honors a hand written traversal on an unregistered interface
// value; anything else is a no-op continue
func dynamicStep(dyn reflect.Value, h hooks, mode Mode) Flow {
	node := dyn.Interface()
	if mode == ModeMutate {
		if actual, ok := node.(TraversableMut); ok {
			return actual.TraverseMut(h.mutator)
		}
		return Continue()
	}
	if actual, ok := node.(Traversable); ok {
		return actual.Traverse(h.visitor)
	}
	return Continue()
}
