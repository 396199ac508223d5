package traversal

import (
	"fmt"
	"reflect"
)

var planCache = newSyncMap[planKey, *Plan]()

type planKey struct {
	rType reflect.Type
	mode  Mode
}

// Compiled returns a shared plan for t compiled once with default options
func Compiled(t reflect.Type, mode Mode) (*Plan, error) {
	key := planKey{rType: t, mode: mode}
	if plan, ok := planCache.get(key); ok {
		return plan, nil
	}
	plan, err := Compile(t, mode)
	if err != nil {
		return nil, err
	}
	planCache.put(key, plan)
	return plan, nil
}

// Walk traverses node with visitor using a cached read plan; node can be a
// value or a pointer. The error reports plan compilation failures only, a
// visitor break is returned as the flow result.
func Walk(node interface{}, visitor Visitor) (Flow, error) {
	t := reflect.TypeOf(node)
	if t == nil {
		return Continue(), fmt.Errorf("expected value, got nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	plan, err := Compiled(t, ModeRead)
	if err != nil {
		return Continue(), err
	}
	return plan.Traverse(node, visitor), nil
}

// WalkMut traverses node with a mutating visitor; node has to be a pointer
func WalkMut(node interface{}, visitor VisitorMut) (Flow, error) {
	t := reflect.TypeOf(node)
	if t == nil || t.Kind() != reflect.Ptr {
		return Continue(), fmt.Errorf("expected pointer, got %T", node)
	}
	plan, err := Compiled(t.Elem(), ModeMutate)
	if err != nil {
		return Continue(), err
	}
	return plan.TraverseMut(node, visitor), nil
}
