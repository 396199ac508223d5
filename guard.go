package traversal

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/xunsafe"
)

// Locked guards a value with a reader/writer lock. Traversal acquires the
// lock for exactly the duration of the contained value's traversal and
// releases it on every exit path, including the break path.
//
// The contained value always traverses through the shared plan compiled with
// default options: WithTag, WithFuncs and WithSums set on an enclosing
// Compile do not reach through the guard.
type Locked[T any] struct {
	mux   sync.RWMutex
	value T
}

// NewLocked creates a guarded value
func NewLocked[T any](value T) *Locked[T] {
	return &Locked[T]{value: value}
}

// Get returns a copy of the guarded value
func (l *Locked[T]) Get() T {
	l.mux.RLock()
	defer l.mux.RUnlock()
	return l.value
}

// Set replaces the guarded value
func (l *Locked[T]) Set(value T) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.value = value
}

// Traverse acquires shared access and delegates to the contained value
func (l *Locked[T]) Traverse(visitor Visitor) Flow {
	l.mux.RLock()
	defer l.mux.RUnlock()
	return traverseElem(&l.value, ModeRead, hooks{visitor: visitor})
}

// TraverseMut acquires exclusive access and delegates to the contained value
func (l *Locked[T]) TraverseMut(visitor VisitorMut) Flow {
	l.mux.Lock()
	defer l.mux.Unlock()
	return traverseElem(&l.value, ModeMutate, hooks{mutator: visitor})
}

func (l *Locked[T]) traversalElem() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// elemTyper lets the plan compiler reach through a guarded wrapper and
// compile the element plan eagerly, so element errors surface at compile
type elemTyper interface {
	traversalElem() reflect.Type
}

// traverseElem runs the cached element plan; the element was compiled when
// the enclosing plan was, so the panic is unreachable from plan driven
// traversals and only trips on a direct call with an uncompilable element
func traverseElem(node interface{}, mode Mode, h hooks) Flow {
	plan, err := Compiled(reflect.TypeOf(node).Elem(), mode)
	if err != nil {
		panic(fmt.Sprintf("traversal: %v", err))
	}
	return plan.run(xunsafe.AsPointer(node), h, false)
}
