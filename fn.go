package traversal

// FnVisitor wraps a pair of closures into a visitor scoped to one concrete
// node type T. A hook whose node does not downcast to *T is a no-op continue.
// FnVisitor satisfies both Visitor and VisitorMut.
type FnVisitor[T any] struct {
	enter func(item *T) Flow
	leave func(item *T) Flow
}

// Enter runs the enter closure when node is a *T
func (f *FnVisitor[T]) Enter(node interface{}) Flow {
	if f.enter == nil {
		return Continue()
	}
	if item, ok := node.(*T); ok {
		return f.enter(item)
	}
	return Continue()
}

// Leave runs the leave closure when node is a *T
func (f *FnVisitor[T]) Leave(node interface{}) Flow {
	if f.leave == nil {
		return Continue()
	}
	if item, ok := node.(*T); ok {
		return f.leave(item)
	}
	return Continue()
}

func (f *FnVisitor[T]) EnterMut(node interface{}) Flow {
	return f.Enter(node)
}

func (f *FnVisitor[T]) LeaveMut(node interface{}) Flow {
	return f.Leave(node)
}

// OnVisit creates a type filtered visitor from an enter and a leave closure
func OnVisit[T any](enter, leave func(item *T) Flow) *FnVisitor[T] {
	return &FnVisitor[T]{enter: enter, leave: leave}
}

// OnEnter creates a type filtered visitor acting on enter only
func OnEnter[T any](enter func(item *T) Flow) *FnVisitor[T] {
	return &FnVisitor[T]{enter: enter}
}

// OnLeave creates a type filtered visitor acting on leave only
func OnLeave[T any](leave func(item *T) Flow) *FnVisitor[T] {
	return &FnVisitor[T]{leave: leave}
}
