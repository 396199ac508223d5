package traversal

type (
	//Visitor receives enter/leave hooks around each visited node.
	//Node references are passed as *T wrapped in interface{}; a read-only
	//visitor must not mutate through them.
	Visitor interface {
		Enter(node interface{}) Flow
		Leave(node interface{}) Flow
	}

	//VisitorMut is the mutating counterpart; hooks may modify the node in place
	VisitorMut interface {
		EnterMut(node interface{}) Flow
		LeaveMut(node interface{}) Flow
	}

	//Traversable is implemented by types providing hand written traversal
	Traversable interface {
		Traverse(visitor Visitor) Flow
	}

	//TraversableMut is the mutating counterpart of Traversable
	TraversableMut interface {
		TraverseMut(visitor VisitorMut) Flow
	}
)

// Base is a no-op Visitor for embedding; each hook continues.
type Base struct{}

func (Base) Enter(interface{}) Flow { return Continue() }
func (Base) Leave(interface{}) Flow { return Continue() }

// BaseMut is a no-op VisitorMut for embedding
type BaseMut struct{}

func (BaseMut) EnterMut(interface{}) Flow { return Continue() }
func (BaseMut) LeaveMut(interface{}) Flow { return Continue() }

// AsMut adapts a read-only visitor to the mutable contract; a mutable node
// is offered to the read-only hooks through the same reference.
func AsMut(visitor Visitor) VisitorMut {
	return mutAdapter{visitor: visitor}
}

type mutAdapter struct {
	visitor Visitor
}

func (a mutAdapter) EnterMut(node interface{}) Flow {
	return a.visitor.Enter(node)
}

func (a mutAdapter) LeaveMut(node interface{}) Flow {
	return a.visitor.Leave(node)
}

// hooks routes hook invocations to whichever visitor flavor drives a plan run
type hooks struct {
	visitor Visitor
	mutator VisitorMut
}

func (h hooks) enter(node interface{}) Flow {
	if h.mutator != nil {
		return h.mutator.EnterMut(node)
	}
	return h.visitor.Enter(node)
}

func (h hooks) leave(node interface{}) Flow {
	if h.mutator != nil {
		return h.mutator.LeaveMut(node)
	}
	return h.visitor.Leave(node)
}
