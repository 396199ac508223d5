package traversal

// Flow is the control-flow signal threaded through every visitor hook and
// traversal call. Traversal proceeds only while each call returns Continue;
// the first Break value short-circuits remaining work and propagates to the
// original caller unchanged.
type Flow struct {
	value interface{}
	stop  bool
}

// Continue returns a signal that lets traversal proceed.
func Continue() Flow {
	return Flow{}
}

// Break returns a signal that stops traversal, carrying a caller defined value.
func Break(value interface{}) Flow {
	return Flow{value: value, stop: true}
}

// IsBreak returns true for a break signal
func (f Flow) IsBreak() bool {
	return f.stop
}

// IsContinue returns true for a continue signal
func (f Flow) IsContinue() bool {
	return !f.stop
}

// Value returns the break payload, nil for continue
func (f Flow) Value() interface{} {
	return f.value
}
