package traversal

// TagName is the default attribute tag key
const TagName = "traverse"

type (
	options struct {
		tag   string
		funcs *Funcs
		sums  *Sums
	}

	//Option customizes plan compilation
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	result := &options{tag: TagName, funcs: defaultFuncs, sums: defaultSums}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// WithTag overrides the attribute tag key
func WithTag(name string) Option {
	return func(o *options) {
		o.tag = name
	}
}

// WithFuncs overrides the traversal function registry
func WithFuncs(funcs *Funcs) Option {
	return func(o *options) {
		o.funcs = funcs
	}
}

// WithSums overrides the sum type registry
func WithSums(sums *Sums) Option {
	return func(o *options) {
		o.sums = sums
	}
}
