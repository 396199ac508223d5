package traversal

import (
	"fmt"
	"strings"
	"unicode"
)

type (
	//Func is a custom traversal function referenced by a with='...' override.
	//It receives the bound field as *T wrapped in interface{} and the visitor
	//driving the traversal; its flow result propagates unchanged.
	Func func(node interface{}, visitor Visitor) Flow

	//FuncMut is the mutating counterpart of Func
	FuncMut func(node interface{}, visitor VisitorMut) Flow

	//Funcs registers named traversal functions resolvable at plan compile time
	Funcs struct {
		read   *syncMap[string, Func]
		mutate *syncMap[string, FuncMut]
	}
)

// NewFuncs creates an empty traversal function registry
func NewFuncs() *Funcs {
	return &Funcs{read: newSyncMap[string, Func](), mutate: newSyncMap[string, FuncMut]()}
}

// Register registers a read-only traversal function under name
func (f *Funcs) Register(name string, fn Func) error {
	if !isFuncRef(name) {
		return fmt.Errorf("invalid traversal function name: %v", name)
	}
	f.read.put(name, fn)
	return nil
}

// RegisterMut registers a mutating traversal function under name
func (f *Funcs) RegisterMut(name string, fn FuncMut) error {
	if !isFuncRef(name) {
		return fmt.Errorf("invalid traversal function name: %v", name)
	}
	f.mutate.put(name, fn)
	return nil
}

func (f *Funcs) lookup(name string) (Func, bool) {
	return f.read.get(name)
}

func (f *Funcs) lookupMut(name string) (FuncMut, bool) {
	return f.mutate.get(name)
}

var defaultFuncs = NewFuncs()

// RegisterFunc registers fn in the default registry
func RegisterFunc(name string, fn Func) error {
	return defaultFuncs.Register(name, fn)
}

// RegisterFuncMut registers fn in the default registry
func RegisterFuncMut(name string, fn FuncMut) error {
	return defaultFuncs.RegisterMut(name, fn)
}

// isFuncRef reports whether name is a valid ident('.'ident)* reference
func isFuncRef(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return false
		}
		for i, r := range part {
			switch {
			case r == '_' || unicode.IsLetter(r):
			case unicode.IsDigit(r):
				if i == 0 {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}
