package params

import (
	"fmt"
	"strings"
)

// Kind discriminates parameter value shapes.
type Kind int

const (
	//KindUnit is a presence only flag, e.g. skip
	KindUnit Kind = iota
	//KindStringLiteral is a quoted value, e.g. with='fn'
	KindStringLiteral
	//KindNested is a parenthesized sub list, accepted syntactically but never consumed
	KindNested
)

type (
	//Location identifies an attribute attachment point for diagnostics
	Location struct {
		Type    string
		Variant string
		Field   string
	}

	//Param is a single parsed attribute parameter
	Param struct {
		Name     string
		Kind     Kind
		Location Location
		literal  string
		nested   string
	}
)

// NewLocation creates a location for supplied type name
func NewLocation(typeName string) Location {
	return Location{Type: typeName}
}

// WithField returns a field scoped location
func (l Location) WithField(name string) Location {
	l.Field = name
	return l
}

// WithVariant returns a variant scoped location
func (l Location) WithVariant(name string) Location {
	l.Variant = name
	return l
}

func (l Location) String() string {
	builder := strings.Builder{}
	builder.WriteString(l.Type)
	if l.Variant != "" {
		builder.WriteString("[")
		builder.WriteString(l.Variant)
		builder.WriteString("]")
	}
	if l.Field != "" {
		builder.WriteString(".")
		builder.WriteString(l.Field)
	}
	return builder.String()
}

// Unit ensures the parameter is a presence only flag
func (p *Param) Unit() error {
	if p.Kind != KindUnit {
		return fmt.Errorf("%v: invalid parameter %v", p.Location, p.Name)
	}
	return nil
}

// StringLiteral returns the parameter quoted value
func (p *Param) StringLiteral() (string, error) {
	if p.Kind != KindStringLiteral {
		return "", fmt.Errorf("%v: invalid parameter %v", p.Location, p.Name)
	}
	return p.literal, nil
}

// NestedText returns the raw nested list text
func (p *Param) NestedText() string {
	return p.nested
}
