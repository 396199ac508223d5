package traversal

import (
	"fmt"
	"reflect"

	"github.com/viant/tagly/format/text"
)

type (
	//Variant describes one alternative of a registered sum interface.
	//The optional directive is its attribute block, e.g "skip".
	Variant struct {
		rType     reflect.Type
		name      string
		directive string
	}

	sumEntry struct {
		directive string
		variants  []*Variant
	}

	//Sums registers sum types: interfaces with an ordered variant list,
	//dispatched at run time by dynamic type identity
	Sums struct {
		entries *syncMap[reflect.Type, *sumEntry]
	}
)

// NewSums creates an empty sum registry
func NewSums() *Sums {
	return &Sums{entries: newSyncMap[reflect.Type, *sumEntry]()}
}

// VariantOf declares a sum variant of type T with an optional attribute directive
func VariantOf[T any](directive ...string) *Variant {
	t := reflect.TypeOf((*T)(nil)).Elem()
	result := &Variant{rType: t, name: variantName(t)}
	if len(directive) > 0 {
		result.directive = directive[0]
	}
	return result
}

// Name returns the variant display name
func (v *Variant) Name() string {
	return v.name
}

// Register registers the ordered variants of the iface interface type;
// directive is the sum level attribute block, empty for none.
// Registration order is the declaration order used by plan synthesis.
func (s *Sums) Register(iface reflect.Type, directive string, variants ...*Variant) error {
	if iface == nil || iface.Kind() != reflect.Interface {
		return fmt.Errorf("expected interface type, got %v", iface)
	}
	seen := map[reflect.Type]bool{}
	for _, variant := range variants {
		if seen[variant.rType] {
			return fmt.Errorf("%v: duplicate variant %v", typeName(iface), variant.name)
		}
		seen[variant.rType] = true
		if !variant.rType.Implements(iface) && !reflect.PtrTo(variant.rType).Implements(iface) {
			return fmt.Errorf("%v: variant %v does not implement %v", typeName(iface), variant.name, iface)
		}
	}
	s.entries.put(iface, &sumEntry{directive: directive, variants: variants})
	return nil
}

func (s *Sums) lookup(t reflect.Type) (*sumEntry, bool) {
	return s.entries.get(t)
}

var defaultSums = NewSums()

// RegisterSum registers the variants of interface I in the default registry
func RegisterSum[I any](directive string, variants ...*Variant) error {
	return defaultSums.Register(reflect.TypeOf((*I)(nil)).Elem(), directive, variants...)
}

func variantName(t reflect.Type) string {
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if caseFormat := text.DetectCaseFormat(name); caseFormat != text.CaseFormatUpperCamel {
		return caseFormat.Format(name, text.CaseFormatUpperCamel)
	}
	return name
}
