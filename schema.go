package traversal

import (
	"fmt"
	"reflect"

	"github.com/viant/traversal/params"
	"github.com/viant/xunsafe"
)

type shapeKind int

const (
	shapeLeaf shapeKind = iota
	shapeRecord
	shapeSum
	shapePointer
	shapeSlice
	shapeArray
	shapeMap
)

type (
	//shape is the immutable description of a declared type: a record with
	//ordered fields, a sum with ordered variants, a leaf, or a container
	shape struct {
		rType      reflect.Type
		kind       shapeKind
		registered bool
		params     *params.Params
		fields     []*fieldSchema
		variants   []*variantSchema
	}

	fieldSchema struct {
		name     string
		index    int
		rType    reflect.Type
		xField   *xunsafe.Field
		params   *params.Params
		location params.Location
	}

	variantSchema struct {
		name   string
		rType  reflect.Type
		params *params.Params
	}
)

func shapeOf(t reflect.Type, opts *options) (*shape, error) {
	switch t.Kind() {
	case reflect.Struct:
		return recordShape(t, opts)
	case reflect.Interface:
		return sumShape(t, opts)
	case reflect.Ptr:
		return &shape{rType: t, kind: shapePointer}, nil
	case reflect.Slice:
		return &shape{rType: t, kind: shapeSlice}, nil
	case reflect.Array:
		return &shape{rType: t, kind: shapeArray}, nil
	case reflect.Map:
		return &shape{rType: t, kind: shapeMap}, nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return &shape{rType: t, kind: shapeLeaf}, nil
	}
	return nil, fmt.Errorf("%v: unsupported shape %v", typeName(t), t.Kind())
}

func recordShape(t reflect.Type, opts *options) (*shape, error) {
	location := params.NewLocation(typeName(t))
	result := &shape{rType: t, kind: shapeRecord}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Name == "_" {
			block, err := params.FromTag(string(field.Tag), opts.tag, location)
			if err != nil {
				return nil, err
			}
			if block == nil {
				continue
			}
			if result.params != nil {
				return nil, fmt.Errorf("%v: duplicate attribute %v", location, opts.tag)
			}
			result.params = block
			continue
		}
		fieldLocation := location.WithField(field.Name)
		block, err := params.FromTag(string(field.Tag), opts.tag, fieldLocation)
		if err != nil {
			return nil, err
		}
		result.fields = append(result.fields, &fieldSchema{
			name:     field.Name,
			index:    i,
			rType:    field.Type,
			xField:   xunsafe.NewField(field),
			params:   block,
			location: fieldLocation,
		})
	}
	return result, nil
}

func sumShape(t reflect.Type, opts *options) (*shape, error) {
	result := &shape{rType: t, kind: shapeSum}
	entry, ok := opts.sums.lookup(t)
	if !ok {
		return result, nil
	}
	result.registered = true
	location := params.NewLocation(typeName(t))
	if entry.directive != "" {
		block, err := params.Parse(entry.directive, location)
		if err != nil {
			return nil, err
		}
		result.params = block
	}
	for _, variant := range entry.variants {
		schema := &variantSchema{name: variant.name, rType: variant.rType}
		if variant.directive != "" {
			block, err := params.Parse(variant.directive, location.WithVariant(variant.name))
			if err != nil {
				return nil, err
			}
			schema.params = block
		}
		result.variants = append(result.variants, schema)
	}
	return result, nil
}

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
