package traversal

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Container rules: pointers delegate transparently to the pointed value;
// slices, arrays and maps traverse their elements in place without self
// hooks, short-circuiting on the first break.

func (c *compiler) pointer(p *Plan, t reflect.Type) error {
	elem, err := c.plan(t.Elem())
	if err != nil {
		return err
	}
	p.steps = append(p.steps, &step{name: "*", fn: func(ptr unsafe.Pointer, h hooks) Flow {
		item := xunsafe.DerefPointer(ptr)
		if item == nil {
			return Continue()
		}
		return elem.run(item, h, false)
	}})
	return nil
}

func (c *compiler) slice(p *Plan, t reflect.Type) error {
	elem, err := c.plan(t.Elem())
	if err != nil {
		return err
	}
	xSlice := xunsafe.NewSlice(t)
	p.steps = append(p.steps, &step{name: "[]", fn: func(ptr unsafe.Pointer, h hooks) Flow {
		itemCount := xSlice.Len(ptr)
		for i := 0; i < itemCount; i++ {
			if flow := elem.run(xSlice.PointerAt(ptr, uintptr(i)), h, false); flow.IsBreak() {
				return flow
			}
		}
		return Continue()
	}})
	return nil
}

func (c *compiler) array(p *Plan, t reflect.Type) error {
	elem, err := c.plan(t.Elem())
	if err != nil {
		return err
	}
	itemCount := t.Len()
	itemSize := t.Elem().Size()
	p.steps = append(p.steps, &step{name: "[...]", fn: func(ptr unsafe.Pointer, h hooks) Flow {
		for i := 0; i < itemCount; i++ {
			if flow := elem.run(unsafe.Add(ptr, uintptr(i)*itemSize), h, false); flow.IsBreak() {
				return flow
			}
		}
		return Continue()
	}})
	return nil
}

func (c *compiler) mapEntries(p *Plan, t reflect.Type) error {
	valuePlan, err := c.plan(t.Elem())
	if err != nil {
		return err
	}
	if c.mode == ModeMutate {
		// keys stay immutable; values traverse over an addressable copy
		// written back before any break propagates
		p.steps = append(p.steps, &step{name: "map", fn: func(ptr unsafe.Pointer, h hooks) Flow {
			aMap := reflect.NewAt(t, ptr).Elem()
			iterator := aMap.MapRange()
			for iterator.Next() {
				value := reflect.New(t.Elem())
				value.Elem().Set(iterator.Value())
				flow := valuePlan.run(value.UnsafePointer(), h, false)
				aMap.SetMapIndex(iterator.Key(), value.Elem())
				if flow.IsBreak() {
					return flow
				}
			}
			return Continue()
		}})
		return nil
	}
	keyPlan, err := c.plan(t.Key())
	if err != nil {
		return err
	}
	p.steps = append(p.steps, &step{name: "map", fn: func(ptr unsafe.Pointer, h hooks) Flow {
		aMap := reflect.NewAt(t, ptr).Elem()
		iterator := aMap.MapRange()
		for iterator.Next() {
			key := reflect.New(t.Key())
			key.Elem().Set(iterator.Key())
			if flow := keyPlan.run(key.UnsafePointer(), h, false); flow.IsBreak() {
				return flow
			}
			value := reflect.New(t.Elem())
			value.Elem().Set(iterator.Value())
			if flow := valuePlan.run(value.UnsafePointer(), h, false); flow.IsBreak() {
				return flow
			}
		}
		return Continue()
	}})
	return nil
}
