package traversal

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncs_Register(t *testing.T) {
	registry := NewFuncs()
	assert.Nil(t, registry.Register("pkg.visitEach", func(node interface{}, visitor Visitor) Flow {
		return Continue()
	}))
	err := registry.Register("3bad", func(node interface{}, visitor Visitor) Flow {
		return Continue()
	})
	if assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), "invalid traversal function name")
	}
	assert.NotNil(t, registry.RegisterMut("a..b", func(node interface{}, visitor VisitorMut) Flow {
		return Continue()
	}))
}

func TestIsFuncRef(t *testing.T) {
	testCases := []struct {
		candidate string
		expect    bool
	}{
		{"visit", true},
		{"pkg.visit", true},
		{"_x.y1", true},
		{"", false},
		{"1visit", false},
		{".visit", false},
		{"visit.", false},
		{"not a ref", false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, isFuncRef(testCase.candidate), testCase.candidate)
	}
}

type scoped struct {
	ID int `walk:"with='scopedCapture'"`
}

func TestCompile_customRegistries(t *testing.T) {
	var captured int
	funcs := NewFuncs()
	assert.Nil(t, funcs.Register("scopedCapture", func(node interface{}, visitor Visitor) Flow {
		captured = *(node.(*int))
		return Continue()
	}))

	plan, err := Compile(reflect.TypeOf(scoped{}), ModeRead, WithTag("walk"), WithFuncs(funcs))
	if !assert.Nil(t, err) {
		return
	}
	flow := plan.Traverse(&scoped{ID: 12}, Base{})
	assert.True(t, flow.IsContinue())
	assert.Equal(t, 12, captured)
}

type holder struct {
	Lit literal
}

func TestCompile_customSums(t *testing.T) {
	sums := NewSums()
	assert.Nil(t, sums.Register(reflect.TypeOf((*literal)(nil)).Elem(), "", VariantOf[nullLit]()))

	plan, err := Compile(reflect.TypeOf(holder{}), ModeRead, WithSums(sums))
	if !assert.Nil(t, err) {
		return
	}
	log := &eventLog{}
	flow := plan.Traverse(&holder{Lit: floatLit{Value: 1}}, log)
	assert.True(t, flow.IsContinue())
	assert.Equal(t, []string{"enter(holder)", "leave(holder)"}, log.events,
		"variant absent from the scoped registry dispatches to nothing")
}
