package traversal

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type explained struct {
	A int `traverse:"with='describeInt'"`
	B int
}

func TestPlan_Explain(t *testing.T) {
	assert.Nil(t, RegisterFunc("describeInt", func(node interface{}, visitor Visitor) Flow {
		return Continue()
	}))
	plan, err := Compile(reflect.TypeOf(explained{}), ModeRead)
	if !assert.Nil(t, err) {
		return
	}
	description := plan.Explain()
	assert.Equal(t, "traversal.explained", description.Type)
	assert.Equal(t, "read", description.Mode)
	assert.False(t, description.SkipSelf)
	if assert.Equal(t, 2, len(description.Steps)) {
		assert.Equal(t, &ExplainStep{Name: "A", With: "describeInt"}, description.Steps[0])
		assert.Equal(t, &ExplainStep{Name: "B"}, description.Steps[1])
	}
}

func TestExplain_JSON(t *testing.T) {
	plan, err := Compile(reflect.TypeOf(pair{}), ModeMutate)
	if !assert.Nil(t, err) {
		return
	}
	actual, err := plan.Explain().JSON()
	assert.Nil(t, err)
	assert.Equal(t, `{"type":"traversal.pair","mode":"mutate","skipSelf":false,"steps":[{"name":"A"}]}`, actual)
}
