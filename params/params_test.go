package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	location := NewLocation("Record").WithField("Value")
	var testCases = []struct {
		description string
		input       string
		expect      map[string]Kind
		expectError string
	}{
		{
			description: "unit flag",
			input:       "skip",
			expect:      map[string]Kind{"skip": KindUnit},
		},
		{
			description: "string literal",
			input:       "with='my.Fn'",
			expect:      map[string]Kind{"with": KindStringLiteral},
		},
		{
			description: "mixed",
			input:       "skip,with='custom'",
			expect:      map[string]Kind{"skip": KindUnit, "with": KindStringLiteral},
		},
		{
			description: "nested list",
			input:       "meta(a,b)",
			expect:      map[string]Kind{"meta": KindNested},
		},
		{
			description: "whitespace tolerant",
			input:       " skip , with='x' ",
			expect:      map[string]Kind{"skip": KindUnit, "with": KindStringLiteral},
		},
		{
			description: "trailing comma",
			input:       "skip,",
			expect:      map[string]Kind{"skip": KindUnit},
		},
		{
			description: "duplicate parameter",
			input:       "skip,skip",
			expectError: "duplicate parameter",
		},
		{
			description: "leading empty entry",
			input:       ",skip",
			expectError: "invalid parameter",
		},
		{
			description: "empty entry",
			input:       "skip,,",
			expectError: "invalid parameter",
		},
		{
			description: "non string literal",
			input:       "with=3",
			expectError: "invalid parameter",
		},
		{
			description: "unquoted literal",
			input:       "with=custom",
			expectError: "invalid parameter",
		},
	}

	for _, testCase := range testCases {
		actual, err := Parse(testCase.input, location)
		if testCase.expectError != "" {
			if assert.NotNil(t, err, testCase.description) {
				assert.Contains(t, err.Error(), testCase.expectError, testCase.description)
			}
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, len(testCase.expect), actual.Len(), testCase.description)
		for name, kind := range testCase.expect {
			param := actual.Take(name)
			if assert.NotNil(t, param, testCase.description) {
				assert.Equal(t, kind, param.Kind, testCase.description)
			}
		}
	}
}

func TestParse_literalValue(t *testing.T) {
	actual, err := Parse("with='pkg.Fn'", NewLocation("Record"))
	assert.Nil(t, err)
	param := actual.Take("with")
	if !assert.NotNil(t, param) {
		return
	}
	literal, err := param.StringLiteral()
	assert.Nil(t, err)
	assert.Equal(t, "pkg.Fn", literal)

	err = param.Unit()
	assert.NotNil(t, err)
}

func TestParams_Take(t *testing.T) {
	actual, err := Parse("skip,with='x'", NewLocation("Record"))
	assert.Nil(t, err)
	assert.NotNil(t, actual.Take("skip"))
	assert.Nil(t, actual.Take("skip"), "take is idempotent")
	assert.Equal(t, []string{"with"}, actual.Names())
}

func TestParams_Validate(t *testing.T) {
	actual, err := Parse("unknown", NewLocation("Record").WithField("Id"))
	assert.Nil(t, err)
	err = actual.Validate("skip", "with")
	if assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), "unknown parameter unknown")
		assert.Contains(t, err.Error(), "supported: skip, with")
		assert.Contains(t, err.Error(), "Record.Id")
	}
	assert.Nil(t, actual.Validate("unknown"))
}

func TestFromTag(t *testing.T) {
	location := NewLocation("Record").WithField("Name")
	var testCases = []struct {
		description string
		tag         string
		expectNil   bool
		expectError string
		expectNames []string
	}{
		{
			description: "absent group",
			tag:         `json:"name,omitempty"`,
			expectNil:   true,
		},
		{
			description: "single block",
			tag:         `json:"name" traverse:"skip"`,
			expectNames: []string{"skip"},
		},
		{
			description: "duplicate block",
			tag:         `traverse:"skip" traverse:"with='x'"`,
			expectError: "duplicate attribute",
		},
		{
			description: "empty block",
			tag:         `traverse:""`,
			expectNames: []string{},
		},
	}

	for _, testCase := range testCases {
		actual, err := FromTag(testCase.tag, "traverse", location)
		if testCase.expectError != "" {
			if assert.NotNil(t, err, testCase.description) {
				assert.Contains(t, err.Error(), testCase.expectError, testCase.description)
			}
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if testCase.expectNil {
			assert.Nil(t, actual, testCase.description)
			continue
		}
		if !assert.NotNil(t, actual, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectNames, actual.Names(), testCase.description)
	}
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "Literal", NewLocation("Literal").String())
	assert.Equal(t, "Literal[Float]", NewLocation("Literal").WithVariant("Float").String())
	assert.Equal(t, "Literal[Float].Value", NewLocation("Literal").WithVariant("Float").WithField("Value").String())
	assert.Equal(t, "Record.Id", NewLocation("Record").WithField("Id").String())
}
