package traversal

import (
	"github.com/francoispqt/gojay"
)

type (
	//Explain is a structural description of a compiled plan, used for
	//debugging and for asserting synthesis determinism
	Explain struct {
		Type     string
		Mode     string
		SkipSelf bool
		Steps    ExplainSteps
	}

	//ExplainStep describes a single child visit step
	ExplainStep struct {
		Name string
		With string
	}

	//ExplainSteps represents plan steps
	ExplainSteps []*ExplainStep
)

// Explain returns the plan structural description
func (p *Plan) Explain() *Explain {
	result := &Explain{Type: p.rType.String(), Mode: p.mode.String(), SkipSelf: p.skipSelf}
	for _, s := range p.steps {
		result.Steps = append(result.Steps, &ExplainStep{Name: s.name, With: s.ref})
	}
	return result
}

// JSON returns the description JSON rendition
func (e *Explain) JSON() (string, error) {
	data, err := gojay.MarshalJSONObject(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (e *Explain) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("type", e.Type)
	enc.StringKey("mode", e.Mode)
	enc.BoolKey("skipSelf", e.SkipSelf)
	enc.ArrayKey("steps", e.Steps)
}

// IsNil implements gojay.MarshalerJSONObject
func (e *Explain) IsNil() bool {
	return e == nil
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (s *ExplainStep) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", s.Name)
	enc.StringKeyOmitEmpty("with", s.With)
}

// IsNil implements gojay.MarshalerJSONObject
func (s *ExplainStep) IsNil() bool {
	return s == nil
}

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (s ExplainSteps) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range s {
		enc.Object(item)
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (s ExplainSteps) IsNil() bool {
	return len(s) == 0
}
