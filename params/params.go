package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// Params holds the parsed attribute block of one attachment point.
// Parameters are consumed by name with Take; the keyed store is used
// for lookup and removal only, never to drive emission order.
type Params struct {
	location Location
	names    []string
	items    map[string]*Param
}

// Location returns the attachment point location
func (p *Params) Location() Location {
	return p.location
}

// Len returns the number of remaining parameters
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns remaining parameter names in declaration order
func (p *Params) Names() []string {
	if p == nil {
		return nil
	}
	result := make([]string, len(p.names))
	copy(result, p.names)
	return result
}

// Validate fails on any parameter outside the allowed set
func (p *Params) Validate(allowed ...string) error {
	if p == nil {
		return nil
	}
	for _, name := range p.names {
		if !contains(allowed, name) {
			return fmt.Errorf("%v: unknown parameter %v, supported: %v", p.location, name, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// Take removes and returns the parameter by name, or nil when absent.
// A repeated call for the same name returns nil.
func (p *Params) Take(name string) *Param {
	if p == nil {
		return nil
	}
	param, ok := p.items[name]
	if !ok {
		return nil
	}
	delete(p.items, name)
	for i, candidate := range p.names {
		if candidate == name {
			p.names = append(p.names[:i], p.names[i+1:]...)
			break
		}
	}
	return param
}

func (p *Params) add(param *Param) error {
	if _, ok := p.items[param.Name]; ok {
		return fmt.Errorf("%v: duplicate parameter %v", p.location, param.Name)
	}
	p.items[param.Name] = param
	p.names = append(p.names, param.Name)
	return nil
}

// Parse parses a comma separated attribute parameter list, e.g "skip,with='my.Fn'"
func Parse(text string, location Location) (*Params, error) {
	result := &Params{location: location, items: map[string]*Param{}}
	cursor := parsly.NewCursor("", []byte(text), 0)
	for cursor.Pos < len(cursor.Input) {
		param, err := matchParam(cursor, location)
		if err != nil {
			return nil, err
		}
		if param == nil {
			continue
		}
		if err := result.add(param); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FromTag extracts the group attribute block from a raw struct tag literal
// and parses it. It returns nil when the group key is absent; a second
// occurrence of the group key is a duplicate attribute block error.
func FromTag(tagLiteral string, group string, location Location) (*Params, error) {
	block := ""
	found := false
	for tagLiteral != "" {
		name, value, rest, ok := scanTagPair(tagLiteral)
		if !ok {
			break
		}
		tagLiteral = rest
		if name != group {
			continue
		}
		if found {
			return nil, fmt.Errorf("%v: duplicate attribute %v", location, group)
		}
		found = true
		block = value
	}
	if !found {
		return nil, nil
	}
	return Parse(block, location)
}

func matchParam(cursor *parsly.Cursor, location Location) (*Param, error) {
	skipWhitespace(cursor)
	name := matchName(cursor)
	if name == "" {
		if cursor.Pos >= len(cursor.Input) {
			return nil, nil
		}
		return nil, fmt.Errorf("%v: invalid parameter %v", location, string(cursor.Input[cursor.Pos:]))
	}
	param := &Param{Name: name, Kind: KindUnit, Location: location}
	skipWhitespace(cursor)
	if cursor.Pos >= len(cursor.Input) {
		return param, nil
	}
	switch cursor.Input[cursor.Pos] {
	case ',':
		cursor.Pos++
		return param, nil
	case '=':
		cursor.Pos++
		match := cursor.MatchAfterOptional(whitespaceMatcher, quotedMatcher)
		if match.Code != quotedToken {
			return nil, fmt.Errorf("%v: invalid parameter %v", location, name)
		}
		param.Kind = KindStringLiteral
		param.literal = unquote(match.Text(cursor))
	case '(':
		match := cursor.MatchAny(parenBlockMatcher)
		if match.Code != parenBlockToken {
			return nil, fmt.Errorf("%v: invalid parameter %v", location, name)
		}
		param.Kind = KindNested
		param.nested = unwrap(match.Text(cursor), '(', ')')
	default:
		return nil, fmt.Errorf("%v: invalid parameter %v", location, name)
	}
	skipWhitespace(cursor)
	if cursor.Pos < len(cursor.Input) {
		if cursor.Input[cursor.Pos] != ',' {
			return nil, fmt.Errorf("%v: invalid parameter %v", location, name)
		}
		cursor.Pos++
	}
	return param, nil
}

func matchName(cursor *parsly.Cursor) string {
	start := cursor.Pos
	for cursor.Pos < len(cursor.Input) {
		ch := cursor.Input[cursor.Pos]
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '_' {
			cursor.Pos++
			continue
		}
		break
	}
	return string(cursor.Input[start:cursor.Pos])
}

func skipWhitespace(cursor *parsly.Cursor) {
	for cursor.Pos < len(cursor.Input) {
		switch cursor.Input[cursor.Pos] {
		case ' ', '\t':
			cursor.Pos++
		default:
			return
		}
	}
}

func unquote(text string) string {
	text = unwrap(text, '\'', '\'')
	if strings.IndexByte(text, '\\') == -1 {
		return text
	}
	builder := strings.Builder{}
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) {
			i++
		}
		builder.WriteByte(text[i])
	}
	return builder.String()
}

func unwrap(text string, open, close byte) string {
	if len(text) >= 2 && text[0] == open && text[len(text)-1] == close {
		return text[1 : len(text)-1]
	}
	return text
}

func contains(names []string, candidate string) bool {
	for _, name := range names {
		if name == candidate {
			return true
		}
	}
	return false
}

// scanTagPair scans one name:"value" pair of a raw struct tag literal
func scanTagPair(tagLiteral string) (name, value, rest string, ok bool) {
	i := 0
	for i < len(tagLiteral) && tagLiteral[i] == ' ' {
		i++
	}
	tagLiteral = tagLiteral[i:]
	if tagLiteral == "" {
		return "", "", "", false
	}
	i = 0
	for i < len(tagLiteral) && tagLiteral[i] > ' ' && tagLiteral[i] != ':' && tagLiteral[i] != '"' && tagLiteral[i] != 0x7f {
		i++
	}
	if i == 0 || i+1 >= len(tagLiteral) || tagLiteral[i] != ':' || tagLiteral[i+1] != '"' {
		return "", "", "", false
	}
	name = tagLiteral[:i]
	tagLiteral = tagLiteral[i+1:]
	i = 1
	for i < len(tagLiteral) && tagLiteral[i] != '"' {
		if tagLiteral[i] == '\\' {
			i++
		}
		i++
	}
	if i >= len(tagLiteral) {
		return "", "", "", false
	}
	quotedValue := tagLiteral[:i+1]
	rest = tagLiteral[i+1:]
	value, err := strconv.Unquote(quotedValue)
	if err != nil {
		return "", "", "", false
	}
	return name, value, rest, true
}
