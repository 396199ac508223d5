package params

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	parenBlockToken
	quotedToken
)

var (
	whitespaceMatcher = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	parenBlockMatcher = parsly.NewToken(parenBlockToken, "( .... )", matcher.NewBlock('(', ')', '\\'))
	quotedMatcher     = parsly.NewToken(quotedToken, "' .... '", matcher.NewQuote('\'', '\\'))
)
