package pathstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrBadLiteral is returned for a cell that is not an integer list literal.
var ErrBadLiteral = errors.New("pathstore: malformed list literal")

// listLiteral is the grammar of one cell: "[" (Int ("," Int)*)? "]".
type listLiteral struct {
	Items []int `parser:"\"[\" ( @Int ( \",\" @Int )* )? \"]\""`
}

var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Punct", Pattern: `[\[\],]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parseLiteral = participle.MustBuild[listLiteral](
	participle.Lexer(literalLexer),
)

// ParseLiteral parses an integer list literal such as "[0, 3, 2, 0]".
// "[]" yields an empty, non-nil slice.
func ParseLiteral(s string) ([]int, error) {
	lit, err := parseLiteral.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLiteral, err)
	}
	if lit.Items == nil {
		return []int{}, nil
	}

	return lit.Items, nil
}

// FormatLiteral renders p the way ParseLiteral reads it: "[1, 2, 3]".
func FormatLiteral(p []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}
