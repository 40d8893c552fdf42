// SPDX-License-Identifier: MIT

package graphio

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// document is the syntactic view of an input: a sequence of lines, each a
// possibly empty run of integers. Shape checks happen in decode.
type document struct {
	Lines []*line `parser:"@@*"`
}

type line struct {
	Pos    lexer.Position
	Values []int  `parser:"@Int*"`
	EOL    string `parser:"@EOL"`
}

var inputLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parseDocument = participle.MustBuild[document](
	participle.Lexer(inputLexer),
	participle.Elide("Whitespace"),
)
