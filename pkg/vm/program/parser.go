// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package program

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/consensys/go-intcode/pkg/util/source"
	"github.com/consensys/go-intcode/pkg/vm/memory"
)

// Program text is a comma-separated list of (optionally negative) decimal
// integers.  Whitespace, including line breaks, is ignored throughout.
var programLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Scripts hold one integer per line, hence line breaks are significant.
var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Newline", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

type listing struct {
	Words []*literal `parser:"@@ ( \",\" @@ )*"`
}

type script struct {
	Lines []*literal `parser:"( @@ | Newline )*"`
}

type literal struct {
	Pos  lexer.Position
	Text string `parser:"@Int"`
}

var (
	programParser = participle.MustBuild[listing](participle.Lexer(programLexer), participle.Elide("Whitespace"))
	scriptParser  = participle.MustBuild[script](participle.Lexer(scriptLexer), participle.Elide("Whitespace"))
)

// ParseString parses program text into an initial memory.  This is a
// convenience for when there is no file to report errors against.
func ParseString(text string) (*memory.Array, error) {
	mem, _, err := Parse(source.NewSourceFile("<program>", []byte(text)))
	//
	return mem, err
}

// Parse a given source file into an initial memory, along with a source map
// identifying the literal from which each memory address was initialised.  A
// malformed literal anywhere in the text is reported as a syntax error, and
// nothing is returned.
func Parse(srcfile *source.File) (*memory.Array, *source.Map[uint], error) {
	var (
		text   = srcfile.Text()
		srcmap = source.NewSourceMap[uint](srcfile)
	)
	//
	ast, err := programParser.ParseString(srcfile.Filename(), text)
	if err != nil {
		return nil, nil, toSyntaxError(srcfile, text, err)
	} else if ast == nil || len(ast.Words) == 0 {
		return nil, nil, srcfile.SyntaxError(source.NewSpan(0, 0), "empty program")
	}
	//
	words := make([]int64, len(ast.Words))
	//
	for i, w := range ast.Words {
		span := spanOf(text, w)
		//
		if words[i], err = parseInt(srcfile, span, w.Text); err != nil {
			return nil, nil, err
		}
		//
		srcmap.Put(uint(i), span)
	}
	//
	return memory.NewArray(words...), srcmap, nil
}

// ParseScript parses the contents of an input script, which holds exactly one
// integer per line.  Blank lines are ignored.
func ParseScript(srcfile *source.File) ([]int64, error) {
	var (
		text  = srcfile.Text()
		lines = make(map[int]bool)
	)
	//
	ast, err := scriptParser.ParseString(srcfile.Filename(), text)
	if err != nil {
		return nil, toSyntaxError(srcfile, text, err)
	} else if ast == nil {
		return nil, nil
	}
	//
	values := make([]int64, len(ast.Lines))
	//
	for i, w := range ast.Lines {
		span := spanOf(text, w)
		// Check at most one integer per line
		if lines[w.Pos.Line] {
			return nil, srcfile.SyntaxError(span, "expected one integer per line")
		}
		//
		lines[w.Pos.Line] = true
		//
		if values[i], err = parseInt(srcfile, span, w.Text); err != nil {
			return nil, err
		}
	}
	//
	return values, nil
}

func parseInt(srcfile *source.File, span source.Span, text string) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	//
	if err != nil {
		return 0, srcfile.SyntaxError(span, fmt.Sprintf("invalid integer \"%s\"", text))
	}
	//
	return value, nil
}

// Determine the span of a literal.  Participle reports byte offsets, whilst
// spans are measured in runes.
func spanOf(text string, w *literal) source.Span {
	start := runeOffset(text, w.Pos.Offset)
	//
	return source.NewSpan(start, start+utf8.RuneCountInString(w.Text))
}

func toSyntaxError(srcfile *source.File, text string, err error) error {
	var perr participle.Error
	//
	if errors.As(err, &perr) {
		start := runeOffset(text, perr.Position().Offset)
		end := min(start+1, len(srcfile.Contents()))
		//
		return srcfile.SyntaxError(source.NewSpan(start, max(start, end)), perr.Message())
	}
	//
	return err
}

func runeOffset(text string, offset int) int {
	offset = max(0, min(offset, len(text)))
	//
	return utf8.RuneCountInString(text[:offset])
}
