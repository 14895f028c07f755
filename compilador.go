// Package compilador implements a compiler front end for a small C-like
// statement language. Source text is tokenized, parsed into an abstract
// syntax tree by recursive descent, and rendered back as normalized source
// text in which every binary operation is parenthesized and every if
// statement branch is brace delimited.
package compilador

import (
	"context"
	"time"

	"github.com/Lefpe/compilador/ast"
	"github.com/Lefpe/compilador/codegen"
	"github.com/Lefpe/compilador/internal/lexer"
	"github.com/Lefpe/compilador/parser"
	"github.com/gofrs/uuid"
)

// Compile tokenizes, parses, and regenerates the given source code,
// returning the normalized text. The first error from any stage aborts the
// pipeline and no partial output is returned.
func Compile(source string, opts ...Option) (string, error) {
	o := collectOptions(opts...)

	logger := o.logger
	if id, err := uuid.NewV4(); err == nil {
		logger = logger.With().Str("compilation_id", id.String()).Logger()
	}
	start := time.Now()

	tokens, err := lexer.Tokenize(source, o.lexerOpts()...)
	if err != nil {
		logger.Debug().Err(err).Msg("tokenize failed")
		return "", err
	}
	logger.Debug().Int("tokens", len(tokens)).Msg("tokenized")

	program, err := parser.New(tokens, o.parserOpts(source)...).Parse(context.Background())
	if err != nil {
		logger.Debug().Err(err).Msg("parse failed")
		return "", err
	}
	logger.Debug().Int("statements", len(program.Stmts)).Msg("parsed")

	output, err := codegen.Generate(program)
	if err != nil {
		logger.Debug().Err(err).Msg("generate failed")
		return "", err
	}
	logger.Debug().Dur("elapsed", time.Since(start)).Msg("compiled")
	return output, nil
}

// Parse tokenizes and parses the given source code and returns the AST
// without regenerating text.
func Parse(ctx context.Context, source string, opts ...Option) (*ast.Program, error) {
	o := collectOptions(opts...)
	return parser.Parse(ctx, source, o.parserOpts(source)...)
}
