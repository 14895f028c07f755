package compilador

import (
	"github.com/Lefpe/compilador/internal/lexer"
	"github.com/Lefpe/compilador/parser"
	"github.com/rs/zerolog"
)

// Option configures a compilation.
type Option func(*options)

type options struct {
	filename string
	logger   zerolog.Logger
}

func collectOptions(opts ...Option) *options {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) lexerOpts() []lexer.Option {
	var opts []lexer.Option
	if o.filename != "" {
		opts = append(opts, lexer.WithFile(o.filename))
	}
	return opts
}

func (o *options) parserOpts(source string) []parser.Option {
	opts := []parser.Option{parser.WithSource(source)}
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	return opts
}

// WithFilename sets the filename for the source code being compiled.
// This is used in error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithLogger sets the logger used to trace pipeline stages. Stage events
// are emitted at debug level. By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
