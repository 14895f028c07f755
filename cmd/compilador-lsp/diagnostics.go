package main

import (
	"context"
	"errors"

	"github.com/Lefpe/compilador/errz"
	"github.com/Lefpe/compilador/internal/token"
	"github.com/Lefpe/compilador/parser"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog/log"
)

// publishDiagnostics reports the document's compile error to the
// client, or clears earlier diagnostics when the document is clean.
func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	if s.client == nil {
		return nil
	}
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		diagnostics = append(diagnostics, errorDiagnostic(doc.err))
	}
	log.Debug().
		Str("uri", string(doc.item.URI)).
		Int("count", len(diagnostics)).
		Msg("publishing diagnostics")
	return s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         doc.item.URI,
		Diagnostics: diagnostics,
	})
}

func (s *Server) clearDiagnostics(ctx context.Context, uri protocol.DocumentURI) error {
	if s.client == nil {
		return nil
	}
	return s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
}

// errorDiagnostic converts a compile error into a diagnostic anchored
// at the error's source position. Token positions are already 0-based;
// structured locations are 1-based and shift down by one.
func errorDiagnostic(err error) protocol.Diagnostic {
	var start, end protocol.Position
	var perr parser.ParserError
	var serr *errz.StructuredError
	switch {
	case errors.As(err, &perr):
		start = tokenPosition(perr.StartPosition())
		end = tokenPosition(perr.EndPosition())
	case errors.As(err, &serr) && !serr.Location.IsZero():
		start = protocol.Position{
			Line:      uint32(serr.Location.Line - 1),
			Character: uint32(serr.Location.Column - 1),
		}
		end = start
	}
	if end.Line == start.Line && end.Character <= start.Character {
		end = protocol.Position{Line: start.Line, Character: start.Character + 1}
	}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: 1, // Error
		Source:   "compilador",
		Message:  err.Error(),
	}
}

func tokenPosition(pos token.Position) protocol.Position {
	return protocol.Position{Line: uint32(pos.Line), Character: uint32(pos.Column)}
}
