package main

import (
	"context"

	"github.com/Lefpe/compilador/ast"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog/log"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "DocumentSymbol").Msg("failed to get document")
		return nil, nil
	}
	if doc.ast == nil {
		return nil, nil
	}

	var symbols []interface{}
	ast.Inspect(doc.ast, func(node ast.Node) bool {
		assign, ok := node.(*ast.Assign)
		if !ok {
			return true
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           assign.Name.Name,
			Detail:         "variable",
			Kind:           13, // Variable
			Range:          nodeRange(assign),
			SelectionRange: nodeRange(assign.Name),
		})
		return true
	})
	return symbols, nil
}

// Definition resolves an identifier to the first assignment of that
// name in the document.
func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "Definition").Msg("failed to get document")
		return nil, nil
	}
	if doc.ast == nil {
		return nil, nil
	}
	ident, ok := nodeAtPosition(doc.ast, params.Position).(*ast.Ident)
	if !ok {
		return nil, nil
	}

	var locations []protocol.Location
	ast.Inspect(doc.ast, func(node ast.Node) bool {
		if len(locations) > 0 {
			return false
		}
		if assign, ok := node.(*ast.Assign); ok && assign.Name.Name == ident.Name {
			locations = append(locations, protocol.Location{
				URI:   doc.item.URI,
				Range: nodeRange(assign.Name),
			})
			return false
		}
		return true
	})
	return locations, nil
}

func nodeRange(node ast.Node) protocol.Range {
	start, end := node.Pos(), node.End()
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start.Line), Character: uint32(start.Column)},
		End:   protocol.Position{Line: uint32(end.Line), Character: uint32(end.Column)},
	}
}
