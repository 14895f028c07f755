package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/Lefpe/compilador/parser"
	"github.com/jdbaldry/go-language-server-protocol/jsonrpc2"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog/log"
)

// Server answers language server protocol requests for the language.
type Server struct {
	name     string
	version  string
	cache    *cache
	client   protocol.Client
	shutdown bool
}

func newServer(name, version string) *Server {
	return &Server{name: name, version: version, cache: newCache()}
}

// handler dispatches incoming jsonrpc2 requests to the Server methods.
func (s *Server) handler(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	log.Debug().Str("method", req.Method()).Msg("request received")
	switch req.Method() {
	case "initialize":
		var params protocol.ParamInitialize
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		result, err := s.Initialize(ctx, &params)
		return reply(ctx, result, err)
	case "initialized":
		return reply(ctx, nil, nil)
	case "shutdown":
		s.shutdown = true
		return reply(ctx, nil, nil)
	case "exit":
		code := 1
		if s.shutdown {
			code = 0
		}
		os.Exit(code)
		return nil
	case "textDocument/didOpen":
		var params protocol.DidOpenTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, s.DidOpen(ctx, &params))
	case "textDocument/didChange":
		var params protocol.DidChangeTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, s.DidChange(ctx, &params))
	case "textDocument/didClose":
		var params protocol.DidCloseTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, s.DidClose(ctx, &params))
	case "textDocument/didSave":
		var params protocol.DidSaveTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, s.DidSave(ctx, &params))
	case "textDocument/completion":
		var params protocol.CompletionParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		result, err := s.Completion(ctx, &params)
		return reply(ctx, result, err)
	case "textDocument/hover":
		var params protocol.HoverParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		result, err := s.Hover(ctx, &params)
		return reply(ctx, result, err)
	case "textDocument/documentSymbol":
		var params protocol.DocumentSymbolParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		result, err := s.DocumentSymbol(ctx, &params)
		return reply(ctx, result, err)
	case "textDocument/definition":
		var params protocol.DefinitionParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		result, err := s.Definition(ctx, &params)
		return reply(ctx, result, err)
	default:
		return jsonrpc2.MethodNotFound(ctx, reply, req)
	}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.ParamInitialize) (*protocol.InitializeResult, error) {
	log.Info().Str("name", s.name).Str("version", s.version).Msg("initialize")
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.Full,
			},
			CompletionProvider:     protocol.CompletionOptions{},
			HoverProvider:          true,
			DocumentSymbolProvider: true,
			DefinitionProvider:     true,
		},
	}, nil
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := &document{item: params.TextDocument}
	doc.ast, doc.err = parser.Parse(ctx, doc.item.Text)
	if err := s.cache.put(doc); err != nil {
		log.Error().Err(err).Str("call", "DidOpen").Msg("failed to cache document")
		return err
	}
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "DidChange").Msg("failed to get document")
		return err
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Documents sync with full text, so the last change wins.
	updated := &document{item: doc.item}
	updated.item.Text = params.ContentChanges[len(params.ContentChanges)-1].Text
	updated.item.Version = params.TextDocument.Version
	updated.ast, updated.err = parser.Parse(ctx, updated.item.Text)
	if err := s.cache.put(updated); err != nil {
		return err
	}
	return s.publishDiagnostics(ctx, updated)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.cache.remove(params.TextDocument.URI)
	return s.clearDiagnostics(ctx, params.TextDocument.URI)
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "DidSave").Msg("failed to get document")
		return nil
	}
	// Saves can include the full text; re-parse when they do.
	if params.Text != nil {
		updated := &document{item: doc.item}
		updated.item.Text = *params.Text
		updated.ast, updated.err = parser.Parse(ctx, updated.item.Text)
		if err := s.cache.put(updated); err != nil {
			return err
		}
		doc = updated
	}
	return s.publishDiagnostics(ctx, doc)
}
