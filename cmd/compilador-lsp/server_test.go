package main

import (
	"context"
	"testing"

	"github.com/Lefpe/compilador/parser"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/stretchr/testify/require"
)

// Helper function to set a document in the cache for testing
func setTestDocument(c *cache, uri protocol.DocumentURI, text string) error {
	doc := &document{
		item: protocol.TextDocumentItem{
			URI:     uri,
			Text:    text,
			Version: 1,
		},
	}
	if text != "" {
		doc.ast, doc.err = parser.Parse(context.Background(), text)
	}
	return c.put(doc)
}

func TestCache_ParseValidSource(t *testing.T) {
	c := newCache()

	validCode := `x = 42;
y = (x + 1);
if (y > 10) {
  z = 1;
}`

	uri := protocol.DocumentURI("file:///test.src")
	err := setTestDocument(c, uri, validCode)
	require.NoError(t, err)

	doc, err := c.get(uri)
	require.NoError(t, err)
	require.NoError(t, doc.err)
	require.NotNil(t, doc.ast)
	require.Len(t, doc.ast.Stmts, 3)
}

func TestCache_ParseInvalidSource(t *testing.T) {
	c := newCache()

	invalidCode := `x = 42;
y = (x +`

	uri := protocol.DocumentURI("file:///test_invalid.src")
	err := setTestDocument(c, uri, invalidCode)
	require.NoError(t, err)

	doc, err := c.get(uri)
	require.NoError(t, err)
	require.Error(t, doc.err)
	require.Nil(t, doc.ast)
}

func TestCache_MissingDocument(t *testing.T) {
	c := newCache()
	_, err := c.get("file:///nope.src")
	require.Error(t, err)
	require.Contains(t, err.Error(), "document not found")
}

func TestCache_PutWithoutURI(t *testing.T) {
	c := newCache()
	err := c.put(&document{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "document has no URI")
}

func TestCache_Remove(t *testing.T) {
	c := newCache()
	uri := protocol.DocumentURI("file:///gone.src")
	require.NoError(t, setTestDocument(c, uri, "x = 1;"))

	c.remove(uri)

	_, err := c.get(uri)
	require.Error(t, err)
}

func TestCompletionProvider_ExtractVariables(t *testing.T) {
	code := `x = 42;
y = (x + 1);
if (y > x) {
  z = 2;
} else {
  x = 0;
}`

	prog, err := parser.Parse(context.Background(), code)
	require.NoError(t, err)

	variables := extractVariables(prog)
	require.Equal(t, []string{"x", "y", "z"}, variables)
}

func TestCompletionProvider_KeywordsAndOperators(t *testing.T) {
	server := newServer("test-server", "test")
	uri := protocol.DocumentURI("file:///test.src")
	require.NoError(t, setTestDocument(server.cache, uri, "count = 1;"))

	params := &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 0},
		},
	}
	result, err := server.Completion(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, result)

	labels := map[string]protocol.CompletionItem{}
	for _, item := range result.Items {
		labels[item.Label] = item
	}

	for _, keyword := range []string{"if", "else"} {
		item, ok := labels[keyword]
		require.True(t, ok, "expected keyword %q in completion", keyword)
		require.EqualValues(t, 14, item.Kind)
	}
	for _, op := range []string{"+", "==", "<="} {
		item, ok := labels[op]
		require.True(t, ok, "expected operator %q in completion", op)
		require.EqualValues(t, 24, item.Kind)
		require.NotEmpty(t, item.Detail)
	}
	item, ok := labels["count"]
	require.True(t, ok, "expected variable in completion")
	require.EqualValues(t, 6, item.Kind)
}

func TestCompletionProvider_MissingDocument(t *testing.T) {
	server := newServer("test-server", "test")

	params := &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nope.src"},
		},
	}
	result, err := server.Completion(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result.Items)
}

func TestHoverProvider_NodeAtPosition(t *testing.T) {
	code := `x = 42;
y = (x + 1);`

	prog, err := parser.Parse(context.Background(), code)
	require.NoError(t, err)

	node := nodeAtPosition(prog, protocol.Position{Line: 0, Character: 0})
	require.NotNil(t, node)
	require.Equal(t, "x", node.String())

	node = nodeAtPosition(prog, protocol.Position{Line: 1, Character: 5})
	require.NotNil(t, node)
	require.Equal(t, "x", node.String())

	node = nodeAtPosition(prog, protocol.Position{Line: 0, Character: 40})
	require.Nil(t, node)
}

func TestHoverProvider_FullHover(t *testing.T) {
	server := newServer("test-server", "1.0.0")
	uri := protocol.DocumentURI("file:///test.src")
	require.NoError(t, setTestDocument(server.cache, uri, "total = (10 * 2);"))

	hoverAt := func(line, character uint32) *protocol.Hover {
		result, err := server.Hover(context.Background(), &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: line, Character: character},
			},
		})
		require.NoError(t, err)
		return result
	}

	// Over the assigned name.
	result := hoverAt(0, 0)
	require.NotNil(t, result)
	require.Equal(t, "variable total", result.Contents.Value)

	// Over the integer literal.
	result = hoverAt(0, 9)
	require.NotNil(t, result)
	require.Equal(t, "integer literal 10", result.Contents.Value)

	// Over the operator, inside the infix expression.
	result = hoverAt(0, 12)
	require.NotNil(t, result)
	require.Equal(t, "(10 * 2)", result.Contents.Value)

	// Over the equals sign, inside the assignment.
	result = hoverAt(0, 6)
	require.NotNil(t, result)
	require.Equal(t, "total = (10 * 2);", result.Contents.Value)
}

func TestHoverProvider_MissingDocument(t *testing.T) {
	server := newServer("test-server", "test")
	result, err := server.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nope.src"},
		},
	})
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestDocumentSymbols(t *testing.T) {
	server := newServer("test-server", "test")
	uri := protocol.DocumentURI("file:///test.src")
	code := `x = 1;
if (x) {
  nested = 2;
}`
	require.NoError(t, setTestDocument(server.cache, uri, code))

	result, err := server.DocumentSymbol(context.Background(), &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, result, 2)

	names := []string{}
	for _, symbolInterface := range result {
		symbol, ok := symbolInterface.(protocol.DocumentSymbol)
		require.True(t, ok)
		names = append(names, symbol.Name)
	}
	require.Equal(t, []string{"x", "nested"}, names)

	first, ok := result[0].(protocol.DocumentSymbol)
	require.True(t, ok)
	require.EqualValues(t, 13, first.Kind)
	require.EqualValues(t, 0, first.SelectionRange.Start.Line)
	require.EqualValues(t, 0, first.SelectionRange.Start.Character)
	require.EqualValues(t, 1, first.SelectionRange.End.Character)
}

func TestDefinition(t *testing.T) {
	server := newServer("test-server", "test")
	uri := protocol.DocumentURI("file:///test.src")
	code := `limit = 10;
count = (limit - 1);`
	require.NoError(t, setTestDocument(server.cache, uri, code))

	// The "limit" usage on line 1 starts at character 9.
	result, err := server.Definition(context.Background(), &protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 1, Character: 9},
		},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, uri, result[0].URI)
	require.EqualValues(t, 0, result[0].Range.Start.Line)
	require.EqualValues(t, 0, result[0].Range.Start.Character)
	require.EqualValues(t, 5, result[0].Range.End.Character)
}

func TestDefinition_NotAnIdentifier(t *testing.T) {
	server := newServer("test-server", "test")
	uri := protocol.DocumentURI("file:///test.src")
	require.NoError(t, setTestDocument(server.cache, uri, "x = 42;"))

	// Position of the integer literal.
	result, err := server.Definition(context.Background(), &protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 4},
		},
	})
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestDiagnostics_WithParseError(t *testing.T) {
	invalidCode := `x = 42;
y = (x +`

	_, err := parser.Parse(context.Background(), invalidCode)
	require.Error(t, err)

	parseErr, ok := err.(parser.ParserError)
	require.True(t, ok, "expected parser.ParserError, got %T", err)
	require.NotEmpty(t, parseErr.Message())

	diagnostic := errorDiagnostic(err)
	require.EqualValues(t, 1, diagnostic.Severity)
	require.Equal(t, "compilador", diagnostic.Source)
	require.Contains(t, diagnostic.Message, "unexpected end of file")
	require.EqualValues(t, 1, diagnostic.Range.Start.Line)
	require.Greater(t, diagnostic.Range.End.Character, diagnostic.Range.Start.Character)
}

func TestServer_DidChange_FullSync(t *testing.T) {
	server := newServer("test-server", "test")
	uri := protocol.DocumentURI("file:///test.src")
	ctx := context.Background()

	require.NoError(t, setTestDocument(server.cache, uri, "x = 1;"))

	err := server.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{Text: "x = 1;\ny = 2;"},
		},
	})
	require.NoError(t, err)

	doc, err := server.cache.get(uri)
	require.NoError(t, err)
	require.NoError(t, doc.err)
	require.Len(t, doc.ast.Stmts, 2)
	require.EqualValues(t, 2, doc.item.Version)
}

func TestServer_DidSave_ClearsDiagnosticsOnFix(t *testing.T) {
	server := newServer("test-server", "test")
	uri := protocol.DocumentURI("file:///test.src")
	ctx := context.Background()

	invalidCode := `x = 42;
y = (x +`
	require.NoError(t, setTestDocument(server.cache, uri, invalidCode))

	doc, err := server.cache.get(uri)
	require.NoError(t, err)
	require.Error(t, doc.err)

	fixedCode := `x = 42;
y = (x + 1);`
	err = server.DidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Text:         &fixedCode,
	})
	require.NoError(t, err)

	doc, err = server.cache.get(uri)
	require.NoError(t, err)
	require.NoError(t, doc.err)
	require.NotNil(t, doc.ast)
	require.Len(t, doc.ast.Stmts, 2)
}

func TestServer_DidOpenAndClose(t *testing.T) {
	server := newServer("test-server", "test")
	uri := protocol.DocumentURI("file:///test.src")
	ctx := context.Background()

	err := server.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "x = 1;", Version: 1},
	})
	require.NoError(t, err)

	doc, err := server.cache.get(uri)
	require.NoError(t, err)
	require.NoError(t, doc.err)

	err = server.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	_, err = server.cache.get(uri)
	require.Error(t, err)
}
