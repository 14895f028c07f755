package main

import (
	"fmt"
	"sync"

	"github.com/Lefpe/compilador/ast"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
)

// document is one open text document together with its most recent
// parse. When the parse failed, ast is nil and err holds the problem.
type document struct {
	item protocol.TextDocumentItem
	ast  *ast.Program
	err  error
}

// cache holds the open documents, keyed by URI. All methods are safe
// for concurrent use.
type cache struct {
	mu   sync.Mutex
	docs map[protocol.DocumentURI]*document
}

func newCache() *cache {
	return &cache{docs: map[protocol.DocumentURI]*document{}}
}

func (c *cache) put(doc *document) error {
	if doc.item.URI == "" {
		return fmt.Errorf("document has no URI")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[doc.item.URI] = doc
	return nil
}

func (c *cache) get(uri protocol.DocumentURI) (*document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", uri)
	}
	return doc, nil
}

func (c *cache) remove(uri protocol.DocumentURI) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, uri)
}
