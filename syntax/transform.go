package syntax

import "github.com/Lefpe/compilador/ast"

// Transformer modifies an AST before code generation.
// Transformers receive ownership of the AST and return a (possibly new) AST.
type Transformer interface {
	// Transform processes the AST and returns the result.
	// The returned AST may be the same instance (modified in place)
	// or a completely new AST.
	Transform(program *ast.Program) (*ast.Program, error)
}

// TransformerFunc is an adapter to use a function as a Transformer.
type TransformerFunc func(*ast.Program) (*ast.Program, error)

// Transform implements the Transformer interface.
func (f TransformerFunc) Transform(p *ast.Program) (*ast.Program, error) {
	return f(p)
}

// Canonicalize wraps unbraced if and else branches in blocks, in place.
// The generator emits braces around single-statement branches either
// way; canonicalizing makes tools that read the AST see the same shape
// the generated source has.
var Canonicalize TransformerFunc = func(program *ast.Program) (*ast.Program, error) {
	for node := range ast.Preorder(program) {
		ifStmt, ok := node.(*ast.If)
		if !ok {
			continue
		}
		ifStmt.Consequence = braced(ifStmt.Consequence)
		if ifStmt.Alternative != nil {
			ifStmt.Alternative = braced(ifStmt.Alternative)
		}
	}
	return program, nil
}

func braced(branch ast.Node) ast.Node {
	if _, ok := branch.(*ast.Block); ok {
		return branch
	}
	return &ast.Block{
		Lbrace: branch.Pos(),
		Stmts:  []ast.Node{branch},
		Rbrace: branch.End(),
	}
}
