package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	// Walk children based on node type
	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}

	// Statements
	case *Block:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}
	case *Assign:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *If:
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Consequence != nil {
			Walk(v, n.Consequence)
		}
		if n.Alternative != nil {
			Walk(v, n.Alternative)
		}

	// Expressions
	case *Infix:
		if n.X != nil {
			Walk(v, n.X)
		}
		if n.Y != nil {
			Walk(v, n.Y)
		}

		// *Ident and *Int have no children
	}
}

// Inspect traverses an AST in depth-first order. For each node, it calls
// f(node); if f returns false, children of the node are not visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all nodes of the tree rooted at root,
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			// Visit children based on node type
			switch node := n.(type) {
			case *Program:
				for _, stmt := range node.Stmts {
					if !visit(stmt) {
						return false
					}
				}
			case *Block:
				for _, stmt := range node.Stmts {
					if !visit(stmt) {
						return false
					}
				}
			case *Assign:
				if node.Name != nil && !visit(node.Name) {
					return false
				}
				if node.Value != nil && !visit(node.Value) {
					return false
				}
			case *If:
				if node.Cond != nil && !visit(node.Cond) {
					return false
				}
				if node.Consequence != nil && !visit(node.Consequence) {
					return false
				}
				if node.Alternative != nil && !visit(node.Alternative) {
					return false
				}
			case *Infix:
				if node.X != nil && !visit(node.X) {
					return false
				}
				if node.Y != nil && !visit(node.Y) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}
