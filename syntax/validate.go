package syntax

import "github.com/Lefpe/compilador/ast"

// ConfigValidator validates an AST against a Config.
type ConfigValidator struct {
	config Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(config Config) *ConfigValidator {
	return &ConfigValidator{config: config}
}

// Validate checks the AST against the syntax configuration.
func (v *ConfigValidator) Validate(program *ast.Program) []ValidationError {
	var errors []ValidationError

	for node := range ast.Preorder(program) {
		errors = append(errors, v.checkNode(node)...)
	}

	return errors
}

func (v *ConfigValidator) checkNode(node ast.Node) []ValidationError {
	switch n := node.(type) {
	case *ast.Program:
		return v.checkStmts(n.Stmts)

	case *ast.Block:
		var errs []ValidationError
		if v.config.DisallowEmptyBlocks && len(n.Stmts) == 0 {
			errs = append(errs, ValidationError{
				Message:  "empty blocks are not allowed",
				Node:     node,
				Position: node.Pos(),
			})
		}
		return append(errs, v.checkStmts(n.Stmts)...)

	case *ast.Assign:
		if v.config.DisallowAssignment {
			return []ValidationError{{
				Message:  "assignment is not allowed",
				Node:     node,
				Position: node.Pos(),
			}}
		}

	case *ast.If:
		var errs []ValidationError
		if v.config.DisallowIf {
			errs = append(errs, ValidationError{
				Message:  "if statements are not allowed",
				Node:     node,
				Position: node.Pos(),
			})
		}
		if v.config.RequireBracedBranches {
			if _, ok := n.Consequence.(*ast.Block); !ok {
				errs = append(errs, ValidationError{
					Message:  "if branches must use braces",
					Node:     n.Consequence,
					Position: n.Consequence.Pos(),
				})
			}
			if n.Alternative != nil {
				if _, ok := n.Alternative.(*ast.Block); !ok {
					errs = append(errs, ValidationError{
						Message:  "else branches must use braces",
						Node:     n.Alternative,
						Position: n.Alternative.Pos(),
					})
				}
			}
		}
		if v.config.DisallowBareExpr {
			errs = append(errs, v.checkStmts([]ast.Node{n.Consequence})...)
			if n.Alternative != nil {
				errs = append(errs, v.checkStmts([]ast.Node{n.Alternative})...)
			}
		}
		return errs
	}

	return nil
}

// checkStmts flags bare expression statements in a statement list.
func (v *ConfigValidator) checkStmts(stmts []ast.Node) []ValidationError {
	if !v.config.DisallowBareExpr {
		return nil
	}
	var errs []ValidationError
	for _, stmt := range stmts {
		if expr, ok := stmt.(ast.Expr); ok {
			errs = append(errs, ValidationError{
				Message:  "bare expression statements are not allowed",
				Node:     expr,
				Position: expr.Pos(),
			})
		}
	}
	return errs
}
