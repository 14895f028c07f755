package main

import (
	"fmt"
	"reflect"

	"github.com/Lefpe/compilador"
	"github.com/Lefpe/compilador/ast"
	"github.com/Lefpe/compilador/syntax"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Display the AST for source code",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
		source, _, err := getSourceCode(cmd, args)
		if err != nil {
			fatal(err)
		}
		program, err := compilador.Parse(cmd.Context(), source, compileOptions(args)...)
		if err != nil {
			fatal(friendlyMessage(err))
		}
		if canonical, _ := cmd.Flags().GetBool("canonical"); canonical {
			if program, err = syntax.Canonicalize.Transform(program); err != nil {
				fatal(err)
			}
		}
		format, _ := cmd.Flags().GetString("output")
		switch format {
		case "", "json":
			data, err := getOutputJSON(nodeToJSON(program))
			if err != nil {
				fatal(err)
			}
			fmt.Println(string(data))
		case "text":
			fmt.Println(program.String())
		default:
			fatal(fmt.Sprintf("unknown output format: %s", format))
		}
	},
}

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []*ASTNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *ASTNode {
	if node == nil {
		return nil
	}
	typeName := reflect.TypeOf(node).Elem().Name()
	result := &ASTNode{Type: typeName}

	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Stmts {
			if child := nodeToJSON(stmt); child != nil {
				result.Children = append(result.Children, child)
			}
		}
	case *ast.Block:
		for _, stmt := range n.Stmts {
			if child := nodeToJSON(stmt); child != nil {
				result.Children = append(result.Children, child)
			}
		}
	case *ast.Assign:
		result.Value = n.Name.Name
		result.Children = append(result.Children, nodeToJSON(n.Value))
	case *ast.If:
		result.Children = append(result.Children, nodeToJSON(n.Cond))
		result.Children = append(result.Children, nodeToJSON(n.Consequence))
		if n.Alternative != nil {
			result.Children = append(result.Children, nodeToJSON(n.Alternative))
		}
	case *ast.Infix:
		result.Value = n.Op
		result.Children = append(result.Children, nodeToJSON(n.X))
		result.Children = append(result.Children, nodeToJSON(n.Y))
	case *ast.Ident:
		result.Value = n.Name
	case *ast.Int:
		result.Value = n.Value
	}
	return result
}

func init() {
	astCmd.Flags().StringP("code", "c", "", "Code to parse")
	astCmd.Flags().Bool("stdin", false, "Read code from stdin")
	astCmd.Flags().StringP("output", "o", "", "Output format (json, text)")
	astCmd.Flags().Bool("canonical", false, "Wrap unbraced branches in blocks")
	rootCmd.AddCommand(astCmd)
}
