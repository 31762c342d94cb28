package chironlang

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes node to w as an indented tree, one node per line, each with its position.
func Fprint(w io.Writer, node Node) error {
	p := &printer{
		output: w,
	}
	p.node(node)
	return p.err
}

type printer struct {
	output io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.output, strings.Repeat("  ", p.indent)+format+"\n", args...)
}

func (p *printer) label(name string, fn func()) {
	p.printf("%s:", name)
	p.indent++
	fn()
	p.indent--
}

func (p *printer) statements(stmts []Statement) {
	for _, stmt := range stmts {
		p.node(stmt)
	}
}

func (p *printer) node(node Node) {
	switch n := node.(type) {

	case *Program:
		p.printf("Program @%s", n.Position)
		p.indent++
		p.statements(n.Statements)
		p.indent--

	case *Assignment:
		p.printf("Assignment %s @%s", n.Variable, n.Position)
		p.indent++
		p.node(n.Expr)
		p.indent--

	case *IfStatement:
		p.printf("IfStatement @%s", n.Position)
		p.indent++
		p.label("condition", func() {
			p.node(n.Condition)
		})
		p.label("then", func() {
			p.statements(n.Then)
		})
		if n.Else != nil {
			p.label("else", func() {
				p.statements(n.Else)
			})
		}
		p.indent--

	case *RepeatStatement:
		p.printf("RepeatStatement @%s", n.Position)
		p.indent++
		p.label("count", func() {
			p.node(n.Count)
		})
		p.label("body", func() {
			p.statements(n.Body)
		})
		p.indent--

	case *PenStatement:
		p.printf("PenStatement %s @%s", n.Kind, n.Position)

	case *MoveStatement:
		p.printf("MoveStatement %s @%s", n.Kind, n.Position)
		p.indent++
		for _, arg := range n.Args {
			p.node(arg)
		}
		p.indent--

	case *InputStatement:
		p.printf("InputStatement %s @%s", strings.Join(n.Variables, " "), n.Position)

	case *BinaryOp:
		p.printf("BinaryOp %s @%s", n.Operator, n.Position)
		p.indent++
		p.node(n.Left)
		p.node(n.Right)
		p.indent--

	case *UnaryOp:
		p.printf("UnaryOp %s @%s", n.Operator, n.Position)
		p.indent++
		p.node(n.Operand)
		p.indent--

	case *Number:
		p.printf("Number %d @%s", n.Value, n.Position)

	case *Var:
		p.printf("Var %s @%s", n.Name, n.Position)

	default:
		p.printf("%T", node)
	}
}
