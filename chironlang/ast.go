package chironlang

import (
	"strconv"
	"strings"
)

// Node is implemented by the pointer types below and by nothing else.
type Node interface {
	Pos() Pos
	String() string
	node()
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Statements []Statement
	Position   Pos
}

type Assignment struct {
	Variable string
	Expr     Expression
	Position Pos
}

// IfStatement.Else is nil when there is no else branch.
type IfStatement struct {
	Condition Expression
	Then      []Statement
	Else      []Statement
	Position  Pos
}

type RepeatStatement struct {
	Count    Expression
	Body     []Statement
	Position Pos
}

type PenStatement struct {
	Kind     PenKind
	Position Pos
}

// MoveStatement.Args holds one expression, or two for MoveGo.
type MoveStatement struct {
	Kind     MoveKind
	Args     []Expression
	Position Pos
}

type InputStatement struct {
	Variables []string
	Position  Pos
}

type BinaryOp struct {
	Left     Expression
	Operator string
	Right    Expression
	Position Pos
}

type UnaryOp struct {
	Operator string
	Operand  Expression
	Position Pos
}

type Number struct {
	Value    int64
	Position Pos
}

// Var.Name includes the leading colon.
type Var struct {
	Name     string
	Position Pos
}

type PenKind uint8

const (
	PenUp PenKind = iota + 1
	PenDown
)

var penKeywords = map[string]PenKind{
	"penup":   PenUp,
	"pendown": PenDown,
}

func (k PenKind) String() string {
	switch k {
	case PenUp:
		return "penup"
	case PenDown:
		return "pendown"
	}
	return "PenKind(" + strconv.Itoa(int(k)) + ")"
}

type MoveKind uint8

const (
	MoveForward MoveKind = iota + 1
	MoveBackward
	MoveLeft
	MoveRight
	MoveGo
)

var moveKeywords = map[string]MoveKind{
	"forward":  MoveForward,
	"backward": MoveBackward,
	"left":     MoveLeft,
	"right":    MoveRight,
	"go":       MoveGo,
}

func (k MoveKind) String() string {
	for text, kind := range moveKeywords {
		if kind == k {
			return text
		}
	}
	return "MoveKind(" + strconv.Itoa(int(k)) + ")"
}

var (
	_ Node       = new(Program)
	_ Statement  = new(Assignment)
	_ Statement  = new(IfStatement)
	_ Statement  = new(RepeatStatement)
	_ Statement  = new(PenStatement)
	_ Statement  = new(MoveStatement)
	_ Statement  = new(InputStatement)
	_ Expression = new(BinaryOp)
	_ Expression = new(UnaryOp)
	_ Expression = new(Number)
	_ Expression = new(Var)
)

func (p *Program) Pos() Pos         { return p.Position }
func (a *Assignment) Pos() Pos      { return a.Position }
func (i *IfStatement) Pos() Pos     { return i.Position }
func (r *RepeatStatement) Pos() Pos { return r.Position }
func (p *PenStatement) Pos() Pos    { return p.Position }
func (m *MoveStatement) Pos() Pos   { return m.Position }
func (i *InputStatement) Pos() Pos  { return i.Position }
func (b *BinaryOp) Pos() Pos        { return b.Position }
func (u *UnaryOp) Pos() Pos         { return u.Position }
func (n *Number) Pos() Pos          { return n.Position }
func (v *Var) Pos() Pos             { return v.Position }

func (*Program) node()         {}
func (*Assignment) node()      {}
func (*IfStatement) node()     {}
func (*RepeatStatement) node() {}
func (*PenStatement) node()    {}
func (*MoveStatement) node()   {}
func (*InputStatement) node()  {}
func (*BinaryOp) node()        {}
func (*UnaryOp) node()         {}
func (*Number) node()          {}
func (*Var) node()             {}

func (*Assignment) statementNode()      {}
func (*IfStatement) statementNode()     {}
func (*RepeatStatement) statementNode() {}
func (*PenStatement) statementNode()    {}
func (*MoveStatement) statementNode()   {}
func (*InputStatement) statementNode()  {}

func (*BinaryOp) expressionNode() {}
func (*UnaryOp) expressionNode()  {}
func (*Number) expressionNode()   {}
func (*Var) expressionNode()      {}

func (p *Program) String() string {
	return "Program(" + joinNodes(p.Statements) + ")"
}

func (a *Assignment) String() string {
	return "Assignment(" + a.Variable + ", " + a.Expr.String() + ")"
}

func (i *IfStatement) String() string {
	var sb strings.Builder
	sb.WriteString("IfStatement(")
	sb.WriteString(i.Condition.String())
	sb.WriteString(", [")
	sb.WriteString(joinNodes(i.Then))
	sb.WriteString("]")
	if i.Else != nil {
		sb.WriteString(", else [")
		sb.WriteString(joinNodes(i.Else))
		sb.WriteString("]")
	}
	sb.WriteString(")")
	return sb.String()
}

func (r *RepeatStatement) String() string {
	return "RepeatStatement(" + r.Count.String() + ", [" + joinNodes(r.Body) + "])"
}

func (p *PenStatement) String() string {
	return "PenStatement(" + p.Kind.String() + ")"
}

func (m *MoveStatement) String() string {
	return "MoveStatement(" + m.Kind.String() + ", [" + joinNodes(m.Args) + "])"
}

func (i *InputStatement) String() string {
	return "InputStatement(" + strings.Join(i.Variables, ", ") + ")"
}

func (b *BinaryOp) String() string {
	return "BinaryOp(" + b.Operator + ", " + b.Left.String() + ", " + b.Right.String() + ")"
}

func (u *UnaryOp) String() string {
	return "UnaryOp(" + u.Operator + ", " + u.Operand.String() + ")"
}

func (n *Number) String() string {
	return "Number(" + strconv.FormatInt(n.Value, 10) + ")"
}

func (v *Var) String() string {
	return "Var(" + v.Name + ")"
}

func joinNodes[T Node](nodes []T) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		parts = append(parts, node.String())
	}
	return strings.Join(parts, ", ")
}
