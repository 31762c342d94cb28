package chironlang

// Inspect traverses the tree rooted at node in depth-first order, calling fn for each node.
// If fn returns false, the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		inspectAll(n.Statements, fn)
	case *Assignment:
		Inspect(n.Expr, fn)
	case *IfStatement:
		Inspect(n.Condition, fn)
		inspectAll(n.Then, fn)
		inspectAll(n.Else, fn)
	case *RepeatStatement:
		Inspect(n.Count, fn)
		inspectAll(n.Body, fn)
	case *MoveStatement:
		inspectAll(n.Args, fn)
	case *BinaryOp:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *UnaryOp:
		Inspect(n.Operand, fn)
	case *PenStatement, *InputStatement, *Number, *Var:
		// leaves
	}
}

func inspectAll[T Node](nodes []T, fn func(Node) bool) {
	for _, node := range nodes {
		Inspect(node, fn)
	}
}
