package chironlang

import (
	"errors"
	"slices"
	"strconv"
)

type Parser struct {
	stream tokenStream
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		stream: tokenStream{
			tokens: tokens,
		},
	}
}

// Parse builds the program from a fully scanned token sequence.
// The first syntax error aborts parsing and no partial tree is returned.
func Parse(tokens []Token) (*Program, error) {
	return NewParser(tokens).ParseProgram()
}

// ParseSource tokenizes and parses src. Syntax errors are wrapped in a PosError quoting the offending line.
func ParseSource(src *Source) (*Program, error) {
	program, err := Parse(Tokenize(src.Content))
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, WithPos(err, syntaxErr.Pos, src)
		}
		return nil, err
	}
	return program, nil
}

// Program := StatementList
func (p *Parser) ParseProgram() (*Program, error) {
	statements, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.stream.Current(); ok {
		// a closing bracket without a block to close
		return nil, p.unrecognized(ErrUnrecognizedStatement, tok)
	}
	program := &Program{
		Statements: statements,
	}
	if len(statements) > 0 {
		program.Position = statements[0].Pos()
	}
	return program, nil
}

func (p *Parser) consume(kind TokenKind, text string) (Token, error) {
	tok, ok := p.stream.Current()
	if !ok {
		return tok, &SyntaxError{
			Err:          ErrUnexpectedEndOfInput,
			Pos:          p.stream.endPos(),
			ExpectedKind: kind,
			ExpectedText: text,
		}
	}
	if text != "" && !tok.is(kind, text) {
		return tok, &SyntaxError{
			Err:          ErrUnexpectedTokenText,
			Pos:          tok.Pos,
			ExpectedKind: kind,
			ExpectedText: text,
			Got:          &tok,
		}
	}
	if tok.Kind != kind {
		return tok, &SyntaxError{
			Err:          ErrUnexpectedTokenKind,
			Pos:          tok.Pos,
			ExpectedKind: kind,
			Got:          &tok,
		}
	}
	p.stream.Consume()
	return tok, nil
}

func (p *Parser) unrecognized(err error, tok Token) error {
	return &SyntaxError{
		Err: err,
		Pos: tok.Pos,
		Got: &tok,
	}
}

func (p *Parser) endOfInput(context string) error {
	return &SyntaxError{
		Err:     ErrUnexpectedEndOfInput,
		Pos:     p.stream.endPos(),
		Context: context,
	}
}

// StatementList := { Statement [';'] }
func (p *Parser) parseStatementList() (ret []Statement, err error) {
	for !p.stream.Done() {
		if p.stream.currentIs(TokenSymbol, "]") {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		ret = append(ret, stmt)
		if p.stream.currentIs(TokenSymbol, ";") {
			p.stream.Consume()
		}
	}
	return ret, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	tok, ok := p.stream.Current()
	if !ok {
		return nil, p.endOfInput("while parsing a statement")
	}

	switch tok.Kind {
	case TokenKeyword:
		switch tok.Text {
		case "if":
			return p.parseIf()
		case "repeat":
			return p.parseRepeat()
		case "penup", "pendown":
			return p.parsePen()
		case "forward", "backward", "left", "right", "go":
			return p.parseMove()
		case "input":
			return p.parseInput()
		}

	case TokenIdent:
		if next, ok := p.stream.At(1); ok && next.is(TokenSymbol, "=") {
			return p.parseAssignment()
		}
	}

	return nil, p.unrecognized(ErrUnrecognizedStatement, tok)
}

// Assignment := IDENT '=' Expr
func (p *Parser) parseAssignment() (*Assignment, error) {
	varTok, err := p.consume(TokenIdent, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSymbol, "="); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Assignment{
		Variable: varTok.Text,
		Expr:     expr,
		Position: varTok.Pos,
	}, nil
}

// block := '[' StatementList ']'
func (p *Parser) parseBlock() ([]Statement, error) {
	if _, err := p.consume(TokenSymbol, "["); err != nil {
		return nil, err
	}
	statements, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSymbol, "]"); err != nil {
		return nil, err
	}
	if statements == nil {
		statements = []Statement{}
	}
	return statements, nil
}

// IfStmt := 'if' Expr block [ 'else' block ]
func (p *Parser) parseIf() (*IfStatement, error) {
	ifTok, err := p.consume(TokenKeyword, "if")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	ret := &IfStatement{
		Condition: cond,
		Then:      then,
		Position:  ifTok.Pos,
	}
	if p.stream.currentIs(TokenKeyword, "else") {
		p.stream.Consume()
		ret.Else, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// RepeatStmt := 'repeat' Expr block
func (p *Parser) parseRepeat() (*RepeatStatement, error) {
	repeatTok, err := p.consume(TokenKeyword, "repeat")
	if err != nil {
		return nil, err
	}
	count, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &RepeatStatement{
		Count:    count,
		Body:     body,
		Position: repeatTok.Pos,
	}, nil
}

// PenStmt := 'penup' | 'pendown'
func (p *Parser) parsePen() (*PenStatement, error) {
	penTok, err := p.consume(TokenKeyword, "")
	if err != nil {
		return nil, err
	}
	kind, ok := penKeywords[penTok.Text]
	if !ok {
		return nil, p.unrecognized(ErrUnrecognizedStatement, penTok)
	}
	return &PenStatement{
		Kind:     kind,
		Position: penTok.Pos,
	}, nil
}

// MoveStmt := ('forward'|'backward'|'left'|'right') Expr | 'go' '(' Expr ',' Expr ')'
func (p *Parser) parseMove() (*MoveStatement, error) {
	moveTok, err := p.consume(TokenKeyword, "")
	if err != nil {
		return nil, err
	}
	kind, ok := moveKeywords[moveTok.Text]
	if !ok {
		return nil, p.unrecognized(ErrUnrecognizedStatement, moveTok)
	}
	ret := &MoveStatement{
		Kind:     kind,
		Position: moveTok.Pos,
	}

	if kind != MoveGo {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ret.Args = []Expression{expr}
		return ret, nil
	}

	if _, err := p.consume(TokenSymbol, "("); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSymbol, ","); err != nil {
		return nil, err
	}
	y, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSymbol, ")"); err != nil {
		return nil, err
	}
	ret.Args = []Expression{x, y}
	return ret, nil
}

// InputStmt := 'input' '(' IDENT {',' IDENT} ')'
func (p *Parser) parseInput() (*InputStatement, error) {
	inputTok, err := p.consume(TokenKeyword, "input")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSymbol, "("); err != nil {
		return nil, err
	}
	ret := &InputStatement{
		Position: inputTok.Pos,
	}
	for {
		varTok, err := p.consume(TokenIdent, "")
		if err != nil {
			return nil, err
		}
		ret.Variables = append(ret.Variables, varTok.Text)
		if !p.stream.currentIs(TokenSymbol, ",") {
			break
		}
		p.stream.Consume()
	}
	if _, err := p.consume(TokenSymbol, ")"); err != nil {
		return nil, err
	}
	return ret, nil
}

// Expr := Term { ('+'|'-') Term }
func (p *Parser) parseExpr() (Expression, error) {
	return p.parseBinary(p.parseTerm, "+", "-")
}

// Term := Factor { ('*'|'/') Factor }
func (p *Parser) parseTerm() (Expression, error) {
	return p.parseBinary(p.parseFactor, "*", "/")
}

// parseBinary folds operands to the left.
func (p *Parser) parseBinary(operand func() (Expression, error), ops ...string) (Expression, error) {
	lhs, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.stream.Current()
		if !ok || tok.Kind != TokenSymbol || !slices.Contains(ops, tok.Text) {
			return lhs, nil
		}
		p.stream.Consume()
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		lhs = &BinaryOp{
			Left:     lhs,
			Operator: tok.Text,
			Right:    rhs,
			Position: tok.Pos,
		}
	}
}

// Factor := NUMBER | IDENT | '(' Expr ')' | ('-'|'!') Factor
func (p *Parser) parseFactor() (Expression, error) {
	tok, ok := p.stream.Current()
	if !ok {
		return nil, p.endOfInput("in expression")
	}

	switch tok.Kind {
	case TokenNumber:
		p.stream.Consume()
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.unrecognized(ErrInvalidNumber, tok)
		}
		return &Number{
			Value:    value,
			Position: tok.Pos,
		}, nil

	case TokenIdent:
		p.stream.Consume()
		return &Var{
			Name:     tok.Text,
			Position: tok.Pos,
		}, nil

	case TokenSymbol:
		switch tok.Text {
		case "(":
			p.stream.Consume()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(TokenSymbol, ")"); err != nil {
				return nil, err
			}
			return expr, nil

		case "-", "!":
			p.stream.Consume()
			operand, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			return &UnaryOp{
				Operator: tok.Text,
				Operand:  operand,
				Position: tok.Pos,
			}, nil
		}
	}

	return nil, p.unrecognized(ErrUnrecognizedExpression, tok)
}
