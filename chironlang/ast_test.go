package chironlang

import (
	"errors"
	"strings"
	"testing"
)

func TestFprint(t *testing.T) {
	program := parseString(t, "if :x [ go(1, 2) ] else [ penup ]\ninput(:a, :b)")
	var sb strings.Builder
	if err := Fprint(&sb, program); err != nil {
		t.Fatal(err)
	}
	expected := `Program @1:1
  IfStatement @1:1
    condition:
      Var :x @1:4
    then:
      MoveStatement go @1:9
        Number 1 @1:12
        Number 2 @1:15
    else:
      PenStatement penup @1:27
  InputStatement :a :b @2:1
`
	if sb.String() != expected {
		t.Fatalf("got\n%s", sb.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestFprintWriteError(t *testing.T) {
	program := parseString(t, "penup")
	if err := Fprint(failWriter{}, program); err == nil {
		t.Fatal("should error")
	}
}

func TestInspect(t *testing.T) {
	program := parseString(t, "repeat 2 [ :x = -(:y + 1) * 3 ] if :x [ ] else [ left :x ]")

	var names []string
	Inspect(program, func(node Node) bool {
		if v, ok := node.(*Var); ok {
			names = append(names, v.Name)
		}
		return true
	})
	if str := strings.Join(names, " "); str != ":y :x :x" {
		t.Fatalf("got %s", str)
	}

	// skip repeat bodies
	count := 0
	Inspect(program, func(node Node) bool {
		count++
		_, isRepeat := node.(*RepeatStatement)
		return !isRepeat
	})
	// Program, RepeatStatement, IfStatement, Var, MoveStatement, Var
	if count != 6 {
		t.Fatalf("got %d", count)
	}
}

func TestNodeKinds(t *testing.T) {
	if str := PenDown.String(); str != "pendown" {
		t.Fatalf("got %s", str)
	}
	if str := MoveBackward.String(); str != "backward" {
		t.Fatalf("got %s", str)
	}
	if str := MoveKind(42).String(); str != "MoveKind(42)" {
		t.Fatalf("got %s", str)
	}
	if str := TokenKind(42).String(); str != "TokenKind(42)" {
		t.Fatalf("got %s", str)
	}
}

func TestPosErrorWithoutSource(t *testing.T) {
	err := WithPos(ErrInvalidNumber, Pos{1, 1}, nil)
	if err.Error() != ErrInvalidNumber.Error() {
		t.Fatalf("got %v", err)
	}
	if WithPos(nil, Pos{}, nil) != nil {
		t.Fatal()
	}
	if again := WithPos(err, Pos{2, 2}, nil); again != err {
		t.Fatalf("got %v", again)
	}
}
