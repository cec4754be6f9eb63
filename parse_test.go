package tachyon

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var nodeOpt = cmp.AllowUnexported(Node{})

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *Node
	}{
		{
			input: "1",
			want:  Number(1),
		},
		{
			input: "-2.5",
			want:  Number(-2.5),
		},
		{
			input: "(+ 1 2)",
			want:  Call("+", Number(1), Number(2)),
		},
		{
			input: "(pi)",
			want:  Call("pi"),
		},
		{
			input: "(+ (* 23 11) (* 2 (- 3 4)))",
			want: Call("+",
				Call("*", Number(23), Number(11)),
				Call("*", Number(2), Call("-", Number(3), Number(4)))),
		},
		{
			input: "(+ (sqr 7) 1 (* 5.64 2))",
			want: Call("+",
				Call("sqr", Number(7)),
				Number(1),
				Call("*", Number(5.64), Number(2))),
		},
		{
			input: "  (-  -1 2.5)  ",
			want:  Call("-", Number(-1), Number(2.5)),
		},
		{
			input: "(foo 1 2)",
			want:  Call("foo", Number(1), Number(2)),
		},
	}
	for _, test := range tests {
		got, err := ParseString(test.input)
		if err != nil {
			t.Errorf("parse %q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, nodeOpt); diff != "" {
			t.Errorf("parse %q mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestParseZeroArgs(t *testing.T) {
	node, err := ParseString("(pi)")
	if err != nil {
		t.Fatal(err)
	}
	if node.Type() != NodeCall || node.Op() != "pi" {
		t.Fatalf("want call of pi but got %v", node)
	}
	if len(node.Args()) != 0 {
		t.Errorf("want no arguments but got %v", node.Args())
	}
}

func TestParseWhitespace(t *testing.T) {
	want := Call("+", Number(1), Number(2))
	for _, input := range []string{"(+ 1 2)", "(+1 2)", "( +  1   2 )", "\t(+\n1\r\n2)\n"} {
		got, err := ParseString(input)
		if err != nil {
			t.Errorf("parse %q: %v", input, err)
			continue
		}
		if diff := cmp.Diff(want, got, nodeOpt); diff != "" {
			t.Errorf("parse %q mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"(+ 1 2", ErrUnterminatedCall},
		{"(+ (* 1 2) 3", ErrUnterminatedCall},
		{"(+", ErrUnterminatedCall},
		{"(", ErrUnexpectedEOF},
		{"", ErrUnexpectedEOF},
		{"   ", ErrUnexpectedEOF},
		{")", ErrUnexpectedToken},
		{"+", ErrUnexpectedToken},
		{"(1 2)", ErrUnexpectedToken},
		{"(())", ErrUnexpectedToken},
		{"(+ 1 foo)", ErrUnexpectedToken},
		{"(+ 1 2))", ErrTrailingInput},
		{"1 2", ErrTrailingInput},
	}
	for _, test := range tests {
		node, err := ParseString(test.input)
		if !errors.Is(err, test.want) {
			t.Errorf("parse %q: want %v but got %v (%v)", test.input, test.want, err, node)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("parse %q: want *ParseError but got %T", test.input, err)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "(+ 1 2",
			want:  "unterminated call at 6: expected argument or ')', got end of input",
		},
		{
			input: "(+ 1 foo)",
			want:  `unexpected token at 5: expected argument or ')', got identifier "foo"`,
		},
		{
			input: "(3)",
			want:  "unexpected token at 1: expected operator, got number 3",
		},
		{
			input: ")",
			want:  "unexpected token at 0: expected number or '(', got ')'",
		},
		{
			input: "(e) 1",
			want:  "trailing input at 4: expected end of input, got number 1",
		},
	}
	for _, test := range tests {
		_, err := ParseString(test.input)
		if err == nil {
			t.Errorf("parse %q: want error %q", test.input, test.want)
			continue
		}
		if got := err.Error(); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseExpressionLeavesRest(t *testing.T) {
	p := NewParser(strings.NewReader("(+ 1 2) 7 (* 3 4)"))
	var got []string
	for {
		node, err := p.ParseExpression()
		if errors.Is(err, ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, node.String())
	}
	if diff := cmp.Diff([]string{"(+ 1 2)", "7", "(* 3 4)"}, got); diff != "" {
		t.Errorf("forms mismatch (-want +got):\n%s", diff)
	}
}

func nested(depth int) string {
	return strings.Repeat("(+ 1 ", depth) + "1" + strings.Repeat(")", depth)
}

func TestParseMaxDepth(t *testing.T) {
	p := NewParser(strings.NewReader(nested(50)))
	p.SetMaxDepth(49)
	if _, err := p.Parse(); !errors.Is(err, ErrTooDeep) {
		t.Fatalf("want %v but got %v", ErrTooDeep, err)
	}

	p = NewParser(strings.NewReader(nested(50)))
	p.SetMaxDepth(50)
	node, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Depth(), 51; got != want {
		t.Errorf("want depth %d but got %d", want, got)
	}

	if _, err := ParseString(nested(DefaultMaxDepth + 1)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("want %v for default limit but got %v", ErrTooDeep, err)
	}

	p = NewParser(strings.NewReader(nested(DefaultMaxDepth + 1)))
	p.SetMaxDepth(0)
	if _, err := p.Parse(); err != nil {
		t.Errorf("unlimited parser: %v", err)
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{Number(251), "251"},
		{Number(-0.5), "-0.5"},
		{Number(1e21), "1000000000000000000000"},
		{Number(math.Inf(1)), "1" + strings.Repeat("0", 309)},
		{Number(math.Inf(-1)), "-1" + strings.Repeat("0", 309)},
		{Call("pi"), "(pi)"},
		{Call("+", Number(1), Call("*", Number(2), Number(3))), "(+ 1 (* 2 3))"},
		{nil, "nil"},
	}
	for _, test := range tests {
		if got := test.node.String(); got != test.want {
			t.Errorf("want %q but got %q", test.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{
		"42",
		"( +  1   2.50 )",
		"(- (/ 98 4) 788)",
		"(+ (* 23 11) (* 2 (- 3 4)))",
		"(+ (sqr 7) 1 (* 5.64 2))",
		"(log10 0.001 -0.000001 123456789012345678901234567890)",
		"(+ " + strings.Repeat("9", 400) + " -" + strings.Repeat("9", 400) + ")",
		"(+-1 2)",
	} {
		first, err := ParseString(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		second, err := ParseString(first.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", first.String(), err)
		}
		if diff := cmp.Diff(first, second, nodeOpt); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func randomTree(r *rand.Rand, depth int) *Node {
	if depth == 0 || r.Intn(3) == 0 {
		switch r.Intn(3) {
		case 0:
			return Number(float64(r.Intn(1000)))
		case 1:
			return Number(r.NormFloat64() * 1e6)
		default:
			return Number(r.ExpFloat64() * 1e-9)
		}
	}
	ops := []string{"+", "-", "*", "/", "pi", "sqr", "log10", "%", "foo"}
	args := make([]*Node, r.Intn(4))
	for i := range args {
		args[i] = randomTree(r, depth-1)
	}
	return Call(ops[r.Intn(len(ops))], args...)
}

func TestRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		want := randomTree(r, 5)
		got, err := ParseString(want.String())
		if err != nil {
			t.Fatalf("parse %q: %v", want.String(), err)
		}
		if diff := cmp.Diff(want, got, nodeOpt); diff != "" {
			t.Fatalf("round trip of %q mismatch (-want +got):\n%s", want.String(), diff)
		}
	}
}
