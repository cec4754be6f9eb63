package tachyon

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Reducer computes an operator's result from its evaluated arguments.
type Reducer func(args []float64) (float64, error)

// Variadic is the Arity of an operator taking any number of arguments.
const Variadic = -1

type FnInfo struct {
	Arity int
	Doc   string
	Fn    Reducer
}

// Table maps operator names to their implementations. A Table must not
// be modified while an evaluation is using it.
type Table map[string]FnInfo

var ops Table

func makeFn(arity int, doc string, fn Reducer) FnInfo {
	return FnInfo{Arity: arity, Doc: doc, Fn: fn}
}

func init() {
	ops = make(Table)
	ops["+"] = makeFn(Variadic, "sum of the arguments, 0 if none", doPlus)
	ops["-"] = makeFn(Variadic, "first argument minus the rest; negation of a single argument", doMinus)
	ops["*"] = makeFn(Variadic, "product of the arguments, 1 if none", doMul)
	ops["/"] = makeFn(Variadic, "first argument divided by the rest, 0 if none", doDiv)
	ops["pi"] = makeFn(0, "the constant π", doPi)
	ops["e"] = makeFn(0, "the constant e", doE)
	ops["sqr"] = makeFn(1, "square of the argument", doSqr)
	ops["mod"] = makeFn(2, "floating-point remainder of x/y", doMod)
	ops["%"] = ops["mod"]
}

// Builtins returns a new table holding the built-in operators.
func Builtins() Table {
	t := make(Table, len(ops))
	for name, fn := range ops {
		t[name] = fn
	}
	return t
}

// NewTable returns the built-in operators together with the functions of
// Go's math package.
func NewTable() Table {
	t := Builtins()
	// gopkg registers "math" from its init function.
	if err := Import(t, "math"); err != nil {
		panic(err)
	}
	return t
}

// Names returns the operator names in t in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Eval reduces node to a number.
func (t Table) Eval(node *Node) (float64, error) {
	switch node.t {
	case NodeNumber:
		return node.num, nil
	case NodeCall:
		return t.call(node)
	}
	return 0, fmt.Errorf("invalid node: %v", node)
}

func (t Table) call(node *Node) (float64, error) {
	args := make([]float64, len(node.args))
	for i, arg := range node.args {
		v, err := t.Eval(arg)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	fn, ok := t[node.op]
	if !ok || fn.Fn == nil {
		return 0, &EvalError{Op: node.op, Err: ErrUnknownOperator}
	}
	if fn.Arity != Variadic && len(args) != fn.Arity {
		return 0, &EvalError{
			Op:  node.op,
			Err: fmt.Errorf("%w: want %d, got %d", ErrArity, fn.Arity, len(args)),
		}
	}
	ret, err := fn.Fn(args)
	if err != nil {
		return 0, &EvalError{Op: node.op, Err: err}
	}
	return ret, nil
}

// Eval reduces node to a number using the operators in table.
func Eval(node *Node, table Table) (float64, error) {
	return table.Eval(node)
}

// EvalString parses s as a single form and evaluates it.
func EvalString(s string, table Table) (float64, error) {
	node, err := ParseString(s)
	if err != nil {
		return 0, err
	}
	return table.Eval(node)
}

// FormatNumber returns the shortest text that reads back as f.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func doPlus(args []float64) (float64, error) {
	ret := 0.0
	for _, v := range args {
		ret += v
	}
	return ret, nil
}

func doMinus(args []float64) (float64, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
		return -args[0], nil
	}
	ret := args[0]
	for _, v := range args[1:] {
		ret -= v
	}
	return ret, nil
}

func doMul(args []float64) (float64, error) {
	ret := 1.0
	for _, v := range args {
		ret *= v
	}
	return ret, nil
}

func doDiv(args []float64) (float64, error) {
	if len(args) == 0 {
		return 0, nil
	}
	ret := args[0]
	for _, v := range args[1:] {
		ret /= v
	}
	return ret, nil
}

func doPi(args []float64) (float64, error) {
	return math.Pi, nil
}

func doE(args []float64) (float64, error) {
	return math.E, nil
}

func doSqr(args []float64) (float64, error) {
	return args[0] * args[0], nil
}

func doMod(args []float64) (float64, error) {
	return math.Mod(args[0], args[1]), nil
}
