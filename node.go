package tachyon

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// overflowLiteral is a decimal too large for a float64; the scanner reads
// it back as +Inf.
var overflowLiteral = "1" + strings.Repeat("0", 309)

type NodeType int

const (
	NodeNumber NodeType = iota
	NodeCall
)

// Node is one expression: a number literal, or a call of a named
// operator over argument expressions it owns.
type Node struct {
	t    NodeType
	num  float64
	op   string
	args []*Node
}

func Number(v float64) *Node {
	return &Node{
		t:   NodeNumber,
		num: v,
	}
}

func Call(op string, args ...*Node) *Node {
	if args == nil {
		args = []*Node{}
	}
	return &Node{
		t:    NodeCall,
		op:   op,
		args: args,
	}
}

func (n *Node) Type() NodeType {
	return n.t
}

// Value returns the literal of a NodeNumber.
func (n *Node) Value() float64 {
	return n.num
}

// Op returns the operator name of a NodeCall.
func (n *Node) Op() string {
	return n.op
}

// Args returns the arguments of a NodeCall. The slice must not be modified.
func (n *Node) Args() []*Node {
	return n.args
}

// Depth returns the nesting depth of n; a number literal has depth 1.
func (n *Node) Depth() int {
	if n.t != NodeCall {
		return 1
	}
	d := 0
	for _, a := range n.args {
		if ad := a.Depth(); ad > d {
			d = ad
		}
	}
	return d + 1
}

// String returns the canonical prefix text of n. Parsing the result gives
// back an identical tree.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	n.write(&buf)
	return buf.String()
}

func (n *Node) write(buf *bytes.Buffer) {
	switch n.t {
	case NodeNumber:
		switch {
		case math.IsInf(n.num, 1):
			buf.WriteString(overflowLiteral)
		case math.IsInf(n.num, -1):
			buf.WriteByte('-')
			buf.WriteString(overflowLiteral)
		default:
			buf.WriteString(strconv.FormatFloat(n.num, 'f', -1, 64))
		}
	case NodeCall:
		fmt.Fprint(buf, "(", n.op)
		for _, a := range n.args {
			buf.WriteByte(' ')
			a.write(buf)
		}
		buf.WriteByte(')')
	default:
		fmt.Fprintf(buf, "<%d>", n.t)
	}
}
