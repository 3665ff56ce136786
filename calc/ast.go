package calc

import (
	"math/big"
	"strings"
)

type Node interface {
	Eval() (*big.Int, error)
	String() string
}

type Num struct {
	Token Token
}

var _ Node = new(Num)

func (n *Num) Eval() (*big.Int, error) {
	return new(big.Int).Set(n.Token.Value), nil
}

func (n *Num) String() string {
	return n.Token.Value.String()
}

type BinOp struct {
	Left  Node
	Op    Token
	Right Node
}

var _ Node = new(BinOp)

func (b *BinOp) Eval() (*big.Int, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return nil, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return nil, err
	}
	return apply(b.Op, left, right)
}

func (b *BinOp) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(b.Left.String())
	sb.WriteString(" ")
	sb.WriteString(b.Op.Kind.String())
	sb.WriteString(" ")
	sb.WriteString(b.Right.String())
	sb.WriteString(")")
	return sb.String()
}

type treeBuilder struct{}

var _ builder[Node] = treeBuilder{}

func (treeBuilder) number(token Token) Node {
	return &Num{
		Token: token,
	}
}

func (treeBuilder) binary(op Token, left, right Node) (Node, error) {
	return &BinOp{
		Left:  left,
		Op:    op,
		Right: right,
	}, nil
}

// Parse builds the syntax tree of text. Division by zero is not detected until Eval.
func Parse(text string) (Node, error) {
	g, err := newGrammar[Node](NewScanner(text), treeBuilder{})
	if err != nil {
		return nil, err
	}
	return g.complete()
}
