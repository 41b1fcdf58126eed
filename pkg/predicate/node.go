// Package predicate models boolean conditions over the columns of a row and
// compiles them into SQL WHERE conditions.
//
// A condition is a tree of [Node] values. Trees are built with the
// constructors in this package:
//
//	predicate.And(
//		predicate.Gt(predicate.Col("level"), predicate.Val(10)),
//		predicate.Ne(predicate.Col("name"), predicate.Val("")),
//	)
//
// or with typed columns:
//
//	var Level = predicate.Column[int]("level")
//	Level.GT(10)
//
// [Simplify] folds constant subtrees and short-circuits AND/OR, and [Render]
// lowers the simplified tree to SQL text. [Compile] does both.
package predicate

// Op is a comparison operator.
type Op string

const (
	OpEq Op = "="
	OpNe Op = "<>"
	OpLt Op = "<"
	OpLe Op = "<="
	OpGt Op = ">"
	OpGe Op = ">="
)

func (o Op) valid() bool {
	switch o {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

// Node is a node of a predicate tree.
//
// The set of node types is closed: Const, Field, Comparison, Conjunction,
// Disjunction and Negation.
type Node interface {
	node()
}

// Const is a literal value.
type Const struct {
	Value any
}

// Field references a column of the row.
type Field struct {
	Name string
}

// Comparison compares two operands with Op.
type Comparison struct {
	Op          Op
	Left, Right Node
}

// Conjunction is Left AND Right.
type Conjunction struct {
	Left, Right Node
}

// Disjunction is Left OR Right.
type Disjunction struct {
	Left, Right Node
}

// Negation is NOT X.
type Negation struct {
	X Node
}

func (Const) node()       {}
func (Field) node()       {}
func (Comparison) node()  {}
func (Conjunction) node() {}
func (Disjunction) node() {}
func (Negation) node()    {}

// Val returns a constant node.
func Val(v any) Node {
	return Const{Value: v}
}

// Col returns a column reference.
func Col(name string) Node {
	return Field{Name: name}
}

// True returns the always-true constant.
func True() Node {
	return Const{Value: true}
}

// False returns the always-false constant.
func False() Node {
	return Const{Value: false}
}

func Eq(l, r Node) Node { return Comparison{Op: OpEq, Left: l, Right: r} }
func Ne(l, r Node) Node { return Comparison{Op: OpNe, Left: l, Right: r} }
func Lt(l, r Node) Node { return Comparison{Op: OpLt, Left: l, Right: r} }
func Le(l, r Node) Node { return Comparison{Op: OpLe, Left: l, Right: r} }
func Gt(l, r Node) Node { return Comparison{Op: OpGt, Left: l, Right: r} }
func Ge(l, r Node) Node { return Comparison{Op: OpGe, Left: l, Right: r} }

// And joins nodes with AND, left to right.
// And() is true, And(x) is x.
func And(nodes ...Node) Node {
	if len(nodes) == 0 {
		return True()
	}
	n := nodes[0]
	for _, next := range nodes[1:] {
		n = Conjunction{Left: n, Right: next}
	}
	return n
}

// Or joins nodes with OR, left to right.
// Or() is false, Or(x) is x.
func Or(nodes ...Node) Node {
	if len(nodes) == 0 {
		return False()
	}
	n := nodes[0]
	for _, next := range nodes[1:] {
		n = Disjunction{Left: n, Right: next}
	}
	return n
}

// Not negates n.
func Not(n Node) Node {
	return Negation{X: n}
}

// isCondition reports whether n evaluates to a boolean.
// Fields are not conditions: their type is not known.
func isCondition(n Node) bool {
	switch x := n.(type) {
	case Comparison, Conjunction, Disjunction, Negation:
		return true
	case Const:
		_, ok := x.Value.(bool)
		return ok
	}
	return false
}

func boolConst(n Node) (value, ok bool) {
	c, isConst := n.(Const)
	if !isConst {
		return false, false
	}
	value, ok = c.Value.(bool)
	return value, ok
}
