package predicate

import (
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/wdetools/sqlgen/pkg/literal"
)

// Simplify returns a tree with the same meaning as n and no foldable parts.
//
// Comparisons between two constants are evaluated, AND/OR with a constant
// operand are short-circuited, double negations are removed and comparisons of
// a condition against a boolean constant are reduced to the condition or its
// negation. Comparisons the host cannot evaluate, such as a string against a
// number, are kept as they are.
//
// The result is a fixpoint: Simplify(Simplify(n)) equals Simplify(n).
func Simplify(n Node) Node {
	switch x := n.(type) {
	case Comparison:
		return compare(x.Op, Simplify(x.Left), Simplify(x.Right))
	case Conjunction:
		return and(Simplify(x.Left), Simplify(x.Right))
	case Disjunction:
		return or(Simplify(x.Left), Simplify(x.Right))
	case Negation:
		return not(Simplify(x.X))
	default:
		return n
	}
}

func and(l, r Node) Node {
	if b, ok := boolConst(l); ok {
		if b {
			return r
		}
		return False()
	}
	if b, ok := boolConst(r); ok {
		if b {
			return l
		}
		return False()
	}
	return Conjunction{Left: l, Right: r}
}

func or(l, r Node) Node {
	if b, ok := boolConst(l); ok {
		if b {
			return True()
		}
		return r
	}
	if b, ok := boolConst(r); ok {
		if b {
			return True()
		}
		return l
	}
	return Disjunction{Left: l, Right: r}
}

func not(x Node) Node {
	if b, ok := boolConst(x); ok {
		return Const{Value: !b}
	}
	if inner, ok := x.(Negation); ok {
		return inner.X
	}
	return Negation{X: x}
}

func compare(op Op, l, r Node) Node {
	lc, lok := l.(Const)
	rc, rok := r.(Const)
	if lok && rok && op.valid() {
		if v, ok := evalCompare(op, lc.Value, rc.Value); ok {
			return Const{Value: v}
		}
	}

	// cond = true, cond <> false, and the mirrored forms.
	if op == OpEq || op == OpNe {
		if b, ok := boolConst(r); ok && isCondition(l) {
			return matchBool(op, l, b)
		}
		if b, ok := boolConst(l); ok && isCondition(r) {
			return matchBool(op, r, b)
		}
	}

	return Comparison{Op: op, Left: l, Right: r}
}

func matchBool(op Op, cond Node, b bool) Node {
	if (op == OpEq) == b {
		return cond
	}
	return not(cond)
}

type scalarKind int

const (
	kindOther scalarKind = iota
	kindNil
	kindBool
	kindString
	kindInt
	kindUint
	kindFloat
)

type scalar struct {
	kind scalarKind
	b    bool
	s    string
	i    int64
	u    uint64
	f    float64
}

func classify(v any) scalar {
	if v == nil {
		return scalar{kind: kindNil}
	}
	// values with their own literal have server-side semantics
	if _, ok := v.(literal.Literaler); ok {
		return scalar{kind: kindOther}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return scalar{kind: kindNil}
		}
	case reflect.Bool:
		return scalar{kind: kindBool, b: rv.Bool()}
	case reflect.String:
		return scalar{kind: kindString, s: rv.String()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar{kind: kindInt, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalar{kind: kindUint, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return scalar{kind: kindFloat, f: rv.Float()}
	}
	return scalar{kind: kindOther}
}

func (s scalar) numeric() bool {
	return s.kind == kindInt || s.kind == kindUint || s.kind == kindFloat
}

// evalCompare evaluates a op b. ok is false when the pair has no ordering the
// host agrees on, in which case the comparison is left to the server.
func evalCompare(op Op, a, b any) (result, ok bool) {
	x, y := classify(a), classify(b)

	switch {
	case x.kind == kindNil || y.kind == kindNil:
		if x.kind == kindOther || y.kind == kindOther {
			return false, false
		}
		return equality(op, x.kind == y.kind)
	case x.kind == kindBool && y.kind == kindBool:
		return equality(op, x.b == y.b)
	case x.kind == kindString && y.kind == kindString:
		return ordered(op, strings.Compare(x.s, y.s)), true
	case x.numeric() && y.numeric():
		c, comparable := compareNumbers(x, y)
		if !comparable {
			// NaN: only <> holds.
			return op == OpNe, true
		}
		return ordered(op, c), true
	}
	return false, false
}

func equality(op Op, equal bool) (result, ok bool) {
	switch op {
	case OpEq:
		return equal, true
	case OpNe:
		return !equal, true
	}
	return false, false
}

func ordered(op Op, c int) bool {
	switch op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpGt:
		return c > 0
	default:
		return c >= 0
	}
}

func compareNumbers(x, y scalar) (int, bool) {
	if x.kind == kindFloat || y.kind == kindFloat {
		if x.isNaN() || y.isNaN() {
			return 0, false
		}
		// big.Float holds every int64, uint64 and float64 exactly.
		return x.bigFloat().Cmp(y.bigFloat()), true
	}

	switch {
	case x.kind == kindInt && y.kind == kindInt:
		return cmp3(x.i < y.i, x.i > y.i), true
	case x.kind == kindUint && y.kind == kindUint:
		return cmp3(x.u < y.u, x.u > y.u), true
	case x.kind == kindInt:
		if x.i < 0 {
			return -1, true
		}
		u := uint64(x.i)
		return cmp3(u < y.u, u > y.u), true
	default:
		if y.i < 0 {
			return 1, true
		}
		u := uint64(y.i)
		return cmp3(x.u < u, x.u > u), true
	}
}

func (s scalar) isNaN() bool {
	return s.kind == kindFloat && math.IsNaN(s.f)
}

func (s scalar) bigFloat() *big.Float {
	switch s.kind {
	case kindInt:
		return new(big.Float).SetInt64(s.i)
	case kindUint:
		return new(big.Float).SetUint64(s.u)
	}
	return big.NewFloat(s.f)
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}
