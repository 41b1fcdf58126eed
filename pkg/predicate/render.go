package predicate

import (
	"fmt"
	"strings"

	"github.com/wdetools/sqlgen/pkg/constants"
	"github.com/wdetools/sqlgen/pkg/literal"
)

// Quoting selects how column names are quoted.
type Quoting int

const (
	// Backticks quotes names as `name` (MySQL, MariaDB, SQLite).
	Backticks Quoting = iota
	// Brackets quotes names as [name] (SQL Server).
	Brackets
)

// Ident quotes name. The closing quote character is doubled inside the name.
func (q Quoting) Ident(name string) string {
	if q == Brackets {
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// UnrenderableError is returned when a tree has no SQL rendering.
// It matches constants.ErrUnrenderableExpression with errors.Is.
type UnrenderableError struct {
	Node   Node
	Reason string
	Err    error
}

func (e *UnrenderableError) Error() string {
	msg := fmt.Sprintf("%s: %s (%T)", constants.ErrUnrenderableExpression, e.Reason, e.Node)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnrenderableError) Is(target error) bool {
	return target == constants.ErrUnrenderableExpression
}

func (e *UnrenderableError) Unwrap() error {
	return e.Err
}

func unrenderable(n Node, reason string) error {
	return &UnrenderableError{Node: n, Reason: reason}
}

// Compile simplifies n and renders it with backtick quoting.
func Compile(n Node) (string, error) {
	return Render(Simplify(n), Backticks)
}

// Render renders the condition n as it is, without simplifying it.
//
// The root must be a condition: a comparison, AND, OR, NOT or a boolean
// constant. Boolean constants render as 1 and 0. There is no trailing
// semicolon.
func Render(n Node, q Quoting) (string, error) {
	var b strings.Builder
	r := renderer{quoting: q, b: &b}
	if err := r.condition(n); err != nil {
		return "", err
	}
	return b.String(), nil
}

type renderer struct {
	quoting Quoting
	b       *strings.Builder
}

func (r renderer) condition(n Node) error {
	switch x := n.(type) {
	case nil:
		return unrenderable(n, "nil node")
	case Const:
		v, ok := x.Value.(bool)
		if !ok {
			return unrenderable(n, "constant is not a condition")
		}
		if v {
			r.b.WriteString(constants.AlwaysTrue)
		} else {
			r.b.WriteString(constants.AlwaysFalse)
		}
		return nil
	case Field:
		return unrenderable(n, "column "+r.quoting.Ident(x.Name)+" is not a condition")
	case Comparison:
		return r.comparison(x)
	case Conjunction:
		return r.binary(x.Left, "AND", x.Right)
	case Disjunction:
		return r.binary(x.Left, "OR", x.Right)
	case Negation:
		r.b.WriteString("NOT (")
		if err := r.condition(x.X); err != nil {
			return err
		}
		r.b.WriteString(")")
		return nil
	default:
		return unrenderable(n, "unknown node type")
	}
}

func (r renderer) binary(l Node, op string, rn Node) error {
	r.b.WriteString("(")
	if err := r.condition(l); err != nil {
		return err
	}
	r.b.WriteString(") " + op + " (")
	if err := r.condition(rn); err != nil {
		return err
	}
	r.b.WriteString(")")
	return nil
}

func (r renderer) comparison(c Comparison) error {
	if !c.Op.valid() {
		return unrenderable(c, fmt.Sprintf("unknown operator %q", string(c.Op)))
	}

	if c.Op == OpEq || c.Op == OpNe {
		operand, isNull := c.Left, isNullConst(c.Right)
		if !isNull && isNullConst(c.Left) {
			operand, isNull = c.Right, true
		}
		if isNull {
			if err := r.operand(operand); err != nil {
				return err
			}
			if c.Op == OpEq {
				r.b.WriteString(" IS NULL")
			} else {
				r.b.WriteString(" IS NOT NULL")
			}
			return nil
		}
	}

	if err := r.operand(c.Left); err != nil {
		return err
	}
	r.b.WriteString(" " + string(c.Op) + " ")
	return r.operand(c.Right)
}

func (r renderer) operand(n Node) error {
	switch x := n.(type) {
	case Field:
		r.b.WriteString(r.quoting.Ident(x.Name))
		return nil
	case Const:
		s, err := literal.Format(x.Value)
		if err != nil {
			return &UnrenderableError{Node: n, Reason: "constant has no SQL literal", Err: err}
		}
		r.b.WriteString(s)
		return nil
	case nil:
		return unrenderable(n, "nil operand")
	default:
		return unrenderable(n, "operand must be a column or a constant")
	}
}

func isNullConst(n Node) bool {
	c, ok := n.(Const)
	return ok && literal.IsNull(c.Value)
}
