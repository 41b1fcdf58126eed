package predicate

// Scalar lists the Go types a typed column can hold.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Column is a column of type T. Its methods only accept values of T.
//
//	var Level = predicate.Column[int]("level")
//	Level.GTE(3)
type Column[T Scalar] string

// Name returns the column name.
func (c Column[T]) Name() string { return string(c) }

// Node returns the column reference.
func (c Column[T]) Node() Node { return Field{Name: string(c)} }

// EQ returns a predicate that the column equals v.
func (c Column[T]) EQ(v T) Node { return Eq(c.Node(), Val(v)) }

// NEQ returns a predicate that the column does not equal v.
func (c Column[T]) NEQ(v T) Node { return Ne(c.Node(), Val(v)) }

// LT returns a predicate that the column is less than v.
func (c Column[T]) LT(v T) Node { return Lt(c.Node(), Val(v)) }

// LTE returns a predicate that the column is less than or equal to v.
func (c Column[T]) LTE(v T) Node { return Le(c.Node(), Val(v)) }

// GT returns a predicate that the column is greater than v.
func (c Column[T]) GT(v T) Node { return Gt(c.Node(), Val(v)) }

// GTE returns a predicate that the column is greater than or equal to v.
func (c Column[T]) GTE(v T) Node { return Ge(c.Node(), Val(v)) }

// In returns a predicate that the column equals one of vs.
// With no values it is false.
func (c Column[T]) In(vs ...T) Node {
	nodes := make([]Node, len(vs))
	for i, v := range vs {
		nodes[i] = c.EQ(v)
	}
	return Or(nodes...)
}

// NotIn returns a predicate that the column equals none of vs.
func (c Column[T]) NotIn(vs ...T) Node { return Not(c.In(vs...)) }

// EQColumn returns a predicate that the column equals other.
func (c Column[T]) EQColumn(other Column[T]) Node { return Eq(c.Node(), other.Node()) }

// IsNull returns a predicate that the column is NULL.
func (c Column[T]) IsNull() Node { return Eq(c.Node(), Val(nil)) }

// NotNull returns a predicate that the column is not NULL.
func (c Column[T]) NotNull() Node { return Ne(c.Node(), Val(nil)) }
