package sqlgen

// Variable is a session variable, @name. It can be used as a value in
// inserts, updates and variable definitions.
type Variable struct {
	name string
}

// NewVariable returns the variable @name.
func NewVariable(name string) Variable {
	return Variable{name: name}
}

// Name returns the name without the @ prefix.
func (v Variable) Name() string {
	return v.name
}

func (v Variable) String() string {
	return "@" + v.name
}

// SQLLiteral implements literal.Literaler.
func (v Variable) SQLLiteral() string {
	return v.String()
}
