package constants

import "errors"

// Errors raised while compiling predicates and literals.
var (
	ErrUnrenderableExpression = errors.New("expression cannot be rendered as SQL")
	ErrInvalidScalarType      = errors.New("value has no SQL literal representation")
)

// Errors raised by the contrib packages.
var (
	ErrUnknownFormat  = errors.New("unknown row file format")
	ErrNoColumns      = errors.New("row arrays require a columns list")
	ErrRowWidth       = errors.New("row width does not match the columns list")
	ErrNoTable        = errors.New("table name not set")
	ErrEmptyStatement = errors.New("statement text is empty")
	// ErrUnboundedUpdate is returned for an update without a condition that
	// does not ask for every row.
	ErrUnboundedUpdate = errors.New("update has no where condition")
)
