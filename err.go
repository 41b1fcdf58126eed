package sqlgen

import (
	"fmt"
)

// TranslationError is returned when a predicate cannot be turned into a
// condition for a table.
type TranslationError struct {
	Table string
	Err   error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("unable to translate condition for table %s: %v", e.Table, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
