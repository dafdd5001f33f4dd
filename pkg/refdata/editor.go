// Package refdata maintains the in-memory reference lists (countries,
// categories) edited from the admin tables. The server is the source of
// truth: the local list is a transient cache that is mutated only after the
// server confirms a write, and left untouched when a write fails.
package refdata

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrHasProducts blocks deleting a category that still has products
// assigned. The check is local; no request is issued.
var ErrHasProducts = errors.New("category still has products assigned")

// ValidationError carries field-scoped messages from a rejected record.
// The record never reaches the wire.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, f := range fields {
		fmt.Fprintf(&b, " %s: %s;", f, e.Fields[f])
	}
	return strings.TrimSuffix(b.String(), ";")
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
