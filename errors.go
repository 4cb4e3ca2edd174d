package foreign

import (
	"errors"
	"strconv"
	"strings"

	"github.com/reoring/foreign/i18n"
)

// Error codes (exported consts so Translator implementations can key on them).
const (
	CodeTypeMismatch    = "type_mismatch"
	CodeErrorAtIndex    = "error_at_index"
	CodeErrorAtProperty = "error_at_property"
	CodeCustom          = "custom"
)

// ForeignError is a single decode failure. It is a closed set of four
// variants: TypeMismatch, ErrorAtIndex, ErrorAtProperty and CustomError.
// The index/property wrappers nest: read outward-to-inward, they spell out
// the exact path from the decode root to the failing leaf value.
type ForeignError interface {
	error
	// Code returns the error code of the outermost variant.
	Code() string

	foreignError()
}

// TypeMismatch is the leaf cause produced by the typed readers: the value did
// not have the shape the reader expected. Actual carries the offending value.
type TypeMismatch struct {
	Expected TypeName
	Actual   Foreign
}

func (e TypeMismatch) Code() string  { return CodeTypeMismatch }
func (e TypeMismatch) foreignError() {}

func (e TypeMismatch) Error() string {
	return i18n.T(CodeTypeMismatch, map[string]string{
		"expected": string(e.Expected),
		"got":      e.Actual.Kind().String(),
	})
}

// ErrorAtIndex wraps an error that occurred while decoding element Index of
// an array.
type ErrorAtIndex struct {
	Index int
	Inner ForeignError
}

func (e ErrorAtIndex) Code() string  { return CodeErrorAtIndex }
func (e ErrorAtIndex) foreignError() {}

func (e ErrorAtIndex) Error() string {
	prefix := i18n.T(CodeErrorAtIndex, map[string]string{"index": strconv.Itoa(e.Index)})
	return prefix + ": " + e.Inner.Error()
}

// ErrorAtProperty wraps an error that occurred while decoding the value (or
// validating the key) at property Key of an object.
type ErrorAtProperty struct {
	Key   string
	Inner ForeignError
}

func (e ErrorAtProperty) Code() string  { return CodeErrorAtProperty }
func (e ErrorAtProperty) foreignError() {}

func (e ErrorAtProperty) Error() string {
	prefix := i18n.T(CodeErrorAtProperty, map[string]string{"key": strconv.Quote(e.Key)})
	return prefix + ": " + e.Inner.Error()
}

// CustomError carries a domain-specific failure message, such as a map key
// that cannot be decoded to the target key type.
type CustomError struct {
	Message string
}

func (e CustomError) Code() string  { return CodeCustom }
func (e CustomError) foreignError() {}
func (e CustomError) Error() string { return e.Message }

// Errors is the non-empty ordered sequence of failures a decoder returns. In
// practice it holds a single root cause that accumulates path wrappers as it
// propagates outward; it is not a multi-error validation report.
type Errors []ForeignError

// Error summarizes the first few errors.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(es)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(es[i].Error())
	}
	if n > lim {
		b.WriteString("; ... (total " + strconv.Itoa(n) + ")")
	}
	return b.String()
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

// AtIndex rewraps every error in err with an ErrorAtIndex at index i. It is
// applied on the failure branch only; successful decodes never see it.
func AtIndex(i int, err error) error {
	es := coerce(err)
	out := make(Errors, len(es))
	for j, e := range es {
		out[j] = ErrorAtIndex{Index: i, Inner: e}
	}
	return out
}

// AtProperty rewraps every error in err with an ErrorAtProperty at key.
func AtProperty(key string, err error) error {
	es := coerce(err)
	out := make(Errors, len(es))
	for j, e := range es {
		out[j] = ErrorAtProperty{Key: key, Inner: e}
	}
	return out
}

func coerce(err error) Errors {
	if es, ok := AsErrors(err); ok {
		return es
	}
	return Errors{CustomError{Message: err.Error()}}
}
