package devtools

import (
	"encoding/json"
	"strconv"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind distinguishes the two cases of a Result
type Kind uint

// Result is the value returned by a tool: either a number or a text.
// Whole numbers are kept exactly as integers. A failed call is an error,
// never a Result.
type Result struct {
	kind    Kind
	number  float64
	integer int64
	text    string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	KindNumber Kind = iota
	KindText
	KindInteger
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewNumber(v float64) Result {
	return Result{kind: KindNumber, number: v}
}

func NewInteger(v int64) Result {
	return Result{kind: KindInteger, integer: v, number: float64(v)}
}

func NewText(v string) Result {
	return Result{kind: KindText, text: v}
}

// Decode converts a decoded JSON value into a Result. Anything other
// than a number or a string is a malformed response.
func Decode(v any) (Result, error) {
	switch v := v.(type) {
	case float64:
		return NewNumber(v), nil
	case int:
		return NewInteger(int64(v)), nil
	case int64:
		return NewInteger(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return NewInteger(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Result{}, devhelper.ErrUnavailable.Withf("malformed number %q", v)
		}
		return NewNumber(f), nil
	case string:
		return NewText(v), nil
	}
	return Result{}, devhelper.ErrUnavailable.Withf("malformed result of type %T", v)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (r Result) Kind() Kind {
	return r.kind
}

// Number returns the value, and false if the result is a text
func (r Result) Number() (float64, bool) {
	return r.number, r.kind == KindNumber || r.kind == KindInteger
}

// Integer returns the exact value, and false if the result is not a whole number
func (r Result) Integer() (int64, bool) {
	return r.integer, r.kind == KindInteger
}

// Text returns the text, and false if the result is a number
func (r Result) Text() (string, bool) {
	return r.text, r.kind == KindText
}

///////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r Result) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case KindText:
		return json.Marshal(r.text)
	case KindInteger:
		return json.Marshal(r.integer)
	}
	return json.Marshal(r.number)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Result) String() string {
	switch r.kind {
	case KindText:
		return r.text
	case KindInteger:
		return strconv.FormatInt(r.integer, 10)
	}
	return strconv.FormatFloat(r.number, 'f', -1, 64)
}
