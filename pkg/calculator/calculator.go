// Package calculator implements the arithmetic tool executor: four integer
// operations exposed as tools, where division by zero is reported as a
// value rather than an error.
package calculator

import (
	"encoding/json"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Quotient is the result of a division: either a floating-point value, or
// the divide-by-zero message. Callers branch on Value or Message.
type Quotient struct {
	value   float64
	message string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DivideByZero is returned in-band when the divisor is zero
const DivideByZero = "Error: Cannot divide by zero."

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func Add(a, b int) int {
	return a + b
}

func Subtract(a, b int) int {
	return a - b
}

func Multiply(a, b int) int {
	return a * b
}

// Divide returns a/b, or the DivideByZero message when b is zero
func Divide(a, b int) Quotient {
	if b == 0 {
		return Quotient{message: DivideByZero}
	}
	return Quotient{value: float64(a) / float64(b)}
}

// Value returns the quotient, and false if the division failed
func (q Quotient) Value() (float64, bool) {
	return q.value, q.message == ""
}

// Message returns the failure message, and false if the division succeeded
func (q Quotient) Message() (string, bool) {
	return q.message, q.message != ""
}

///////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

// MarshalJSON encodes a JSON number, or a JSON string for the failure case
func (q Quotient) MarshalJSON() ([]byte, error) {
	if message, ok := q.Message(); ok {
		return json.Marshal(message)
	}
	return json.Marshal(q.value)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (q Quotient) String() string {
	if message, ok := q.Message(); ok {
		return message
	}
	return strconv.FormatFloat(q.value, 'f', -1, 64)
}
