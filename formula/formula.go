// Copyright 2010-2024 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package formula offers a small representation of boolean formulas.
//
// A `Formula` evaluates to a truth value and renders to a canonical text form.
// Two kinds of formula exist: the `BooleanLiteral`, which holds a fixed truth
// value, and `Not`, which negates the single formula it owns.
//
// Formulas render as `T` or `F` for literals and as `!` followed by the
// rendering of the child for negations, e.g. `!!F`. All formulas are immutable
// once built and can be shared between goroutines.
package formula

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilFormula holds the error when a formula is required but none was given.
var ErrNilFormula = errors.New("formula must not be nil")

// Formula provides an interface for BooleanLiteral and Not.
type Formula interface {
	// Evaluate returns the truth value of the formula.
	Evaluate() bool
	// String returns the canonical rendering of the formula.
	String() string
}

// BooleanLiteral is a formula holding a fixed truth value.
type BooleanLiteral struct {
	value bool
}

var (
	// True is the literal that always evaluates to true.
	True = BooleanLiteral{value: true}
	// False is the literal that always evaluates to false.
	False = BooleanLiteral{value: false}
)

// NewBooleanLiteral creates a literal holding `b`.
func NewBooleanLiteral(b bool) BooleanLiteral {
	return BooleanLiteral{value: b}
}

// Value returns the truth value held by the literal.
func (l BooleanLiteral) Value() bool {
	return l.value
}

// Evaluate returns the truth value held by the literal.
func (l BooleanLiteral) Evaluate() bool {
	return l.value
}

// String returns "T" for a true literal and "F" otherwise.
func (l BooleanLiteral) String() string {
	if l.value {
		return "T"
	}
	return "F"
}

// Not is the negation of the formula it owns.
type Not struct {
	child Formula
}

// NewNot creates the negation of `f`. Returns an error wrapping ErrNilFormula if `f`
// is nil.
func NewNot(f Formula) (Not, error) {
	if isNil(f) {
		return Not{}, fmt.Errorf("invalid argument to NewNot: %w", ErrNilFormula)
	}
	return Not{child: f}, nil
}

// MustNot is like NewNot but panics if `f` is nil. It is meant for formulas built
// from values known at compile time.
func MustNot(f Formula) Not {
	n, err := NewNot(f)
	if err != nil {
		panic(err)
	}
	return n
}

// Child returns the negated formula.
func (n Not) Child() Formula {
	return n.child
}

// Evaluate returns the logical Not of the child's value.
func (n Not) Evaluate() bool {
	return !n.mustChild().Evaluate()
}

// String returns "!" followed by the rendering of the child.
func (n Not) String() string {
	return "!" + n.mustChild().String()
}

// mustChild panics on a Not that was not built by NewNot.
func (n Not) mustChild() Formula {
	if isNil(n.child) {
		panic(fmt.Errorf("invalid Not: %w", ErrNilFormula))
	}
	return n.child
}

// Depth returns the number of negations wrapping the innermost literal of `f`.
// A literal has depth 0. Depth panics with ErrNilFormula if `f` or any negated
// formula in it is nil.
func Depth(f Formula) int {
	d, inner := unwrap(f)
	if isNil(inner) {
		panic(fmt.Errorf("Depth: %w", ErrNilFormula))
	}
	return d
}

// unwrap strips the negations around `f` and returns their count together with
// the innermost formula, which is nil if a negation has no child.
func unwrap(f Formula) (int, Formula) {
	d := 0
	for !isNil(f) {
		switch n := f.(type) {
		case Not:
			f = n.child
		case *Not:
			f = n.child
		default:
			return d, f
		}
		d++
	}
	return d, nil
}

// isNil reports whether `f` is nil or holds a nil pointer.
func isNil(f Formula) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
