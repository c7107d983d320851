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

package formula

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrMalformedProto holds the error when a proto does not describe a formula.
var ErrMalformedProto = errors.New("malformed formula proto")

// Field names of the Struct encoding. A literal is encoded as `{"literal": <bool>}`
// and a negation as `{"not": <child>}`.
const (
	literalField = "literal"
	notField     = "not"
)

// MaxDepth is the maximum number of negations in an encoded formula. Each
// negation nests two messages, which keeps every encoding within the default
// recursion limit of proto.Unmarshal.
const MaxDepth = 1000

// ErrTooDeep holds the error when a formula has more than MaxDepth negations.
var ErrTooDeep = fmt.Errorf("formula has more than %d negations: %w", MaxDepth, ErrMalformedProto)

// ToProto returns the formula encoded as a google.protobuf.Struct. Returns an
// error wrapping ErrTooDeep if `f` has more than MaxDepth negations.
func ToProto(f Formula) (*structpb.Struct, error) {
	d, inner := unwrap(f)
	if isNil(inner) {
		return nil, fmt.Errorf("ToProto: %w", ErrNilFormula)
	}
	if d > MaxDepth {
		return nil, fmt.Errorf("ToProto: %w", ErrTooDeep)
	}
	var s *structpb.Struct
	switch l := inner.(type) {
	case BooleanLiteral:
		s = literalProto(l)
	case *BooleanLiteral:
		s = literalProto(*l)
	default:
		return nil, fmt.Errorf("ToProto: unsupported formula type %T", inner)
	}
	for i := 0; i < d; i++ {
		s = &structpb.Struct{Fields: map[string]*structpb.Value{
			notField: structpb.NewStructValue(s),
		}}
	}
	return s, nil
}

func literalProto(l BooleanLiteral) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		literalField: structpb.NewBoolValue(l.value),
	}}
}

// FromProto returns the formula encoded in `s`. Returns an error wrapping
// ErrMalformedProto if `s` is not a valid encoding or nests more than MaxDepth
// negations.
func FromProto(s *structpb.Struct) (Formula, error) {
	if s == nil {
		return nil, fmt.Errorf("FromProto: nil struct: %w", ErrMalformedProto)
	}
	var depth int
	for {
		fields := s.GetFields()
		if len(fields) != 1 {
			return nil, fmt.Errorf("FromProto: want exactly one field, got %v: %w", len(fields), ErrMalformedProto)
		}
		if v, ok := fields[literalField]; ok {
			b, ok := v.GetKind().(*structpb.Value_BoolValue)
			if !ok {
				return nil, fmt.Errorf("FromProto: %q must hold a bool: %w", literalField, ErrMalformedProto)
			}
			var f Formula = NewBooleanLiteral(b.BoolValue)
			for i := 0; i < depth; i++ {
				f = Not{child: f}
			}
			return f, nil
		}
		v, ok := fields[notField]
		if !ok {
			return nil, fmt.Errorf("FromProto: unknown field: %w", ErrMalformedProto)
		}
		child := v.GetStructValue()
		if child == nil {
			return nil, fmt.Errorf("FromProto: %q must hold a struct: %w", notField, ErrMalformedProto)
		}
		depth++
		if depth > MaxDepth {
			return nil, fmt.Errorf("FromProto: %w", ErrTooDeep)
		}
		s = child
	}
}

// Marshal returns the binary protobuf encoding of the formula.
func Marshal(f Formula) ([]byte, error) {
	s, err := ToProto(f)
	if err != nil {
		return nil, err
	}
	b, err := proto.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal formula %v: %w", f, err)
	}
	return b, nil
}

// Unmarshal returns the formula from its binary protobuf encoding.
func Unmarshal(b []byte) (Formula, error) {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal formula: %w", err)
	}
	return FromProto(s)
}
