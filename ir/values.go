// Copyright 2025 The Tapir Authors
//
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

package ir

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir/kind"
)

type (
	// Bool is a boolean value.
	Bool bool

	// Int is a 64-bit signed integer value.
	Int int64

	// Float is a 64-bit floating point value.
	Float float64

	// String is a string value. The type model treats strings as external
	// host values.
	String string

	// Func is a callable usable without host delegation.
	Func struct {
		name string
		fn   func(args []Value) (Value, error)
	}

	// External is an opaque host object.
	External struct {
		val any
	}

	// TypeValue is a type used as a value, for example the result of the
	// typeof primitive.
	TypeValue struct {
		model Model
	}
)

var (
	_ Value = Bool(false)
	_ Value = Int(0)
	_ Value = Float(0)
	_ Value = String("")
	_ Value = (*Func)(nil)
	_ Value = (*External)(nil)
	_ Value = (*TypeValue)(nil)
)

// Kind of the value.
func (Bool) Kind() kind.Kind { return kind.Bool }

func (v Bool) String() string { return fmt.Sprintf("%v", bool(v)) }

// Kind of the value.
func (Int) Kind() kind.Kind { return kind.Int }

func (v Int) String() string { return fmt.Sprintf("%d", int64(v)) }

// Kind of the value.
func (Float) Kind() kind.Kind { return kind.Float }

func (v Float) String() string { return fmt.Sprintf("%v", float64(v)) }

// Kind of the value.
func (String) Kind() kind.Kind { return kind.String }

func (v String) String() string { return string(v) }

// NewFunc returns a callable value evaluating fn.
func NewFunc(name string, fn func(args []Value) (Value, error)) *Func {
	return &Func{name: name, fn: fn}
}

// Kind of the value.
func (*Func) Kind() kind.Kind { return kind.Func }

// Name of the callable.
func (f *Func) Name() string { return f.name }

// Call evaluates the callable with the given arguments.
func (f *Func) Call(args []Value) (Value, error) {
	return f.fn(args)
}

func (f *Func) String() string { return fmt.Sprintf("func %s", f.name) }

// NewExternal wraps a host object into a value.
func NewExternal(val any) *External {
	return &External{val: val}
}

// Kind of the value.
func (*External) Kind() kind.Kind { return kind.External }

// Interface returns the wrapped host object.
func (e *External) Interface() any { return e.val }

func (e *External) String() string { return fmt.Sprintf("external(%T)", e.val) }

// NewTypeValue returns a type model as a value.
func NewTypeValue(model Model) *TypeValue {
	return &TypeValue{model: model}
}

// Kind of the value.
func (*TypeValue) Kind() kind.Kind { return kind.Type }

// Model returns the type instance or class held by the value.
func (t *TypeValue) Model() Model { return t.model }

func (t *TypeValue) String() string { return t.model.String() }

// Attributed is the capability of values with named attributes. SetAttr
// returns a shallow copy: the receiver is never mutated.
type Attributed interface {
	// GetAttr returns the value of an attribute.
	GetAttr(name string) (Value, error)

	// SetAttr returns a copy of the value with the attribute set.
	SetAttr(name string, val Value) (Value, error)
}

// AsAttributed returns the attribute capability of a value, unwrapping
// external host objects that provide it.
func AsAttributed(v Value) (Attributed, error) {
	switch vT := v.(type) {
	case Attributed:
		return vT, nil
	case *External:
		if att, ok := vT.val.(Attributed); ok {
			return att, nil
		}
	}
	return nil, errors.Wrapf(ErrAttribute, "%s value has no attributes", v.Kind())
}
