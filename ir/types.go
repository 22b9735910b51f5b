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
	"strings"

	"github.com/tapir-ml/tapir/ir/kind"
)

type (
	// Model is what a value can be checked against: either a concrete Type
	// instance or a Class of types (a type family such as "any float").
	Model interface {
		fmt.Stringer
		model()
	}

	// Type is a structural type. Two types are equal if they have the same
	// kind and their nested types are equal element-wise.
	Type interface {
		Model

		// Kind of the type.
		Kind() kind.Kind

		// Equal reports whether both types are structurally equal.
		Equal(Type) bool
	}

	// Class is a type family tag. A type belongs to the class if it has the
	// same kind, whatever its width or nested types.
	Class kind.Kind

	// BoolType is the type of booleans.
	BoolType struct{}

	// IntType is the type of signed integers of a given width.
	IntType struct {
		Width int
	}

	// FloatType is the type of floating point numbers of a given width.
	FloatType struct {
		Width int
	}

	// TupleType is the type of a tuple, one element type per position.
	TupleType struct {
		Elems []Type
	}

	// ListType is the type of a homogeneous list.
	ListType struct {
		Elem Type
	}

	// ExternalType is the type of a value opaque to the type model, tagged
	// with the name of its host representation.
	ExternalType struct {
		Name string
	}

	// MetaType is the type of a type used as a value.
	MetaType struct{}
)

var (
	_ Type = BoolType{}
	_ Type = IntType{}
	_ Type = FloatType{}
	_ Type = (*TupleType)(nil)
	_ Type = (*ListType)(nil)
	_ Type = ExternalType{}
	_ Type = MetaType{}
)

func (Class) model()        {}
func (BoolType) model()     {}
func (IntType) model()      {}
func (FloatType) model()    {}
func (*TupleType) model()   {}
func (*ListType) model()    {}
func (ExternalType) model() {}
func (MetaType) model()     {}

// Classes for every kind a structural type can have.
var (
	BoolClass     = Class(kind.Bool)
	IntClass      = Class(kind.Int)
	FloatClass    = Class(kind.Float)
	TupleClass    = Class(kind.Tuple)
	ListClass     = Class(kind.List)
	ExternalClass = Class(kind.External)
)

// Kind of the types in the class.
func (c Class) Kind() kind.Kind { return kind.Kind(c) }

func (c Class) String() string { return "class " + kind.Kind(c).String() }

// Kind of the type.
func (BoolType) Kind() kind.Kind { return kind.Bool }

// Equal reports whether both types are structurally equal.
func (BoolType) Equal(o Type) bool {
	_, ok := o.(BoolType)
	return ok
}

func (BoolType) String() string { return "bool" }

// Kind of the type.
func (IntType) Kind() kind.Kind { return kind.Int }

// Equal reports whether both types are structurally equal.
func (t IntType) Equal(o Type) bool {
	oT, ok := o.(IntType)
	return ok && t.Width == oT.Width
}

func (t IntType) String() string { return fmt.Sprintf("int%d", t.Width) }

// Kind of the type.
func (FloatType) Kind() kind.Kind { return kind.Float }

// Equal reports whether both types are structurally equal.
func (t FloatType) Equal(o Type) bool {
	oT, ok := o.(FloatType)
	return ok && t.Width == oT.Width
}

func (t FloatType) String() string { return fmt.Sprintf("float%d", t.Width) }

// Kind of the type.
func (*TupleType) Kind() kind.Kind { return kind.Tuple }

// Equal reports whether both types are structurally equal.
func (t *TupleType) Equal(o Type) bool {
	oT, ok := o.(*TupleType)
	if !ok || len(t.Elems) != len(oT.Elems) {
		return false
	}
	for i, el := range t.Elems {
		if !el.Equal(oT.Elems[i]) {
			return false
		}
	}
	return true
}

func (t *TupleType) String() string {
	els := make([]string, len(t.Elems))
	for i, el := range t.Elems {
		els[i] = el.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(els, ", "))
}

// Kind of the type.
func (*ListType) Kind() kind.Kind { return kind.List }

// Equal reports whether both types are structurally equal.
func (t *ListType) Equal(o Type) bool {
	oT, ok := o.(*ListType)
	return ok && t.Elem.Equal(oT.Elem)
}

func (t *ListType) String() string { return fmt.Sprintf("[]%s", t.Elem.String()) }

// Kind of the type.
func (ExternalType) Kind() kind.Kind { return kind.External }

// Equal reports whether both types are structurally equal.
func (t ExternalType) Equal(o Type) bool {
	oT, ok := o.(ExternalType)
	return ok && t.Name == oT.Name
}

func (t ExternalType) String() string { return fmt.Sprintf("external(%s)", t.Name) }

// Kind of the type.
func (MetaType) Kind() kind.Kind { return kind.Type }

// Equal reports whether both types are structurally equal.
func (MetaType) Equal(o Type) bool {
	_, ok := o.(MetaType)
	return ok
}

func (MetaType) String() string { return "type" }

// Represents reports whether type t is represented by the given model:
// either t equals the model, or the model is a class and t belongs to it.
func Represents(t Type, model Model) bool {
	switch modelT := model.(type) {
	case Type:
		return t.Equal(modelT)
	case Class:
		return t.Kind() == modelT.Kind()
	default:
		return false
	}
}
