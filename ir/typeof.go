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
)

// TypeOf infers the structural type of a value:
//   - a type used as a value has the meta type,
//   - booleans, integers and floats have their scalar type (64-bit widths),
//   - a tuple has the tuple of its element types,
//   - a non-empty list has the list type of its first element, and all other
//     elements must infer to that same type,
//   - everything else is external, tagged with its host representation.
//
// An empty list has no element type: TypeOf fails on it and call sites must
// avoid empty lists when inferring types.
func TypeOf(v Value) (Type, error) {
	switch vT := v.(type) {
	case *TypeValue:
		return MetaType{}, nil
	case Bool:
		return BoolType{}, nil
	case Int:
		return IntType{Width: 64}, nil
	case Float:
		return FloatType{Width: 64}, nil
	case *Tuple:
		elems := make([]Type, vT.Len())
		for i, el := range vT.Elements() {
			typ, err := TypeOf(el)
			if err != nil {
				return nil, err
			}
			elems[i] = typ
		}
		return &TupleType{Elems: elems}, nil
	case *List:
		return typeOfList(vT)
	default:
		return ExternalType{Name: externalName(v)}, nil
	}
}

func typeOfList(l *List) (Type, error) {
	if l.Len() == 0 {
		return nil, errors.Wrap(ErrType, "empty list has no element type")
	}
	elems := l.Elements()
	first, err := TypeOf(elems[0])
	if err != nil {
		return nil, err
	}
	for _, el := range elems[1:] {
		typ, err := TypeOf(el)
		if err != nil {
			return nil, err
		}
		if !typ.Equal(first) {
			return nil, errors.Wrapf(ErrType, "all list elements should have the same type: got %s and %s", first, typ)
		}
	}
	return &ListType{Elem: first}, nil
}

func externalName(v Value) string {
	if ext, ok := v.(*External); ok {
		return fmt.Sprintf("%T", ext.Interface())
	}
	return v.Kind().String()
}

// HasType reports whether the inferred type of a value is represented by the
// given model: equal to it if the model is a type instance, or a member of it
// if the model is a type class.
func HasType(v Value, model Model) (bool, error) {
	typ, err := TypeOf(v)
	if err != nil {
		return false, err
	}
	return Represents(typ, model), nil
}
