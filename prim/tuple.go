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

package prim

import (
	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir"
)

func toTuple(p Primitive, v ir.Value) (*ir.Tuple, error) {
	t, ok := v.(*ir.Tuple)
	if !ok {
		return nil, errors.Wrapf(ir.ErrType, "%s expects a tuple, got %s", p, v.Kind())
	}
	return t, nil
}

// consTuple prepends a value to a tuple. The tail tuple is not modified.
func consTuple(args []ir.Value) (ir.Value, error) {
	tail, err := toTuple(ConsTuple, args[1])
	if err != nil {
		return nil, err
	}
	elements := make([]ir.Value, 0, tail.Len()+1)
	elements = append(elements, args[0])
	elements = append(elements, tail.Elements()...)
	return ir.NewTuple(elements...), nil
}

// head returns the first element of a non-empty tuple.
func head(args []ir.Value) (ir.Value, error) {
	tup, err := toTuple(Head, args[0])
	if err != nil {
		return nil, err
	}
	return tup.At(0)
}

// tail returns all but the first element of a non-empty tuple, as a new
// tuple.
func tail(args []ir.Value) (ir.Value, error) {
	tup, err := toTuple(Tail, args[0])
	if err != nil {
		return nil, err
	}
	if tup.Len() == 0 {
		return nil, errors.Wrap(ir.ErrIndex, "tail of an empty tuple")
	}
	elements := append([]ir.Value{}, tup.Elements()[1:]...)
	return ir.NewTuple(elements...), nil
}
