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

func toIterator(p Primitive, v ir.Value) (*ir.Iterator, error) {
	it, ok := v.(*ir.Iterator)
	if !ok {
		return nil, errors.Wrapf(ir.ErrType, "%s expects an iterator, got %s", p, v.Kind())
	}
	return it, nil
}

// iterValue starts an iterator over a sequence.
func iterValue(args []ir.Value) (ir.Value, error) {
	if _, err := seqLen(args[0]); err != nil {
		return nil, err
	}
	return ir.NewIterator(args[0]), nil
}

// hasNext reports whether an iterator has elements left.
func hasNext(args []ir.Value) (ir.Value, error) {
	it, err := toIterator(HasNext, args[0])
	if err != nil {
		return nil, err
	}
	n, err := seqLen(it.Source())
	if err != nil {
		return nil, err
	}
	return ir.Bool(it.Cursor() < n), nil
}

// next returns the element under the cursor and the advanced iterator, as a
// pair. Advancing past the end of the source is a hard error.
func next(args []ir.Value) (ir.Value, error) {
	it, err := toIterator(Next, args[0])
	if err != nil {
		return nil, err
	}
	n, err := seqLen(it.Source())
	if err != nil {
		return nil, err
	}
	if it.Cursor() >= n {
		return nil, errors.Wrapf(ir.ErrIndex, "iterator exhausted at cursor %d", it.Cursor())
	}
	el, err := seqAt(it.Source(), it.Cursor())
	if err != nil {
		return nil, err
	}
	return ir.NewTuple(el, it.Advanced()), nil
}
