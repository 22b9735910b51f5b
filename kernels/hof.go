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

package kernels

import (
	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir"
)

type (
	// Unary is a callable applied to one scalar element.
	Unary func(x ir.Value) (ir.Value, error)

	// Binary is a callable folding an accumulator with a scalar element.
	Binary func(x, y ir.Value) (ir.Value, error)
)

// axisSpans decomposes the dimensions around an axis. The array holds
// outer*inner 1-dimensional lines of the given length along that axis; the
// element k of the line (o, i) is at flat index o*length*inner + k*inner + i.
func axisSpans(dims []int, axis int) (outer, length, inner int) {
	outer, inner = 1, 1
	for _, d := range dims[:axis] {
		outer *= d
	}
	for _, d := range dims[axis+1:] {
		inner *= d
	}
	return outer, dims[axis], inner
}

func checkAxis(a ir.Array, axis int) ([]int, error) {
	dims := a.Shape().AxisLengths
	if len(dims) == 0 {
		return nil, errors.Wrap(ir.ErrShape, "expected an array of rank at least 1, got an atomic array")
	}
	if axis < 0 || axis >= len(dims) {
		return nil, errors.Wrapf(ir.ErrShape, "axis %d out of range for an array of rank %d", axis, len(dims))
	}
	return dims, nil
}

// MapAxis0 applies fn to every element of the array, one 1-dimensional line
// along axis 0 at a time, and composes the results back into the original
// dimensions. The element type of the result is inferred from what fn
// returns.
func MapAxis0(fn Unary, a ir.Array) (ir.Array, error) {
	dims, err := checkAxis(a, 0)
	if err != nil {
		return nil, err
	}
	_, length, inner := axisSpans(dims, 0)
	if length*inner == 0 {
		return a, nil
	}
	out := make([]ir.Value, length*inner)
	for i := range inner {
		for k := range length {
			idx := k*inner + i
			res, err := fn(a.ValueAt(idx))
			if err != nil {
				return nil, err
			}
			out[idx] = res
		}
	}
	return FromValues(out, dims)
}

// Scan computes an inclusive running fold along an axis: for every line,
// out[0] = fn(init, line[0]) and out[k] = fn(out[k-1], line[k]).
func Scan(fn Binary, init ir.Value, a ir.Array, axis int) (ir.Array, error) {
	dims, err := checkAxis(a, axis)
	if err != nil {
		return nil, err
	}
	outer, length, inner := axisSpans(dims, axis)
	if outer*length*inner == 0 {
		return a, nil
	}
	out := make([]ir.Value, outer*length*inner)
	for o := range outer {
		for i := range inner {
			acc := init
			for k := range length {
				idx := o*length*inner + k*inner + i
				acc, err = fn(acc, a.ValueAt(idx))
				if err != nil {
					return nil, err
				}
				out[idx] = acc
			}
		}
	}
	return FromValues(out, dims)
}

// Reduce left-folds every line along an axis starting from init, producing
// one aggregate per line. The reduced axis is removed from the result:
// reducing a rank-1 array yields an atomic array.
func Reduce(fn Binary, init ir.Value, a ir.Array, axis int) (ir.Array, error) {
	dims, err := checkAxis(a, axis)
	if err != nil {
		return nil, err
	}
	outer, length, inner := axisSpans(dims, axis)
	outDims := make([]int, 0, len(dims)-1)
	outDims = append(outDims, dims[:axis]...)
	outDims = append(outDims, dims[axis+1:]...)
	if len(outDims) == 0 {
		outDims = nil
	}
	out := make([]ir.Value, outer*inner)
	for o := range outer {
		for i := range inner {
			acc := init
			for k := range length {
				idx := o*length*inner + k*inner + i
				acc, err = fn(acc, a.ValueAt(idx))
				if err != nil {
					return nil, err
				}
			}
			out[o*inner+i] = acc
		}
	}
	return FromValues(out, outDims)
}
