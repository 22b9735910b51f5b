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
	"github.com/tapir-ml/tapir/kernels"
)

func toArray(p Primitive, v ir.Value) (ir.Array, error) {
	a, ok := v.(ir.Array)
	if !ok {
		return nil, errors.Wrapf(ir.ErrType, "%s expects an array, got %s", p, v.Kind())
	}
	return a, nil
}

// dimsOf reads target dimensions from a tuple of integers.
func dimsOf(p Primitive, v ir.Value) ([]int, error) {
	tup, ok := v.(*ir.Tuple)
	if !ok {
		return nil, errors.Wrapf(ir.ErrType, "%s expects a tuple of dimensions, got %s", p, v.Kind())
	}
	dims := make([]int, tup.Len())
	for i, el := range tup.Elements() {
		d, ok := el.(ir.Int)
		if !ok {
			return nil, errors.Wrapf(ir.ErrType, "%s: dimension %d is a %s, not an integer", p, i, el.Kind())
		}
		if d < 0 {
			return nil, errors.Wrapf(ir.ErrShape, "%s: dimension %d is negative", p, i)
		}
		dims[i] = int(d)
	}
	return dims, nil
}

// shapeOf returns the shape of an array as a tuple of integers.
func shapeOf(args []ir.Value) (ir.Value, error) {
	a, err := toArray(Shape, args[0])
	if err != nil {
		return nil, err
	}
	dims := a.Shape().AxisLengths
	elements := make([]ir.Value, len(dims))
	for i, d := range dims {
		elements[i] = ir.Int(d)
	}
	return ir.NewTuple(elements...), nil
}

// distribute broadcasts a scalar or a lower-rank array to target dimensions.
func distribute(args []ir.Value) (ir.Value, error) {
	dims, err := dimsOf(Distribute, args[1])
	if err != nil {
		return nil, err
	}
	return kernels.Broadcast(args[0], dims)
}

// reshape returns an array with new dimensions and the same element count.
func reshape(args []ir.Value) (ir.Value, error) {
	a, err := toArray(Reshape, args[0])
	if err != nil {
		return nil, err
	}
	dims, err := dimsOf(Reshape, args[1])
	if err != nil {
		return nil, err
	}
	return kernels.Reshape(a, dims)
}

// dot contracts two arrays.
func dot(args []ir.Value) (ir.Value, error) {
	x, err := toArray(Dot, args[0])
	if err != nil {
		return nil, err
	}
	y, err := toArray(Dot, args[1])
	if err != nil {
		return nil, err
	}
	return kernels.Dot(x, y)
}

// Higher-order array primitives. The pure versions require a callable that
// can be invoked directly; the VM versions wrap the callable into a bridge
// call. Both delegate the iteration and fold mechanics to the kernels
// package.

func arrayMap(args []ir.Value) (ir.Value, error) {
	call, err := pureUnary(args[0])
	if err != nil {
		return nil, err
	}
	a, err := toArray(ArrayMap, args[1])
	if err != nil {
		return nil, err
	}
	return kernels.MapAxis0(call, a)
}

func arrayMapVM(host Bridge, args []ir.Value) (ir.Value, error) {
	a, err := toArray(ArrayMap, args[1])
	if err != nil {
		return nil, err
	}
	return kernels.MapAxis0(hostUnary(host, args[0]), a)
}

func scanArgs(p Primitive, args []ir.Value) (ir.Array, int, error) {
	a, err := toArray(p, args[2])
	if err != nil {
		return nil, 0, err
	}
	axis, err := toIndex(args[3])
	if err != nil {
		return nil, 0, err
	}
	return a, axis, nil
}

func arrayScan(args []ir.Value) (ir.Value, error) {
	call, err := pureBinary(args[0])
	if err != nil {
		return nil, err
	}
	a, axis, err := scanArgs(ArrayScan, args)
	if err != nil {
		return nil, err
	}
	return kernels.Scan(call, args[1], a, axis)
}

func arrayScanVM(host Bridge, args []ir.Value) (ir.Value, error) {
	a, axis, err := scanArgs(ArrayScan, args)
	if err != nil {
		return nil, err
	}
	return kernels.Scan(hostBinary(host, args[0]), args[1], a, axis)
}

func arrayReduce(args []ir.Value) (ir.Value, error) {
	call, err := pureBinary(args[0])
	if err != nil {
		return nil, err
	}
	a, axis, err := scanArgs(ArrayReduce, args)
	if err != nil {
		return nil, err
	}
	return kernels.Reduce(call, args[1], a, axis)
}

func arrayReduceVM(host Bridge, args []ir.Value) (ir.Value, error) {
	a, axis, err := scanArgs(ArrayReduce, args)
	if err != nil {
		return nil, err
	}
	return kernels.Reduce(hostBinary(host, args[0]), args[1], a, axis)
}
