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
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir"
)

type algebra interface {
	int64 | float64
}

// Slice returns the i-th slice of the array along axis 0.
func Slice(a ir.Array, i int) (ir.Array, error) {
	switch aT := a.(type) {
	case *array[float64]:
		return sliceArray(aT, i)
	case *array[int64]:
		return sliceArray(aT, i)
	case *array[bool]:
		return sliceArray(aT, i)
	}
	return nil, errors.Wrapf(ir.ErrType, "unsupported array representation %T", a)
}

func sliceArray[T dtype.GoDataType](a *array[T], i int) (ir.Array, error) {
	dims := a.shape.AxisLengths
	if len(dims) == 0 {
		return nil, errors.Wrap(ir.ErrShape, "cannot slice an atomic array")
	}
	if i < 0 || i >= dims[0] {
		return nil, errors.Wrapf(ir.ErrIndex, "array index %d out of range [0:%d]", i, dims[0])
	}
	outDims := dims[1:]
	stride := a.shape.Size() / dims[0]
	values := append([]T{}, a.values[i*stride:(i+1)*stride]...)
	return newArray(values, outDims)
}

// WithSlice returns a copy of the array with the i-th slice along axis 0
// replaced. The replacement is either a scalar of the array's element kind,
// filling the whole slice, or an array with the dimensions of the slice.
func WithSlice(a ir.Array, i int, v ir.Value) (ir.Array, error) {
	dims := a.Shape().AxisLengths
	if len(dims) == 0 {
		return nil, errors.Wrap(ir.ErrShape, "cannot set a slice of an atomic array")
	}
	if i < 0 || i >= dims[0] {
		return nil, errors.Wrapf(ir.ErrIndex, "array index %d out of range [0:%d]", i, dims[0])
	}
	stride := a.Shape().Size() / dims[0]
	slice, err := sliceValues(v, a.Shape().DType, stride, dims[1:])
	if err != nil {
		return nil, err
	}
	out := make([]ir.Value, a.Shape().Size())
	for idx := range out {
		out[idx] = a.ValueAt(idx)
	}
	copy(out[i*stride:(i+1)*stride], slice)
	return FromValues(out, dims)
}

func sliceValues(v ir.Value, dt dtype.DataType, stride int, sliceDims []int) ([]ir.Value, error) {
	if vA, ok := v.(ir.Array); ok {
		if !equalDims(vA.Shape().AxisLengths, sliceDims) {
			return nil, errors.Wrapf(ir.ErrShape, "cannot set slice: got dimensions %v, want %v", vA.Shape().AxisLengths, sliceDims)
		}
		if vA.Shape().DType != dt {
			return nil, errors.Wrapf(ir.ErrType, "cannot set slice: got element type %s, want %s", vA.Shape().DType, dt)
		}
		vals := make([]ir.Value, stride)
		for idx := range vals {
			vals[idx] = vA.ValueAt(idx)
		}
		return vals, nil
	}
	if v.Kind() != scalarKind(dt) {
		return nil, errors.Wrapf(ir.ErrType, "cannot fill a %s slice with a %s value", dt, v.Kind())
	}
	vals := make([]ir.Value, stride)
	for idx := range vals {
		vals[idx] = v
	}
	return vals, nil
}

func equalDims(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i, d := range x {
		if d != y[i] {
			return false
		}
	}
	return true
}

// Broadcast conforms a scalar or a lower-rank array to the target
// dimensions, aligning axes from the trailing end: a source axis must either
// match the target axis or have length 1.
func Broadcast(v ir.Value, dims []int) (ir.Array, error) {
	a, ok := v.(ir.Array)
	if !ok {
		sh := shape.Shape{AxisLengths: dims}
		if sh.Size() == 0 {
			return emptyLike(v.Kind(), dims)
		}
		out := make([]ir.Value, sh.Size())
		for i := range out {
			out[i] = v
		}
		return FromValues(out, dims)
	}
	src := a.Shape().AxisLengths
	if len(src) > len(dims) {
		return nil, errors.Wrapf(ir.ErrShape, "cannot broadcast dimensions %v to %v", src, dims)
	}
	for i := 1; i <= len(src); i++ {
		sd, dd := src[len(src)-i], dims[len(dims)-i]
		if sd != dd && sd != 1 {
			return nil, errors.Wrapf(ir.ErrShape, "cannot broadcast dimensions %v to %v", src, dims)
		}
	}
	outShape := shape.Shape{AxisLengths: dims}
	if outShape.Size() == 0 {
		return emptyArray(a.Shape().DType, dims)
	}
	out := make([]ir.Value, outShape.Size())
	coords := make([]int, len(dims))
	for idx := range out {
		flatToCoords(idx, dims, coords)
		out[idx] = a.ValueAt(sourceIndex(coords, src, dims))
	}
	return FromValues(out, dims)
}

func flatToCoords(idx int, dims []int, coords []int) {
	for i := len(dims) - 1; i >= 0; i-- {
		coords[i] = idx % dims[i]
		idx /= dims[i]
	}
}

func sourceIndex(coords []int, src, dims []int) int {
	idx := 0
	for i := 0; i < len(src); i++ {
		d := src[i]
		c := coords[len(dims)-len(src)+i]
		if d == 1 {
			c = 0
		}
		idx = idx*d + c
	}
	return idx
}

// Reshape returns an array with the same values and new dimensions. The
// element counts must match.
func Reshape(a ir.Array, dims []int) (ir.Array, error) {
	switch aT := a.(type) {
	case *array[float64]:
		return reshapeArray(aT, dims)
	case *array[int64]:
		return reshapeArray(aT, dims)
	case *array[bool]:
		return reshapeArray(aT, dims)
	}
	return nil, errors.Wrapf(ir.ErrType, "unsupported array representation %T", a)
}

func reshapeArray[T dtype.GoDataType](a *array[T], dims []int) (ir.Array, error) {
	target := shape.Shape{DType: a.shape.DType, AxisLengths: dims}
	if target.Size() != a.shape.Size() {
		return nil, errors.Wrapf(ir.ErrShape, "cannot reshape array of %d elements into dimensions %v", a.shape.Size(), dims)
	}
	return newArray(append([]T{}, a.values...), dims)
}

// Dot contracts two arrays of the same element type following dot-product
// semantics for ranks up to 2: vector-vector, matrix-vector, vector-matrix
// and matrix-matrix.
func Dot(x, y ir.Array) (ir.Array, error) {
	switch xT := x.(type) {
	case *array[float64]:
		yT, ok := toArray[float64](y)
		if !ok {
			return nil, errors.Wrapf(ir.ErrType, "cannot contract %s with %s arrays", x.Shape().DType, y.Shape().DType)
		}
		return dotArrays(xT, yT)
	case *array[int64]:
		yT, ok := toArray[int64](y)
		if !ok {
			return nil, errors.Wrapf(ir.ErrType, "cannot contract %s with %s arrays", x.Shape().DType, y.Shape().DType)
		}
		return dotArrays(xT, yT)
	}
	return nil, errors.Wrapf(ir.ErrType, "dot not supported for %s arrays", x.Shape().DType)
}

func dotArrays[T algebra](x, y *array[T]) (ir.Array, error) {
	xDims, yDims := x.shape.AxisLengths, y.shape.AxisLengths
	switch {
	case len(xDims) == 1 && len(yDims) == 1:
		if xDims[0] != yDims[0] {
			return nil, errors.Wrapf(ir.ErrShape, "cannot contract dimensions %v with %v", xDims, yDims)
		}
		var acc T
		for i, xi := range x.values {
			acc += xi * y.values[i]
		}
		return newArray([]T{acc}, nil)
	case len(xDims) == 2 && len(yDims) == 1:
		m, k := xDims[0], xDims[1]
		if k != yDims[0] {
			return nil, errors.Wrapf(ir.ErrShape, "cannot contract dimensions %v with %v", xDims, yDims)
		}
		out := make([]T, m)
		for i := range m {
			var acc T
			for l := range k {
				acc += x.values[i*k+l] * y.values[l]
			}
			out[i] = acc
		}
		return newArray(out, []int{m})
	case len(xDims) == 1 && len(yDims) == 2:
		k, n := yDims[0], yDims[1]
		if xDims[0] != k {
			return nil, errors.Wrapf(ir.ErrShape, "cannot contract dimensions %v with %v", xDims, yDims)
		}
		out := make([]T, n)
		for j := range n {
			var acc T
			for l := range k {
				acc += x.values[l] * y.values[l*n+j]
			}
			out[j] = acc
		}
		return newArray(out, []int{n})
	case len(xDims) == 2 && len(yDims) == 2:
		m, k := xDims[0], xDims[1]
		k2, n := yDims[0], yDims[1]
		if k != k2 {
			return nil, errors.Wrapf(ir.ErrShape, "cannot contract dimensions %v with %v", xDims, yDims)
		}
		out := make([]T, m*n)
		for i := range m {
			for j := range n {
				var acc T
				for l := range k {
					acc += x.values[i*k+l] * y.values[l*n+j]
				}
				out[i*n+j] = acc
			}
		}
		return newArray(out, []int{m, n})
	}
	return nil, errors.Wrapf(ir.ErrShape, "dot not supported for dimensions %v and %v", xDims, yDims)
}
