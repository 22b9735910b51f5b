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

// Package kernels implements the array mechanics shared by the pure and the
// VM-coupled evaluators: construction, slicing, broadcast, reshape, dot, and
// the higher-order map, scan and reduce routines. Both evaluators call into
// this package so that iteration order and fold semantics are defined once.
package kernels

import (
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/fmt/fmtarray"
	"github.com/tapir-ml/tapir/ir"
	"github.com/tapir-ml/tapir/ir/kind"
)

// array is a multi-dimensional buffer storing its values flat, row-major.
type array[T dtype.GoDataType] struct {
	shape  shape.Shape
	values []T
}

var (
	_ ir.Array = (*array[float64])(nil)
	_ ir.Array = (*array[int64])(nil)
	_ ir.Array = (*array[bool])(nil)
)

func newArray[T dtype.GoDataType](values []T, dims []int) (*array[T], error) {
	sh := shape.Shape{
		DType:       dtype.Generic[T](),
		AxisLengths: dims,
	}
	if sh.Size() != len(values) {
		return nil, errors.Wrapf(ir.ErrShape, "cannot build array: %d values do not fit dimensions %v", len(values), dims)
	}
	return &array[T]{shape: sh, values: values}, nil
}

// NewFloat64 returns an array of 64-bit floats with the given dimensions.
// A nil dims builds an atomic (0-dimensional) array.
func NewFloat64(values []float64, dims []int) (ir.Array, error) {
	return newArray(values, dims)
}

// NewInt64 returns an array of 64-bit signed integers with the given
// dimensions.
func NewInt64(values []int64, dims []int) (ir.Array, error) {
	return newArray(values, dims)
}

// NewBool returns an array of booleans with the given dimensions.
func NewBool(values []bool, dims []int) (ir.Array, error) {
	return newArray(values, dims)
}

// Kind of the value.
func (a *array[T]) Kind() kind.Kind { return kind.Array }

// Shape of the array.
func (a *array[T]) Shape() *shape.Shape { return &a.shape }

// ValueAt returns the element at a flat index as a scalar value.
func (a *array[T]) ValueAt(i int) ir.Value {
	switch vals := any(a.values).(type) {
	case []float64:
		return ir.Float(vals[i])
	case []int64:
		return ir.Int(vals[i])
	case []bool:
		return ir.Bool(vals[i])
	}
	return nil
}

// AtomValue returns the value of an atomic array.
func (a *array[T]) AtomValue() (ir.Value, error) {
	if !a.shape.IsAtomic() {
		return nil, errors.Wrapf(ir.ErrShape, "array of shape %v is not atomic", a.shape.AxisLengths)
	}
	return a.ValueAt(0), nil
}

// String representation of the array.
func (a *array[T]) String() string {
	return fmtarray.Sprint(a.values, a.shape.AxisLengths)
}

func toArray[T dtype.GoDataType](a ir.Array) (*array[T], bool) {
	aT, ok := a.(*array[T])
	return aT, ok
}

func scalarKind(dt dtype.DataType) kind.Kind {
	switch dt {
	case dtype.Bool:
		return kind.Bool
	case dtype.Int64:
		return kind.Int
	case dtype.Float64:
		return kind.Float
	default:
		return kind.Invalid
	}
}

// FromValues builds an array from scalar values in row-major order. The
// element type is inferred from the first value; all values must have the
// same kind.
func FromValues(values []ir.Value, dims []int) (ir.Array, error) {
	if len(values) == 0 {
		return nil, errors.Wrap(ir.ErrType, "cannot infer the element type of an empty array")
	}
	switch values[0].Kind() {
	case kind.Float:
		return fromValues[float64](values, dims, func(v ir.Value) (float64, bool) {
			f, ok := v.(ir.Float)
			return float64(f), ok
		})
	case kind.Int:
		return fromValues[int64](values, dims, func(v ir.Value) (int64, bool) {
			i, ok := v.(ir.Int)
			return int64(i), ok
		})
	case kind.Bool:
		return fromValues[bool](values, dims, func(v ir.Value) (bool, bool) {
			b, ok := v.(ir.Bool)
			return bool(b), ok
		})
	default:
		return nil, errors.Wrapf(ir.ErrType, "cannot store %s values in an array", values[0].Kind())
	}
}

func fromValues[T dtype.GoDataType](values []ir.Value, dims []int, cast func(ir.Value) (T, bool)) (ir.Array, error) {
	vals := make([]T, len(values))
	for i, v := range values {
		val, ok := cast(v)
		if !ok {
			return nil, errors.Wrapf(ir.ErrType, "array element %d: got %s, want %s", i, v.Kind(), values[0].Kind())
		}
		vals[i] = val
	}
	return newArray(vals, dims)
}

// FromScalar lifts a scalar value into an atomic array.
func FromScalar(v ir.Value) (ir.Array, error) {
	return FromValues([]ir.Value{v}, nil)
}

// emptyArray builds an array with no elements: dims must contain a zero axis.
func emptyArray(dt dtype.DataType, dims []int) (ir.Array, error) {
	switch dt {
	case dtype.Float64:
		return newArray([]float64{}, dims)
	case dtype.Int64:
		return newArray([]int64{}, dims)
	case dtype.Bool:
		return newArray([]bool{}, dims)
	default:
		return nil, errors.Wrapf(ir.ErrType, "unsupported array element type %s", dt)
	}
}

func emptyLike(k kind.Kind, dims []int) (ir.Array, error) {
	switch k {
	case kind.Float:
		return newArray([]float64{}, dims)
	case kind.Int:
		return newArray([]int64{}, dims)
	case kind.Bool:
		return newArray([]bool{}, dims)
	default:
		return nil, errors.Wrapf(ir.ErrType, "cannot store %s values in an array", k)
	}
}
