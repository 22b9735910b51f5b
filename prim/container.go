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

// seqLen returns the length of a sequence value: the number of elements of
// a list or tuple, or the length of axis 0 for an array.
func seqLen(v ir.Value) (int, error) {
	switch vT := v.(type) {
	case *ir.List:
		return vT.Len(), nil
	case *ir.Tuple:
		return vT.Len(), nil
	case ir.Array:
		dims := vT.Shape().AxisLengths
		if len(dims) == 0 {
			return 0, errors.Wrap(ir.ErrType, "atomic array is not a sequence")
		}
		return dims[0], nil
	default:
		return 0, errors.Wrapf(ir.ErrType, "%s value is not a sequence", v.Kind())
	}
}

// seqAt returns the i-th element of a sequence value, an axis-0 slice for
// an array.
func seqAt(v ir.Value, i int) (ir.Value, error) {
	switch vT := v.(type) {
	case *ir.List:
		return vT.At(i)
	case *ir.Tuple:
		return vT.At(i)
	case ir.Array:
		return kernels.Slice(vT, i)
	default:
		return nil, errors.Wrapf(ir.ErrType, "%s value is not a sequence", v.Kind())
	}
}

func toIndex(v ir.Value) (int, error) {
	i, ok := v.(ir.Int)
	if !ok {
		return 0, errors.Wrapf(ir.ErrType, "expected an integer index, got %s", v.Kind())
	}
	return int(i), nil
}

func toName(v ir.Value) (string, error) {
	name, ok := v.(ir.String)
	if !ok {
		return "", errors.Wrapf(ir.ErrType, "expected a name, got %s", v.Kind())
	}
	return string(name), nil
}

// getItem returns data[index] under the container's native indexing rules:
// integer positions for tuples, lists and arrays, field names for records.
func getItem(args []ir.Value) (ir.Value, error) {
	data, index := args[0], args[1]
	if rec, ok := data.(*ir.Record); ok {
		name, err := toName(index)
		if err != nil {
			return nil, err
		}
		val, err := rec.GetAttr(name)
		if err != nil {
			return nil, errors.Wrapf(ir.ErrKey, "no item %s in record", name)
		}
		return val, nil
	}
	i, err := toIndex(index)
	if err != nil {
		return nil, err
	}
	return seqAt(data, i)
}

func getItemVM(host Bridge, args []ir.Value) (ir.Value, error) {
	val, err := getItem(args)
	if err != nil {
		return nil, err
	}
	return host.Convert(val)
}

// setItem returns a new container with the element at index replaced. The
// input container is never mutated.
func setItem(args []ir.Value) (ir.Value, error) {
	data, index, val := args[0], args[1], args[2]
	if rec, ok := data.(*ir.Record); ok {
		name, err := toName(index)
		if err != nil {
			return nil, err
		}
		res, err := rec.SetAttr(name, val)
		if err != nil {
			return nil, errors.Wrapf(ir.ErrKey, "no item %s in record", name)
		}
		return res, nil
	}
	i, err := toIndex(index)
	if err != nil {
		return nil, err
	}
	switch dataT := data.(type) {
	case *ir.Tuple:
		if i < 0 || i >= dataT.Len() {
			return nil, errors.Wrapf(ir.ErrIndex, "tuple index %d out of range [0:%d]", i, dataT.Len())
		}
		elements := append([]ir.Value{}, dataT.Elements()...)
		elements[i] = val
		return ir.NewTuple(elements...), nil
	case *ir.List:
		if i < 0 || i >= dataT.Len() {
			return nil, errors.Wrapf(ir.ErrIndex, "list index %d out of range [0:%d]", i, dataT.Len())
		}
		elements := append([]ir.Value{}, dataT.Elements()...)
		elements[i] = val
		return ir.NewList(elements...), nil
	case ir.Array:
		return kernels.WithSlice(dataT, i, val)
	default:
		return nil, errors.Wrapf(ir.ErrType, "cannot set item on %s value", data.Kind())
	}
}

// getAttrVM returns an attribute of a value, lifted through the host.
func getAttrVM(host Bridge, args []ir.Value) (ir.Value, error) {
	att, err := ir.AsAttributed(args[0])
	if err != nil {
		return nil, err
	}
	name, err := toName(args[1])
	if err != nil {
		return nil, err
	}
	val, err := att.GetAttr(name)
	if err != nil {
		return nil, err
	}
	return host.Convert(val)
}

// setAttr returns a copy of a value with an attribute set. The input value
// is never mutated.
func setAttr(args []ir.Value) (ir.Value, error) {
	att, err := ir.AsAttributed(args[0])
	if err != nil {
		return nil, err
	}
	name, err := toName(args[1])
	if err != nil {
		return nil, err
	}
	return att.SetAttr(name, args[2])
}

// resolveVM looks a name up in a host-managed environment and lifts the
// result through the host. There is no pure version of this primitive.
func resolveVM(host Bridge, args []ir.Value) (ir.Value, error) {
	att, err := ir.AsAttributed(args[0])
	if err != nil {
		return nil, err
	}
	name, err := toName(args[1])
	if err != nil {
		return nil, err
	}
	val, err := att.GetAttr(name)
	if err != nil {
		return nil, errors.Wrapf(ir.ErrKey, "cannot resolve %s", name)
	}
	return host.Convert(val)
}
