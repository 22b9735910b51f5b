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
	"fmt"

	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir"
	"github.com/tapir-ml/tapir/kernels"
)

// mapSequence applies a callable to every element of a sequence in order.
// Both the pure and the VM-coupled paths of list_map go through here, so
// the iteration order is defined once.
func mapSequence(call kernels.Unary, xs ir.Value) (ir.Value, error) {
	n, err := seqLen(xs)
	if err != nil {
		return nil, err
	}
	elements := make([]ir.Value, n)
	for i := range n {
		el, err := seqAt(xs, i)
		if err != nil {
			return nil, err
		}
		if elements[i], err = call(el); err != nil {
			return nil, err
		}
	}
	return ir.NewList(elements...), nil
}

func listMap(args []ir.Value) (ir.Value, error) {
	call, err := pureUnary(args[0])
	if err != nil {
		return nil, err
	}
	return mapSequence(call, args[1])
}

func listMapVM(host Bridge, args []ir.Value) (ir.Value, error) {
	return mapSequence(hostUnary(host, args[0]), args[1])
}

// partial binds leading arguments of a callable and returns a new callable
// expecting the trailing ones.
func partial(args []ir.Value) (ir.Value, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(ir.ErrType, "partial expects a callable")
	}
	f, ok := args[0].(*ir.Func)
	if !ok {
		return nil, errors.Wrapf(ir.ErrUnsupported, "%s value cannot be called without a host", args[0].Kind())
	}
	bound := append([]ir.Value{}, args[1:]...)
	name := fmt.Sprintf("partial(%s)", f.Name())
	return ir.NewFunc(name, func(trailing []ir.Value) (ir.Value, error) {
		return f.Call(append(append([]ir.Value{}, bound...), trailing...))
	}), nil
}
