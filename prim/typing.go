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

// typeOf infers the structural type of its argument and returns it as a
// value.
func typeOf(args []ir.Value) (ir.Value, error) {
	typ, err := ir.TypeOf(args[0])
	if err != nil {
		return nil, err
	}
	return ir.NewTypeValue(typ), nil
}

// hasType checks a value against a type instance or a type class.
func hasType(args []ir.Value) (ir.Value, error) {
	model, ok := args[1].(*ir.TypeValue)
	if !ok {
		return nil, errors.Wrapf(ir.ErrType, "hastype expects a type or a type class, got %s", args[1].Kind())
	}
	ok, err := ir.HasType(args[0], model.Model())
	if err != nil {
		return nil, err
	}
	return ir.Bool(ok), nil
}

// returnValue is the identity primitive used for return nodes.
func returnValue(args []ir.Value) (ir.Value, error) {
	return args[0], nil
}
