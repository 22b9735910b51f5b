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

package prim_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir"
	"github.com/tapir-ml/tapir/kernels"
	"github.com/tapir-ml/tapir/prim"
)

// testBridge is a host stub: Invoke calls function values directly and
// Convert passes values through, counting both.
type testBridge struct {
	invoked   int
	converted int
}

func (b *testBridge) Invoke(fn ir.Value, args []ir.Value) (ir.Value, error) {
	b.invoked++
	f, ok := fn.(*ir.Func)
	if !ok {
		return nil, errors.Errorf("test bridge cannot invoke %s value", fn.Kind())
	}
	return f.Call(args)
}

func (b *testBridge) Convert(raw any) (ir.Value, error) {
	b.converted++
	v, ok := raw.(ir.Value)
	if !ok {
		return nil, errors.Errorf("test bridge cannot convert %T", raw)
	}
	return v, nil
}

func mustEntry(t *testing.T, p prim.Primitive) prim.Entry {
	t.Helper()
	reg, err := prim.Default()
	if err != nil {
		t.Fatal(err)
	}
	e, err := reg.Resolve(p)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func callPure(t *testing.T, p prim.Primitive, args ...ir.Value) ir.Value {
	t.Helper()
	res, err := mustEntry(t, p).Pure(args)
	if err != nil {
		t.Fatalf("%s: %v", p, err)
	}
	return res
}

func pureErr(t *testing.T, p prim.Primitive, args ...ir.Value) error {
	t.Helper()
	_, err := mustEntry(t, p).Pure(args)
	return err
}

func intArray(t *testing.T, values []int64, dims []int) ir.Array {
	t.Helper()
	a, err := kernels.NewInt64(values, dims)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func addFunc() *ir.Func {
	return ir.NewFunc("add", func(args []ir.Value) (ir.Value, error) {
		return args[0].(ir.Int) + args[1].(ir.Int), nil
	})
}

func doubleFunc() *ir.Func {
	return ir.NewFunc("double", func(args []ir.Value) (ir.Value, error) {
		return args[0].(ir.Int) * 2, nil
	})
}
