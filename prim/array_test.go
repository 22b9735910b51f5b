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

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir"
	"github.com/tapir-ml/tapir/prim"
)

func dimsTuple(dims ...int) *ir.Tuple {
	elements := make([]ir.Value, len(dims))
	for i, d := range dims {
		elements[i] = ir.Int(d)
	}
	return ir.NewTuple(elements...)
}

func checkArray(t *testing.T, v ir.Value, want []int64, dims []int) {
	t.Helper()
	a, ok := v.(ir.Array)
	if !ok {
		t.Fatalf("got %T but want an array", v)
	}
	if diff := cmp.Diff(dims, a.Shape().AxisLengths); diff != "" {
		t.Fatalf("unexpected dimensions: %s", diff)
	}
	for i, w := range want {
		if got := a.ValueAt(i); got != ir.Int(w) {
			t.Errorf("element %d: got %s but want %d", i, got, w)
		}
	}
}

func TestShapePrim(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	got := callPure(t, prim.Shape, a)
	if got.String() != "(2, 3)" {
		t.Errorf("shape = %s but want (2, 3)", got)
	}
	atom := intArray(t, []int64{1}, nil)
	if got := callPure(t, prim.Shape, atom); got.String() != "()" {
		t.Errorf("shape of an atomic array = %s but want ()", got)
	}
	if err := pureErr(t, prim.Shape, ir.Int(1)); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
}

func TestDistributePrim(t *testing.T) {
	got := callPure(t, prim.Distribute, ir.Int(7), dimsTuple(2, 2))
	checkArray(t, got, []int64{7, 7, 7, 7}, []int{2, 2})

	row := intArray(t, []int64{1, 2}, []int{2})
	got = callPure(t, prim.Distribute, row, dimsTuple(3, 2))
	checkArray(t, got, []int64{1, 2, 1, 2, 1, 2}, []int{3, 2})

	if err := pureErr(t, prim.Distribute, ir.Int(1), ir.Int(2)); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
	if err := pureErr(t, prim.Distribute, ir.Int(1), dimsTuple(-1)); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
}

func TestReshapePrim(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3, 4}, []int{2, 2})
	got := callPure(t, prim.Reshape, a, dimsTuple(4))
	checkArray(t, got, []int64{1, 2, 3, 4}, []int{4})
	if err := pureErr(t, prim.Reshape, a, dimsTuple(3)); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
}

func TestDotPrim(t *testing.T) {
	x := intArray(t, []int64{1, 2}, []int{2})
	y := intArray(t, []int64{3, 4}, []int{2})
	got := callPure(t, prim.Dot, x, y).(ir.Array)
	atom, err := got.AtomValue()
	if err != nil {
		t.Fatal(err)
	}
	if atom != ir.Int(11) {
		t.Errorf("dot = %s but want 11", atom)
	}
	if err := pureErr(t, prim.Dot, x, ir.Int(1)); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
}

func TestArrayMapPure(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3}, []int{3})
	got := callPure(t, prim.ArrayMap, doubleFunc(), a)
	checkArray(t, got, []int64{2, 4, 6}, []int{3})
	// A non-function callable needs a host.
	if err := pureErr(t, prim.ArrayMap, ir.Int(1), a); !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("got error %v but want an unsupported error", err)
	}
}

func TestArrayMapVM(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3}, []int{3})
	host := &testBridge{}
	got, err := mustEntry(t, prim.ArrayMap).VM(host, []ir.Value{doubleFunc(), a})
	if err != nil {
		t.Fatal(err)
	}
	checkArray(t, got, []int64{2, 4, 6}, []int{3})
	// One bridge invocation per element.
	if host.invoked != 3 {
		t.Errorf("array_map invoked the host %d times but want 3", host.invoked)
	}
}

func TestArrayScanPure(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3}, []int{3})
	got := callPure(t, prim.ArrayScan, addFunc(), ir.Int(0), a, ir.Int(0))
	checkArray(t, got, []int64{1, 3, 6}, []int{3})
}

func TestArrayScanVM(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	host := &testBridge{}
	got, err := mustEntry(t, prim.ArrayScan).VM(host, []ir.Value{addFunc(), ir.Int(0), a, ir.Int(1)})
	if err != nil {
		t.Fatal(err)
	}
	checkArray(t, got, []int64{1, 3, 6, 4, 9, 15}, []int{2, 3})
	if host.invoked != 6 {
		t.Errorf("array_scan invoked the host %d times but want 6", host.invoked)
	}
}

func TestArrayReducePure(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3}, []int{3})
	got := callPure(t, prim.ArrayReduce, addFunc(), ir.Int(0), a, ir.Int(0)).(ir.Array)
	atom, err := got.AtomValue()
	if err != nil {
		t.Fatal(err)
	}
	if atom != ir.Int(6) {
		t.Errorf("array_reduce = %s but want 6", atom)
	}
}

func TestArrayReduceVM(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	host := &testBridge{}
	got, err := mustEntry(t, prim.ArrayReduce).VM(host, []ir.Value{addFunc(), ir.Int(0), a, ir.Int(1)})
	if err != nil {
		t.Fatal(err)
	}
	checkArray(t, got, []int64{6, 15}, []int{2})
	if host.invoked != 6 {
		t.Errorf("array_reduce invoked the host %d times but want 6", host.invoked)
	}
}

func TestArrayFoldBadAxis(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3}, []int{3})
	if err := pureErr(t, prim.ArrayReduce, addFunc(), ir.Int(0), a, ir.Int(2)); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
	if err := pureErr(t, prim.ArrayScan, addFunc(), ir.Int(0), a, ir.Float(0)); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
}
