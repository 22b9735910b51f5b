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

package kernels_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir"
	"github.com/tapir-ml/tapir/kernels"
)

func intArray(t *testing.T, values []int64, dims []int) ir.Array {
	t.Helper()
	a, err := kernels.NewInt64(values, dims)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func floatArray(t *testing.T, values []float64, dims []int) ir.Array {
	t.Helper()
	a, err := kernels.NewFloat64(values, dims)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func flatInts(t *testing.T, v ir.Value) []int64 {
	t.Helper()
	a, ok := v.(ir.Array)
	if !ok {
		t.Fatalf("got %T but want an array", v)
	}
	out := make([]int64, a.Shape().Size())
	for i := range out {
		el, ok := a.ValueAt(i).(ir.Int)
		if !ok {
			t.Fatalf("element %d: got %T but want an integer", i, a.ValueAt(i))
		}
		out[i] = int64(el)
	}
	return out
}

func checkInts(t *testing.T, v ir.Value, want []int64, dims []int) {
	t.Helper()
	a := v.(ir.Array)
	if diff := cmp.Diff(dims, a.Shape().AxisLengths); diff != "" {
		t.Fatalf("unexpected dimensions: %s", diff)
	}
	if diff := cmp.Diff(want, flatInts(t, v)); diff != "" {
		t.Errorf("unexpected values: %s", diff)
	}
}

func TestNewArrayShapeMismatch(t *testing.T) {
	if _, err := kernels.NewInt64([]int64{1, 2, 3}, []int{2, 2}); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
}

func TestAtomValue(t *testing.T) {
	atom := intArray(t, []int64{7}, nil)
	got, err := atom.AtomValue()
	if err != nil {
		t.Fatal(err)
	}
	if got != ir.Int(7) {
		t.Errorf("AtomValue() = %s but want 7", got)
	}
	vec := intArray(t, []int64{1, 2}, []int{2})
	if _, err := vec.AtomValue(); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
}

func TestFromValues(t *testing.T) {
	a, err := kernels.FromValues([]ir.Value{ir.Int(1), ir.Int(2)}, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, a, []int64{1, 2}, []int{2})
	if _, err := kernels.FromValues([]ir.Value{ir.Int(1), ir.Float(2)}, []int{2}); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
	if _, err := kernels.FromValues([]ir.Value{ir.String("x")}, []int{1}); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
}

func TestFromScalar(t *testing.T) {
	a, err := kernels.FromScalar(ir.Float(2.5))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Shape().IsAtomic() {
		t.Fatalf("FromScalar returned shape %v but want an atomic array", a.Shape().AxisLengths)
	}
	atom, err := a.AtomValue()
	if err != nil {
		t.Fatal(err)
	}
	if atom != ir.Float(2.5) {
		t.Errorf("AtomValue() = %s but want 2.5", atom)
	}
}

func TestBoolArray(t *testing.T) {
	a, err := kernels.NewBool([]bool{true, false, true}, []int{3})
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, true}
	for i, w := range want {
		if got := a.ValueAt(i); got != ir.Bool(w) {
			t.Errorf("element %d: got %s but want %v", i, got, w)
		}
	}
}

func TestSlice(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	row, err := kernels.Slice(a, 1)
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, row, []int64{4, 5, 6}, []int{3})
	if _, err := kernels.Slice(a, 2); !errors.Is(err, ir.ErrIndex) {
		t.Errorf("got error %v but want an index error", err)
	}
}

func TestWithSlice(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	row := intArray(t, []int64{7, 8, 9}, []int{3})
	res, err := kernels.WithSlice(a, 0, row)
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, res, []int64{7, 8, 9, 4, 5, 6}, []int{2, 3})
	// The input array is unchanged.
	checkInts(t, a, []int64{1, 2, 3, 4, 5, 6}, []int{2, 3})

	filled, err := kernels.WithSlice(a, 1, ir.Int(0))
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, filled, []int64{1, 2, 3, 0, 0, 0}, []int{2, 3})

	if _, err := kernels.WithSlice(a, 0, ir.Float(1)); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
	badRow := intArray(t, []int64{1, 2}, []int{2})
	if _, err := kernels.WithSlice(a, 0, badRow); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
}

func TestBroadcast(t *testing.T) {
	scalar, err := kernels.Broadcast(ir.Int(3), []int{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, scalar, []int64{3, 3, 3, 3}, []int{2, 2})

	row := intArray(t, []int64{1, 2, 3}, []int{3})
	res, err := kernels.Broadcast(row, []int{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, res, []int64{1, 2, 3, 1, 2, 3}, []int{2, 3})

	col := intArray(t, []int64{1, 2}, []int{2, 1})
	res, err = kernels.Broadcast(col, []int{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, res, []int64{1, 1, 1, 2, 2, 2}, []int{2, 3})

	if _, err := kernels.Broadcast(row, []int{2, 2}); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
	if _, err := kernels.Broadcast(intArray(t, []int64{1, 2, 3, 4}, []int{2, 2}), []int{2}); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
}

func TestBroadcastEmpty(t *testing.T) {
	scalar, err := kernels.Broadcast(ir.Int(3), []int{0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := scalar.String(); got != "[0][2]int64{}" {
		t.Errorf("broadcast to an empty shape = %q but want [0][2]int64{}", got)
	}

	row := floatArray(t, []float64{1, 2, 3}, []int{3})
	res, err := kernels.Broadcast(row, []int{0, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Shape().Size(); got != 0 {
		t.Errorf("broadcast to an empty shape has %d elements", got)
	}
	if got := res.String(); got != "[0][3]float64{}" {
		t.Errorf("broadcast to an empty shape = %q but want [0][3]float64{}", got)
	}

	if _, err := kernels.Broadcast(ir.String("x"), []int{0}); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
}

func TestReshape(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	res, err := kernels.Reshape(a, []int{3, 2})
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, res, []int64{1, 2, 3, 4, 5, 6}, []int{3, 2})
	if _, err := kernels.Reshape(a, []int{4}); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
}

func TestDot(t *testing.T) {
	x := intArray(t, []int64{1, 2, 3}, []int{3})
	y := intArray(t, []int64{4, 5, 6}, []int{3})
	res, err := kernels.Dot(x, y)
	if err != nil {
		t.Fatal(err)
	}
	atom, err := res.AtomValue()
	if err != nil {
		t.Fatal(err)
	}
	if atom != ir.Int(32) {
		t.Errorf("dot = %s but want 32", atom)
	}

	m := intArray(t, []int64{1, 2, 3, 4}, []int{2, 2})
	n := intArray(t, []int64{5, 6, 7, 8}, []int{2, 2})
	mm, err := kernels.Dot(m, n)
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, mm, []int64{19, 22, 43, 50}, []int{2, 2})

	mv, err := kernels.Dot(m, intArray(t, []int64{1, 1}, []int{2}))
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, mv, []int64{3, 7}, []int{2})

	vm, err := kernels.Dot(intArray(t, []int64{1, 1}, []int{2}), m)
	if err != nil {
		t.Fatal(err)
	}
	checkInts(t, vm, []int64{4, 6}, []int{2})

	if _, err := kernels.Dot(x, intArray(t, []int64{1, 2}, []int{2})); !errors.Is(err, ir.ErrShape) {
		t.Errorf("got error %v but want a shape error", err)
	}
	if _, err := kernels.Dot(x, floatArray(t, []float64{1, 2, 3}, []int{3})); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
}
