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
	"github.com/tapir-ml/tapir/prim"
)

func TestIterDrain(t *testing.T) {
	want := []ir.Value{ir.Int(1), ir.Int(2), ir.Int(3)}
	it := callPure(t, prim.Iter, ir.NewList(want...))
	for i, w := range want {
		if got := callPure(t, prim.HasNext, it); got != ir.Bool(true) {
			t.Fatalf("step %d: hasnext = %s but want true", i, got)
		}
		pair := callPure(t, prim.Next, it).(*ir.Tuple)
		el, err := pair.At(0)
		if err != nil {
			t.Fatal(err)
		}
		if el != w {
			t.Errorf("step %d: next = %s but want %s", i, el, w)
		}
		if it, err = pair.At(1); err != nil {
			t.Fatal(err)
		}
	}
	if got := callPure(t, prim.HasNext, it); got != ir.Bool(false) {
		t.Errorf("hasnext on a drained iterator = %s but want false", got)
	}
	if err := pureErr(t, prim.Next, it); !errors.Is(err, ir.ErrIndex) {
		t.Errorf("got error %v but want an index error", err)
	}
}

func TestIterOverTuple(t *testing.T) {
	it := callPure(t, prim.Iter, ir.NewTuple(ir.Int(4), ir.Float(5)))
	pair := callPure(t, prim.Next, it).(*ir.Tuple)
	el, err := pair.At(0)
	if err != nil {
		t.Fatal(err)
	}
	if el != ir.Int(4) {
		t.Errorf("next = %s but want 4", el)
	}
}

func TestIterOverArray(t *testing.T) {
	a := intArray(t, []int64{1, 2, 3, 4}, []int{2, 2})
	it := callPure(t, prim.Iter, a)
	pair := callPure(t, prim.Next, it).(*ir.Tuple)
	el, err := pair.At(0)
	if err != nil {
		t.Fatal(err)
	}
	row, ok := el.(ir.Array)
	if !ok {
		t.Fatalf("next on an array iterator returned %T but want an array", el)
	}
	if row.ValueAt(0) != ir.Int(1) || row.ValueAt(1) != ir.Int(2) {
		t.Errorf("next = %s but want the first row", row)
	}
}

func TestIterNonSequence(t *testing.T) {
	if err := pureErr(t, prim.Iter, ir.Int(1)); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
	atom := intArray(t, []int64{1}, nil)
	if err := pureErr(t, prim.Iter, atom); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
	if err := pureErr(t, prim.Next, ir.Int(1)); !errors.Is(err, ir.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
}

func TestIterDoesNotMutate(t *testing.T) {
	it := callPure(t, prim.Iter, ir.NewList(ir.Int(1), ir.Int(2)))
	if _, err := mustEntry(t, prim.Next).Pure([]ir.Value{it}); err != nil {
		t.Fatal(err)
	}
	// Stepping returned a fresh iterator; the original still points at the
	// first element.
	pair := callPure(t, prim.Next, it).(*ir.Tuple)
	el, err := pair.At(0)
	if err != nil {
		t.Fatal(err)
	}
	if el != ir.Int(1) {
		t.Errorf("next after next on the same iterator = %s but want 1", el)
	}
}
