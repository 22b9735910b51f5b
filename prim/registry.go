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

// Package prim implements the primitives of the intermediate representation
// and their registry.
//
// Every primitive has up to two coordinated implementations: a pure one,
// evaluating already resolved values with no host dependency, and a
// VM-coupled one, which can invoke callable arguments back through a host
// Bridge. Primitives registered through the dual path share a single
// implementation for both. Higher-order primitives delegate their iteration
// and fold mechanics to the kernels package on both paths, so that only the
// invocation of the callable differs between them.
package prim

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
	tfmt "github.com/tapir-ml/tapir/base/fmt"
	"github.com/tapir-ml/tapir/ir"
	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
)

type (
	// PureFunc evaluates a primitive over resolved argument values.
	PureFunc func(args []ir.Value) (ir.Value, error)

	// VMFunc evaluates a primitive with access to a host bridge.
	VMFunc func(host Bridge, args []ir.Value) (ir.Value, error)

	// Entry is the pair of implementations registered for a primitive.
	Entry struct {
		prim  Primitive
		arity int // negative for variadic primitives.
		pure  PureFunc
		vm    VMFunc
	}

	// Registry maps primitives to their implementations. It is built once
	// and read-only thereafter: concurrent reads need no locking.
	Registry struct {
		entries map[Primitive]Entry
	}
)

// Pure evaluates the primitive with no host dependency. It fails with an
// unsupported error if the primitive requires a host.
func (e Entry) Pure(args []ir.Value) (ir.Value, error) {
	if e.pure == nil {
		return nil, errors.Wrapf(ir.ErrUnsupported, "%s has no pure implementation", e.prim)
	}
	if err := e.checkArity(len(args)); err != nil {
		return nil, err
	}
	return e.pure(args)
}

// VM evaluates the primitive with a host bridge. It fails with an
// unsupported error if the primitive has no VM-coupled implementation.
func (e Entry) VM(host Bridge, args []ir.Value) (ir.Value, error) {
	if e.vm == nil {
		return nil, errors.Wrapf(ir.ErrUnsupported, "%s has no VM implementation", e.prim)
	}
	if err := e.checkArity(len(args)); err != nil {
		return nil, err
	}
	return e.vm(host, args)
}

// HasPure reports whether the primitive can be evaluated without a host.
func (e Entry) HasPure() bool { return e.pure != nil }

// HasVM reports whether the primitive has a VM-coupled implementation.
func (e Entry) HasVM() bool { return e.vm != nil }

// String lists the implementation paths of the entry.
func (e Entry) String() string {
	paths := make([]string, 0, 2)
	if e.pure != nil {
		paths = append(paths, "pure")
	}
	if e.vm != nil {
		paths = append(paths, "vm")
	}
	return strings.Join(paths, "|")
}

func (e Entry) checkArity(n int) error {
	if e.arity >= 0 && n != e.arity {
		return errors.Wrapf(ir.ErrType, "%s expects %d arguments, got %d", e.prim, e.arity, n)
	}
	return nil
}

func (r *Registry) entry(p Primitive, arity int) Entry {
	e, ok := r.entries[p]
	if !ok {
		e = Entry{prim: p, arity: arity}
	}
	return e
}

// register installs the same implementation for both the pure and the
// VM-coupled path: the VM version ignores the host.
func (r *Registry) register(p Primitive, arity int, fn PureFunc) {
	r.registerPure(p, arity, fn)
	r.registerVM(p, arity, func(_ Bridge, args []ir.Value) (ir.Value, error) {
		return fn(args)
	})
}

func (r *Registry) registerPure(p Primitive, arity int, fn PureFunc) {
	e := r.entry(p, arity)
	e.pure = fn
	r.entries[p] = e
}

func (r *Registry) registerVM(p Primitive, arity int, fn VMFunc) {
	e := r.entry(p, arity)
	e.vm = fn
	r.entries[p] = e
}

func (r *Registry) validate() error {
	var errs error
	for _, p := range r.Primitives() {
		e := r.entries[p]
		if e.pure == nil && e.vm == nil {
			errs = multierr.Append(errs, errors.Errorf("primitive %s has no implementation", p))
		}
	}
	return errs
}

// New builds the registry of all primitives.
func New() (*Registry, error) {
	r := &Registry{entries: map[Primitive]Entry{}}

	r.register(ScalarAdd, 2, scalarAdd)
	r.register(ScalarSub, 2, scalarSub)
	r.register(ScalarMul, 2, scalarMul)
	r.register(ScalarDiv, 2, scalarDiv)
	r.register(ScalarMod, 2, scalarMod)
	r.register(ScalarPow, 2, scalarPow)
	r.register(ScalarUAdd, 1, scalarUAdd)
	r.register(ScalarUSub, 1, scalarUSub)
	r.register(ScalarEq, 2, scalarEq)
	r.register(ScalarLt, 2, scalarLt)
	r.register(ScalarGt, 2, scalarGt)
	r.register(ScalarNe, 2, scalarNe)
	r.register(ScalarLe, 2, scalarLe)
	r.register(ScalarGe, 2, scalarGe)

	r.register(BoolNot, 1, boolNot)
	r.register(TypeOf, 1, typeOf)
	r.register(HasType, 2, hasType)

	r.register(ConsTuple, 2, consTuple)
	r.register(Head, 1, head)
	r.register(Tail, 1, tail)
	r.registerPure(GetItem, 2, getItem)
	r.registerVM(GetItem, 2, getItemVM)
	r.register(SetItem, 3, setItem)
	r.registerVM(GetAttr, 2, getAttrVM)
	r.register(SetAttr, 3, setAttr)

	r.register(Shape, 1, shapeOf)
	r.register(Distribute, 2, distribute)
	r.register(Reshape, 2, reshape)
	r.register(Dot, 2, dot)
	r.registerPure(ArrayMap, 2, arrayMap)
	r.registerVM(ArrayMap, 2, arrayMapVM)
	r.registerPure(ArrayScan, 4, arrayScan)
	r.registerVM(ArrayScan, 4, arrayScanVM)
	r.registerPure(ArrayReduce, 4, arrayReduce)
	r.registerVM(ArrayReduce, 4, arrayReduceVM)

	r.register(Return, 1, returnValue)
	r.registerPure(ListMap, 2, listMap)
	r.registerVM(ListMap, 2, listMapVM)
	r.registerPure(Partial, -1, partial)
	r.registerVM(Resolve, 2, resolveVM)

	r.register(Iter, 1, iterValue)
	r.register(HasNext, 1, hasNext)
	r.register(Next, 1, next)

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve returns the implementations registered for a primitive.
func (r *Registry) Resolve(p Primitive) (Entry, error) {
	e, ok := r.entries[p]
	if !ok {
		return Entry{}, errors.Wrapf(ir.ErrUnsupported, "unknown primitive %s", p)
	}
	return e, nil
}

// Primitives returns the sorted identifiers of all registered primitives.
func (r *Registry) Primitives() []Primitive {
	ps := maps.Keys(r.entries)
	slices.Sort(ps)
	return ps
}

// String returns a listing of the registry for debugging.
func (r *Registry) String() string {
	var s strings.Builder
	s.WriteString("registry{\n")
	for _, p := range r.Primitives() {
		s.WriteString(tfmt.Indent(fmt.Sprintf("%s: %s,\n", p, tfmt.String(r.entries[p]))))
	}
	s.WriteString("}")
	return s.String()
}

var defaultRegistry = sync.OnceValues(New)

// Default returns the process-wide registry, built on first use.
func Default() (*Registry, error) {
	return defaultRegistry()
}
