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

// Bridge is the capability a host execution engine provides to VM-coupled
// implementations. It is always passed explicitly by the caller; the
// evaluator holds no ambient reference to a host.
type Bridge interface {
	// Invoke calls a callable value with the given arguments through the
	// host's calling convention.
	Invoke(fn ir.Value, args []ir.Value) (ir.Value, error)

	// Convert lifts a native result into the host's value representation.
	Convert(raw any) (ir.Value, error)
}

// pureUnary returns a kernel callable from a function value that can be
// invoked without host delegation.
func pureUnary(fn ir.Value) (kernels.Unary, error) {
	f, ok := fn.(*ir.Func)
	if !ok {
		return nil, errors.Wrapf(ir.ErrUnsupported, "%s value cannot be called without a host", fn.Kind())
	}
	return func(x ir.Value) (ir.Value, error) {
		return f.Call([]ir.Value{x})
	}, nil
}

func pureBinary(fn ir.Value) (kernels.Binary, error) {
	f, ok := fn.(*ir.Func)
	if !ok {
		return nil, errors.Wrapf(ir.ErrUnsupported, "%s value cannot be called without a host", fn.Kind())
	}
	return func(x, y ir.Value) (ir.Value, error) {
		return f.Call([]ir.Value{x, y})
	}, nil
}

// hostUnary returns a kernel callable delegating the call to the host.
func hostUnary(host Bridge, fn ir.Value) kernels.Unary {
	return func(x ir.Value) (ir.Value, error) {
		return host.Invoke(fn, []ir.Value{x})
	}
}

func hostBinary(host Bridge, fn ir.Value) kernels.Binary {
	return func(x, y ir.Value) (ir.Value, error) {
		return host.Invoke(fn, []ir.Value{x, y})
	}
}
