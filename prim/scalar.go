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
	"math"

	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir"
)

// scalar is a numeric argument after shape checking: either an exact
// integer or a float.
type scalar struct {
	i       int64
	f       float64
	isFloat bool
}

func (s scalar) float() float64 {
	if s.isFloat {
		return s.f
	}
	return float64(s.i)
}

// toScalar checks that a value is scalar-shaped: a numeric scalar or an
// atomic (0-dimensional) numeric array.
func toScalar(v ir.Value) (scalar, error) {
	switch vT := v.(type) {
	case ir.Int:
		return scalar{i: int64(vT)}, nil
	case ir.Float:
		return scalar{f: float64(vT), isFloat: true}, nil
	case ir.Array:
		if !vT.Shape().IsAtomic() {
			return scalar{}, errors.Wrapf(ir.ErrType, "expected scalar, not array with shape %v", vT.Shape().AxisLengths)
		}
		atom, err := vT.AtomValue()
		if err != nil {
			return scalar{}, err
		}
		return toScalar(atom)
	default:
		return scalar{}, errors.Wrapf(ir.ErrType, "expected scalar, not %s", v.Kind())
	}
}

// arith applies a binary arithmetic operator. Two integer operands produce
// an integer; otherwise both operands are promoted to float.
func arith(x, y ir.Value, intOp func(x, y int64) (int64, error), floatOp func(x, y float64) float64) (ir.Value, error) {
	xS, err := toScalar(x)
	if err != nil {
		return nil, err
	}
	yS, err := toScalar(y)
	if err != nil {
		return nil, err
	}
	if !xS.isFloat && !yS.isFloat {
		res, err := intOp(xS.i, yS.i)
		if err != nil {
			return nil, err
		}
		return ir.Int(res), nil
	}
	return ir.Float(floatOp(xS.float(), yS.float())), nil
}

// compare applies a comparison operator. Integer operands compare exactly;
// mixed operands compare as floats.
func compare(x, y ir.Value, intOp func(x, y int64) bool, floatOp func(x, y float64) bool) (ir.Value, error) {
	xS, err := toScalar(x)
	if err != nil {
		return nil, err
	}
	yS, err := toScalar(y)
	if err != nil {
		return nil, err
	}
	if !xS.isFloat && !yS.isFloat {
		return ir.Bool(intOp(xS.i, yS.i)), nil
	}
	return ir.Bool(floatOp(xS.float(), yS.float())), nil
}

func scalarAdd(args []ir.Value) (ir.Value, error) {
	return arith(args[0], args[1],
		func(x, y int64) (int64, error) { return x + y, nil },
		func(x, y float64) float64 { return x + y })
}

func scalarSub(args []ir.Value) (ir.Value, error) {
	return arith(args[0], args[1],
		func(x, y int64) (int64, error) { return x - y, nil },
		func(x, y float64) float64 { return x - y })
}

func scalarMul(args []ir.Value) (ir.Value, error) {
	return arith(args[0], args[1],
		func(x, y int64) (int64, error) { return x * y, nil },
		func(x, y float64) float64 { return x * y })
}

func scalarDiv(args []ir.Value) (ir.Value, error) {
	return arith(args[0], args[1],
		func(x, y int64) (int64, error) {
			if y == 0 {
				return 0, errors.Errorf("integer division by zero")
			}
			return x / y, nil
		},
		func(x, y float64) float64 { return x / y })
}

func scalarMod(args []ir.Value) (ir.Value, error) {
	return arith(args[0], args[1],
		func(x, y int64) (int64, error) {
			if y == 0 {
				return 0, errors.Errorf("integer modulo by zero")
			}
			return x % y, nil
		},
		math.Mod)
}

func scalarPow(args []ir.Value) (ir.Value, error) {
	xS, err := toScalar(args[0])
	if err != nil {
		return nil, err
	}
	yS, err := toScalar(args[1])
	if err != nil {
		return nil, err
	}
	// An integer base with a non-negative integer exponent stays exact;
	// everything else goes through the float path.
	if !xS.isFloat && !yS.isFloat && yS.i >= 0 {
		return ir.Int(intPow(xS.i, yS.i)), nil
	}
	return ir.Float(math.Pow(xS.float(), yS.float())), nil
}

func intPow(x, y int64) int64 {
	res := int64(1)
	for ; y > 0; y >>= 1 {
		if y&1 == 1 {
			res *= x
		}
		x *= x
	}
	return res
}

func scalarUAdd(args []ir.Value) (ir.Value, error) {
	s, err := toScalar(args[0])
	if err != nil {
		return nil, err
	}
	if s.isFloat {
		return ir.Float(s.f), nil
	}
	return ir.Int(s.i), nil
}

func scalarUSub(args []ir.Value) (ir.Value, error) {
	s, err := toScalar(args[0])
	if err != nil {
		return nil, err
	}
	if s.isFloat {
		return ir.Float(-s.f), nil
	}
	return ir.Int(-s.i), nil
}

func scalarEq(args []ir.Value) (ir.Value, error) {
	return compare(args[0], args[1],
		func(x, y int64) bool { return x == y },
		func(x, y float64) bool { return x == y })
}

func scalarLt(args []ir.Value) (ir.Value, error) {
	return compare(args[0], args[1],
		func(x, y int64) bool { return x < y },
		func(x, y float64) bool { return x < y })
}

func scalarGt(args []ir.Value) (ir.Value, error) {
	return compare(args[0], args[1],
		func(x, y int64) bool { return x > y },
		func(x, y float64) bool { return x > y })
}

func scalarNe(args []ir.Value) (ir.Value, error) {
	return compare(args[0], args[1],
		func(x, y int64) bool { return x != y },
		func(x, y float64) bool { return x != y })
}

func scalarLe(args []ir.Value) (ir.Value, error) {
	return compare(args[0], args[1],
		func(x, y int64) bool { return x <= y },
		func(x, y float64) bool { return x <= y })
}

func scalarGe(args []ir.Value) (ir.Value, error) {
	return compare(args[0], args[1],
		func(x, y int64) bool { return x >= y },
		func(x, y float64) bool { return x >= y })
}

// boolNot negates a strict boolean: no truthiness coercion.
func boolNot(args []ir.Value) (ir.Value, error) {
	b, ok := args[0].(ir.Bool)
	if !ok {
		return nil, errors.Wrapf(ir.ErrType, "bool_not expects a boolean, got %s", args[0].Kind())
	}
	return !b, nil
}
