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

// Primitive identifies an atomic operation of the intermediate
// representation.
type Primitive string

// Scalar arithmetic and comparison primitives.
const (
	ScalarAdd  Primitive = "scalar_add"
	ScalarSub  Primitive = "scalar_sub"
	ScalarMul  Primitive = "scalar_mul"
	ScalarDiv  Primitive = "scalar_div"
	ScalarMod  Primitive = "scalar_mod"
	ScalarPow  Primitive = "scalar_pow"
	ScalarUAdd Primitive = "scalar_uadd"
	ScalarUSub Primitive = "scalar_usub"
	ScalarEq   Primitive = "scalar_eq"
	ScalarLt   Primitive = "scalar_lt"
	ScalarGt   Primitive = "scalar_gt"
	ScalarNe   Primitive = "scalar_ne"
	ScalarLe   Primitive = "scalar_le"
	ScalarGe   Primitive = "scalar_ge"
)

// Boolean and type inspection primitives.
const (
	BoolNot Primitive = "bool_not"
	TypeOf  Primitive = "typeof"
	HasType Primitive = "hastype"
)

// Tuple and container primitives.
const (
	ConsTuple Primitive = "cons_tuple"
	Head      Primitive = "head"
	Tail      Primitive = "tail"
	GetItem   Primitive = "getitem"
	SetItem   Primitive = "setitem"
	GetAttr   Primitive = "getattr"
	SetAttr   Primitive = "setattr"
)

// Array primitives.
const (
	Shape       Primitive = "shape"
	Distribute  Primitive = "distribute"
	Reshape     Primitive = "reshape"
	Dot         Primitive = "dot"
	ArrayMap    Primitive = "array_map"
	ArrayScan   Primitive = "array_scan"
	ArrayReduce Primitive = "array_reduce"
)

// Function and list primitives.
const (
	Return  Primitive = "return"
	ListMap Primitive = "list_map"
	Partial Primitive = "partial"
	Resolve Primitive = "resolve"
)

// Iteration protocol primitives.
const (
	Iter    Primitive = "iter"
	HasNext Primitive = "hasnext"
	Next    Primitive = "next"
)

func (p Primitive) String() string { return string(p) }
