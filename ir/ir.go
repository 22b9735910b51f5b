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

// Package ir defines the value and type universe of the primitive evaluator.
//
// Values form a closed set of kinds (see the kind package): scalars, tuples,
// lists, arrays, records, callables, opaque host objects, iterators and types
// used as values. Types are structural: they are inferred from the shape of a
// value by TypeOf, never declared.
package ir

import (
	"fmt"

	"github.com/tapir-ml/tapir/ir/kind"
)

// Value is a runtime value the evaluator operates over.
type Value interface {
	fmt.Stringer

	// Kind of the value.
	Kind() kind.Kind
}
