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

// Package kind enumerates the kinds of values and types the evaluator operates over.
package kind

// Kind of a value or a type.
type Kind int

const (
	// Invalid is the zero kind.
	Invalid Kind = iota
	// Bool is the kind of booleans.
	Bool
	// Int is the kind of signed integers.
	Int
	// Float is the kind of floating point numbers.
	Float
	// String is the kind of strings.
	String
	// Tuple is the kind of fixed-size heterogeneous sequences.
	Tuple
	// List is the kind of homogeneous sequences.
	List
	// Array is the kind of n-dimensional numeric buffers.
	Array
	// Record is the kind of named-field containers.
	Record
	// Func is the kind of callables.
	Func
	// External is the kind of opaque host objects.
	External
	// Iterator is the kind of (cursor, source) iteration pairs.
	Iterator
	// Type is the kind of types used as values.
	Type
)

var kindNames = [...]string{
	Invalid:  "invalid",
	Bool:     "bool",
	Int:      "int",
	Float:    "float",
	String:   "string",
	Tuple:    "tuple",
	List:     "list",
	Array:    "array",
	Record:   "record",
	Func:     "func",
	External: "external",
	Iterator: "iterator",
	Type:     "type",
}

// String representation of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}
