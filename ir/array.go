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

package ir

import "github.com/gx-org/backend/shape"

// Array is an n-dimensional numeric buffer with a shape. The concrete
// representations live in the kernels package; this interface is what the
// type model and the evaluators see.
type Array interface {
	Value

	// Shape of the array.
	Shape() *shape.Shape

	// ValueAt returns the element at a flat index as a scalar value.
	ValueAt(i int) Value

	// AtomValue returns the single value of an atomic (0-dimensional)
	// array. It returns an error if the array has more than one element.
	AtomValue() (Value, error)
}
