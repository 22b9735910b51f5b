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

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tapir-ml/tapir/ir/kind"
)

// Tuple is a fixed-size sequence of values of possibly different types.
type Tuple struct {
	elements []Value
}

var _ Value = (*Tuple)(nil)

// NewTuple returns a tuple grouping the given values.
func NewTuple(values ...Value) *Tuple {
	return &Tuple{elements: values}
}

// Kind of the value.
func (*Tuple) Kind() kind.Kind { return kind.Tuple }

// Len returns the number of elements in the tuple.
func (t *Tuple) Len() int { return len(t.elements) }

// Elements stored in the tuple. The returned slice is shared with the tuple
// and must not be mutated.
func (t *Tuple) Elements() []Value { return t.elements }

// At returns the element at the given position.
func (t *Tuple) At(i int) (Value, error) {
	if i < 0 || i >= len(t.elements) {
		return nil, errors.Wrapf(ErrIndex, "tuple index %d out of range [0:%d]", i, len(t.elements))
	}
	return t.elements[i], nil
}

func (t *Tuple) String() string {
	els := make([]string, len(t.elements))
	for i, el := range t.elements {
		els[i] = fmt.Sprint(el)
	}
	return fmt.Sprintf("(%s)", strings.Join(els, ", "))
}
