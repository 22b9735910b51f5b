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

// List is a sequence of values. Homogeneity of the element types is not
// checked at construction: it is enforced by TypeOf when the type of the
// list is inferred.
type List struct {
	elements []Value
}

var _ Value = (*List)(nil)

// NewList returns a list of the given values.
func NewList(values ...Value) *List {
	return &List{elements: values}
}

// Kind of the value.
func (*List) Kind() kind.Kind { return kind.List }

// Len returns the number of elements in the list.
func (l *List) Len() int { return len(l.elements) }

// Elements stored in the list. The returned slice is shared with the list
// and must not be mutated.
func (l *List) Elements() []Value { return l.elements }

// At returns the element at the given position.
func (l *List) At(i int) (Value, error) {
	if i < 0 || i >= len(l.elements) {
		return nil, errors.Wrapf(ErrIndex, "list index %d out of range [0:%d]", i, len(l.elements))
	}
	return l.elements[i], nil
}

func (l *List) String() string {
	els := make([]string, len(l.elements))
	for i, el := range l.elements {
		els[i] = fmt.Sprint(el)
	}
	return fmt.Sprintf("[%s]", strings.Join(els, ", "))
}
