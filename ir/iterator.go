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

	"github.com/tapir-ml/tapir/ir/kind"
)

// Iterator is a (cursor, source) pair over a sequence value. The cursor is
// in [0, len(source)]; the iterator is exhausted when the cursor equals the
// source length. Advancing returns a new iterator, the receiver is immutable.
type Iterator struct {
	cursor int
	source Value
}

var _ Value = (*Iterator)(nil)

// NewIterator returns an iterator over a sequence, with the cursor at the
// first element.
func NewIterator(source Value) *Iterator {
	return &Iterator{source: source}
}

// Kind of the value.
func (*Iterator) Kind() kind.Kind { return kind.Iterator }

// Cursor position of the iterator.
func (it *Iterator) Cursor() int { return it.cursor }

// Source sequence of the iterator.
func (it *Iterator) Source() Value { return it.source }

// Advanced returns a new iterator with the cursor moved one element forward.
func (it *Iterator) Advanced() *Iterator {
	return &Iterator{cursor: it.cursor + 1, source: it.source}
}

func (it *Iterator) String() string {
	return fmt.Sprintf("iterator(%d, %s)", it.cursor, it.source)
}
