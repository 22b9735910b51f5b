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

// Record is a container of named fields with a fixed field set. Records are
// the first-class target of attribute primitives: setting an attribute
// rebuilds the record, it never mutates the receiver.
type Record struct {
	names  []string
	fields map[string]Value
}

var (
	_ Value      = (*Record)(nil)
	_ Attributed = (*Record)(nil)
)

// NewRecord returns a record with the given field order and values.
// Every name must have a value in fields.
func NewRecord(names []string, fields map[string]Value) *Record {
	return &Record{names: names, fields: fields}
}

// Kind of the value.
func (r *Record) Kind() kind.Kind { return kind.Record }

// FieldNames returns the field names in declaration order. The returned
// slice is shared with the record and must not be mutated.
func (r *Record) FieldNames() []string { return r.names }

// GetAttr returns the value of a field.
func (r *Record) GetAttr(name string) (Value, error) {
	val, ok := r.fields[name]
	if !ok {
		return nil, errors.Wrapf(ErrAttribute, "record has no field %s", name)
	}
	return val, nil
}

// SetAttr returns a copy of the record with the field set. The field must
// already exist: the field set of a record is closed.
func (r *Record) SetAttr(name string, val Value) (Value, error) {
	if _, ok := r.fields[name]; !ok {
		return nil, errors.Wrapf(ErrAttribute, "record has no field %s", name)
	}
	fields := make(map[string]Value, len(r.fields))
	for k, v := range r.fields {
		fields[k] = v
	}
	fields[name] = val
	return &Record{names: r.names, fields: fields}, nil
}

func (r *Record) String() string {
	els := make([]string, len(r.names))
	for i, name := range r.names {
		els[i] = fmt.Sprintf("%s: %s", name, r.fields[name])
	}
	return fmt.Sprintf("{%s}", strings.Join(els, ", "))
}
