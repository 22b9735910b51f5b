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

package fmt_test

import (
	"testing"

	tfmt "github.com/tapir-ml/tapir/base/fmt"
	"github.com/tapir-ml/tapir/ir"
)

func TestIndent(t *testing.T) {
	got := tfmt.Indent("a\nb\n")
	want := "\ta\n\tb\n"
	if got != want {
		t.Errorf("got %q but want %q", got, want)
	}
	got = tfmt.IndentSkip(1, "a\nb\n")
	want = "a\n\tb\n"
	if got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		x    any
		want string
	}{
		{x: nil, want: "nil"},
		{x: ir.NewTuple(ir.Int(1), ir.Int(2)), want: "(1, 2)"},
		{x: struct{}{}, want: "struct {}"},
		{
			x:    []ir.Value{ir.Int(1), ir.Bool(true)},
			want: "[]ir.Value{\n\t0: 1,\n\t1: true,\n}",
		},
	}
	for _, test := range tests {
		got := tfmt.String(test.x)
		if got != test.want {
			t.Errorf("String(%v) = %q but want %q", test.x, got, test.want)
		}
	}
}
