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

// Package fmtarray formats flat array buffers into strings.
package fmtarray

import (
	"fmt"
	"strings"

	"github.com/gx-org/backend/dtype"
	"github.com/pkg/errors"
)

func formatValue[T dtype.GoDataType](x T) string {
	var fmtstr string
	switch any(x).(type) {
	case float32:
		fmtstr = "%.6f"
	case float64:
		fmtstr = "%.10f"
	default:
		return fmt.Sprint(x)
	}
	result := fmt.Sprintf(fmtstr, x)
	if strings.ContainsRune(result, '.') {
		// Trim trailing zeroes after the decimal point, and the point
		// itself if nothing is left after it.
		result = strings.TrimRight(result, "0")
		result = strings.TrimSuffix(result, ".")
	}
	return result
}

func writeRec[T dtype.GoDataType](w *strings.Builder, data []T, axes []int, indent string) {
	if len(axes) == 1 {
		els := make([]string, len(data))
		for i, x := range data {
			els[i] = formatValue(x)
		}
		fmt.Fprintf(w, "{%s}", strings.Join(els, ", "))
		return
	}
	if axes[0] == 0 {
		w.WriteString("{}")
		return
	}
	stride := len(data) / axes[0]
	w.WriteString("{\n")
	for i := range axes[0] {
		w.WriteString(indent + "\t")
		writeRec(w, data[i*stride:(i+1)*stride], axes[1:], indent+"\t")
		w.WriteString(",\n")
	}
	w.WriteString(indent + "}")
}

// Sprint returns a string representation of an array given its flat,
// row-major data and its axis lengths. An empty axes slice formats the
// buffer as a single scalar.
func Sprint[T dtype.GoDataType](data []T, axes []int) string {
	total := 1
	for _, size := range axes {
		total *= size
	}
	if total != len(data) {
		return errors.Errorf("len(data)=%d does not match axes %v=%d", len(data), axes, total).Error()
	}
	w := &strings.Builder{}
	for _, size := range axes {
		fmt.Fprintf(w, "[%d]", size)
	}
	w.WriteString(dtype.Generic[T]().String())
	if len(axes) == 0 {
		fmt.Fprintf(w, "(%s)", formatValue(data[0]))
		return w.String()
	}
	writeRec(w, data, axes, "")
	return w.String()
}
