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

import "github.com/pkg/errors"

// Error taxonomy of the evaluator. Every failure raised by a primitive wraps
// one of these sentinels so that callers can classify it with errors.Is.
var (
	// ErrType reports a value of the wrong kind or shape.
	ErrType = errors.New("type error")

	// ErrIndex reports an out-of-range container or iterator access.
	ErrIndex = errors.New("index error")

	// ErrKey reports a missing key in a keyed container.
	ErrKey = errors.New("key error")

	// ErrAttribute reports an invalid attribute name.
	ErrAttribute = errors.New("attribute error")

	// ErrShape reports a broadcast, reshape or contraction dimension mismatch.
	ErrShape = errors.New("shape error")

	// ErrUnsupported reports a primitive invoked on the wrong evaluator.
	ErrUnsupported = errors.New("unsupported")
)
