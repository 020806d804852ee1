// Copyright 2026 Poiesic Systems
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


package storage

import "errors"

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a uniqueness violation on the external identifier.
	ErrDuplicate = errors.New("duplicate external identifier")

	// ErrDimensionMismatch indicates an embedding whose length does not match
	// the declared vector column dimension. This is a schema violation, not a
	// retryable condition.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
