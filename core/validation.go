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


package core

import "fmt"

// ValidatePaperRecord validates a PaperRecord according to domain rules.
//
// Validation rules:
//   - PMID must not be empty
//   - Title must not be empty
//   - Abstract must not be empty
//
// NOT validated:
//   - PublicationDate (optional, free-form; many records carry no
//     structured date and the field is left empty)
func ValidatePaperRecord(record *PaperRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidPaperRecord)
	}

	if record.PMID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaperRecord, ErrEmptyPMID)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaperRecord, ErrEmptyTitle)
	}

	if record.Abstract == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaperRecord, ErrEmptyAbstract)
	}

	return nil
}
