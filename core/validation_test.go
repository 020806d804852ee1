package core

import (
	"errors"
	"testing"
)

func TestValidatePaperRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *PaperRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &PaperRecord{
				PMID:            "38012345",
				Title:           "Dietary fiber and glycemic control",
				Abstract:        "We studied the effect of dietary fiber on glycemic control.",
				PublicationDate: "2024-03-15",
			},
			wantErr: nil,
		},
		{
			name: "valid record without publication date",
			record: &PaperRecord{
				PMID:     "38012346",
				Title:    "Vitamin D supplementation in type 2 diabetes",
				Abstract: "A randomized trial of vitamin D supplementation.",
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidPaperRecord,
		},
		{
			name: "empty pmid",
			record: &PaperRecord{
				Title:    "Some title",
				Abstract: "Some abstract",
			},
			wantErr: ErrEmptyPMID,
		},
		{
			name: "empty title",
			record: &PaperRecord{
				PMID:     "38012347",
				Abstract: "Some abstract",
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "empty abstract",
			record: &PaperRecord{
				PMID:  "38012348",
				Title: "Some title",
			},
			wantErr: ErrEmptyAbstract,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaperRecord(tt.record)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePaperRecord() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidatePaperRecord() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePaperRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaperRecordHasRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		record PaperRecord
		want   bool
	}{
		{
			name:   "title and abstract present",
			record: PaperRecord{PMID: "1", Title: "t", Abstract: "a"},
			want:   true,
		},
		{
			name:   "missing title",
			record: PaperRecord{PMID: "1", Abstract: "a"},
			want:   false,
		},
		{
			name:   "missing abstract",
			record: PaperRecord{PMID: "1", Title: "t"},
			want:   false,
		},
		{
			name:   "missing both",
			record: PaperRecord{PMID: "1"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.HasRequiredFields(); got != tt.want {
				t.Errorf("HasRequiredFields() = %v, want %v", got, tt.want)
			}
		})
	}
}
