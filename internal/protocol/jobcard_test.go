package protocol

import (
	"encoding/json"
	"testing"
)

func TestNewJobCard(t *testing.T) {
	tests := []struct {
		name      string
		jobCardID string
		moldID    string
		progress  uint32
		total     uint32
		wantErr   func(error) bool
	}{
		{name: "valid", jobCardID: "JOB-001", moldID: "M-17", progress: 100, total: 1000},
		{name: "complete", jobCardID: "JOB-002", moldID: "M-17", progress: 500, total: 500},
		{name: "empty job card id", jobCardID: "", moldID: "M-17", total: 1, wantErr: IsEmptyFieldError},
		{name: "blank mold id", jobCardID: "JOB-001", moldID: "  ", total: 1, wantErr: IsEmptyFieldError},
		{
			name: "progress larger than total", jobCardID: "JOB-001", moldID: "M-17",
			progress: 1000, total: 100, wantErr: IsConstraintError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jc, err := NewJobCard(tt.jobCardID, tt.moldID, tt.progress, tt.total)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("NewJobCard() error = nil, want error")
				}
				if !tt.wantErr(err) {
					t.Errorf("NewJobCard() error = %v, wrong class", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewJobCard() error = %v", err)
			}
			if err := jc.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestJobCardJSON(t *testing.T) {
	jc, err := NewJobCard("JOB-001", "M-17", 250, 1000)
	if err != nil {
		t.Fatalf("NewJobCard() error = %v", err)
	}

	data, err := json.Marshal(jc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"jobCardId":"JOB-001","moldId":"M-17","progress":250,"total":1000}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var decoded JobCard
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != jc {
		t.Errorf("round trip = %+v, want %+v", decoded, jc)
	}
}
