package protocol

import "fmt"

// JobCard holds information on a single production job.
type JobCard struct {
	// JobCardID is the unique job ID, which cannot be empty or all whitespace.
	JobCardID TextName `json:"jobCardId"`
	// MoldID names the set of mold data to load for this job.
	MoldID TextName `json:"moldId"`
	// Progress is the current production progress, which cannot exceed Total.
	Progress uint32 `json:"progress"`
	// Total is the total production count ordered.
	Total uint32 `json:"total"`
}

// NewJobCard creates a JobCard, rejecting empty IDs and a progress count
// larger than the total
func NewJobCard(jobCardID, moldID string, progress, total uint32) (JobCard, error) {
	id, err := NewTextName(jobCardID)
	if err != nil {
		return JobCard{}, NewEmptyFieldError("job_card_id")
	}
	mold, err := NewTextName(moldID)
	if err != nil {
		return JobCard{}, NewEmptyFieldError("mold_id")
	}
	jc := JobCard{JobCardID: id, MoldID: mold, Progress: progress, Total: total}
	if err := jc.Validate(); err != nil {
		return JobCard{}, err
	}
	return jc, nil
}

// Validate checks the local invariants of the job card
func (j JobCard) Validate() error {
	if err := checkTextNotEmpty("job_card_id", string(j.JobCardID)); err != nil {
		return err
	}
	if err := checkTextNotEmpty("mold_id", string(j.MoldID)); err != nil {
		return err
	}
	if j.Progress > j.Total {
		return NewConstraintError(fmt.Sprintf(
			"job card progress (%d) must not be larger than total (%d)", j.Progress, j.Total))
	}
	return nil
}
