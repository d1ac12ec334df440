package protocol

// StateValues is a point-in-time snapshot of a controller's dynamic state.
//
// It is embedded in several message kinds and is the anchor against which
// the flat convenience fields of a ControllerStatus are cross-checked.
// Optional fields use zero values to mean "absent": an ID of 0, a TextName
// of "".
type StateValues struct {
	// OpMode is the current operating mode of the controller.
	OpMode OpMode `json:"opMode,omitzero"`
	// JobMode is the current job mode of the controller.
	JobMode JobMode `json:"jobMode,omitzero"`
	// OperatorID is the unique ID of the logged-in user, if any.
	OperatorID ID `json:"operatorId,omitzero"`
	// JobCardID is the active job ID, if any.
	JobCardID TextName `json:"jobCardId,omitempty"`
	// MoldID names the set of mold data currently loaded, if any.
	MoldID TextName `json:"moldId,omitempty"`
}

// NewStateValues creates a snapshot with no operator, job card or mold
func NewStateValues(op OpMode, job JobMode) StateValues {
	return StateValues{OpMode: op, JobMode: job}
}

// Validate checks the local invariants of the snapshot
func (s StateValues) Validate() error {
	if err := checkOptionalTextNotEmpty("job_card_id", string(s.JobCardID)); err != nil {
		return err
	}
	return checkOptionalTextNotEmpty("mold_id", string(s.MoldID))
}
