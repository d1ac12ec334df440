package protocol

import "fmt"

// checkRequiredID rejects the zero ID used as a required field
func checkRequiredID(field string, id ID) error {
	if id == 0 {
		return NewInvalidFieldError(field, "0", "ID value cannot be zero")
	}
	return nil
}

// Validate checks the message's business rules
func (m *ControllerAction) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	return m.MessageOptions.Validate()
}

// Validate checks the message's business rules
func (m *RequestControllersList) Validate() error {
	return m.MessageOptions.Validate()
}

// Validate checks every controller record in the collection
func (m *ControllersList) Validate() error {
	for _, c := range m.Data {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return m.MessageOptions.Validate()
}

// Validate checks the status update's business rules and its
// cross-structure consistency.
//
// Checks run in field declaration order and the first failure wins. When
// the full Controller record is present, the per-event delta fields must be
// absent and every flat field must agree with the record; independently,
// every flat field with a counterpart in the State snapshot must agree with
// the snapshot.
func (m *ControllerStatus) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	if err := checkOptionalTextNotEmpty("display_name", string(m.DisplayName)); err != nil {
		return err
	}
	if name, ok := m.OperatorName.Value(); ok {
		if err := checkTextNotEmpty("operator_name", string(name)); err != nil {
			return err
		}
	}
	if jc, ok := m.JobCardID.Value(); ok {
		if err := checkTextNotEmpty("job_card_id", string(jc)); err != nil {
			return err
		}
	}
	if mold, ok := m.MoldID.Value(); ok {
		if err := checkTextNotEmpty("mold_id", string(mold)); err != nil {
			return err
		}
	}

	if m.Controller != nil {
		if err := m.checkAgainstController(m.Controller); err != nil {
			return err
		}
	}
	if err := m.checkAgainstState(); err != nil {
		return err
	}

	if err := m.State.Validate(); err != nil {
		return err
	}
	if m.Alarm != nil {
		if err := m.Alarm.Validate("alarm"); err != nil {
			return err
		}
	}
	if m.Audit != nil {
		if err := m.Audit.Validate("audit"); err != nil {
			return err
		}
	}
	if m.Variable != nil {
		if err := m.Variable.Validate("variable"); err != nil {
			return err
		}
	}
	if m.Controller != nil {
		if err := m.Controller.Validate(); err != nil {
			return err
		}
	}
	return m.MessageOptions.Validate()
}

// checkAgainstController verifies that no per-event delta field accompanies
// a full controller record, and that the flat fields agree with the record.
// A cleared tri-state field agrees only with an empty counterpart.
func (m *ControllerStatus) checkAgainstController(c *Controller) error {
	switch {
	case m.IsDisconnected != nil:
		return NewConstraintError("field isDisconnected must not be present when the full Controller record is given")
	case m.Alarm != nil:
		return NewConstraintError("field alarm must not be present when the full Controller record is given")
	case m.Audit != nil:
		return NewConstraintError("field audit must not be present when the full Controller record is given")
	case m.Variable != nil:
		return NewConstraintError("field variable must not be present when the full Controller record is given")
	}

	if m.DisplayName != "" && m.DisplayName != c.DisplayName {
		return NewInconsistentFieldError("display_name")
	}
	if m.OpMode != OpModeUnknown && m.OpMode != c.OpMode {
		return NewInconsistentFieldError("op_mode")
	}
	if m.JobMode != JobModeUnknown && m.JobMode != c.JobMode {
		return NewInconsistentFieldError("job_mode")
	}

	var opID ID
	var opName TextName
	if c.Operator != nil {
		opID = c.Operator.OperatorID
		opName = c.Operator.OperatorName
	}
	if !m.OperatorID.IsAbsent() {
		id, _ := m.OperatorID.Value()
		if id != opID {
			return NewInconsistentFieldError("operator_id")
		}
	}
	if !m.OperatorName.IsAbsent() {
		name, _ := m.OperatorName.Value()
		if name != opName {
			return NewInconsistentFieldError("operator_name")
		}
	}
	if !m.JobCardID.IsAbsent() {
		jc, _ := m.JobCardID.Value()
		if jc != c.JobCardID {
			return NewInconsistentFieldError("job_card_id")
		}
	}
	if !m.MoldID.IsAbsent() {
		mold, _ := m.MoldID.Value()
		if mold != c.MoldID {
			return NewInconsistentFieldError("mold_id")
		}
	}
	return nil
}

// checkAgainstState verifies that the flat fields agree with the State
// snapshot. A cleared tri-state field agrees only with an empty
// counterpart.
func (m *ControllerStatus) checkAgainstState() error {
	if m.OpMode != OpModeUnknown && m.OpMode != m.State.OpMode {
		return NewInconsistentStateError("op_mode")
	}
	if m.JobMode != JobModeUnknown && m.JobMode != m.State.JobMode {
		return NewInconsistentStateError("job_mode")
	}
	if !m.OperatorID.IsAbsent() {
		id, _ := m.OperatorID.Value()
		if id != m.State.OperatorID {
			return NewInconsistentStateError("operator_id")
		}
	}
	if !m.JobCardID.IsAbsent() {
		jc, _ := m.JobCardID.Value()
		if jc != m.State.JobCardID {
			return NewInconsistentStateError("job_card_id")
		}
	}
	if !m.MoldID.IsAbsent() {
		mold, _ := m.MoldID.Value()
		if mold != m.State.MoldID {
			return NewInconsistentStateError("mold_id")
		}
	}
	return nil
}

// Validate checks the cycle data's business rules
func (m *CycleData) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	for key, value := range m.Data {
		if err := checkTextNotEmpty("data.key", key); err != nil {
			return err
		}
		if err := checkFloat(key, value); err != nil {
			return err
		}
	}
	if err := m.StateValues.Validate(); err != nil {
		return err
	}
	return m.MessageOptions.Validate()
}

// Validate checks the message's business rules
func (m *RequestJobCardsList) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	return m.MessageOptions.Validate()
}

// Validate checks every job card in the collection, which cannot be empty
func (m *JobCardsList) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	if len(m.Data) == 0 {
		return NewConstraintError("job cards list cannot be empty")
	}
	for _, jc := range m.Data {
		if err := jc.Validate(); err != nil {
			return err
		}
	}
	return m.MessageOptions.Validate()
}

// Validate checks the join request's business rules
func (m *Join) Validate() error {
	if err := checkOptionalTextNotEmpty("org_id", string(m.OrgID)); err != nil {
		return err
	}
	if err := checkTextNotEmpty("version", m.Version); err != nil {
		return err
	}
	if err := checkTextNotEmpty("password", m.Password); err != nil {
		return err
	}
	if m.Language == LanguageUnknown {
		return NewInvalidFieldError("language", "Unknown", "Language cannot be Unknown")
	}
	return m.MessageOptions.Validate()
}

// Validate checks the message's business rules
func (m *JoinResponse) Validate() error {
	return m.MessageOptions.Validate()
}

// Validate checks the message's business rules
func (m *RequestMoldData) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	return m.MessageOptions.Validate()
}

// Validate checks the mold data's business rules; the collection cannot be
// empty
func (m *MoldData) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	if len(m.Data) == 0 {
		return NewConstraintError("mold data list cannot be empty")
	}
	for key, value := range m.Data {
		if err := checkTextNotEmpty("data.key", key); err != nil {
			return err
		}
		if err := checkFloat(key, value); err != nil {
			return err
		}
	}
	if err := m.StateValues.Validate(); err != nil {
		return err
	}
	return m.MessageOptions.Validate()
}

// Validate checks the message's business rules. An empty Field asks for
// every setting, so only a whitespace-only value is rejected.
func (m *ReadMoldData) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	if err := checkOptionalTextNotEmpty("field", m.Field); err != nil {
		return err
	}
	return m.MessageOptions.Validate()
}

// Validate checks the message's business rules
func (m *MoldDataValue) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	if err := checkTextNotEmpty("field", m.Field); err != nil {
		return err
	}
	if err := checkFloat("value", m.Value); err != nil {
		return err
	}
	return m.MessageOptions.Validate()
}

// Validate checks the message's business rules
func (m *LoginOperator) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	if err := checkTextNotEmpty("password", m.Password); err != nil {
		return err
	}
	return m.MessageOptions.Validate()
}

// Validate checks the operator record's business rules, including the
// access level cap
func (m *OperatorInfo) Validate() error {
	if err := checkRequiredID("controller_id", m.ControllerID); err != nil {
		return err
	}
	if err := checkTextNotEmpty("name", m.Name); err != nil {
		return err
	}
	if err := checkTextNotEmpty("password", m.Password); err != nil {
		return err
	}
	if m.Level > MaxOperatorLevel {
		return NewConstraintError(fmt.Sprintf(
			"level %d is too high - must be between 0 and %d", m.Level, MaxOperatorLevel))
	}
	return m.MessageOptions.Validate()
}
