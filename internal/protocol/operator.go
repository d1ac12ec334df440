package protocol

// Operator holds information on a single user on the system.
type Operator struct {
	// OperatorID is the unique user ID, which cannot be zero.
	OperatorID ID `json:"operatorId"`
	// OperatorName is the name of the user, if known.
	// The zero value stands for "no name".
	OperatorName TextName `json:"operatorName,omitempty"`
}

// NewOperator creates an Operator with just an ID and no name
func NewOperator(id ID) *Operator {
	return &Operator{OperatorID: id}
}

// NewOperatorWithName creates an Operator with an ID and a name
func NewOperatorWithName(id ID, name TextName) *Operator {
	return &Operator{OperatorID: id, OperatorName: name}
}

// Validate checks the local invariants of the operator record
func (o *Operator) Validate() error {
	if o.OperatorID == 0 {
		return NewInvalidFieldError("operator_id", "0", "ID value cannot be zero")
	}
	return checkOptionalTextNotEmpty("operator_name", string(o.OperatorName))
}
