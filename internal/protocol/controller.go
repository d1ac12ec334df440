package protocol

import (
	"encoding/json"
	"time"
)

// Controller is the full record of a single machine participating in the
// protocol.
//
// A Controller is constructed fresh on each inbound controller-list or
// controller-connected message and replaced wholesale, never mutated in
// place.
type Controller struct {
	// ControllerID is the unique ID of the controller, which cannot be zero.
	ControllerID ID
	// DisplayName is the user-specified human-friendly machine name.
	DisplayName TextName
	// ControllerType identifies the controller family, e.g. "Ai12" or "MPC7".
	ControllerType TextID
	// Version is the version of the controller's firmware.
	Version TextID
	// Model is the machine model, e.g. "JM138Ai".
	Model TextID
	// Address is the physical address of the controller. For a
	// network-connected controller this is "x.x.x.x:port"; for a
	// serial-connected controller it is a COM port or tty device name.
	Address Address
	// GeoLocation is the physical location of the machine, if known.
	GeoLocation *GeoLocation
	// OpMode is the current operating mode of the controller.
	OpMode OpMode
	// JobMode is the current job mode of the controller.
	JobMode JobMode
	// LastCycleData is the last set of cycle data received, if any.
	LastCycleData map[string]float64
	// Variables holds the last-known states of controller variables, if any.
	Variables map[string]float64
	// LastConnectionTime is the time of last connection, if known.
	LastConnectionTime *time.Time
	// Operator is the currently logged-in user, if any.
	Operator *Operator
	// JobCardID is the active job ID, if any. Zero value means none.
	JobCardID TextName
	// MoldID names the currently loaded set of mold data, if any.
	MoldID TextName
}

// NewController creates a Controller with placeholder values: ID 1, all
// text fields "Unknown" and an unknown address
func NewController() *Controller {
	return &Controller{
		ControllerID:   1,
		DisplayName:    "Unknown",
		ControllerType: "Unknown",
		Version:        "Unknown",
		Model:          "Unknown",
		Address:        UnknownAddress(),
	}
}

// Validate checks the local invariants of the controller record, delegating
// to the embedded address, geo-location and operator
func (c *Controller) Validate() error {
	if c.ControllerID == 0 {
		return NewInvalidFieldError("controller_id", "0", "ID value cannot be zero")
	}
	if err := checkTextNotEmpty("display_name", string(c.DisplayName)); err != nil {
		return err
	}
	if err := checkTextNotEmpty("controller_type", string(c.ControllerType)); err != nil {
		return err
	}
	if err := checkTextNotEmpty("version", string(c.Version)); err != nil {
		return err
	}
	if err := checkTextNotEmpty("model", string(c.Model)); err != nil {
		return err
	}
	if err := c.Address.Validate(); err != nil {
		return err
	}
	if c.GeoLocation != nil {
		if err := c.GeoLocation.Validate(); err != nil {
			return err
		}
	}
	if c.Operator != nil {
		if err := c.Operator.Validate(); err != nil {
			return err
		}
	}
	if err := checkOptionalTextNotEmpty("job_card_id", string(c.JobCardID)); err != nil {
		return err
	}
	return checkOptionalTextNotEmpty("mold_id", string(c.MoldID))
}

// controllerJSON is the wire shape of a Controller. The geo-location and
// operator records are flattened into the controller object itself, and the
// address is carried under the historical key "IP".
type controllerJSON struct {
	ControllerID       ID                 `json:"controllerId"`
	DisplayName        TextName           `json:"displayName"`
	ControllerType     TextID             `json:"controllerType"`
	Version            TextID             `json:"version"`
	Model              TextID             `json:"model"`
	Address            Address            `json:"IP"`
	GeoLatitude        *float64           `json:"geoLatitude,omitempty"`
	GeoLongitude       *float64           `json:"geoLongitude,omitempty"`
	OpMode             OpMode             `json:"opMode"`
	JobMode            JobMode            `json:"jobMode"`
	LastCycleData      map[string]float64 `json:"lastCycleData,omitempty"`
	Variables          map[string]float64 `json:"variables,omitempty"`
	LastConnectionTime *time.Time         `json:"lastConnectionTime,omitempty"`
	OperatorID         ID                 `json:"operatorId,omitzero"`
	OperatorName       TextName           `json:"operatorName,omitempty"`
	JobCardID          TextName           `json:"jobCardId,omitempty"`
	MoldID             TextName           `json:"moldId,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (c *Controller) MarshalJSON() ([]byte, error) {
	wire := controllerJSON{
		ControllerID:       c.ControllerID,
		DisplayName:        c.DisplayName,
		ControllerType:     c.ControllerType,
		Version:            c.Version,
		Model:              c.Model,
		Address:            c.Address,
		OpMode:             c.OpMode,
		JobMode:            c.JobMode,
		LastCycleData:      c.LastCycleData,
		Variables:          c.Variables,
		LastConnectionTime: c.LastConnectionTime,
		JobCardID:          c.JobCardID,
		MoldID:             c.MoldID,
	}
	if c.GeoLocation != nil {
		lat, long := c.GeoLocation.Latitude(), c.GeoLocation.Longitude()
		wire.GeoLatitude, wire.GeoLongitude = &lat, &long
	}
	if c.Operator != nil {
		wire.OperatorID = c.Operator.OperatorID
		wire.OperatorName = c.Operator.OperatorName
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler, reassembling the flattened
// geo-location and operator records
func (c *Controller) UnmarshalJSON(data []byte) error {
	var wire controllerJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := Controller{
		ControllerID:       wire.ControllerID,
		DisplayName:        wire.DisplayName,
		ControllerType:     wire.ControllerType,
		Version:            wire.Version,
		Model:              wire.Model,
		Address:            wire.Address,
		OpMode:             wire.OpMode,
		JobMode:            wire.JobMode,
		LastCycleData:      wire.LastCycleData,
		Variables:          wire.Variables,
		LastConnectionTime: wire.LastConnectionTime,
		JobCardID:          wire.JobCardID,
		MoldID:             wire.MoldID,
	}

	switch {
	case wire.GeoLatitude != nil && wire.GeoLongitude != nil:
		loc, err := NewGeoLocation(*wire.GeoLatitude, *wire.GeoLongitude)
		if err != nil {
			return err
		}
		out.GeoLocation = &loc
	case wire.GeoLatitude != nil:
		return NewInvalidFieldError("geo_longitude", "", "geoLongitude is missing")
	case wire.GeoLongitude != nil:
		return NewInvalidFieldError("geo_latitude", "", "geoLatitude is missing")
	}

	if wire.OperatorID != 0 {
		out.Operator = &Operator{OperatorID: wire.OperatorID, OperatorName: wire.OperatorName}
	} else if wire.OperatorName != "" {
		return NewInvalidFieldError("operator_id", "", "operatorName is present without operatorId")
	}

	*c = out
	return nil
}
