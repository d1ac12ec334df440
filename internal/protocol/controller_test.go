package protocol

import (
	"encoding/json"
	"testing"
)

func TestControllerJSONRoundTrip(t *testing.T) {
	geo, err := NewGeoLocation(22.3, 114.2)
	if err != nil {
		t.Fatalf("NewGeoLocation() error = %v", err)
	}
	addr, err := ParseAddress("192.168.1.1:12345")
	if err != nil {
		t.Fatalf("ParseAddress() error = %v", err)
	}

	c := &Controller{
		ControllerID:   MustID(123),
		DisplayName:    "Machine 1",
		ControllerType: "Ai02",
		Version:        "2.2",
		Model:          "JM138Ai",
		Address:        addr,
		GeoLocation:    &geo,
		OpMode:         OpModeAutomatic,
		JobMode:        JobModeID05,
		LastCycleData:  map[string]float64{"INJ": 5, "CLAMP": 400},
		Operator:       NewOperatorWithName(MustID(42), "Charlie"),
		JobCardID:      "XYZ",
		MoldID:         "Mold-123",
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Controller
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.ControllerID != c.ControllerID || decoded.DisplayName != c.DisplayName {
		t.Errorf("identity fields: got %v %q", decoded.ControllerID, decoded.DisplayName)
	}
	if decoded.Address.String() != "192.168.1.1:12345" {
		t.Errorf("address = %q", decoded.Address.String())
	}
	if decoded.GeoLocation == nil || *decoded.GeoLocation != geo {
		t.Errorf("geo = %+v, want %+v", decoded.GeoLocation, geo)
	}
	if decoded.Operator == nil || decoded.Operator.OperatorID != MustID(42) ||
		decoded.Operator.OperatorName != "Charlie" {
		t.Errorf("operator = %+v", decoded.Operator)
	}
	if decoded.LastCycleData["CLAMP"] != 400 {
		t.Errorf("lastCycleData = %v", decoded.LastCycleData)
	}
}

func TestControllerUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "latitude without longitude",
			json: `{"controllerId":1,"displayName":"X","controllerType":"T","version":"1","model":"M","IP":"0.0.0.0:0","geoLatitude":22.3}`,
		},
		{
			name: "operator name without id",
			json: `{"controllerId":1,"displayName":"X","controllerType":"T","version":"1","model":"M","IP":"0.0.0.0:0","operatorName":"Charlie"}`,
		},
		{
			name: "malformed address",
			json: `{"controllerId":1,"displayName":"X","controllerType":"T","version":"1","model":"M","IP":"not-an-address"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Controller
			err := json.Unmarshal([]byte(tt.json), &c)
			if err == nil {
				t.Fatal("Unmarshal() error = nil, want error")
			}
			if !IsInvalidFieldError(err) {
				t.Errorf("Unmarshal() error = %v, want invalid-field", err)
			}
		})
	}
}

func TestNewControllerPlaceholder(t *testing.T) {
	c := NewController()

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if c.ControllerID != MustID(1) {
		t.Errorf("ControllerID = %v, want 1", c.ControllerID)
	}
	if !c.Address.IsUnknown() {
		t.Error("Address is not Unknown")
	}
}
