package protocol

import (
	"encoding/json"
	"testing"
)

func TestTriStateTextJSON(t *testing.T) {
	data, err := json.Marshal(NullText())
	if err != nil {
		t.Fatalf("Marshal(cleared) error = %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(cleared) = %s, want null", data)
	}

	data, err = json.Marshal(SomeText("Mold-123"))
	if err != nil {
		t.Fatalf("Marshal(set) error = %v", err)
	}
	if string(data) != `"Mold-123"` {
		t.Errorf("Marshal(set) = %s", data)
	}

	var ts TriStateText
	if err := json.Unmarshal([]byte("null"), &ts); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if !ts.IsNull() {
		t.Error("Unmarshal(null) did not decode as cleared")
	}

	if err := json.Unmarshal([]byte(`"XYZ"`), &ts); err != nil {
		t.Fatalf("Unmarshal(string) error = %v", err)
	}
	if v, ok := ts.Value(); !ok || v != "XYZ" {
		t.Errorf("Unmarshal(string) = %v", ts)
	}

	// A set value still has to be well-formed.
	if err := json.Unmarshal([]byte(`"   "`), &ts); err == nil {
		t.Error("Unmarshal(blank) error = nil, want error")
	}
}

func TestTriStateIDSentinel(t *testing.T) {
	data, err := json.Marshal(NullID())
	if err != nil {
		t.Fatalf("Marshal(cleared) error = %v", err)
	}
	if string(data) != "0" {
		t.Errorf("Marshal(cleared) = %s, want the 0 sentinel", data)
	}

	var ts TriStateID
	if err := json.Unmarshal([]byte("0"), &ts); err != nil {
		t.Fatalf("Unmarshal(0) error = %v", err)
	}
	if !ts.IsNull() {
		t.Error("Unmarshal(0) did not decode as cleared")
	}

	if err := json.Unmarshal([]byte("42"), &ts); err != nil {
		t.Fatalf("Unmarshal(42) error = %v", err)
	}
	if v, ok := ts.Value(); !ok || v != MustID(42) {
		t.Errorf("Unmarshal(42) = %v", ts)
	}

	if err := json.Unmarshal([]byte("-1"), &ts); err == nil {
		t.Error("Unmarshal(-1) error = nil, want error")
	}
}

func TestTriStateZeroValueIsAbsent(t *testing.T) {
	var text TriStateText
	var id TriStateID

	if !text.IsAbsent() || !text.IsZero() {
		t.Error("zero TriStateText is not absent")
	}
	if !id.IsAbsent() || !id.IsZero() {
		t.Error("zero TriStateID is not absent")
	}
	if _, ok := text.Value(); ok {
		t.Error("absent TriStateText has a value")
	}
}
