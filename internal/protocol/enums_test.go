package protocol

import (
	"encoding/json"
	"testing"
)

func TestOpModeText(t *testing.T) {
	tests := []struct {
		mode OpMode
		text string
	}{
		{OpModeUnknown, "Unknown"},
		{OpModeManual, "Manual"},
		{OpModeSemiAutomatic, "SemiAutomatic"},
		{OpModeAutomatic, "Automatic"},
		{OpModeOthers, "Others"},
		{OpModeOffline, "Offline"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			data, err := json.Marshal(tt.mode)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != `"`+tt.text+`"` {
				t.Errorf("Marshal() = %s, want %q", data, tt.text)
			}

			var decoded OpMode
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if decoded != tt.mode {
				t.Errorf("round trip = %v, want %v", decoded, tt.mode)
			}
		})
	}

	var m OpMode
	if err := json.Unmarshal([]byte(`"Turbo"`), &m); err == nil {
		t.Error("Unmarshal(unrecognized) error = nil, want error")
	}
}

func TestOpModeHelpers(t *testing.T) {
	if !OpModeAutomatic.IsProducing() || !OpModeSemiAutomatic.IsProducing() {
		t.Error("Automatic/SemiAutomatic should be producing")
	}
	if OpModeManual.IsProducing() {
		t.Error("Manual should not be producing")
	}
	if !OpModeManual.IsOnline() || OpModeOffline.IsOnline() || OpModeUnknown.IsOnline() {
		t.Error("IsOnline() wrong for Manual/Offline/Unknown")
	}
}

func TestJobModeText(t *testing.T) {
	data, err := json.Marshal(JobModeID05)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"ID05"` {
		t.Errorf("Marshal(ID05) = %s", data)
	}

	var decoded JobMode
	if err := json.Unmarshal([]byte(`"ID15"`), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != JobModeID15 {
		t.Errorf("Unmarshal(ID15) = %v", decoded)
	}

	if err := json.Unmarshal([]byte(`"ID16"`), &decoded); err == nil {
		t.Error("Unmarshal(ID16) error = nil, want error")
	}

	if !JobModeID01.IsOnline() || JobModeOffline.IsOnline() {
		t.Error("IsOnline() wrong for ID01/Offline")
	}
}

func TestLanguageText(t *testing.T) {
	for lang, text := range map[Language]string{
		LanguageEN: "EN",
		LanguageB5: "B5",
		LanguageGB: "GB",
		LanguageDE: "DE",
	} {
		data, err := json.Marshal(lang)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", lang, err)
		}
		if string(data) != `"`+text+`"` {
			t.Errorf("Marshal(%v) = %s, want %q", lang, data, text)
		}
	}

	var decoded Language
	if err := json.Unmarshal([]byte(`"FR"`), &decoded); err != nil {
		t.Fatalf("Unmarshal(FR) error = %v", err)
	}
	if decoded != LanguageFR {
		t.Errorf("Unmarshal(FR) = %v", decoded)
	}
}
