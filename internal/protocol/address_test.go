package protocol

import (
	"net/netip"
	"testing"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantErr  bool
		wantKind AddressKind
		wantStr  string
	}{
		{name: "unknown", text: "0.0.0.0:0", wantKind: AddressUnknown, wantStr: "0.0.0.0:0"},
		{name: "null IP with port", text: "0.0.0.0:123", wantErr: true},
		{name: "real IP with zero port", text: "1.2.3.4:0", wantErr: true},
		{name: "IP and port", text: "1.2.3.4:80", wantKind: AddressIPv4, wantStr: "1.2.3.4:80"},
		{name: "IP without port", text: "192.168.1.1", wantErr: true},
		{name: "port out of range", text: "1.2.3.4:99999", wantErr: true},
		{name: "octet out of range", text: "1.2.3.999:80", wantErr: true},
		{name: "COM0", text: "COM0", wantErr: true},
		{name: "COM port", text: "COM5", wantKind: AddressComPort, wantStr: "COM5"},
		{name: "tty device", text: "ttyS0", wantKind: AddressTty, wantStr: "ttyS0"},
		{name: "tty USB", text: "ttyUSB1", wantKind: AddressTty, wantStr: "ttyUSB1"},
		{name: "garbage", text: "hello world", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.text)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAddress(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err != nil {
				if !IsInvalidFieldError(err) {
					t.Errorf("ParseAddress(%q) error = %v, want invalid-field", tt.text, err)
				}
				return
			}
			if addr.Kind() != tt.wantKind {
				t.Errorf("kind = %v, want %v", addr.Kind(), tt.wantKind)
			}
			if addr.String() != tt.wantStr {
				t.Errorf("String() = %q, want %q", addr.String(), tt.wantStr)
			}
		})
	}
}

func TestNewIPv4Address(t *testing.T) {
	unspecified := netip.MustParseAddr("0.0.0.0")

	addr, err := NewIPv4Address(unspecified, 0)
	if err != nil {
		t.Fatalf("NewIPv4Address(0.0.0.0, 0) error = %v", err)
	}
	if !addr.IsUnknown() {
		t.Error("NewIPv4Address(0.0.0.0, 0) is not Unknown")
	}

	if _, err := NewIPv4Address(unspecified, 8080); err == nil {
		t.Error("NewIPv4Address(0.0.0.0, 8080) error = nil, want error")
	}
	if _, err := NewIPv4Address(netip.MustParseAddr("10.1.2.3"), 0); err == nil {
		t.Error("NewIPv4Address(10.1.2.3, 0) error = nil, want error")
	}
}

func TestNewComPortAddress(t *testing.T) {
	if _, err := NewComPortAddress(0); err == nil {
		t.Error("NewComPortAddress(0) error = nil, want error")
	}

	addr, err := NewComPortAddress(3)
	if err != nil {
		t.Fatalf("NewComPortAddress(3) error = %v", err)
	}
	if got := addr.String(); got != "COM3" {
		t.Errorf("String() = %q, want COM3", got)
	}
}

func TestAddressTextRoundTrip(t *testing.T) {
	for _, text := range []string{"0.0.0.0:0", "192.168.1.1:12345", "COM5", "ttyHS2"} {
		addr, err := ParseAddress(text)
		if err != nil {
			t.Fatalf("ParseAddress(%q) error = %v", text, err)
		}

		encoded, err := addr.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}

		var decoded Address
		if err := decoded.UnmarshalText(encoded); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", encoded, err)
		}
		if decoded.String() != text {
			t.Errorf("round trip of %q = %q", text, decoded.String())
		}
	}
}
