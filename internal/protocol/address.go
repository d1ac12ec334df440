package protocol

import (
	"fmt"
	"net/netip"
	"regexp"
	"strconv"
	"strings"
)

// AddressKind discriminates the variants of a controller Address
type AddressKind int

const (
	// AddressUnknown means the controller's physical address is not known;
	// it renders as "0.0.0.0:0"
	AddressUnknown AddressKind = iota
	// AddressIPv4 is an IPv4 address plus a non-zero port
	AddressIPv4
	// AddressComPort is a Windows COM port with a non-zero number
	AddressComPort
	// AddressTty is a UNIX-style tty serial port device
	AddressTty
)

var (
	ipPortPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}:\d{1,5}$`)
	ttyPattern    = regexp.MustCompile(`^tty\w+$`)
)

// Address holds a controller's physical address.
//
// An Address is created through ParseAddress or one of the New*Address
// constructors, all of which enforce the variant invariants: a COM port
// number cannot be zero, an IPv4 port cannot be zero unless the host is the
// all-zero unspecified address (in which case the value is normalized to the
// Unknown variant).
type Address struct {
	kind AddressKind
	ip   netip.Addr
	port uint16
	com  uint8
	tty  string
}

// UnknownAddress returns the Unknown address variant
func UnknownAddress() Address {
	return Address{kind: AddressUnknown}
}

// NewIPv4Address creates an IPv4 address variant.
//
// The unspecified host 0.0.0.0 must carry port 0 and normalizes to Unknown;
// any other host must carry a non-zero port.
func NewIPv4Address(ip netip.Addr, port uint16) (Address, error) {
	if !ip.Is4() {
		return Address{}, NewInvalidFieldError("ip", ip.String(), "must be an IPv4 address")
	}
	if ip.IsUnspecified() {
		if port != 0 {
			return Address{}, NewInvalidFieldError("ip[port]", strconv.Itoa(int(port)),
				"null IP must have zero port number")
		}
		return UnknownAddress(), nil
	}
	if port == 0 {
		return Address{}, NewInvalidFieldError("ip[port]", "0", "IP port cannot be zero")
	}
	return Address{kind: AddressIPv4, ip: ip, port: port}, nil
}

// NewComPortAddress creates a Windows COM port variant; the port number
// cannot be zero
func NewComPortAddress(port uint8) (Address, error) {
	if port == 0 {
		return Address{}, NewInvalidFieldError("address", "COM0", "COM port cannot be zero")
	}
	return Address{kind: AddressComPort, com: port}, nil
}

// NewTtyAddress creates a tty device variant; the device name must match
// tty<word-characters>
func NewTtyAddress(device string) (Address, error) {
	if !ttyPattern.MatchString(device) {
		return Address{}, NewInvalidFieldError("address", device, "not a valid tty device name")
	}
	return Address{kind: AddressTty, tty: device}, nil
}

// ParseAddress parses a text string into an Address.
//
// Exactly one of the following forms is accepted:
//   - "COM<digits>" - a Windows COM port (number cannot be zero)
//   - "tty<word-characters>" - a tty serial device
//   - "<ipv4>:<port>" - an IPv4 address plus port, subject to the
//     zero-host/zero-port pairing rule
//
// Anything else is rejected as an unrecognized address.
func ParseAddress(text string) (Address, error) {
	const comPrefix = "COM"

	switch {
	case strings.HasPrefix(text, comPrefix):
		n, err := strconv.ParseUint(text[len(comPrefix):], 10, 8)
		if err != nil {
			return Address{}, NewInvalidFieldError("address", text, "invalid COM port")
		}
		return NewComPortAddress(uint8(n))

	case ttyPattern.MatchString(text):
		return NewTtyAddress(text)

	case ipPortPattern.MatchString(text):
		host, portText, _ := strings.Cut(text, ":")
		ip, err := netip.ParseAddr(host)
		if err != nil {
			return Address{}, NewInvalidFieldError("ip[address]", host, "invalid IP address")
		}
		port, err := strconv.ParseUint(portText, 10, 16)
		if err != nil {
			return Address{}, NewInvalidFieldError("ip[port]", portText, "invalid IP port")
		}
		return NewIPv4Address(ip, uint16(port))

	default:
		return Address{}, NewInvalidFieldError("address", text, "unrecognized address")
	}
}

// Kind returns the address variant
func (a Address) Kind() AddressKind { return a.kind }

// IsUnknown reports whether the address is the Unknown variant
func (a Address) IsUnknown() bool { return a.kind == AddressUnknown }

// IPv4 returns the host and port of an IPv4 address variant.
// The second result is false for any other variant.
func (a Address) IPv4() (netip.Addr, uint16, bool) {
	if a.kind != AddressIPv4 {
		return netip.Addr{}, 0, false
	}
	return a.ip, a.port, true
}

// ComPort returns the COM port number, or false for any other variant
func (a Address) ComPort() (uint8, bool) {
	if a.kind != AddressComPort {
		return 0, false
	}
	return a.com, true
}

// TtyDevice returns the tty device name, or false for any other variant
func (a Address) TtyDevice() (string, bool) {
	if a.kind != AddressTty {
		return "", false
	}
	return a.tty, true
}

// String renders the canonical textual form of the address
func (a Address) String() string {
	switch a.kind {
	case AddressIPv4:
		return fmt.Sprintf("%s:%d", a.ip, a.port)
	case AddressComPort:
		return fmt.Sprintf("COM%d", a.com)
	case AddressTty:
		return a.tty
	default:
		return "0.0.0.0:0"
	}
}

// Validate re-checks the variant invariants.
// An Address built through the constructors always passes.
func (a Address) Validate() error {
	_, err := ParseAddress(a.String())
	return err
}

// MarshalText renders the address in its canonical textual form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses the canonical textual form through ParseAddress
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
