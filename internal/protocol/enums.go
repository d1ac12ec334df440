package protocol

import "fmt"

// OpMode represents the operating mode of a controller.
//
// When a controller is off-line, both its operating mode and its job mode
// report Offline.
type OpMode int

const (
	// OpModeUnknown is the zero value; it is omitted from the wire
	OpModeUnknown OpMode = iota
	OpModeManual
	OpModeSemiAutomatic
	OpModeAutomatic
	OpModeOthers
	OpModeOffline
)

var opModeNames = map[OpMode]string{
	OpModeUnknown:       "Unknown",
	OpModeManual:        "Manual",
	OpModeSemiAutomatic: "SemiAutomatic",
	OpModeAutomatic:     "Automatic",
	OpModeOthers:        "Others",
	OpModeOffline:       "Offline",
}

// String returns the wire token for the operating mode
func (m OpMode) String() string {
	if name, ok := opModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("OpMode(%d)", int(m))
}

// IsUnknown reports whether the mode is Unknown
func (m OpMode) IsUnknown() bool { return m == OpModeUnknown }

// IsOffline reports whether the controller is off-line
func (m OpMode) IsOffline() bool { return m == OpModeOffline }

// IsOnline reports whether the controller is on-line (any mode other than
// Unknown and Offline)
func (m OpMode) IsOnline() bool { return m != OpModeUnknown && m != OpModeOffline }

// IsProducing reports whether the machine is producing (Automatic or
// SemiAutomatic mode)
func (m OpMode) IsProducing() bool { return m == OpModeSemiAutomatic || m == OpModeAutomatic }

// MarshalText implements encoding.TextMarshaler
func (m OpMode) MarshalText() ([]byte, error) {
	name, ok := opModeNames[m]
	if !ok {
		return nil, NewInvalidFieldError("opMode", fmt.Sprintf("%d", int(m)), "unrecognized operating mode")
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *OpMode) UnmarshalText(text []byte) error {
	for mode, name := range opModeNames {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return NewInvalidFieldError("opMode", string(text), "unrecognized operating mode")
}

// JobMode represents the job mode of a controller.
//
// On some controller models, job modes 1-15 (ID01 - ID15) can be user-defined.
type JobMode int

const (
	// JobModeUnknown is the zero value; it is omitted from the wire
	JobModeUnknown JobMode = iota
	JobModeID01
	JobModeID02
	JobModeID03
	JobModeID04
	JobModeID05
	JobModeID06
	JobModeID07
	JobModeID08
	JobModeID09
	JobModeID10
	JobModeID11
	JobModeID12
	JobModeID13
	JobModeID14
	JobModeID15
	JobModeOffline
)

// String returns the wire token for the job mode
func (m JobMode) String() string {
	switch {
	case m == JobModeUnknown:
		return "Unknown"
	case m == JobModeOffline:
		return "Offline"
	case m >= JobModeID01 && m <= JobModeID15:
		return fmt.Sprintf("ID%02d", int(m))
	default:
		return fmt.Sprintf("JobMode(%d)", int(m))
	}
}

// IsUnknown reports whether the mode is Unknown
func (m JobMode) IsUnknown() bool { return m == JobModeUnknown }

// IsOffline reports whether the controller is off-line
func (m JobMode) IsOffline() bool { return m == JobModeOffline }

// IsOnline reports whether the controller is on-line (any mode other than
// Unknown and Offline)
func (m JobMode) IsOnline() bool { return m != JobModeUnknown && m != JobModeOffline }

// MarshalText implements encoding.TextMarshaler
func (m JobMode) MarshalText() ([]byte, error) {
	if m < JobModeUnknown || m > JobModeOffline {
		return nil, NewInvalidFieldError("jobMode", fmt.Sprintf("%d", int(m)), "unrecognized job mode")
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *JobMode) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case "Unknown":
		*m = JobModeUnknown
		return nil
	case "Offline":
		*m = JobModeOffline
		return nil
	}
	for n := JobModeID01; n <= JobModeID15; n++ {
		if n.String() == s {
			*m = n
			return nil
		}
	}
	return NewInvalidFieldError("jobMode", s, "unrecognized job mode")
}

// Language represents a supported UI language for a controller's HMI.
type Language int

const (
	// LanguageUnknown is the zero value; a Join message must not declare it
	LanguageUnknown Language = iota
	LanguageEN
	LanguageB5
	LanguageGB
	LanguageFR
	LanguageDE
	LanguageIT
	LanguageES
	LanguagePT
	LanguageJA
)

var languageNames = map[Language]string{
	LanguageUnknown: "Unknown",
	LanguageEN:      "EN",
	LanguageB5:      "B5",
	LanguageGB:      "GB",
	LanguageFR:      "FR",
	LanguageDE:      "DE",
	LanguageIT:      "IT",
	LanguageES:      "ES",
	LanguagePT:      "PT",
	LanguageJA:      "JA",
}

// String returns the wire token for the language
func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// IsUnknown reports whether the language is Unknown
func (l Language) IsUnknown() bool { return l == LanguageUnknown }

// MarshalText implements encoding.TextMarshaler
func (l Language) MarshalText() ([]byte, error) {
	name, ok := languageNames[l]
	if !ok {
		return nil, NewInvalidFieldError("language", fmt.Sprintf("%d", int(l)), "unrecognized language")
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Language) UnmarshalText(text []byte) error {
	for lang, name := range languageNames {
		if name == string(text) {
			*l = lang
			return nil
		}
	}
	return NewInvalidFieldError("language", string(text), "unrecognized language")
}
