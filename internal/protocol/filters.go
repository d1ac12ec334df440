package protocol

import "strings"

// Filters is a set of message categories that a client is authorized to
// receive, encoded as a bitmask.
//
// FilterAll subsumes the six machine categories (Status, Cycle, Mold,
// Actions, Alarms, Audit): Has reports those categories as present whenever
// FilterAll is set, and Normalize removes them from the set if FilterAll
// is present. The canonical textual form is a comma-joined list in
// declaration order with the subsumed members suppressed; the empty set
// renders as "None".
type Filters uint32

const (
	// FilterNone is the empty set
	FilterNone Filters = 0
	// FilterStatus selects controller status update messages
	FilterStatus Filters = 1 << 0
	// FilterCycle selects cycle data messages
	FilterCycle Filters = 1 << 1
	// FilterMold selects mold data messages
	FilterMold Filters = 1 << 2
	// FilterActions selects controller action messages
	FilterActions Filters = 1 << 3
	// FilterAlarms selects controller alarm messages
	FilterAlarms Filters = 1 << 4
	// FilterAudit selects the audit trail of setting changes
	FilterAudit Filters = 1 << 5
	// FilterAll subsumes all six machine categories above
	FilterAll Filters = 1 << 6
	// FilterJobCards selects MIS/MES job scheduling messages
	FilterJobCards Filters = 1 << 12
	// FilterOperators selects MIS/MES user authorization messages
	FilterOperators Filters = 1 << 13
	// FilterOPCUA selects OPC UA industrial bus integration
	FilterOPCUA Filters = 1 << 28
)

// machineFilters are the six categories subsumed by FilterAll
const machineFilters = FilterStatus | FilterCycle | FilterMold | FilterActions | FilterAlarms | FilterAudit

// filterOrder is the canonical rendering order
var filterOrder = []struct {
	filter Filters
	name   string
}{
	{FilterStatus, "Status"},
	{FilterCycle, "Cycle"},
	{FilterMold, "Mold"},
	{FilterActions, "Actions"},
	{FilterAlarms, "Alarms"},
	{FilterAudit, "Audit"},
	{FilterAll, "All"},
	{FilterJobCards, "JobCards"},
	{FilterOperators, "Operators"},
	{FilterOPCUA, "OPCUA"},
}

// Has reports whether every member of other is present in the set,
// counting the six machine categories as present whenever FilterAll is set
func (f Filters) Has(other Filters) bool {
	eff := f
	if f&FilterAll != 0 {
		eff |= machineFilters
	}
	return eff&other == other
}

// With returns the set with the members of other added
func (f Filters) With(other Filters) Filters { return f | other }

// Without returns the set with the members of other removed
func (f Filters) Without(other Filters) Filters { return f &^ other }

// Normalize returns the canonical form of the set: when FilterAll is present
// the six subsumed machine categories are removed. Normalize is idempotent.
func (f Filters) Normalize() Filters {
	if f&FilterAll != 0 {
		return f &^ machineFilters
	}
	return f
}

// String renders the canonical comma-joined list, with FilterAll suppressing
// its subsumed members. The empty set renders as "None".
func (f Filters) String() string {
	f = f.Normalize()
	if f == FilterNone {
		return "None"
	}
	var names []string
	for _, entry := range filterOrder {
		if f&entry.filter != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ", ")
}

// ParseFilters parses a comma-delimited list into a Filters set.
//
// Parsing never fails: unrecognized tokens are silently discarded, and the
// result is normalized. An empty list or the literal "None" yields the
// empty set.
func ParseFilters(text string) Filters {
	text = strings.TrimSpace(text)
	if text == "" || text == "None" {
		return FilterNone
	}

	f := FilterNone
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		for _, entry := range filterOrder {
			if entry.name == token {
				f |= entry.filter
				break
			}
		}
	}
	return f.Normalize()
}

// MarshalText renders the canonical comma-joined form; Filters fields travel
// the wire as a single JSON string, never an array
func (f Filters) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses the comma-joined form through ParseFilters
func (f *Filters) UnmarshalText(text []byte) error {
	*f = ParseFilters(string(text))
	return nil
}
