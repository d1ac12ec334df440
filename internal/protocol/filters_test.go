package protocol

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFiltersNormalizeIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("normalize(normalize(s)) == normalize(s)", prop.ForAll(
		func(bits uint32) bool {
			f := Filters(bits)
			return f.Normalize().Normalize() == f.Normalize()
		},
		gen.UInt32(),
	))

	properties.Property("normalized set renders and parses back to itself", prop.ForAll(
		func(bits uint32) bool {
			// Constrain to defined members.
			f := Filters(bits) & (machineFilters | FilterAll | FilterJobCards | FilterOperators | FilterOPCUA)
			norm := f.Normalize()
			return ParseFilters(norm.String()) == norm
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestFiltersAllSubsumes(t *testing.T) {
	f := FilterAll | FilterCycle

	if got := f.Normalize(); got != FilterAll {
		t.Errorf("Normalize() = %v, want FilterAll", got)
	}
	if got := f.String(); got != "All" {
		t.Errorf("String() = %q, want \"All\"", got)
	}
	if !f.Has(FilterCycle) {
		t.Error("Has(FilterCycle) = false, want true after All")
	}
	if !f.Has(FilterStatus | FilterMold | FilterActions | FilterAlarms | FilterAudit) {
		t.Error("Has(machine categories) = false, want true after All")
	}
	if f.Has(FilterOPCUA) {
		t.Error("Has(FilterOPCUA) = true, want false")
	}
}

func TestFiltersString(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
		want string
	}{
		{name: "empty", f: FilterNone, want: "None"},
		{name: "single", f: FilterStatus, want: "Status"},
		{name: "declaration order", f: FilterMold | FilterCycle, want: "Cycle, Mold"},
		{name: "all plus extras", f: FilterAll | FilterAudit | FilterJobCards, want: "All, JobCards"},
		{name: "mis categories", f: FilterJobCards | FilterOperators, want: "JobCards, Operators"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Filters
	}{
		{name: "empty", text: "", want: FilterNone},
		{name: "none literal", text: "None", want: FilterNone},
		{name: "spaced list", text: "Mold, Cycle", want: FilterCycle | FilterMold},
		{name: "unknown tokens dropped", text: "Cycle, Bogus, OPCUA", want: FilterCycle | FilterOPCUA},
		{name: "all swallows members", text: "All, Cycle, Status", want: FilterAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFilters(tt.text); got != tt.want {
				t.Errorf("ParseFilters(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
