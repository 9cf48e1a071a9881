package reference

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"home-assessment/domain"
)

// Table is an immutable lookup of county reference data keyed by state and
// county. Lookups are case-insensitive.
type Table struct {
	rows map[string]map[string]domain.CountyProfile
}

// NewTable copies rows into a new Table. rows maps state -> county -> profile.
func NewTable(rows map[string]map[string]domain.CountyProfile) *Table {
	t := &Table{rows: make(map[string]map[string]domain.CountyProfile, len(rows))}
	for state, counties := range rows {
		s := strings.ToUpper(strings.TrimSpace(state))
		if t.rows[s] == nil {
			t.rows[s] = make(map[string]domain.CountyProfile, len(counties))
		}
		for county, p := range counties {
			p.State = s
			p.County = strings.TrimSpace(county)
			t.rows[s][strings.ToLower(p.County)] = p
		}
	}
	return t
}

// Lookup returns the profile of a county.
func (t *Table) Lookup(state, county string) (domain.CountyProfile, bool) {
	counties, ok := t.rows[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return domain.CountyProfile{}, false
	}
	p, ok := counties[strings.ToLower(strings.TrimSpace(county))]
	return p, ok
}

// States lists the known states in alphabetical order.
func (t *Table) States() []string {
	states := make([]string, 0, len(t.rows))
	for s := range t.rows {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

// Counties lists the counties of a state in alphabetical order.
func (t *Table) Counties(state string) []string {
	counties := t.rows[strings.ToUpper(strings.TrimSpace(state))]
	names := make([]string, 0, len(counties))
	for _, p := range counties {
		names = append(names, p.County)
	}
	sort.Strings(names)
	return names
}

// LoadFile reads a YAML table of the form state -> county -> profile.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference table: %w", err)
	}

	var rows map[string]map[string]domain.CountyProfile
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse reference table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reference table %s is empty", path)
	}
	return NewTable(rows), nil
}
