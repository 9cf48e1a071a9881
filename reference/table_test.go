package reference

import (
	"os"
	"path/filepath"
	"testing"

	"home-assessment/domain"
)

func TestDefault_Lookup(t *testing.T) {
	table := Default()

	p, ok := table.Lookup("nj", "bergen")
	if !ok {
		t.Fatalf("expected Bergen county to be found")
	}
	if p.TaxRate != 2.15 || p.AppreciationRate != 3.8 || p.SchoolRanking != 30.5 {
		t.Errorf("unexpected profile: %+v", p)
	}
	if p.State != "NJ" || p.County != "Bergen" {
		t.Errorf("expected canonical names, got %s/%s", p.State, p.County)
	}
}

func TestDefault_SameCountyNameInTwoStates(t *testing.T) {
	table := Default()

	nj, _ := table.Lookup("NJ", "Middlesex")
	ct, _ := table.Lookup("CT", "Middlesex")
	if nj.TaxRate == ct.TaxRate {
		t.Errorf("expected distinct rows for NJ and CT Middlesex")
	}
}

func TestDefault_Unknown(t *testing.T) {
	table := Default()
	if _, ok := table.Lookup("CA", "Marin"); ok {
		t.Errorf("unexpected match for unknown state")
	}
	if _, ok := table.Lookup("NY", "Kings"); ok {
		t.Errorf("unexpected match for unknown county")
	}
}

func TestTable_Listing(t *testing.T) {
	table := Default()

	states := table.States()
	if len(states) != 3 || states[0] != "CT" || states[2] != "NY" {
		t.Errorf("unexpected states: %v", states)
	}
	if got := len(table.Counties("NY")); got != 9 {
		t.Errorf("expected 9 NY counties, got %d", got)
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	rows := map[string]map[string]domain.CountyProfile{
		"NJ": {"Bergen": {TaxRate: 2}},
	}
	table := NewTable(rows)
	rows["NJ"]["Bergen"] = domain.CountyProfile{TaxRate: 99}

	p, _ := table.Lookup("NJ", "Bergen")
	if p.TaxRate != 2 {
		t.Errorf("table must not share caller maps, got %.2f", p.TaxRate)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := `
PA:
  Bucks:
    tax_rate: 1.4
    school_ranking: 22
    appreciation_rate: 3.3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := table.Lookup("pa", "BUCKS")
	if !ok {
		t.Fatalf("expected Bucks county")
	}
	if p.TaxRate != 1.4 || p.AppreciationRate != 3.3 {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.yaml")
	os.WriteFile(path, []byte("{}"), 0o644)
	if _, err := LoadFile(path); err == nil {
		t.Errorf("expected error for empty table")
	}
}
