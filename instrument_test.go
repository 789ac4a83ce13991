package wealthguard

import "testing"

func TestDefaultInstruments_Validate(t *testing.T) {
	if err := DefaultInstruments.Validate(); err != nil {
		t.Errorf("DefaultInstruments.Validate() unexpected error: %v", err)
	}
}

func TestInstruments_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		set     Instruments
		wantErr bool
	}{
		{name: "sum to 100", set: testInstruments},
		{name: "sum to 90", set: Instruments{{Name: "A", TargetPercent: 45}, {Name: "B", TargetPercent: 45}}, wantErr: true},
		{name: "duplicate", set: Instruments{{Name: "A", TargetPercent: 50}, {Name: "a", TargetPercent: 50}}, wantErr: true},
		{name: "empty name", set: Instruments{{Name: "", TargetPercent: 100}}, wantErr: true},
		{name: "fractional", set: Instruments{{Name: "A", TargetPercent: 33.3}, {Name: "B", TargetPercent: 33.3}, {Name: "C", TargetPercent: 33.4}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.set.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestInstruments_Lookup(t *testing.T) {
	got, ok := DefaultInstruments.Lookup("msci world")
	if !ok || got.Name != "MSCI World" {
		t.Errorf("Lookup(%q) = %q, %v, want %q", "msci world", got.Name, ok, "MSCI World")
	}
	if _, ok := DefaultInstruments.Lookup("S&P 500"); ok {
		t.Errorf("Lookup(%q) found an instrument", "S&P 500")
	}
}

func TestParseExpenseCategory(t *testing.T) {
	testCases := []struct {
		in   string
		want ExpenseCategory
	}{
		{"maintenance", Maintenance},
		{"TAXES", Taxes},
		{" community-fee ", CommunityFee},
		{"comunidad", CommunityFee},
		{"Impuestos", Taxes},
		{"gestión", Management},
		{"", Other},
		{"garden", Other},
	}
	for _, tc := range testCases {
		if got := ParseExpenseCategory(tc.in); got != tc.want {
			t.Errorf("ParseExpenseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpenseCategory_IsValid(t *testing.T) {
	for _, c := range ExpenseCategories {
		if !c.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", c)
		}
		if c.Label() == string(c) {
			t.Errorf("%q has no label", c)
		}
	}
	if ExpenseCategory("garden").IsValid() {
		t.Error(`"garden".IsValid() = true, want false`)
	}
}
