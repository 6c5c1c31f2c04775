package ids

import "testing"

func TestDetectType(t *testing.T) {
	tests := []struct {
		id   string
		want ResourceType
	}{
		{"prp_12345", TypeProperty},
		{"PRP_12345", TypeProperty},
		{" ctr_C-0N7RAC7 ", TypeContract},
		{"grp_9876", TypeGroup},
		{"atv_555", TypeActivation},
		{"ehn_112233", TypeEdgeHost},
		{"cpc_33190", TypeCPCode},
		{"act_B-M-1KQNO3W", TypeAccount},
		{"12345", ""},
		{"xyz_1", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DetectType(tt.id); got != tt.want {
			t.Errorf("DetectType(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		id      string
		typ     ResourceType
		want    string
		wantErr bool
	}{
		{"prp_12345", TypeProperty, "prp_12345", false},
		{"12345", TypeProperty, "prp_12345", false},
		{"PRP_12345", TypeProperty, "prp_12345", false},
		{" 9876 ", TypeGroup, "grp_9876", false},
		{"C-0N7RAC7", TypeContract, "ctr_C-0N7RAC7", false},
		{"ctr_C-0N7RAC7", TypeContract, "ctr_C-0N7RAC7", false},
		// Wrong-prefix paste error gets a pointed message, not silent rewrite.
		{"grp_9876", TypeProperty, "", true},
		{"prp_abc", TypeProperty, "", true},
		{"", TypeProperty, "", true},
		{"12345", ResourceType("bogus"), "", true},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.id, tt.typ)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Normalize(%q, %s) = %q, want error", tt.id, tt.typ, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Normalize(%q, %s) unexpected error: %v", tt.id, tt.typ, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q, %s) = %q, want %q", tt.id, tt.typ, got, tt.want)
		}
	}
}

func TestNormalize_WrongTypeMessage(t *testing.T) {
	_, err := Normalize("ctr_C-1", TypeGroup)
	if err == nil {
		t.Fatal("expected error")
	}
	want := `expected a group ID but "ctr_C-1" looks like a contract ID`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("prp_12345", TypeProperty); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate("12345", TypeProperty); err == nil {
		t.Error("bare ID should not validate as canonical")
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"prp_12345", "12345"},
		{"atv_555", "555"},
		{"12345", "12345"},
	}
	for _, tt := range tests {
		if got := Strip(tt.id); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("prp_12345") {
		t.Error("prp_12345 should be numeric after strip")
	}
	if IsNumeric("ctr_C-0N7RAC7") {
		t.Error("contract suffix is not numeric")
	}
}
