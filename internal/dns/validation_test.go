package dns

import (
	"strings"
	"testing"
)

func TestValidateZoneName(t *testing.T) {
	tests := []struct {
		zone    string
		wantErr bool
	}{
		{"example.com", false},
		{"example.com.", false},
		{"sub.example.co.uk", false},
		{"xn--bcher-kva.example", false},
		{"", true},
		{"no-tld", true},
		{"-bad.example.com", true},
		{strings.Repeat("a", 250) + ".com", true},
	}

	for _, tt := range tests {
		err := ValidateZoneName(tt.zone)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateZoneName(%q) error = %v, wantErr %v", tt.zone, err, tt.wantErr)
		}
	}
}

func TestValidateZoneType(t *testing.T) {
	if err := ValidateZoneType(ZoneTypePrimary, nil, ""); err != nil {
		t.Errorf("PRIMARY rejected: %v", err)
	}
	if err := ValidateZoneType(ZoneTypeSecondary, nil, ""); err == nil {
		t.Error("SECONDARY without masters accepted")
	}
	if err := ValidateZoneType(ZoneTypeSecondary, []string{"192.0.2.53"}, ""); err != nil {
		t.Errorf("SECONDARY with master rejected: %v", err)
	}
	if err := ValidateZoneType(ZoneTypeAlias, nil, ""); err == nil {
		t.Error("ALIAS without target accepted")
	}
	if err := ValidateZoneType("TERTIARY", nil, ""); err == nil {
		t.Error("unknown zone type accepted")
	}
}

func TestValidateRecordType(t *testing.T) {
	got, err := ValidateRecordType("cname")
	if err != nil || got != "CNAME" {
		t.Errorf("ValidateRecordType(cname) = %q, %v", got, err)
	}
	if _, err := ValidateRecordType("SPF"); err == nil {
		t.Error("unsupported record type accepted")
	}
}

func TestValidateRecordSet(t *testing.T) {
	tests := []struct {
		name    string
		rs      RecordSet
		wantErr string
	}{
		{
			name: "valid A record",
			rs:   RecordSet{Name: "www.example.com", Type: "A", TTL: 300, Rdata: []string{"192.0.2.1"}},
		},
		{
			name: "valid AAAA record",
			rs:   RecordSet{Name: "www.example.com", Type: "AAAA", TTL: 300, Rdata: []string{"2001:db8::1"}},
		},
		{
			name: "valid MX record",
			rs:   RecordSet{Name: "example.com", Type: "MX", TTL: 3600, Rdata: []string{"10 mail.example.com."}},
		},
		{
			name: "valid SRV record",
			rs:   RecordSet{Name: "_sip._tcp.example.com", Type: "SRV", TTL: 300, Rdata: []string{"10 60 5060 sip.example.com."}},
		},
		{
			name: "valid CAA record",
			rs:   RecordSet{Name: "example.com", Type: "CAA", TTL: 300, Rdata: []string{`0 issue "letsencrypt.org"`}},
		},
		{
			name:    "A record with IPv6 value",
			rs:      RecordSet{Name: "www.example.com", Type: "A", TTL: 300, Rdata: []string{"2001:db8::1"}},
			wantErr: "IPv4",
		},
		{
			name:    "AAAA record with IPv4 value",
			rs:      RecordSet{Name: "www.example.com", Type: "AAAA", TTL: 300, Rdata: []string{"192.0.2.1"}},
			wantErr: "IPv6",
		},
		{
			name:    "TTL too low",
			rs:      RecordSet{Name: "www.example.com", Type: "A", TTL: 5, Rdata: []string{"192.0.2.1"}},
			wantErr: "between",
		},
		{
			name:    "TTL too high",
			rs:      RecordSet{Name: "www.example.com", Type: "A", TTL: 100000, Rdata: []string{"192.0.2.1"}},
			wantErr: "between",
		},
		{
			name:    "empty rdata",
			rs:      RecordSet{Name: "www.example.com", Type: "A", TTL: 300},
			wantErr: "at least one",
		},
		{
			name:    "CNAME with multiple targets",
			rs:      RecordSet{Name: "www.example.com", Type: "CNAME", TTL: 300, Rdata: []string{"a.example.net.", "b.example.net."}},
			wantErr: "exactly one",
		},
		{
			name:    "CNAME at zone apex",
			rs:      RecordSet{Name: "example.com", Type: "CNAME", TTL: 300, Rdata: []string{"target.example.net."}},
			wantErr: "apex",
		},
		{
			name:    "malformed MX",
			rs:      RecordSet{Name: "example.com", Type: "MX", TTL: 300, Rdata: []string{"mail.example.com."}},
			wantErr: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecordSet("example.com", tt.rs)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestCNAMEAllowedBelowApex(t *testing.T) {
	rs := RecordSet{Name: "www.example.com", Type: "CNAME", TTL: 300, Rdata: []string{"target.example.net."}}
	if err := ValidateRecordSet("example.com", rs); err != nil {
		t.Errorf("CNAME below apex rejected: %v", err)
	}
}
