package tools

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/acedergren/alecs-mcp-server-go/internal/cps"
	"github.com/acedergren/alecs-mcp-server-go/internal/dns"
	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	"github.com/acedergren/alecs-mcp-server-go/internal/netlist"
	"github.com/acedergren/alecs-mcp-server-go/internal/papi"
)

func testRegistry(t *testing.T) *HandlerRegistry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	session := edgegrid.NewSession(edgegrid.Config{
		Host:         "akab-test.luna.akamaiapis.net",
		ClientToken:  "akab-client-token",
		ClientSecret: "secret",
		AccessToken:  "akab-access-token",
	}, edgegrid.WithLogger(logger))
	t.Cleanup(session.Close)

	return NewHandlerRegistry(
		papi.NewClient(session),
		dns.NewClient(session),
		cps.NewClient(session),
		netlist.NewClient(session),
		logger,
	)
}

func TestNewHandlerRegistry(t *testing.T) {
	registry := testRegistry(t)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.papiClient == nil || registry.dnsClient == nil ||
		registry.cpsClient == nil || registry.netlistClient == nil {
		t.Error("Registry should hold all four client references")
	}
	if registry.logger == nil {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	registry := testRegistry(t)

	tests := []struct {
		name      string
		spec      ToolSpec
		wantName  string
		wantRO    bool
		wantIdem  bool
		wantDestr bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "akamai_list_properties",
				Title:       "List Properties",
				Description: "List CDN properties",
				Method:      "ListProperties",
				Service:     "papi",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName: "akamai_list_properties",
			wantRO:   true,
			wantIdem: true,
		},
		{
			name: "destructive open-world tool",
			spec: ToolSpec{
				Name:        "akamai_delete_record",
				Title:       "Delete DNS Record",
				Description: "Delete one record set",
				Method:      "DeleteRecord",
				Service:     "dns",
				Destructive: true,
				OpenWorld:   true,
			},
			wantName:  "akamai_delete_record",
			wantDestr: true,
			wantOpen:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantDestr && (tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint) {
				t.Error("Expected DestructiveHint to be true")
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	registry := testRegistry(t)

	// recoverPanic must swallow the panic without panicking itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()
}

func TestLogExecution(t *testing.T) {
	registry := testRegistry(t)
	spec := ToolSpec{Name: "test_tool", Service: "papi"}

	registry.logExecution(spec,
		papi.GetPropertyArgs{PropertyID: "prp_12345"},
		papi.GetPropertyResult{})

	registry.logExecution(spec,
		papi.ActivatePropertyArgs{PropertyID: "prp_12345", Version: 3, Network: "STAGING"},
		papi.ActivatePropertyResult{ActivationID: "atv_1", Status: "PENDING"})

	registry.logExecution(spec,
		dns.BulkEditRecordsArgs{Zone: "example.com", Upserts: []dns.RecordSet{{Name: "www.example.com"}}},
		dns.BulkEditRecordsResult{RequestID: "req-1", Edits: 1, Submitted: true})

	registry.logExecution(spec,
		netlist.ActivateNetworkListArgs{UniqueID: "12345_LIST", Environment: "PRODUCTION"},
		netlist.ActivateNetworkListResult{ActivationID: 99, Status: "ACTIVE"})
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Service == "" {
			t.Errorf("Tool %s has empty Service", spec.Name)
		}
	}
}

func TestAllToolNamesUniqueAndPrefixed(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range AllTools {
		if seen[spec.Name] {
			t.Errorf("Duplicate tool name: %s", spec.Name)
		}
		seen[spec.Name] = true
		if !strings.HasPrefix(spec.Name, "akamai_") {
			t.Errorf("Tool %s is missing the akamai_ prefix", spec.Name)
		}
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		// Property Manager tools
		"ListGroups":          true,
		"ListContracts":       true,
		"ListProperties":      true,
		"GetProperty":         true,
		"CreateProperty":      true,
		"CreateVersion":       true,
		"GetRuleTree":         true,
		"UpdateRuleTree":      true,
		"PatchRuleTree":       true,
		"DiffRuleTrees":       true,
		"OptimizeRuleTree":    true,
		"ListHostnames":       true,
		"ActivateProperty":    true,
		"GetActivationStatus": true,
		// Edge DNS tools
		"ListZones":         true,
		"GetZone":           true,
		"CreateZone":        true,
		"ListRecordSets":    true,
		"GetRecordSet":      true,
		"UpsertRecord":      true,
		"DeleteRecord":      true,
		"BulkEditRecords":   true,
		"GetChangeList":     true,
		"DiscardChangeList": true,
		// Certificate tools
		"ListEnrollments":         true,
		"GetEnrollment":           true,
		"CreateDVEnrollment":      true,
		"GetDVChallenges":         true,
		"AcknowledgeDVChallenges": true,
		"GetDeployments":          true,
		// Network list tools
		"ListNetworkLists":     true,
		"GetNetworkList":       true,
		"CreateNetworkList":    true,
		"AddElements":          true,
		"RemoveElement":        true,
		"ActivateNetworkList":  true,
		"GetNetworkListStatus": true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolsByService(t *testing.T) {
	for _, service := range []string{"papi", "dns", "cps", "netlist"} {
		specs := ToolsByService(service)
		if len(specs) == 0 {
			t.Errorf("Expected tools for service %s", service)
		}
		for _, spec := range specs {
			if spec.Service != service {
				t.Errorf("Tool %s has service %s, expected %s", spec.Name, spec.Service, service)
			}
		}
	}

	if specs := ToolsByService("unknown"); len(specs) != 0 {
		t.Errorf("Expected 0 tools for unknown service, got %d", len(specs))
	}
}

func TestToolsByCategory(t *testing.T) {
	readTools := ToolsByCategory("read")
	if len(readTools) == 0 {
		t.Error("Expected read tools")
	}
	for _, tool := range readTools {
		if tool.Category != "read" {
			t.Errorf("Tool %s has category %s, expected read", tool.Name, tool.Category)
		}
		if !tool.ReadOnly {
			t.Errorf("Tool %s is in the read category but not marked read-only", tool.Name)
		}
	}
}

func TestDestructiveToolsNotReadOnly(t *testing.T) {
	for _, spec := range AllTools {
		if spec.Destructive && spec.ReadOnly {
			t.Errorf("Tool %s is marked both destructive and read-only", spec.Name)
		}
	}
}
