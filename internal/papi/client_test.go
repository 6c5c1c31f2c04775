package papi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
	"github.com/acedergren/alecs-mcp-server-go/internal/flow"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := edgegrid.NewSession(edgegrid.Config{
		Host:         "akab-test.luna.akamaiapis.net",
		ClientToken:  "akab-client-token",
		ClientSecret: "secret",
		AccessToken:  "akab-access-token",
	}, edgegrid.WithBaseURL(server.URL))
	t.Cleanup(session.Close)

	return NewClient(session), server
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestListGroupsCaches(t *testing.T) {
	var hits int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/papi/v1/groups" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("PAPI-Use-Prefixes") != "true" {
			t.Error("missing PAPI-Use-Prefixes header")
		}
		writeJSON(t, w, map[string]interface{}{
			"groups": map[string]interface{}{
				"items": []Group{{GroupID: "grp_12345", GroupName: "Example Group", ContractIDs: []string{"ctr_C-1"}}},
			},
		})
	}))

	for i := 0; i < 3; i++ {
		groups, err := client.ListGroups(context.Background())
		if err != nil {
			t.Fatalf("ListGroups: %v", err)
		}
		if len(groups) != 1 || groups[0].GroupID != "grp_12345" {
			t.Fatalf("groups = %+v", groups)
		}
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("server hits = %d, want 1 (cached)", got)
	}
}

func TestResolveGroupByName(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{
			"groups": map[string]interface{}{
				"items": []Group{
					{GroupID: "grp_1", GroupName: "Production"},
					{GroupID: "grp_2", GroupName: "Staging"},
				},
			},
		})
	}))

	group, err := client.ResolveGroup(context.Background(), "staging")
	if err != nil {
		t.Fatalf("ResolveGroup: %v", err)
	}
	if group.GroupID != "grp_2" {
		t.Errorf("group = %+v", group)
	}

	if _, err := client.ResolveGroup(context.Background(), "nonexistent"); !apierrors.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"type":"https://problems.luna.akamaiapis.net/papi/v0/http/not-found","title":"Not Found","status":404}`)
	}))

	_, err := client.GetProperty(context.Background(), "prp_99999")
	if !apierrors.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestGetPropertyNormalizesID(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/papi/v1/properties/prp_12345" {
			t.Errorf("path = %s, want bare ID normalized to prp_ prefix", r.URL.Path)
		}
		writeJSON(t, w, map[string]interface{}{
			"properties": map[string]interface{}{
				"items": []Property{{PropertyID: "prp_12345", PropertyName: "www.example.com"}},
			},
		})
	}))

	property, err := client.GetProperty(context.Background(), "12345")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if property.PropertyName != "www.example.com" {
		t.Errorf("property = %+v", property)
	}
}

func TestCreateProperty(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var body createPropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.PropertyName != "www.example.com" || body.ProductID != "prd_Fresca" {
			t.Errorf("body = %+v", body)
		}
		if got := r.URL.Query().Get("contractId"); got != "ctr_C-1FRYVV3" {
			t.Errorf("contractId = %q", got)
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, map[string]string{
			"propertyLink": "/papi/v1/properties/prp_55555?contractId=ctr_C-1FRYVV3&groupId=grp_12345",
		})
	}))

	propertyID, err := client.CreateProperty(context.Background(), "www.example.com", "prd_Fresca", "C-1FRYVV3", "12345")
	if err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}
	if propertyID != "prp_55555" {
		t.Errorf("propertyID = %q", propertyID)
	}
}

func TestCreateVersion(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body createVersionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.CreateFromVersion != 3 {
			t.Errorf("createFromVersion = %d", body.CreateFromVersion)
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, map[string]string{
			"versionLink": "/papi/v1/properties/prp_12345/versions/4",
		})
	}))

	version, err := client.CreateVersion(context.Background(), "prp_12345", 3)
	if err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	if version != 4 {
		t.Errorf("version = %d, want 4", version)
	}
}

func TestUpdateRuleTreeInvalidTreeRejectedLocally(t *testing.T) {
	var hit bool
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))

	_, err := client.UpdateRuleTree(context.Background(), "prp_12345", 1, Rule{Name: "not-default"})
	if !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if hit {
		t.Error("invalid tree must not reach the API")
	}
}

func TestUpdateRuleTreeInvalidatesCache(t *testing.T) {
	var gets int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt32(&gets, 1)
			writeJSON(t, w, RuleTree{RuleFormat: "v2025-02-18", Rules: Rule{Name: "default"}})
		case http.MethodPut:
			writeJSON(t, w, map[string]interface{}{"warnings": []RuleValidationItem{}})
		}
	}))

	ctx := context.Background()
	if _, err := client.GetRuleTree(ctx, "prp_1", 1); err != nil {
		t.Fatalf("GetRuleTree: %v", err)
	}
	if _, err := client.GetRuleTree(ctx, "prp_1", 1); err != nil {
		t.Fatalf("GetRuleTree: %v", err)
	}
	if got := atomic.LoadInt32(&gets); got != 1 {
		t.Fatalf("gets before update = %d, want 1", got)
	}

	if _, err := client.UpdateRuleTree(ctx, "prp_1", 1, Rule{Name: "default", Behaviors: []Behavior{{Name: "origin"}}}); err != nil {
		t.Fatalf("UpdateRuleTree: %v", err)
	}
	if _, err := client.GetRuleTree(ctx, "prp_1", 1); err != nil {
		t.Fatalf("GetRuleTree: %v", err)
	}
	if got := atomic.LoadInt32(&gets); got != 2 {
		t.Errorf("gets after update = %d, want cache invalidated", got)
	}
}

func TestActivateWaitsForActive(t *testing.T) {
	var checks int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, map[string]string{
				"activationLink": "/papi/v1/properties/prp_1/activations/atv_777",
			})
		case r.Method == http.MethodGet:
			status := ActivationPending
			if atomic.AddInt32(&checks, 1) >= 2 {
				status = ActivationActive
			}
			writeJSON(t, w, map[string]interface{}{
				"activations": map[string]interface{}{
					"items": []Activation{{ActivationID: "atv_777", PropertyVersion: 4, Network: NetworkStaging, Status: status}},
				},
			})
		}
	}))

	activation, err := client.Activate(context.Background(), ActivateOptions{
		PropertyID: "prp_1",
		Version:    4,
		Network:    NetworkStaging,
		Wait:       true,
		Poll:       flow.PollConfig{Interval: 10 * time.Millisecond, Timeout: 5 * time.Second},
	})
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if activation.Status != ActivationActive {
		t.Errorf("status = %q, want ACTIVE", activation.Status)
	}
}

func TestActivateFailureCancelsActivation(t *testing.T) {
	var canceled int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, map[string]string{
				"activationLink": "/papi/v1/properties/prp_1/activations/atv_888",
			})
		case http.MethodGet:
			writeJSON(t, w, map[string]interface{}{
				"activations": map[string]interface{}{
					"items": []Activation{{ActivationID: "atv_888", Network: NetworkStaging, Status: ActivationFailed}},
				},
			})
		case http.MethodDelete:
			atomic.AddInt32(&canceled, 1)
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{}`)
		}
	}))

	_, err := client.Activate(context.Background(), ActivateOptions{
		PropertyID: "prp_1",
		Version:    4,
		Network:    NetworkStaging,
		Wait:       true,
		Poll:       flow.PollConfig{Interval: 10 * time.Millisecond, Timeout: 5 * time.Second},
	})
	if err == nil {
		t.Fatal("expected a workflow error for a FAILED activation")
	}
	var workflowErr *apierrors.WorkflowError
	if !errors.As(err, &workflowErr) {
		t.Fatalf("error type = %T: %v", err, err)
	}
	if !workflowErr.RolledBack {
		t.Error("expected RolledBack")
	}
	if atomic.LoadInt32(&canceled) != 1 {
		t.Errorf("cancel calls = %d, want 1", canceled)
	}
}

func TestActivateRejectsBadNetwork(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the API")
	}))

	_, err := client.Activate(context.Background(), ActivateOptions{
		PropertyID: "prp_1",
		Version:    1,
		Network:    "LIVE",
	})
	if !apierrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestLatestActivationsPicksNewestPerNetwork(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{
			"activations": map[string]interface{}{
				"items": []Activation{
					{ActivationID: "atv_3", Network: NetworkStaging, PropertyVersion: 5, Status: ActivationActive},
					{ActivationID: "atv_2", Network: NetworkProduction, PropertyVersion: 4, Status: ActivationActive},
					{ActivationID: "atv_1", Network: NetworkStaging, PropertyVersion: 4, Status: ActivationDeactivated},
				},
			},
		})
	}))

	latest, err := client.LatestActivations(context.Background(), "prp_1")
	if err != nil {
		t.Fatalf("LatestActivations: %v", err)
	}
	if latest[NetworkStaging].ActivationID != "atv_3" {
		t.Errorf("staging = %+v", latest[NetworkStaging])
	}
	if latest[NetworkProduction].ActivationID != "atv_2" {
		t.Errorf("production = %+v", latest[NetworkProduction])
	}
}
