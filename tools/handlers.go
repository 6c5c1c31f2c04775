package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/acedergren/alecs-mcp-server-go/internal/cps"
	"github.com/acedergren/alecs-mcp-server-go/internal/dns"
	"github.com/acedergren/alecs-mcp-server-go/internal/netlist"
	"github.com/acedergren/alecs-mcp-server-go/internal/papi"
	"github.com/acedergren/alecs-mcp-server-go/metrics"
	"github.com/acedergren/alecs-mcp-server-go/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	papiClient    *papi.Client
	dnsClient     *dns.Client
	cpsClient     *cps.Client
	netlistClient *netlist.Client
	logger        *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(papiClient *papi.Client, dnsClient *dns.Client, cpsClient *cps.Client, netlistClient *netlist.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		papiClient:    papiClient,
		dnsClient:     dnsClient,
		cpsClient:     cpsClient,
		netlistClient: netlistClient,
		logger:        logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Property Manager tools
	case "ListGroups":
		register(h, server, tool, spec, h.papiClient.ListGroupsMCP)
	case "ListContracts":
		register(h, server, tool, spec, h.papiClient.ListContractsMCP)
	case "ListProperties":
		register(h, server, tool, spec, h.papiClient.ListPropertiesMCP)
	case "GetProperty":
		register(h, server, tool, spec, h.papiClient.GetPropertyMCP)
	case "CreateProperty":
		register(h, server, tool, spec, h.papiClient.CreatePropertyMCP)
	case "CreateVersion":
		register(h, server, tool, spec, h.papiClient.CreateVersionMCP)
	case "GetRuleTree":
		register(h, server, tool, spec, h.papiClient.GetRuleTreeMCP)
	case "UpdateRuleTree":
		register(h, server, tool, spec, h.papiClient.UpdateRuleTreeMCP)
	case "PatchRuleTree":
		register(h, server, tool, spec, h.papiClient.PatchRuleTreeMCP)
	case "DiffRuleTrees":
		register(h, server, tool, spec, h.papiClient.DiffRuleTreesMCP)
	case "OptimizeRuleTree":
		register(h, server, tool, spec, h.papiClient.OptimizeRuleTreeMCP)
	case "ListHostnames":
		register(h, server, tool, spec, h.papiClient.ListHostnamesMCP)
	case "ActivateProperty":
		register(h, server, tool, spec, h.papiClient.ActivatePropertyMCP)
	case "GetActivationStatus":
		register(h, server, tool, spec, h.papiClient.GetActivationStatusMCP)

	// Edge DNS tools
	case "ListZones":
		register(h, server, tool, spec, h.dnsClient.ListZonesMCP)
	case "GetZone":
		register(h, server, tool, spec, h.dnsClient.GetZoneMCP)
	case "CreateZone":
		register(h, server, tool, spec, h.dnsClient.CreateZoneMCP)
	case "ListRecordSets":
		register(h, server, tool, spec, h.dnsClient.ListRecordSetsMCP)
	case "GetRecordSet":
		register(h, server, tool, spec, h.dnsClient.GetRecordSetMCP)
	case "UpsertRecord":
		register(h, server, tool, spec, h.dnsClient.UpsertRecordMCP)
	case "DeleteRecord":
		register(h, server, tool, spec, h.dnsClient.DeleteRecordMCP)
	case "BulkEditRecords":
		register(h, server, tool, spec, h.dnsClient.BulkEditRecordsMCP)
	case "GetChangeList":
		register(h, server, tool, spec, h.dnsClient.GetChangeListMCP)
	case "DiscardChangeList":
		register(h, server, tool, spec, h.dnsClient.DiscardChangeListMCP)

	// Certificate tools
	case "ListEnrollments":
		register(h, server, tool, spec, h.cpsClient.ListEnrollmentsMCP)
	case "GetEnrollment":
		register(h, server, tool, spec, h.cpsClient.GetEnrollmentMCP)
	case "CreateDVEnrollment":
		register(h, server, tool, spec, h.cpsClient.CreateDVEnrollmentMCP)
	case "GetDVChallenges":
		register(h, server, tool, spec, h.cpsClient.GetDVChallengesMCP)
	case "AcknowledgeDVChallenges":
		register(h, server, tool, spec, h.cpsClient.AcknowledgeDVChallengesMCP)
	case "GetDeployments":
		register(h, server, tool, spec, h.cpsClient.GetDeploymentsMCP)

	// Network list tools
	case "ListNetworkLists":
		register(h, server, tool, spec, h.netlistClient.ListNetworkListsMCP)
	case "GetNetworkList":
		register(h, server, tool, spec, h.netlistClient.GetNetworkListMCP)
	case "CreateNetworkList":
		register(h, server, tool, spec, h.netlistClient.CreateNetworkListMCP)
	case "AddElements":
		register(h, server, tool, spec, h.netlistClient.AddElementsMCP)
	case "RemoveElement":
		register(h, server, tool, spec, h.netlistClient.RemoveElementMCP)
	case "ActivateNetworkList":
		register(h, server, tool, spec, h.netlistClient.ActivateNetworkListMCP)
	case "GetNetworkListStatus":
		register(h, server, tool, spec, h.netlistClient.GetNetworkListStatusMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.String("mcp.tool.service", spec.Service),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "service", spec.Service}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	// Property Manager args
	case papi.ListPropertiesArgs:
		attrs = append(attrs, "contract_id", a.ContractID, "group_id", a.GroupID)
	case papi.GetPropertyArgs:
		attrs = append(attrs, "property_id", a.PropertyID)
	case papi.CreatePropertyArgs:
		attrs = append(attrs, "property_name", a.PropertyName)
	case papi.CreateVersionArgs:
		attrs = append(attrs, "property_id", a.PropertyID, "from_version", a.FromVersion)
	case papi.GetRuleTreeArgs:
		attrs = append(attrs, "property_id", a.PropertyID, "version", a.Version)
	case papi.UpdateRuleTreeArgs:
		attrs = append(attrs, "property_id", a.PropertyID, "version", a.Version)
	case papi.PatchRuleTreeArgs:
		attrs = append(attrs, "property_id", a.PropertyID, "version", a.Version, "dry_run", a.DryRun)
	case papi.DiffRuleTreesArgs:
		attrs = append(attrs, "property_id", a.PropertyID, "left", a.LeftVersion, "right", a.RightVersion)
	case papi.OptimizeRuleTreeArgs:
		attrs = append(attrs, "property_id", a.PropertyID, "version", a.Version, "dry_run", a.DryRun)
	case papi.ListHostnamesArgs:
		attrs = append(attrs, "property_id", a.PropertyID, "version", a.Version)
	case papi.ActivatePropertyArgs:
		attrs = append(attrs, "property_id", a.PropertyID, "version", a.Version, "network", a.Network, "wait", a.Wait)
	case papi.GetActivationStatusArgs:
		attrs = append(attrs, "property_id", a.PropertyID)
	// Edge DNS args
	case dns.GetZoneArgs:
		attrs = append(attrs, "zone", a.Zone)
	case dns.CreateZoneArgs:
		attrs = append(attrs, "zone", a.Zone, "type", a.Type)
	case dns.ListRecordSetsArgs:
		attrs = append(attrs, "zone", a.Zone)
	case dns.GetRecordSetArgs:
		attrs = append(attrs, "zone", a.Zone, "name", a.Name, "type", a.Type)
	case dns.UpsertRecordArgs:
		attrs = append(attrs, "zone", a.Zone, "name", a.Name, "type", a.Type, "wait", a.Wait)
	case dns.DeleteRecordArgs:
		attrs = append(attrs, "zone", a.Zone, "name", a.Name, "type", a.Type, "wait", a.Wait)
	case dns.BulkEditRecordsArgs:
		attrs = append(attrs, "zone", a.Zone, "upserts", len(a.Upserts), "deletes", len(a.Deletes), "wait", a.Wait)
	case dns.GetChangeListArgs:
		attrs = append(attrs, "zone", a.Zone)
	case dns.DiscardChangeListArgs:
		attrs = append(attrs, "zone", a.Zone)
	// Certificate args
	case cps.GetEnrollmentArgs:
		attrs = append(attrs, "enrollment_id", a.EnrollmentID)
	case cps.CreateDVEnrollmentArgs:
		attrs = append(attrs, "common_name", a.CommonName, "sans", len(a.SANs))
	case cps.GetDVChallengesArgs:
		attrs = append(attrs, "enrollment_id", a.EnrollmentID, "change_id", a.ChangeID)
	case cps.AcknowledgeDVChallengesArgs:
		attrs = append(attrs, "enrollment_id", a.EnrollmentID, "change_id", a.ChangeID, "wait", a.Wait)
	case cps.GetDeploymentsArgs:
		attrs = append(attrs, "enrollment_id", a.EnrollmentID)
	// Network list args
	case netlist.GetNetworkListArgs:
		attrs = append(attrs, "unique_id", a.UniqueID)
	case netlist.CreateNetworkListArgs:
		attrs = append(attrs, "name", a.Name, "type", a.Type)
	case netlist.AddElementsArgs:
		attrs = append(attrs, "unique_id", a.UniqueID, "elements", len(a.Elements))
	case netlist.RemoveElementArgs:
		attrs = append(attrs, "unique_id", a.UniqueID, "element", a.Element)
	case netlist.ActivateNetworkListArgs:
		attrs = append(attrs, "unique_id", a.UniqueID, "environment", a.Environment, "wait", a.Wait)
	case netlist.GetNetworkListStatusArgs:
		attrs = append(attrs, "unique_id", a.UniqueID)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	// Property Manager results
	case papi.ListGroupsResult:
		attrs = append(attrs, "groups", r.Total)
	case papi.ListContractsResult:
		attrs = append(attrs, "contracts", r.Total)
	case papi.ListPropertiesResult:
		attrs = append(attrs, "properties", r.Total)
	case papi.CreatePropertyResult:
		attrs = append(attrs, "created_property_id", r.PropertyID)
	case papi.CreateVersionResult:
		attrs = append(attrs, "new_version", r.Version)
	case papi.UpdateRuleTreeResult:
		attrs = append(attrs, "warnings", len(r.Warnings))
	case papi.PatchRuleTreeResult:
		attrs = append(attrs, "changes", len(r.Changes), "saved", r.Saved)
	case papi.DiffRuleTreesResult:
		attrs = append(attrs, "changes", len(r.Changes), "identical", r.Identical)
	case papi.OptimizeRuleTreeResult:
		attrs = append(attrs, "removed", r.Removed, "saved", r.Saved)
	case papi.ActivatePropertyResult:
		attrs = append(attrs, "activation_id", r.ActivationID, "status", r.Status)
	// Edge DNS results
	case dns.ListZonesResult:
		attrs = append(attrs, "zones", r.Total)
	case dns.ListRecordSetsResult:
		attrs = append(attrs, "record_sets", r.Total)
	case dns.UpsertRecordResult:
		attrs = append(attrs, "request_id", r.RequestID)
	case dns.DeleteRecordResult:
		attrs = append(attrs, "request_id", r.RequestID)
	case dns.BulkEditRecordsResult:
		attrs = append(attrs, "request_id", r.RequestID, "edits", r.Edits)
	case dns.GetChangeListResult:
		attrs = append(attrs, "open", r.Open)
	// Certificate results
	case cps.ListEnrollmentsResult:
		attrs = append(attrs, "enrollments", r.Total)
	case cps.CreateDVEnrollmentResult:
		attrs = append(attrs, "created_enrollment_id", r.EnrollmentID, "change_id", r.ChangeID)
	case cps.GetDVChallengesResult:
		attrs = append(attrs, "challenges", r.Total)
	case cps.AcknowledgeDVChallengesResult:
		attrs = append(attrs, "state", r.State)
	// Network list results
	case netlist.ListNetworkListsResult:
		attrs = append(attrs, "network_lists", r.Total)
	case netlist.AddElementsResult:
		attrs = append(attrs, "element_count", r.ElementCount, "sync_point", r.SyncPoint)
	case netlist.ActivateNetworkListResult:
		attrs = append(attrs, "activation_id", r.ActivationID, "status", r.Status)
	}

	h.logger.Info("Tool executed", attrs...)
}
