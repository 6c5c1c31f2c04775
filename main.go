// ALECS - A Model Context Protocol server for the Akamai control plane.
// Provides tools for managing CDN properties, Edge DNS zones, certificates,
// and network lists through EdgeGrid-authenticated APIs.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/acedergren/alecs-mcp-server-go/internal/cps"
	"github.com/acedergren/alecs-mcp-server-go/internal/dns"
	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	"github.com/acedergren/alecs-mcp-server-go/internal/netlist"
	"github.com/acedergren/alecs-mcp-server-go/internal/papi"
	"github.com/acedergren/alecs-mcp-server-go/tools"
	"github.com/acedergren/alecs-mcp-server-go/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "alecs-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	cfg, err := edgegrid.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load EdgeGrid credentials: %v", err)
	}

	// One session is shared by all clients so caching, deduplication, and
	// circuit breaking see the account's whole traffic.
	session := edgegrid.NewSession(cfg, edgegrid.WithLogger(logger))
	defer session.Close()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `ALECS provides tools for managing the Akamai control plane.

Service areas:
- Property Manager (akamai_list_properties, akamai_get_rule_tree, ...):
  CDN configurations, rule trees, and activations. Prefer
  akamai_patch_rule_tree over akamai_update_rule_tree for targeted edits.
- Edge DNS (akamai_list_zones, akamai_upsert_record, ...): zones and
  records. Record edits run through an atomic changelist: use
  akamai_bulk_edit_records when several records must change together.
- Certificates (akamai_list_certificates, akamai_create_dv_certificate,
  ...): DV enrollments, validation challenges, and deployments.
- Network Lists (akamai_list_network_lists, akamai_activate_network_list,
  ...): IP and GEO lists for security policies. Edits take effect only
  after activation.

Write tools that accept "wait": true block until the change reaches a
terminal state and roll back on failure where the API supports it.

Configure via ~/.edgerc or environment variables:
- AKAMAI_HOST, AKAMAI_CLIENT_TOKEN, AKAMAI_CLIENT_SECRET,
  AKAMAI_ACCESS_TOKEN: EdgeGrid credentials
- AKAMAI_EDGERC, AKAMAI_EDGERC_SECTION: credential file and section
- AKAMAI_ACCOUNT_KEY: account switch key for partners`,
	})

	registry := tools.NewHandlerRegistry(
		papi.NewClient(session),
		dns.NewClient(session),
		cps.NewClient(session),
		netlist.NewClient(session),
		logger,
	)
	registry.RegisterAll(server)

	logger.Info("Starting Akamai MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"host", cfg.Host,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
