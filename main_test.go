package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/acedergren/alecs-mcp-server-go/internal/cps"
	"github.com/acedergren/alecs-mcp-server-go/internal/dns"
	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	"github.com/acedergren/alecs-mcp-server-go/internal/netlist"
	"github.com/acedergren/alecs-mcp-server-go/internal/papi"
	"github.com/acedergren/alecs-mcp-server-go/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TestRegisterAllTools wires the full registry against a server and checks
// that every tool spec dispatched to a handler. A spec whose Method misses
// the registerByName switch logs an error instead of registering, so the
// log is the signal.
func TestRegisterAllTools(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	session := edgegrid.NewSession(edgegrid.Config{
		Host:         "akab-test.luna.akamaiapis.net",
		ClientToken:  "akab-client-token",
		ClientSecret: "secret",
		AccessToken:  "akab-access-token",
	}, edgegrid.WithLogger(logger))
	defer session.Close()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)

	registry := tools.NewHandlerRegistry(
		papi.NewClient(session),
		dns.NewClient(session),
		cps.NewClient(session),
		netlist.NewClient(session),
		logger,
	)
	registry.RegisterAll(server)

	logs := buf.String()
	if strings.Contains(logs, "Unknown method") {
		t.Errorf("Some tools failed to register:\n%s", logs)
	}
	if !strings.Contains(logs, "Registered all tools") {
		t.Error("Expected registration completion log")
	}
}
