package papi

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// ListGroupsMCP is the MCP wrapper for ListGroups
func (c *Client) ListGroupsMCP(ctx context.Context, args ListGroupsArgs) (ListGroupsResult, error) {
	groups, err := c.ListGroups(ctx)
	if err != nil {
		return ListGroupsResult{}, err
	}

	if args.Search != "" {
		needle := strings.ToLower(args.Search)
		filtered := make([]Group, 0, len(groups))
		for _, g := range groups {
			if strings.Contains(strings.ToLower(g.GroupName), needle) {
				filtered = append(filtered, g)
			}
		}
		groups = filtered
	}

	return ListGroupsResult{Groups: groups, Total: len(groups)}, nil
}

// ListContractsMCP is the MCP wrapper for ListContracts
func (c *Client) ListContractsMCP(ctx context.Context, args ListContractsArgs) (ListContractsResult, error) {
	contracts, err := c.ListContracts(ctx)
	if err != nil {
		return ListContractsResult{}, err
	}
	return ListContractsResult{Contracts: contracts, Total: len(contracts)}, nil
}

// ListPropertiesMCP is the MCP wrapper for ListProperties
func (c *Client) ListPropertiesMCP(ctx context.Context, args ListPropertiesArgs) (ListPropertiesResult, error) {
	properties, err := c.ListProperties(ctx, args.ContractID, args.GroupID)
	if err != nil {
		return ListPropertiesResult{}, err
	}
	return ListPropertiesResult{Properties: properties, Total: len(properties)}, nil
}

// GetPropertyMCP is the MCP wrapper for GetProperty
func (c *Client) GetPropertyMCP(ctx context.Context, args GetPropertyArgs) (GetPropertyResult, error) {
	property, err := c.GetProperty(ctx, args.PropertyID)
	if err != nil {
		return GetPropertyResult{}, err
	}
	return GetPropertyResult{Property: property}, nil
}

// CreatePropertyMCP is the MCP wrapper for CreateProperty
func (c *Client) CreatePropertyMCP(ctx context.Context, args CreatePropertyArgs) (CreatePropertyResult, error) {
	if err := ValidatePropertyName(args.PropertyName); err != nil {
		return CreatePropertyResult{}, err
	}
	if err := ValidateProductID(args.ProductID); err != nil {
		return CreatePropertyResult{}, err
	}

	propertyID, err := c.CreateProperty(ctx, args.PropertyName, args.ProductID, args.ContractID, args.GroupID)
	if err != nil {
		return CreatePropertyResult{}, err
	}
	return CreatePropertyResult{PropertyID: propertyID}, nil
}

// CreateVersionMCP is the MCP wrapper for CreateVersion
func (c *Client) CreateVersionMCP(ctx context.Context, args CreateVersionArgs) (CreateVersionResult, error) {
	if err := ValidateVersion(args.FromVersion); err != nil {
		return CreateVersionResult{}, err
	}

	version, err := c.CreateVersion(ctx, args.PropertyID, args.FromVersion)
	if err != nil {
		return CreateVersionResult{}, err
	}
	return CreateVersionResult{PropertyID: args.PropertyID, Version: version}, nil
}

// GetRuleTreeMCP is the MCP wrapper for GetRuleTree
func (c *Client) GetRuleTreeMCP(ctx context.Context, args GetRuleTreeArgs) (GetRuleTreeResult, error) {
	if err := ValidateVersion(args.Version); err != nil {
		return GetRuleTreeResult{}, err
	}

	tree, err := c.GetRuleTree(ctx, args.PropertyID, args.Version)
	if err != nil {
		return GetRuleTreeResult{}, err
	}
	return GetRuleTreeResult{RuleTree: tree}, nil
}

// UpdateRuleTreeMCP is the MCP wrapper for UpdateRuleTree
func (c *Client) UpdateRuleTreeMCP(ctx context.Context, args UpdateRuleTreeArgs) (UpdateRuleTreeResult, error) {
	if err := ValidateVersion(args.Version); err != nil {
		return UpdateRuleTreeResult{}, err
	}

	warnings, err := c.UpdateRuleTree(ctx, args.PropertyID, args.Version, args.Rules)
	if err != nil {
		return UpdateRuleTreeResult{}, err
	}
	return UpdateRuleTreeResult{Warnings: warnings, Updated: true}, nil
}

// PatchRuleTreeMCP merges a partial rule tree into the stored one. With
// dryRun set it reports the resulting diff without saving.
func (c *Client) PatchRuleTreeMCP(ctx context.Context, args PatchRuleTreeArgs) (PatchRuleTreeResult, error) {
	if err := ValidateVersion(args.Version); err != nil {
		return PatchRuleTreeResult{}, err
	}

	tree, err := c.GetRuleTree(ctx, args.PropertyID, args.Version)
	if err != nil {
		return PatchRuleTreeResult{}, err
	}

	merged := MergeRules(tree.Rules, args.Patch)
	changes := DiffRules(tree.Rules, merged)

	if args.DryRun || len(changes) == 0 {
		return PatchRuleTreeResult{Changes: changes}, nil
	}

	warnings, err := c.UpdateRuleTree(ctx, args.PropertyID, args.Version, merged)
	if err != nil {
		return PatchRuleTreeResult{}, err
	}
	return PatchRuleTreeResult{Changes: changes, Warnings: warnings, Saved: true}, nil
}

// DiffRuleTreesMCP compares the rule trees of two property versions.
func (c *Client) DiffRuleTreesMCP(ctx context.Context, args DiffRuleTreesArgs) (DiffRuleTreesResult, error) {
	if err := ValidateVersion(args.LeftVersion); err != nil {
		return DiffRuleTreesResult{}, err
	}
	if err := ValidateVersion(args.RightVersion); err != nil {
		return DiffRuleTreesResult{}, err
	}

	var left, right *RuleTree
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		left, err = c.GetRuleTree(gctx, args.PropertyID, args.LeftVersion)
		return err
	})
	group.Go(func() error {
		var err error
		right, err = c.GetRuleTree(gctx, args.PropertyID, args.RightVersion)
		return err
	})
	if err := group.Wait(); err != nil {
		return DiffRuleTreesResult{}, err
	}

	changes := DiffRules(left.Rules, right.Rules)
	return DiffRuleTreesResult{Changes: changes, Identical: len(changes) == 0}, nil
}

// OptimizeRuleTreeMCP removes empty rules and duplicate behaviors from a
// rule tree version.
func (c *Client) OptimizeRuleTreeMCP(ctx context.Context, args OptimizeRuleTreeArgs) (OptimizeRuleTreeResult, error) {
	if err := ValidateVersion(args.Version); err != nil {
		return OptimizeRuleTreeResult{}, err
	}

	tree, err := c.GetRuleTree(ctx, args.PropertyID, args.Version)
	if err != nil {
		return OptimizeRuleTreeResult{}, err
	}

	optimized, removed := OptimizeRules(tree.Rules)
	if args.DryRun || removed == 0 {
		return OptimizeRuleTreeResult{Removed: removed}, nil
	}

	warnings, err := c.UpdateRuleTree(ctx, args.PropertyID, args.Version, optimized)
	if err != nil {
		return OptimizeRuleTreeResult{}, err
	}
	return OptimizeRuleTreeResult{Removed: removed, Warnings: warnings, Saved: true}, nil
}

// ListHostnamesMCP is the MCP wrapper for ListHostnames
func (c *Client) ListHostnamesMCP(ctx context.Context, args ListHostnamesArgs) (ListHostnamesResult, error) {
	if err := ValidateVersion(args.Version); err != nil {
		return ListHostnamesResult{}, err
	}

	hostnames, err := c.ListHostnames(ctx, args.PropertyID, args.Version)
	if err != nil {
		return ListHostnamesResult{}, err
	}
	return ListHostnamesResult{Hostnames: hostnames, Total: len(hostnames)}, nil
}

// ActivatePropertyMCP is the MCP wrapper for Activate
func (c *Client) ActivatePropertyMCP(ctx context.Context, args ActivatePropertyArgs) (ActivatePropertyResult, error) {
	network, err := ValidateNetwork(args.Network)
	if err != nil {
		return ActivatePropertyResult{}, err
	}
	if err := ValidateVersion(args.Version); err != nil {
		return ActivatePropertyResult{}, err
	}
	if err := ValidateNotifyEmails(args.NotifyEmails); err != nil {
		return ActivatePropertyResult{}, err
	}

	activation, err := c.Activate(ctx, ActivateOptions{
		PropertyID:   args.PropertyID,
		Version:      args.Version,
		Network:      network,
		Note:         args.Note,
		NotifyEmails: args.NotifyEmails,
		Wait:         args.Wait,
	})
	if err != nil {
		return ActivatePropertyResult{}, err
	}
	return ActivatePropertyResult{
		ActivationID: activation.ActivationID,
		Status:       activation.Status,
		Network:      activation.Network,
	}, nil
}

// GetActivationStatusMCP reports the latest activation on each network.
func (c *Client) GetActivationStatusMCP(ctx context.Context, args GetActivationStatusArgs) (GetActivationStatusResult, error) {
	latest, err := c.LatestActivations(ctx, args.PropertyID)
	if err != nil {
		return GetActivationStatusResult{}, err
	}

	return GetActivationStatusResult{
		Staging:    networkStatus(NetworkStaging, latest[NetworkStaging]),
		Production: networkStatus(NetworkProduction, latest[NetworkProduction]),
	}, nil
}

func networkStatus(network string, activation *Activation) NetworkStatus {
	if activation == nil {
		return NetworkStatus{Network: network, Status: "INACTIVE"}
	}
	return NetworkStatus{
		Network:      network,
		ActivationID: activation.ActivationID,
		Version:      activation.PropertyVersion,
		Status:       activation.Status,
	}
}
