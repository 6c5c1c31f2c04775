package netlist

import (
	"context"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// ListNetworkListsMCP is the MCP wrapper for ListNetworkLists
func (c *Client) ListNetworkListsMCP(ctx context.Context, args ListNetworkListsArgs) (ListNetworkListsResult, error) {
	lists, err := c.ListNetworkLists(ctx, args.Type, args.Search)
	if err != nil {
		return ListNetworkListsResult{}, err
	}
	return ListNetworkListsResult{NetworkLists: lists, Total: len(lists)}, nil
}

// GetNetworkListMCP is the MCP wrapper for GetNetworkList
func (c *Client) GetNetworkListMCP(ctx context.Context, args GetNetworkListArgs) (GetNetworkListResult, error) {
	list, err := c.GetNetworkList(ctx, args.UniqueID)
	if err != nil {
		return GetNetworkListResult{}, err
	}
	return GetNetworkListResult{NetworkList: list}, nil
}

// CreateNetworkListMCP is the MCP wrapper for CreateNetworkList
func (c *Client) CreateNetworkListMCP(ctx context.Context, args CreateNetworkListArgs) (CreateNetworkListResult, error) {
	list, err := c.CreateNetworkList(ctx, args.Name, args.Type, args.Description, args.Elements)
	if err != nil {
		return CreateNetworkListResult{}, err
	}
	return CreateNetworkListResult{NetworkList: list}, nil
}

// AddElementsMCP is the MCP wrapper for AddElements
func (c *Client) AddElementsMCP(ctx context.Context, args AddElementsArgs) (AddElementsResult, error) {
	list, err := c.AddElements(ctx, args.UniqueID, args.Elements)
	if err != nil {
		return AddElementsResult{}, err
	}
	return AddElementsResult{ElementCount: list.ElementCount, SyncPoint: list.SyncPoint}, nil
}

// RemoveElementMCP is the MCP wrapper for RemoveElement
func (c *Client) RemoveElementMCP(ctx context.Context, args RemoveElementArgs) (RemoveElementResult, error) {
	if err := c.RemoveElement(ctx, args.UniqueID, args.Element); err != nil {
		return RemoveElementResult{}, err
	}
	return RemoveElementResult{Removed: true}, nil
}

// ActivateNetworkListMCP is the MCP wrapper for Activate
func (c *Client) ActivateNetworkListMCP(ctx context.Context, args ActivateNetworkListArgs) (ActivateNetworkListResult, error) {
	state, err := c.Activate(ctx, ActivateOptions{
		UniqueID:               args.UniqueID,
		Environment:            args.Environment,
		Comments:               args.Comments,
		NotificationRecipients: args.NotificationRecipients,
		Wait:                   args.Wait,
	})
	if err != nil {
		return ActivateNetworkListResult{}, err
	}
	return ActivateNetworkListResult{
		ActivationID: state.ActivationID,
		Status:       state.ActivationStatus,
		Environment:  state.Environment,
	}, nil
}

// GetNetworkListStatusMCP reports the activation state on both environments.
func (c *Client) GetNetworkListStatusMCP(ctx context.Context, args GetNetworkListStatusArgs) (GetNetworkListStatusResult, error) {
	staging, production, err := c.GetActivationStatusBoth(ctx, args.UniqueID)
	if err != nil {
		return GetNetworkListStatusResult{}, err
	}
	return GetNetworkListStatusResult{
		Staging:    EnvironmentStatus{Environment: EnvStaging, Status: staging.ActivationStatus, SyncPoint: staging.SyncPoint},
		Production: EnvironmentStatus{Environment: EnvProduction, Status: production.ActivationStatus, SyncPoint: production.SyncPoint},
	}, nil
}
