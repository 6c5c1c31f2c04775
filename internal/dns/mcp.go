package dns

import (
	"context"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// ListZonesMCP is the MCP wrapper for ListZones
func (c *Client) ListZonesMCP(ctx context.Context, args ListZonesArgs) (ListZonesResult, error) {
	zones, err := c.ListZones(ctx, args.Search)
	if err != nil {
		return ListZonesResult{}, err
	}
	return ListZonesResult{Zones: zones, Total: len(zones)}, nil
}

// GetZoneMCP is the MCP wrapper for GetZone
func (c *Client) GetZoneMCP(ctx context.Context, args GetZoneArgs) (GetZoneResult, error) {
	zone, err := c.GetZone(ctx, args.Zone)
	if err != nil {
		return GetZoneResult{}, err
	}
	return GetZoneResult{Zone: zone}, nil
}

// CreateZoneMCP is the MCP wrapper for CreateZone
func (c *Client) CreateZoneMCP(ctx context.Context, args CreateZoneArgs) (CreateZoneResult, error) {
	zone, err := c.CreateZone(ctx, CreateZoneOptions{
		Zone:         args.Zone,
		Type:         args.Type,
		ContractID:   args.ContractID,
		GroupID:      args.GroupID,
		Comment:      args.Comment,
		SignAndServe: args.SignAndServe,
		Masters:      args.Masters,
		Target:       args.Target,
	})
	if err != nil {
		return CreateZoneResult{}, err
	}
	return CreateZoneResult{Zone: zone}, nil
}

// ListRecordSetsMCP is the MCP wrapper for ListRecordSets
func (c *Client) ListRecordSetsMCP(ctx context.Context, args ListRecordSetsArgs) (ListRecordSetsResult, error) {
	for i, t := range args.Types {
		canonical, err := ValidateRecordType(t)
		if err != nil {
			return ListRecordSetsResult{}, err
		}
		args.Types[i] = canonical
	}

	recordSets, err := c.ListRecordSets(ctx, args.Zone, args.Search, args.Types)
	if err != nil {
		return ListRecordSetsResult{}, err
	}
	return ListRecordSetsResult{RecordSets: recordSets, Total: len(recordSets)}, nil
}

// GetRecordSetMCP is the MCP wrapper for GetRecordSet
func (c *Client) GetRecordSetMCP(ctx context.Context, args GetRecordSetArgs) (GetRecordSetResult, error) {
	rs, err := c.GetRecordSet(ctx, args.Zone, args.Name, args.Type)
	if err != nil {
		return GetRecordSetResult{}, err
	}
	return GetRecordSetResult{RecordSet: rs}, nil
}

// UpsertRecordMCP creates or replaces one record set through the changelist
// workflow.
func (c *Client) UpsertRecordMCP(ctx context.Context, args UpsertRecordArgs) (UpsertRecordResult, error) {
	recordType, err := ValidateRecordType(args.Type)
	if err != nil {
		return UpsertRecordResult{}, err
	}

	result, err := c.ApplyChanges(ctx, ApplyOptions{
		Zone: args.Zone,
		Edits: []RecordEdit{{
			Upsert: &RecordSet{Name: args.Name, Type: recordType, TTL: args.TTL, Rdata: args.Rdata},
		}},
		Wait: args.Wait,
	})
	if err != nil {
		return UpsertRecordResult{}, err
	}
	return UpsertRecordResult{RequestID: result.RequestID, Submitted: true}, nil
}

// DeleteRecordMCP deletes one record set through the changelist workflow.
func (c *Client) DeleteRecordMCP(ctx context.Context, args DeleteRecordArgs) (DeleteRecordResult, error) {
	recordType, err := ValidateRecordType(args.Type)
	if err != nil {
		return DeleteRecordResult{}, err
	}

	result, err := c.ApplyChanges(ctx, ApplyOptions{
		Zone:  args.Zone,
		Edits: []RecordEdit{{Name: args.Name, Type: recordType}},
		Wait:  args.Wait,
	})
	if err != nil {
		return DeleteRecordResult{}, err
	}
	return DeleteRecordResult{RequestID: result.RequestID, Submitted: true}, nil
}

// BulkEditRecordsMCP applies several record edits atomically in a single
// changelist submit.
func (c *Client) BulkEditRecordsMCP(ctx context.Context, args BulkEditRecordsArgs) (BulkEditRecordsResult, error) {
	edits := make([]RecordEdit, 0, len(args.Upserts)+len(args.Deletes))
	for i := range args.Upserts {
		rs := args.Upserts[i]
		recordType, err := ValidateRecordType(rs.Type)
		if err != nil {
			return BulkEditRecordsResult{}, err
		}
		rs.Type = recordType
		edits = append(edits, RecordEdit{Upsert: &rs})
	}
	for _, d := range args.Deletes {
		recordType, err := ValidateRecordType(d.Type)
		if err != nil {
			return BulkEditRecordsResult{}, err
		}
		edits = append(edits, RecordEdit{Name: d.Name, Type: recordType})
	}

	result, err := c.ApplyChanges(ctx, ApplyOptions{Zone: args.Zone, Edits: edits, Wait: args.Wait})
	if err != nil {
		return BulkEditRecordsResult{}, err
	}
	return BulkEditRecordsResult{RequestID: result.RequestID, Edits: len(edits), Submitted: true}, nil
}

// GetChangeListMCP reports whether a zone has an open changelist.
func (c *Client) GetChangeListMCP(ctx context.Context, args GetChangeListArgs) (GetChangeListResult, error) {
	cl, err := c.GetChangeList(ctx, args.Zone)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return GetChangeListResult{Open: false}, nil
		}
		return GetChangeListResult{}, err
	}
	return GetChangeListResult{ChangeList: cl, Open: true}, nil
}

// DiscardChangeListMCP abandons a zone's open changelist.
func (c *Client) DiscardChangeListMCP(ctx context.Context, args DiscardChangeListArgs) (DiscardChangeListResult, error) {
	if err := ValidateZoneName(args.Zone); err != nil {
		return DiscardChangeListResult{}, err
	}
	if err := c.DiscardChangeList(ctx, args.Zone); err != nil {
		return DiscardChangeListResult{}, err
	}
	return DiscardChangeListResult{Discarded: true}, nil
}
