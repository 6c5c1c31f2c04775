package dns

import (
	"context"
	"net/http"
	"net/url"

	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	"github.com/acedergren/alecs-mcp-server-go/internal/flow"
)

// Edge DNS never mutates records directly. Every edit goes through a
// changelist: a staged diff against a zone version snapshot that is created,
// edited, then submitted as one unit. A failed or abandoned changelist is
// discarded, which leaves the zone exactly as it was.

const changelistPath = basePath + "/changelists"

// ensureChangeList creates a changelist for the zone, reusing one that
// already exists. The API answers 409 when a changelist is already open;
// that one is stale work from a previous run, so it is discarded and
// recreated to guarantee the edits land on a fresh snapshot.
func (c *Client) ensureChangeList(ctx context.Context, zone string) error {
	err := c.createChangeList(ctx, zone)
	if err == nil {
		return nil
	}
	if !isStatus(err, http.StatusConflict) {
		return err
	}

	if err := c.DiscardChangeList(ctx, zone); err != nil {
		return err
	}
	return c.createChangeList(ctx, zone)
}

func (c *Client) createChangeList(ctx context.Context, zone string) error {
	query := url.Values{}
	query.Set("zone", zone)
	return c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodPost,
		Path:      changelistPath,
		Query:     query,
		Service:   service,
		Operation: "create-changelist",
	}, nil)
}

// GetChangeList retrieves the open changelist for a zone.
func (c *Client) GetChangeList(ctx context.Context, zone string) (*ChangeList, error) {
	if err := ValidateZoneName(zone); err != nil {
		return nil, err
	}

	var cl ChangeList
	if err := c.getJSON(ctx, changelistPath+"/"+url.PathEscape(zone), nil, "get-changelist", &cl); err != nil {
		return nil, mapNotFound(err, "changelist", zone)
	}
	return &cl, nil
}

// DiscardChangeList abandons the open changelist for a zone. Discarding a
// changelist that does not exist is not an error; the zone is already clean.
func (c *Client) DiscardChangeList(ctx context.Context, zone string) error {
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodDelete,
		Path:      changelistPath + "/" + url.PathEscape(zone),
		Service:   service,
		Operation: "discard-changelist",
	}, nil)
	if err != nil && isStatus(err, http.StatusNotFound) {
		return nil
	}
	return err
}

// stageRecordSet writes one record set into the open changelist.
func (c *Client) stageRecordSet(ctx context.Context, zone string, rs RecordSet) error {
	return c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodPut,
		Path:      recordSetPath(changelistPath, zone, rs.Name, rs.Type),
		Body:      rs,
		Service:   service,
		Operation: "stage-record-set",
	}, nil)
}

// stageRecordSetDelete marks one record set for deletion in the open
// changelist.
func (c *Client) stageRecordSetDelete(ctx context.Context, zone, name, recordType string) error {
	return c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodDelete,
		Path:      recordSetPath(changelistPath, zone, name, recordType),
		Service:   service,
		Operation: "stage-record-set-delete",
	}, nil)
}

// submitChangeList submits the open changelist for propagation.
func (c *Client) submitChangeList(ctx context.Context, zone string) (*SubmitResult, error) {
	var result SubmitResult
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodPost,
		Path:      changelistPath + "/" + url.PathEscape(zone) + "/submit",
		Service:   service,
		Operation: "submit-changelist",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RecordEdit is one staged operation inside a changelist.
type RecordEdit struct {
	// Upsert writes the record set; when nil the record set named by
	// Name/Type is deleted instead.
	Upsert *RecordSet
	Name   string
	Type   string
}

// ApplyOptions configure a changelist run.
type ApplyOptions struct {
	Zone  string
	Edits []RecordEdit

	// Wait blocks until the zone returns to ACTIVE after submit.
	Wait bool
	Poll flow.PollConfig
}

// ApplyChanges runs the full changelist workflow for a zone: open a
// changelist, stage every edit, submit, and optionally wait for the zone to
// propagate. Any failure before or during submit discards the changelist so
// no half-staged edits survive.
func (c *Client) ApplyChanges(ctx context.Context, opts ApplyOptions) (*SubmitResult, error) {
	if err := ValidateZoneName(opts.Zone); err != nil {
		return nil, err
	}
	if len(opts.Edits) == 0 {
		return nil, errNoEdits
	}
	for _, edit := range opts.Edits {
		if edit.Upsert != nil {
			if err := ValidateRecordSet(opts.Zone, *edit.Upsert); err != nil {
				return nil, err
			}
		} else {
			if _, err := ValidateRecordType(edit.Type); err != nil {
				return nil, err
			}
		}
	}

	if !opts.Wait {
		result, err := c.stageAndSubmitRolledBack(ctx, opts.Zone, opts.Edits)
		if err != nil {
			return nil, err
		}
		c.invalidateZone(opts.Zone)
		return result, nil
	}

	workflow := flow.Workflow[*SubmitResult]{
		Operation: "dns changelist",
		Poll:      opts.Poll,
		Submit: func(ctx context.Context) (*SubmitResult, error) {
			return c.stageAndSubmitRolledBack(ctx, opts.Zone, opts.Edits)
		},
		Check: func(ctx context.Context, _ *SubmitResult) (flow.Status, error) {
			state, err := c.zoneStatus(ctx, opts.Zone)
			if err != nil {
				return flow.Status{}, err
			}
			return zoneFlowStatus(state), nil
		},
		Rollback: func(ctx context.Context, _ *SubmitResult) error {
			return c.DiscardChangeList(ctx, opts.Zone)
		},
	}

	result, _, err := workflow.Run(ctx)
	if err != nil {
		return nil, err
	}
	c.invalidateZone(opts.Zone)
	return result, nil
}

// stageAndSubmitRolledBack is the non-waiting path: it keeps the discard
// guarantee without polling for propagation.
func (c *Client) stageAndSubmitRolledBack(ctx context.Context, zone string, edits []RecordEdit) (*SubmitResult, error) {
	result, err := c.stageAndSubmit(ctx, zone, edits)
	if err != nil {
		if discardErr := c.DiscardChangeList(ctx, zone); discardErr != nil {
			c.session.Logger.Warn("changelist discard after failure",
				"zone", zone,
				"error", discardErr)
		}
		return nil, err
	}
	return result, nil
}

func (c *Client) stageAndSubmit(ctx context.Context, zone string, edits []RecordEdit) (*SubmitResult, error) {
	if err := c.ensureChangeList(ctx, zone); err != nil {
		return nil, err
	}

	for _, edit := range edits {
		var err error
		if edit.Upsert != nil {
			err = c.stageRecordSet(ctx, zone, *edit.Upsert)
		} else {
			err = c.stageRecordSetDelete(ctx, zone, edit.Name, edit.Type)
		}
		if err != nil {
			return nil, err
		}
	}

	return c.submitChangeList(ctx, zone)
}

func (c *Client) invalidateZone(zone string) {
	c.session.Cache.DeletePrefix("dns:recordsets:" + zone)
	c.session.Cache.DeletePrefix("dns:zones:")
}

// zoneFlowStatus maps a zone activation state onto the workflow model.
func zoneFlowStatus(state string) flow.Status {
	switch state {
	case ZoneStateActive:
		return flow.Status{State: state, Terminal: true}
	case ZoneStateError, ZoneStateFailed:
		return flow.Status{State: state, Terminal: true, Failed: true}
	default:
		return flow.Status{State: state}
	}
}
