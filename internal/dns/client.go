package dns

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
)

const (
	basePath = "/config-dns/v2"

	// DefaultCacheTTL for zone reads. Record data mutates through the
	// changelist workflow, which invalidates on submit.
	DefaultCacheTTL = 5 * time.Minute

	service = "dns"
)

// Client provides access to the Edge DNS zone management API.
type Client struct {
	session *edgegrid.Session
}

// NewClient creates an Edge DNS client on a shared EdgeGrid session.
func NewClient(session *edgegrid.Session) *Client {
	return &Client{session: session}
}

// ListZones lists zones, optionally filtered by a search string.
func (c *Client) ListZones(ctx context.Context, search string) ([]Zone, error) {
	cacheKey := "dns:zones:" + search
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.([]Zone), nil
	}

	query := url.Values{}
	query.Set("showAll", "true")
	if search != "" {
		query.Set("search", search)
	}

	result, _, err := c.session.Dedup.Do(ctx, cacheKey, func() (interface{}, error) {
		var resp zonesResponse
		if err := c.getJSON(ctx, basePath+"/zones", query, "list-zones", &resp); err != nil {
			return nil, err
		}
		return resp.Zones, nil
	})
	if err != nil {
		return nil, err
	}

	zones := result.([]Zone)
	c.session.Cache.Set(cacheKey, zones, DefaultCacheTTL)
	return zones, nil
}

// GetZone retrieves a single zone.
func (c *Client) GetZone(ctx context.Context, zone string) (*Zone, error) {
	if err := ValidateZoneName(zone); err != nil {
		return nil, err
	}

	var z Zone
	if err := c.getJSON(ctx, basePath+"/zones/"+url.PathEscape(zone), nil, "get-zone", &z); err != nil {
		return nil, mapNotFound(err, "zone", zone)
	}
	return &z, nil
}

// CreateZoneOptions configure zone creation.
type CreateZoneOptions struct {
	Zone         string
	Type         string
	ContractID   string
	GroupID      string
	Comment      string
	SignAndServe bool
	Masters      []string // SECONDARY zones
	Target       string   // ALIAS zones
}

// CreateZone creates a new zone under a contract.
func (c *Client) CreateZone(ctx context.Context, opts CreateZoneOptions) (*Zone, error) {
	if err := ValidateZoneName(opts.Zone); err != nil {
		return nil, err
	}
	if err := ValidateZoneType(opts.Type, opts.Masters, opts.Target); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("contractId", opts.ContractID)
	if opts.GroupID != "" {
		query.Set("gid", opts.GroupID)
	}

	var created Zone
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method: http.MethodPost,
		Path:   basePath + "/zones",
		Query:  query,
		Body: createZoneRequest{
			Zone:         opts.Zone,
			Type:         opts.Type,
			Comment:      opts.Comment,
			SignAndServe: opts.SignAndServe,
			Masters:      opts.Masters,
			Target:       opts.Target,
		},
		Service:   service,
		Operation: "create-zone",
	}, &created)
	if err != nil {
		return nil, err
	}

	c.session.Cache.DeletePrefix("dns:zones:")
	return &created, nil
}

// ListRecordSets lists record sets in a zone, optionally filtered by search
// string and record types.
func (c *Client) ListRecordSets(ctx context.Context, zone, search string, types []string) ([]RecordSet, error) {
	if err := ValidateZoneName(zone); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("showAll", "true")
	if search != "" {
		query.Set("search", search)
	}
	for _, t := range types {
		query.Add("types", t)
	}

	cacheKey := "dns:recordsets:" + zone + ":" + query.Encode()
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.([]RecordSet), nil
	}

	var resp recordSetsResponse
	path := basePath + "/zones/" + url.PathEscape(zone) + "/recordsets"
	if err := c.getJSON(ctx, path, query, "list-record-sets", &resp); err != nil {
		return nil, mapNotFound(err, "zone", zone)
	}

	c.session.Cache.Set(cacheKey, resp.RecordSets, DefaultCacheTTL)
	return resp.RecordSets, nil
}

// GetRecordSet retrieves one record set by name and type.
func (c *Client) GetRecordSet(ctx context.Context, zone, name, recordType string) (*RecordSet, error) {
	if err := ValidateZoneName(zone); err != nil {
		return nil, err
	}
	recordType, err := ValidateRecordType(recordType)
	if err != nil {
		return nil, err
	}

	var rs RecordSet
	path := recordSetPath(basePath+"/zones", zone, name, recordType)
	if err := c.getJSON(ctx, path, nil, "get-record-set", &rs); err != nil {
		return nil, mapNotFound(err, "record set", name+" "+recordType)
	}
	return &rs, nil
}

// zoneStatus reads the zone's current activation state.
func (c *Client) zoneStatus(ctx context.Context, zone string) (string, error) {
	var z Zone
	if err := c.getJSON(ctx, basePath+"/zones/"+url.PathEscape(zone), nil, "zone-status", &z); err != nil {
		return "", mapNotFound(err, "zone", zone)
	}
	return z.ActivationState, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, operation string, out interface{}) error {
	return c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
		Service:   service,
		Operation: operation,
	}, out)
}

func recordSetPath(prefix, zone, name, recordType string) string {
	return prefix + "/" + url.PathEscape(zone) + "/names/" + url.PathEscape(name) + "/types/" + url.PathEscape(recordType)
}

func mapNotFound(err error, resourceType, identifier string) error {
	if apiErr, ok := apierrors.AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
		return apierrors.NewNotFoundError(service, resourceType, identifier)
	}
	return err
}

func isStatus(err error, statusCode int) bool {
	apiErr, ok := apierrors.AsAPIError(err)
	return ok && apiErr.StatusCode == statusCode
}
