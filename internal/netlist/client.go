package netlist

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
	"github.com/acedergren/alecs-mcp-server-go/internal/flow"
)

const (
	basePath = "/network-list/v2/network-lists"

	// DefaultCacheTTL for list reads. Element edits invalidate.
	DefaultCacheTTL = 5 * time.Minute

	service = "netlist"
)

// Client provides access to the Network Lists API.
type Client struct {
	session *edgegrid.Session
}

// NewClient creates a network lists client on a shared EdgeGrid session.
func NewClient(session *edgegrid.Session) *Client {
	return &Client{session: session}
}

// ListNetworkLists lists network lists, optionally filtered by type and
// search string.
func (c *Client) ListNetworkLists(ctx context.Context, listType, search string) ([]NetworkList, error) {
	if listType != "" {
		var err error
		listType, err = ValidateListType(listType)
		if err != nil {
			return nil, err
		}
	}

	query := url.Values{}
	if listType != "" {
		query.Set("listType", listType)
	}
	if search != "" {
		query.Set("search", search)
	}

	cacheKey := "netlist:lists:" + query.Encode()
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.([]NetworkList), nil
	}

	var resp networkListsResponse
	if err := c.getJSON(ctx, basePath, query, "list-network-lists", &resp); err != nil {
		return nil, err
	}

	c.session.Cache.Set(cacheKey, resp.NetworkLists, DefaultCacheTTL)
	return resp.NetworkLists, nil
}

// GetNetworkList retrieves one network list including its elements.
func (c *Client) GetNetworkList(ctx context.Context, uniqueID string) (*NetworkList, error) {
	if uniqueID == "" {
		return nil, apierrors.NewValidationError("uniqueId", uniqueID, "must not be empty")
	}

	query := url.Values{}
	query.Set("extended", "true")
	query.Set("includeElements", "true")

	var list NetworkList
	if err := c.getJSON(ctx, basePath+"/"+url.PathEscape(uniqueID), query, "get-network-list", &list); err != nil {
		return nil, mapNotFound(err, "network list", uniqueID)
	}
	return &list, nil
}

// CreateNetworkList creates a new network list.
func (c *Client) CreateNetworkList(ctx context.Context, name, listType, description string, elements []string) (*NetworkList, error) {
	listType, err := ValidateListType(listType)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apierrors.NewValidationError("name", name, "must not be empty")
	}
	if err := ValidateElements(listType, elements); err != nil {
		return nil, err
	}
	if elements == nil {
		elements = []string{}
	}

	var created NetworkList
	err = c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodPost,
		Path:      basePath,
		Body:      createListRequest{Name: name, Type: listType, Description: description, List: elements},
		Service:   service,
		Operation: "create-network-list",
	}, &created)
	if err != nil {
		return nil, err
	}

	c.session.Cache.DeletePrefix("netlist:lists:")
	return &created, nil
}

// AddElements appends elements to a network list.
func (c *Client) AddElements(ctx context.Context, uniqueID string, elements []string) (*NetworkList, error) {
	list, err := c.GetNetworkList(ctx, uniqueID)
	if err != nil {
		return nil, err
	}
	if err := ValidateElements(list.Type, elements); err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, apierrors.NewValidationError("elements", "", "at least one element is required")
	}

	var updated NetworkList
	err = c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodPost,
		Path:      basePath + "/" + url.PathEscape(uniqueID) + "/append",
		Body:      appendRequest{List: elements},
		Service:   service,
		Operation: "add-elements",
	}, &updated)
	if err != nil {
		return nil, mapNotFound(err, "network list", uniqueID)
	}

	c.session.Cache.DeletePrefix("netlist:lists:")
	return &updated, nil
}

// RemoveElement removes one element from a network list.
func (c *Client) RemoveElement(ctx context.Context, uniqueID, element string) error {
	if element == "" {
		return apierrors.NewValidationError("element", element, "must not be empty")
	}

	query := url.Values{}
	query.Set("element", element)

	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodDelete,
		Path:      basePath + "/" + url.PathEscape(uniqueID) + "/elements",
		Query:     query,
		Service:   service,
		Operation: "remove-element",
	}, nil)
	if err != nil {
		return mapNotFound(err, "network list", uniqueID)
	}

	c.session.Cache.DeletePrefix("netlist:lists:")
	return nil
}

// ActivateOptions configure a network list activation.
type ActivateOptions struct {
	UniqueID               string
	Environment            string // STAGING or PRODUCTION
	Comments               string
	NotificationRecipients []string

	// Wait blocks until the list reaches a terminal activation state.
	Wait bool
	Poll flow.PollConfig
}

// Activate pushes a network list to an environment. Unlike property
// activations there is nothing to cancel; a failed activation just leaves
// the previous sync point serving.
func (c *Client) Activate(ctx context.Context, opts ActivateOptions) (*ActivationState, error) {
	environment, err := ValidateEnvironment(opts.Environment)
	if err != nil {
		return nil, err
	}

	workflow := flow.Workflow[int]{
		Operation: "network list activation",
		Poll:      opts.Poll,
		Submit: func(ctx context.Context) (int, error) {
			var resp activateResponse
			err := c.session.DoJSON(ctx, edgegrid.Request{
				Method: http.MethodPost,
				Path:   basePath + "/" + url.PathEscape(opts.UniqueID) + "/environments/" + environment + "/activate",
				Body: activateRequest{
					Comments:               opts.Comments,
					NotificationRecipients: opts.NotificationRecipients,
				},
				Service:   service,
				Operation: "activate-network-list",
			}, &resp)
			if err != nil {
				return 0, mapNotFound(err, "network list", opts.UniqueID)
			}
			return resp.ActivationID, nil
		},
		Check: func(ctx context.Context, _ int) (flow.Status, error) {
			state, err := c.GetActivationStatus(ctx, opts.UniqueID, environment)
			if err != nil {
				return flow.Status{}, err
			}
			return activationFlowStatus(state.ActivationStatus), nil
		},
	}

	if !opts.Wait {
		activationID, err := workflow.Submit(ctx)
		if err != nil {
			return nil, err
		}
		return &ActivationState{
			ActivationID:     activationID,
			ActivationStatus: StatusPendingActivation,
			Environment:      environment,
		}, nil
	}

	activationID, status, err := workflow.Run(ctx)
	if err != nil {
		return nil, err
	}
	return &ActivationState{
		ActivationID:     activationID,
		ActivationStatus: status.State,
		Environment:      environment,
	}, nil
}

// GetActivationStatus reads the activation state of a list on one
// environment.
func (c *Client) GetActivationStatus(ctx context.Context, uniqueID, environment string) (*ActivationState, error) {
	environment, err := ValidateEnvironment(environment)
	if err != nil {
		return nil, err
	}

	var state ActivationState
	path := basePath + "/" + url.PathEscape(uniqueID) + "/environments/" + environment + "/status"
	if err := c.getJSON(ctx, path, nil, "activation-status", &state); err != nil {
		return nil, mapNotFound(err, "network list", uniqueID)
	}
	state.Environment = environment
	return &state, nil
}

// GetActivationStatusBoth reads both environments concurrently; the status
// endpoint is per environment.
func (c *Client) GetActivationStatusBoth(ctx context.Context, uniqueID string) (staging, production *ActivationState, err error) {
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		staging, err = c.GetActivationStatus(gctx, uniqueID, EnvStaging)
		return err
	})
	group.Go(func() error {
		var err error
		production, err = c.GetActivationStatus(gctx, uniqueID, EnvProduction)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return staging, production, nil
}

func activationFlowStatus(status string) flow.Status {
	switch status {
	case StatusActive:
		return flow.Status{State: status, Terminal: true}
	case StatusFailed:
		return flow.Status{State: status, Terminal: true, Failed: true}
	default:
		return flow.Status{State: status}
	}
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

func mapNotFound(err error, resourceType, identifier string) error {
	if apiErr, ok := apierrors.AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
		return apierrors.NewNotFoundError(service, resourceType, identifier)
	}
	return err
}
