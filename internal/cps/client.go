package cps

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/acedergren/alecs-mcp-server-go/internal/edgegrid"
	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
	"github.com/acedergren/alecs-mcp-server-go/internal/flow"
)

const (
	basePath = "/cps/v2"

	// DefaultCacheTTL for enrollment reads. Certificate state moves
	// slowly; pending-change polling bypasses the cache.
	DefaultCacheTTL = 5 * time.Minute

	service = "cps"
)

// CPS versions every representation through vendor media types. Requests
// without the right Accept header are rejected outright.
const (
	mediaEnrollments      = "application/vnd.akamai.cps.enrollments.v11+json"
	mediaEnrollment       = "application/vnd.akamai.cps.enrollment.v11+json"
	mediaEnrollmentStatus = "application/vnd.akamai.cps.enrollment-status.v1+json"
	mediaChange           = "application/vnd.akamai.cps.change.v2+json"
	mediaDVChallenges     = "application/vnd.akamai.cps.dv-challenges.v2+json"
	mediaAcknowledgement  = "application/vnd.akamai.cps.acknowledgement.v1+json"
	mediaDeployments      = "application/vnd.akamai.cps.deployments.v7+json"
)

// Client provides access to the Certificate Provisioning System API.
type Client struct {
	session *edgegrid.Session
}

// NewClient creates a CPS client on a shared EdgeGrid session.
func NewClient(session *edgegrid.Session) *Client {
	return &Client{session: session}
}

// ListEnrollments lists certificate enrollments under a contract.
func (c *Client) ListEnrollments(ctx context.Context, contractID string) ([]Enrollment, error) {
	cacheKey := "cps:enrollments:" + contractID
	if cached, ok := c.session.Cache.Get(cacheKey); ok {
		return cached.([]Enrollment), nil
	}

	query := url.Values{}
	if contractID != "" {
		query.Set("contractId", strings.TrimPrefix(contractID, "ctr_"))
	}

	var resp enrollmentsResponse
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodGet,
		Path:      basePath + "/enrollments",
		Query:     query,
		Headers:   map[string]string{"Accept": mediaEnrollments},
		Service:   service,
		Operation: "list-enrollments",
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.session.Cache.Set(cacheKey, resp.Enrollments, DefaultCacheTTL)
	return resp.Enrollments, nil
}

// GetEnrollment retrieves a single enrollment.
func (c *Client) GetEnrollment(ctx context.Context, enrollmentID int) (*Enrollment, error) {
	if enrollmentID <= 0 {
		return nil, apierrors.NewValidationError("enrollmentId", strconv.Itoa(enrollmentID), "must be a positive enrollment ID")
	}

	var enrollment Enrollment
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodGet,
		Path:      fmt.Sprintf("%s/enrollments/%d", basePath, enrollmentID),
		Headers:   map[string]string{"Accept": mediaEnrollment},
		Service:   service,
		Operation: "get-enrollment",
	}, &enrollment)
	if err != nil {
		return nil, mapNotFound(err, "enrollment", strconv.Itoa(enrollmentID))
	}
	enrollment.ID = enrollmentID
	return &enrollment, nil
}

// CreateDVEnrollment creates a Domain Validated enrollment and returns the
// new enrollment ID together with the change it opened.
func (c *Client) CreateDVEnrollment(ctx context.Context, contractID string, enrollment Enrollment) (int, string, error) {
	enrollment.ValidationType = ValidationDV
	if enrollment.RA == "" {
		enrollment.RA = "lets-encrypt"
	}
	if err := ValidateEnrollment(enrollment); err != nil {
		return 0, "", err
	}

	query := url.Values{}
	query.Set("contractId", strings.TrimPrefix(contractID, "ctr_"))

	var resp createEnrollmentResponse
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method: http.MethodPost,
		Path:   basePath + "/enrollments",
		Query:  query,
		Body:   enrollment,
		Headers: map[string]string{
			"Accept":       mediaEnrollmentStatus,
			"Content-Type": mediaEnrollment,
		},
		Service:   service,
		Operation: "create-enrollment",
	}, &resp)
	if err != nil {
		return 0, "", err
	}

	c.session.Cache.DeletePrefix("cps:enrollments:")

	enrollmentID := idFromLocation(resp.Enrollment)
	changeID := ""
	if len(resp.Changes) > 0 {
		changeID = lastPathSegment(resp.Changes[0])
	}
	if enrollmentID == 0 {
		return 0, "", fmt.Errorf("unexpected enrollment location %q", resp.Enrollment)
	}
	return enrollmentID, changeID, nil
}

// GetChangeStatus reads the state of a pending change.
func (c *Client) GetChangeStatus(ctx context.Context, enrollmentID int, changeID string) (*Change, error) {
	var change Change
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodGet,
		Path:      fmt.Sprintf("%s/enrollments/%d/changes/%s", basePath, enrollmentID, url.PathEscape(changeID)),
		Headers:   map[string]string{"Accept": mediaChange},
		Service:   service,
		Operation: "get-change-status",
	}, &change)
	if err != nil {
		return nil, mapNotFound(err, "change", changeID)
	}
	return &change, nil
}

// GetDVChallenges lists the domain validation challenges for a pending
// change.
func (c *Client) GetDVChallenges(ctx context.Context, enrollmentID int, changeID string) ([]DVChallenge, error) {
	var resp dvChallengesResponse
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method: http.MethodGet,
		Path: fmt.Sprintf("%s/enrollments/%d/changes/%s/input/info/lets-encrypt-challenges",
			basePath, enrollmentID, url.PathEscape(changeID)),
		Headers:   map[string]string{"Accept": mediaDVChallenges},
		Service:   service,
		Operation: "get-dv-challenges",
	}, &resp)
	if err != nil {
		return nil, mapNotFound(err, "change", changeID)
	}

	var challenges []DVChallenge
	for _, domain := range resp.DV {
		for _, challenge := range domain.Challenges {
			challenge.Domain = domain.Domain
			if challenge.Status == "" {
				challenge.Status = domain.Status
			}
			if challenge.Error == "" {
				challenge.Error = domain.Error
			}
			challenges = append(challenges, challenge)
		}
	}
	return challenges, nil
}

// AcknowledgeDVChallenges tells CPS the validation records are in place so
// the CA can re-check them.
func (c *Client) AcknowledgeDVChallenges(ctx context.Context, enrollmentID int, changeID string) error {
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method: http.MethodPost,
		Path: fmt.Sprintf("%s/enrollments/%d/changes/%s/input/update/lets-encrypt-challenges-completed",
			basePath, enrollmentID, url.PathEscape(changeID)),
		Body: map[string]string{"acknowledgement": "acknowledge"},
		Headers: map[string]string{
			"Accept":       mediaChange,
			"Content-Type": mediaAcknowledgement,
		},
		Service:   service,
		Operation: "acknowledge-dv-challenges",
	}, nil)
	return mapNotFound(err, "change", changeID)
}

// CancelChange withdraws a pending change.
func (c *Client) CancelChange(ctx context.Context, enrollmentID int, changeID string) error {
	err := c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodDelete,
		Path:      fmt.Sprintf("%s/enrollments/%d/changes/%s", basePath, enrollmentID, url.PathEscape(changeID)),
		Headers:   map[string]string{"Accept": mediaChange},
		Service:   service,
		Operation: "cancel-change",
	}, nil)
	return mapNotFound(err, "change", changeID)
}

// GetDeployments lists the certificates deployed for an enrollment on each
// network.
func (c *Client) GetDeployments(ctx context.Context, enrollmentID int) (staging, production *Deployment, err error) {
	var resp deploymentsResponse
	err = c.session.DoJSON(ctx, edgegrid.Request{
		Method:    http.MethodGet,
		Path:      fmt.Sprintf("%s/enrollments/%d/deployments", basePath, enrollmentID),
		Headers:   map[string]string{"Accept": mediaDeployments},
		Service:   service,
		Operation: "get-deployments",
	}, &resp)
	if err != nil {
		return nil, nil, mapNotFound(err, "enrollment", strconv.Itoa(enrollmentID))
	}
	return resp.Staging, resp.Production, nil
}

// WaitForChange polls a pending change to a terminal state. It cancels the
// change when it ends in error or times out, so a broken enrollment does not
// block later ones.
func (c *Client) WaitForChange(ctx context.Context, enrollmentID int, changeID string, poll flow.PollConfig) (*Change, error) {
	var last *Change
	workflow := flow.Workflow[string]{
		Operation: "certificate change",
		Poll:      poll,
		Submit: func(ctx context.Context) (string, error) {
			return changeID, nil
		},
		Check: func(ctx context.Context, id string) (flow.Status, error) {
			change, err := c.GetChangeStatus(ctx, enrollmentID, id)
			if err != nil {
				return flow.Status{}, err
			}
			last = change
			return changeFlowStatus(change), nil
		},
		Rollback: func(ctx context.Context, id string) error {
			return c.CancelChange(ctx, enrollmentID, id)
		},
	}

	if _, _, err := workflow.Run(ctx); err != nil {
		return last, err
	}
	return last, nil
}

// changeFlowStatus maps a change state onto the workflow model. A suspended
// change is waiting on user input (usually DV validation) and stays pending.
func changeFlowStatus(change *Change) flow.Status {
	if change.StatusInfo == nil {
		return flow.Status{State: "UNKNOWN"}
	}
	status := flow.Status{State: change.StatusInfo.State, Detail: change.StatusInfo.Description}
	switch change.StatusInfo.State {
	case ChangeStateCompleted:
		status.Terminal = true
	case ChangeStateError:
		status.Terminal = true
		status.Failed = true
		if change.StatusInfo.Error != nil {
			status.Detail = change.StatusInfo.Error.Description
		}
	}
	return status
}

func mapNotFound(err error, resourceType, identifier string) error {
	if apiErr, ok := apierrors.AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
		return apierrors.NewNotFoundError(service, resourceType, identifier)
	}
	return err
}

// idFromLocation extracts the numeric enrollment ID from a location URL,
// e.g. "/cps/v2/enrollments/10002" -> 10002.
func idFromLocation(location string) int {
	id, err := strconv.Atoi(lastPathSegment(location))
	if err != nil {
		return 0
	}
	return id
}

func lastPathSegment(location string) string {
	if location == "" {
		return ""
	}
	trimmed := location
	if i := strings.IndexByte(trimmed, '?'); i >= 0 {
		trimmed = trimmed[:i]
	}
	trimmed = strings.TrimSuffix(trimmed, "/")
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
