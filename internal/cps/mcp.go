package cps

import (
	"context"

	"github.com/acedergren/alecs-mcp-server-go/internal/flow"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// ListEnrollmentsMCP is the MCP wrapper for ListEnrollments
func (c *Client) ListEnrollmentsMCP(ctx context.Context, args ListEnrollmentsArgs) (ListEnrollmentsResult, error) {
	enrollments, err := c.ListEnrollments(ctx, args.ContractID)
	if err != nil {
		return ListEnrollmentsResult{}, err
	}

	summaries := make([]EnrollmentSummary, 0, len(enrollments))
	for _, e := range enrollments {
		summaries = append(summaries, EnrollmentSummary{
			ID:              e.ID,
			CommonName:      e.CSR.CN,
			SANs:            e.CSR.SANs,
			ValidationType:  e.ValidationType,
			CertificateType: e.CertificateType,
			PendingChanges:  len(e.PendingChanges),
		})
	}
	return ListEnrollmentsResult{Enrollments: summaries, Total: len(summaries)}, nil
}

// GetEnrollmentMCP is the MCP wrapper for GetEnrollment
func (c *Client) GetEnrollmentMCP(ctx context.Context, args GetEnrollmentArgs) (GetEnrollmentResult, error) {
	enrollment, err := c.GetEnrollment(ctx, args.EnrollmentID)
	if err != nil {
		return GetEnrollmentResult{}, err
	}
	return GetEnrollmentResult{Enrollment: enrollment}, nil
}

// CreateDVEnrollmentMCP is the MCP wrapper for CreateDVEnrollment
func (c *Client) CreateDVEnrollmentMCP(ctx context.Context, args CreateDVEnrollmentArgs) (CreateDVEnrollmentResult, error) {
	geography := args.Geography
	if geography == "" {
		geography = "core"
	}

	enrollment := Enrollment{
		CSR:              CSR{CN: args.CommonName, SANs: args.SANs},
		CertificateType:  "san",
		ChangeManagement: false,
		AdminContact:     args.AdminContact,
		TechContact:      args.TechContact,
		Org:              args.Org,
		NetworkConfiguration: &NetworkConfig{
			Geography:     geography,
			SecureNetwork: "enhanced-tls",
			SNIOnly:       true,
		},
	}

	enrollmentID, changeID, err := c.CreateDVEnrollment(ctx, args.ContractID, enrollment)
	if err != nil {
		return CreateDVEnrollmentResult{}, err
	}
	return CreateDVEnrollmentResult{EnrollmentID: enrollmentID, ChangeID: changeID}, nil
}

// GetDVChallengesMCP is the MCP wrapper for GetDVChallenges
func (c *Client) GetDVChallengesMCP(ctx context.Context, args GetDVChallengesArgs) (GetDVChallengesResult, error) {
	challenges, err := c.GetDVChallenges(ctx, args.EnrollmentID, args.ChangeID)
	if err != nil {
		return GetDVChallengesResult{}, err
	}
	return GetDVChallengesResult{Challenges: challenges, Total: len(challenges)}, nil
}

// AcknowledgeDVChallengesMCP acknowledges the validation records and
// optionally waits for the CA to finish.
func (c *Client) AcknowledgeDVChallengesMCP(ctx context.Context, args AcknowledgeDVChallengesArgs) (AcknowledgeDVChallengesResult, error) {
	if err := c.AcknowledgeDVChallenges(ctx, args.EnrollmentID, args.ChangeID); err != nil {
		return AcknowledgeDVChallengesResult{}, err
	}
	if !args.Wait {
		return AcknowledgeDVChallengesResult{Acknowledged: true}, nil
	}

	change, err := c.WaitForChange(ctx, args.EnrollmentID, args.ChangeID, flow.PollConfig{})
	if err != nil {
		return AcknowledgeDVChallengesResult{}, err
	}
	state := ""
	if change != nil && change.StatusInfo != nil {
		state = change.StatusInfo.State
	}
	return AcknowledgeDVChallengesResult{Acknowledged: true, State: state}, nil
}

// GetDeploymentsMCP is the MCP wrapper for GetDeployments
func (c *Client) GetDeploymentsMCP(ctx context.Context, args GetDeploymentsArgs) (GetDeploymentsResult, error) {
	staging, production, err := c.GetDeployments(ctx, args.EnrollmentID)
	if err != nil {
		return GetDeploymentsResult{}, err
	}
	return GetDeploymentsResult{Staging: staging, Production: production}, nil
}
