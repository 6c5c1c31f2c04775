package cps

// ListEnrollmentsArgs contains parameters for listing enrollments
type ListEnrollmentsArgs struct {
	ContractID string `json:"contractId,omitempty" jsonschema_description:"Optional contract filter"`
}

// EnrollmentSummary is a compact enrollment representation for listings
type EnrollmentSummary struct {
	ID              int      `json:"id"`
	CommonName      string   `json:"commonName"`
	SANs            []string `json:"sans,omitempty"`
	ValidationType  string   `json:"validationType"`
	CertificateType string   `json:"certificateType"`
	PendingChanges  int      `json:"pendingChanges"`
}

// ListEnrollmentsResult is the result of listing enrollments
type ListEnrollmentsResult struct {
	Enrollments []EnrollmentSummary `json:"enrollments"`
	Total       int                 `json:"total"`
}

// GetEnrollmentArgs contains parameters for getting an enrollment
type GetEnrollmentArgs struct {
	EnrollmentID int `json:"enrollmentId" jsonschema:"required" jsonschema_description:"Numeric enrollment ID"`
}

// GetEnrollmentResult is the result of getting an enrollment
type GetEnrollmentResult struct {
	Enrollment *Enrollment `json:"enrollment"`
}

// CreateDVEnrollmentArgs contains parameters for creating a DV enrollment
type CreateDVEnrollmentArgs struct {
	ContractID   string        `json:"contractId" jsonschema:"required" jsonschema_description:"Contract the enrollment belongs to"`
	CommonName   string        `json:"commonName" jsonschema:"required" jsonschema_description:"Certificate common name, e.g. www.example.com"`
	SANs         []string      `json:"sans,omitempty" jsonschema_description:"Additional hostnames covered by the certificate"`
	AdminContact *Contact      `json:"adminContact" jsonschema:"required" jsonschema_description:"Administrative contact"`
	TechContact  *Contact      `json:"techContact" jsonschema:"required" jsonschema_description:"Technical contact"`
	Org          *Organization `json:"org,omitempty" jsonschema_description:"Subject organization"`
	Geography    string        `json:"geography,omitempty" jsonschema_description:"Deployment geography: core (default), china+core or russia+core"`
	SNIOnly      bool          `json:"sniOnly,omitempty" jsonschema_description:"Serve the certificate only to SNI clients (default: true)"`
}

// CreateDVEnrollmentResult is the result of creating a DV enrollment
type CreateDVEnrollmentResult struct {
	EnrollmentID int    `json:"enrollmentId"`
	ChangeID     string `json:"changeId,omitempty"`
}

// GetDVChallengesArgs contains parameters for listing DV challenges
type GetDVChallengesArgs struct {
	EnrollmentID int    `json:"enrollmentId" jsonschema:"required" jsonschema_description:"Numeric enrollment ID"`
	ChangeID     string `json:"changeId" jsonschema:"required" jsonschema_description:"Pending change ID"`
}

// GetDVChallengesResult is the result of listing DV challenges
type GetDVChallengesResult struct {
	Challenges []DVChallenge `json:"challenges"`
	Total      int           `json:"total"`
}

// AcknowledgeDVChallengesArgs contains parameters for acknowledging DV
// challenges
type AcknowledgeDVChallengesArgs struct {
	EnrollmentID int    `json:"enrollmentId" jsonschema:"required" jsonschema_description:"Numeric enrollment ID"`
	ChangeID     string `json:"changeId" jsonschema:"required" jsonschema_description:"Pending change ID"`
	Wait         bool   `json:"wait,omitempty" jsonschema_description:"Block until the change reaches a terminal state (default: false)"`
}

// AcknowledgeDVChallengesResult is the result of acknowledging DV challenges
type AcknowledgeDVChallengesResult struct {
	Acknowledged bool   `json:"acknowledged"`
	State        string `json:"state,omitempty"`
}

// GetDeploymentsArgs contains parameters for listing certificate deployments
type GetDeploymentsArgs struct {
	EnrollmentID int `json:"enrollmentId" jsonschema:"required" jsonschema_description:"Numeric enrollment ID"`
}

// GetDeploymentsResult is the result of listing certificate deployments
type GetDeploymentsResult struct {
	Staging    *Deployment `json:"staging,omitempty"`
	Production *Deployment `json:"production,omitempty"`
}
