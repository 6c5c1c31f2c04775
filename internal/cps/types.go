package cps

// Enrollment is a CPS certificate enrollment.
type Enrollment struct {
	ID                   int            `json:"id,omitempty"`
	CSR                  CSR            `json:"csr"`
	ValidationType       string         `json:"validationType"`
	CertificateType      string         `json:"certificateType"`
	CertificateChainType string         `json:"certificateChainType,omitempty"`
	ChangeManagement     bool           `json:"changeManagement"`
	RA                   string         `json:"ra"`
	AdminContact         *Contact       `json:"adminContact,omitempty"`
	TechContact          *Contact       `json:"techContact,omitempty"`
	Org                  *Organization  `json:"org,omitempty"`
	NetworkConfiguration *NetworkConfig `json:"networkConfiguration,omitempty"`
	SignatureAlgorithm   string         `json:"signatureAlgorithm,omitempty"`
	PendingChanges       []string       `json:"pendingChanges,omitempty"`
	Location             string         `json:"location,omitempty"`
}

// CSR carries the certificate signing request fields.
type CSR struct {
	CN   string   `json:"cn"`
	SANs []string `json:"sans,omitempty"`
	C    string   `json:"c,omitempty"`
	ST   string   `json:"st,omitempty"`
	L    string   `json:"l,omitempty"`
	O    string   `json:"o,omitempty"`
	OU   string   `json:"ou,omitempty"`
}

// Contact is an enrollment contact.
type Contact struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	OrganizationN  string `json:"organizationName,omitempty"`
	AddressLineOne string `json:"addressLineOne,omitempty"`
	City           string `json:"city,omitempty"`
	Region         string `json:"region,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	Country        string `json:"country,omitempty"`
}

// Organization is the certificate subject organization.
type Organization struct {
	Name           string `json:"name"`
	AddressLineOne string `json:"addressLineOne,omitempty"`
	City           string `json:"city,omitempty"`
	Region         string `json:"region,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	Country        string `json:"country,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// NetworkConfig selects where and how the certificate deploys.
type NetworkConfig struct {
	Geography     string   `json:"geography"` // core, china+core, russia+core
	SecureNetwork string   `json:"secureNetwork"`
	SNIOnly       bool     `json:"sniOnly"`
	QuicEnabled   bool     `json:"quicEnabled,omitempty"`
	MustHaveCiph  string   `json:"mustHaveCiphers,omitempty"`
	DNSNames      []string `json:"dnsNameSettings,omitempty"`
}

// Validation types.
const (
	ValidationDV    = "dv"
	ValidationOV    = "ov"
	ValidationEV    = "ev"
	ValidationThird = "third-party"
)

// Change is one pending change on an enrollment.
type Change struct {
	Location     string  `json:"location,omitempty"`
	StatusInfo   *Status `json:"statusInfo,omitempty"`
	AllowedInput []Input `json:"allowedInput,omitempty"`
}

// Status is the state of a pending change.
type Status struct {
	State             string `json:"state"` // running, suspended, completed, error
	Status            string `json:"status"`
	Description       string `json:"description,omitempty"`
	DeploymentSchedule *struct {
		NotBefore string `json:"notBefore,omitempty"`
		NotAfter  string `json:"notAfter,omitempty"`
	} `json:"deploymentSchedule,omitempty"`
	Error *struct {
		Description string `json:"description,omitempty"`
	} `json:"error,omitempty"`
}

// Change states reported by the API.
const (
	ChangeStateRunning   = "running"
	ChangeStateSuspended = "suspended"
	ChangeStateCompleted = "completed"
	ChangeStateError     = "error"
)

// Input is an action the change is waiting on.
type Input struct {
	Type              string `json:"type"`
	RequiredToProceed bool   `json:"requiredToProceed"`
	Info              string `json:"info,omitempty"`
	Update            string `json:"update,omitempty"`
}

// DVChallenge is one domain validation challenge for a DV enrollment.
type DVChallenge struct {
	Domain       string `json:"domain"`
	Status       string `json:"status"` // pending, processing, valid, invalid
	Error        string `json:"error,omitempty"`
	Token        string `json:"token,omitempty"`
	ResponseBody string `json:"responseBody,omitempty"`
	FullPath     string `json:"fullPath,omitempty"`
	RedirectFrom string `json:"redirectFullPath,omitempty"`
	Type         string `json:"type"` // http-01 or dns-01
	ValidatedAt  string `json:"validationStatus,omitempty"`
	Expires      string `json:"expires,omitempty"`
}

// Deployment is a deployed certificate on a network.
type Deployment struct {
	Network            string `json:"networkConfiguration,omitempty"`
	PrimaryCertificate *struct {
		Certificate  string `json:"certificate,omitempty"`
		Expiry       string `json:"expiry,omitempty"`
		SerialNumber string `json:"serialNumber,omitempty"`
		SignatureAlg string `json:"signatureAlgorithm,omitempty"`
	} `json:"primaryCertificate,omitempty"`
}

type enrollmentsResponse struct {
	Enrollments []Enrollment `json:"enrollments"`
}

type createEnrollmentResponse struct {
	Enrollment string   `json:"enrollment"` // location of the new enrollment
	Changes    []string `json:"changes"`
}

type dvChallengesResponse struct {
	DV []struct {
		Domain     string        `json:"domain"`
		Status     string        `json:"status"`
		Error      string        `json:"error,omitempty"`
		Expires    string        `json:"expires,omitempty"`
		Challenges []DVChallenge `json:"challenges"`
	} `json:"dv"`
}

type deploymentsResponse struct {
	Production *Deployment `json:"production,omitempty"`
	Staging    *Deployment `json:"staging,omitempty"`
}
