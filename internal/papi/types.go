// Package papi provides a client for the Akamai Property Manager API (PAPI).
// It covers group/contract discovery, property CRUD, rule-tree management,
// and activation workflows. Property configurations are JSON rule trees; the
// diff/merge/optimize engine in ruletree.go operates on them structurally.
package papi

// Group is a PAPI access-control group.
type Group struct {
	GroupID       string   `json:"groupId"`
	GroupName     string   `json:"groupName"`
	ParentGroupID string   `json:"parentGroupId,omitempty"`
	ContractIDs   []string `json:"contractIds"`
}

// Contract is an Akamai product contract.
type Contract struct {
	ContractID       string `json:"contractId"`
	ContractTypeName string `json:"contractTypeName"`
}

// Property is a CDN property configuration container.
type Property struct {
	PropertyID        string `json:"propertyId"`
	PropertyName      string `json:"propertyName"`
	ContractID        string `json:"contractId"`
	GroupID           string `json:"groupId"`
	AccountID         string `json:"accountId,omitempty"`
	AssetID           string `json:"assetId,omitempty"`
	LatestVersion     int    `json:"latestVersion"`
	StagingVersion    *int   `json:"stagingVersion"`
	ProductionVersion *int   `json:"productionVersion"`
	ProductID         string `json:"productId,omitempty"`
	Note              string `json:"note,omitempty"`
}

// Hostname maps a property hostname to its edge hostname.
type Hostname struct {
	CnameFrom            string `json:"cnameFrom"`
	CnameTo              string `json:"cnameTo"`
	CnameType            string `json:"cnameType,omitempty"`
	EdgeHostnameID       string `json:"edgeHostnameId,omitempty"`
	CertProvisioningType string `json:"certProvisioningType,omitempty"`
}

// Activation is one property activation on a network.
type Activation struct {
	ActivationID    string   `json:"activationId"`
	PropertyID      string   `json:"propertyId,omitempty"`
	PropertyVersion int      `json:"propertyVersion"`
	Network         string   `json:"network"` // STAGING or PRODUCTION
	ActivationType  string   `json:"activationType,omitempty"`
	Status          string   `json:"status"`
	SubmitDate      string   `json:"submitDate,omitempty"`
	UpdateDate      string   `json:"updateDate,omitempty"`
	Note            string   `json:"note,omitempty"`
	NotifyEmails    []string `json:"notifyEmails,omitempty"`
}

// Activation statuses. ZONE_1..3 are the phased production rollout states.
const (
	ActivationActive              = "ACTIVE"
	ActivationPending             = "PENDING"
	ActivationAborted             = "ABORTED"
	ActivationFailed              = "FAILED"
	ActivationDeactivated         = "DEACTIVATED"
	ActivationPendingDeactivation = "PENDING_DEACTIVATION"
	ActivationNew                 = "NEW"
	ActivationZone1               = "ZONE_1"
	ActivationZone2               = "ZONE_2"
	ActivationZone3               = "ZONE_3"
)

// Networks a property can be activated on.
const (
	NetworkStaging    = "STAGING"
	NetworkProduction = "PRODUCTION"
)

// RuleTree is a complete property rule tree for one version.
type RuleTree struct {
	AccountID       string `json:"accountId,omitempty"`
	ContractID      string `json:"contractId,omitempty"`
	GroupID         string `json:"groupId,omitempty"`
	PropertyID      string `json:"propertyId,omitempty"`
	PropertyVersion int    `json:"propertyVersion,omitempty"`
	RuleFormat      string `json:"ruleFormat,omitempty"`
	Rules           Rule   `json:"rules"`
}

// Rule is one node of a rule tree. The top-level rule is always named
// "default" and carries no criteria.
type Rule struct {
	Name                string     `json:"name"`
	Comments            string     `json:"comments,omitempty"`
	CriteriaMustSatisfy string     `json:"criteriaMustSatisfy,omitempty"` // "all" or "any"
	Criteria            []Behavior `json:"criteria,omitempty"`
	Behaviors           []Behavior `json:"behaviors,omitempty"`
	Children            []Rule     `json:"children,omitempty"`
}

// Behavior is a named, option-bearing entry. PAPI uses the same shape for
// behaviors and match criteria.
type Behavior struct {
	Name    string                 `json:"name"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// API response envelopes. PAPI wraps every collection in {"x":{"items":[...]}}.

type groupsResponse struct {
	Groups struct {
		Items []Group `json:"items"`
	} `json:"groups"`
}

type contractsResponse struct {
	Contracts struct {
		Items []Contract `json:"items"`
	} `json:"contracts"`
}

type propertiesResponse struct {
	Properties struct {
		Items []Property `json:"items"`
	} `json:"properties"`
}

type hostnamesResponse struct {
	Hostnames struct {
		Items []Hostname `json:"items"`
	} `json:"hostnames"`
}

type activationsResponse struct {
	Activations struct {
		Items []Activation `json:"items"`
	} `json:"activations"`
}

type createPropertyRequest struct {
	PropertyName string `json:"propertyName"`
	ProductID    string `json:"productId"`
	RuleFormat   string `json:"ruleFormat,omitempty"`
}

type createPropertyResponse struct {
	PropertyLink string `json:"propertyLink"`
}

type createVersionRequest struct {
	CreateFromVersion int `json:"createFromVersion"`
}

type createVersionResponse struct {
	VersionLink string `json:"versionLink"`
}

type activationRequest struct {
	PropertyVersion        int      `json:"propertyVersion"`
	Network                string   `json:"network"`
	Note                   string   `json:"note,omitempty"`
	NotifyEmails           []string `json:"notifyEmails,omitempty"`
	AcknowledgeAllWarnings bool     `json:"acknowledgeAllWarnings"`
}

type activationResponse struct {
	ActivationLink string `json:"activationLink"`
}

type ruleTreeUpdateResponse struct {
	Errors   []RuleValidationItem `json:"errors,omitempty"`
	Warnings []RuleValidationItem `json:"warnings,omitempty"`
}

// RuleValidationItem is a server-side rule validation message.
type RuleValidationItem struct {
	Type         string `json:"type,omitempty"`
	Title        string `json:"title,omitempty"`
	Detail       string `json:"detail,omitempty"`
	ErrorLocation string `json:"errorLocation,omitempty"`
}
