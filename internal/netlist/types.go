package netlist

// NetworkList is an Akamai network list: a named set of IP addresses/CIDR
// blocks or geographies referenced by security policies.
type NetworkList struct {
	UniqueID           string   `json:"uniqueId"`
	Name               string   `json:"name"`
	Type               string   `json:"type"` // IP or GEO
	Description        string   `json:"description,omitempty"`
	ElementCount       int      `json:"elementCount"`
	List               []string `json:"list,omitempty"`
	SyncPoint          int      `json:"syncPoint"`
	ReadOnly           bool     `json:"readOnly,omitempty"`
	Shared             bool     `json:"shared,omitempty"`
	AccessControlGroup string   `json:"accessControlGroup,omitempty"`
}

// List types.
const (
	TypeIP  = "IP"
	TypeGeo = "GEO"
)

// Activation environments.
const (
	EnvStaging    = "STAGING"
	EnvProduction = "PRODUCTION"
)

// Activation statuses reported by the API.
const (
	StatusActive            = "ACTIVE"
	StatusInactive          = "INACTIVE"
	StatusPendingActivation = "PENDING_ACTIVATION"
	StatusFailed            = "FAILED"
	StatusModified          = "MODIFIED"
)

// ActivationState is the activation status of a list on one environment.
type ActivationState struct {
	ActivationID     int    `json:"activationId,omitempty"`
	ActivationStatus string `json:"activationStatus"`
	SyncPoint        int    `json:"syncPoint,omitempty"`
	Environment      string `json:"-"`
}

type networkListsResponse struct {
	NetworkLists []NetworkList `json:"networkLists"`
}

type createListRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	List        []string `json:"list"`
}

type appendRequest struct {
	List []string `json:"list"`
}

type activateRequest struct {
	Comments               string   `json:"comments,omitempty"`
	NotificationRecipients []string `json:"notificationRecipients,omitempty"`
}

type activateResponse struct {
	ActivationID     int    `json:"activationId"`
	ActivationStatus string `json:"activationStatus"`
}
