package netlist

// ListNetworkListsArgs contains parameters for listing network lists
type ListNetworkListsArgs struct {
	Type   string `json:"type,omitempty" jsonschema_description:"Optional list type filter: IP or GEO"`
	Search string `json:"search,omitempty" jsonschema_description:"Optional name filter"`
}

// ListNetworkListsResult is the result of listing network lists
type ListNetworkListsResult struct {
	NetworkLists []NetworkList `json:"networkLists"`
	Total        int           `json:"total"`
}

// GetNetworkListArgs contains parameters for getting a network list
type GetNetworkListArgs struct {
	UniqueID string `json:"uniqueId" jsonschema:"required" jsonschema_description:"Network list ID, e.g. 12345_BLOCKEDIPS"`
}

// GetNetworkListResult is the result of getting a network list
type GetNetworkListResult struct {
	NetworkList *NetworkList `json:"networkList"`
}

// CreateNetworkListArgs contains parameters for creating a network list
type CreateNetworkListArgs struct {
	Name        string   `json:"name" jsonschema:"required" jsonschema_description:"Name for the new list"`
	Type        string   `json:"type" jsonschema:"required" jsonschema_description:"List type: IP or GEO"`
	Description string   `json:"description,omitempty" jsonschema_description:"What the list is for"`
	Elements    []string `json:"elements,omitempty" jsonschema_description:"Initial elements: IPs/CIDR blocks or country codes"`
}

// CreateNetworkListResult is the result of creating a network list
type CreateNetworkListResult struct {
	NetworkList *NetworkList `json:"networkList"`
}

// AddElementsArgs contains parameters for appending elements to a list
type AddElementsArgs struct {
	UniqueID string   `json:"uniqueId" jsonschema:"required" jsonschema_description:"Network list ID"`
	Elements []string `json:"elements" jsonschema:"required" jsonschema_description:"Elements to append"`
}

// AddElementsResult is the result of appending elements to a list
type AddElementsResult struct {
	ElementCount int `json:"elementCount"`
	SyncPoint    int `json:"syncPoint"`
}

// RemoveElementArgs contains parameters for removing one element
type RemoveElementArgs struct {
	UniqueID string `json:"uniqueId" jsonschema:"required" jsonschema_description:"Network list ID"`
	Element  string `json:"element" jsonschema:"required" jsonschema_description:"Element to remove"`
}

// RemoveElementResult is the result of removing one element
type RemoveElementResult struct {
	Removed bool `json:"removed"`
}

// ActivateNetworkListArgs contains parameters for activating a list
type ActivateNetworkListArgs struct {
	UniqueID               string   `json:"uniqueId" jsonschema:"required" jsonschema_description:"Network list ID"`
	Environment            string   `json:"environment" jsonschema:"required" jsonschema_description:"Target environment: STAGING or PRODUCTION"`
	Comments               string   `json:"comments,omitempty" jsonschema_description:"Activation comment"`
	NotificationRecipients []string `json:"notificationRecipients,omitempty" jsonschema_description:"Addresses to notify"`
	Wait                   bool     `json:"wait,omitempty" jsonschema_description:"Block until the activation reaches a terminal state (default: false)"`
}

// ActivateNetworkListResult is the result of activating a list
type ActivateNetworkListResult struct {
	ActivationID int    `json:"activationId"`
	Status       string `json:"status"`
	Environment  string `json:"environment"`
}

// GetNetworkListStatusArgs contains parameters for checking activation state
type GetNetworkListStatusArgs struct {
	UniqueID string `json:"uniqueId" jsonschema:"required" jsonschema_description:"Network list ID"`
}

// EnvironmentStatus is the activation state on one environment
type EnvironmentStatus struct {
	Environment string `json:"environment"`
	Status      string `json:"status"`
	SyncPoint   int    `json:"syncPoint,omitempty"`
}

// GetNetworkListStatusResult is the result of checking activation state
type GetNetworkListStatusResult struct {
	Staging    EnvironmentStatus `json:"staging"`
	Production EnvironmentStatus `json:"production"`
}
