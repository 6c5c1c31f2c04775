package papi

// ListGroupsArgs contains parameters for listing groups
type ListGroupsArgs struct {
	Search string `json:"search,omitempty" jsonschema_description:"Optional group name filter (case-insensitive substring)"`
}

// ListGroupsResult is the result of listing groups
type ListGroupsResult struct {
	Groups []Group `json:"groups"`
	Total  int     `json:"total"`
}

// ListContractsArgs contains parameters for listing contracts
type ListContractsArgs struct{}

// ListContractsResult is the result of listing contracts
type ListContractsResult struct {
	Contracts []Contract `json:"contracts"`
	Total     int        `json:"total"`
}

// ListPropertiesArgs contains parameters for listing properties
type ListPropertiesArgs struct {
	ContractID string `json:"contractId" jsonschema:"required" jsonschema_description:"Contract ID, e.g. ctr_C-1FRYVV3"`
	GroupID    string `json:"groupId" jsonschema:"required" jsonschema_description:"Group ID, e.g. grp_12345"`
}

// ListPropertiesResult is the result of listing properties
type ListPropertiesResult struct {
	Properties []Property `json:"properties"`
	Total      int        `json:"total"`
}

// GetPropertyArgs contains parameters for getting a property
type GetPropertyArgs struct {
	PropertyID string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID, e.g. prp_12345 (a bare number is accepted)"`
}

// GetPropertyResult is the result of getting a property
type GetPropertyResult struct {
	Property *Property `json:"property"`
}

// CreatePropertyArgs contains parameters for creating a property
type CreatePropertyArgs struct {
	PropertyName string `json:"propertyName" jsonschema:"required" jsonschema_description:"Name for the new property"`
	ProductID    string `json:"productId" jsonschema:"required" jsonschema_description:"Product ID, e.g. prd_Fresca"`
	ContractID   string `json:"contractId" jsonschema:"required" jsonschema_description:"Contract the property belongs to"`
	GroupID      string `json:"groupId" jsonschema:"required" jsonschema_description:"Group the property belongs to"`
}

// CreatePropertyResult is the result of creating a property
type CreatePropertyResult struct {
	PropertyID string `json:"propertyId"`
}

// CreateVersionArgs contains parameters for creating a property version
type CreateVersionArgs struct {
	PropertyID  string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
	FromVersion int    `json:"fromVersion" jsonschema:"required" jsonschema_description:"Existing version to copy from"`
}

// CreateVersionResult is the result of creating a property version
type CreateVersionResult struct {
	PropertyID string `json:"propertyId"`
	Version    int    `json:"version"`
}

// GetRuleTreeArgs contains parameters for getting a rule tree
type GetRuleTreeArgs struct {
	PropertyID string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
	Version    int    `json:"version" jsonschema:"required" jsonschema_description:"Property version"`
}

// GetRuleTreeResult is the result of getting a rule tree
type GetRuleTreeResult struct {
	RuleTree *RuleTree `json:"ruleTree"`
}

// UpdateRuleTreeArgs contains parameters for replacing a rule tree
type UpdateRuleTreeArgs struct {
	PropertyID string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
	Version    int    `json:"version" jsonschema:"required" jsonschema_description:"Editable property version"`
	Rules      Rule   `json:"rules" jsonschema:"required" jsonschema_description:"Complete replacement rule tree rooted at the default rule"`
}

// UpdateRuleTreeResult is the result of replacing a rule tree
type UpdateRuleTreeResult struct {
	Warnings []RuleValidationItem `json:"warnings,omitempty"`
	Updated  bool                 `json:"updated"`
}

// PatchRuleTreeArgs contains parameters for merging changes into a rule tree
type PatchRuleTreeArgs struct {
	PropertyID string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
	Version    int    `json:"version" jsonschema:"required" jsonschema_description:"Editable property version"`
	Patch      Rule   `json:"patch" jsonschema:"required" jsonschema_description:"Partial rule tree; matching rules and behaviors are overwritten, new ones appended"`
	DryRun     bool   `json:"dryRun,omitempty" jsonschema_description:"Report the resulting diff without saving (default: false)"`
}

// PatchRuleTreeResult is the result of merging changes into a rule tree
type PatchRuleTreeResult struct {
	Changes  []Change             `json:"changes"`
	Warnings []RuleValidationItem `json:"warnings,omitempty"`
	Saved    bool                 `json:"saved"`
}

// DiffRuleTreesArgs contains parameters for comparing two rule tree versions
type DiffRuleTreesArgs struct {
	PropertyID   string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
	LeftVersion  int    `json:"leftVersion" jsonschema:"required" jsonschema_description:"Baseline version"`
	RightVersion int    `json:"rightVersion" jsonschema:"required" jsonschema_description:"Version to compare against the baseline"`
}

// DiffRuleTreesResult is the result of comparing two rule tree versions
type DiffRuleTreesResult struct {
	Changes   []Change `json:"changes"`
	Identical bool     `json:"identical"`
}

// OptimizeRuleTreeArgs contains parameters for optimizing a rule tree
type OptimizeRuleTreeArgs struct {
	PropertyID string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
	Version    int    `json:"version" jsonschema:"required" jsonschema_description:"Editable property version"`
	DryRun     bool   `json:"dryRun,omitempty" jsonschema_description:"Report what would be removed without saving (default: false)"`
}

// OptimizeRuleTreeResult is the result of optimizing a rule tree
type OptimizeRuleTreeResult struct {
	Removed  int                  `json:"removed"`
	Warnings []RuleValidationItem `json:"warnings,omitempty"`
	Saved    bool                 `json:"saved"`
}

// ListHostnamesArgs contains parameters for listing property hostnames
type ListHostnamesArgs struct {
	PropertyID string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
	Version    int    `json:"version" jsonschema:"required" jsonschema_description:"Property version"`
}

// ListHostnamesResult is the result of listing property hostnames
type ListHostnamesResult struct {
	Hostnames []Hostname `json:"hostnames"`
	Total     int        `json:"total"`
}

// ActivatePropertyArgs contains parameters for activating a property version
type ActivatePropertyArgs struct {
	PropertyID   string   `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
	Version      int      `json:"version" jsonschema:"required" jsonschema_description:"Version to activate"`
	Network      string   `json:"network" jsonschema:"required" jsonschema_description:"Target network: STAGING or PRODUCTION"`
	Note         string   `json:"note,omitempty" jsonschema_description:"Activation note shown in Control Center"`
	NotifyEmails []string `json:"notifyEmails,omitempty" jsonschema_description:"Addresses to notify when the activation completes"`
	Wait         bool     `json:"wait,omitempty" jsonschema_description:"Block until the activation reaches a terminal state (default: false)"`
}

// ActivatePropertyResult is the result of activating a property version
type ActivatePropertyResult struct {
	ActivationID string `json:"activationId"`
	Status       string `json:"status"`
	Network      string `json:"network"`
}

// GetActivationStatusArgs contains parameters for checking activation status
type GetActivationStatusArgs struct {
	PropertyID string `json:"propertyId" jsonschema:"required" jsonschema_description:"Property ID"`
}

// NetworkStatus is the latest activation state on one network
type NetworkStatus struct {
	Network      string `json:"network"`
	ActivationID string `json:"activationId,omitempty"`
	Version      int    `json:"version,omitempty"`
	Status       string `json:"status"`
}

// GetActivationStatusResult is the result of checking activation status
type GetActivationStatusResult struct {
	Staging    NetworkStatus `json:"staging"`
	Production NetworkStatus `json:"production"`
}
