package dns

// Zone is an Edge DNS zone.
type Zone struct {
	Zone            string   `json:"zone"`
	Type            string   `json:"type"` // PRIMARY, SECONDARY or ALIAS
	Comment         string   `json:"comment,omitempty"`
	SignAndServe    bool     `json:"signAndServe"`
	ContractID      string   `json:"contractId,omitempty"`
	ActivationState string   `json:"activationState,omitempty"`
	LastModifiedBy  string   `json:"lastModifiedBy,omitempty"`
	LastModified    string   `json:"lastModifiedDate,omitempty"`
	VersionID       string   `json:"versionId,omitempty"`
	Masters         []string `json:"masters,omitempty"`
	TSIGKey         *TSIGKey `json:"tsigKey,omitempty"`
}

// TSIGKey authenticates zone transfers for secondary zones.
type TSIGKey struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
	Secret    string `json:"secret"`
}

// Zone types.
const (
	ZoneTypePrimary   = "PRIMARY"
	ZoneTypeSecondary = "SECONDARY"
	ZoneTypeAlias     = "ALIAS"
)

// Zone activation states reported by the API.
const (
	ZoneStateActive  = "ACTIVE"
	ZoneStatePending = "PENDING"
	ZoneStateNew     = "NEW"
	ZoneStateError   = "ERROR"
	ZoneStateFailed  = "FAILED"
)

// RecordSet is a DNS record set: one name and type with one or more rdata
// values sharing a TTL.
type RecordSet struct {
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	TTL   int      `json:"ttl"`
	Rdata []string `json:"rdata"`
}

// ChangeList is a staged set of record edits for one zone. Edits accumulate
// against a zone version snapshot and only take effect on submit.
type ChangeList struct {
	Zone             string `json:"zone"`
	ChangeTag        string `json:"changeTag,omitempty"`
	ZoneVersionID    string `json:"zoneVersionId,omitempty"`
	LastModifiedDate string `json:"lastModifiedDate,omitempty"`
	Stale            bool   `json:"stale,omitempty"`
}

// SubmitResult is returned when a changelist is submitted.
type SubmitResult struct {
	RequestID      string `json:"requestId,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	ValidationJobs int    `json:"validationJobs,omitempty"`
}

type zonesResponse struct {
	Zones    []Zone        `json:"zones"`
	Metadata *listMetadata `json:"metadata,omitempty"`
}

type recordSetsResponse struct {
	RecordSets []RecordSet   `json:"recordsets"`
	Metadata   *listMetadata `json:"metadata,omitempty"`
}

type listMetadata struct {
	Page          int `json:"page,omitempty"`
	PageSize      int `json:"pageSize,omitempty"`
	TotalElements int `json:"totalElements,omitempty"`
}

type createZoneRequest struct {
	Zone         string   `json:"zone"`
	Type         string   `json:"type"`
	Comment      string   `json:"comment,omitempty"`
	SignAndServe bool     `json:"signAndServe"`
	Masters      []string `json:"masters,omitempty"`
	Target       string   `json:"target,omitempty"`
}
