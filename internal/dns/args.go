package dns

// ListZonesArgs contains parameters for listing zones
type ListZonesArgs struct {
	Search string `json:"search,omitempty" jsonschema_description:"Optional zone name filter"`
}

// ListZonesResult is the result of listing zones
type ListZonesResult struct {
	Zones []Zone `json:"zones"`
	Total int    `json:"total"`
}

// GetZoneArgs contains parameters for getting a zone
type GetZoneArgs struct {
	Zone string `json:"zone" jsonschema:"required" jsonschema_description:"Zone name, e.g. example.com"`
}

// GetZoneResult is the result of getting a zone
type GetZoneResult struct {
	Zone *Zone `json:"zone"`
}

// CreateZoneArgs contains parameters for creating a zone
type CreateZoneArgs struct {
	Zone         string   `json:"zone" jsonschema:"required" jsonschema_description:"Zone name, e.g. example.com"`
	Type         string   `json:"type" jsonschema:"required" jsonschema_description:"Zone type: PRIMARY, SECONDARY or ALIAS"`
	ContractID   string   `json:"contractId" jsonschema:"required" jsonschema_description:"Contract the zone belongs to"`
	GroupID      string   `json:"groupId,omitempty" jsonschema_description:"Optional group ID"`
	Comment      string   `json:"comment,omitempty" jsonschema_description:"Zone comment"`
	SignAndServe bool     `json:"signAndServe,omitempty" jsonschema_description:"Enable DNSSEC sign-and-serve (default: false)"`
	Masters      []string `json:"masters,omitempty" jsonschema_description:"Master servers (SECONDARY zones only)"`
	Target       string   `json:"target,omitempty" jsonschema_description:"Target zone (ALIAS zones only)"`
}

// CreateZoneResult is the result of creating a zone
type CreateZoneResult struct {
	Zone *Zone `json:"zone"`
}

// ListRecordSetsArgs contains parameters for listing record sets
type ListRecordSetsArgs struct {
	Zone   string   `json:"zone" jsonschema:"required" jsonschema_description:"Zone name"`
	Search string   `json:"search,omitempty" jsonschema_description:"Optional record name filter"`
	Types  []string `json:"types,omitempty" jsonschema_description:"Optional record type filter, e.g. [\"A\",\"CNAME\"]"`
}

// ListRecordSetsResult is the result of listing record sets
type ListRecordSetsResult struct {
	RecordSets []RecordSet `json:"recordSets"`
	Total      int         `json:"total"`
}

// GetRecordSetArgs contains parameters for getting one record set
type GetRecordSetArgs struct {
	Zone string `json:"zone" jsonschema:"required" jsonschema_description:"Zone name"`
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Fully qualified record name, e.g. www.example.com"`
	Type string `json:"type" jsonschema:"required" jsonschema_description:"Record type, e.g. A"`
}

// GetRecordSetResult is the result of getting one record set
type GetRecordSetResult struct {
	RecordSet *RecordSet `json:"recordSet"`
}

// UpsertRecordArgs contains parameters for creating or replacing a record set
type UpsertRecordArgs struct {
	Zone  string   `json:"zone" jsonschema:"required" jsonschema_description:"Zone name"`
	Name  string   `json:"name" jsonschema:"required" jsonschema_description:"Fully qualified record name"`
	Type  string   `json:"type" jsonschema:"required" jsonschema_description:"Record type: A, AAAA, CNAME, MX, TXT, NS, SRV, CAA or PTR"`
	TTL   int      `json:"ttl" jsonschema:"required" jsonschema_description:"TTL in seconds (30-86400)"`
	Rdata []string `json:"rdata" jsonschema:"required" jsonschema_description:"Record values, e.g. [\"192.0.2.1\"]"`
	Wait  bool     `json:"wait,omitempty" jsonschema_description:"Block until the zone finishes propagating (default: false)"`
}

// UpsertRecordResult is the result of creating or replacing a record set
type UpsertRecordResult struct {
	RequestID string `json:"requestId,omitempty"`
	Submitted bool   `json:"submitted"`
}

// DeleteRecordArgs contains parameters for deleting a record set
type DeleteRecordArgs struct {
	Zone string `json:"zone" jsonschema:"required" jsonschema_description:"Zone name"`
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Fully qualified record name"`
	Type string `json:"type" jsonschema:"required" jsonschema_description:"Record type"`
	Wait bool   `json:"wait,omitempty" jsonschema_description:"Block until the zone finishes propagating (default: false)"`
}

// DeleteRecordResult is the result of deleting a record set
type DeleteRecordResult struct {
	RequestID string `json:"requestId,omitempty"`
	Submitted bool   `json:"submitted"`
}

// BulkEditRecordsArgs contains parameters for applying several record edits
// in one changelist
type BulkEditRecordsArgs struct {
	Zone    string       `json:"zone" jsonschema:"required" jsonschema_description:"Zone name"`
	Upserts []RecordSet  `json:"upserts,omitempty" jsonschema_description:"Record sets to create or replace"`
	Deletes []RecordName `json:"deletes,omitempty" jsonschema_description:"Record sets to delete"`
	Wait    bool         `json:"wait,omitempty" jsonschema_description:"Block until the zone finishes propagating (default: false)"`
}

// RecordName identifies a record set for deletion
type RecordName struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Fully qualified record name"`
	Type string `json:"type" jsonschema:"required" jsonschema_description:"Record type"`
}

// BulkEditRecordsResult is the result of a bulk record edit
type BulkEditRecordsResult struct {
	RequestID string `json:"requestId,omitempty"`
	Edits     int    `json:"edits"`
	Submitted bool   `json:"submitted"`
}

// GetChangeListArgs contains parameters for inspecting an open changelist
type GetChangeListArgs struct {
	Zone string `json:"zone" jsonschema:"required" jsonschema_description:"Zone name"`
}

// GetChangeListResult is the result of inspecting an open changelist
type GetChangeListResult struct {
	ChangeList *ChangeList `json:"changeList,omitempty"`
	Open       bool        `json:"open"`
}

// DiscardChangeListArgs contains parameters for discarding an open changelist
type DiscardChangeListArgs struct {
	Zone string `json:"zone" jsonschema:"required" jsonschema_description:"Zone name"`
}

// DiscardChangeListResult is the result of discarding an open changelist
type DiscardChangeListResult struct {
	Discarded bool `json:"discarded"`
}
