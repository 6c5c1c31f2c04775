package tools

// AllTools contains all tool specifications for the Akamai MCP server.
// Tools are organized by service for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// PROPERTY MANAGER (PAPI)
	// ==========================================================================
	{
		Name:     "akamai_list_groups",
		Method:   "ListGroups",
		Title:    "List Groups",
		Category: "read",
		Service:  "papi",
		Description: `List the Akamai access-control groups visible to the configured credentials.

USE WHEN: User asks "what groups do I have", "find the group for X", or a group ID is needed for another call.

NOT FOR: Listing contracts (use akamai_list_contracts) or properties (use akamai_list_properties).

PARAMETERS:
- search: Optional case-insensitive name filter

RETURNS: Group IDs, names, and the contracts each group belongs to.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_list_contracts",
		Method:   "ListContracts",
		Title:    "List Contracts",
		Category: "read",
		Service:  "papi",
		Description: `List the Akamai contracts visible to the configured credentials.

USE WHEN: User asks "what contracts do I have" or a contract ID is needed for another call.

NOT FOR: Group lookups (use akamai_list_groups).

RETURNS: Contract IDs and their product type names.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_list_properties",
		Method:   "ListProperties",
		Title:    "List Properties",
		Category: "read",
		Service:  "papi",
		Description: `List CDN properties in one contract and group.

USE WHEN: User asks "show my properties", "what properties are in group X".

NOT FOR: Details of a single property (use akamai_get_property).

PARAMETERS:
- contractId: Contract ID, e.g. ctr_C-1FRYVV3 (required)
- groupId: Group ID, e.g. grp_12345 (required)

RETURNS: Property IDs, names, latest/staging/production version numbers.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_get_property",
		Method:   "GetProperty",
		Title:    "Get Property",
		Category: "read",
		Service:  "papi",
		Description: `Get one property by ID.

USE WHEN: User names a specific property ("show me prp_12345", "what version of www-example is live").

NOT FOR: Browsing properties (use akamai_list_properties).

PARAMETERS:
- propertyId: Property ID; a bare number like 12345 is accepted (required)

RETURNS: The property with its contract, group, and version pointers.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_create_property",
		Method:   "CreateProperty",
		Title:    "Create Property",
		Category: "write",
		Service:  "papi",
		Description: `Create a new CDN property.

USE WHEN: User says "create a property", "set up a new configuration for example.com".

NOT FOR: Creating a new version of an existing property (use akamai_create_property_version).

PARAMETERS:
- propertyName: Name for the property (required)
- productId: Product ID, e.g. prd_Fresca (required)
- contractId, groupId: Where the property lives (required)

RETURNS: The new property ID.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_create_property_version",
		Method:   "CreateVersion",
		Title:    "Create Property Version",
		Category: "write",
		Service:  "papi",
		Description: `Create a new editable version of a property from an existing one.

USE WHEN: User wants to edit a property whose latest version is already active ("make a new version of prp_12345").

NOT FOR: Creating a brand-new property (use akamai_create_property).

PARAMETERS:
- propertyId: Property ID (required)
- fromVersion: Version to copy from (required)

RETURNS: The new version number.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_get_rule_tree",
		Method:   "GetRuleTree",
		Title:    "Get Rule Tree",
		Category: "rules",
		Service:  "papi",
		Description: `Get the full rule tree of a property version.

USE WHEN: User asks "show the rules", "what caching behavior is configured", "what does the config look like".

NOT FOR: Comparing versions (use akamai_diff_rule_trees) or editing (use akamai_update_rule_tree / akamai_patch_rule_tree).

PARAMETERS:
- propertyId: Property ID (required)
- version: Property version (required)

RETURNS: The complete rule tree with behaviors, criteria, and children.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_update_rule_tree",
		Method:   "UpdateRuleTree",
		Title:    "Replace Rule Tree",
		Category: "rules",
		Service:  "papi",
		Description: `REPLACE the entire rule tree of a property version.

USE WHEN: User provides a complete new rule tree or asks to overwrite the configuration wholesale.

NOT FOR: Targeted edits (use akamai_patch_rule_tree — it merges instead of replacing and is much safer).

PARAMETERS:
- propertyId, version: Target version; must not be active (required)
- rules: Complete rule tree rooted at the default rule (required)

RETURNS: Server-side validation warnings, if any. The tree is validated locally first.`,
		Destructive: true,
		OpenWorld:   true,
	},
	{
		Name:     "akamai_patch_rule_tree",
		Method:   "PatchRuleTree",
		Title:    "Patch Rule Tree",
		Category: "rules",
		Service:  "papi",
		Description: `Merge a partial rule tree into a property version. Matching rules and behaviors (by name) are overwritten, new ones appended, everything else is left alone.

USE WHEN: User wants a targeted change ("set the caching TTL to 1 hour", "add a redirect rule") without supplying the whole tree.

NOT FOR: Wholesale replacement (use akamai_update_rule_tree).

PARAMETERS:
- propertyId, version: Target version (required)
- patch: Partial rule tree (required)
- dryRun: Report the resulting diff without saving (default false)

RETURNS: The list of changes the merge produced, and whether it was saved.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_diff_rule_trees",
		Method:   "DiffRuleTrees",
		Title:    "Diff Rule Trees",
		Category: "rules",
		Service:  "papi",
		Description: `Compare the rule trees of two versions of a property.

USE WHEN: User asks "what changed between v3 and v4", "diff the staging and production versions".

NOT FOR: Viewing a single version (use akamai_get_rule_tree).

PARAMETERS:
- propertyId: Property ID (required)
- leftVersion: Baseline version (required)
- rightVersion: Version to compare (required)

RETURNS: Added/removed/modified rules and behaviors with their tree paths.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_optimize_rule_tree",
		Method:   "OptimizeRuleTree",
		Title:    "Optimize Rule Tree",
		Category: "rules",
		Service:  "papi",
		Description: `Remove empty rules and duplicate behaviors from a property version.

USE WHEN: User asks to "clean up" a rule tree that accumulated cruft over many edits.

NOT FOR: Semantic changes; only redundant structure is removed.

PARAMETERS:
- propertyId, version: Target version (required)
- dryRun: Report what would be removed without saving (default false)

RETURNS: How many rules/behaviors were removed, and whether it was saved.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_list_hostnames",
		Method:   "ListHostnames",
		Title:    "List Property Hostnames",
		Category: "read",
		Service:  "papi",
		Description: `List the hostnames attached to a property version.

USE WHEN: User asks "what hostnames does this property serve", "what is the edge hostname for www.example.com".

NOT FOR: DNS records (use akamai_list_records).

PARAMETERS:
- propertyId, version: Property version (required)

RETURNS: cnameFrom/cnameTo pairs with edge hostname IDs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_activate_property",
		Method:   "ActivateProperty",
		Title:    "Activate Property",
		Category: "activation",
		Service:  "papi",
		Description: `Activate a property version on the staging or production network.

USE WHEN: User says "deploy to staging", "push v4 live", "activate the property".

NOT FOR: Checking an activation already in flight (use akamai_get_activation_status).

PARAMETERS:
- propertyId, version: What to activate (required)
- network: STAGING or PRODUCTION (required)
- note, notifyEmails: Audit trail (optional)
- wait: Block until the activation finishes; on failure the pending activation is canceled (default false)

RETURNS: The activation ID and its current status.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_get_activation_status",
		Method:   "GetActivationStatus",
		Title:    "Get Activation Status",
		Category: "activation",
		Service:  "papi",
		Description: `Report the latest activation of a property on both networks.

USE WHEN: User asks "is it live yet", "what version is on production".

NOT FOR: Starting an activation (use akamai_activate_property).

PARAMETERS:
- propertyId: Property ID (required)

RETURNS: Per-network activation ID, version, and status.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// EDGE DNS
	// ==========================================================================
	{
		Name:     "akamai_list_zones",
		Method:   "ListZones",
		Title:    "List DNS Zones",
		Category: "read",
		Service:  "dns",
		Description: `List Edge DNS zones.

USE WHEN: User asks "what zones do I have", "is example.com hosted here".

NOT FOR: Records inside a zone (use akamai_list_records).

PARAMETERS:
- search: Optional zone name filter

RETURNS: Zone names, types, and activation states.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_get_zone",
		Method:   "GetZone",
		Title:    "Get DNS Zone",
		Category: "read",
		Service:  "dns",
		Description: `Get one Edge DNS zone.

USE WHEN: User asks about a specific zone ("is example.com DNSSEC signed", "is the zone active").

PARAMETERS:
- zone: Zone name, e.g. example.com (required)

RETURNS: The zone with its type, DNSSEC setting, and activation state.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_create_zone",
		Method:   "CreateZone",
		Title:    "Create DNS Zone",
		Category: "write",
		Service:  "dns",
		Description: `Create a new Edge DNS zone.

USE WHEN: User says "host example.com on Akamai DNS", "create a secondary zone".

PARAMETERS:
- zone: Zone name (required)
- type: PRIMARY, SECONDARY or ALIAS (required)
- contractId: Contract (required)
- masters: Master servers, SECONDARY only
- target: Target zone, ALIAS only
- signAndServe: Enable DNSSEC (default false)

RETURNS: The created zone.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_list_records",
		Method:   "ListRecordSets",
		Title:    "List DNS Records",
		Category: "read",
		Service:  "dns",
		Description: `List record sets in a zone.

USE WHEN: User asks "show the records in example.com", "what A records exist".

NOT FOR: One specific record (use akamai_get_record).

PARAMETERS:
- zone: Zone name (required)
- search: Optional name filter
- types: Optional type filter, e.g. ["A","CNAME"]

RETURNS: Record names, types, TTLs, and values.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_get_record",
		Method:   "GetRecordSet",
		Title:    "Get DNS Record",
		Category: "read",
		Service:  "dns",
		Description: `Get one record set by name and type.

USE WHEN: User asks "what does www.example.com point to", "what is the TXT record for _acme-challenge".

PARAMETERS:
- zone: Zone name (required)
- name: Fully qualified record name (required)
- type: Record type (required)

RETURNS: The record set with TTL and values.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_upsert_record",
		Method:   "UpsertRecord",
		Title:    "Create or Update DNS Record",
		Category: "write",
		Service:  "dns",
		Description: `Create or replace one record set. Runs the full changelist workflow: open a changelist, stage the edit, submit. A failed submit discards the changelist so the zone is never left half-edited.

USE WHEN: User says "point www at 192.0.2.1", "add a TXT record", "change the TTL".

NOT FOR: Several records at once (use akamai_bulk_edit_records — one changelist, one submit).

PARAMETERS:
- zone, name, type: Which record (required)
- ttl: 30-86400 seconds (required)
- rdata: Record values (required)
- wait: Block until the zone finishes propagating (default false)

RETURNS: The change-request ID.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_delete_record",
		Method:   "DeleteRecord",
		Title:    "Delete DNS Record",
		Category: "write",
		Service:  "dns",
		Description: `Delete one record set through the changelist workflow.

USE WHEN: User says "remove the old CNAME", "delete the TXT record".

NOT FOR: Several records at once (use akamai_bulk_edit_records).

PARAMETERS:
- zone, name, type: Which record (required)
- wait: Block until the zone finishes propagating (default false)

RETURNS: The change-request ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "akamai_bulk_edit_records",
		Method:   "BulkEditRecords",
		Title:    "Bulk Edit DNS Records",
		Category: "write",
		Service:  "dns",
		Description: `Apply several record upserts and deletes atomically in one changelist submit. Either every edit lands or none do.

USE WHEN: User describes a multi-record change ("migrate these five records", "swap the A and add a TXT").

NOT FOR: A single record (akamai_upsert_record / akamai_delete_record are simpler).

PARAMETERS:
- zone: Zone name (required)
- upserts: Record sets to create or replace
- deletes: {name, type} pairs to delete
- wait: Block until the zone finishes propagating (default false)

RETURNS: The change-request ID and the number of edits applied.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_get_changelist",
		Method:   "GetChangeList",
		Title:    "Get DNS Changelist",
		Category: "read",
		Service:  "dns",
		Description: `Check whether a zone has an open (unsubmitted) changelist.

USE WHEN: A record edit failed with a conflict, or the user asks "are there pending DNS changes".

PARAMETERS:
- zone: Zone name (required)

RETURNS: The open changelist, or open=false.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_discard_changelist",
		Method:   "DiscardChangeList",
		Title:    "Discard DNS Changelist",
		Category: "write",
		Service:  "dns",
		Description: `Abandon a zone's open changelist, throwing away its staged edits.

USE WHEN: User says "cancel the pending DNS changes", or a stale changelist blocks new edits.

NOT FOR: Undoing already-submitted changes; a submitted changelist is gone.

PARAMETERS:
- zone: Zone name (required)

RETURNS: Confirmation. Discarding a zone with no open changelist succeeds silently.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// CERTIFICATES (CPS)
	// ==========================================================================
	{
		Name:     "akamai_list_certificates",
		Method:   "ListEnrollments",
		Title:    "List Certificate Enrollments",
		Category: "read",
		Service:  "cps",
		Description: `List certificate enrollments.

USE WHEN: User asks "what certificates do I have", "is there a cert for www.example.com".

PARAMETERS:
- contractId: Optional contract filter

RETURNS: Enrollment IDs, common names, SANs, and pending-change counts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_get_certificate",
		Method:   "GetEnrollment",
		Title:    "Get Certificate Enrollment",
		Category: "read",
		Service:  "cps",
		Description: `Get one certificate enrollment.

USE WHEN: User asks about a specific enrollment ("show enrollment 10002").

PARAMETERS:
- enrollmentId: Numeric enrollment ID (required)

RETURNS: The enrollment with CSR fields, contacts, and network configuration.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_create_dv_certificate",
		Method:   "CreateDVEnrollment",
		Title:    "Create DV Certificate",
		Category: "write",
		Service:  "cps",
		Description: `Create a Domain Validated certificate enrollment (Let's Encrypt).

USE WHEN: User says "get a certificate for www.example.com", "set up a DV cert".

NOT FOR: OV/EV certificates; those need organization vetting outside this server.

PARAMETERS:
- contractId: Contract (required)
- commonName: Primary hostname (required)
- sans: Additional hostnames
- adminContact, techContact: Enrollment contacts (required)

RETURNS: The enrollment ID and the pending change ID to validate against.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_get_dv_challenges",
		Method:   "GetDVChallenges",
		Title:    "Get DV Challenges",
		Category: "read",
		Service:  "cps",
		Description: `List the domain validation challenges for a pending certificate change.

USE WHEN: After creating a DV enrollment, to get the HTTP or DNS tokens to publish.

PARAMETERS:
- enrollmentId: Enrollment ID (required)
- changeId: Pending change ID (required)

RETURNS: Per-domain http-01 and dns-01 challenges with tokens and paths.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_acknowledge_dv_challenges",
		Method:   "AcknowledgeDVChallenges",
		Title:    "Acknowledge DV Challenges",
		Category: "write",
		Service:  "cps",
		Description: `Tell CPS the validation records are in place so the CA re-checks them.

USE WHEN: After publishing the challenge tokens ("the TXT record is live, continue").

PARAMETERS:
- enrollmentId, changeId: The pending change (required)
- wait: Block until the change completes; a change that ends in error is canceled (default false)

RETURNS: Acknowledgement and, with wait, the terminal change state.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_get_certificate_deployments",
		Method:   "GetDeployments",
		Title:    "Get Certificate Deployments",
		Category: "read",
		Service:  "cps",
		Description: `Show the certificates an enrollment has deployed on each network.

USE WHEN: User asks "is the new cert live", "when does the certificate expire".

PARAMETERS:
- enrollmentId: Enrollment ID (required)

RETURNS: Staging and production certificates with expiry and serial number.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// NETWORK LISTS
	// ==========================================================================
	{
		Name:     "akamai_list_network_lists",
		Method:   "ListNetworkLists",
		Title:    "List Network Lists",
		Category: "read",
		Service:  "netlist",
		Description: `List network lists (IP or GEO).

USE WHEN: User asks "what blocklists do I have", "find the allow-list".

PARAMETERS:
- type: Optional filter, IP or GEO
- search: Optional name filter

RETURNS: List IDs, names, types, and element counts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_get_network_list",
		Method:   "GetNetworkList",
		Title:    "Get Network List",
		Category: "read",
		Service:  "netlist",
		Description: `Get one network list including its elements.

USE WHEN: User asks "what IPs are in the blocklist", "is 192.0.2.1 blocked".

PARAMETERS:
- uniqueId: Network list ID, e.g. 12345_BLOCKEDIPS (required)

RETURNS: The list with all elements and its sync point.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "akamai_create_network_list",
		Method:   "CreateNetworkList",
		Title:    "Create Network List",
		Category: "write",
		Service:  "netlist",
		Description: `Create a new network list.

USE WHEN: User says "create a blocklist", "make a GEO list for embargoed countries".

PARAMETERS:
- name: List name (required)
- type: IP or GEO (required)
- elements: Initial IPs/CIDR blocks or country codes

RETURNS: The created list with its unique ID.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_add_network_list_elements",
		Method:   "AddElements",
		Title:    "Add Network List Elements",
		Category: "write",
		Service:  "netlist",
		Description: `Append elements to a network list. Elements are validated against the list type first.

USE WHEN: User says "block 198.51.100.0/24", "add DE to the geo list".

NOT FOR: Removing elements (use akamai_remove_network_list_element). Changes only take effect after activation.

PARAMETERS:
- uniqueId: Network list ID (required)
- elements: Elements to append (required)

RETURNS: The new element count and sync point.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_remove_network_list_element",
		Method:   "RemoveElement",
		Title:    "Remove Network List Element",
		Category: "write",
		Service:  "netlist",
		Description: `Remove one element from a network list.

USE WHEN: User says "unblock 192.0.2.1", "remove DE from the geo list".

PARAMETERS:
- uniqueId: Network list ID (required)
- element: Element to remove (required)

RETURNS: Confirmation. Changes only take effect after activation.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "akamai_activate_network_list",
		Method:   "ActivateNetworkList",
		Title:    "Activate Network List",
		Category: "activation",
		Service:  "netlist",
		Description: `Push a network list's current state to an environment.

USE WHEN: After editing a list ("activate the blocklist on production").

PARAMETERS:
- uniqueId: Network list ID (required)
- environment: STAGING or PRODUCTION (required)
- comments: Activation comment
- wait: Block until the activation reaches a terminal state (default false)

RETURNS: The activation ID and status.`,
		OpenWorld: true,
	},
	{
		Name:     "akamai_get_network_list_status",
		Method:   "GetNetworkListStatus",
		Title:    "Get Network List Status",
		Category: "activation",
		Service:  "netlist",
		Description: `Report a network list's activation state on both environments.

USE WHEN: User asks "is the blocklist live", "did the activation finish".

PARAMETERS:
- uniqueId: Network list ID (required)

RETURNS: Per-environment status and sync point.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
