package archetype

// Stripe accents shared by every built-in template, in node order.
const (
	cyan   = "#5cc8ff"
	green  = "#57f287"
	gold   = "#ffd166"
	purple = "#c084fc"
)

var templates = map[Kind]Template{
	Lead: {
		Title:  "Lead generation pipeline",
		Footer: "Deterministic first-pass pipeline — no implied deliverability, legality, or compliance.",
		Nodes: []NodeSpec{
			{"Sources", []string{"Lists", "Inbound", "Explicit imports"}, cyan},
			{"Enrichment", []string{"Normalize", "Validate", "Deduplicate"}, green},
			{"Outreach", []string{"Sequencing", "Personalization", "Follow-ups"}, gold},
			{"CRM / Reporting", []string{"Stages", "Notes", "Dashboard"}, purple},
			{"State / Storage", []string{"Local state", "Templates", "Versioning"}, cyan},
		},
		BottomFrom: 1,
		Edges:      [][2]int{{2, 4}},
	},
	DAO: {
		Title:  "DAO governance system",
		Footer: "Governance sketch — execution security depends on explicit modules, thresholds, and audits.",
		Nodes: []NodeSpec{
			{"Proposals", []string{"Draft", "Discussion", "Submission"}, cyan},
			{"Policy / Rules", []string{"Roles", "Thresholds", "Guards"}, green},
			{"Voting", []string{"Quorum", "Signals", "Timelock"}, gold},
			{"Execution", []string{"Safe tx", "Modules", "Logs"}, purple},
			{"Treasury / Records", []string{"Attestations", "Snapshots", "Audit trail"}, cyan},
		},
		BottomFrom: 3,
		Edges:      [][2]int{{1, 4}},
	},
	Custody: {
		Title:  "Non-custodial custody workflow",
		Footer: "Workflow sketch — security requires explicit hardware + policy decisions (not implied).",
		Nodes: []NodeSpec{
			{"User / Intent", []string{"Request", "Amount", "Destination"}, cyan},
			{"Signing", []string{"Hardware wallet", "Multisig", "Approvals"}, green},
			{"Policy / Verification", []string{"Rules", "Address checks", "Delays"}, gold},
			{"Broadcast / Monitor", []string{"Send", "Confirmations", "Alerts"}, purple},
			{"State / Logs", []string{"Configs", "Records", "Versioning"}, cyan},
		},
		BottomFrom: 2,
		Edges:      [][2]int{{3, 4}},
	},
	Workflow: {
		Title:  "Workflow automation",
		Footer: "Workflow sketch — connectors and integrations are explicit-only additions.",
		Nodes: []NodeSpec{
			{"Intake", []string{"Forms", "Email", "Files"}, cyan},
			{"Rules", []string{"Validation", "Routing", "States"}, green},
			{"Actions", []string{"Tasks", "Notifications", "Updates"}, gold},
			{"Outputs", []string{"Reports", "Artifacts", "Exports"}, purple},
			{"Audit Trail", []string{"Logs", "Snapshots", "Versioning"}, cyan},
		},
		BottomFrom: 1,
		Edges:      [][2]int{{2, 4}},
	},
	DataIntake: {
		Title:  "Data intake + processing system",
		Footer: "Processing sketch — data sources and schemas are unknown unless explicitly provided.",
		Nodes: []NodeSpec{
			{"Sources", []string{"Uploads", "APIs (explicit)", "Streams (explicit)"}, cyan},
			{"Parsing", []string{"Schema map", "Cleaning", "Validation"}, green},
			{"Processing", []string{"Transforms", "Rules", "Enrichment"}, gold},
			{"Outputs", []string{"Exports", "Dashboards", "Artifacts"}, purple},
			{"Storage", []string{"Versioned data", "Configs", "Snapshots"}, cyan},
		},
		BottomFrom: 2,
		Edges:      [][2]int{{2, 4}},
	},
	Generic: {
		Title:  "System",
		Footer: "Deterministic visualization — suitable for architecture docs. No branding. No marketing claims.",
		Nodes: []NodeSpec{
			{"Input Layer", []string{"User request", "Events", "Imports"}, cyan},
			{"Logic Layer", []string{"Rules", "Parsing", "Validation"}, green},
			{"Orchestration", []string{"Triggers", "Actions", "Routing"}, gold},
			{"Outputs", []string{"Artifacts", "Files", "Delivery"}, purple},
			{"State / Storage", []string{"Local state", "Config", "Versioning"}, cyan},
		},
		BottomFrom: 1,
		Edges:      [][2]int{{2, 4}},
	},
}
