package catalog

import "github.com/caseglance/caseglance/internal/model"

// defaultCatalog is the built-in field catalog for the immigration case
// store this engine was written against. Field names drift upstream
// without notice; when they do, this is the file to update.
func defaultCatalog() *Catalog {
	return &Catalog{
		Entries:        defaultEntries,
		GroupPatterns:  defaultGroupPatterns,
		TypePatterns:   defaultTypePatterns,
		Classification: defaultClassification,
		Display:        defaultDisplay,
		Tiers:          defaultTiers,
		MatterTypes:    defaultMatterTypes,
		GroupOrder:     defaultGroupOrder,
		DetectFields:   []string{"Description", "Matter", "Case Name", "Case Type", "Relief Sought", "Name"},
	}
}

var defaultEntries = []Entry{
	// Identity
	{Field: "Client Name", Role: "client_name", Group: "Identity", Template: "{value}", Priority: 1},
	{Field: "Full Client Name", Role: "client_name_full", Group: "Identity", Template: "{value}", Priority: 1},
	{Field: "Family Name", Role: "family_name", Group: "Identity", Template: "{value}", Priority: 1},
	{Field: "A#", Role: "a_number", Group: "Identity", Template: "A# {value}", Priority: 2},
	{Field: "DOB", Role: "date_of_birth", Group: "Identity", Template: "born {value:date}", DataType: model.TypeDate, Priority: 3},
	{Field: "Country", Role: "country_of_origin", Group: "Identity", Template: "from {value}", Priority: 4},
	{Field: "Country of Origin", Role: "country_of_origin_alt", Group: "Identity", Template: "from {value}", Priority: 4},
	{Field: "Age", Role: "age", Group: "Identity", Template: "age {value}", Priority: 5},
	{Field: "Entry Date", Role: "entry_date", Group: "Identity", Template: "entered {value:date}", DataType: model.TypeDate, Priority: 6},
	{Field: "Entry Status", Role: "entry_status", Group: "Identity", Template: "entry: {value}", Priority: 7},
	{Field: "Place of Entry", Role: "place_of_entry", Group: "Identity", Template: "at {value}", Priority: 8},

	// Court proceedings
	{Field: "Hearing Date/Time", Role: "upcoming_hearing", Group: "Court", Template: "hearing on {value:datetime}", DataType: model.TypeDateTime, Priority: 1, Position: model.PositionTemporal},
	{Field: "Court/Office", Role: "court_location", Group: "Court", Template: "in {value}", Priority: 2, Position: model.PositionSpatial},
	{Field: "Judge", Role: "assigned_judge", Group: "Court", Template: "before {value}", Priority: 3},
	{Field: "Judge text", Role: "judge_name", Group: "Court", Template: "before {value}", Priority: 3},
	{Field: "Hearing Type", Role: "hearing_type", Group: "Court", Template: "{value} hearing", Priority: 4},
	{Field: "Merits Final Decision", Role: "merits_decision", Group: "Court", Template: "merits decision: {value}", Priority: 4},
	{Field: "Merits Final Decision Date", Role: "merits_decision_date", Group: "Court", Template: "decided {value:date}", DataType: model.TypeDate, Priority: 5},
	{Field: "IJ Order detail", Role: "ij_order", Group: "Court", Template: "IJ ordered {value}", Priority: 6},
	{Field: "Pleadings Due Date", Role: "pleadings_due", Group: "Court", Template: "pleadings due {value:date}", DataType: model.TypeDate, Priority: 7},
	{Field: "NTA Date", Role: "nta_date", Group: "Court", Template: "NTA dated {value:date}", DataType: model.TypeDate, Priority: 8},
	{Field: "City Court In", Role: "court_city", Group: "Court", Template: "in {value}", Priority: 10},
	{Field: "Days to Next Hearing", Role: "days_to_hearing", Group: "Court", Template: "{value} days until hearing", Priority: 11},
	{Field: "Final IM Case Status", Role: "final_case_status", Group: "Court", Template: "{value}", Priority: 12, Position: model.PositionStatus},

	// SIJ
	{Field: "SIJ Case Status", Role: "sij_status", Group: "SIJ", Template: "SIJ {value:lowercase}", Priority: 1, Position: model.PositionStatus},
	{Field: "SIJ Case Status (Revised)", Role: "sij_status_revised", Group: "SIJ", Template: "SIJ status: {value}", Priority: 2},
	{Field: "SIJ County", Role: "sij_county", Group: "SIJ", Template: "in {value} County", Priority: 3},
	{Field: "SIJ Eligible (child)", Role: "sij_eligible", Group: "SIJ", Template: "SIJ eligible: {value}", Priority: 4},
	{Field: "Date Custody Filed", Role: "custody_filed", Group: "SIJ", Template: "custody filed {value:date}", DataType: model.TypeDate, Priority: 5},
	{Field: "SIJS Decision", Role: "sij_decision", Group: "SIJ", Template: "SIJS {value:lowercase}", Priority: 6},
	{Field: "SIJ Engaged Date", Role: "sij_engaged", Group: "SIJ", Template: "SIJ engaged {value:date}", DataType: model.TypeDate, Priority: 7},
	{Field: "JDR Ct Date", Role: "jdr_date", Group: "SIJ", Template: "JDR court {value:date}", DataType: model.TypeDate, Priority: 8, Position: model.PositionTemporal},

	// USCIS
	{Field: "USCIS Receipt Date", Role: "uscis_receipt_date", Group: "USCIS", Template: "filed {value:date}", DataType: model.TypeDate, Priority: 1},
	{Field: "USCIS Receipt Number", Role: "uscis_receipt_number", Group: "USCIS", Template: "receipt {value}", Priority: 2},
	{Field: "I-360 Receipt Number", Role: "i360_receipt", Group: "USCIS", Template: "I-360 {value}", Priority: 3},
	{Field: "I-360 Approval Date", Role: "i360_approval", Group: "USCIS", Template: "I-360 approved {value:date}", DataType: model.TypeDate, Priority: 4},
	{Field: "I-360 Mailed Date", Role: "i360_mailed", Group: "USCIS", Template: "I-360 mailed {value:date}", DataType: model.TypeDate, Priority: 5},
	{Field: "Priority Date (I-360)", Role: "priority_date", Group: "USCIS", Template: "priority date {value:date}", DataType: model.TypeDate, Priority: 6},
	{Field: "RFE Due Date", Role: "rfe_due", Group: "USCIS", Template: "RFE due {value:date}", DataType: model.TypeDate, Priority: 7, Position: model.PositionTemporal},
	{Field: "RFE/RFI (topic)", Role: "rfe_topic", Group: "USCIS", Template: "RFE regarding {value}", Priority: 8},
	{Field: "Application Decision Notice Date", Role: "decision_notice_date", Group: "USCIS", Template: "decision {value:date}", DataType: model.TypeDate, Priority: 9},
	{Field: "Biometric Notice Date", Role: "biometrics_date", Group: "USCIS", Template: "biometrics {value:date}", DataType: model.TypeDate, Priority: 10},
	{Field: "Current USCIS application", Role: "current_uscis_app", Group: "USCIS", Template: "pending {value}", Priority: 11},

	// EAD / work authorization
	{Field: "EAD Receipt Date", Role: "ead_receipt_date", Group: "EAD", Template: "EAD filed {value:date}", DataType: model.TypeDate, Priority: 1},
	{Field: "EAD Approval Date", Role: "ead_approval", Group: "EAD", Template: "EAD approved {value:date}", DataType: model.TypeDate, Priority: 2},
	{Field: "EAD Stage", Role: "ead_stage", Group: "EAD", Template: "EAD {value:lowercase}", Priority: 3},
	{Field: "EAD Sent Date", Role: "ead_sent", Group: "EAD", Template: "EAD sent {value:date}", DataType: model.TypeDate, Priority: 4},
	{Field: "EAD Eligible Date", Role: "ead_eligible", Group: "EAD", Template: "EAD eligible {value:date}", DataType: model.TypeDate, Priority: 5},
	{Field: "# of EADs", Role: "ead_count", Group: "EAD", Template: "{value} EADs", Priority: 6},

	// FOIA & records
	{Field: "FOIA Receipt", Role: "foia_receipt", Group: "FOIA", Template: "FOIA received {value:date}", DataType: model.TypeDate, Priority: 1},
	{Field: "FOIA #", Role: "foia_number", Group: "FOIA", Template: "FOIA #{value}", Priority: 2},
	{Field: "FOIA PIN #", Role: "foia_pin", Group: "FOIA", Template: "PIN {value}", Priority: 3},
	{Field: "USCIS FOIA Stage", Role: "uscis_foia_stage", Group: "FOIA", Template: "USCIS FOIA {value:lowercase}", Priority: 5},
	{Field: "ICE FOIA Stage", Role: "ice_foia_stage", Group: "FOIA", Template: "ICE FOIA {value:lowercase}", Priority: 6},
	{Field: "FBI Record Stage", Role: "fbi_stage", Group: "FOIA", Template: "FBI {value:lowercase}", Priority: 7},
	{Field: "FBI Record Date", Role: "fbi_date", Group: "FOIA", Template: "FBI records {value:date}", DataType: model.TypeDate, Priority: 8},
	{Field: "OBIM Record Status", Role: "obim_status", Group: "FOIA", Template: "OBIM {value:lowercase}", Priority: 11},

	// Appeals
	{Field: "Appeal Status", Role: "appeal_status", Group: "Appeals", Template: "appeal {value:lowercase}", Priority: 1, Position: model.PositionStatus},
	{Field: "Appeal Due Date", Role: "appeal_due", Group: "Appeals", Template: "appeal due {value:date}", DataType: model.TypeDate, Priority: 2, Position: model.PositionTemporal},
	{Field: "Appeal Receipt Date", Role: "appeal_receipt", Group: "Appeals", Template: "appeal filed {value:date}", DataType: model.TypeDate, Priority: 3},
	{Field: "Brief Due Date", Role: "brief_due", Group: "Appeals", Template: "brief due {value:date}", DataType: model.TypeDate, Priority: 4, Position: model.PositionTemporal},
	{Field: "Brief Filed Date", Role: "brief_filed", Group: "Appeals", Template: "brief filed {value:date}", DataType: model.TypeDate, Priority: 5},
	{Field: "Appeal Decision", Role: "appeal_decision", Group: "Appeals", Template: "appeal {value:lowercase}", Priority: 6},
	{Field: "Appeal Decision Date", Role: "appeal_decision_date", Group: "Appeals", Template: "decided {value:date}", DataType: model.TypeDate, Priority: 7},
	{Field: "Appeal Forum", Role: "appeal_forum", Group: "Appeals", Template: "at {value}", Priority: 8},

	// U-Visa
	{Field: "U-Visa Status", Role: "uvisa_status", Group: "U-Visa", Template: "U-Visa {value:lowercase}", Priority: 1},
	{Field: "U-Visa Cert Date", Role: "uvisa_cert_date", Group: "U-Visa", Template: "certified {value:date}", DataType: model.TypeDate, Priority: 2},
	{Field: "U-Visa Receipt Date", Role: "uvisa_receipt", Group: "U-Visa", Template: "U-Visa filed {value:date}", DataType: model.TypeDate, Priority: 3},
	{Field: "U-Visa Prima Facie", Role: "uvisa_prima_facie", Group: "U-Visa", Template: "prima facie {value:date}", DataType: model.TypeDate, Priority: 4},
	{Field: "U-Visa Approval Date", Role: "uvisa_approval", Group: "U-Visa", Template: "U-Visa approved {value:date}", DataType: model.TypeDate, Priority: 5},

	// Applications (generic, per-application records)
	{Field: "Application", Role: "app_form", Group: "Applications", Template: "{value}", Priority: 2},
	{Field: "Application Type", Role: "app_type", Group: "Applications", Template: "{value}", Priority: 2},
	{Field: "Receipt Number", Role: "receipt_number", Group: "Applications", Template: "receipt #{value}", Priority: 3},
	{Field: "Receipt Date", Role: "app_receipt_date", Group: "Applications", Template: "received {value:date}", DataType: model.TypeDate, Priority: 4},
	{Field: "Filing Date", Role: "filing_date", Group: "Applications", Template: "filed {value:date}", DataType: model.TypeDate, Priority: 5},
	{Field: "Decision", Role: "app_decision", Group: "Applications", Template: "decision: {value}", Priority: 7},
	{Field: "Decision Notice Date", Role: "app_decision_notice", Group: "Applications", Template: "decision {value:date}", DataType: model.TypeDate, Priority: 8},
	{Field: "RFE Response Due", Role: "rfe_response_due", Group: "Applications", Template: "RFE due {value:date}", DataType: model.TypeDate, Priority: 11, Position: model.PositionTemporal},
	{Field: "Biometrics Date", Role: "app_biometrics", Group: "Applications", Template: "biometrics {value:date}", DataType: model.TypeDate, Priority: 13},
	{Field: "Status", Role: "app_status", Group: "Applications", Template: "{value}", Priority: 14, Position: model.PositionStatus},

	// Asylum
	{Field: "Asylum Case Status", Role: "asylum_status", Group: "Asylum", Template: "asylum {value:lowercase}", Priority: 1, Position: model.PositionStatus},
	{Field: "I-589 Filed/Receipt Date", Role: "i589_filed", Group: "Asylum", Template: "I-589 filed {value:date}", DataType: model.TypeDate, Priority: 2},
	{Field: "Asylum Interview Date", Role: "asylum_interview", Group: "Asylum", Template: "interview {value:date}", DataType: model.TypeDate, Priority: 3, Position: model.PositionTemporal},
	{Field: "I589 Filing Strategy", Role: "i589_strategy", Group: "Asylum", Template: "strategy: {value}", Priority: 4},
	{Field: "I589 Biom Status", Role: "i589_biom_status", Group: "Asylum", Template: "biometrics {value:lowercase}", Priority: 5},
	{Field: "I-589 Venue", Role: "i589_venue", Group: "Asylum", Template: "venue: {value}", Priority: 5},
	{Field: "I589 Sent in Mail Date", Role: "i589_sent", Group: "Asylum", Template: "I-589 mailed {value:date}", DataType: model.TypeDate, Priority: 6},
	{Field: "Aff. I589 Receipt #", Role: "i589_aff_receipt", Group: "Asylum", Template: "I-589 receipt {value}", Priority: 7},

	// Bond / detention
	{Field: "Bond Stage", Role: "bond_stage", Group: "Bond", Template: "bond {value:lowercase}", Priority: 1},
	{Field: "Amount of Bond", Role: "bond_amount", Group: "Bond", Template: "${value:currency} bond", DataType: model.TypeCurrency, Priority: 2},
	{Field: "Date Bond Granted", Role: "bond_granted", Group: "Bond", Template: "bond granted {value:date}", DataType: model.TypeDate, Priority: 3},
	{Field: "Bond Status", Role: "bond_status", Group: "Bond", Template: "bond {value:lowercase}", Priority: 4},
	{Field: "Detained", Role: "detained_status", Group: "Bond", Template: "detained: {value}", Priority: 5},
	{Field: "Detainment Status / Location", Role: "detention_location", Group: "Bond", Template: "at {value}", Priority: 6},

	// Contact
	{Field: "Phone Number", Role: "phone", Group: "Contact", Template: "{value:phone}", DataType: model.TypePhone, Priority: 1},
	{Field: "Phone", Role: "phone_alt", Group: "Contact", Template: "{value:phone}", DataType: model.TypePhone, Priority: 1},
	{Field: "Client Email", Role: "email", Group: "Contact", Template: "{value}", Priority: 2},
	{Field: "Email", Role: "email_alt", Group: "Contact", Template: "{value}", Priority: 2},
	{Field: "Address", Role: "address", Group: "Contact", Template: "{value}", Priority: 3},

	// Case management
	{Field: "Case Manager", Role: "case_manager", Group: "Management", Template: "CM: {value}", Priority: 1},
	{Field: "MCH Attny", Role: "attorney", Group: "Management", Template: "attorney: {value}", Priority: 2},
	{Field: "Relief Sought", Role: "relief_sought", Group: "Management", Template: "seeking {value}", Priority: 3},
	{Field: "Case Tags", Role: "case_tags", Group: "Management", Template: "{value}", Priority: 4},
	{Field: "File Case Status", Role: "file_status", Group: "Management", Template: "file {value:lowercase}", Priority: 5},
	{Field: "Matter", Role: "matter_description", Group: "Management", Template: "{value}", Priority: 7},
	{Field: "Description", Role: "case_description", Group: "Management", Template: "{value}", Priority: 8},

	// Financial
	{Field: "Initial Retainer $", Role: "initial_retainer", Group: "Financial", Template: "retainer: ${value:currency}", DataType: model.TypeCurrency, Priority: 1},
	{Field: "Monthly Pmt $", Role: "monthly_payment", Group: "Financial", Template: "monthly: ${value:currency}", DataType: model.TypeCurrency, Priority: 2},
	{Field: "Total Contract $", Role: "total_contract", Group: "Financial", Template: "total: ${value:currency}", DataType: model.TypeCurrency, Priority: 3},
}

// Order matters: first match wins.
var defaultGroupPatterns = []GroupPattern{
	{Group: "Calendar", Pattern: `(?i)calendar|gcal|appointment|meeting|schedule`},
	{Group: "Court", Pattern: `(?i)hearing|court|judge|eoir|ich|merits|pleading|nta`},
	{Group: "SIJ", Pattern: `(?i)sij|custody|jdr|juvenile`},
	{Group: "USCIS", Pattern: `(?i)uscis|i-\d{3}|receipt|biometric|rfe|rfi`},
	{Group: "EAD", Pattern: `(?i)\bead\b|work.*auth|employment.*auth`},
	{Group: "FOIA", Pattern: `(?i)foia|fbi|obim|ice.*record|cbp.*record`},
	{Group: "Appeals", Pattern: `(?i)appeal|brief|bia|bria`},
	{Group: "U-Visa", Pattern: `(?i)u-visa|u visa|uvisa|certification`},
	{Group: "Asylum", Pattern: `(?i)asylum|i-589|credible.*fear|fear.*interview`},
	{Group: "Bond", Pattern: `(?i)bond|detention|ice.*custody`},
	{Group: "TPS", Pattern: `(?i)tps|temporary.*protected`},
	{Group: "DACA", Pattern: `(?i)daca|deferred.*action`},
	{Group: "Travel", Pattern: `(?i)i-131|travel.*parole|advance.*parole`},
	{Group: "Contact", Pattern: `(?i)phone|email|address|city|state|zip`},
	{Group: "Identity", Pattern: `(?i)name|dob|birth|age|country|a#|a-number`},
	{Group: "Management", Pattern: `(?i)manager|attorney|atty|assigned|status|tag`},
	{Group: "Documents", Pattern: `(?i)document|file|box|link|url|scan`},
	{Group: "Dates", Pattern: `(?i)date|time|deadline|due`},
	{Group: "Financial", Pattern: `(?i)contract|payment|invoice|fee|retainer`},
}

// Value-shape patterns for tier-2/3 type inference.
var defaultTypePatterns = []TypePattern{
	{Type: model.TypeDateTime, Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`},
	{Type: model.TypeDate, Pattern: `^\d{4}-\d{2}-\d{2}$`},
	{Type: model.TypeEmail, Pattern: `@`},
	{Type: model.TypeURL, Pattern: `^https?://`},
	{Type: model.TypeCurrency, Pattern: `^\$[\d,]+\.?\d*$`},
	{Type: model.TypeBoolean, Pattern: `(?i)^(true|false|yes|no|checked|unchecked)$`},
	{Type: model.TypeReceipt, Pattern: `(?i)^[A-Z]{3}\d{10,}$`},
	{Type: model.TypePhone, Pattern: `^[\d\s\-()+]+$`, MinLength: 10},
}

var defaultClassification = ClassificationRules{
	StructuralPatterns: []string{
		// Record IDs and internal references
		`(?i)^recordId$`, `(?i)^id$`, `(?i)_id$`, `(?i)^airtable_`, `(?i)^PPID$`,
		`(?i)Record ID$`, `(?i)^Client ID$`, `^ID$`, `(?i)^Unique ID`,
		// Navigation links, not data
		`(?i)^Link to `, `(?i)^Edit `, `(?i)^View `, `(?i)^Open `, `(?i)^Go to `,
		`(?i)^New.*URL$`, `(?i)^New.*UTM$`, `(?i)Tab Link$`,
		// Sync/automation
		`(?i)sync$`, `(?i)^Push`, `(?i)^Sync`, `(?i)Calculator$`, `(?i)calc$`,
		`(?i)Trigger$`, `(?i)^xano`, `(?i)^Last.*Update$`,
		// Internal pages and storage links
		`(?i)Softr.*Page`, `(?i)Kenect`, `(?i)Box.*Link`, `(?i)Gmail.*Search`,
		`(?i)Practice.*Panther`, `(?i)Details Page$`, `(?i)^box_`,
		// Lookup/rollup duplicates
		`\(from.*\)$`, `(?i)Rollup$`, `(?i)Lookup$`,
		// Search/matching helpers
		`(?i)Search.*Options`, `(?i)Search.*Terms`, `(?i)search`,
		`(?i)Message Match$`, `(?i)Email Matching$`,
		// Formula plumbing
		`(?i)^Calculation`, `(?i)^Formula`, `(?i)Formula$`,
		// Sorting helpers
		`(?i)^sorting`,
		// HTML/embed duplicates
		`(?i)HTML$`, `(?i)embed$`,
		// Aggregates and reporting periods
		`(?i)^COUNT`, `(?i)Quarter$`,
		// SMS/folder plumbing
		`(?i)^sms`, `(?i)Folder$`,
		// Calendar automation
		`(?i)Calendar Event Create$`, `(?i)Compare Address$`, `(?i)Concat Relationship$`,
		// Testing/audit
		`(?i)^TESTER`, `(?i)^Audit`, `(?i)^Data Test`,
		// Auto-generated
		`^Table \d+`, `^Field \d+$`,
		// Pretty/URL variants duplicating real fields
		`(?i)Pretty.*URL$`, `(?i)URL.*Pretty$`, `(?i)_Pretty$`,
	},
	MeaningfulPatterns: []string{
		`(?i)name`, `(?i)status`, `(?i)date`, `(?i)phone`, `(?i)email`,
		`(?i)address`, `(?i)country`, `(?i)amount`, `(?i)notes?$`,
		`(?i)receipt`, `(?i)decision`, `(?i)judge`, `(?i)court`, `(?i)hearing`,
	},
	StructuralTypes:      []string{"autoNumber", "createdBy", "lastModifiedBy", "count"},
	MaybeStructuralTypes: []string{"formula", "rollup", "multipleRecordLinks", "button"},
}

var defaultDisplay = DisplayRules{
	HiddenFields: []string{
		"Record ID", "Case Master View Record ID", "Created At", "Created date",
		"Created Date", "createdTime", "Created", "Last Modified", "Last Modified By",
		"Airtable_Last_Modified", "Created Quarter", "recordId", "airtable_client_info_id",
		"Email Blank Formula", "Address Formula", "Compare Address", "Concat Relationship",
		"Client Details Page", "Open Client Page", "Softr Client Page",
		"New case note URL", "New Client Event UTM", "Relationship Tab Link",
		"Calendar Event Create", "box_shared_link", "box_embed", "Box_Folder_ID",
		"Last Box URL Update", "Name Search Options", "name search 2.0",
		"Phone search options", "Gmail_Search_Terms", "JSON for Email Matching",
		"SMS Message Match", "smsFolder", "Full_Name_Pretty_URL", "Full_Name_Normal_Pretty",
		"sortingLastModAndFamily", "Profile HTML", "Bahr Import HTML",
		"Address Rich Text Formatted", "Sync Date", "xanoSyncTrigger",
		"Family Name (Pretty)", "Client Name (Pretty)", "Today Date",
		"Update Tracker EADs", "engagementNoteLastModified", "Compiled Notes",
		"Soonest Event", "Recent Hearing", "COUNT as one", "Kenect Link",
		"Kenect Thread", "Invoiced Lookup", "AMINO",
	},
	HiddenPatterns: []string{
		`(?i)^.*_ID.*$`, `_id$`, `^Edit Client Info`, `^Client_ID`, `^Client ID$`,
		`^PP ID`, `^PPID$`, `^Hearing Event ID`, `^Event Ids`, `^Case Events$`,
		`^Data Test`, `^Table \d+`, `^ID$`, `^Unique ID`, `^Calculation`,
		`^Field \d+$`, `^Push`, `^Sync`, `Calculator$`, `^Est\.`, `(?i)calc$`,
		`Gen$`, `Track Link$`, `Email Writer$`, `^box_`, `^Box_`,
		`\(from.*\)$`, `Rollup$`, `Lookup$`, `Pretty$`, `Pretty.*URL$`,
		`^TESTER`, `^Audit`,
	},
	MaxFieldsPerGroup: 8,
}

var defaultTiers = PriorityTiers{
	Critical: []string{
		"Client Name", "A#", "Hearing Date/Time", "File Case Status",
		"Court/Office", "DOB", "Judge", "Country",
	},
	Important: []string{
		"Case Type", "Relief Sought", "Asylum Case Status", "SIJ Case Status",
		"EAD Stage", "USCIS Receipt Number", "Case Manager", "Phone Number",
		"Merits Final Decision", "Entry Date", "I-589 Filed/Receipt Date",
		"Appeal Status",
	},
	Urgency: []string{
		"Hearing Date/Time", "Pleadings Due Date", "RFE Due Date",
		"Appeal Due Date", "Brief Due Date", "Asylum Interview Date",
		"JDR Ct Date", "EAD Eligible Date",
	},
}

// Declaration order is the matter detection tie-break order.
var defaultMatterTypes = []MatterType{
	{
		ID: "asylum", Label: "Asylum", ShortLabel: "ASY", ColorToken: "blue",
		DetectPatterns: []string{`(?i)asylum`, `(?i)i-589`, `(?i)defensive`, `(?i)affirmative`},
		StatusField:    "Asylum Case Status",
		RelatedFields: []string{
			"Asylum Case Status", "I-589 Filed/Receipt Date", "Asylum Interview Date",
			"I589 Filing Strategy", "I589 Biom Status", "Asylum Intake Status",
			"Aff. I589 Receipt #", "I-589 Venue", "I589 Sent in Mail Date", "I589 Mail Status",
		},
	},
	{
		ID: "sij", Label: "SIJ", ShortLabel: "SIJ", ColorToken: "green",
		DetectPatterns: []string{`(?i)\bsij\b`, `(?i)juvenile`, `(?i)custody`, `(?i)jdr`},
		StatusField:    "SIJ Case Status",
		RelatedFields: []string{
			"SIJ Case Status", "SIJ Case Status (Revised)", "SIJ County", "SIJ Eligible (child)",
			"Date Custody Filed", "SIJS Decision", "SIJ Engaged Date", "JDR Ct Date",
		},
	},
	{
		ID: "uvisa", Label: "U-Visa", ShortLabel: "U", ColorToken: "purple",
		DetectPatterns: []string{`(?i)u-visa`, `(?i)u visa`, `(?i)uvisa`},
		StatusField:    "U-Visa Status",
		RelatedFields: []string{
			"U-Visa Status", "U-Visa Cert Date", "U-Visa Receipt Date",
			"U-Visa Prima Facie", "U-Visa Approval Date", "U-Visa Certification Status",
		},
	},
	{
		ID: "bond", Label: "Bond", ShortLabel: "BND", ColorToken: "amber",
		DetectPatterns: []string{`(?i)bond`, `(?i)detention`},
		StatusField:    "Bond Stage",
		RelatedFields:  []string{"Bond Stage", "Amount of Bond", "Date Bond Granted", "Bond Status"},
	},
	{
		ID: "family", Label: "Family Petition", ShortLabel: "FAM", ColorToken: "rose",
		DetectPatterns: []string{`(?i)family`, `(?i)i-130`, `(?i)petition`, `(?i)fam\.`},
	},
	{
		ID: "removal", Label: "Removal Defense", ShortLabel: "REM", ColorToken: "red",
		DetectPatterns: []string{`(?i)removal`, `(?i)deportation`, `(?i)eoir`},
		StatusField:    "Final IM Case Status",
	},
}

var defaultGroupOrder = []string{
	"Identity", "Court", "SIJ", "USCIS", "Applications", "EAD", "Asylum",
	"U-Visa", "Appeals", "Bond", "FOIA", "TPS", "DACA", "Travel", "Calendar",
	"Contact", "Management", "Financial", "Documents", "Dates", GroupUncategorized,
}
