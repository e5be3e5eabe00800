package refdata

import "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"

// Hardcoded St. Vincent deployment data. The portal is a mockup: these
// tables are the entire reference dataset and never change at runtime.

var genders = []domain.Option{
	{Code: "M", Label: "Male"},
	{Code: "F", Label: "Female"},
	{Code: "O", Label: "Other"},
}

var residenceStatuses = []domain.Option{
	{Code: "CIT", Label: "Citizen"},
	{Code: "PR", Label: "Permanent Resident"},
	{Code: "TR", Label: "Temporary Resident"},
	{Code: "VIS", Label: "Visitor"},
}

var regions = []domain.Option{
	{Code: "MAIN", Label: "St. Vincent (Mainland)"},
	{Code: "GREN", Label: "Grenadines"},
}

var parishes = []domain.Option{
	{Code: "CHA", Label: "Charlotte"},
	{Code: "GRE", Label: "Grenadines"},
	{Code: "AND", Label: "Saint Andrew"},
	{Code: "DAV", Label: "Saint David"},
	{Code: "GEO", Label: "Saint George"},
	{Code: "PAT", Label: "Saint Patrick"},
}

var citiesByParish = map[string][]domain.Option{
	"CHA": {
		{Code: "GEO", Label: "Georgetown"},
		{Code: "BYR", Label: "Byera"},
		{Code: "OWI", Label: "Owia"},
	},
	"GRE": {
		{Code: "BQT", Label: "Bequia"},
		{Code: "UNI", Label: "Union Island"},
		{Code: "CAN", Label: "Canouan"},
	},
	"AND": {
		{Code: "LAY", Label: "Layou"},
		{Code: "TRO", Label: "Troumaca"},
	},
	"DAV": {
		{Code: "CHB", Label: "Chateaubelair"},
		{Code: "RIC", Label: "Richland Park"},
	},
	"GEO": {
		{Code: "KIN", Label: "Kingstown"},
		{Code: "CAL", Label: "Calliaqua"},
	},
	"PAT": {
		{Code: "BAR", Label: "Barrouallie"},
		{Code: "SPR", Label: "Spring Village"},
	},
}

var zones = []domain.Option{
	{Code: "N", Label: "North"},
	{Code: "C", Label: "Central"},
	{Code: "S", Label: "South"},
	{Code: "G", Label: "Grenadines"},
}

var postalCodes = []domain.Option{
	{Code: "VC0100", Label: "VC0100 (Kingstown)"},
	{Code: "VC0200", Label: "VC0200 (Calliaqua)"},
	{Code: "VC0300", Label: "VC0300 (Georgetown)"},
	{Code: "VC0400", Label: "VC0400 (Barrouallie)"},
	{Code: "VC0500", Label: "VC0500 (Bequia)"},
}

var docTypesByKey = map[string][]domain.Option{
	"id": {
		{Code: "NID", Label: "National ID"},
		{Code: "PAS", Label: "Passport"},
		{Code: "DL", Label: "Driver's Licence"},
	},
	"addr": {
		{Code: "UTIL", Label: "Utility Bill"},
		{Code: "BANK", Label: "Bank Statement"},
		{Code: "LEASE", Label: "Lease Agreement"},
	},
	"rel": {
		{Code: "MARR", Label: "Marriage Certificate"},
		{Code: "BIRT", Label: "Birth Certificate (Parent/Child)"},
		{Code: "AFF", Label: "Affidavit"},
	},
	"dob": {
		{Code: "BIRT", Label: "Birth Certificate"},
		{Code: "PAS", Label: "Passport"},
	},
}

var documentSlots = []domain.Document{
	{Key: "id", Title: "Identity Proof", Required: true},
	{Key: "addr", Title: "Address Proof", Required: false},
	{Key: "rel", Title: "Relationship Proof", Required: true},
	{Key: "dob", Title: "DOB Proof", Required: true},
}

var centres = []domain.Centre{
	{
		ID:        "KIN01",
		Name:      "Kingstown Registration Centre",
		Address:   "Bay Street, Kingstown, St. Vincent",
		Phone:     "+1 784-457-1111",
		Email:     "kingstown@prereg.gov.vc",
		Timing:    "09:00 AM - 05:00 PM",
		LunchTime: "01:00 PM - 02:00 PM",
		OpenDays:  "Monday - Friday",
		Latitude:  13.1587,
		Longitude: -61.2248,
	},
	{
		ID:        "GEO01",
		Name:      "Georgetown Registration Centre",
		Address:   "Main Road, Georgetown, St. Vincent",
		Phone:     "+1 784-458-6222",
		Email:     "georgetown@prereg.gov.vc",
		Timing:    "09:00 AM - 05:00 PM",
		LunchTime: "01:00 PM - 02:00 PM",
		OpenDays:  "Monday - Friday",
		Latitude:  13.2810,
		Longitude: -61.1177,
	},
	{
		ID:        "BQT01",
		Name:      "Bequia Registration Centre",
		Address:   "Port Elizabeth, Bequia, Grenadines",
		Phone:     "+1 784-458-3333",
		Email:     "bequia@prereg.gov.vc",
		Timing:    "09:00 AM - 04:00 PM",
		LunchTime: "12:30 PM - 01:30 PM",
		OpenDays:  "Monday - Thursday",
		Latitude:  13.0117,
		Longitude: -61.2354,
	},
}

var applicants = []domain.Applicant{
	{ID: "a1", Name: "Gyuguu"},
	{ID: "a2", Name: "Ravi S."},
	{ID: "a3", Name: "Aisha K."},
}

var languages = []domain.Language{
	{Code: "eng", Label: "English", Dir: "ltr", Mandatory: true},
	{Code: "ara", Label: "العربية", Dir: "rtl"},
	{Code: "fra", Label: "français", Dir: "ltr"},
	{Code: "hin", Label: "हिंदी", Dir: "ltr"},
	{Code: "tam", Label: "தமிழ்", Dir: "ltr"},
	{Code: "kan", Label: "ಕನ್ನಡ", Dir: "ltr"},
}

var themes = []domain.Theme{
	{
		Name:  "default",
		Label: "Default",
		Vars: map[string]string{
			"--bg":     "#ffffff",
			"--text":   "#111111",
			"--muted":  "#9aa0a6",
			"--accent": "#fe528d",
		},
	},
	{
		Name:  "svg_gov",
		Label: "Version 1",
		Vars: map[string]string{
			"--bg":         "#f3f7ff",
			"--text":       "#0b1220",
			"--muted":      "#526174",
			"--accent":     "#002674",
			"--gov-blue":   "#002674",
			"--gov-yellow": "#FCD022",
			"--gov-green":  "#007C2E",
		},
	},
	{
		Name:  "modern",
		Label: "Version 2",
		Vars: map[string]string{
			"--bg":     "#0b1220",
			"--text":   "#111827",
			"--muted":  "#6b7280",
			"--accent": "#c0392b",
		},
	},
}

var seedApplications = []domain.ApplicationItem{
	{ID: "61390154910692", Name: "Gyuguu", AppointmentDate: "2026-01-10", Status: domain.StatusIncomplete, Languages: "English", Selected: true},
	{ID: "61390154910688", Name: "Ravi S.", AppointmentDate: "2026-01-06", Status: domain.StatusIncomplete, Languages: "English, Français"},
	{ID: "61390154910689", Name: "Aisha K.", AppointmentDate: "2026-01-09", Status: domain.StatusCompleted, Languages: "English, العربية"},
	{ID: "61390154910690", Name: "Jean P.", AppointmentDate: "--", Status: domain.StatusDraft, Languages: "English"},
	{ID: "61390154910691", Name: "Kumar T.", AppointmentDate: "2026-01-12", Status: domain.StatusIncomplete, Languages: "English, हिंदी"},
	{ID: "61390154910687", Name: "Sara M.", AppointmentDate: "--", Status: domain.StatusDraft, Languages: "English, தமிழ்"},
}
