package get_options

// OptionPayload one code/label lookup entry
type OptionPayload struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// DocumentSlotPayload one upload slot with its selectable document types
type DocumentSlotPayload struct {
	Key      string          `json:"key"`
	Title    string          `json:"title"`
	Required bool            `json:"required"`
	DocTypes []OptionPayload `json:"docTypes"`
}

// LanguagePayload one data-capture language
type LanguagePayload struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	Dir       string `json:"dir"`
	Mandatory bool   `json:"mandatory"`
}

// ThemePayload one display theme with its CSS variable map
type ThemePayload struct {
	Name  string            `json:"name"`
	Label string            `json:"label"`
	Vars  map[string]string `json:"vars"`
}

// OptionsResponse all static lookup data of the portal forms
type OptionsResponse struct {
	Genders           []OptionPayload            `json:"genders"`
	ResidenceStatuses []OptionPayload            `json:"residenceStatuses"`
	Regions           []OptionPayload            `json:"regions"`
	Parishes          []OptionPayload            `json:"parishes"`
	CitiesByParish    map[string][]OptionPayload `json:"citiesByParish"`
	Zones             []OptionPayload            `json:"zones"`
	PostalCodes       []OptionPayload            `json:"postalCodes"`
	DocumentSlots     []DocumentSlotPayload      `json:"documentSlots"`
	Languages         []LanguagePayload          `json:"languages"`
	Themes            []ThemePayload             `json:"themes"`
}
