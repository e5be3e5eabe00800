package confirm_booking

// Request identifies the wizard run to confirm
type Request struct {
	Token string
}

// Response is the confirmation projection: literal display values only,
// assembled once and safe to re-fetch (confirming twice is idempotent).
type Response struct {
	ApplicationID string
	ApplicantName string
	DateText      string // "10 January 2026"
	SlotText      string // "09:00 - 09:15"
	SessionText   string // "morning"
	CentreName    string
	CentreAddress string
	CentreContact string
	DateTime      string // "2026-01-10 09:00"
	QRPayload     string // "APP:<id>|DT:<datetime>|CENTER:<centreName>"
}
