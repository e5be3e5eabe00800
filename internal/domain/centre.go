package domain

// Centre is a registration centre where appointments take place
type Centre struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Timing    string // e.g. "09:00 AM - 05:00 PM"
	LunchTime string
	OpenDays  string
	Latitude  float64
	Longitude float64
}

// Contact returns the display contact line for the confirmation screen
func (c *Centre) Contact() string {
	if c.Phone != "" && c.Email != "" {
		return c.Phone + " / " + c.Email
	}
	if c.Phone != "" {
		return c.Phone
	}
	return c.Email
}
