package domain

// Applicant is a person an appointment can be booked for
type Applicant struct {
	ID       string
	Name     string
	Expanded bool
}
