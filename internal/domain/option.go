package domain

// Option is a single code/label entry of a static lookup list
type Option struct {
	Code  string
	Label string
}

// Language entry of the data-capture language list
type Language struct {
	Code      string
	Label     string
	Dir       string // "ltr" or "rtl"
	Mandatory bool
}

// Theme is a named display theme with its CSS variable map.
// The core never branches on theme; it is carried as session context.
type Theme struct {
	Name  string
	Label string
	Vars  map[string]string
}
