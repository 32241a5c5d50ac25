package progress

// Status describes how well a single verse is known.
// The zero value of a map lookup is StatusNew: a verse with no recorded
// status has simply never been studied.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusMastered Status = "mastered"
)

// Valid reports whether s is one of the three known statuses.
// The empty string is treated as StatusNew and is valid.
func (s Status) Valid() bool {
	switch s {
	case "", StatusNew, StatusLearning, StatusMastered:
		return true
	}
	return false
}

// OrNew normalizes a map-absence empty status to StatusNew.
func (s Status) OrNew() Status {
	if s == "" {
		return StatusNew
	}
	return s
}
