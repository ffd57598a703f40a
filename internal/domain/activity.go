package domain

// Activity is a named extracurricular offering. Participants holds enrolled
// student emails in signup order. MaxParticipants is catalog metadata and is
// not enforced as a hard cap.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant reports whether email is enrolled in the activity.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
