package models

// Exercise represents a single logged activity, tied to a user by copied id.
// The date is stored as text in the canonical calendar form ("Mon Jan 02 2006")
// or, for unparseable input, the literal "Invalid Date".
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        string
}

// ExerciseResult is the response shape for a newly logged exercise. The _id
// field carries the user's id, not the exercise record's own id.
type ExerciseResult struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogEntry is one exercise as rendered inside a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResult is the response shape for a filtered activity log.
type LogResult struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}
