package query

// hourlyFlag is appended to every query. The source always asks for hourly
// postings regardless of the user's preference.
const hourlyFlag = "True"

// Query is the user's free-text preference.
type Query struct {
	skills   string
	location string
}

// New creates a Query.
func New(skills, location string) Query {
	return Query{skills: skills, location: location}
}

// Skills returns the free-text skills.
func (q Query) Skills() string { return q.skills }

// Location returns the preferred location.
func (q Query) Location() string { return q.location }

// Text returns the query text in the same layout as a posting's combined text.
func (q Query) Text() string {
	return q.skills + " " + q.location + " " + hourlyFlag
}
