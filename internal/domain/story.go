package domain

import "time"

// Story is a personal memory, optionally linked to a veteran.
// Only approved stories are visible to the public.
type Story struct {
	ID                  string
	VeteranID           string
	VeteranName         string
	Title               string
	Description         string
	Kind                StoryKind
	MediaURL            string
	Location            string
	Date                string
	Approved            bool
	AuthorizedToPublish bool
	SubmittedBy         string
	CreatedAt           time.Time
}

// HasVeteran reports whether the story is linked to a catalog veteran.
func (s *Story) HasVeteran() bool {
	return s.VeteranID != ""
}

// Contribution is a free-form submission from the public.
type Contribution struct {
	ID          string
	Name        string
	Email       string
	Narrative   string
	MediaURL    string
	Approved    bool
	SubmittedAt time.Time
}
