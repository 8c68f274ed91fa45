package moderation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 20000
	maxNameLength        = 200
	maxURLLength         = 2048
	dateLayout           = "2006-01-02"
)

// SubmitStoryInput holds the fields of a story submission.
type SubmitStoryInput struct {
	Title       string
	Kind        domain.StoryKind
	Description string
	// VeteranID links a catalog veteran. When empty, VeteranName may carry a free-text name.
	VeteranID   string
	VeteranName string
	MediaURL    string
	Location    string
	// Date is YYYY-MM-DD; defaults to the submission day.
	Date                string
	AuthorizedToPublish bool
}

func (i *SubmitStoryInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.VeteranID = strings.TrimSpace(i.VeteranID)
	i.VeteranName = strings.TrimSpace(i.VeteranName)
	i.MediaURL = strings.TrimSpace(i.MediaURL)
	i.Location = strings.TrimSpace(i.Location)
	i.Date = strings.TrimSpace(i.Date)
}

// Check normalizes a copy of the input and validates it, letting callers
// reject a submission before storing its media.
func (i SubmitStoryInput) Check() error {
	i.normalize()
	return i.Validate()
}

// Validate validates the submission. Veteran existence is checked by the service.
func (i SubmitStoryInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Kind == "" {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "required"})
	} else if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown story kind"})
	}

	if !i.AuthorizedToPublish {
		errs = append(errs, domain.FieldError{Field: "authorized_to_publish", Message: "publication consent is required"})
	}

	if utf8.RuneCountInString(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if utf8.RuneCountInString(i.VeteranName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "veteran_name", Message: "too long"})
	}
	if len(i.MediaURL) > maxURLLength {
		errs = append(errs, domain.FieldError{Field: "media_url", Message: "too long"})
	}
	if i.Date != "" {
		if _, err := time.Parse(dateLayout, i.Date); err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitContributionInput holds the fields of a contribution.
type SubmitContributionInput struct {
	Name      string
	Email     string
	Narrative string
	MediaURL  string
}

func (i *SubmitContributionInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
	i.Narrative = strings.TrimSpace(i.Narrative)
	i.MediaURL = strings.TrimSpace(i.MediaURL)
}

// Validate validates the contribution. A narrative or a media reference is required.
func (i SubmitContributionInput) Validate() error {
	var errs []domain.FieldError

	if i.Narrative == "" && i.MediaURL == "" {
		errs = append(errs, domain.FieldError{Field: "narrative", Message: "narrative or media is required"})
	}
	if utf8.RuneCountInString(i.Narrative) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "narrative", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Email != "" && domain.EmailLocalPart(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if len(i.MediaURL) > maxURLLength {
		errs = append(errs, domain.FieldError{Field: "media_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
