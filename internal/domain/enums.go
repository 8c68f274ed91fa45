package domain

import "strings"

// Role is the capability level of an Identity. Roles never change after creation.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleCurator      Role = "curator"
	RoleCollaborator Role = "collaborator"
	RoleVisitor      Role = "visitor"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCurator, RoleCollaborator, RoleVisitor:
		return true
	}
	return false
}

// CanSubmit reports whether the role may submit stories.
func (r Role) CanSubmit() bool {
	return r.IsValid() && r != RoleVisitor
}

// CanModerate reports whether the role may access moderation and analysis surfaces.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleCurator
}

// CanDelete reports whether the role may permanently remove records.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// StoryKind tags the media type of a story.
type StoryKind string

const (
	StoryKindText  StoryKind = "text"
	StoryKindAudio StoryKind = "audio"
	StoryKindVideo StoryKind = "video"
	StoryKindImage StoryKind = "image"
)

func (k StoryKind) String() string { return string(k) }

func (k StoryKind) IsValid() bool {
	switch k {
	case StoryKindText, StoryKindAudio, StoryKindVideo, StoryKindImage:
		return true
	}
	return false
}

// Origin is the corps a veteran served in.
type Origin string

const (
	OriginTerritorialGuard Origin = "Guarda Territorial"
	OriginMilitaryPolice   Origin = "Polícia Militar"
)

func (o Origin) String() string { return string(o) }

func (o Origin) IsValid() bool {
	switch o {
	case OriginTerritorialGuard, OriginMilitaryPolice:
		return true
	}
	return false
}

// VeteranSort is the ordering applied to veteran listings.
type VeteranSort string

const (
	VeteranSortNameAsc  VeteranSort = "name_asc"
	VeteranSortNameDesc VeteranSort = "name_desc"
	VeteranSortDateAsc  VeteranSort = "date_asc"
	VeteranSortDateDesc VeteranSort = "date_desc"
)

func (s VeteranSort) IsValid() bool {
	switch s {
	case VeteranSortNameAsc, VeteranSortNameDesc, VeteranSortDateAsc, VeteranSortDateDesc:
		return true
	}
	return false
}

var textDocumentMIMEs = map[string]bool{
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// AcceptsMIME reports whether a file of the given MIME type may be attached
// to a story of this kind. Text stories accept documents or supporting photos.
func (k StoryKind) AcceptsMIME(mime string) bool {
	switch k {
	case StoryKindImage:
		return strings.HasPrefix(mime, "image/")
	case StoryKindAudio:
		return strings.HasPrefix(mime, "audio/")
	case StoryKindVideo:
		return strings.HasPrefix(mime, "video/")
	case StoryKindText:
		return textDocumentMIMEs[mime] || strings.HasPrefix(mime, "image/")
	}
	return false
}
