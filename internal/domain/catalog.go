package domain

// Veteran is a person honored by the museum.
type Veteran struct {
	ID       string
	Name     string
	Rank     string
	Origin   Origin
	Bio      string
	PhotoURL string
	JoinedAt string
}

// Vehicle is a historic or active police vehicle.
type Vehicle struct {
	ID          string
	Model       string
	Year        int
	Type        string
	Description string
	PhotoURL    string
	Status      string
}

// Weapon is a firearm in the collection.
type Weapon struct {
	ID           string
	Name         string
	Caliber      string
	Type         string
	Manufacturer string
	Description  string
	PhotoURL     string
	Status       string
}

// TimelineEntry marks a year in the institution's history.
type TimelineEntry struct {
	ID          string
	Year        int
	Title       string
	Description string
	StoryID     string
}

// VeteranQuery filters and orders veteran listings. Zero values mean "no filter".
type VeteranQuery struct {
	Origin    Origin
	MediaKind StoryKind
	Search    string
	Sort      VeteranSort
}

// VehicleQuery filters vehicle listings.
type VehicleQuery struct {
	Type   string
	Search string
}

// WeaponQuery filters weapon listings.
type WeaponQuery struct {
	Type   string
	Search string
}
