package schema

// CoreShowTable represents the 'core.show' table
type CoreShowTable struct {
	Table     string
	ID        string
	ArtistID  string
	VenueID   string
	StartTime string
	CreatedAt string
}

// CoreShow is the schema definition for core.show
var CoreShow = CoreShowTable{
	Table:     "core.show",
	ID:        "id",
	ArtistID:  "artistid",
	VenueID:   "venueid",
	StartTime: "starttime",
	CreatedAt: "createdat",
}

func (t CoreShowTable) Columns() []string {
	return []string{t.ID, t.ArtistID, t.VenueID, t.StartTime, t.CreatedAt}
}
