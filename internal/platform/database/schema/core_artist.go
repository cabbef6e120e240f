package schema

// CoreArtistTable represents the 'core.artist' table
type CoreArtistTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Phone              string
	Genres             string
	ImageLink          string
	Website            string
	FacebookLink       string
	SeekingVenue       string
	SeekingDescription string
	CreatedAt          string
	UpdatedAt          string
}

// CoreArtist is the schema definition for core.artist
var CoreArtist = CoreArtistTable{
	Table:              "core.artist",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Phone:              "phone",
	Genres:             "genres",
	ImageLink:          "imagelink",
	Website:            "website",
	FacebookLink:       "facebooklink",
	SeekingVenue:       "seekingvenue",
	SeekingDescription: "seekingdescription",
	CreatedAt:          "createdat",
	UpdatedAt:          "updatedat",
}

func (t CoreArtistTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.City, t.State, t.Phone, t.Genres, t.ImageLink,
		t.Website, t.FacebookLink, t.SeekingVenue, t.SeekingDescription, t.CreatedAt, t.UpdatedAt,
	}
}
