package schema

// CoreVenueTable represents the 'core.venue' table
type CoreVenueTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             string
	ImageLink          string
	Website            string
	FacebookLink       string
	SeekingTalent      string
	SeekingDescription string
	CreatedAt          string
	UpdatedAt          string
}

// CoreVenue is the schema definition for core.venue
var CoreVenue = CoreVenueTable{
	Table:              "core.venue",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Address:            "address",
	Phone:              "phone",
	Genres:             "genres",
	ImageLink:          "imagelink",
	Website:            "website",
	FacebookLink:       "facebooklink",
	SeekingTalent:      "seekingtalent",
	SeekingDescription: "seekingdescription",
	CreatedAt:          "createdat",
	UpdatedAt:          "updatedat",
}

func (t CoreVenueTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.City, t.State, t.Address, t.Phone, t.Genres, t.ImageLink,
		t.Website, t.FacebookLink, t.SeekingTalent, t.SeekingDescription, t.CreatedAt, t.UpdatedAt,
	}
}
