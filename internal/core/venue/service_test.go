// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// memoryRepository mirrors the SQL semantics of the postgres repository in memory.
type memoryRepository struct {
	venues map[int]*venue.Venue
	shows  []show.Show
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{venues: map[int]*venue.Venue{}}
}

func (repo *memoryRepository) sorted() []*venue.Venue {
	list := make([]*venue.Venue, 0, len(repo.venues))
	for _, v := range repo.venues {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (repo *memoryRepository) ListLocated(_ context.Context, now time.Time) ([]venue.Located, error) {
	located := []venue.Located{}
	for _, v := range repo.sorted() {
		count := 0
		for _, s := range repo.shows {
			if s.VenueID == v.ID && show.IsUpcoming(s.StartTime, now) {
				count++
			}
		}
		located = append(located, venue.Located{ID: v.ID, Name: v.Name, City: v.City, State: v.State, NumUpcomingShows: count})
	}
	sort.SliceStable(located, func(i, j int) bool {
		if located[i].State != located[j].State {
			return located[i].State < located[j].State
		}
		if located[i].City != located[j].City {
			return located[i].City < located[j].City
		}
		return located[i].Name < located[j].Name
	})
	return located, nil
}

func (repo *memoryRepository) Recent(_ context.Context, limit int) ([]catalog.Entry, error) {
	list := repo.sorted()
	entries := []catalog.Entry{}
	for i := len(list) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, catalog.Entry{ID: list[i].ID, Name: list[i].Name})
	}
	return entries, nil
}

func (repo *memoryRepository) Search(_ context.Context, term string) ([]catalog.Entry, error) {
	entries := []catalog.Entry{}
	for _, v := range repo.sorted() {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			entries = append(entries, catalog.Entry{ID: v.ID, Name: v.Name})
		}
	}
	return entries, nil
}

func (repo *memoryRepository) Get(_ context.Context, id int) (*venue.Venue, error) {
	v, ok := repo.venues[id]
	if !ok {
		return nil, apperr.NotFound("Venue")
	}
	copied := *v
	return &copied, nil
}

func (repo *memoryRepository) GetDetail(ctx context.Context, id int, now time.Time) (*venue.Venue, show.Partition, error) {
	v, err := repo.Get(ctx, id)
	if err != nil {
		return nil, show.Partition{}, err
	}

	var listings []show.Listing
	for _, s := range repo.shows {
		if s.VenueID == id {
			listings = append(listings, show.Listing{ShowID: s.ID, VenueID: s.VenueID, VenueName: v.Name, ArtistID: s.ArtistID, StartTime: s.StartTime})
		}
	}
	return v, show.Split(listings, now), nil
}

func (repo *memoryRepository) Create(_ context.Context, v *venue.Venue) error {
	repo.nextID++
	v.ID = repo.nextID
	v.CreatedAt, v.UpdatedAt = fixedNow, fixedNow
	copied := *v
	repo.venues[v.ID] = &copied
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, v *venue.Venue) error {
	existing, ok := repo.venues[v.ID]
	if !ok {
		return apperr.NotFound("Venue")
	}
	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = fixedNow.Add(time.Minute)
	copied := *v
	repo.venues[v.ID] = &copied
	return nil
}

func (repo *memoryRepository) Delete(_ context.Context, id int) (int, error) {
	if _, ok := repo.venues[id]; !ok {
		return 0, apperr.NotFound("Venue")
	}
	kept := repo.shows[:0]
	removed := 0
	for _, s := range repo.shows {
		if s.VenueID == id {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	repo.shows = kept
	delete(repo.venues, id)
	return removed, nil
}

func newService(repo venue.Repository) *venue.Service {
	return venue.NewService(repo, func() time.Time { return fixedNow }, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fillmore() *venue.Venue {
	return &venue.Venue{
		Profile: catalog.Profile{
			Name:   "The Fillmore",
			City:   "San Francisco",
			State:  "CA",
			Phone:  "4155671330",
			Genres: []string{"Rock", "Jazz"},
		},
		Address: "1805 Geary Blvd",
	}
}

/*
TestService_FillmoreListed verifies a new venue appears in its area with no upcoming shows.
*/
func TestService_FillmoreListed(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	v := fillmore()
	require.NoError(t, service.Create(context.Background(), v))

	areas, err := service.ListByArea(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	assert.Equal(t, []venue.AreaVenue{{ID: v.ID, Name: "The Fillmore", NumUpcomingShows: 0}}, areas[0].Venues)
}

/*
TestService_DetailPartitions verifies each show lands in exactly one partition,
with a show starting exactly now counted as upcoming.
*/
func TestService_DetailPartitions(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	v := fillmore()
	require.NoError(t, service.Create(context.Background(), v))

	repo.shows = []show.Show{
		{ID: 1, ArtistID: 4, VenueID: v.ID, StartTime: fixedNow.Add(-24 * time.Hour)},
		{ID: 2, ArtistID: 4, VenueID: v.ID, StartTime: fixedNow},
		{ID: 3, ArtistID: 5, VenueID: v.ID, StartTime: fixedNow.Add(time.Hour)},
	}

	detail, err := service.Detail(context.Background(), v.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, 3, detail.PastShowsCount+detail.UpcomingShowsCount)
	assert.Equal(t, 1, detail.PastShows[0].ShowID)
}

func TestService_CreateValidation(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	v := fillmore()
	v.Name = "   "
	v.Address = ""
	v.Website = pointer.To("not a url")

	err := service.Create(context.Background(), v)

	fields := validate.FieldMessages(err)
	assert.Contains(t, fields, catalog.FieldName)
	assert.Contains(t, fields, venue.FieldAddress)
	assert.Contains(t, fields, catalog.FieldWebsite)
	assert.Empty(t, repo.venues, "no row is written when validation fails")
}

/*
TestService_UpdateInPlace verifies the id and existing shows survive an edit.
*/
func TestService_UpdateInPlace(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	v := fillmore()
	require.NoError(t, service.Create(context.Background(), v))
	repo.shows = []show.Show{{ID: 1, ArtistID: 4, VenueID: v.ID, StartTime: fixedNow.Add(time.Hour)}}

	edited := fillmore()
	edited.Name = "The Fillmore Auditorium"
	require.NoError(t, service.Update(context.Background(), v.ID, edited))

	assert.Equal(t, v.ID, edited.ID)
	assert.Len(t, repo.venues, 1)
	assert.Equal(t, "The Fillmore Auditorium", repo.venues[v.ID].Name)

	detail, err := service.Detail(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
}

func TestService_UpdateMissing(t *testing.T) {
	err := newService(newMemoryRepository()).Update(context.Background(), 42, fillmore())
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_DeleteCascades verifies the venue's shows go with it and others stay.
*/
func TestService_DeleteCascades(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	first, second := fillmore(), fillmore()
	second.Name = "The Warfield"
	require.NoError(t, service.Create(context.Background(), first))
	require.NoError(t, service.Create(context.Background(), second))

	repo.shows = []show.Show{
		{ID: 1, ArtistID: 4, VenueID: first.ID, StartTime: fixedNow.Add(-time.Hour)},
		{ID: 2, ArtistID: 4, VenueID: first.ID, StartTime: fixedNow.Add(time.Hour)},
		{ID: 3, ArtistID: 4, VenueID: second.ID, StartTime: fixedNow.Add(time.Hour)},
	}

	removed, err := service.Delete(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	for _, s := range repo.shows {
		assert.NotEqual(t, first.ID, s.VenueID)
	}
	assert.Len(t, repo.shows, 1)

	_, err = service.Detail(context.Background(), first.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestService_Search(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	for _, name := range []string{"The Musical Hop", "The Dueling Pianos Bar", "Park Square Live Music & Coffee"} {
		v := fillmore()
		v.Name = name
		require.NoError(t, service.Create(context.Background(), v))
	}

	results, err := service.Search(context.Background(), "  Music ")
	require.NoError(t, err)
	assert.Equal(t, "Music", results.SearchTerm)
	assert.Equal(t, 2, results.Count)

	results, err = service.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, results.Count, "an empty term matches every venue")

	lower, err := service.Search(context.Background(), "hop")
	require.NoError(t, err)
	upper, err := service.Search(context.Background(), "HOP")
	require.NoError(t, err)
	assert.Equal(t, lower.Data, upper.Data)
}
