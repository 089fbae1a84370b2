package database

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogClient(t *testing.T) *Client {
	t.Helper()
	c := newTestClient(t)
	require.NoError(t, c.SyncGenres(context.Background()))
	return c
}

func TestCreateShow(t *testing.T) {
	c := newCatalogClient(t)
	ctx := context.Background()

	show := &Show{Title: "Breaking Bad", Type: ShowTypeTVSeries, Episodes: 62}
	require.NoError(t, c.CreateShow(ctx, show, []string{"DRAMA", "SUSPENSE"}))
	assert.NotZero(t, show.ID)

	got, err := c.GetShow(ctx, show.ID)
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", got.Title)

	names := lo.Map(got.Genres, func(g Genre, _ int) string { return g.Name })
	assert.ElementsMatch(t, []string{"DRAMA", "SUSPENSE"}, names)
}

func TestCreateShowDuplicateTitle(t *testing.T) {
	c := newCatalogClient(t)
	ctx := context.Background()

	require.NoError(t, c.CreateShow(ctx, &Show{Title: "X", Type: ShowTypeMovie, Episodes: 1}, nil))

	err := c.CreateShow(ctx, &Show{Title: "X", Type: ShowTypeMovie, Episodes: 1}, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateShowUnknownGenre(t *testing.T) {
	c := newCatalogClient(t)
	ctx := context.Background()

	err := c.CreateShow(ctx, &Show{Title: "X", Type: ShowTypeMovie}, []string{"WESTERN"})
	assert.ErrorIs(t, err, ErrValidation)

	// nothing may be persisted when the genre set is invalid
	shows, err := c.GetAllShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestUpdateShowReplacesGenres(t *testing.T) {
	c := newCatalogClient(t)
	ctx := context.Background()

	show := &Show{Title: "Stranger Things", Type: ShowTypeTVSeries, Episodes: 25}
	require.NoError(t, c.CreateShow(ctx, show, []string{"ACTION", "ADVENTURE"}))

	updated, err := c.UpdateShow(ctx, show.ID, &Show{
		Title:    "Stranger Things",
		Type:     ShowTypeTVSeries,
		Episodes: 34,
	}, []string{"HORROR"})
	require.NoError(t, err)
	assert.Equal(t, 34, updated.Episodes)

	got, err := c.GetShow(ctx, show.ID)
	require.NoError(t, err)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "HORROR", got.Genres[0].Name)
}

func TestUpdateShowEmptyGenreSet(t *testing.T) {
	c := newCatalogClient(t)
	ctx := context.Background()

	show := &Show{Title: "X", Type: ShowTypeMovie, Episodes: 1}
	require.NoError(t, c.CreateShow(ctx, show, []string{"ACTION"}))

	_, err := c.UpdateShow(ctx, show.ID, &Show{Title: "X", Type: ShowTypeMovie, Episodes: 1}, []string{})
	require.NoError(t, err)

	got, err := c.GetShow(ctx, show.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
}

func TestUpdateShowNotFound(t *testing.T) {
	c := newCatalogClient(t)

	_, err := c.UpdateShow(context.Background(), 9999, &Show{Title: "X", Type: ShowTypeMovie}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteShowCascades(t *testing.T) {
	c := newCatalogClient(t)
	ctx := context.Background()

	user := testUser("alice", "alice@example.com")
	require.NoError(t, c.CreateUser(ctx, user))

	show := &Show{Title: "X", Type: ShowTypeMovie, Episodes: 1}
	require.NoError(t, c.CreateShow(ctx, show, []string{"ACTION"}))

	require.NoError(t, c.CreateWatchListEntry(ctx, &WatchListEntry{
		UserID: user.ID, ShowID: show.ID, Status: WatchStatusWatching,
	}))
	require.NoError(t, c.CreateComment(ctx, &Comment{
		UserID: user.ID, ShowID: show.ID, Text: "great",
	}))

	require.NoError(t, c.DeleteShow(ctx, show.ID))

	_, err := c.GetShow(ctx, show.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := c.GetWatchList(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	comments, err := c.GetComments(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDeleteShowIdempotent(t *testing.T) {
	c := newCatalogClient(t)

	assert.NoError(t, c.DeleteShow(context.Background(), 9999))
}
