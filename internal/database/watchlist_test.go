package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUserAndShow(t *testing.T, c *Client) (*User, *Show) {
	t.Helper()
	ctx := context.Background()

	user := testUser("alice", "alice@example.com")
	require.NoError(t, c.CreateUser(ctx, user))

	show := &Show{Title: "Breaking Bad", Type: ShowTypeTVSeries, Episodes: 62}
	require.NoError(t, c.CreateShow(ctx, show, nil))

	return user, show
}

func TestCreateWatchListEntry(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	user, show := seedUserAndShow(t, c)

	entry := &WatchListEntry{
		UserID:   user.ID,
		ShowID:   show.ID,
		Status:   WatchStatusWatching,
		Progress: 5,
		Score:    8,
	}
	require.NoError(t, c.CreateWatchListEntry(ctx, entry))
	assert.NotZero(t, entry.ID)

	entries, err := c.GetWatchList(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, WatchStatusWatching, entries[0].Status)
	require.NotNil(t, entries[0].Show)
	assert.Equal(t, "Breaking Bad", entries[0].Show.Title)
}

func TestCreateWatchListEntryDuplicate(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	user, show := seedUserAndShow(t, c)

	require.NoError(t, c.CreateWatchListEntry(ctx, &WatchListEntry{UserID: user.ID, ShowID: show.ID}))

	err := c.CreateWatchListEntry(ctx, &WatchListEntry{UserID: user.ID, ShowID: show.ID})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateWatchListEntryAfterDelete(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	user, show := seedUserAndShow(t, c)

	require.NoError(t, c.CreateWatchListEntry(ctx, &WatchListEntry{UserID: user.ID, ShowID: show.ID}))
	require.NoError(t, c.DeleteWatchListEntry(ctx, user.ID, show.ID))

	// the pair is free again after a delete
	assert.NoError(t, c.CreateWatchListEntry(ctx, &WatchListEntry{UserID: user.ID, ShowID: show.ID}))
}

func TestWatchListEntryPerUser(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	alice, show := seedUserAndShow(t, c)

	bob := testUser("bob", "bob@example.com")
	require.NoError(t, c.CreateUser(ctx, bob))

	require.NoError(t, c.CreateWatchListEntry(ctx, &WatchListEntry{UserID: alice.ID, ShowID: show.ID}))
	require.NoError(t, c.CreateWatchListEntry(ctx, &WatchListEntry{UserID: bob.ID, ShowID: show.ID}))

	aliceList, err := c.GetWatchList(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceList, 1)

	bobList, err := c.GetWatchList(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobList, 1)
}

func TestUpdateWatchListEntry(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	user, show := seedUserAndShow(t, c)

	require.NoError(t, c.CreateWatchListEntry(ctx, &WatchListEntry{
		UserID: user.ID, ShowID: show.ID, Status: WatchStatusWatching, Progress: 5, Score: 8,
	}))

	updated, err := c.UpdateWatchListEntry(ctx, user.ID, show.ID, WatchStatusCompleted, 62, 10)
	require.NoError(t, err)
	assert.Equal(t, WatchStatusCompleted, updated.Status)
	assert.Equal(t, 62, updated.Progress)
	assert.Equal(t, 10, updated.Score)

	entries, err := c.GetWatchList(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, WatchStatusCompleted, entries[0].Status)
}

func TestUpdateWatchListEntryNotFound(t *testing.T) {
	c := newTestClient(t)
	user, _ := seedUserAndShow(t, c)

	_, err := c.UpdateWatchListEntry(context.Background(), user.ID, 9999, WatchStatusDropped, 0, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteWatchListEntryNotFound(t *testing.T) {
	c := newTestClient(t)
	user, _ := seedUserAndShow(t, c)

	err := c.DeleteWatchListEntry(context.Background(), user.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
