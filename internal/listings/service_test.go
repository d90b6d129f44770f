// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package listings

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvx/listora/internal/platform/apperr"
	"github.com/hoangvx/listora/internal/platform/sec"
)

// # Fakes

// fakeRepo is an in-memory Repository preserving insertion order.
type fakeRepo struct {
	records map[string]*Listing
	order   []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*Listing)}
}

func (f *fakeRepo) Create(_ context.Context, listing *Listing) error {
	copied := *listing
	f.records[listing.ID] = &copied
	f.order = append(f.order, listing.ID)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*Listing, error) {
	listing, ok := f.records[id]
	if !ok {
		return nil, apperr.NotFound("Listing")
	}
	copied := *listing
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*Listing, error) {
	results := make([]*Listing, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		copied := *f.records[f.order[i]]
		results = append(results, &copied)
	}
	return results, nil
}

func (f *fakeRepo) Update(_ context.Context, listing *Listing) error {
	if _, ok := f.records[listing.ID]; !ok {
		return apperr.NotFound("Listing")
	}
	copied := *listing
	f.records[listing.ID] = &copied
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return apperr.NotFound("Listing")
	}
	delete(f.records, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

var (
	alice = sec.Principal{UserID: "user-alice", Username: "alice", SessionID: "sess-a"}
	bob   = sec.Principal{UserID: "user-bob", Username: "bob", SessionID: "sess-b"}
)

func newTestService(t *testing.T) (*Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, logger), repo
}

func status(t *testing.T, err error) int {
	t.Helper()
	appError := apperr.As(err)
	require.NotNil(t, appError)
	return appError.HTTPStatus
}

// # Create

func TestCreate_OwnerComesFromPrincipal(t *testing.T) {
	service, repo := newTestService(t)

	listing, err := service.Create(context.Background(), CreateInput{Title: "Road bike"}, alice)

	require.NoError(t, err)
	require.NotNil(t, listing.OwnerID)
	assert.Equal(t, alice.UserID, *listing.OwnerID)

	stored := repo.records[listing.ID]
	require.NotNil(t, stored)
	assert.Equal(t, alice.UserID, *stored.OwnerID)
}

func TestCreate_RejectsEmptyAndOverlongTitles(t *testing.T) {
	service, repo := newTestService(t)

	long := make([]byte, MaxTitleLength+1)
	for i := range long {
		long[i] = 'a'
	}

	testCases := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", string(long)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), CreateInput{Title: testCase.title}, alice)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, status(t, err))
		})
	}

	assert.Empty(t, repo.records)
}

// # Read

func TestList_NewestFirst(t *testing.T) {
	service, _ := newTestService(t)

	first, err := service.Create(context.Background(), CreateInput{Title: "First"}, alice)
	require.NoError(t, err)
	second, err := service.Create(context.Background(), CreateInput{Title: "Second"}, bob)
	require.NoError(t, err)

	records, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
}

func TestGet_UnknownID(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Get(context.Background(), "0191e1a0-0000-7000-8000-000000000000")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status(t, err))
}

// # Update

func TestUpdate_ChangesTitleKeepsOwner(t *testing.T) {
	service, _ := newTestService(t)
	created, err := service.Create(context.Background(), CreateInput{Title: "Old title"}, alice)
	require.NoError(t, err)

	newTitle := "New title"
	updated, err := service.Update(context.Background(), created.ID, UpdateInput{Title: &newTitle}, alice)
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)

	fetched, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", fetched.Title)
	require.NotNil(t, fetched.OwnerID)
	assert.Equal(t, alice.UserID, *fetched.OwnerID)
}

func TestUpdate_NilFieldsLeaveRecordUntouched(t *testing.T) {
	service, _ := newTestService(t)
	created, err := service.Create(context.Background(), CreateInput{Title: "Keep me"}, alice)
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, UpdateInput{}, alice)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", updated.Title)
}

func TestUpdate_ByNonOwnerIsForbidden(t *testing.T) {
	service, _ := newTestService(t)
	created, err := service.Create(context.Background(), CreateInput{Title: "Alice's"}, alice)
	require.NoError(t, err)

	newTitle := "Bob's now"
	_, err = service.Update(context.Background(), created.ID, UpdateInput{Title: &newTitle}, bob)

	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, status(t, err))

	fetched, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice's", fetched.Title, "rejected update must not mutate the record")
}

// # Delete

func TestDelete_ThenGetIsNotFound(t *testing.T) {
	service, _ := newTestService(t)
	created, err := service.Create(context.Background(), CreateInput{Title: "Ephemeral"}, alice)
	require.NoError(t, err)

	snapshot, err := service.Delete(context.Background(), created.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, "Ephemeral", snapshot.Title)

	_, err = service.Get(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status(t, err))
}

func TestDelete_ByNonOwnerIsForbidden(t *testing.T) {
	service, _ := newTestService(t)
	created, err := service.Create(context.Background(), CreateInput{Title: "Alice's"}, alice)
	require.NoError(t, err)

	_, err = service.Delete(context.Background(), created.ID, bob)

	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, status(t, err))

	_, err = service.Get(context.Background(), created.ID)
	assert.NoError(t, err, "rejected delete must not remove the record")
}
