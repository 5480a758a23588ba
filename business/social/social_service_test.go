package social

import (
	"context"
	"errors"
	"testing"

	"eventScout/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserEventRepo struct {
	upserted   []*domain.UserEvent
	statuses   map[string]string
	counts     map[string]int
	statusErr  error
	countsErr  error
	listResult []domain.UserEvent
}

func (f *fakeUserEventRepo) Upsert(_ context.Context, ue *domain.UserEvent) error {
	f.upserted = append(f.upserted, ue)
	return nil
}

func (f *fakeUserEventRepo) StatusesByUser(_ context.Context, _ uint, _ []string) (map[string]string, error) {
	return f.statuses, f.statusErr
}

func (f *fakeUserEventRepo) GoingCounts(_ context.Context, _ []uint, _ []string) (map[string]int, error) {
	return f.counts, f.countsErr
}

func (f *fakeUserEventRepo) ListByUser(_ context.Context, _ uint) ([]domain.UserEvent, error) {
	return f.listResult, nil
}

type fakeFriendRepo struct {
	friends []uint
	err     error
	added   [][2]uint
}

func (f *fakeFriendRepo) FriendIDs(_ context.Context, _ uint) ([]uint, error) {
	return f.friends, f.err
}

func (f *fakeFriendRepo) AddFriend(_ context.Context, userID, friendID uint) error {
	f.added = append(f.added, [2]uint{userID, friendID})
	return nil
}

func TestSetRSVPValidation(t *testing.T) {
	svc := NewSocialService(&fakeUserEventRepo{}, &fakeFriendRepo{})
	ctx := context.Background()

	assert.Error(t, svc.SetRSVP(ctx, 1, "", "Show", domain.RSVPGoing))
	assert.Error(t, svc.SetRSVP(ctx, 1, "ev-1", "Show", "maybe"))
	assert.NoError(t, svc.SetRSVP(ctx, 1, "ev-1", "Show", domain.RSVPInterested))
}

func TestAddFriendRejectsSelf(t *testing.T) {
	repo := &fakeFriendRepo{}
	svc := NewSocialService(&fakeUserEventRepo{}, repo)

	assert.Error(t, svc.AddFriend(context.Background(), 5, 5))
	assert.Empty(t, repo.added)

	require.NoError(t, svc.AddFriend(context.Background(), 5, 9))
	assert.Equal(t, [2]uint{5, 9}, repo.added[0])
}

func TestAnnotateAttachesWithoutReordering(t *testing.T) {
	events := []domain.Event{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	svc := NewSocialService(
		&fakeUserEventRepo{
			statuses: map[string]string{"b": domain.RSVPGoing},
			counts:   map[string]int{"a": 2},
		},
		&fakeFriendRepo{friends: []uint{11, 12}},
	)

	items := svc.Annotate(context.Background(), 1, events)
	require.Len(t, items, 3)

	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "c", items[2].ID)

	assert.Equal(t, 2, items[0].FriendsGoing)
	assert.Equal(t, domain.RSVPGoing, items[1].RSVPStatus)
	assert.Empty(t, items[2].RSVPStatus)
	assert.Zero(t, items[2].FriendsGoing)
}

func TestAnnotateDegradesOnLookupFailure(t *testing.T) {
	events := []domain.Event{{ID: "a"}}

	svc := NewSocialService(
		&fakeUserEventRepo{statusErr: errors.New("db down"), countsErr: errors.New("db down")},
		&fakeFriendRepo{err: errors.New("db down")},
	)

	items := svc.Annotate(context.Background(), 1, events)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
	assert.Empty(t, items[0].RSVPStatus)
	assert.Zero(t, items[0].FriendsGoing)
}

func TestAnnotateEmptyPage(t *testing.T) {
	svc := NewSocialService(&fakeUserEventRepo{}, &fakeFriendRepo{})
	items := svc.Annotate(context.Background(), 1, nil)
	assert.Empty(t, items)
}
