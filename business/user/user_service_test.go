package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventScout/business/discovery"
	"eventScout/domain"
	"eventScout/internal/repository/redis"
	"eventScout/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
	created []*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uint(len(f.created) + 1)
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	for _, u := range f.created {
		if u.ID == id {
			return *u, nil
		}
	}
	return domain.User{}, errors.New("user not found")
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return domain.User{}, errors.New("user not found")
}

type fakeTokenRepo struct {
	stored  map[string]redis.TokenData
	deleted []string
}

func (f *fakeTokenRepo) StoreToken(_ context.Context, _, token string, data redis.TokenData, _ time.Duration) error {
	if f.stored == nil {
		f.stored = make(map[string]redis.TokenData)
	}
	f.stored[token] = data
	return nil
}

func (f *fakeTokenRepo) ValidateToken(_ context.Context, token string) (string, error) {
	data, ok := f.stored[token]
	if !ok {
		return "", errors.New("session not found or expired")
	}
	return data.UserID, nil
}

func (f *fakeTokenRepo) DeleteToken(_ context.Context, _, token string) error {
	delete(f.stored, token)
	f.deleted = append(f.deleted, token)
	return nil
}

type fakeProfileStore struct {
	profiles map[uint]domain.PersonaProfile
}

func (f *fakeProfileStore) GetProfile(_ context.Context, userID uint) (domain.PersonaProfile, bool, error) {
	p, ok := f.profiles[userID]
	return p, ok, nil
}

func (f *fakeProfileStore) UpsertProfile(_ context.Context, profile domain.PersonaProfile) error {
	if f.profiles == nil {
		f.profiles = make(map[uint]domain.PersonaProfile)
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func newTestService() (*userService, *fakeUserRepo, *fakeTokenRepo, *fakeProfileStore) {
	utils.InitJWT("test-secret")
	users := &fakeUserRepo{byEmail: map[string]domain.User{}}
	tokens := &fakeTokenRepo{}
	profiles := &fakeProfileStore{}
	svc := NewUserService(users, profiles, tokens, validator.New())
	return svc, users, tokens, profiles
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &domain.User{Email: "not-an-email", Password: "secret1"})
	assert.Error(t, err)

	_, err = svc.Register(ctx, &domain.User{Email: "a@example.com", Password: "short"})
	assert.Error(t, err)
}

func TestRegisterHashesPasswordAndAssignsRole(t *testing.T) {
	svc, users, _, _ := newTestService()

	got, err := svc.Register(context.Background(), &domain.User{
		FullName: "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "member", got.Role)
	assert.Empty(t, got.Password, "hash never leaves the service")

	require.Len(t, users.created, 1)
	stored := users.created[0]
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "secret1"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _, _ := newTestService()
	users.byEmail["taken@example.com"] = domain.User{ID: 3, Email: "taken@example.com"}

	_, err := svc.Register(context.Background(), &domain.User{
		Email:    "taken@example.com",
		Password: "secret1",
	})
	assert.ErrorContains(t, err, "already exists")
}

func TestLoginRoundTrip(t *testing.T) {
	svc, users, tokens, _ := newTestService()

	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	users.byEmail["ada@example.com"] = domain.User{
		ID:       42,
		FullName: "Ada",
		Email:    "ada@example.com",
		Password: hash,
		Role:     "member",
	}

	token, got, err := svc.Login(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, got.Password)

	userID, err := svc.ValidateTokenFromRedis(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "42", userID)

	require.NoError(t, svc.Logout(context.Background(), 42, token))
	_, err = svc.ValidateTokenFromRedis(context.Background(), token)
	assert.Error(t, err, "logout revokes the session")
	assert.Contains(t, tokens.deleted, token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _, _ := newTestService()

	hash, _ := utils.HashPassword("secret1")
	users.byEmail["ada@example.com"] = domain.User{ID: 1, Email: "ada@example.com", Password: hash}

	_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestSubmitQuestionnaireClassifiesAndStores(t *testing.T) {
	svc, _, _, profiles := newTestService()

	profile, err := svc.SubmitQuestionnaire(
		context.Background(),
		7,
		domain.TraitScores{Openness: 1.2, Extraversion: 1.2, Conscientiousness: -0.3, Agreeableness: 0.2, Neuroticism: -0.5},
		"dr5reg",
		map[string]any{"q1": 5},
	)
	require.NoError(t, err)

	assert.Equal(t, discovery.LabelAdventurousExplorer, profile.Label)
	assert.Equal(t, "dr5reg", profile.Geohash)

	stored, ok, _ := profiles.GetProfile(context.Background(), 7)
	require.True(t, ok)
	assert.Equal(t, profile.Label, stored.Label)

	got, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1.2, got.Openness)
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetProfile(context.Background(), 404)
	assert.ErrorContains(t, err, "not found")
}
