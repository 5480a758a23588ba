package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"eventScout/business/personality"
	"eventScout/domain"
	"eventScout/internal/repository/redis"
	"eventScout/pkg/logger"
	"eventScout/pkg/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// ProfileRepository contract interface
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uint) (domain.PersonaProfile, bool, error)
	UpsertProfile(ctx context.Context, profile domain.PersonaProfile) error
}

// TokenRepository contract interface (Redis-backed sessions)
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token string, data redis.TokenData, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

const sessionTTL = 24 * time.Hour

type userService struct {
	userRepo    UserRepository
	profileRepo ProfileRepository
	tokenRepo   TokenRepository
	validate    *validator.Validate
}

func NewUserService(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	tokenRepo TokenRepository,
	validate *validator.Validate,
) *userService {
	return &userService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		validate:    validate,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", "error", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", "error", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		FullName: user.FullName,
		Email:    user.Email,
		Password: passwordHash,
		Role:     "member",
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user")
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", "error", err)
		return "", domain.User{}, errors.New("invalid credentials")
	}

	if !utils.CheckPassword(user.Password, password) {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, sessionTTL)
	if err != nil {
		logger.Error("Failed to generate token", "error", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	now := time.Now()
	err = s.tokenRepo.StoreToken(ctx, userIDStr, token, redis.TokenData{
		UserID:    userIDStr,
		Role:      user.Role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(sessionTTL),
	}, sessionTTL)
	if err != nil {
		logger.Error("Failed to store session token", "error", err)
		return "", domain.User{}, errors.New("failed to store session")
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)

	if err := s.tokenRepo.DeleteToken(ctx, userIDStr, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	return s.tokenRepo.ValidateToken(ctx, token)
}

// SubmitQuestionnaire stores the trait z-scores, classifies them into a
// persona label and persists the profile. The raw answers ride along for
// later re-classification.
func (s *userService) SubmitQuestionnaire(
	ctx context.Context,
	userID uint,
	traits domain.TraitScores,
	geohash string,
	answers map[string]any,
) (domain.PersonaProfile, error) {

	if err := ctx.Err(); err != nil {
		return domain.PersonaProfile{}, fmt.Errorf("context error: %w", err)
	}

	label := personality.Classify(traits)

	profile := domain.PersonaProfile{
		UserID:            userID,
		Label:             label,
		Openness:          traits.Openness,
		Conscientiousness: traits.Conscientiousness,
		Extraversion:      traits.Extraversion,
		Agreeableness:     traits.Agreeableness,
		Neuroticism:       traits.Neuroticism,
		Geohash:           geohash,
	}
	if answers != nil {
		profile.Answers = datatypes.JSONMap(answers)
	}

	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return domain.PersonaProfile{}, fmt.Errorf("save persona profile: %w", err)
	}

	logger.Info("persona_profile_saved",
		"user_id", userID,
		"label", label,
	)

	return profile, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (domain.PersonaProfile, error) {
	profile, ok, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return domain.PersonaProfile{}, fmt.Errorf("load persona profile: %w", err)
	}
	if !ok {
		return domain.PersonaProfile{}, errors.New("persona profile not found")
	}

	return profile, nil
}
