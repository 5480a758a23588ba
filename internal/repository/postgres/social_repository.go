package postgres

import (
	"context"
	"fmt"

	"eventScout/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserEventRepository struct {
	DB *gorm.DB
}

func NewUserEventRepository(db *gorm.DB) *UserEventRepository {
	return &UserEventRepository{
		DB: db,
	}
}

func (r *UserEventRepository) Upsert(ctx context.Context, userEvent *domain.UserEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "event_name", "updated_at"}),
		}).
		Create(userEvent).Error
	if err != nil {
		return fmt.Errorf("failed to upsert rsvp: %w", err)
	}

	return nil
}

func (r *UserEventRepository) StatusesByUser(ctx context.Context, userID uint, eventIDs []string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.UserEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND event_id IN ?", userID, eventIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load rsvps: %w", err)
	}

	statuses := make(map[string]string, len(rows))
	for _, row := range rows {
		statuses[row.EventID] = row.Status
	}

	return statuses, nil
}

// GoingCounts returns, per event, how many of the given users RSVPed going.
func (r *UserEventRepository) GoingCounts(ctx context.Context, userIDs []uint, eventIDs []string) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	type countRow struct {
		EventID string
		Total   int
	}

	var rows []countRow
	err := r.DB.WithContext(ctx).
		Model(&domain.UserEvent{}).
		Select("event_id, COUNT(*) AS total").
		Where("user_id IN ? AND event_id IN ? AND status = ?", userIDs, eventIDs, domain.RSVPGoing).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count friend attendance: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.EventID] = row.Total
	}

	return counts, nil
}

func (r *UserEventRepository) ListByUser(ctx context.Context, userID uint) ([]domain.UserEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.UserEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}

	return rows, nil
}

type FriendshipRepository struct {
	DB *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{
		DB: db,
	}
}

func (r *FriendshipRepository) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []uint
	err := r.DB.WithContext(ctx).
		Model(&domain.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load friends: %w", err)
	}

	return ids, nil
}

func (r *FriendshipRepository) AddFriend(ctx context.Context, userID, friendID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Friendship{UserID: userID, FriendID: friendID}).Error
	if err != nil {
		return fmt.Errorf("failed to add friend: %w", err)
	}

	return nil
}
