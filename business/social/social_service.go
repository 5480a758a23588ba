package social

import (
	"context"
	"fmt"

	"eventScout/domain"
	"eventScout/pkg/logger"
)

// UserEventRepository contract interface
type UserEventRepository interface {
	Upsert(ctx context.Context, userEvent *domain.UserEvent) error
	StatusesByUser(ctx context.Context, userID uint, eventIDs []string) (map[string]string, error)
	GoingCounts(ctx context.Context, userIDs []uint, eventIDs []string) (map[string]int, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.UserEvent, error)
}

// FriendshipRepository contract interface
type FriendshipRepository interface {
	FriendIDs(ctx context.Context, userID uint) ([]uint, error)
	AddFriend(ctx context.Context, userID, friendID uint) error
}

type SocialService struct {
	userEventRepo UserEventRepository
	friendRepo    FriendshipRepository
}

func NewSocialService(userEventRepo UserEventRepository, friendRepo FriendshipRepository) *SocialService {
	return &SocialService{
		userEventRepo: userEventRepo,
		friendRepo:    friendRepo,
	}
}

var validStatuses = map[string]bool{
	domain.RSVPGoing:      true,
	domain.RSVPInterested: true,
	domain.RSVPDeclined:   true,
}

func (s *SocialService) SetRSVP(ctx context.Context, userID uint, eventID, eventName, status string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if eventID == "" {
		return fmt.Errorf("event_id is required")
	}
	if !validStatuses[status] {
		return fmt.Errorf("unknown rsvp status: %s", status)
	}

	return s.userEventRepo.Upsert(ctx, &domain.UserEvent{
		UserID:    userID,
		EventID:   eventID,
		EventName: eventName,
		Status:    status,
	})
}

func (s *SocialService) ListRSVPs(ctx context.Context, userID uint) ([]domain.UserEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.userEventRepo.ListByUser(ctx, userID)
}

func (s *SocialService) AddFriend(ctx context.Context, userID, friendID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if userID == friendID {
		return fmt.Errorf("cannot befriend yourself")
	}

	return s.friendRepo.AddFriend(ctx, userID, friendID)
}

// Annotate attaches the viewer's RSVP status and friends-attending counts to
// an already-ranked page. It runs strictly after pagination and never changes
// the order; lookup failures degrade to unannotated items rather than
// breaking the page.
func (s *SocialService) Annotate(ctx context.Context, userID uint, events []domain.Event) []domain.DiscoveryItem {
	items := make([]domain.DiscoveryItem, len(events))
	for i, ev := range events {
		items[i] = domain.DiscoveryItem{Event: ev}
	}
	if len(events) == 0 {
		return items
	}

	eventIDs := make([]string, len(events))
	for i, ev := range events {
		eventIDs[i] = ev.ID
	}

	statuses, err := s.userEventRepo.StatusesByUser(ctx, userID, eventIDs)
	if err != nil {
		logger.Warn("rsvp status lookup failed", "user_id", userID, "error", err)
		statuses = nil
	}

	var counts map[string]int
	friendIDs, err := s.friendRepo.FriendIDs(ctx, userID)
	if err != nil {
		logger.Warn("friend lookup failed", "user_id", userID, "error", err)
	} else if len(friendIDs) > 0 {
		counts, err = s.userEventRepo.GoingCounts(ctx, friendIDs, eventIDs)
		if err != nil {
			logger.Warn("friend attendance lookup failed", "user_id", userID, "error", err)
			counts = nil
		}
	}

	for i := range items {
		if statuses != nil {
			items[i].RSVPStatus = statuses[items[i].ID]
		}
		if counts != nil {
			items[i].FriendsGoing = counts[items[i].ID]
		}
	}

	return items
}
