package domain

import "time"

const (
	RSVPGoing      = "going"
	RSVPInterested = "interested"
	RSVPDeclined   = "declined"
)

// CREATE TABLE public.user_events (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id    BIGINT NOT NULL REFERENCES users(id),
//     event_id   TEXT NOT NULL,
//     event_name TEXT,
//     status     TEXT NOT NULL,
//     created_at TIMESTAMPTZ DEFAULT NOW(),
//     updated_at TIMESTAMPTZ,
//     UNIQUE (user_id, event_id)
// );

type UserEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	EventID   string    `gorm:"column:event_id;not null" json:"event_id"`
	EventName string    `gorm:"column:event_name" json:"event_name"`
	Status    string    `gorm:"column:status;not null" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserEvent) TableName() string {
	return "user_events"
}

// CREATE TABLE public.friendships (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id    BIGINT NOT NULL REFERENCES users(id),
//     friend_id  BIGINT NOT NULL REFERENCES users(id),
//     created_at TIMESTAMPTZ DEFAULT NOW(),
//     UNIQUE (user_id, friend_id)
// );

type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	FriendID  uint      `gorm:"column:friend_id;not null" json:"friend_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
