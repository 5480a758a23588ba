package domain

import (
	"time"

	"gorm.io/datatypes"
)

// TraitScores are standardized big-five z-scores, typically in [-3, 3].
type TraitScores struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// CREATE TABLE public.persona_profiles (
//     user_id           BIGINT PRIMARY KEY REFERENCES users(id),
//     label             TEXT NOT NULL,
//     openness          DOUBLE PRECISION,
//     conscientiousness DOUBLE PRECISION,
//     extraversion      DOUBLE PRECISION,
//     agreeableness     DOUBLE PRECISION,
//     neuroticism       DOUBLE PRECISION,
//     geohash           TEXT,
//     answers           JSONB,
//     created_at        TIMESTAMPTZ DEFAULT NOW(),
//     updated_at        TIMESTAMPTZ
// );

type PersonaProfile struct {
	UserID            uint              `gorm:"column:user_id;primaryKey" json:"user_id"`
	Label             string            `gorm:"column:label;not null" json:"label"`
	Openness          float64           `gorm:"column:openness" json:"openness"`
	Conscientiousness float64           `gorm:"column:conscientiousness" json:"conscientiousness"`
	Extraversion      float64           `gorm:"column:extraversion" json:"extraversion"`
	Agreeableness     float64           `gorm:"column:agreeableness" json:"agreeableness"`
	Neuroticism       float64           `gorm:"column:neuroticism" json:"neuroticism"`
	Geohash           string            `gorm:"column:geohash" json:"geohash"`
	Answers           datatypes.JSONMap `gorm:"column:answers;type:jsonb" json:"answers,omitempty"`
	CreatedAt         time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PersonaProfile) TableName() string {
	return "persona_profiles"
}

func (p PersonaProfile) Traits() TraitScores {
	return TraitScores{
		Openness:          p.Openness,
		Conscientiousness: p.Conscientiousness,
		Extraversion:      p.Extraversion,
		Agreeableness:     p.Agreeableness,
		Neuroticism:       p.Neuroticism,
	}
}
