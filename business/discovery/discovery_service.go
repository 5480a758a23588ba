package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventScout/domain"
	"eventScout/pkg/logger"
)

// ErrNoPersona is the one hard failure this engine surfaces: the caller has
// no personality label and none could be loaded for them. Everything
// upstream-related degrades instead of erroring.
var ErrNoPersona = errors.New("no personality profile available for user")

const defaultPageLimit = 20

// ---- Repository interfaces ----

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uint) (domain.PersonaProfile, bool, error)
}

// ---- Usecase / Service ----

type DiscoveryService struct {
	client      SearchClient
	profileRepo ProfileRepository
	cfg         Config
}

func NewDiscoveryService(client SearchClient, profileRepo ProfileRepository, cfg Config) *DiscoveryService {
	return &DiscoveryService{
		client:      client,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

// Search runs the full pipeline for one request: resolve the persona
// signal, expand the tiered search plan, rank, interleave and paginate.
// personaLabel and geoHash are optional; missing ones are filled from the
// stored profile. A persona that cannot be resolved at all fails the call.
func (s *DiscoveryService) Search(
	ctx context.Context,
	userID uint,
	personaLabel string,
	geoHash string,
	page int,
	limit int,
) (domain.SearchResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if page < 0 {
		page = 0
	}

	var traits *domain.TraitScores

	if (personaLabel == "" || geoHash == "") && s.profileRepo != nil {
		profile, ok, err := s.profileRepo.GetProfile(ctx, userID)
		if err != nil {
			return domain.SearchResult{}, fmt.Errorf("load persona profile: %w", err)
		}
		if ok {
			if personaLabel == "" {
				personaLabel = profile.Label
			}
			if geoHash == "" {
				geoHash = profile.Geohash
			}
			t := profile.Traits()
			traits = &t
		}
	}

	if personaLabel == "" {
		return domain.SearchResult{}, ErrNoPersona
	}

	signal := ResolveSignal(personaLabel)
	viewer := DecodeGeohash(geoHash)

	// The fallback keyword group leads with the generic virtual-event term
	// and carries the persona's primary vocabulary behind it.
	groups := ComposeKeywords(personaLabel, traits)
	fallbackKeyword := s.cfg.FallbackKeyword
	if groups.Primary != "" {
		fallbackKeyword = fallbackKeyword + "|" + groups.Primary
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("discovery_search",
		"trace_id", tid,
		"user_id", userID,
		"persona", signal.Persona.String(),
		"geohash", geoHash,
		"page", page,
		"limit", limit,
	)

	p := newPlanner(s.client, s.cfg, signal, geoHash, fallbackKeyword)
	working, diagnostics := p.Plan(ctx)

	ranked := Rank(working, signal, viewer, time.Now(), s.cfg)
	ordered := Interleave(ranked, s.cfg)

	result := Paginate(ordered, page, limit)
	result.Diagnostics = diagnostics

	logger.Debug("discovery_search_done",
		"trace_id", tid,
		"user_id", userID,
		"working_set", len(working),
		"total", result.Total,
		"returned", len(result.Items),
	)

	return result, nil
}

// Explain returns the scored working set for a request without interleaving
// or pagination, for inspection of the ranking components.
func (s *DiscoveryService) Explain(
	ctx context.Context,
	userID uint,
	personaLabel string,
	geoHash string,
	limit int,
) ([]ScoredEvent, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}

	var traits *domain.TraitScores

	if (personaLabel == "" || geoHash == "") && s.profileRepo != nil {
		profile, ok, err := s.profileRepo.GetProfile(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load persona profile: %w", err)
		}
		if ok {
			if personaLabel == "" {
				personaLabel = profile.Label
			}
			if geoHash == "" {
				geoHash = profile.Geohash
			}
			t := profile.Traits()
			traits = &t
		}
	}

	if personaLabel == "" {
		return nil, ErrNoPersona
	}

	signal := ResolveSignal(personaLabel)
	viewer := DecodeGeohash(geoHash)

	groups := ComposeKeywords(personaLabel, traits)
	fallbackKeyword := s.cfg.FallbackKeyword
	if groups.Primary != "" {
		fallbackKeyword = fallbackKeyword + "|" + groups.Primary
	}

	p := newPlanner(s.client, s.cfg, signal, geoHash, fallbackKeyword)
	working, _ := p.Plan(ctx)

	ranked := Rank(working, signal, viewer, time.Now(), s.cfg)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}
