package services

import (
	"context"
	"log"
	"time"

	"dp-server/cache"
	"dp-server/config"
	"dp-server/models"
)

// Request phases, in order. Failed is terminal and reachable only from
// Validating and Fetching.
type phase string

const (
	phaseValidating phase = "Validating"
	phaseCacheCheck phase = "CacheCheck"
	phaseFetching   phase = "Fetching"
	phaseRanking    phase = "Ranking"
	phaseScheduling phase = "Scheduling"
	phasePackaging  phase = "Packaging"
	phaseCaching    phase = "Caching"
	phaseResponding phase = "Responding"
	phaseFailed     phase = "Failed"
)

// RecommendationService is the engine's entry point. It owns no state beyond
// its injected collaborators; the response cache is the only thing shared
// across requests.
type RecommendationService struct {
	venueSource      VenueSource
	eventSource      EventSource
	availability     AvailabilityProvider
	rankingEngine    *RankingEngine
	slotProposer     *SlotProposer
	packageGenerator *PackageGenerator
	responseCache    cache.ResponseCache

	upstreamTimeout time.Duration
	cacheTTL        time.Duration
}

// NewRecommendationService constructs the orchestrator with all dependencies injected.
func NewRecommendationService(
	venueSource VenueSource,
	eventSource EventSource,
	availability AvailabilityProvider,
	rankingEngine *RankingEngine,
	slotProposer *SlotProposer,
	packageGenerator *PackageGenerator,
	responseCache cache.ResponseCache,
) *RecommendationService {
	return &RecommendationService{
		venueSource:      venueSource,
		eventSource:      eventSource,
		availability:     availability,
		rankingEngine:    rankingEngine,
		slotProposer:     slotProposer,
		packageGenerator: packageGenerator,
		responseCache:    responseCache,
		upstreamTimeout:  config.UPSTREAM_CALL_TIMEOUT_SECONDS * time.Second,
		cacheTTL:         config.RESPONSE_CACHE_TTL_MINUTES * time.Minute,
	}
}

type fetchResult struct {
	venues       []models.Candidate
	venueErr     error
	events       []models.Candidate
	eventErr     error
	availability *models.Availability
	calendarErr  error
}

// Recommend runs one request through the full phase sequence and returns the
// generated packages. Only InvalidInput and UpstreamUnavailable surface as
// errors; everything else degrades.
func (s *RecommendationService) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	// Validating
	if err := req.Location.Validate(); err != nil {
		s.logPhase(phaseFailed, "invalid location")
		return nil, NewInvalidInput("location is missing or out of range", err)
	}
	radiusKm := req.RadiusKm
	if radiusKm <= 0 {
		radiusKm = config.DEFAULT_RADIUS_KM
	}

	// CacheCheck
	key := cache.Fingerprint(req.Location, radiusKm, req.Preferences, req.RequesterID)
	if payload, ok := s.responseCache.Get(key); ok {
		s.logPhase(phaseResponding, "cache hit")
		return &models.RecommendationResponse{DatePackages: payload}, nil
	}

	// Fetching: venue, event and (when calendar context exists) availability
	// calls run concurrently; latency is bounded by the slowest, not the sum.
	s.logPhase(phaseFetching, "cache miss, querying sources")
	result := s.fetchAll(ctx, req, radiusKm)

	if result.venueErr != nil && result.eventErr != nil {
		s.logPhase(phaseFailed, "all sources failed")
		return nil, NewUpstreamUnavailable("both venue and event sources failed", result.venueErr)
	}
	if result.venueErr != nil {
		log.Printf("[RecommendationService] %s: venue source failed, continuing with events only: %v",
			KindPartialUpstreamFailure, result.venueErr)
	}
	if result.eventErr != nil {
		log.Printf("[RecommendationService] %s: event source failed, continuing with venues only: %v",
			KindPartialUpstreamFailure, result.eventErr)
	}
	if result.calendarErr != nil {
		log.Printf("[RecommendationService] %s: calendar lookup failed, omitting time suggestions: %v",
			KindCalendarUnavailable, result.calendarErr)
	}

	// Ranking
	s.logPhase(phaseRanking, "")
	ranked := s.rankingEngine.Rank(result.venues, result.events)

	// Scheduling
	s.logPhase(phaseScheduling, "")
	var slots []models.CandidateSlot
	if result.availability != nil {
		slots = s.slotProposer.Propose(result.availability.BusyIntervals, result.availability.Preferences)
	}

	// Packaging
	s.logPhase(phasePackaging, "")
	packages := s.packageGenerator.Generate(ranked, req.Preferences.MaxBudget, slots)

	// Caching: empty results are cached too, misses are just as repeatable.
	s.logPhase(phaseCaching, "")
	s.responseCache.Put(key, packages, s.cacheTTL)

	// Responding
	s.logPhase(phaseResponding, "")
	return &models.RecommendationResponse{DatePackages: packages}, nil
}

// fetchAll issues the upstream calls concurrently, each with its own timeout.
// A timed-out call reads as a plain failure.
func (s *RecommendationService) fetchAll(ctx context.Context, req models.RecommendationRequest, radiusKm float64) fetchResult {
	var result fetchResult

	wantCalendar := req.RequesterID != "" && req.RelationshipID != ""

	venueDone := make(chan struct{})
	eventDone := make(chan struct{})
	calendarDone := make(chan struct{})

	go func() {
		defer close(venueDone)
		callCtx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
		defer cancel()
		result.venues, result.venueErr = s.venueSource.FetchCandidates(callCtx, req.Location, radiusKm)
	}()

	go func() {
		defer close(eventDone)
		callCtx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
		defer cancel()
		result.events, result.eventErr = s.eventSource.FetchCandidates(callCtx, req.Location)
	}()

	go func() {
		defer close(calendarDone)
		if !wantCalendar {
			return
		}
		callCtx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
		defer cancel()
		result.availability, result.calendarErr = s.availability.GetAvailability(callCtx, req.RelationshipID, req.RequesterID)
	}()

	<-venueDone
	<-eventDone
	<-calendarDone

	return result
}

func (s *RecommendationService) logPhase(p phase, detail string) {
	if detail != "" {
		log.Printf("[RecommendationService] phase=%s (%s)", p, detail)
		return
	}
	log.Printf("[RecommendationService] phase=%s", p)
}
