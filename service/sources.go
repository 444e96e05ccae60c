package services

import (
	"context"
	"encoding/json"
	"log"

	"dp-server/api/foursquare"
	"dp-server/api/ticketmaster"
	"dp-server/models"
	"dp-server/util"
)

// VenueSource returns point-of-interest candidates near a coordinate.
type VenueSource interface {
	FetchCandidates(ctx context.Context, origin models.Coordinate, radiusKm float64) ([]models.Candidate, error)
}

// EventSource returns scheduled public event candidates near a coordinate.
type EventSource interface {
	FetchCandidates(ctx context.Context, origin models.Coordinate) ([]models.Candidate, error)
}

// FoursquareVenueSource adapts the Places API into the common candidate shape.
type FoursquareVenueSource struct {
	placesAPI foursquare.PlacesAPI
}

func NewFoursquareVenueSource(placesAPI foursquare.PlacesAPI) *FoursquareVenueSource {
	return &FoursquareVenueSource{placesAPI: placesAPI}
}

func (s *FoursquareVenueSource) FetchCandidates(ctx context.Context, origin models.Coordinate, radiusKm float64) ([]models.Candidate, error) {
	resp, err := s.placesAPI.SearchNearby(ctx, origin.Latitude, origin.Longitude, radiusKm)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, 0, len(resp.Results))
	for _, p := range resp.Results {
		place := p

		distance, err := util.DistanceKm(origin, models.Coordinate{
			Latitude:  place.Geocodes.Main.Latitude,
			Longitude: place.Geocodes.Main.Longitude,
		})
		if err != nil {
			log.Printf("[FoursquareVenueSource] Skipping place %s with bad geocode: %v", place.FsqID, err)
			continue
		}

		tags := make([]string, 0, len(place.Categories))
		for _, c := range place.Categories {
			tags = append(tags, c.Name)
		}

		raw, _ := json.Marshal(place)
		candidates = append(candidates, models.Candidate{
			ID:           place.FsqID,
			Name:         place.Name,
			Kind:         models.CandidateKindVenue,
			CategoryTags: tags,
			DistanceKm:   distance,
			QualityScore: place.Rating, // 0 when the API gave no rating
			PriceHint:    place.PriceLevel,
			RawSource:    raw,
		})
	}
	return candidates, nil
}

// TicketmasterEventSource adapts the Discovery API into the common candidate
// shape. The API reports no usable distance or quality signal for our query,
// so those fields stay zero.
type TicketmasterEventSource struct {
	eventsAPI ticketmaster.EventsAPI
}

func NewTicketmasterEventSource(eventsAPI ticketmaster.EventsAPI) *TicketmasterEventSource {
	return &TicketmasterEventSource{eventsAPI: eventsAPI}
}

func (s *TicketmasterEventSource) FetchCandidates(ctx context.Context, origin models.Coordinate) ([]models.Candidate, error) {
	resp, err := s.eventsAPI.SearchNearby(ctx, origin.Latitude, origin.Longitude)
	if err != nil {
		return nil, err
	}

	events := resp.Embedded.Events
	candidates := make([]models.Candidate, 0, len(events))
	for _, e := range events {
		event := e

		raw, _ := json.Marshal(event)
		candidates = append(candidates, models.Candidate{
			ID:             event.ID,
			Name:           event.Name,
			Kind:           models.CandidateKindEvent,
			MinTicketPrice: event.MinTicketPrice(),
			RawSource:      raw,
		})
	}
	return candidates, nil
}
