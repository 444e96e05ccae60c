package ticketmaster

import "fmt"

// EventSearchResponse mirrors the Discovery API event search payload.
type EventSearchResponse struct {
	Embedded EmbeddedEvents `json:"_embedded"`
}

type EmbeddedEvents struct {
	Events []Event `json:"events"`
}

// Event is a scheduled public event near the searched area.
type Event struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Dates       EventDates   `json:"dates,omitempty"`
	PriceRanges []PriceRange `json:"priceRanges,omitempty"`
}

type EventDates struct {
	Start EventStart `json:"start,omitempty"`
}

type EventStart struct {
	DateTime string `json:"dateTime,omitempty"`
}

type PriceRange struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

// MinTicketPrice returns the lowest minimum across the event's price ranges,
// or 0 when the API provided none.
func (e *Event) MinTicketPrice() float64 {
	min := 0.0
	for _, pr := range e.PriceRanges {
		if pr.Min > 0 && (min == 0 || pr.Min < min) {
			min = pr.Min
		}
	}
	return min
}

func (e *Event) ToString() string {
	return fmt.Sprintf("Event(id=%s, name=%s)", e.ID, e.Name)
}
