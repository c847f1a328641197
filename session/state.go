package session

import (
	"travelplanner/services"
)

type View string

const (
	ViewSearch  View = "search"
	ViewDetails View = "details"
)

type Tab string

const (
	TabOverview Tab = "overview"
	TabFlights  Tab = "flights"
	TabHotels   Tab = "hotels"
)

type BookingType string

const (
	BookingFlight BookingType = "flight"
	BookingHotel  BookingType = "hotel"
)

// BookingForm is the scratch state behind the booking modal. It is reset to
// its empty defaults on submit or cancel and is never sent anywhere.
type BookingForm struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Passengers      int    `json:"passengers"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	SpecialRequests string `json:"specialRequests"`
}

func emptyForm() BookingForm {
	return BookingForm{Passengers: 1}
}

// Offer is the offer captured by a "Book" action — exactly one of the two
// fields is set, matching BookingType.
type Offer struct {
	Flight *services.FlightOffer `json:"flight,omitempty"`
	Hotel  *services.HotelOffer  `json:"hotel,omitempty"`
}

// State is one browsing session's view state.
//
// Invariants:
//   - CurrentView == ViewDetails iff SelectedDestination != nil
//   - ShowBookingModal implies SelectedOffer != nil and BookingType != ""
type State struct {
	ID                  string                 `json:"id"`
	CurrentView         View                   `json:"currentView"`
	SearchPerformed     bool                   `json:"searchPerformed"`
	IsSearching         bool                   `json:"isSearching"`
	Destinations        []services.Destination `json:"destinations"`
	SelectedDestination *services.Destination  `json:"selectedDestination,omitempty"`
	ActiveTab           Tab                    `json:"activeTab"`
	FlightOffers        []services.FlightOffer `json:"flightOffers"`
	HotelOffers         []services.HotelOffer  `json:"hotelOffers"`
	ShowBookingModal    bool                   `json:"showBookingModal"`
	BookingType         BookingType            `json:"bookingType,omitempty"`
	SelectedOffer       *Offer                 `json:"selectedOffer,omitempty"`
	BookingForm         BookingForm            `json:"bookingForm"`
}

func newState(id string) *State {
	return &State{
		ID:          id,
		CurrentView: ViewSearch,
		ActiveTab:   TabOverview,
		BookingForm: emptyForm(),
	}
}

// snapshot returns a value copy safe to hand out after the lock is released.
func (s *State) snapshot() *State {
	c := *s
	return &c
}
