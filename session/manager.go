package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"travelplanner/services"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrOfferNotFound       = errors.New("offer not found")
	ErrNotInDetails        = errors.New("no destination selected")
	ErrNoBookingInProgress = errors.New("no booking in progress")
	ErrInvalidTab          = errors.New("invalid tab")
	ErrInvalidBookingType  = errors.New("invalid booking type")
	ErrEmailRequired       = errors.New("email is required")
)

// DestinationSearcher is the live destination-search dependency. Any failure
// is absorbed by the fallback list; it never surfaces to the caller.
type DestinationSearcher interface {
	SearchDestinations(ctx context.Context, keyword string) ([]services.Destination, error)
}

type entry struct {
	state  *State
	expiry time.Time
}

// Manager owns all session view state and the transitions between views.
// Sessions live in memory only and expire after sitting idle for the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	api      DestinationSearcher
	gen      *services.Generator
	ttl      time.Duration
	done     chan struct{}
}

func NewManager(api DestinationSearcher, gen *services.Generator, ttl time.Duration) *Manager {
	if gen == nil {
		gen = services.NewGenerator(nil)
	}
	m := &Manager{
		sessions: make(map[string]*entry),
		api:      api,
		gen:      gen,
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go m.janitor()
	return m
}

func (m *Manager) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for id, e := range m.sessions {
				if now.After(e.expiry) {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}
}

// Close stops the expiry janitor.
func (m *Manager) Close() {
	close(m.done)
}

// Create starts a fresh session in the search view.
func (m *Manager) Create() *State {
	st := newState(uuid.New().String())
	m.mu.Lock()
	m.sessions[st.ID] = &entry{state: st, expiry: time.Now().Add(m.ttl)}
	m.mu.Unlock()
	return st.snapshot()
}

// Get returns the current view state.
func (m *Manager) Get(id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return st.snapshot(), nil
}

// lookup must be called with the lock held. It refreshes the idle expiry.
func (m *Manager) lookup(id string) (*State, error) {
	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.expiry = time.Now().Add(m.ttl)
	return e.state, nil
}

// Search runs the destination search flow: mark the session searching, clear
// prior results, attempt the live call, and on any failure filter the fixed
// fallback list. The search always terminates with IsSearching false and a
// defined (possibly empty) destination list.
//
// Overlapping searches on one session are deliberately unguarded — the lock
// is released around the network call and the last search to resolve wins.
func (m *Manager) Search(ctx context.Context, id, query string) (*State, error) {
	m.mu.Lock()
	st, err := m.lookup(id)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	st.IsSearching = true
	st.SearchPerformed = true
	st.Destinations = nil
	st.CurrentView = ViewSearch
	st.SelectedDestination = nil
	st.FlightOffers = nil
	st.HotelOffers = nil
	st.ActiveTab = TabOverview
	resetBooking(st)
	m.mu.Unlock()

	var results []services.Destination
	if m.api != nil {
		live, searchErr := m.api.SearchDestinations(ctx, query)
		if searchErr != nil {
			log.Printf("⚠️  destination search failed: %v — using fallback", searchErr)
			results = services.FilterDestinations(query)
		} else {
			results = live
		}
	} else {
		results = services.FilterDestinations(query)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// The session may have expired while the call was in flight.
	st2, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	st2.Destinations = results
	st2.IsSearching = false
	return st2.snapshot(), nil
}

// Select moves the session from search to details for the clicked
// destination and synthesizes fresh flight and hotel offers for it.
func (m *Manager) Select(id, destinationID string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	var dest *services.Destination
	for i := range st.Destinations {
		if st.Destinations[i].ID == destinationID {
			dest = &st.Destinations[i]
			break
		}
	}
	if dest == nil {
		return nil, fmt.Errorf("%w: %s", ErrDestinationNotFound, destinationID)
	}

	selected := *dest
	st.SelectedDestination = &selected
	st.CurrentView = ViewDetails
	st.ActiveTab = TabOverview
	// Offers are regenerated on every details mount, never cached.
	st.FlightOffers = m.gen.FlightOffers(selected.Name)
	st.HotelOffers = m.gen.HotelOffers(selected.Name)
	return st.snapshot(), nil
}

// Back returns the session to the search view, clearing the selection and
// everything that hung off it.
func (m *Manager) Back(id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	st.CurrentView = ViewSearch
	st.SelectedDestination = nil
	st.FlightOffers = nil
	st.HotelOffers = nil
	st.ActiveTab = TabOverview
	st.ShowBookingModal = false
	st.BookingType = ""
	st.SelectedOffer = nil
	st.BookingForm = emptyForm()
	return st.snapshot(), nil
}

// SetTab switches the active details tab. Tabs cycle freely.
func (m *Manager) SetTab(id string, tab Tab) (*State, error) {
	switch tab {
	case TabOverview, TabFlights, TabHotels:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTab, tab)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	if st.CurrentView != ViewDetails {
		return nil, ErrNotInDetails
	}
	st.ActiveTab = tab
	return st.snapshot(), nil
}

// OpenBooking captures the clicked offer and opens the booking modal.
func (m *Manager) OpenBooking(id string, bookingType BookingType, offerID string) (*State, error) {
	if bookingType != BookingFlight && bookingType != BookingHotel {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBookingType, bookingType)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	if st.CurrentView != ViewDetails {
		return nil, ErrNotInDetails
	}

	offer := &Offer{}
	switch bookingType {
	case BookingFlight:
		for i := range st.FlightOffers {
			if st.FlightOffers[i].ID == offerID {
				offer.Flight = &st.FlightOffers[i]
				break
			}
		}
		if offer.Flight == nil {
			return nil, fmt.Errorf("%w: %s", ErrOfferNotFound, offerID)
		}
	case BookingHotel:
		for i := range st.HotelOffers {
			if st.HotelOffers[i].Hotel.HotelID == offerID {
				offer.Hotel = &st.HotelOffers[i]
				break
			}
		}
		if offer.Hotel == nil {
			return nil, fmt.Errorf("%w: %s", ErrOfferNotFound, offerID)
		}
	}

	st.SelectedOffer = offer
	st.BookingType = bookingType
	st.ShowBookingModal = true
	return st.snapshot(), nil
}

// FormPatch carries partial booking-form edits; nil fields are untouched.
type FormPatch struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Passengers      *int    `json:"passengers"`
	CheckIn         *string `json:"checkIn"`
	CheckOut        *string `json:"checkOut"`
	SpecialRequests *string `json:"specialRequests"`
}

// UpdateForm applies partial edits to the booking form.
func (m *Manager) UpdateForm(id string, patch FormPatch) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	if !st.ShowBookingModal {
		return nil, ErrNoBookingInProgress
	}

	f := &st.BookingForm
	if patch.FirstName != nil {
		f.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		f.LastName = *patch.LastName
	}
	if patch.Email != nil {
		f.Email = *patch.Email
	}
	if patch.Phone != nil {
		f.Phone = *patch.Phone
	}
	if patch.Passengers != nil {
		f.Passengers = *patch.Passengers
	}
	if patch.CheckIn != nil {
		f.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		f.CheckOut = *patch.CheckOut
	}
	if patch.SpecialRequests != nil {
		f.SpecialRequests = *patch.SpecialRequests
	}
	return st.snapshot(), nil
}

// SubmitBooking acknowledges the booking and resets the modal state. Nothing
// is persisted and no reservation exists afterward — the acknowledgment
// message is the whole effect.
func (m *Manager) SubmitBooking(id string) (string, *State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.lookup(id)
	if err != nil {
		return "", nil, err
	}
	if !st.ShowBookingModal {
		return "", nil, ErrNoBookingInProgress
	}
	if st.BookingForm.Email == "" {
		return "", nil, ErrEmailRequired
	}

	message := fmt.Sprintf("Booking confirmed! You will receive a confirmation email at %s", st.BookingForm.Email)
	resetBooking(st)
	return message, st.snapshot(), nil
}

// CancelBooking closes the modal and resets the form.
func (m *Manager) CancelBooking(id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	resetBooking(st)
	return st.snapshot(), nil
}

func resetBooking(st *State) {
	st.ShowBookingModal = false
	st.BookingType = ""
	st.SelectedOffer = nil
	st.BookingForm = emptyForm()
}
