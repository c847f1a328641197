package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRand cycles through fixed sequences so generated offers are repeatable.
type fakeRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0.5
	}
	v := f.floats[f.fi%len(f.floats)]
	f.fi++
	return v
}

func (f *fakeRand) Intn(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[f.ii%len(f.ints)] % n
	f.ii++
	return v
}

func fixedGenerator(rng Rand) *Generator {
	g := NewGenerator(rng)
	g.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return g
}

func TestFlightOffersSortedAndCapped(t *testing.T) {
	g := fixedGenerator(&fakeRand{floats: []float64{0.9, 0.1, 0.5, 0.3, 0.7, 0.2, 0.6, 0.4, 0.8}})

	// Paris has 3 routes with 3 carriers each; the cap trims 9 down to 6.
	offers := g.FlightOffers("Paris")
	require.Len(t, offers, 6)

	for i := 1; i < len(offers); i++ {
		assert.LessOrEqual(t, numericPrice(offers[i-1].Price.Total), numericPrice(offers[i].Price.Total))
	}
}

func TestFlightOffersPriceRange(t *testing.T) {
	g := fixedGenerator(NewSafeRand())
	for _, offer := range g.FlightOffers("London") {
		price := numericPrice(offer.Price.Total)
		assert.GreaterOrEqual(t, price, 350.0)
		assert.Less(t, price, 750.0)
		assert.Equal(t, "USD", offer.Price.Currency)
	}
}

func TestFlightOffersSegmentFields(t *testing.T) {
	g := fixedGenerator(&fakeRand{floats: []float64{0.5}, ints: []int{30}})
	offers := g.FlightOffers("Dubai")
	require.NotEmpty(t, offers)

	for _, offer := range offers {
		require.Len(t, offer.Itineraries, 1)
		require.Len(t, offer.Itineraries[0].Segments, 1)
		seg := offer.Itineraries[0].Segments[0]

		assert.Equal(t, "DXB", seg.Arrival.IataCode)
		assert.Equal(t, "Dubai", seg.Arrival.CityName)
		assert.Equal(t, offer.CarrierCode, seg.CarrierCode)
		assert.Equal(t, AirlineName(offer.CarrierCode), offer.Airline)
		assert.Equal(t, AircraftCode(offer.CarrierCode), seg.Aircraft.Code)

		dep, err := time.Parse(time.RFC3339, seg.Departure.At)
		require.NoError(t, err)
		arr, err := time.Parse(time.RFC3339, seg.Arrival.At)
		require.NoError(t, err)
		assert.True(t, arr.After(dep), "arrival %v not after departure %v", arr, dep)
	}
}

func TestFlightOffersStopsThreshold(t *testing.T) {
	// Second Float64 call per offer decides stops; above 0.7 means one stop.
	direct := fixedGenerator(&fakeRand{floats: []float64{0.5, 0.5}})
	for _, offer := range direct.FlightOffers("Tokyo") {
		assert.Equal(t, 0, offer.Itineraries[0].Segments[0].Stops)
	}

	oneStop := fixedGenerator(&fakeRand{floats: []float64{0.5, 0.9}})
	for _, offer := range oneStop.FlightOffers("Tokyo") {
		assert.Equal(t, 1, offer.Itineraries[0].Segments[0].Stops)
	}
}

func TestFlightOffersBadDurationLeavesArrivalAtDeparture(t *testing.T) {
	flightRoutes["Nowhere"] = []FlightRoute{
		{From: "JFK", To: "NWH", Carriers: []string{"AA"}, Duration: "about 8 hours"},
	}
	defer delete(flightRoutes, "Nowhere")

	g := fixedGenerator(&fakeRand{floats: []float64{0.5, 0.5}})
	offers := g.FlightOffers("Nowhere")
	require.Len(t, offers, 1)

	seg := offers[0].Itineraries[0].Segments[0]
	assert.Equal(t, seg.Departure.At, seg.Arrival.At)
	assert.Equal(t, "about 8 hours", offers[0].Itineraries[0].Duration)
}

func TestFlightOffersUnknownDestinationUsesGenericRoutes(t *testing.T) {
	g := fixedGenerator(NewSafeRand())
	offers := g.FlightOffers("Atlantis")
	require.Len(t, offers, 6)
	for _, offer := range offers {
		assert.Equal(t, "XXX", offer.Itineraries[0].Segments[0].Arrival.IataCode)
		assert.Equal(t, "Atlantis", offer.Itineraries[0].Segments[0].Arrival.CityName)
	}
}

func TestHotelOffersPricePerturbation(t *testing.T) {
	// Float64 of 0.5 puts the price exactly at the base rate.
	g := fixedGenerator(&fakeRand{floats: []float64{0.5}, ints: []int{7}})
	offers := g.HotelOffers("Atlantis")
	require.Len(t, offers, 3)

	bases := []float64{400, 180, 80}
	for i, offer := range offers {
		require.Len(t, offer.Offers, 1)
		assert.Equal(t, fmt.Sprintf("%.2f", bases[i]), offer.Offers[0].Price.Total)
		assert.Equal(t, "USD", offer.Offers[0].Price.Currency)
	}
}

func TestHotelOffersRoomAndCancellation(t *testing.T) {
	g := fixedGenerator(&fakeRand{floats: []float64{0.5}, ints: []int{7}})
	offers := g.HotelOffers("Atlantis")
	require.Len(t, offers, 3)

	luxury := offers[0].Offers[0]
	assert.Equal(t, "SUITE", luxury.Room.Type)
	assert.Equal(t, "LUXURY_SUITE", luxury.Room.TypeEstimated.Category)
	assert.Equal(t, "Free cancellation until 24h before check-in", luxury.Policies.Cancellation)

	business := offers[1].Offers[0]
	assert.Equal(t, "DELUXE", business.Room.Type)
	assert.Equal(t, "DELUXE_ROOM", business.Room.TypeEstimated.Category)

	budget := offers[2].Offers[0]
	assert.Equal(t, "STANDARD", budget.Room.Type)
	assert.Equal(t, "STANDARD_ROOM", budget.Room.TypeEstimated.Category)
	assert.Equal(t, "Non-refundable", budget.Policies.Cancellation)
}

func TestHotelOffersIdentifiersAndImage(t *testing.T) {
	g := fixedGenerator(&fakeRand{floats: []float64{0.5}, ints: []int{7}})
	offers := g.HotelOffers("Paris")
	require.Len(t, offers, 6)

	for i, offer := range offers {
		assert.Equal(t, fmt.Sprintf("hotel-%d", i), offer.Hotel.HotelID)
		assert.Equal(t, fmt.Sprintf("offer-%d", i), offer.Offers[0].ID)
		assert.Equal(t, HotelImage(offer.Hotel.Name, offer.Hotel.Type), offer.Hotel.Image)
		assert.Equal(t, "SRS", offer.Offers[0].RateFamilyEstimated.Code)
		assert.Equal(t, "P", offer.Offers[0].RateFamilyEstimated.Type)
		assert.Regexp(t, `^\+\d{2}-\d{3}-\d{4}$`, offer.Hotel.Contact.Phone)
	}
}

func TestNewGeneratorDefaultsToSafeRand(t *testing.T) {
	g := NewGenerator(nil)
	require.NotNil(t, g)
	assert.NotEmpty(t, g.FlightOffers("Paris"))
}
