package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// ─── Offer Types ──────────────────────────────────────────────────────────────
//
// The offer shapes mirror the Amadeus response structures so that generated
// and live offers render identically.

type Money struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type FlightPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
	CityName string `json:"cityName"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Segment struct {
	Departure   FlightPoint `json:"departure"`
	Arrival     FlightPoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Aircraft    Aircraft    `json:"aircraft"`
	Stops       int         `json:"stops"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type FlightOffer struct {
	ID          string      `json:"id"`
	Price       Money       `json:"price"`
	Airline     string      `json:"airline"`
	CarrierCode string      `json:"carrierCode"`
	Itineraries []Itinerary `json:"itineraries"`
}

type HotelContact struct {
	Phone string `json:"phone"`
}

type HotelInfo struct {
	HotelID   string       `json:"hotelId"`
	Name      string       `json:"name"`
	Rating    int          `json:"rating"`
	Type      string       `json:"type"`
	Amenities []string     `json:"amenities"`
	Contact   HotelContact `json:"contact"`
	Image     string       `json:"image"`
}

type RoomEstimate struct {
	Category string `json:"category"`
}

type Room struct {
	Type          string       `json:"type"`
	TypeEstimated RoomEstimate `json:"typeEstimated"`
}

type RateFamily struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

type Policies struct {
	Cancellation string `json:"cancellation"`
}

type RoomOffer struct {
	ID                  string     `json:"id"`
	Price               Money      `json:"price"`
	Room                Room       `json:"room"`
	RateFamilyEstimated RateFamily `json:"rateFamilyEstimated"`
	Policies            Policies   `json:"policies"`
}

type HotelOffer struct {
	Hotel  HotelInfo   `json:"hotel"`
	Offers []RoomOffer `json:"offers"`
}

// ─── Generator ────────────────────────────────────────────────────────────────

// durationPattern matches the exact ISO 8601 token shape the route tables
// carry. Tokens that don't match leave the arrival time untouched.
var durationPattern = regexp.MustCompile(`PT(\d+)H(\d+)M`)

// Generator synthesizes plausible flight and hotel offers from the lookup
// tables. Aside from the injected Rand it is a pure function of the
// destination name: no I/O, no error path, any input yields a valid set.
type Generator struct {
	rng Rand
	now func() time.Time
}

func NewGenerator(rng Rand) *Generator {
	if rng == nil {
		rng = NewSafeRand()
	}
	return &Generator{rng: rng, now: time.Now}
}

// FlightOffers builds one offer per carrier per route serving the
// destination, sorted ascending by price and capped at six.
func (g *Generator) FlightOffers(destinationName string) []FlightOffer {
	routes := DestinationRoutes(destinationName)
	offers := make([]FlightOffer, 0, len(routes)*3)

	base := g.now().AddDate(0, 0, 7)
	for routeIndex, route := range routes {
		for carrierIndex, carrier := range route.Carriers {
			price := 350 + g.rng.Float64()*400

			departure := time.Date(base.Year(), base.Month(), base.Day(),
				8+carrierIndex*4, g.rng.Intn(60), 0, 0, base.Location())

			arrival := departure
			if m := durationPattern.FindStringSubmatch(route.Duration); m != nil {
				hours, _ := strconv.Atoi(m[1])
				minutes, _ := strconv.Atoi(m[2])
				arrival = departure.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
			}

			stops := 0
			if g.rng.Float64() > 0.7 {
				stops = 1
			}

			offers = append(offers, FlightOffer{
				ID:          fmt.Sprintf("%d-%d", routeIndex, carrierIndex),
				Price:       Money{Total: formatPrice(price), Currency: "USD"},
				Airline:     AirlineName(carrier),
				CarrierCode: carrier,
				Itineraries: []Itinerary{{
					Duration: route.Duration,
					Segments: []Segment{{
						Departure: FlightPoint{
							IataCode: route.From,
							At:       departure.Format(time.RFC3339),
							CityName: OriginCityName(route.From),
						},
						Arrival: FlightPoint{
							IataCode: route.To,
							At:       arrival.Format(time.RFC3339),
							CityName: destinationName,
						},
						CarrierCode: carrier,
						Aircraft:    Aircraft{Code: AircraftCode(carrier)},
						Stops:       stops,
					}},
				}},
			})
		}
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return numericPrice(offers[i].Price.Total) < numericPrice(offers[j].Price.Total)
	})
	if len(offers) > 6 {
		offers = offers[:6]
	}
	return offers
}

// HotelOffers builds one offer per hotel template for the destination, with
// a ±20% price perturbation around the base rate.
func (g *Generator) HotelOffers(destinationName string) []HotelOffer {
	templates := DestinationHotels(destinationName)
	offers := make([]HotelOffer, 0, len(templates))

	for index, hotel := range templates {
		price := hotel.BasePrice * (0.8 + g.rng.Float64()*0.4)
		roomType, roomCategory := roomForType(hotel.Type)

		cancellation := "Free cancellation until 24h before check-in"
		if hotel.Type == "BUDGET" {
			cancellation = "Non-refundable"
		}

		offers = append(offers, HotelOffer{
			Hotel: HotelInfo{
				HotelID:   fmt.Sprintf("hotel-%d", index),
				Name:      hotel.Name,
				Rating:    hotel.Rating,
				Type:      hotel.Type,
				Amenities: hotel.Amenities,
				Contact:   HotelContact{Phone: g.syntheticPhone()},
				Image:     HotelImage(hotel.Name, hotel.Type),
			},
			Offers: []RoomOffer{{
				ID:                  fmt.Sprintf("offer-%d", index),
				Price:               Money{Total: formatPrice(price), Currency: "USD"},
				Room:                Room{Type: roomType, TypeEstimated: RoomEstimate{Category: roomCategory}},
				RateFamilyEstimated: RateFamily{Code: "SRS", Type: "P"},
				Policies:            Policies{Cancellation: cancellation},
			}},
		})
	}
	return offers
}

// syntheticPhone produces a +NN-NNN-NNNN placeholder, not a real contact.
func (g *Generator) syntheticPhone() string {
	return fmt.Sprintf("+%d-%d-%d",
		g.rng.Intn(90)+10, g.rng.Intn(900)+100, g.rng.Intn(9000)+1000)
}

func roomForType(hotelType string) (string, string) {
	switch hotelType {
	case "LUXURY":
		return "SUITE", "LUXURY_SUITE"
	case "BUDGET":
		return "STANDARD", "STANDARD_ROOM"
	default:
		return "DELUXE", "DELUXE_ROOM"
	}
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func numericPrice(s string) float64 {
	p, _ := strconv.ParseFloat(s, 64)
	return p
}
