package services

import "strings"

// ─── Types ────────────────────────────────────────────────────────────────────

type Address struct {
	CountryName string `json:"countryName"`
	StateCode   string `json:"stateCode,omitempty"`
}

type Destination struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SubType     string  `json:"subType"`
	IataCode    string  `json:"iataCode"`
	Address     Address `json:"address"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type FlightRoute struct {
	From     string
	To       string
	Carriers []string
	Duration string // ISO 8601 token, e.g. "PT7H15M"
}

type HotelTemplate struct {
	Name      string
	Rating    int
	Type      string // LUXURY | BOUTIQUE | BUSINESS | RESORT | BUDGET
	BasePrice float64
	Amenities []string
}

// ─── Airlines ─────────────────────────────────────────────────────────────────

var airlineNames = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"UA": "United Airlines",
	"AF": "Air France",
	"LH": "Lufthansa",
	"BA": "British Airways",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"SQ": "Singapore Airlines",
	"TK": "Turkish Airlines",
	"KL": "KLM Royal Dutch Airlines",
	"VS": "Virgin Atlantic",
	"AC": "Air Canada",
	"NH": "All Nippon Airways",
	"JL": "Japan Airlines",
}

// AirlineName returns the full airline name for an IATA carrier code.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return "Airline"
}

// AircraftCode returns the aircraft flown by a carrier on long-haul routes.
func AircraftCode(carrier string) string {
	switch carrier {
	case "EK":
		return "A380"
	case "BA":
		return "787"
	case "AF":
		return "A350"
	default:
		return "777"
	}
}

// OriginCityName maps known US origin airports to their city names.
func OriginCityName(iata string) string {
	switch iata {
	case "JFK":
		return "New York"
	case "LAX":
		return "Los Angeles"
	case "ORD":
		return "Chicago"
	case "SFO":
		return "San Francisco"
	default:
		return "Origin"
	}
}

// ─── Flight Routes ────────────────────────────────────────────────────────────

var flightRoutes = map[string][]FlightRoute{
	"Paris": {
		{From: "JFK", To: "CDG", Carriers: []string{"AF", "DL", "AA"}, Duration: "PT7H15M"},
		{From: "LAX", To: "CDG", Carriers: []string{"AF", "UA", "VS"}, Duration: "PT11H30M"},
		{From: "ORD", To: "CDG", Carriers: []string{"AA", "UA", "AF"}, Duration: "PT8H45M"},
	},
	"London": {
		{From: "JFK", To: "LHR", Carriers: []string{"BA", "AA", "VS"}, Duration: "PT6H50M"},
		{From: "LAX", To: "LHR", Carriers: []string{"BA", "UA", "VS"}, Duration: "PT11H15M"},
		{From: "ORD", To: "LHR", Carriers: []string{"BA", "AA", "UA"}, Duration: "PT8H20M"},
	},
	"Tokyo": {
		{From: "JFK", To: "NRT", Carriers: []string{"NH", "JL", "UA"}, Duration: "PT14H30M"},
		{From: "LAX", To: "NRT", Carriers: []string{"NH", "JL", "AA"}, Duration: "PT11H45M"},
		{From: "SFO", To: "NRT", Carriers: []string{"NH", "JL", "UA"}, Duration: "PT10H55M"},
	},
	"Dubai": {
		{From: "JFK", To: "DXB", Carriers: []string{"EK", "QR"}, Duration: "PT12H30M"},
		{From: "LAX", To: "DXB", Carriers: []string{"EK", "QR"}, Duration: "PT16H15M"},
		{From: "ORD", To: "DXB", Carriers: []string{"EK", "QR"}, Duration: "PT13H45M"},
	},
	"Singapore": {
		{From: "JFK", To: "SIN", Carriers: []string{"SQ", "NH"}, Duration: "PT18H30M"},
		{From: "LAX", To: "SIN", Carriers: []string{"SQ", "UA"}, Duration: "PT17H15M"},
		{From: "SFO", To: "SIN", Carriers: []string{"SQ", "UA"}, Duration: "PT16H45M"},
	},
}

// DestinationRoutes returns the flight routes serving a destination.
// Unknown destinations get a generic two-route default.
func DestinationRoutes(destinationName string) []FlightRoute {
	if routes, ok := flightRoutes[destinationName]; ok {
		return routes
	}
	return []FlightRoute{
		{From: "JFK", To: "XXX", Carriers: []string{"AA", "DL", "UA"}, Duration: "PT8H00M"},
		{From: "LAX", To: "XXX", Carriers: []string{"AA", "DL", "UA"}, Duration: "PT12H00M"},
	}
}

// ─── Hotels ───────────────────────────────────────────────────────────────────

var destinationHotels = map[string][]HotelTemplate{
	"Nairobi": {
		{Name: "Villa Rosa Kempinski", Rating: 5, Type: "LUXURY", BasePrice: 350, Amenities: []string{"Spa", "Fine Dining", "City Views", "Business Center"}},
		{Name: "The Sarova Stanley", Rating: 5, Type: "LUXURY", BasePrice: 320, Amenities: []string{"Historic Hotel", "Thorn Tree Café", "Central Location"}},
		{Name: "Fairmont The Norfolk Hotel", Rating: 5, Type: "LUXURY", BasePrice: 400, Amenities: []string{"Colonial Heritage", "Gardens", "Lord Delamere Terrace"}},
		{Name: "Hemingways Nairobi", Rating: 4, Type: "BOUTIQUE", BasePrice: 280, Amenities: []string{"Karen Location", "Boutique Luxury", "Elephant Orphanage nearby"}},
		{Name: "Best Western Plus Meridian Hotel", Rating: 4, Type: "BUSINESS", BasePrice: 180, Amenities: []string{"Business Center", "Airport Shuttle", "Modern Amenities"}},
		{Name: "Wildebeest Eco Camp", Rating: 3, Type: "BUDGET", BasePrice: 65, Amenities: []string{"Eco-Friendly", "Safari Access", "Cultural Experience"}},
	},
	"Mombasa": {
		{Name: "Serena Beach Resort & Spa", Rating: 5, Type: "RESORT", BasePrice: 420, Amenities: []string{"Beach Front", "Spa", "Water Sports", "Coral Reef Access"}},
		{Name: "Baobab Beach Resort", Rating: 5, Type: "RESORT", BasePrice: 380, Amenities: []string{"All Inclusive", "Private Beach", "Multiple Pools", "Kids Club"}},
		{Name: "Voyager Beach Resort", Rating: 4, Type: "RESORT", BasePrice: 320, Amenities: []string{"Pirate Ship Design", "Beach Access", "Family Friendly"}},
		{Name: "Swahili Beach Resort", Rating: 4, Type: "BOUTIQUE", BasePrice: 280, Amenities: []string{"Cultural Design", "Ocean Views", "Swahili Architecture"}},
		{Name: "PrideInn Paradise Beach Resort", Rating: 4, Type: "BUSINESS", BasePrice: 220, Amenities: []string{"Conference Facilities", "Beach Access", "Good Value"}},
		{Name: "Backpackers Castle", Rating: 3, Type: "BUDGET", BasePrice: 45, Amenities: []string{"Backpacker Friendly", "Shared Facilities", "Beach Nearby"}},
	},
	"Cape Town": {
		{Name: "The Table Bay Hotel", Rating: 5, Type: "LUXURY", BasePrice: 450, Amenities: []string{"Waterfront Location", "Table Mountain Views", "Marina Access"}},
		{Name: "Mount Nelson Hotel", Rating: 5, Type: "LUXURY", BasePrice: 520, Amenities: []string{"Pink Palace", "Historic Gardens", "Afternoon Tea"}},
		{Name: "The Silo Hotel", Rating: 5, Type: "LUXURY", BasePrice: 680, Amenities: []string{"Industrial Chic", "Art Museum", "Rooftop Views"}},
		{Name: "The Taj Cape Town", Rating: 5, Type: "LUXURY", BasePrice: 380, Amenities: []string{"Historic Building", "Spa", "City Center"}},
		{Name: "Cape Grace Hotel", Rating: 4, Type: "BOUTIQUE", BasePrice: 320, Amenities: []string{"Marina Views", "Whisky Library", "Yacht Access"}},
		{Name: "Once in Cape Town", Rating: 3, Type: "BUDGET", BasePrice: 85, Amenities: []string{"Modern Hostel", "City Bowl", "Social Areas"}},
	},
	"Johannesburg": {
		{Name: "Four Seasons Hotel The Westcliff", Rating: 5, Type: "LUXURY", BasePrice: 420, Amenities: []string{"Clifftop Location", "Spa", "City Views", "Fine Dining"}},
		{Name: "The Saxon Hotel", Rating: 5, Type: "LUXURY", BasePrice: 380, Amenities: []string{"Villa Accommodation", "Award Winning", "Celebrity Favorite"}},
		{Name: "InterContinental Johannesburg", Rating: 5, Type: "LUXURY", BasePrice: 350, Amenities: []string{"O.R. Tambo Location", "Convention Center", "Business Focus"}},
		{Name: "The Peech Hotel", Rating: 4, Type: "BOUTIQUE", BasePrice: 180, Amenities: []string{"Eco-Friendly", "Melville Location", "Art Focus"}},
		{Name: "City Lodge Sandton", Rating: 4, Type: "BUSINESS", BasePrice: 120, Amenities: []string{"Business District", "Conference Facilities", "Reliable Service"}},
		{Name: "Curiocity Backpackers", Rating: 3, Type: "BUDGET", BasePrice: 35, Amenities: []string{"Maboneng Location", "Arts District", "Budget Friendly"}},
	},
	"Marrakech": {
		{Name: "La Mamounia", Rating: 5, Type: "LUXURY", BasePrice: 680, Amenities: []string{"Palace Hotel", "Royal Gardens", "Legendary Luxury", "Historic Heritage"}},
		{Name: "Royal Mansour Marrakech", Rating: 5, Type: "LUXURY", BasePrice: 1200, Amenities: []string{"Royal Palace", "Private Riads", "Ultimate Luxury"}},
		{Name: "Four Seasons Resort Marrakech", Rating: 5, Type: "RESORT", BasePrice: 520, Amenities: []string{"Resort Setting", "Spa", "Atlas Mountain Views"}},
		{Name: "Riad Kniza", Rating: 4, Type: "BOUTIQUE", BasePrice: 280, Amenities: []string{"Traditional Riad", "Medina Location", "Authentic Experience"}},
		{Name: "Hotel Almas", Rating: 4, Type: "BUSINESS", BasePrice: 150, Amenities: []string{"Modern Hotel", "Gueliz District", "Business Amenities"}},
		{Name: "Equity Point Marrakech", Rating: 3, Type: "BUDGET", BasePrice: 45, Amenities: []string{"Hostel Style", "Medina Access", "Social Atmosphere"}},
	},
	"Casablanca": {
		{Name: "Four Seasons Hotel Casablanca", Rating: 5, Type: "LUXURY", BasePrice: 380, Amenities: []string{"Ocean Views", "Business District", "Modern Luxury"}},
		{Name: "Hyatt Regency Casablanca", Rating: 5, Type: "LUXURY", BasePrice: 320, Amenities: []string{"Twin Center Location", "Spa", "City Views"}},
		{Name: "Hotel & Spa Le Doge", Rating: 4, Type: "BOUTIQUE", BasePrice: 280, Amenities: []string{"Relais & Châteaux", "Spa Focus", "Luxury Boutique"}},
		{Name: "Barceló Anfa Casablanca", Rating: 4, Type: "BUSINESS", BasePrice: 180, Amenities: []string{"Business Center", "Modern Design", "Central Location"}},
		{Name: "Hotel Central", Rating: 3, Type: "BUSINESS", BasePrice: 120, Amenities: []string{"Downtown Location", "Historic Building", "Good Value"}},
		{Name: "Youth Hostel Casablanca", Rating: 2, Type: "BUDGET", BasePrice: 35, Amenities: []string{"Budget Option", "Shared Facilities", "City Center"}},
	},
	"Paris": {
		{Name: "The Ritz Paris", Rating: 5, Type: "LUXURY", BasePrice: 850, Amenities: []string{"Spa", "Fine Dining", "Concierge", "Fitness Center"}},
		{Name: "Hotel Plaza Athénée", Rating: 5, Type: "LUXURY", BasePrice: 780, Amenities: []string{"Spa", "Michelin Restaurant", "Shopping Access"}},
		{Name: "Le Meurice", Rating: 5, Type: "LUXURY", BasePrice: 720, Amenities: []string{"Palace Service", "Art Collection", "Gourmet Restaurant"}},
		{Name: "Hotel des Grands Boulevards", Rating: 4, Type: "BOUTIQUE", BasePrice: 320, Amenities: []string{"Rooftop Bar", "Modern Design", "Central Location"}},
		{Name: "Hotel Malte Opera", Rating: 4, Type: "BUSINESS", BasePrice: 220, Amenities: []string{"Business Center", "WiFi", "Near Metro"}},
		{Name: "Hotel Jeanne d'Arc", Rating: 3, Type: "BUDGET", BasePrice: 150, Amenities: []string{"Historic Building", "WiFi", "Continental Breakfast"}},
	},
	"London": {
		{Name: "The Savoy", Rating: 5, Type: "LUXURY", BasePrice: 650, Amenities: []string{"Thames Views", "Afternoon Tea", "Butler Service"}},
		{Name: "Claridge's", Rating: 5, Type: "LUXURY", BasePrice: 600, Amenities: []string{"Art Deco Design", "Michelin Dining", "Spa"}},
		{Name: "The Langham", Rating: 5, Type: "LUXURY", BasePrice: 550, Amenities: []string{"Historic Luxury", "Chuan Spa", "Artesian Bar"}},
		{Name: "Hotel 41", Rating: 4, Type: "BOUTIQUE", BasePrice: 380, Amenities: []string{"Buckingham Palace Views", "Personal Service", "Executive Lounge"}},
		{Name: "Premier Inn London", Rating: 3, Type: "BUSINESS", BasePrice: 180, Amenities: []string{"Comfortable Beds", "Family Friendly", "Good Value"}},
		{Name: "YHA London Central", Rating: 2, Type: "BUDGET", BasePrice: 85, Amenities: []string{"Shared Facilities", "Social Areas", "Budget Friendly"}},
	},
	"Tokyo": {
		{Name: "The Peninsula Tokyo", Rating: 5, Type: "LUXURY", BasePrice: 750, Amenities: []string{"Imperial Palace Views", "Spa", "Michelin Dining"}},
		{Name: "Aman Tokyo", Rating: 5, Type: "LUXURY", BasePrice: 800, Amenities: []string{"Minimalist Design", "Aman Spa", "Garden Views"}},
		{Name: "Park Hyatt Tokyo", Rating: 5, Type: "LUXURY", BasePrice: 650, Amenities: []string{"City Views", "New York Grill", "Lost in Translation Fame"}},
		{Name: "Hotel Gracery Shinjuku", Rating: 4, Type: "BUSINESS", BasePrice: 280, Amenities: []string{"Godzilla Head", "Central Shinjuku", "Modern Comfort"}},
		{Name: "Capsule Inn Akihabara", Rating: 3, Type: "BUDGET", BasePrice: 45, Amenities: []string{"Capsule Experience", "Tech District", "Compact Comfort"}},
		{Name: "Hostel Bed Tokyo", Rating: 2, Type: "BUDGET", BasePrice: 35, Amenities: []string{"Backpacker Friendly", "Shared Kitchen", "Social Atmosphere"}},
	},
	"New York": {
		{Name: "The Plaza", Rating: 5, Type: "LUXURY", BasePrice: 750, Amenities: []string{"Fifth Avenue", "Historic Luxury", "Central Park Views"}},
		{Name: "The St. Regis New York", Rating: 5, Type: "LUXURY", BasePrice: 680, Amenities: []string{"Butler Service", "Midtown Location", "Legendary Service"}},
		{Name: "The High Line Hotel", Rating: 4, Type: "BOUTIQUE", BasePrice: 380, Amenities: []string{"Chelsea Location", "Historic Building", "Boutique Charm"}},
		{Name: "Pod Hotels", Rating: 3, Type: "BUSINESS", BasePrice: 220, Amenities: []string{"Modern Design", "Multiple Locations", "Tech-Savvy"}},
		{Name: "HI New York City Hostel", Rating: 2, Type: "BUDGET", BasePrice: 65, Amenities: []string{"Upper West Side", "Budget Travel", "Social Areas"}},
	},
	"Sydney": {
		{Name: "Park Hyatt Sydney", Rating: 5, Type: "LUXURY", BasePrice: 650, Amenities: []string{"Opera House Views", "Harbour Location", "Iconic Views"}},
		{Name: "The Langham Sydney", Rating: 5, Type: "LUXURY", BasePrice: 520, Amenities: []string{"The Rocks Location", "Observatory Hotel", "Historic Luxury"}},
		{Name: "QT Sydney", Rating: 4, Type: "BOUTIQUE", BasePrice: 320, Amenities: []string{"Designer Hotel", "State Theatre", "Artistic Design"}},
		{Name: "Shangri-La Hotel Sydney", Rating: 5, Type: "LUXURY", BasePrice: 580, Amenities: []string{"Circular Quay", "Harbour Bridge Views", "Asian Hospitality"}},
		{Name: "Wake Up! Sydney Central", Rating: 2, Type: "BUDGET", BasePrice: 45, Amenities: []string{"Backpacker Central", "Social Areas", "Budget Friendly"}},
	},
	"Reykjavik": {
		{Name: "Hotel Borg", Rating: 5, Type: "LUXURY", BasePrice: 380, Amenities: []string{"Art Deco Design", "Downtown Location", "Historic Luxury"}},
		{Name: "Canopy by Hilton Reykjavik", Rating: 4, Type: "BOUTIQUE", BasePrice: 280, Amenities: []string{"Modern Design", "City Center", "Local Culture"}},
		{Name: "Center Hotels Plaza", Rating: 4, Type: "BUSINESS", BasePrice: 220, Amenities: []string{"Central Location", "Business Amenities", "Nordic Design"}},
		{Name: "KEX Hostel", Rating: 3, Type: "BUDGET", BasePrice: 85, Amenities: []string{"Hip Hostel", "Social Scene", "Local Vibe"}},
	},
}

// DestinationHotels returns the hotel templates for a destination. Unknown
// destinations get a generic set parameterized by the display name.
func DestinationHotels(destinationName string) []HotelTemplate {
	if hotels, ok := destinationHotels[destinationName]; ok {
		return hotels
	}
	return []HotelTemplate{
		{Name: "Grand Hotel " + destinationName, Rating: 5, Type: "LUXURY", BasePrice: 400, Amenities: []string{"Luxury Service", "Fine Dining", "Spa"}},
		{Name: "City Inn " + destinationName, Rating: 4, Type: "BUSINESS", BasePrice: 180, Amenities: []string{"Business Center", "WiFi", "Central Location"}},
		{Name: "Budget Stay " + destinationName, Rating: 3, Type: "BUDGET", BasePrice: 80, Amenities: []string{"Clean Rooms", "WiFi", "Good Value"}},
	}
}

// ─── Hotel Images ─────────────────────────────────────────────────────────────

var hotelImagePools = map[string][4]string{
	"LUXURY": {
		"https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=400&h=300&fit=crop",
	},
	"BOUTIQUE": {
		"https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
	},
	"BUSINESS": {
		"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1551632811-561732d1e306?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1559508551-44bff1de756b?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1584132967334-10e028bd69f7?w=400&h=300&fit=crop",
	},
	"RESORT": {
		"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1584132915807-fd1f5fbc078f?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1568084680786-a84f91d1153c?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1540541338287-41700207dee6?w=400&h=300&fit=crop",
	},
	"BUDGET": {
		"https://images.unsplash.com/photo-1522798514-97ceb8c4ea1d?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1586611292717-f828b167408c?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1590490360182-c33d57733427?w=400&h=300&fit=crop",
	},
}

// HotelImage picks an image for a hotel. Selection is deterministic: the sum
// of the hotel name's character codes modulo the pool size, so the same name
// always maps to the same image within its type's pool. Unknown types use
// the BUSINESS pool.
func HotelImage(hotelName, hotelType string) string {
	pool, ok := hotelImagePools[hotelType]
	if !ok {
		pool = hotelImagePools["BUSINESS"]
	}
	sum := 0
	for _, r := range hotelName {
		sum += int(r)
	}
	return pool[sum%len(pool)]
}

// ─── Fallback Destinations ────────────────────────────────────────────────────

var fallbackDestinations = []Destination{
	{ID: "1", Name: "Nairobi", SubType: "CITY", IataCode: "NBO",
		Address:     Address{CountryName: "Kenya", StateCode: "NAI"},
		Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=500&fit=crop&q=80",
		Description: "The Green City in the Sun, gateway to African safari adventures"},
	{ID: "2", Name: "Paris", SubType: "CITY", IataCode: "CDG",
		Address:     Address{CountryName: "France", StateCode: "IDF"},
		Image:       "https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=800&h=500&fit=crop&q=80",
		Description: "City of Light with iconic landmarks and romantic charm"},
	{ID: "3", Name: "Tokyo", SubType: "CITY", IataCode: "NRT",
		Address:     Address{CountryName: "Japan", StateCode: "TK"},
		Image:       "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800&h=500&fit=crop&q=80",
		Description: "Modern metropolis blending tradition with cutting-edge technology"},
	{ID: "4", Name: "Cape Town", SubType: "CITY", IataCode: "CPT",
		Address:     Address{CountryName: "South Africa", StateCode: "WC"},
		Image:       "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?w=800&h=500&fit=crop&q=80",
		Description: "Mother City with stunning Table Mountain and wine regions"},
	{ID: "5", Name: "New York", SubType: "CITY", IataCode: "JFK",
		Address:     Address{CountryName: "United States", StateCode: "NY"},
		Image:       "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800&h=500&fit=crop&q=80",
		Description: "The Big Apple - vibrant city that never sleeps"},
	{ID: "6", Name: "Reykjavik", SubType: "CITY", IataCode: "KEF",
		Address:     Address{CountryName: "Iceland", StateCode: "RE"},
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=500&fit=crop&q=80",
		Description: "Northern lights, geysers, and dramatic Nordic beauty"},
	{ID: "7", Name: "Sydney", SubType: "CITY", IataCode: "SYD",
		Address:     Address{CountryName: "Australia", StateCode: "NSW"},
		Image:       "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800&h=500&fit=crop&q=80",
		Description: "Harbour city with iconic Opera House and beautiful beaches"},
	{ID: "8", Name: "Marrakech", SubType: "CITY", IataCode: "RAK",
		Address:     Address{CountryName: "Morocco", StateCode: "MA"},
		Image:       "https://images.unsplash.com/photo-1539650116574-75c0c6d15e9e?w=800&h=500&fit=crop&q=80",
		Description: "Red City with vibrant souks and Atlas Mountain views"},
	{ID: "9", Name: "Mombasa", SubType: "CITY", IataCode: "MBA",
		Address:     Address{CountryName: "Kenya", StateCode: "MBA"},
		Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&h=500&fit=crop&q=80",
		Description: "Coastal paradise with beautiful beaches and Swahili culture"},
	{ID: "10", Name: "Johannesburg", SubType: "CITY", IataCode: "JNB",
		Address:     Address{CountryName: "South Africa", StateCode: "GP"},
		Image:       "https://images.unsplash.com/photo-1577948000111-9c970dfe3743?w=800&h=500&fit=crop&q=80",
		Description: "City of Gold with rich history and vibrant culture"},
	{ID: "11", Name: "Casablanca", SubType: "CITY", IataCode: "CMN",
		Address:     Address{CountryName: "Morocco", StateCode: "CA"},
		Image:       "https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=800&h=500&fit=crop&q=80",
		Description: "Economic capital with stunning Hassan II Mosque"},
	{ID: "12", Name: "London", SubType: "CITY", IataCode: "LHR",
		Address:     Address{CountryName: "United Kingdom", StateCode: "ENG"},
		Image:       "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&h=500&fit=crop&q=80",
		Description: "Historic capital with iconic landmarks and royal heritage"},
}

// FallbackDestinations returns a copy of the fixed twelve-city list used when
// the live destination search is unavailable.
func FallbackDestinations() []Destination {
	out := make([]Destination, len(fallbackDestinations))
	copy(out, fallbackDestinations)
	return out
}

// FilterDestinations filters the fallback list by case-insensitive substring
// match against name, country, description and IATA code. An empty result is
// a valid outcome, not an error.
func FilterDestinations(query string) []Destination {
	term := strings.ToLower(strings.TrimSpace(query))
	matched := make([]Destination, 0)
	for _, d := range fallbackDestinations {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Address.CountryName), term) ||
			strings.Contains(strings.ToLower(d.Description), term) ||
			strings.Contains(strings.ToLower(d.IataCode), term) {
			matched = append(matched, d)
		}
	}
	return matched
}
