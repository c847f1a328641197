package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

// ─── Amadeus Client ───────────────────────────────────────────────────────────

type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
	mu           sync.Mutex
	httpClient   *http.Client
}

var amadeusClient *AmadeusClient

func InitAmadeus() {
	env := os.Getenv("AMADEUS_ENV")
	baseURL := "https://api.amadeus.com" // production
	if env == "" || env == "test" {
		baseURL = "https://test.api.amadeus.com" // free test environment
	}

	amadeusClient = NewAmadeusClient(
		os.Getenv("AMADEUS_CLIENT_ID"),
		os.Getenv("AMADEUS_CLIENT_SECRET"),
		baseURL,
	)

	if amadeusClient.clientID == "" || amadeusClient.clientSecret == "" {
		log.Println("⚠️  AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set — destination search will use fallback data")
		return
	}

	// Pre-warm the token
	if err := amadeusClient.refreshToken(context.Background()); err != nil {
		log.Printf("⚠️  Amadeus token pre-warm failed: %v", err)
	} else {
		log.Println("✅ Amadeus API authenticated")
	}
}

func GetAmadeusClient() *AmadeusClient {
	return amadeusClient
}

func NewAmadeusClient(clientID, clientSecret, baseURL string) *AmadeusClient {
	return &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, "POST",
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %v", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	// Expire 60 seconds early so a token never goes stale mid-request.
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-60) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doRequest(ctx context.Context, method, path string) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// ─── Destination Search ───────────────────────────────────────────────────────

type amadeusLocationsResponse struct {
	Data []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		SubType  string `json:"subType"`
		IataCode string `json:"iataCode"`
		Address  struct {
			CountryName string `json:"countryName"`
			StateCode   string `json:"stateCode"`
		} `json:"address"`
	} `json:"data"`
}

// SearchDestinations looks up cities and airports matching a keyword via the
// Amadeus locations reference API.
func (c *AmadeusClient) SearchDestinations(ctx context.Context, keyword string) ([]Destination, error) {
	if c.clientID == "" {
		return nil, fmt.Errorf("amadeus not configured")
	}

	query := url.Values{}
	query.Set("keyword", keyword)
	query.Set("subType", "CITY,AIRPORT")
	query.Set("page[limit]", "10")

	body, err := c.doRequest(ctx, "GET", "/v1/reference-data/locations?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("destination search failed: %w", err)
	}

	var resp amadeusLocationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse locations: %w", err)
	}

	destinations := make([]Destination, 0, len(resp.Data))
	for _, d := range resp.Data {
		destinations = append(destinations, Destination{
			ID:       d.ID,
			Name:     d.Name,
			SubType:  d.SubType,
			IataCode: d.IataCode,
			Address: Address{
				CountryName: d.Address.CountryName,
				StateCode:   d.Address.StateCode,
			},
		})
	}
	return destinations, nil
}

// ─── Flight / Hotel Offers ────────────────────────────────────────────────────
//
// The shipped flow synthesizes offers locally; these wrappers stay matched to
// the documented endpoint shapes for callers that do have working credentials.

type amadeusFlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

func (c *AmadeusClient) GetFlightOffers(ctx context.Context, origin, destination, departureDate string, adults int) ([]FlightOffer, error) {
	if c.clientID == "" {
		return nil, fmt.Errorf("amadeus not configured")
	}

	query := url.Values{}
	query.Set("originLocationCode", origin)
	query.Set("destinationLocationCode", destination)
	query.Set("departureDate", departureDate)
	query.Set("adults", fmt.Sprintf("%d", adults))
	query.Set("max", "10")

	body, err := c.doRequest(ctx, "GET", "/v2/shopping/flight-offers?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("flight offers failed: %w", err)
	}

	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}
	return resp.Data, nil
}

type amadeusHotelOffersResponse struct {
	Data []HotelOffer `json:"data"`
}

func (c *AmadeusClient) GetHotelOffers(ctx context.Context, cityCode, checkInDate, checkOutDate string) ([]HotelOffer, error) {
	if c.clientID == "" {
		return nil, fmt.Errorf("amadeus not configured")
	}

	query := url.Values{}
	query.Set("cityCode", cityCode)
	query.Set("checkInDate", checkInDate)
	query.Set("checkOutDate", checkOutDate)
	query.Set("adults", "1")
	query.Set("roomQuantity", "1")

	body, err := c.doRequest(ctx, "GET", "/v2/shopping/hotel-offers?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("hotel offers failed: %w", err)
	}

	var resp amadeusHotelOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel offers: %w", err)
	}
	return resp.Data, nil
}
