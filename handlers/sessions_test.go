package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/services"
	"travelplanner/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSearcher struct {
	results []services.Destination
	err     error
}

func (s *stubSearcher) SearchDestinations(ctx context.Context, keyword string) ([]services.Destination, error) {
	return s.results, s.err
}

func newTestRouter(t *testing.T, api session.DestinationSearcher) *gin.Engine {
	t.Helper()
	sessions := session.NewManager(api, services.NewGenerator(nil), time.Minute)
	t.Cleanup(sessions.Close)

	h := NewHandler(sessions)
	r := gin.New()
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", HealthHandler)
		apiGroup.POST("/receipt", ReceiptHandler)
		apiGroup.POST("/sessions", h.CreateSession)
		apiGroup.GET("/sessions/:id", h.GetSession)
		apiGroup.POST("/sessions/:id/search", h.Search)
		apiGroup.POST("/sessions/:id/select", h.SelectDestination)
		apiGroup.POST("/sessions/:id/back", h.Back)
		apiGroup.POST("/sessions/:id/tab", h.SetTab)
		apiGroup.POST("/sessions/:id/booking/open", h.OpenBooking)
		apiGroup.PATCH("/sessions/:id/booking/form", h.UpdateBookingForm)
		apiGroup.POST("/sessions/:id/booking/submit", h.SubmitBooking)
		apiGroup.POST("/sessions/:id/booking/cancel", h.CancelBooking)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) *session.State {
	t.Helper()
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.State)
	return resp.State
}

func createSession(t *testing.T, r *gin.Engine) *session.State {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeState(t, w)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, nil)
	w := doJSON(t, r, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCreateAndGetSession(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)
	assert.Equal(t, session.ViewSearch, st.CurrentView)

	w := doJSON(t, r, "GET", "/api/sessions/"+st.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, st.ID, decodeState(t, w).ID)
}

func TestGetUnknownSessionIs404(t *testing.T) {
	r := newTestRouter(t, nil)
	w := doJSON(t, r, "GET", "/api/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchFallsBackWhenAPIFails(t *testing.T) {
	r := newTestRouter(t, &stubSearcher{err: errors.New("boom")})
	st := createSession(t, r)

	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/search", gin.H{"query": "kenya"})
	require.Equal(t, http.StatusOK, w.Code)

	st = decodeState(t, w)
	assert.True(t, st.SearchPerformed)
	assert.False(t, st.IsSearching)
	require.Len(t, st.Destinations, 2)
	assert.Equal(t, "Nairobi", st.Destinations[0].Name)
}

func TestSearchUsesLiveResults(t *testing.T) {
	r := newTestRouter(t, &stubSearcher{results: []services.Destination{
		{ID: "CPAR", Name: "PARIS", SubType: "CITY", IataCode: "PAR"},
	}})
	st := createSession(t, r)

	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/search", gin.H{"query": "paris"})
	require.Equal(t, http.StatusOK, w.Code)

	st = decodeState(t, w)
	require.Len(t, st.Destinations, 1)
	assert.Equal(t, "CPAR", st.Destinations[0].ID)
}

func TestFullBookingFlow(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)

	// Search lands on the fallback list.
	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/search", gin.H{"query": "paris"})
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeState(t, w)
	require.NotEmpty(t, st.Destinations)

	// Select moves to details with fresh offers.
	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/select",
		gin.H{"destinationId": st.Destinations[0].ID})
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeState(t, w)
	assert.Equal(t, session.ViewDetails, st.CurrentView)
	require.NotEmpty(t, st.FlightOffers)

	// Browse to the flights tab.
	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/tab", gin.H{"tab": "flights"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.TabFlights, decodeState(t, w).ActiveTab)

	// Open a booking for the cheapest flight.
	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/booking/open",
		gin.H{"offerType": "flight", "offerId": st.FlightOffers[0].ID})
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeState(t, w)
	assert.True(t, st.ShowBookingModal)

	// Fill in the form.
	w = doJSON(t, r, "PATCH", "/api/sessions/"+st.ID+"/booking/form",
		gin.H{"firstName": "Ada", "email": "ada@example.com", "passengers": 2})
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeState(t, w)
	assert.Equal(t, "Ada", st.BookingForm.FirstName)
	assert.Equal(t, 2, st.BookingForm.Passengers)

	// Submit acknowledges and resets the modal.
	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/booking/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var submit SubmitBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submit))
	assert.Contains(t, submit.Message, "ada@example.com")
	assert.False(t, submit.State.ShowBookingModal)
	assert.Equal(t, session.ViewDetails, submit.State.CurrentView)

	// Back returns to search.
	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.ViewSearch, decodeState(t, w).CurrentView)
}

func TestSelectWithoutBodyIs400(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)
	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/select", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectUnknownDestinationIs404(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)
	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/search", gin.H{"query": "paris"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/select", gin.H{"destinationId": "999"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTabOutsideDetailsIs409(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)
	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/tab", gin.H{"tab": "flights"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInvalidTabIs400(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)
	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/tab", gin.H{"tab": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitWithoutBookingIs409(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)
	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/booking/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitWithoutEmailIs400(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)

	w := doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/search", gin.H{"query": "paris"})
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeState(t, w)
	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/select",
		gin.H{"destinationId": st.Destinations[0].ID})
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeState(t, w)
	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/booking/open",
		gin.H{"offerType": "flight", "offerId": st.FlightOffers[0].ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/api/sessions/"+st.ID+"/booking/submit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceiptEndpointReturnsPDF(t *testing.T) {
	r := newTestRouter(t, nil)
	w := doJSON(t, r, "POST", "/api/receipt", gin.H{
		"bookingType":  "flight",
		"firstName":    "Ada",
		"lastName":     "Lovelace",
		"email":        "ada@example.com",
		"passengers":   2,
		"destination":  "Paris",
		"offerSummary": "Air France",
		"routeOrRoom":  "JFK - CDG",
		"priceTotal":   "512.40",
		"currency":     "USD",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "booking-receipt.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestConcurrentSearchesLastWins(t *testing.T) {
	r := newTestRouter(t, nil)
	st := createSession(t, r)

	// Fire several searches back to back; whatever lands last defines the
	// result set and the session always ends up not searching.
	queries := []string{"kenya", "france", "japan", "iceland"}
	for _, q := range queries {
		w := doJSON(t, r, "POST", fmt.Sprintf("/api/sessions/%s/search", st.ID), gin.H{"query": q})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, "GET", "/api/sessions/"+st.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeState(t, w)
	assert.False(t, st.IsSearching)
	require.Len(t, st.Destinations, 1)
	assert.Equal(t, "Reykjavik", st.Destinations[0].Name)
}
