package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/session"
)

// Handler wires the session manager to the HTTP surface.
type Handler struct {
	Sessions *session.Manager
}

func NewHandler(sessions *session.Manager) *Handler {
	return &Handler{Sessions: sessions}
}

type SessionResponse struct {
	State *session.State `json:"state"`
}

// CreateSession handles POST /api/sessions.
func (h *Handler) CreateSession(c *gin.Context) {
	st := h.Sessions.Create()
	c.JSON(http.StatusCreated, SessionResponse{State: st})
}

// GetSession handles GET /api/sessions/:id.
func (h *Handler) GetSession(c *gin.Context) {
	st, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: st})
}

type SearchRequest struct {
	Query string `json:"query"`
}

// Search handles POST /api/sessions/:id/search. Any query is valid,
// including one that matches nothing.
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	st, err := h.Sessions.Search(c.Request.Context(), c.Param("id"), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: st})
}

type SelectRequest struct {
	DestinationID string `json:"destinationId" binding:"required"`
}

// SelectDestination handles POST /api/sessions/:id/select.
func (h *Handler) SelectDestination(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	st, err := h.Sessions.Select(c.Param("id"), req.DestinationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: st})
}

// Back handles POST /api/sessions/:id/back.
func (h *Handler) Back(c *gin.Context) {
	st, err := h.Sessions.Back(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: st})
}

type TabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// SetTab handles POST /api/sessions/:id/tab.
func (h *Handler) SetTab(c *gin.Context) {
	var req TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	st, err := h.Sessions.SetTab(c.Param("id"), session.Tab(req.Tab))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: st})
}

type OpenBookingRequest struct {
	OfferType string `json:"offerType" binding:"required"`
	OfferID   string `json:"offerId" binding:"required"`
}

// OpenBooking handles POST /api/sessions/:id/booking/open.
func (h *Handler) OpenBooking(c *gin.Context) {
	var req OpenBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	st, err := h.Sessions.OpenBooking(c.Param("id"), session.BookingType(req.OfferType), req.OfferID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: st})
}

// UpdateBookingForm handles PATCH /api/sessions/:id/booking/form.
func (h *Handler) UpdateBookingForm(c *gin.Context) {
	var patch session.FormPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	st, err := h.Sessions.UpdateForm(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: st})
}

type SubmitBookingResponse struct {
	Message string         `json:"message"`
	State   *session.State `json:"state"`
}

// SubmitBooking handles POST /api/sessions/:id/booking/submit.
func (h *Handler) SubmitBooking(c *gin.Context) {
	message, st, err := h.Sessions.SubmitBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmitBookingResponse{Message: message, State: st})
}

// CancelBooking handles POST /api/sessions/:id/booking/cancel.
func (h *Handler) CancelBooking(c *gin.Context) {
	st, err := h.Sessions.CancelBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{State: st})
}

func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrDestinationNotFound),
		errors.Is(err, session.ErrOfferNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrNotInDetails),
		errors.Is(err, session.ErrNoBookingInProgress):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
