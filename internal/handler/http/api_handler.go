package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/skanadev/match-notifier-service/internal/models"
	"github.com/skanadev/match-notifier-service/internal/service"
)

// APIHandler handles HTTP requests for device registration and tickets
type APIHandler struct {
	store  service.Store
	logger zerolog.Logger
}

// NewAPIHandler creates a new API HTTP handler
func NewAPIHandler(store service.Store, logger zerolog.Logger) *APIHandler {
	return &APIHandler{
		store:  store,
		logger: logger.With().Str("component", "api_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *APIHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST/GET /api/v1/devices - register or list push devices
	mux.HandleFunc("/api/v1/devices", h.handleDevices)

	// POST/GET /api/v1/users/:user_id/tickets - create or list tickets
	mux.HandleFunc("/api/v1/users/", h.handleUserTickets)
}

// handleDevices handles POST and GET /api/v1/devices
func (h *APIHandler) handleDevices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleRegisterDevice(w, r)
	case http.MethodGet:
		h.handleListDevices(w, r)
	default:
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleRegisterDevice registers a push device token
func (h *APIHandler) handleRegisterDevice(w http.ResponseWriter, r *http.Request) {
	var device models.Device
	if err := json.NewDecoder(r.Body).Decode(&device); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if device.ID == "" || device.Token == "" {
		h.errorResponse(w, http.StatusBadRequest, "id and token are required")
		return
	}

	if err := h.store.RegisterDevice(r.Context(), &device); err != nil {
		h.logger.Error().Err(err).Str("device_id", device.ID).Msg("failed to register device")
		h.errorResponse(w, http.StatusInternalServerError, "failed to register device")
		return
	}

	h.jsonResponse(w, http.StatusCreated, device)
}

// handleListDevices lists registered devices
func (h *APIHandler) handleListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.store.ListDevices(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list devices")
		h.errorResponse(w, http.StatusInternalServerError, "failed to list devices")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":   len(devices),
		"devices": devices,
	})
}

// handleUserTickets handles POST and GET /api/v1/users/:user_id/tickets
func (h *APIHandler) handleUserTickets(w http.ResponseWriter, r *http.Request) {
	// Parse path: /api/v1/users/:user_id/tickets
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/users/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "tickets" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/users/:user_id/tickets")
		return
	}

	userID := parts[0]
	if userID == "" {
		h.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.handleCreateTicket(w, r, userID)
	case http.MethodGet:
		h.handleListTickets(w, r, userID)
	default:
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// createTicketRequest is the POST body for ticket creation
type createTicketRequest struct {
	Bets  []models.Bet    `json:"bets"`
	Stake decimal.Decimal `json:"stake"`
}

// handleCreateTicket creates an open ticket for a user
func (h *APIHandler) handleCreateTicket(w http.ResponseWriter, r *http.Request, userID string) {
	var req createTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Bets) == 0 {
		h.errorResponse(w, http.StatusBadRequest, "at least one bet is required")
		return
	}
	for _, bet := range req.Bets {
		if bet.MatchID == "" || bet.Selection == "" {
			h.errorResponse(w, http.StatusBadRequest, "every bet needs match_id and selection")
			return
		}
	}
	if !req.Stake.IsPositive() {
		h.errorResponse(w, http.StatusBadRequest, "stake must be positive")
		return
	}

	ticket := &models.Ticket{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    models.TicketStatusOpen,
		Bets:      req.Bets,
		Stake:     req.Stake,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.SaveTicket(r.Context(), ticket); err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("failed to save ticket")
		h.errorResponse(w, http.StatusInternalServerError, "failed to save ticket")
		return
	}

	h.jsonResponse(w, http.StatusCreated, ToTicketResponse(ticket))
}

// handleListTickets lists one user's tickets
func (h *APIHandler) handleListTickets(w http.ResponseWriter, r *http.Request, userID string) {
	tickets, err := h.store.ListUserTickets(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list tickets")
		h.errorResponse(w, http.StatusInternalServerError, "failed to list tickets")
		return
	}

	responses := make([]*TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, ToTicketResponse(&tickets[i]))
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"count":   len(responses),
		"tickets": responses,
	})
}

// jsonResponse writes a JSON response
func (h *APIHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *APIHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}

// TicketResponse represents the API response for a ticket
type TicketResponse struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Status          string       `json:"status"`
	Bets            []models.Bet `json:"bets"`
	Stake           string       `json:"stake"`
	TotalOdds       string       `json:"total_odds"`
	PotentialPayout string       `json:"potential_payout"`
	CreatedAt       string       `json:"created_at"`
}

// ToTicketResponse converts a Ticket to API response format
func ToTicketResponse(ticket *models.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:              ticket.ID.String(),
		UserID:          ticket.UserID,
		Status:          ticket.Status,
		Bets:            ticket.Bets,
		Stake:           ticket.Stake.String(),
		TotalOdds:       ticket.TotalOdds().String(),
		PotentialPayout: ticket.PotentialPayout().String(),
		CreatedAt:       ticket.CreatedAt.Format(time.RFC3339),
	}
}
