package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/clients-api/internal/api/shared"
	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/platform/logger"
	"github.com/phrazzld/clients-api/internal/service"
)

// ClientHandler serves the /clients endpoints.
type ClientHandler struct {
	clientService service.ClientService
	logger        *slog.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService, logger *slog.Logger) *ClientHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientHandler{
		clientService: clientService,
		logger:        logger.With("component", "client_handler"),
	}
}

// RegisterRoutes mounts the client endpoints on r.
func (h *ClientHandler) RegisterRoutes(r chi.Router) {
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.ListClients)
		r.Post("/", h.CreateClient)
		r.Get("/{id}", h.GetClient)
		r.Put("/{id}", h.UpdateClient)
		r.Delete("/{id}", h.DeleteClient)
	})
}

// invalidIDViolation is reported when the {id} path segment is not a positive integer.
var invalidIDViolation = domain.FieldViolation{Field: "id", Message: "must be a positive integer"}

// parseClientID reads the {id} path parameter. On failure it writes a 400
// response and returns false.
func parseClientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			shared.WithViolations([]domain.FieldViolation{invalidIDViolation}))
		return 0, false
	}
	return id, true
}

// decodeClientRequest decodes the JSON body. On failure it writes a 400
// response and returns false.
func decodeClientRequest(w http.ResponseWriter, r *http.Request) (ClientRequest, bool) {
	var req ClientRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request body", err)
		return ClientRequest{}, false
	}
	return req, true
}

// respondWithServiceError renders a service error. failureMessage is used for
// internal failures, which also carry a redacted diagnostic.
func (h *ClientHandler) respondWithServiceError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	failureMessage string,
) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err, failureMessage)

	var opts []shared.ResponseOption
	var missing *service.MissingFieldsError
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &missing):
		opts = append(opts, shared.WithFields(missing.Fields))
	case errors.As(err, &verr):
		opts = append(opts, shared.WithViolations(verr.Violations))
	case status == http.StatusInternalServerError:
		opts = append(opts, shared.WithDiagnostic(err))
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// queryFromRequest reads the optional list filters. A present but empty
// "active" parameter is still reported as supplied.
func queryFromRequest(r *http.Request) service.ClientQuery {
	values := r.URL.Query()

	q := service.ClientQuery{
		Name:  values.Get("name"),
		City:  values.Get("city"),
		Email: values.Get("email"),
	}
	if _, ok := values["active"]; ok {
		active := values.Get("active")
		q.Active = &active
	}
	return q
}

// ListClients handles GET /clients.
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.ListClients(r.Context(), queryFromRequest(r))
	if err != nil {
		h.respondWithServiceError(w, r, err, "Failed to list clients")
		return
	}
	if clients == nil {
		clients = []*domain.Client{}
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Clients retrieved successfully", ClientListResponse{
		Total:   len(clients),
		Clients: clients,
	})
}

// GetClient handles GET /clients/{id}.
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseClientID(w, r)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err, "Failed to retrieve client")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Client found", client)
}

// CreateClient handles POST /clients.
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClientRequest(w, r)
	if !ok {
		return
	}

	client, err := h.clientService.CreateClient(r.Context(), req.toInput())
	if err != nil {
		h.respondWithServiceError(w, r, err, "Failed to create client")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("client created via API", "client_id", client.ID)
	shared.RespondWithSuccess(w, r, http.StatusCreated, "Client created successfully", client)
}

// UpdateClient handles PUT /clients/{id}.
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseClientID(w, r)
	if !ok {
		return
	}
	req, ok := decodeClientRequest(w, r)
	if !ok {
		return
	}

	client, err := h.clientService.UpdateClient(r.Context(), id, req.toInput())
	if err != nil {
		h.respondWithServiceError(w, r, err, "Failed to update client")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Client updated successfully", client)
}

// DeleteClient handles DELETE /clients/{id}.
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseClientID(w, r)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err, "Failed to delete client")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Client deleted successfully", nil)
}

// RouteNotFound answers any request that matches no route.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Route not found")
}
