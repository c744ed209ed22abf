package account

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/payflow/payflow/internal/engine"
)

// Handler exposes account HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type submitRequest struct {
	Type   string `json:"type"`
	Client uint16 `json:"client"`
	Tx     uint32 `json:"tx"`
	Amount string `json:"amount"`
}

type submitResponse struct {
	Tx     uint32 `json:"tx"`
	Client uint16 `json:"client"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Submit accepts one transaction and executes it against the engine.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.service.Submit(c.UserContext(), SubmitInput{
		Type:   req.Type,
		Client: req.Client,
		Tx:     req.Tx,
		Amount: req.Amount,
	})
	if err != nil {
		status, code := classify(err)
		return c.Status(status).JSON(errorResponse{Error: code})
	}

	return c.Status(http.StatusAccepted).JSON(submitResponse{
		Tx:     tx.ID,
		Client: tx.Client,
		Kind:   tx.Kind.String(),
		Status: "executed",
	})
}

// List returns every account the engine has committed.
func (h *Handler) List(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Accounts())
}

// Get returns one account by client id.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("clientId"), 10, 16)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid client id")
	}

	view, err := h.service.Account(engine.ClientID(id))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(errorResponse{Error: "account_not_found"})
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Snapshot persists the current account set.
func (h *Handler) Snapshot(c *fiber.Ctx) error {
	count, err := h.service.Snapshot(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"accounts": count})
}

// classify maps service errors to an HTTP status and a stable error code.
// Engine rejections are well-formed requests the ledger refuses, so they
// surface as 422 rather than 4xx client syntax errors.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, engine.ErrNoSuchClient):
		return http.StatusUnprocessableEntity, "client_does_not_exist"
	case errors.Is(err, engine.ErrClientLocked):
		return http.StatusUnprocessableEntity, "client_locked"
	case errors.Is(err, engine.ErrUnknownBooking):
		return http.StatusUnprocessableEntity, "unknown_booking"
	case errors.Is(err, engine.ErrInvalidState):
		return http.StatusUnprocessableEntity, "invalid_state"
	case errors.Is(err, engine.ErrOverflow):
		return http.StatusUnprocessableEntity, "overflow"
	case errors.Is(err, engine.ErrUnderflow):
		return http.StatusUnprocessableEntity, "underflow"
	default:
		return http.StatusBadRequest, err.Error()
	}
}
