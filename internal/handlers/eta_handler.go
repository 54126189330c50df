package handlers

import (
	"time"

	"onestop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EtaHandler struct{}

func NewEtaHandler() *EtaHandler {
	return &EtaHandler{}
}

type etaRequest struct {
	Postcode string `json:"postcode"`
}

// Estimate handles POST /api/eta { "postcode": "..." }. The postcode is
// optional; a missing or malformed body still yields an estimate.
func (h *EtaHandler) Estimate(c *fiber.Ctx) error {
	var req etaRequest
	_ = c.BodyParser(&req)

	return c.JSON(service.DeliveryEstimate(req.Postcode, time.Now()))
}
