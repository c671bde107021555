package api

import (
	"log/slog"
	"net/http"

	reqdto "issuance-engine/internal/handler/dto/request"
	resdto "issuance-engine/internal/handler/dto/response"
	"issuance-engine/internal/handler/httperr"
	"issuance-engine/internal/handler/middleware"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrackingPixel is a 1x1 transparent GIF.
var TrackingPixel = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortBadRequest(c, errs.Wrap(errInvalidID, err.Error()), "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Create offer
// @Description Allocate the next OFFERTA-YYYY-NNNN number and create a draft (or sent, with send_email)
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OfferRequest true "Offer"
// @Success 201 {object} resdto.OfferResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response "customer not found"
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthorized(c, errUnauthenticated)
		return
	}
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	in, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	result, err := h.cmds.CreateOffer(c.Request.Context(), in, actorID)
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.Header("Location", "/api/offers/"+result.OfferID.String())
	c.JSON(http.StatusCreated, resdto.FromOfferResult(result))
}

// @Summary Update offer
// @Description Replace the content of a draft offer; send_email moves it to sent
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.OfferRequest true "Offer"
// @Success 200 {object} resdto.OfferResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "not a draft"
// @Router /offers/{id} [put]
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	in, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	result, err := h.cmds.UpdateOffer(c.Request.Context(), id, in)
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferResult(result))
}

// @Summary Close offer
// @Description Record the customer's decision (Aceptada, Rechazada, Vencida)
// @Tags offers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferStatusRequest true "Outcome"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/status [patch]
func (h *OfferHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOfferStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateOfferStatus(c.Request.Context(), id, req.CustomerID, req.Status); err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Email open pixel
// @Description Marks a sent offer as seen. Always answers with a transparent GIF.
// @Tags offers
// @Produce image/gif
// @Param id path string true "Offer ID"
// @Param customer query string true "Customer ID"
// @Success 200 {file} binary
// @Router /public/offers/{id}/open.gif [get]
func (h *OfferHandler) TrackOpen(c *gin.Context) {
	defer writePixel(c)

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return
	}
	customerID, err := uuid.Parse(c.Query("customer"))
	if err != nil {
		return
	}
	changed, err := h.cmds.TrackEmailOpen(c.Request.Context(), offerID, customerID)
	if err != nil {
		slog.Warn("email open tracking failed", "offer_id", offerID.String(), "error", err.Error())
		return
	}
	if changed {
		slog.Info("offer marked as seen", "offer_id", offerID.String())
	}
}

func writePixel(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, "image/gif", TrackingPixel)
}
