package api

import (
	"errors"
	"net/http"

	reqdto "dealdesk/internal/handler/dto/request"
	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DealHandler struct {
	dealCommands commands.DealCommands
	dealQueries  queries.DealQueries
}

func NewDealHandler(dealCommands commands.DealCommands, dealQueries queries.DealQueries) *DealHandler {
	return &DealHandler{
		dealCommands: dealCommands,
		dealQueries:  dealQueries,
	}
}

// @Summary Create deal draft
// @Description Create a new happy-hour deal draft
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDealRequest true "Deal draft"
// @Success 201 {object} resdto.DealResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.dealCommands.CreateDeal(c.Request.Context(), actorID, req)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDealView(view))
}

// @Summary List deals
// @Description List the current merchant's deals
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DealListResponse
// @Failure 401 {object} map[string]string
// @Router /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.dealQueries.ListByMerchant(c.Request.Context(), actorID)
	if err != nil {
		respondDealError(c, err)
		return
	}

	response := make([]*resdto.DealListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromDealListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get deal
// @Description Get a deal draft with schedule validation and overrides
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}

	view, err := h.dealQueries.GetByID(c.Request.Context(), actorID, dealID)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Select schedule preset
// @Description Replace the window list from a named preset
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.SelectPresetRequest true "Preset"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /deals/{id}/schedule/preset [put]
func (h *DealHandler) SelectPreset(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}

	var req reqdto.SelectPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.dealCommands.SelectPreset(c.Request.Context(), actorID, dealID, req)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Add custom window
// @Description Append a default weekday window under CUSTOM_DAYS
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/schedule/windows [post]
func (h *DealHandler) AddWindow(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}

	view, err := h.dealCommands.AddWindow(c.Request.Context(), actorID, dealID)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Update window
// @Description Set one field (dayScope, start, end) on a window
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param windowId path string true "Window ID"
// @Param request body reqdto.UpdateWindowRequest true "Field update"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /deals/{id}/schedule/windows/{windowId} [patch]
func (h *DealHandler) UpdateWindow(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}
	windowID, err := uuid.Parse(c.Param("windowId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window ID format"})
		return
	}

	var req reqdto.UpdateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.dealCommands.UpdateWindow(c.Request.Context(), actorID, dealID, windowID, req)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Remove window
// @Description Delete a window from the schedule
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param windowId path string true "Window ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/schedule/windows/{windowId} [delete]
func (h *DealHandler) RemoveWindow(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}
	windowID, err := uuid.Parse(c.Param("windowId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window ID format"})
		return
	}

	view, err := h.dealCommands.RemoveWindow(c.Request.Context(), actorID, dealID, windowID)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Set single-window time
// @Description Update the only window's times under a single-window preset
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.SetWindowTimeRequest true "Times"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /deals/{id}/schedule/time [put]
func (h *DealHandler) SetWindowTime(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}

	var req reqdto.SetWindowTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.dealCommands.SetWindowTime(c.Request.Context(), actorID, dealID, req)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Set global discount
// @Description Set the deal-wide discount (percent or amount); empty body clears it
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.SetGlobalDiscountRequest true "Discount"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /deals/{id}/discount [put]
func (h *DealHandler) SetGlobalDiscount(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}

	var req reqdto.SetGlobalDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.dealCommands.SetGlobalDiscount(c.Request.Context(), actorID, dealID, req)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Set item override
// @Description Override the global discount for one menu item
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param itemId path string true "Menu item ID"
// @Param request body reqdto.SetItemOverrideRequest true "Override"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /deals/{id}/items/{itemId}/override [put]
func (h *DealHandler) SetItemOverride(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID format"})
		return
	}

	var req reqdto.SetItemOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.dealCommands.SetItemOverride(c.Request.Context(), actorID, dealID, itemID, req)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Reset item override
// @Description Return a menu item to the deal-wide discount
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param itemId path string true "Menu item ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/items/{itemId}/override [delete]
func (h *DealHandler) ResetItemOverride(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID format"})
		return
	}

	view, err := h.dealCommands.ResetItemOverride(c.Request.Context(), actorID, dealID, itemID)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Get resolved pricing
// @Description Resolve final prices for the merchant's menu under the deal
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.PricingResponse
// @Failure 404 {object} map[string]string
// @Router /deals/{id}/pricing [get]
func (h *DealHandler) GetPricing(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}

	view, err := h.dealQueries.GetPricing(c.Request.Context(), actorID, dealID)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingView(view))
}

// @Summary Publish deal
// @Description Publish a draft; blocked while the schedule has no valid windows
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /deals/{id}/publish [post]
func (h *DealHandler) PublishDeal(c *gin.Context) {
	actorID, dealID, ok := h.actorAndDeal(c)
	if !ok {
		return
	}

	view, err := h.dealCommands.PublishDeal(c.Request.Context(), actorID, dealID)
	if err != nil {
		respondDealError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

func (h *DealHandler) actorAndDeal(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, uuid.Nil, false
	}

	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deal ID format"})
		return uuid.Nil, uuid.Nil, false
	}
	return actorID, dealID, true
}

func respondDealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
	case errors.Is(err, errs.ErrWindowNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Time window not found"})
	case errors.Is(err, errs.ErrScheduleNotReady):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Schedule is not ready to publish"})
	case errors.Is(err, errs.ErrAlreadyPublished):
		c.JSON(http.StatusConflict, gin.H{"error": "Deal is already published"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
