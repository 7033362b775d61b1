package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"mealbell/internal/delivery/http/middleware"
	"mealbell/internal/delivery/http/response"
	"mealbell/internal/domain/entity"
	"mealbell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
	Logger     *slog.Logger
}

// CampaignHandler holds dependencies for campaign-related handlers
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
	logger     *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: params.CampaignUC,
		logger:     params.Logger,
	}
}

// SubmitCampaignRequest represents the request body for submitting a campaign
type SubmitCampaignRequest struct {
	Title        string     `json:"title" validate:"required"`
	Body         string     `json:"body"`
	TargetType   string     `json:"target_type" validate:"required,oneof=ALL TARGET"`
	TargetEmails []string   `json:"target_emails" validate:"omitempty,dive,email"`
	TargetDate   *string    `json:"target_date"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
}

// SubmitCampaign handles an admin push submission
func (h *CampaignHandler) SubmitCampaign(c echo.Context) error {
	var req SubmitCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	createdBy, _ := c.Get(middleware.KeyUserEmail).(string)

	campaign, err := h.campaignUC.SubmitCampaign(c.Request().Context(), &usecase.CampaignRequest{
		Title:        req.Title,
		Body:         req.Body,
		TargetType:   entity.TargetType(req.TargetType),
		TargetEmails: req.TargetEmails,
		TargetDate:   req.TargetDate,
		ScheduledAt:  req.ScheduledAt,
		CreatedBy:    createdBy,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	statusCode := http.StatusCreated
	message := "Campaign dispatched successfully"
	if !campaign.Sent {
		statusCode = http.StatusAccepted
		message = "Campaign reserved successfully"
	}

	return response.Success(c, statusCode, campaign, message)
}

// GetCampaignHistory handles retrieving recent campaigns
func (h *CampaignHandler) GetCampaignHistory(c echo.Context) error {
	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	campaigns, err := h.campaignUC.GetCampaignHistory(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaigns, "Campaign history retrieved successfully")
}

// GetCampaignStats handles the admin reporting view
func (h *CampaignHandler) GetCampaignStats(c echo.Context) error {
	stats, err := h.campaignUC.GetCampaignStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Campaign stats retrieved successfully")
}

// GetTotalSent handles retrieving the all-time campaign count
func (h *CampaignHandler) GetTotalSent(c echo.Context) error {
	total, err := h.campaignUC.GetTotalSent(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"total_sent_count": total}, "Campaign count retrieved successfully")
}
