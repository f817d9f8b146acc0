package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"smat.com/campusapi/internal/entity"
	"smat.com/campusapi/internal/modules/campus/dto"
	campus "smat.com/campusapi/internal/modules/campus/service"
	"smat.com/campusapi/pkg/apperror"
	"smat.com/campusapi/pkg/response"
	"smat.com/campusapi/pkg/validator"
)

const invalidDateMessage = "date must be a date in yyyy-MM-dd format"

type CampusHandler struct {
	service campus.CampusService
}

func NewCampusHandler(service campus.CampusService) *CampusHandler {
	return &CampusHandler{service: service}
}

// GetTodayMenus handles GET /campus/menus.
func (h *CampusHandler) GetTodayMenus(c *gin.Context) {
	menus, err := h.service.TodayMenus(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, menus)
}

// GetMenusByDate handles GET /campus/menus/date?date=yyyy-MM-dd.
func (h *CampusHandler) GetMenusByDate(c *gin.Context) {
	var req dto.MenusByDateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		response.ResponseError(c, apperror.InvalidInput(invalidDateMessage))
		return
	}

	menus, err := h.service.MenusForDate(c.Request.Context(), date)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, menus)
}

// SearchMenus handles GET /campus/menus/search?date=yyyy-MM-dd&timeType=중식.
func (h *CampusHandler) SearchMenus(c *gin.Context) {
	var req dto.MenuSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		response.ResponseError(c, apperror.InvalidInput(invalidDateMessage))
		return
	}

	menus, err := h.service.MenusForDateAndPeriod(c.Request.Context(), date, entity.MealPeriod(req.TimeType))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, menus)
}
