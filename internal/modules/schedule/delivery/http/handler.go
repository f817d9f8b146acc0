package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smat.com/campusapi/internal/entity"
	"smat.com/campusapi/internal/modules/schedule/dto"
	schedule "smat.com/campusapi/internal/modules/schedule/service"
	"smat.com/campusapi/pkg/response"
	"smat.com/campusapi/pkg/validator"
)

type ScheduleHandler struct {
	service schedule.ScheduleService
}

func NewScheduleHandler(service schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) GetWeeklySchedule(c *gin.Context) {
	lectures, err := h.service.WeeklySchedule(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, lectures)
}

func (h *ScheduleHandler) GetScheduleByDay(c *gin.Context) {
	var req dto.ScheduleByDayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	lectures, err := h.service.ScheduleForDay(c.Request.Context(), entity.Weekday(req.Day))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.List(c, lectures)
}

// GetNextLecture answers 204 with an empty body when no lecture is left today.
func (h *ScheduleHandler) GetNextLecture(c *gin.Context) {
	lecture, err := h.service.NextLecture(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if lecture == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, lecture)
}
