package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ovenline/bakehouse-backend/internal/http/response"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/services"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
)

type ScheduleView struct {
	*types.ProductionSchedule
	Entries []types.ScheduleEntry `json:"entries"`
}

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

type scheduleRequest struct {
	WeekStart *time.Time            `json:"week_start"`
	Entries   []types.ScheduleEntry `json:"entries" binding:"omitempty,dive"`
}

func (sh *ScheduleHandler) Create(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid request body"))
		return
	}
	if req.WeekStart == nil {
		response.RespondMapped(c, apperr.InvalidInput("week_start is required"))
		return
	}
	schedule, err := sh.scheduleService.Create(c.Request.Context(), *req.WeekStart, req.Entries)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	view, err := scheduleView(schedule)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"success": true, "schedule": view})
}

func (sh *ScheduleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid schedule id"))
		return
	}
	schedule, err := sh.scheduleService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	view, err := scheduleView(schedule)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "schedule": view})
}

func (sh *ScheduleHandler) List(c *gin.Context) {
	schedules, err := sh.scheduleService.List(c.Request.Context())
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	views := make([]*ScheduleView, 0, len(schedules))
	for _, schedule := range schedules {
		view, err := scheduleView(schedule)
		if err != nil {
			response.RespondMapped(c, err)
			return
		}
		views = append(views, view)
	}
	response.RespondOK(c, gin.H{"success": true, "schedules": views})
}

func (sh *ScheduleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid schedule id"))
		return
	}
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid request body"))
		return
	}
	schedule, err := sh.scheduleService.Update(c.Request.Context(), id, req.WeekStart, req.Entries)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	view, err := scheduleView(schedule)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "schedule": view})
}

func (sh *ScheduleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid schedule id"))
		return
	}
	if err := sh.scheduleService.Delete(c.Request.Context(), id); err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

func scheduleView(schedule *types.ProductionSchedule) (*ScheduleView, error) {
	entries, err := schedule.Entries()
	if err != nil {
		return nil, apperr.Persistence("decode schedule entries", err)
	}
	return &ScheduleView{ProductionSchedule: schedule, Entries: entries}, nil
}
