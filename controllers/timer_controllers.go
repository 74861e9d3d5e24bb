package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/services"
	"github.com/siszum/pos-server/utils"
)

type TimerController struct {
	Timers *services.TimerService
}

func NewTimerController(timers *services.TimerService) *TimerController {
	return &TimerController{Timers: timers}
}

// GetAllTimers -> list timer dengan status turunan + statistik populasi.
func (tc *TimerController) GetAllTimers(c *gin.Context) {
	params := utils.ParsePageParams(c, 20)

	var isActive *bool
	if raw, exists := c.GetQuery("is_active"); exists {
		v := raw == "true" || raw == "1"
		isActive = &v
	}

	timers, pagination, stats, err := tc.Timers.List(params, isActive)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer timers retrieved successfully", gin.H{
		"timers":     timers,
		"pagination": pagination,
		"stats":      stats,
	})
}

// CreateTimer -> staff menempatkan customer di meja yang masih kosong.
func (tc *TimerController) CreateTimer(c *gin.Context) {
	var req struct {
		CustomerName string `json:"customer_name" binding:"required"`
		TableID      uint   `json:"table_id" binding:"required"`
		OrderID      *uint  `json:"order_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.ErrTimerNameRequired)
		return
	}

	timer, err := tc.Timers.Start(req.CustomerName, req.TableID, req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableBusy):
			utils.RespondError(c, http.StatusConflict, err)
		case errors.Is(err, services.ErrTableNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrTimerNameRequired):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Timer %d started for %s on table %d", timer.ID, timer.CustomerName, timer.TableID)
	utils.RespondJSON(c, http.StatusCreated, "Customer timer created successfully", gin.H{
		"id": timer.ID,
	})
}

// StopTimer -> menghentikan timer aktif; meja kembali available.
func (tc *TimerController) StopTimer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid timer ID"))
		return
	}

	if err := tc.Timers.Stop(uint(id)); err != nil {
		if errors.Is(err, services.ErrTimerNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Timer %d stopped", id)
	utils.RespondJSON(c, http.StatusOK, "Timer stopped successfully", nil)
}

// DeleteTimer -> hard delete; meja ikut dilepas.
func (tc *TimerController) DeleteTimer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid timer ID"))
		return
	}

	if err := tc.Timers.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrTimerNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("timer not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Timer %d deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Timer deleted successfully", nil)
}
