package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/realtime"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// GetAllReservations -> urut tanggal+jam terbaru dulu, join nomor meja.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := rc.DB.
		Preload("Table").
		Order("reservation_date DESC, reservation_time DESC").
		Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservations retrieved successfully", reservations)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.Preload("Table").First(&reservation, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation retrieved successfully", reservation)
}

// CreateReservation -> generate reservation_code dari timestamp.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerName    string  `json:"customer_name" binding:"required,min=2"`
		Phone           string  `json:"phone" binding:"required"`
		Email           *string `json:"email" binding:"omitempty,email"`
		TableID         uint    `json:"table_id" binding:"required"`
		Occasion        *string `json:"occasion"`
		NumberOfGuests  int     `json:"number_of_guests" binding:"required,min=1"`
		ReservationDate string  `json:"reservation_date" binding:"required"`
		ReservationTime string  `json:"reservation_time" binding:"required"`
		DurationHours   int     `json:"duration_hours"`
		PaymentAmount   float64 `json:"payment_amount"`
		Notes           *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := time.Parse("2006-01-02", req.ReservationDate); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("valid reservation date is required"))
		return
	}
	if _, err := time.Parse("15:04", req.ReservationTime); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("valid time is required"))
		return
	}

	var table models.RestaurantTable
	if err := rc.DB.First(&table, req.TableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	if req.DurationHours <= 0 {
		req.DurationHours = 2
	}

	reservation := models.Reservation{
		ReservationCode: fmt.Sprintf("RES%d", time.Now().UnixMilli()),
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Email:           req.Email,
		TableID:         req.TableID,
		Occasion:        req.Occasion,
		NumberOfGuests:  req.NumberOfGuests,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		DurationHours:   req.DurationHours,
		PaymentAmount:   req.PaymentAmount,
		Status:          models.ReservationPending,
		Notes:           req.Notes,
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.Broadcast(realtime.EventReservationUpdate, reservation)
	utils.InfoLogger.Printf("Reservation created: %s for %s", reservation.ReservationCode, reservation.CustomerName)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", gin.H{
		"id":               reservation.ID,
		"reservation_code": reservation.ReservationCode,
	})
}

// UpdateReservationStatus -> transisi status dengan validasi enum.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidReservationStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	reservation.Status = body.Status
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	realtime.Broadcast(realtime.EventReservationUpdate, reservation)
	utils.RespondJSON(c, http.StatusOK, "Reservation status updated successfully", reservation)
}

// UpdateReservation -> partial update field reservasi.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	var req struct {
		CustomerName    *string  `json:"customer_name" binding:"omitempty,min=2"`
		Phone           *string  `json:"phone"`
		Email           *string  `json:"email" binding:"omitempty,email"`
		TableID         *uint    `json:"table_id"`
		Occasion        *string  `json:"occasion"`
		NumberOfGuests  *int     `json:"number_of_guests" binding:"omitempty,min=1"`
		ReservationDate *string  `json:"reservation_date"`
		ReservationTime *string  `json:"reservation_time"`
		DurationHours   *int     `json:"duration_hours"`
		PaymentAmount   *float64 `json:"payment_amount"`
		PaymentStatus   *string  `json:"payment_status"`
		Notes           *string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CustomerName != nil {
		reservation.CustomerName = *req.CustomerName
	}
	if req.Phone != nil {
		reservation.Phone = *req.Phone
	}
	if req.Email != nil {
		reservation.Email = req.Email
	}
	if req.TableID != nil {
		reservation.TableID = *req.TableID
	}
	if req.Occasion != nil {
		reservation.Occasion = req.Occasion
	}
	if req.NumberOfGuests != nil {
		reservation.NumberOfGuests = *req.NumberOfGuests
	}
	if req.ReservationDate != nil {
		if _, err := time.Parse("2006-01-02", *req.ReservationDate); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("valid reservation date is required"))
			return
		}
		reservation.ReservationDate = *req.ReservationDate
	}
	if req.ReservationTime != nil {
		if _, err := time.Parse("15:04", *req.ReservationTime); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("valid time is required"))
			return
		}
		reservation.ReservationTime = *req.ReservationTime
	}
	if req.DurationHours != nil {
		reservation.DurationHours = *req.DurationHours
	}
	if req.PaymentAmount != nil {
		reservation.PaymentAmount = *req.PaymentAmount
	}
	if req.PaymentStatus != nil {
		reservation.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		reservation.Notes = req.Notes
	}

	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated successfully", reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	if err := rc.DB.Delete(&models.Reservation{}, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation deleted successfully", nil)
}
