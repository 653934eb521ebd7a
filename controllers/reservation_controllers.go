package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servesense/servesense/services"
	"github.com/servesense/servesense/utils"
)

type ReservationController struct {
	DB      *gorm.DB
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:      db,
		Service: services.NewReservationService(db),
	}
}

// CreateReservation -> book a table for a party at a date and time
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		FirstName       string `json:"first_name" binding:"required"`
		LastName        string `json:"last_name" binding:"required"`
		PhoneNumber     string `json:"phone_number" binding:"required"`
		NumberOfGuests  int    `json:"number_of_guests" binding:"required,min=1"`
		ReservationDate string `json:"reservation_date" binding:"required"`
		ReservationTime string `json:"reservation_time" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Book(services.BookingRequest{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		NumberOfGuests:  req.NumberOfGuests,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoTableAvailable):
			// Expected outcome, not a server fault
			utils.RespondError(c, http.StatusUnprocessableEntity, err)
		case errors.Is(err, services.ErrInvalidBooking):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %d created: table %s on %s %s for %d guests",
		reservation.ID, reservation.Table.TableNumber,
		reservation.ReservationDate, reservation.ReservationTime, reservation.NumberOfGuests)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// GetAllReservations -> list reservations ordered by date then time
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Service.ListReservations()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// AcceptReservation -> Pending becomes Confirmed, table becomes reserved
func (rc *ReservationController) AcceptReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Confirm(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d confirmed, table %s is now reserved",
		reservation.ID, reservation.Table.TableNumber)
	utils.RespondJSON(c, http.StatusOK, "Reservation confirmed", reservation)
}

// UpdateReservation -> edit guests, date or time
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		NumberOfGuests  int    `json:"number_of_guests"`
		ReservationDate string `json:"reservation_date"`
		ReservationTime string `json:"reservation_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Update(uint(id), req.NumberOfGuests, req.ReservationDate, req.ReservationTime)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrNoTableAvailable):
			utils.RespondError(c, http.StatusUnprocessableEntity, err)
		case errors.Is(err, services.ErrInvalidBooking):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation -> cancel and remove the reservation
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := rc.Service.Cancel(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d cancelled", id)
	utils.RespondJSON(c, http.StatusOK, "Reservation has been cancelled", gin.H{"reservation_id": id})
}
