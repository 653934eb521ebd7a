package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servesense/servesense/models"
	"github.com/servesense/servesense/utils"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// GetAllStaff -> the staff overview, every account with duty status
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	var staff []models.User
	if err := sc.DB.Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for i := range staff {
		staff[i].Password = ""
	}
	utils.RespondJSON(c, http.StatusOK, "List of staff", staff)
}

// UpdateStaff -> managers edit a staff member's profile and role
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("staff_id"))

	var req struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Email       string `json:"email"`
		Role        string `json:"role"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var staff models.User
	if err := sc.DB.First(&staff, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.FirstName != "" {
		staff.FirstName = req.FirstName
	}
	if req.LastName != "" {
		staff.LastName = req.LastName
	}
	if req.Email != "" {
		staff.Email = req.Email
	}
	if req.PhoneNumber != "" {
		staff.PhoneNumber = req.PhoneNumber
	}
	if req.Role != "" {
		if req.Role != models.RoleManager && req.Role != models.RoleWaiter && req.Role != models.RoleChef {
			utils.RespondError(c, http.StatusBadRequest, errors.New("role must be Manager, Waiter or Chef"))
			return
		}
		staff.Role = req.Role
	}

	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	staff.Password = ""
	utils.RespondJSON(c, http.StatusOK, "Staff updated", staff)
}

// ClockIn -> mark on duty and open a new attendance record
func (sc *StaffController) ClockIn(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("staff_id"))

	var staff models.User
	if err := sc.DB.First(&staff, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	staff.IsOnDuty = true
	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	attendance := models.Attendance{
		StaffID:     staff.ID,
		ClockInTime: time.Now(),
	}
	if err := sc.DB.Create(&attendance).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Staff %s clocked in", staff.Username)
	utils.RespondJSON(c, http.StatusOK, "Clocked in", attendance)
}

// ClockOut -> mark off duty and close the latest open shift
func (sc *StaffController) ClockOut(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("staff_id"))

	var staff models.User
	if err := sc.DB.First(&staff, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	staff.IsOnDuty = false
	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Close the most recent open shift if one exists; clocking out without
	// an open shift only flips the duty flag.
	var attendance models.Attendance
	err := sc.DB.Where("staff_id = ? AND clock_out_time IS NULL", staff.ID).
		Order("clock_in_time DESC").First(&attendance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondJSON(c, http.StatusOK, "Clocked out (no open shift found)", nil)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	attendance.ClockOutTime = &now
	if err := sc.DB.Save(&attendance).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Staff %s clocked out", staff.Username)
	utils.RespondJSON(c, http.StatusOK, "Clocked out", attendance)
}

// GetAttendance -> shift history, newest first
func (sc *StaffController) GetAttendance(c *gin.Context) {
	var records []models.Attendance
	query := sc.DB.Preload("Staff").Order("clock_in_time DESC")

	if staffID := c.Query("staff_id"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}

	if err := query.Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for i := range records {
		records[i].Staff.Password = ""
	}
	utils.RespondJSON(c, http.StatusOK, "Attendance records", records)
}
