package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/servesense/servesense/models"
	"github.com/servesense/servesense/router"
	"github.com/servesense/servesense/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndBookingFlow covers the main flow:
// 0. Register a manager and log in -> token
// 1. Create a table
// 2. Book a reservation (public endpoint)
// 3. Second booking for the same slot is rejected
// 4. Accept the reservation -> Confirmed, table reserved
func TestEndToEndBookingFlow(t *testing.T) {
	db := setupIntegrationDB()
	gin.SetMode(gin.TestMode)
	r := router.SetupRouter(db)

	token := registerAndLogin(t, r)

	tableID := createTable(t, r, token, "A1", 2)
	assert.NotZero(t, tableID)

	reservationID := bookReservation(t, r)

	// Same date, time and party size: the only table is taken
	w := doJSON(t, r, "POST", "/reservations", "", bookingPayload("555-0202"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(1), count)

	acceptReservation(t, r, token, reservationID)

	var table models.Table
	db.First(&table, tableID)
	assert.Equal(t, models.TableReserved, table.Status)

	var reservation models.Reservation
	db.First(&reservation, reservationID)
	assert.Equal(t, models.ReservationConfirmed, reservation.Status)
}

func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.Customer{},
		&models.Reservation{},
		&models.MenuItem{},
		&models.Attendance{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username": "manager1",
		"password": "supersecret",
		"role":     "Manager",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "manager1",
		"password": "supersecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	token := response["data"].(map[string]interface{})["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func createTable(t *testing.T, r *gin.Engine, token, number string, capacity int) uint {
	w := doJSON(t, r, "POST", "/admin/tables", token, map[string]interface{}{
		"table_number": number,
		"capacity":     capacity,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return uint(response["data"].(map[string]interface{})["ID"].(float64))
}

func bookingPayload(phone string) map[string]interface{} {
	return map[string]interface{}{
		"first_name":       "Grace",
		"last_name":        "Hopper",
		"phone_number":     phone,
		"number_of_guests": 2,
		"reservation_date": "2025-06-01",
		"reservation_time": "18:00",
	}
}

func bookReservation(t *testing.T, r *gin.Engine) uint {
	w := doJSON(t, r, "POST", "/reservations", "", bookingPayload("555-0101"))
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Pending", data["Status"])
	return uint(data["ID"].(float64))
}

func acceptReservation(t *testing.T, r *gin.Engine, token string, id uint) {
	url := "/admin/reservations/" + strconv.Itoa(int(id)) + "/accept"
	w := doJSON(t, r, "POST", url, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
