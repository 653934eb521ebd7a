package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/servesense/servesense/controllers"
	"github.com/servesense/servesense/models"
	"github.com/servesense/servesense/utils"
)

func setupTestDBForUsers() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.User{})
	if err != nil {
		panic(err)
	}
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers()
	router := setupUserRouter(db)

	payload := map[string]interface{}{
		"username": "manager1",
		"password": "supersecret",
		"role":     "Manager",
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/register", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Password is stored hashed, never verbatim
	var stored models.User
	db.Where("username = ?", "manager1").First(&stored)
	assert.NotEqual(t, "supersecret", stored.Password)

	login := map[string]string{"username": "manager1", "password": "supersecret"}
	loginBytes, _ := json.Marshal(login)
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(loginBytes))
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "manager", data["user_role"])
}

func TestLoginWrongPassword(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers()
	router := setupUserRouter(db)

	payload := map[string]interface{}{
		"username": "waiter1",
		"password": "supersecret",
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	login := map[string]string{"username": "waiter1", "password": "wrong"}
	loginBytes, _ := json.Marshal(login)
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(loginBytes))
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers()
	router := setupUserRouter(db)

	payload := map[string]interface{}{
		"username": "intruder",
		"password": "supersecret",
		"role":     "Superuser",
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
