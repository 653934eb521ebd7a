package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/servesense/servesense/controllers"
	"github.com/servesense/servesense/models"
	"github.com/servesense/servesense/utils"
)

// setupTestDBForTables -> SQLite in-memory just for the TableController
func setupTestDBForTables() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Table{})
	if err != nil {
		panic(err)
	}
	return db
}

func setupTableRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	tableCtrl := controllers.NewTableController(db)
	router.GET("/tables", tableCtrl.GetAllTables)
	router.POST("/tables", tableCtrl.CreateTable)
	router.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	router.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	return router
}

func TestGetAllTables(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()

	table1 := models.Table{TableNumber: "A1", Capacity: 2, Status: "available"}
	table2 := models.Table{TableNumber: "B1", Capacity: 4, Status: "occupied"}
	db.Create(&table1)
	db.Create(&table2)

	router := setupTableRouter(db)
	req, err := http.NewRequest("GET", "/tables", nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "List of tables", response["message"])

	data := response["data"].([]interface{})
	assert.GreaterOrEqual(t, len(data), 2)
}

func TestCreateTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	router := setupTableRouter(db)

	payload := map[string]interface{}{"table_number": "3B", "capacity": 4}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/tables", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	// Model fields carry no JSON tags, so Go field names come through
	assert.Equal(t, "3B", data["TableNumber"])
	assert.Equal(t, float64(4), data["Capacity"])
	assert.Equal(t, "available", data["Status"])
}

func TestCreateTableRejectsMissingCapacity(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()
	router := setupTableRouter(db)

	payload := map[string]interface{}{"table_number": "3B"}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/tables", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTableStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()

	table := models.Table{TableNumber: "C1", Capacity: 2, Status: "available"}
	db.Create(&table)

	router := setupTableRouter(db)

	payload := map[string]string{"status": "occupied"}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	url := "/tables/" + strconv.Itoa(int(table.ID))
	req, err := http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Table updated", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "occupied", data["Status"])
}

func TestUpdateTableRejectsUnknownStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()

	table := models.Table{TableNumber: "C1", Capacity: 2, Status: "available"}
	db.Create(&table)

	router := setupTableRouter(db)

	payload := map[string]string{"status": "on-fire"}
	payloadBytes, _ := json.Marshal(payload)

	url := "/tables/" + strconv.Itoa(int(table.ID))
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables()

	table := models.Table{TableNumber: "D1", Capacity: 2}
	db.Create(&table)

	router := setupTableRouter(db)

	url := "/tables/" + strconv.Itoa(int(table.ID))
	req, err := http.NewRequest("DELETE", url, nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Table{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
