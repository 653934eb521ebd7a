package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servesense/servesense/controllers"
	"github.com/servesense/servesense/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	menuCtrl := controllers.NewMenuController(db)
	reservationCtrl := controllers.NewReservationController(db)
	staffCtrl := controllers.NewStaffController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter on login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Guests browse the menu and tables without logging in
	r.GET("/menus", menuCtrl.GetAllMenuItems)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuItemByID)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/by-status", tableCtrl.FindTablesByStatus)

	// Guests book reservations without logging in
	r.GET("/reservations", reservationCtrl.GetAllReservations)
	r.POST("/reservations", reservationCtrl.CreateReservation)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// RESERVATIONS (staff accept/edit/cancel)
	auth.GET("/reservations", reservationCtrl.GetAllReservations)
	auth.POST("/reservations/:reservation_id/accept", reservationCtrl.AcceptReservation)
	auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	auth.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

	// TABLES
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.POST("/tables", tableCtrl.CreateTable)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// MENU
	auth.POST("/menus", menuCtrl.CreateMenuItem)
	auth.PATCH("/menus/:menu_id", menuCtrl.UpdateMenuItem)
	auth.DELETE("/menus/:menu_id", menuCtrl.DeleteMenuItem)

	// STAFF & ATTENDANCE
	auth.GET("/staff", staffCtrl.GetAllStaff)
	auth.GET("/attendance", staffCtrl.GetAttendance)
	auth.POST("/staff/:staff_id/clock-in", staffCtrl.ClockIn)
	auth.POST("/staff/:staff_id/clock-out", staffCtrl.ClockOut)

	// Manager-only staff management
	managers := auth.Group("/")
	managers.Use(middlewares.RequireManager())
	{
		managers.POST("/staff", userCtrl.Register)
		managers.PATCH("/staff/:staff_id", staffCtrl.UpdateStaff)
	}

	return r
}
