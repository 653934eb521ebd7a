package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/servesense/servesense/models"
)

var (
	// ErrNoTableAvailable is the expected, user-facing booking failure. It
	// is not a system error: the caller surfaces it as a validation message.
	ErrNoTableAvailable = errors.New("no tables available for that time and party size")

	// ErrInvalidBooking wraps malformed booking input.
	ErrInvalidBooking = errors.New("invalid booking request")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ReservationService owns the booking flow: customer lookup-or-create,
// table availability, reservation creation and the Pending -> Confirmed
// transition.
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

type BookingRequest struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	NumberOfGuests  int
	ReservationDate string
	ReservationTime string
}

// Validate checks the request before it touches the database.
func (r BookingRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" || r.PhoneNumber == "" {
		return fmt.Errorf("%w: customer name and phone number are required", ErrInvalidBooking)
	}
	if r.NumberOfGuests < 1 {
		return fmt.Errorf("%w: number of guests must be at least 1", ErrInvalidBooking)
	}
	if _, err := time.Parse(dateLayout, r.ReservationDate); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidBooking)
	}
	if _, err := time.Parse(timeLayout, r.ReservationTime); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidBooking)
	}
	return nil
}

// FindAvailableTable walks the candidates in order and returns the first
// one with no reservation at exactly (date, time). Candidates must already
// be filtered by capacity; their order decides which table wins. Returns
// nil when every candidate is taken.
func (s *ReservationService) FindAvailableTable(candidates []models.Table, date, timeOfDay string) (*models.Table, error) {
	for i := range candidates {
		var count int64
		err := s.db.Model(&models.Reservation{}).
			Where("table_id = ? AND reservation_date = ? AND reservation_time = ?",
				candidates[i].ID, date, timeOfDay).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// Book creates a Pending reservation for the first table that fits the
// party and is free at the requested slot. The customer record is reused
// by phone number and created on first contact; it persists even when no
// table is found.
func (s *ReservationService) Book(req BookingRequest) (*models.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.findOrCreateCustomer(req)
	if err != nil {
		return nil, err
	}

	// Primary-key order keeps first-fit deterministic.
	var candidates []models.Table
	if err := s.db.Where("capacity >= ?", req.NumberOfGuests).
		Order("id").Find(&candidates).Error; err != nil {
		return nil, err
	}

	table, err := s.FindAvailableTable(candidates, req.ReservationDate, req.ReservationTime)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrNoTableAvailable
	}

	reservation := models.Reservation{
		CustomerID:      customer.ID,
		TableID:         table.ID,
		NumberOfGuests:  req.NumberOfGuests,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		Status:          models.ReservationPending,
	}

	if err := s.db.Create(&reservation).Error; err != nil {
		// A concurrent booking can win the slot between the availability
		// check and the insert; the unique index on (table, date, time)
		// turns that into a duplicate-key error here.
		if isDuplicateSlot(err) {
			return nil, ErrNoTableAvailable
		}
		return nil, err
	}

	reservation.Customer = *customer
	reservation.Table = *table
	return &reservation, nil
}

// Confirm flips a reservation to Confirmed and its table to reserved in a
// single transaction. Confirming twice is a no-op.
func (s *ReservationService) Confirm(reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			return err
		}

		reservation.Status = models.ReservationConfirmed
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}

		var table models.Table
		if err := tx.First(&table, reservation.TableID).Error; err != nil {
			return err
		}
		table.Status = models.TableReserved
		if err := tx.Save(&table).Error; err != nil {
			return err
		}

		reservation.Table = table
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListReservations returns all reservations ordered by date then time.
func (s *ReservationService) ListReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.Preload("Customer").Preload("Table").
		Order("reservation_date, reservation_time").
		Find(&reservations).Error
	return reservations, err
}

// Update edits the guest count and slot of an existing reservation.
func (s *ReservationService) Update(reservationID uint, guests int, date, timeOfDay string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, reservationID).Error; err != nil {
		return nil, err
	}

	if guests > 0 {
		reservation.NumberOfGuests = guests
	}
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidBooking)
		}
		reservation.ReservationDate = date
	}
	if timeOfDay != "" {
		if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
			return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidBooking)
		}
		reservation.ReservationTime = timeOfDay
	}

	if err := s.db.Save(&reservation).Error; err != nil {
		if isDuplicateSlot(err) {
			return nil, ErrNoTableAvailable
		}
		return nil, err
	}
	return &reservation, nil
}

// Cancel deletes the reservation record.
func (s *ReservationService) Cancel(reservationID uint) error {
	var reservation models.Reservation
	if err := s.db.First(&reservation, reservationID).Error; err != nil {
		return err
	}
	return s.db.Delete(&reservation).Error
}

func (s *ReservationService) findOrCreateCustomer(req BookingRequest) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Where("phone_number = ?", req.PhoneNumber).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = models.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// isDuplicateSlot matches the unique-index violation raised when two
// bookings collide on the same (table, date, time). MySQL and SQLite word
// it differently.
func isDuplicateSlot(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
