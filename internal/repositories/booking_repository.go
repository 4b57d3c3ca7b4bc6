package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	intconfig "voyago/internal/config"
	intdb "voyago/internal/db"
	"voyago/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var bookingColumns = []string{
	"id",
	"booking_number",
	"experience_id",
	"activity_id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"booking_amount",
	"total_participants",
	"booking_date",
	"pickup_location",
	"slot_start_time",
	"slot_end_time",
	"status",
	"created_at",
}

// LastBookingNumber returns the highest booking number carrying the given
// date prefix, or "" when the prefix has no bookings yet.
func (r BookingRepository) LastBookingNumber(prefix string) (string, error) {
	query, args, err := intdb.Select("booking_number").
		From("bookings").
		Where(squirrel.Like{"booking_number": prefix + "%"}).
		OrderBy("booking_number DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", err
	}

	var number string
	if err := r.db().QueryRow(query, args...).Scan(&number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return number, nil
}

// Insert stores a new booking and returns it with the generated ID.
// Unique-key violations on booking_number come back untouched so the
// caller can detect them with db.IsDuplicateEntry.
func (r BookingRepository) Insert(b models.Booking) (models.Booking, error) {
	query, args, err := intdb.Insert("bookings").
		Columns(
			"booking_number",
			"experience_id",
			"activity_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"booking_amount",
			"total_participants",
			"booking_date",
			"pickup_location",
			"slot_start_time",
			"slot_end_time",
			"status",
		).
		Values(
			b.BookingNumber,
			b.ExperienceID,
			intdb.NullIfZero(b.ActivityID),
			b.CustomerName,
			b.CustomerPhone,
			b.CustomerEmail,
			b.BookingAmount,
			b.TotalParticipants,
			b.BookingDate,
			intdb.NullIfEmpty(b.PickupLocation),
			intdb.NullIfEmpty(b.SlotStartTime),
			intdb.NullIfEmpty(b.SlotEndTime),
			b.Status,
		).
		ToSql()
	if err != nil {
		return models.Booking{}, err
	}

	res, err := r.db().Exec(query, args...)
	if err != nil {
		return models.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	return r.GetByID(id)
}

// GetByID fetches one booking.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, fmt.Errorf("invalid booking id %d", id)
	}
	query, args, err := intdb.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Booking{}, err
	}
	return r.scanBooking(r.db().QueryRow(query, args...))
}

// GetByNumber fetches one booking by its allocated number.
func (r BookingRepository) GetByNumber(number string) (models.Booking, error) {
	query, args, err := intdb.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_number": number}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Booking{}, err
	}
	return r.scanBooking(r.db().QueryRow(query, args...))
}

// Update applies PATCH-style changes based on field presence.
func (r BookingRepository) Update(id int64, upd models.BookingUpdate) error {
	ub := intdb.Update("bookings").Where(squirrel.Eq{"id": id})
	changed := false
	if upd.CustomerName != nil {
		ub = ub.Set("customer_name", *upd.CustomerName)
		changed = true
	}
	if upd.CustomerPhone != nil {
		ub = ub.Set("customer_phone", *upd.CustomerPhone)
		changed = true
	}
	if upd.Status != nil {
		ub = ub.Set("status", *upd.Status)
		changed = true
	}
	if !changed {
		return nil
	}
	query, args, err := ub.ToSql()
	if err != nil {
		return err
	}
	_, err = r.db().Exec(query, args...)
	return err
}

func (r BookingRepository) scanBooking(row *sql.Row) (models.Booking, error) {
	var (
		b          models.Booking
		activityID sql.NullInt64
		pickup     sql.NullString
		slotStart  sql.NullString
		slotEnd    sql.NullString
	)
	err := row.Scan(
		&b.ID,
		&b.BookingNumber,
		&b.ExperienceID,
		&activityID,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.CustomerEmail,
		&b.BookingAmount,
		&b.TotalParticipants,
		&b.BookingDate,
		&pickup,
		&slotStart,
		&slotEnd,
		&b.Status,
		&b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if activityID.Valid {
		b.ActivityID = &activityID.Int64
	}
	b.PickupLocation = pickup.String
	b.SlotStartTime = slotStart.String
	b.SlotEndTime = slotEnd.String
	return b, nil
}
