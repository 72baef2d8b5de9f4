package postgres

import (
	"context"
	"testing"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		EquipmentID: 10,
		RenterID:    2,
		OwnerID:     1,
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		PricePerDay: 5000,
		TotalPrice:  25000,
		Status:      domain.ReservationStatusPending,
	}
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepository(db)

	rv := testReservation()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM equipements WHERE id = \\$1 FOR UPDATE").
		WithArgs(rv.EquipmentID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM reservations_equipements").
		WithArgs(rv.EquipmentID, rv.StartDate, rv.EndDate).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO reservations_equipements").
		WithArgs(rv.EquipmentID, rv.RenterID, rv.OwnerID, rv.StartDate, rv.EndDate,
			rv.PricePerDay, rv.TotalPrice, rv.Status, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	err = repo.Create(context.Background(), rv)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), rv.ID)
	assert.False(t, rv.CreatedOn.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_CreateOverlap(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepository(db)

	rv := testReservation()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM equipements WHERE id = \\$1 FOR UPDATE").
		WithArgs(rv.EquipmentID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM reservations_equipements").
		WithArgs(rv.EquipmentID, rv.StartDate, rv.EndDate).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), rv)
	assert.ErrorIs(t, err, repository.ErrOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_CreateEquipmentMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepository(db)

	rv := testReservation()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM equipements WHERE id = \\$1 FOR UPDATE").
		WithArgs(rv.EquipmentID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), rv)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepository(db)

	t.Run("Updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations_equipements SET statut = \\$1").
			WithArgs(domain.ReservationStatusConfirmed, sqlmock.AnyArg(), int32(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 42, domain.ReservationStatusConfirmed)
		assert.NoError(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations_equipements SET statut = \\$1").
			WithArgs(domain.ReservationStatusConfirmed, sqlmock.AnyArg(), int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 99, domain.ReservationStatusConfirmed)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_ListByRenter(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := NewReservationRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM \\(SELECT").
		WithArgs(int32(2), domain.ReservationStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT id, equipement_id, locataire_id").
		WithArgs(int32(2), domain.ReservationStatusPending, int32(20), int32(0)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "equipement_id", "locataire_id", "proprietaire_id",
			"date_debut", "date_fin", "prix_jour", "prix_total", "statut", "created_on", "updated_on",
		}).AddRow(42, 10, 2, 1, now, now, 5000.0, 25000.0, "en_attente", now, now))

	items, total, err := repo.ListByRenter(context.Background(), 2, domain.ReservationStatusPending, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, items, 1)
	assert.Equal(t, domain.ReservationStatusPending, items[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
