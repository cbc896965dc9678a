package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, status := range []string{"Processing", "Shipped", "Delivered", "Cancelled"} {
		require.True(t, ValidStatus(status), status)
	}
	for _, status := range []string{"", "processing", "Refunded", "DELIVERED"} {
		require.False(t, ValidStatus(status), status)
	}
}

func TestCreateOrder_RequiresFields(t *testing.T) {
	svc := NewOrderService(nil, nil)

	valid := dto.CreateOrderRequest{
		Items:   []dto.OrderItemInput{{ProductID: 1, Quantity: 2}},
		Total:   2500,
		Name:    "Ali Raza",
		Email:   "ali@example.com",
		Phone:   "0300-1234567",
		Address: "12 Mall Road, Lahore",
	}

	empty := valid
	empty.Items = nil
	_, err := svc.Create("user_1", &empty)
	require.ErrorIs(t, err, ErrOrderFieldsRequired)

	noEmail := valid
	noEmail.Email = ""
	_, err = svc.Create("user_1", &noEmail)
	require.ErrorIs(t, err, ErrOrderFieldsRequired)

	noTotal := valid
	noTotal.Total = 0
	_, err = svc.Create("user_1", &noTotal)
	require.ErrorIs(t, err, ErrOrderFieldsRequired)
}

func TestCreateOrder_PersistsOrderAndItemsTogether(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	orderID, err := svc.Create("user_2abc", &dto.CreateOrderRequest{
		Items:   []dto.OrderItemInput{{ProductID: 3, Quantity: 2}},
		Total:   2998,
		Name:    "Ali Raza",
		Email:   "ali@example.com",
		Phone:   "0300-1234567",
		Address: "12 Mall Road, Lahore",
	})
	require.NoError(t, err)
	require.Equal(t, uint(7), orderID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_RollsBackWhenItemInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := svc.Create("user_2abc", &dto.CreateOrderRequest{
		Items:   []dto.OrderItemInput{{ProductID: 3, Quantity: 2}},
		Total:   2998,
		Name:    "Ali Raza",
		Email:   "ali@example.com",
		Phone:   "0300-1234567",
		Address: "12 Mall Road, Lahore",
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrder_ResetsSequenceWhenTableEmpties(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "order_items" WHERE order_id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "orders" WHERE "orders"\."id" = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`ALTER SEQUENCE orders_id_seq RESTART WITH 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrder_KeepsSequenceWhileOrdersRemain(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "order_items" WHERE order_id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "orders" WHERE "orders"\."id" = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(nil, nil)

	err := svc.UpdateStatus(1, "Refunded")
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(0, "Shipped")
	require.ErrorIs(t, err, ErrOrderFieldsRequired)
}

func TestDeleteOrder_RequiresID(t *testing.T) {
	svc := NewOrderService(nil, nil)
	require.ErrorIs(t, svc.Delete(0), ErrOrderFieldsRequired)
}
