package services

import (
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDetails_Validation(t *testing.T) {
	svc := NewProductDetailsService(nil)

	_, err := svc.Create(&dto.CreateProductDetailsRequest{
		ProductID: "abc", Rating: "4.5",
	})
	require.ErrorIs(t, err, ErrInvalidProductID)

	_, err = svc.Create(&dto.CreateProductDetailsRequest{
		ProductID: "0", Rating: "4.5",
	})
	require.ErrorIs(t, err, ErrInvalidProductID)

	_, err = svc.Create(&dto.CreateProductDetailsRequest{
		ProductID: "5", Rating: "great",
	})
	require.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Create(&dto.CreateProductDetailsRequest{
		ProductID: "5", Rating: "4.5", Quantity: "-3",
	})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Create(&dto.CreateProductDetailsRequest{
		ProductID: "5", Rating: "4.5", Quantity: "2.5",
	})
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

// The decrement carries the quantity > 0 guard in the statement itself, so
// the database can never be driven below zero regardless of interleaving.
func TestReduceStock_GuardedDecrement(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductDetailsService(db)

	mock.ExpectQuery(`(?s)UPDATE product_details.+quantity = quantity - 1.+quantity > 0.+RETURNING quantity`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(2))

	quantity, err := svc.ReduceStock(5)
	require.NoError(t, err)
	require.Equal(t, 2, quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReduceStock_OutOfStock(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductDetailsService(db)

	// Row exists but the guard matched nothing: no decrement happened.
	mock.ExpectQuery(`(?s)UPDATE product_details.+quantity > 0.+RETURNING quantity`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "product_details" WHERE product_id = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.ReduceStock(5)
	require.ErrorIs(t, err, ErrOutOfStock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReduceStock_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductDetailsService(db)

	mock.ExpectQuery(`(?s)UPDATE product_details.+quantity > 0.+RETURNING quantity`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "product_details" WHERE product_id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.ReduceStock(99)
	require.ErrorIs(t, err, ErrDetailsNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToJSONList(t *testing.T) {
	var got []string

	// Missing gallery falls back to four empty slots.
	require.NoError(t, json.Unmarshal(toJSONList(nil, []string{"", "", "", ""}), &got))
	require.Equal(t, []string{"", "", "", ""}, got)

	// Provided values pass through, including an explicit empty list.
	require.NoError(t, json.Unmarshal(toJSONList([]string{"a.webp", "b.webp"}, []string{""}), &got))
	require.Equal(t, []string{"a.webp", "b.webp"}, got)

	require.NoError(t, json.Unmarshal(toJSONList([]string{}, []string{""}), &got))
	require.Empty(t, got)
}
