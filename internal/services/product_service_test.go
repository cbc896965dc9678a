package services

import (
	"strings"
	"testing"
	"time"

	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestGenerateProductSlug(t *testing.T) {
	now := time.UnixMilli(1700000123456)

	slug := GenerateProductSlug("Classic Oxford Shirt", now)
	require.Equal(t, "classic-oxford-shirt-123456", slug)

	long := strings.Repeat("very long product name ", 5)
	slug = GenerateProductSlug(long, now)
	base := strings.TrimSuffix(slug, "-123456")
	require.LessOrEqual(t, len(base), 50)
}

func TestApplySaleFields(t *testing.T) {
	orig := 1500.0
	row := dto.ProductRow{Price: 1000, OriginalPrice: &orig}
	applySaleFields(&row)
	require.True(t, row.IsOnSale)
	require.Equal(t, 33, row.SalePercentage)

	// No original price: not on sale.
	row = dto.ProductRow{Price: 1000}
	applySaleFields(&row)
	require.False(t, row.IsOnSale)
	require.Zero(t, row.SalePercentage)

	// Original price at or below price never counts as a sale.
	same := 1000.0
	row = dto.ProductRow{Price: 1000, OriginalPrice: &same}
	applySaleFields(&row)
	require.False(t, row.IsOnSale)
}

func TestCreateProduct_RequiresFields(t *testing.T) {
	svc := NewProductService(nil)
	categoryID := uint(1)

	cases := []dto.CreateProductRequest{
		{Price: 100, Image: "a.webp", CategoryID: &categoryID},
		{Name: "Tee", Image: "a.webp", CategoryID: &categoryID},
		{Name: "Tee", Price: 100, CategoryID: &categoryID},
		{Name: "Tee", Price: 100, Image: "a.webp"},
	}
	for _, req := range cases {
		_, err := svc.Create(&req)
		require.ErrorIs(t, err, ErrProductFieldsRequired)
	}
}

func TestUpdateProduct_RequiresFields(t *testing.T) {
	svc := NewProductService(nil)

	_, err := svc.Update(1, &dto.UpdateProductRequest{Name: "Tee", Price: 100})
	require.ErrorIs(t, err, ErrProductUpdateIncomplete)
}
