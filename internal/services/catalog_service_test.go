package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Summer Wear", "summer-wear"},
		{"already lower", "shoes", "shoes"},
		{"extra whitespace", "  Winter   Collection  ", "winter-collection"},
		{"special characters", "New Arrivals!", "new-arrivals"},
		{"numbers kept", "Top 10 Picks", "top-10-picks"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestCreateCategory_RequiresName(t *testing.T) {
	svc := NewCatalogService(nil)

	_, err := svc.CreateCategory(&dto.CreateCategoryRequest{Name: "   "})
	require.ErrorIs(t, err, ErrCategoryNameRequired)
}

func TestCreateNavigationItem_RequiresTitleAndSlug(t *testing.T) {
	svc := NewCatalogService(nil)

	_, err := svc.CreateNavigationItem(&dto.CreateNavigationRequest{Title: "Men"})
	require.ErrorIs(t, err, ErrTitleSlugRequired)

	_, err = svc.CreateNavigationItem(&dto.CreateNavigationRequest{Slug: "men"})
	require.ErrorIs(t, err, ErrTitleSlugRequired)
}

func TestUpdateNavigationItem_RequiresIDTitleSlug(t *testing.T) {
	svc := NewCatalogService(nil)

	err := svc.UpdateNavigationItem(&dto.UpdateNavigationRequest{Title: "Men", Slug: "men"})
	require.ErrorIs(t, err, ErrTitleSlugRequired)
}

func TestHasChildrenError_CarriesChildIDs(t *testing.T) {
	err := &HasChildrenError{Children: []uint{3, 7}}
	require.Equal(t, []uint{3, 7}, err.Children)
	require.Contains(t, err.Error(), "children")
}

// Deleting a node with children must refuse before any write; the mock fails
// on any statement beyond the two reads.
func TestDeleteNavigationItem_WithChildrenMutatesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCatalogService(db)

	columns := []string{"id", "title", "slug", "parent_id", "position", "is_category"}
	mock.ExpectQuery(`SELECT \* FROM "navigation" WHERE "navigation"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(4, "Men", "men", nil, 0, false))
	mock.ExpectQuery(`SELECT "id" FROM "navigation" WHERE parent_id = \$1`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6).AddRow(9))

	err := svc.DeleteNavigationItem(4)

	var hasChildren *HasChildrenError
	require.ErrorAs(t, err, &hasChildren)
	require.Equal(t, []uint{6, 9}, hasChildren.Children)
	require.NoError(t, mock.ExpectationsWereMet())
}
