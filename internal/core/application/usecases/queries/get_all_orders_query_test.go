package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAllOrdersQuery(0, 20)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 0, query.Page())
	assert.Equal(t, 20, query.Size())
}

func TestNewGetAllOrdersQuery_InvalidPagination(t *testing.T) {
	testCases := []struct {
		name string
		page int
		size int
	}{
		{"negative page", -1, 20},
		{"zero size", 0, 0},
		{"negative size", 0, -5},
		{"oversized page", 0, 101},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewGetAllOrdersQuery(tc.page, tc.size)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
