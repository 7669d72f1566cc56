package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery(order.Pending, 0, 20)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Pending, query.Status())
	assert.Equal(t, 0, query.Page())
	assert.Equal(t, 20, query.Size())
}

func TestNewGetOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown, 0, 20)

	require.Error(t, err)
}

func TestNewGetOrdersByStatusQuery_InvalidPagination(t *testing.T) {
	testCases := []struct {
		name string
		page int
		size int
	}{
		{"negative page", -1, 20},
		{"zero size", 0, 0},
		{"oversized page", 0, 101},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewGetOrdersByStatusQuery(order.Pending, tc.page, tc.size)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestGetOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByStatusQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
