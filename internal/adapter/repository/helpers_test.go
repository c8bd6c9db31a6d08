package repository

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// decimalArg compara decimais pelo valor, ignorando a escala interna
type decimalArg struct {
	want decimal.Decimal
}

func (a decimalArg) Match(v any) bool {
	switch d := v.(type) {
	case decimal.Decimal:
		return d.Equal(a.want)
	case decimal.NullDecimal:
		return d.Valid && d.Decimal.Equal(a.want)
	}
	return false
}

func decEq(v string) decimalArg {
	return decimalArg{want: decimal.RequireFromString(v)}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func ptr[T any](v T) *T {
	return &v
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}
