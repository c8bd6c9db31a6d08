package settlement

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hugohenrick/cafe-pos/internal/domain/sale"
	"github.com/hugohenrick/cafe-pos/internal/domain/store/memstore"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func ptr[T any](v T) *T {
	return &v
}

func newService(t *testing.T) (*Service, *memstore.Store) {
	t.Helper()
	st := memstore.New()
	st.SetPrice(1, dec("45"))
	st.SetPrice(2, dec("60"))
	return NewService(st, st.Sales(), logger.NewNop()), st
}

func TestSettle_MemberAccruesPoints(t *testing.T) {
	svc, st := newService(t)
	st.AddMember(3, 12)

	got, err := svc.Settle(context.Background(), SettleInput{
		Items: []sale.CartItem{
			{MenuID: 1, Quantity: 2},
			{MenuID: 2, Quantity: 1},
		},
		DiscountAmount: ptr(dec("10")),
		MemberID:       ptr(int64(3)),
		ActorID:        7,
	})
	require.NoError(t, err)

	assert.NotZero(t, got.ID)
	assert.True(t, got.Subtotal.Equal(dec("150")))
	assert.True(t, got.NetTotal.Equal(dec("140")))
	assert.Equal(t, "Cash", got.PaymentMethod)
	assert.Equal(t, int64(7), got.EmployeeID)
	assert.Equal(t, int64(7), got.PointsEarned)
	assert.Equal(t, int64(19), st.Points(3))

	require.Len(t, got.Lines, 2)
	assert.True(t, got.Lines[0].UnitPrice.Equal(dec("45")))
	assert.NotZero(t, got.Lines[0].ID)

	stored, err := svc.Get(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Lines, 2)
}

func TestSettle_PriceSnapshotIsKept(t *testing.T) {
	svc, st := newService(t)

	got, err := svc.Settle(context.Background(), SettleInput{Items: []sale.CartItem{{MenuID: 1, Quantity: 1}}, ActorID: 1})
	require.NoError(t, err)

	st.SetPrice(1, dec("99"))

	stored, err := svc.Get(context.Background(), got.ID)
	require.NoError(t, err)
	assert.True(t, stored.Lines[0].UnitPrice.Equal(dec("45")))
}

func TestSettle_NoMemberNoPoints(t *testing.T) {
	svc, st := newService(t)
	st.AddMember(3, 5)

	got, err := svc.Settle(context.Background(), SettleInput{
		Items:         []sale.CartItem{{MenuID: 2, Quantity: 3}},
		PaymentMethod: "QR",
		ActorID:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), got.PointsEarned)
	assert.Equal(t, "QR", got.PaymentMethod)
	assert.Equal(t, int64(5), st.Points(3))
}

func TestSettle_UnknownMemberStillCommits(t *testing.T) {
	svc, st := newService(t)

	got, err := svc.Settle(context.Background(), SettleInput{
		Items:    []sale.CartItem{{MenuID: 2, Quantity: 1}},
		MemberID: ptr(int64(404)),
		ActorID:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), got.PointsEarned)
	assert.Equal(t, 1, st.SalesCount())
}

func TestSettle_NegativeNetTotal(t *testing.T) {
	svc, st := newService(t)
	st.AddMember(3, 4)

	got, err := svc.Settle(context.Background(), SettleInput{
		Items:          []sale.CartItem{{MenuID: 1, Quantity: 1}},
		DiscountAmount: ptr(dec("100")),
		MemberID:       ptr(int64(3)),
		ActorID:        1,
	})
	require.NoError(t, err)

	assert.True(t, got.NetTotal.Equal(dec("-55")))
	assert.Equal(t, int64(0), got.PointsEarned)
	assert.Equal(t, int64(4), st.Points(3))
}

func TestSettle_OverrideAndUnknownItems(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.Settle(context.Background(), SettleInput{
		Items: []sale.CartItem{
			{MenuID: 1, Quantity: 1, UnitPrice: ptr(dec("30"))},
			{MenuID: 77, Quantity: 2},
			{MenuID: 2, Quantity: -4},
		},
		ActorID: 1,
	})
	require.NoError(t, err)

	require.Len(t, got.Lines, 3)
	assert.True(t, got.Lines[0].UnitPrice.Equal(dec("30")))
	assert.True(t, got.Lines[1].UnitPrice.IsZero())
	assert.Equal(t, 0, got.Lines[2].Quantity)
	assert.True(t, got.Subtotal.Equal(dec("30")))
}

func TestSettle_EmptyCart(t *testing.T) {
	svc, st := newService(t)

	_, err := svc.Settle(context.Background(), SettleInput{ActorID: 1})

	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Equal(t, 0, st.Commits())
}

func TestSettle_FailureRollsBackEverything(t *testing.T) {
	tests := []struct {
		name string
		op   string
	}{
		{"falha ao gravar item", memstore.OpSaleAddLine},
		{"falha ao creditar pontos", memstore.OpMemberAddPoints},
		{"falha ao consultar preços", memstore.OpMenuPrices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newService(t)
			st.AddMember(3, 0)
			st.FailOn(tt.op, errors.New("conexão perdida"))

			_, err := svc.Settle(context.Background(), SettleInput{
				Items:    []sale.CartItem{{MenuID: 1, Quantity: 2}},
				MemberID: ptr(int64(3)),
				ActorID:  1,
			})

			assert.True(t, apperror.Is(err, apperror.KindPersistence))
			assert.Equal(t, 0, st.SalesCount())
			assert.Equal(t, int64(0), st.Points(3))
		})
	}
}

// Aqui o memstore serializa as transações, então o teste cobre apenas o
// fluxo do serviço sob chamadas concorrentes. A garantia de não perder
// incrementos no Postgres vem do UPDATE de instrução única verificado em
// TestMemberRepository_AddPoints (adapter/repository/counters_repository_test.go).
func TestSettle_ConcurrentSettlementsCreditEverySale(t *testing.T) {
	svc, st := newService(t)
	st.AddMember(3, 0)

	const workers = 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Settle(context.Background(), SettleInput{
				Items:    []sale.CartItem{{MenuID: 2, Quantity: 1}},
				MemberID: ptr(int64(3)),
				ActorID:  1,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers*3), st.Points(3))
	assert.Equal(t, workers, st.SalesCount())
}

func TestCancel(t *testing.T) {
	svc, st := newService(t)
	st.AddMember(3, 0)

	got, err := svc.Settle(context.Background(), SettleInput{
		Items:    []sale.CartItem{{MenuID: 2, Quantity: 1}},
		MemberID: ptr(int64(3)),
		ActorID:  1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), got.ID))
	assert.Equal(t, 0, st.SalesCount())
	assert.Equal(t, int64(3), st.Points(3), "pontos não são estornados")

	err = svc.Cancel(context.Background(), got.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = svc.Get(context.Background(), got.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestList(t *testing.T) {
	svc, _ := newService(t)

	empty, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for i := 0; i < 3; i++ {
		_, err := svc.Settle(context.Background(), SettleInput{Items: []sale.CartItem{{MenuID: 1, Quantity: 1}}, ActorID: 1})
		require.NoError(t, err)
	}

	sales, err := svc.List(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Greater(t, sales[0].ID, sales[1].ID)
}

func TestSettle_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	svc, _ := newService(t)
	_, err := svc.Settle(context.Background(), SettleInput{Items: []sale.CartItem{{MenuID: 1, Quantity: 1}}, ActorID: 1})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.NotEmpty(t, spans)
	assert.Equal(t, "settlement.settle", spans[len(spans)-1].Name())
}

func TestSettle_OverrideWithFractionOfCentIsStoredRounded(t *testing.T) {
	svc, st := newService(t)

	got, err := svc.Settle(context.Background(), SettleInput{
		Items:          []sale.CartItem{{MenuID: 9, Quantity: 3, UnitPrice: ptr(dec("0.335"))}},
		DiscountAmount: ptr(dec("0.005")),
		ActorID:        1,
	})
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(dec("1.02")), "subtotal %s", got.Subtotal)
	assert.True(t, got.DiscountAmount.Equal(dec("0.01")), "discount %s", got.DiscountAmount)
	assert.True(t, got.NetTotal.Equal(dec("1.01")), "net %s", got.NetTotal)

	stored, err := st.Sales().FindByID(context.Background(), got.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	assert.True(t, stored.Lines[0].UnitPrice.Equal(dec("0.34")))
	assert.True(t, stored.Subtotal.Equal(stored.Lines[0].Extension()))
}
