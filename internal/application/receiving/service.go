package receiving

import (
	"context"
	"fmt"

	"github.com/hugohenrick/cafe-pos/internal/domain/purchase"
	"github.com/hugohenrick/cafe-pos/internal/domain/store"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CreateOrderInput contém o pedido enviado ao fornecedor
type CreateOrderInput struct {
	SupplierID *int64
	Status     string
	Lines      []purchase.Line
}

// Service registra pedidos de compra e dá entrada no estoque quando recebidos
type Service struct {
	uow    store.UnitOfWork
	reader purchase.Reader
	log    logger.Logger
	tracer trace.Tracer
}

// NewService cria uma nova instância de Service
func NewService(uow store.UnitOfWork, reader purchase.Reader, log logger.Logger) *Service {
	return &Service{
		uow:    uow,
		reader: reader,
		log:    log,
		tracer: otel.Tracer("cafe-pos/receiving"),
	}
}

// CreateOrder grava o pedido e, se ele já chega como recebido, soma as quantidades ao estoque
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (*purchase.Order, error) {
	ctx, span := s.tracer.Start(ctx, "receiving.create_order")
	defer span.End()
	span.SetAttributes(attribute.Int("order.lines", len(in.Lines)))

	order, err := purchase.NewOrder(in.SupplierID, in.Status, in.Lines)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	err = s.uow.Do(ctx, func(ctx context.Context, tx store.Tx) error {
		orders := tx.PurchaseOrders()
		if err := orders.Create(ctx, order); err != nil {
			return err
		}

		for i := range order.Lines {
			if err := order.Lines[i].Validate(); err != nil {
				return apperror.Validation(fmt.Sprintf("item %d: %s", i+1, err))
			}
			if err := orders.AddLine(ctx, order.ID, &order.Lines[i]); err != nil {
				return err
			}
		}

		if order.Status.IsReceived() {
			return s.applyStock(ctx, tx, order.Lines)
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		s.logFailure("erro ao registrar pedido de compra", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("order.id", order.ID),
		attribute.String("order.status", string(order.Status)),
	)
	s.log.Info("pedido de compra registrado",
		"order_id", order.ID,
		"status", string(order.Status),
		"lines", len(order.Lines),
	)

	return order, nil
}

// Receive marca um pedido pendente como recebido e dá entrada no estoque.
// O estoque é incrementado uma única vez por pedido.
func (s *Service) Receive(ctx context.Context, orderID int64) error {
	ctx, span := s.tracer.Start(ctx, "receiving.receive")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", orderID))

	err := s.uow.Do(ctx, func(ctx context.Context, tx store.Tx) error {
		orders := tx.PurchaseOrders()

		changed, err := orders.MarkReceived(ctx, orderID)
		if err != nil {
			return err
		}
		if !changed {
			// distingue pedido inexistente de pedido já recebido
			if _, err := orders.Status(ctx, orderID); err != nil {
				return err
			}
			return apperror.Validation(purchase.ErrAlreadyReceived.Error())
		}

		lines, err := orders.Lines(ctx, orderID)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("order.lines", len(lines)))

		return s.applyStock(ctx, tx, lines)
	})
	if err != nil {
		recordError(span, err)
		s.logFailure("erro ao receber pedido de compra", err, "order_id", orderID)
		return err
	}

	s.log.Info("pedido de compra recebido", "order_id", orderID)
	return nil
}

// Get busca um pedido com seus itens
func (s *Service) Get(ctx context.Context, orderID int64) (*purchase.Order, error) {
	o, err := s.reader.FindByID(ctx, orderID)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.Persistence("erro ao buscar pedido de compra", err)
	}
	return o, nil
}

// List lista os pedidos mais recentes primeiro
func (s *Service) List(ctx context.Context, limit, offset int) ([]*purchase.Order, error) {
	limit, offset = store.NormalizePage(limit, offset)

	orders, err := s.reader.List(ctx, limit, offset)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.Persistence("erro ao listar pedidos de compra", err)
	}
	if orders == nil {
		orders = []*purchase.Order{}
	}
	return orders, nil
}

// applyStock emite um incremento atômico por ingrediente
func (s *Service) applyStock(ctx context.Context, tx store.Tx, lines []purchase.Line) error {
	for _, inc := range purchase.StockIncrements(lines) {
		found, err := tx.Ingredients().IncrementStock(ctx, inc.IngredientID, inc.Quantity)
		if err != nil {
			return err
		}
		if !found {
			return apperror.Validation(fmt.Sprintf("ingrediente %s não encontrado", inc.IngredientID))
		}
	}
	return nil
}

func (s *Service) logFailure(msg string, err error, keysAndValues ...interface{}) {
	fields := append([]interface{}{"error", err}, keysAndValues...)
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindNotFound:
		s.log.Warn(msg, fields...)
	default:
		s.log.Error(msg, fields...)
	}
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
