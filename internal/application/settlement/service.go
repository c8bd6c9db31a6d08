package settlement

import (
	"context"
	"errors"

	"github.com/hugohenrick/cafe-pos/internal/domain/sale"
	"github.com/hugohenrick/cafe-pos/internal/domain/store"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SettleInput contém o carrinho fechado pelo caixa
type SettleInput struct {
	Items          []sale.CartItem
	PaymentMethod  string
	DiscountAmount *decimal.Decimal
	MemberID       *int64
	PromotionID    *int64
	ActorID        int64
}

// Service fecha vendas: precifica o carrinho, grava cabeçalho e itens
// e credita pontos ao membro em uma única transação
type Service struct {
	uow    store.UnitOfWork
	reader sale.Reader
	log    logger.Logger
	tracer trace.Tracer
}

// NewService cria uma nova instância de Service
func NewService(uow store.UnitOfWork, reader sale.Reader, log logger.Logger) *Service {
	return &Service{
		uow:    uow,
		reader: reader,
		log:    log,
		tracer: otel.Tracer("cafe-pos/settlement"),
	}
}

// Settle registra a venda e retorna o cabeçalho gravado com os itens precificados
func (s *Service) Settle(ctx context.Context, in SettleInput) (*sale.Sale, error) {
	ctx, span := s.tracer.Start(ctx, "settlement.settle")
	defer span.End()
	span.SetAttributes(attribute.Int("sale.items", len(in.Items)))

	if len(in.Items) == 0 {
		return nil, apperror.Validation("itens são obrigatórios")
	}

	discount := decimal.Zero
	if in.DiscountAmount != nil {
		discount = *in.DiscountAmount
	}

	var settled *sale.Sale
	err := s.uow.Do(ctx, func(ctx context.Context, tx store.Tx) error {
		prices, err := tx.Menu().CurrentPrices(ctx, sale.MenuIDsToLookup(in.Items))
		if err != nil {
			return err
		}

		lines, unknown := sale.PriceLines(in.Items, prices)
		if len(unknown) > 0 {
			s.log.Warn("itens fora do cardápio precificados com zero", "menu_ids", unknown)
		}

		sl, err := sale.NewSale(lines, discount, in.PaymentMethod, in.ActorID, in.MemberID, in.PromotionID)
		if err != nil {
			if errors.Is(err, sale.ErrEmptyCart) {
				return apperror.Validation(err.Error())
			}
			return err
		}

		if err := tx.Sales().Create(ctx, sl); err != nil {
			return err
		}

		for i := range sl.Lines {
			if err := tx.Sales().AddLine(ctx, sl.ID, &sl.Lines[i]); err != nil {
				return err
			}
		}

		if points := sl.PointsToAccrue(); points > 0 {
			credited, err := tx.Members().AddPoints(ctx, *sl.MemberID, points)
			if err != nil {
				return err
			}
			if credited {
				sl.PointsEarned = points
			} else {
				s.log.Warn("membro não encontrado, pontos não creditados", "sale_id", sl.ID, "member_id", *sl.MemberID)
			}
		}

		settled = sl
		return nil
	})
	if err != nil {
		recordError(span, err)
		s.log.Error("erro ao registrar venda", "error", err, "actor_id", in.ActorID)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("sale.id", settled.ID),
		attribute.String("sale.net_total", settled.NetTotal.String()),
		attribute.Int64("sale.points_earned", settled.PointsEarned),
	)
	s.log.Info("venda registrada",
		"sale_id", settled.ID,
		"net_total", settled.NetTotal.String(),
		"points_earned", settled.PointsEarned,
		"actor_id", in.ActorID,
	)

	return settled, nil
}

// Cancel exclui a venda e seus itens. Pontos já creditados não são estornados.
func (s *Service) Cancel(ctx context.Context, saleID int64) error {
	ctx, span := s.tracer.Start(ctx, "settlement.cancel")
	defer span.End()
	span.SetAttributes(attribute.Int64("sale.id", saleID))

	err := s.uow.Do(ctx, func(ctx context.Context, tx store.Tx) error {
		if err := tx.Sales().DeleteLines(ctx, saleID); err != nil {
			return err
		}

		deleted, err := tx.Sales().Delete(ctx, saleID)
		if err != nil {
			return err
		}
		if !deleted {
			return apperror.NotFound("venda não encontrada")
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		if !apperror.Is(err, apperror.KindNotFound) {
			s.log.Error("erro ao cancelar venda", "error", err, "sale_id", saleID)
		}
		return err
	}

	s.log.Info("venda cancelada", "sale_id", saleID)
	return nil
}

// Get busca uma venda com seus itens
func (s *Service) Get(ctx context.Context, saleID int64) (*sale.Sale, error) {
	sl, err := s.reader.FindByID(ctx, saleID)
	if err != nil {
		return nil, asAppError(err, "erro ao buscar venda")
	}
	return sl, nil
}

// List lista as vendas mais recentes primeiro
func (s *Service) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	limit, offset = store.NormalizePage(limit, offset)

	sales, err := s.reader.List(ctx, limit, offset)
	if err != nil {
		return nil, asAppError(err, "erro ao listar vendas")
	}
	if sales == nil {
		sales = []*sale.Sale{}
	}
	return sales, nil
}

func asAppError(err error, message string) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Persistence(message, err)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
