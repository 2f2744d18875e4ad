package sqlite

import (
	"context"

	tradeDomain "github.com/iamaanahmad/LoanLedger/internal/domain/trade"

	"gorm.io/gorm"
)

type TradeRepository struct{ db *gorm.DB }

func NewTradeRepository(db *gorm.DB) *TradeRepository { return &TradeRepository{db: db} }

func (r *TradeRepository) Create(ctx context.Context, t *tradeDomain.Trade) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TradeRepository) GetByTradeID(ctx context.Context, tradeID string) (*tradeDomain.Trade, error) {
	var out tradeDomain.Trade
	res := r.db.WithContext(ctx).Where("trade_id = ?", tradeID).First(&out)
	return &out, res.Error
}

func (r *TradeRepository) List(ctx context.Context) ([]tradeDomain.Trade, error) {
	var out []tradeDomain.Trade
	res := r.db.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *TradeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&tradeDomain.Trade{}).Count(&n)
	return n, res.Error
}
