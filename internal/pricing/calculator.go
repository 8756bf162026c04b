package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
)

var (
	minMarkup       = decimal.RequireFromString("1.2")
	idealMarkup     = decimal.NewFromInt(2)
	premiumMarkup   = decimal.RequireFromString("2.5")
	breakEvenMarkup = decimal.RequireFromString("1.1")
	hundred         = decimal.NewFromInt(100)
)

type Suggestions struct {
	Min     decimal.Decimal `json:"min"`
	Ideal   decimal.Decimal `json:"ideal"`
	Premium decimal.Decimal `json:"premium"`
}

type Analysis struct {
	Cost                  decimal.Decimal `json:"cost"`
	SellPrice             decimal.Decimal `json:"sell_price"`
	AbsoluteProfit        decimal.Decimal `json:"absolute_profit"`
	ProfitMargin          decimal.Decimal `json:"profit_margin"`
	MinPriceToProfit      decimal.Decimal `json:"min_price_to_profit"`
	IdealPrice            decimal.Decimal `json:"ideal_price"`
	MaxDiscountValue      decimal.Decimal `json:"max_discount_value"`
	MaxDiscountPercentage decimal.Decimal `json:"max_discount_percentage"`
}

var ErrInvalidCost = httperr.ErrBusinessMsg("invalid_cost", "Informe um preço de custo maior que zero.")
var ErrInvalidSellPrice = httperr.ErrBusinessMsg("invalid_sell_price", "Informe um preço de venda maior que zero.")

// Suggest returns the three reference sell prices for a cost.
func Suggest(cost decimal.Decimal) (Suggestions, error) {
	if !cost.IsPositive() {
		return Suggestions{}, ErrInvalidCost
	}
	return Suggestions{
		Min:     cost.Mul(minMarkup).Round(2),
		Ideal:   cost.Mul(idealMarkup).Round(2),
		Premium: cost.Mul(premiumMarkup).Round(2),
	}, nil
}

// Analyze compares a sell price against a cost. Percentages are of the
// sell price; the discount ceiling keeps a 10% profit over cost and goes
// negative when the sell price is already below that.
func Analyze(cost, sell decimal.Decimal) (Analysis, error) {
	if !cost.IsPositive() {
		return Analysis{}, ErrInvalidCost
	}
	if !sell.IsPositive() {
		return Analysis{}, ErrInvalidSellPrice
	}

	profit := sell.Sub(cost)
	minPrice := cost.Mul(breakEvenMarkup)
	maxDiscount := sell.Sub(minPrice)

	return Analysis{
		Cost:                  cost.Round(2),
		SellPrice:             sell.Round(2),
		AbsoluteProfit:        profit.Round(2),
		ProfitMargin:          profit.Div(sell).Mul(hundred).Round(2),
		MinPriceToProfit:      minPrice.Round(2),
		IdealPrice:            cost.Mul(idealMarkup).Round(2),
		MaxDiscountValue:      maxDiscount.Round(2),
		MaxDiscountPercentage: maxDiscount.Div(sell).Mul(hundred).Round(2),
	}, nil
}
