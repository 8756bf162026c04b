package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSuggest(t *testing.T) {
	s, err := Suggest(d("100"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Min.Equal(d("120")) || !s.Ideal.Equal(d("200")) || !s.Premium.Equal(d("250")) {
		t.Fatalf("suggestions = %+v", s)
	}

	if _, err := Suggest(decimal.Zero); !httperr.IsBusiness(err, "invalid_cost") {
		t.Fatalf("zero cost err = %v", err)
	}
}

func TestAnalyze(t *testing.T) {
	a, err := Analyze(d("100"), d("250"))
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"profit", a.AbsoluteProfit, "150"},
		{"margin", a.ProfitMargin, "60"},
		{"min price", a.MinPriceToProfit, "110"},
		{"ideal", a.IdealPrice, "200"},
		{"max discount", a.MaxDiscountValue, "140"},
		{"max discount pct", a.MaxDiscountPercentage, "56"},
	}
	for _, c := range checks {
		if !c.got.Equal(d(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestAnalyzeRoundsAndAllowsLoss(t *testing.T) {
	a, err := Analyze(d("90"), d("99.90"))
	if err != nil {
		t.Fatal(err)
	}
	// (99.90-90)/99.90*100 = 9.9099...
	if !a.ProfitMargin.Equal(d("9.91")) {
		t.Errorf("margin = %s", a.ProfitMargin)
	}
	// 99.90 - 99 = 0.90
	if !a.MaxDiscountValue.Equal(d("0.9")) {
		t.Errorf("max discount = %s", a.MaxDiscountValue)
	}

	loss, err := Analyze(d("100"), d("80"))
	if err != nil {
		t.Fatal(err)
	}
	if !loss.AbsoluteProfit.Equal(d("-20")) || !loss.MaxDiscountValue.Equal(d("-30")) {
		t.Errorf("loss analysis = %+v", loss)
	}
}

func TestAnalyzeRejectsNonPositive(t *testing.T) {
	if _, err := Analyze(d("10"), d("0")); !httperr.IsBusiness(err, "invalid_sell_price") {
		t.Fatalf("err = %v", err)
	}
	if _, err := Analyze(d("-1"), d("10")); !httperr.IsBusiness(err, "invalid_cost") {
		t.Fatalf("err = %v", err)
	}
}
