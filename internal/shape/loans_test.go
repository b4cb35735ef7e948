package shape

import (
	"testing"

	"github.com/yourorg/nft-collection-dashboard/internal/display"
)

func TestLoanSummary(t *testing.T) {
	rows := []RawLoanMarket{
		{
			Market:                 "sharky",
			VolumeSol:              fptr(120.456),
			CntOffered:             fptr(100),
			CntAccepted:            fptr(80),
			CntRepayed:             fptr(60),
			CntLiquidated:          fptr(5),
			CntUniqueLenders:       fptr(40),
			CntUniqueBorrowers:     fptr(35),
			AvgAPY:                 fptr(31.337),
			AvgLoanDurationSeconds: fptr(172800),
		},
		{
			Market:    "citrus",
			VolumeSol: fptr(10.004),
			AvgAPY:    nil,
		},
	}

	got := LoanSummary(rows)
	if len(got.Markets) != 2 {
		t.Fatalf("market count = %d, want 2", len(got.Markets))
	}

	first := got.Markets[0]
	if first.Volume != 120.46 {
		t.Errorf("volume = %v, want 120.46", first.Volume)
	}
	if first.Offered != 100 || first.Accepted != 80 || first.Repaid != 60 || first.Liquidated != 5 {
		t.Errorf("counts = %+v, want pass-through", first)
	}
	if first.AvgAPY != "31.34" {
		t.Errorf("avg APY = %q, want 31.34", first.AvgAPY)
	}
	if first.AvgDurationDays != "2.00" {
		t.Errorf("avg duration = %q, want 2.00 days", first.AvgDurationDays)
	}

	second := got.Markets[1]
	if second.AvgAPY != display.Sentinel {
		t.Errorf("missing APY = %q, want sentinel", second.AvgAPY)
	}
}

func TestLoanSummaryTotals(t *testing.T) {
	summary := LoanSummary([]RawLoanMarket{
		{Market: "a", VolumeSol: fptr(10), CntOffered: fptr(3), CntAccepted: fptr(2), CntRepayed: fptr(1), CntLiquidated: fptr(1)},
		{Market: "b", VolumeSol: fptr(5.5), CntOffered: fptr(7), CntAccepted: fptr(4), CntRepayed: fptr(3), CntLiquidated: fptr(0)},
	})

	totals := summary.Totals()
	if totals.Volume != 15.5 {
		t.Errorf("total volume = %v, want 15.5", totals.Volume)
	}
	if totals.Offered != 10 || totals.Accepted != 6 || totals.Repaid != 4 || totals.Liquidated != 1 {
		t.Errorf("totals = %+v, want 10/6/4/1", totals)
	}
}

func TestLoanSummaryEmpty(t *testing.T) {
	got := LoanSummary(nil)
	if len(got.Markets) != 0 {
		t.Errorf("empty payload shaped to %d markets, want 0", len(got.Markets))
	}
}

func TestSharkyLoanSummary(t *testing.T) {
	rows := []RawSharkyRow{
		{Granularity: "7 days", NumDefaults: fptr(12), NumRepaid: fptr(88), DefaultRate: fptr(12.0)},
		{Granularity: "14 days", NumDefaults: fptr(1), NumRepaid: fptr(9), DefaultRate: nil},
	}

	got := SharkyLoanSummary(rows)
	if len(got) != 2 {
		t.Fatalf("row count = %d, want 2", len(got))
	}
	if got[0].LoanLength != "7 days" || got[0].Defaults != 12 || got[0].Repaid != 88 {
		t.Errorf("first row = %+v", got[0])
	}
	if got[0].DefaultRate != "12.00%" {
		t.Errorf("default rate = %q, want 12.00%%", got[0].DefaultRate)
	}
	if got[1].DefaultRate != display.Sentinel {
		t.Errorf("missing default rate = %q, want sentinel", got[1].DefaultRate)
	}
}
