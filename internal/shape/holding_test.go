package shape

import (
	"testing"
)

func TestHoldingPeriodCanonicalOrder(t *testing.T) {
	buckets := []RawHoldingBucket{
		{HoldingPeriod: "> 180 days", Number: fptr(10)},
		{HoldingPeriod: "< 1 Week", Number: fptr(40)},
		{HoldingPeriod: "4-8 weeks", Number: fptr(25)},
		{HoldingPeriod: "1-2 weeks", Number: fptr(30)},
	}

	got := HoldingPeriod(buckets)

	wantOrder := []string{"< 1 Week", "1-2 weeks", "4-8 weeks", "> 180 days"}
	if len(got) != len(wantOrder) {
		t.Fatalf("bucket count = %d, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].Period != want {
			t.Errorf("bucket[%d] = %q, want %q", i, got[i].Period, want)
		}
	}
	if got[0].Holders != 40 {
		t.Errorf("first bucket holders = %d, want 40", got[0].Holders)
	}
}

func TestHoldingPeriodIdempotentUnderReordering(t *testing.T) {
	a := []RawHoldingBucket{
		{HoldingPeriod: "2-4 weeks", Number: fptr(5)},
		{HoldingPeriod: "8 weeks - 180 days", Number: fptr(7)},
		{HoldingPeriod: "< 1 Week", Number: fptr(3)},
	}
	b := []RawHoldingBucket{a[2], a[0], a[1]}

	first := HoldingPeriod(a)
	second := HoldingPeriod(b)

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("order differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestHoldingPeriodOmitsAbsentBuckets(t *testing.T) {
	got := HoldingPeriod([]RawHoldingBucket{
		{HoldingPeriod: "> 180 days", Number: fptr(1)},
	})
	if len(got) != 1 {
		t.Fatalf("bucket count = %d, want 1 (absent buckets are not zero-filled)", len(got))
	}
}

func TestHoldingPeriodUnknownLabelSortsLast(t *testing.T) {
	got := HoldingPeriod([]RawHoldingBucket{
		{HoldingPeriod: "mystery", Number: fptr(2)},
		{HoldingPeriod: "< 1 Week", Number: fptr(1)},
	})
	if got[len(got)-1].Period != "mystery" {
		t.Errorf("unknown label position = %q, want last", got[len(got)-1].Period)
	}
}
