package nivesh

import (
	"testing"
)

func TestParseBucket(t *testing.T) {
	tests := []struct {
		input    string
		expected Bucket
		err      bool
	}{
		{"bucket1a", Bucket1A, false},
		{" Bucket2 ", Bucket2, false},
		{"", NoBucket, false},
		{"bucket1f", NoBucket, true},
		{"bucket4", NoBucket, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBucket(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseBucket(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseBucket(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBucketConfig(t *testing.T) {
	cfg := NewBucketConfig()

	if got := cfg.Purpose(Bucket2); got != "Emergency fund" {
		t.Errorf("Purpose(bucket2) = %q, want %q", got, "Emergency fund")
	}
	if got := cfg.Purpose(Bucket3); got != "Retirement corpus" {
		t.Errorf("Purpose(bucket3) = %q, want %q", got, "Retirement corpus")
	}

	if err := cfg.SetTarget(Bucket1A, M(100000)); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	if !cfg.Target(Bucket1A).Equal(M(100000)) {
		t.Errorf("Target(bucket1a) = %v, want 100000", cfg.Target(Bucket1A))
	}
	if err := cfg.SetTarget(Bucket1A, M(-1)); err == nil {
		t.Error("SetTarget(negative) = nil, want error")
	}
	if err := cfg.SetTarget(NoBucket, M(100)); err == nil {
		t.Error("SetTarget(no bucket) = nil, want error")
	}

	if err := cfg.SetPurpose(Bucket1A, "House down payment"); err != nil {
		t.Fatalf("SetPurpose() error = %v", err)
	}
	if got := cfg.Purpose(Bucket1A); got != "House down payment" {
		t.Errorf("Purpose(bucket1a) = %q, want %q", got, "House down payment")
	}
	// bucket2 and bucket3 purposes are fixed.
	if err := cfg.SetPurpose(Bucket2, "Vacation"); err == nil {
		t.Error("SetPurpose(bucket2) = nil, want error")
	}
	if err := cfg.SetPurpose(Bucket3, "Vacation"); err == nil {
		t.Error("SetPurpose(bucket3) = nil, want error")
	}
}

// bucketHolding builds a holding carrying just what SummarizeBuckets reads.
func bucketHolding(b Bucket, invested, value float64, yield, xirr Percent) Holding {
	return Holding{
		Name:           "X",
		Bucket:         b,
		InvestedAmount: M(invested),
		CurrentValue:   M(value),
		AnnualYield:    yield,
		XIRR:           xirr,
	}
}

func TestSummarizeBuckets(t *testing.T) {
	cfg := NewBucketConfig()
	if err := cfg.SetTarget(Bucket1A, M(100000)); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	if err := cfg.SetTarget(Bucket2, M(200000)); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}

	holdings := []Holding{
		bucketHolding(Bucket1A, 120000, 150000, 12, 11),
		bucketHolding(NoBucket, 50000, 60000, 5, 5), // untagged, excluded
	}

	summaries := SummarizeBuckets(holdings, cfg)
	if len(summaries) != len(Buckets()) {
		t.Fatalf("len(summaries) = %d, want %d (every bucket present)", len(summaries), len(Buckets()))
	}

	byBucket := make(map[Bucket]BucketSummary)
	for _, s := range summaries {
		byBucket[s.Bucket] = s
	}

	// Past its goal: progress uncapped, shortfall clamped at zero.
	b1a := byBucket[Bucket1A]
	if !b1a.CurrentValue.Equal(M(150000)) {
		t.Errorf("bucket1a CurrentValue = %v, want 150000", b1a.CurrentValue)
	}
	if !b1a.ProgressPercent.Equal(150) {
		t.Errorf("bucket1a ProgressPercent = %v, want 150", b1a.ProgressPercent)
	}
	if !b1a.ShortfallAmount.IsZero() {
		t.Errorf("bucket1a ShortfallAmount = %v, want 0", b1a.ShortfallAmount)
	}
	if !b1a.GainLoss.Equal(M(30000)) {
		t.Errorf("bucket1a GainLoss = %v, want 30000", b1a.GainLoss)
	}
	if b1a.HoldingsCount != 1 {
		t.Errorf("bucket1a HoldingsCount = %d, want 1", b1a.HoldingsCount)
	}

	// Empty bucket with a target: full shortfall, zero progress.
	b2 := byBucket[Bucket2]
	if b2.HoldingsCount != 0 {
		t.Errorf("bucket2 HoldingsCount = %d, want 0", b2.HoldingsCount)
	}
	if !b2.ShortfallAmount.Equal(M(200000)) {
		t.Errorf("bucket2 ShortfallAmount = %v, want 200000", b2.ShortfallAmount)
	}
	if !b2.ProgressPercent.Equal(0) {
		t.Errorf("bucket2 ProgressPercent = %v, want 0", b2.ProgressPercent)
	}
	if b2.Purpose != "Emergency fund" {
		t.Errorf("bucket2 Purpose = %q, want %q", b2.Purpose, "Emergency fund")
	}

	// Bucket with neither target nor holdings still appears.
	b3 := byBucket[Bucket3]
	if !b3.TargetAmount.IsZero() || !b3.ProgressPercent.Equal(0) {
		t.Errorf("bucket3 = %+v, want zero target and progress", b3)
	}
}

func TestSummarizeBucketsWeightedReturns(t *testing.T) {
	cfg := NewBucketConfig()
	holdings := []Holding{
		bucketHolding(Bucket1B, 100, 100, 10, 8),
		bucketHolding(Bucket1B, 300, 300, 20, 16),
	}

	summaries := SummarizeBuckets(holdings, cfg)
	for _, s := range summaries {
		if s.Bucket != Bucket1B {
			continue
		}
		// Value-weighted: (10×100 + 20×300) / 400 = 17.5.
		if !s.AnnualYield.Equal(17.5) {
			t.Errorf("AnnualYield = %v, want 17.5", s.AnnualYield)
		}
		if !s.XIRR.Equal(14) {
			t.Errorf("XIRR = %v, want 14", s.XIRR)
		}
		return
	}
	t.Fatal("bucket1b summary not found")
}

func TestSummarizeBucketsSorted(t *testing.T) {
	summaries := SummarizeBuckets(nil, NewBucketConfig())
	for i := 1; i < len(summaries); i++ {
		if summaries[i-1].Bucket >= summaries[i].Bucket {
			t.Errorf("summaries not sorted: %v before %v", summaries[i-1].Bucket, summaries[i].Bucket)
		}
	}
}
