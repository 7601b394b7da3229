package nivesh

import (
	"fmt"
	"sort"
	"strings"
)

// Bucket identifies a savings goal bucket. The set is closed: a typo in
// a persisted file is a load error, not a silent orphan bucket.
type Bucket string

const (
	NoBucket Bucket = "" // trade not allocated to any goal

	Bucket1A Bucket = "bucket1a"
	Bucket1B Bucket = "bucket1b"
	Bucket1C Bucket = "bucket1c"
	Bucket1D Bucket = "bucket1d"
	Bucket1E Bucket = "bucket1e"
	Bucket2  Bucket = "bucket2"
	Bucket3  Bucket = "bucket3"
)

// Buckets lists every configured bucket, in lexicographic order.
func Buckets() []Bucket {
	return []Bucket{Bucket1A, Bucket1B, Bucket1C, Bucket1D, Bucket1E, Bucket2, Bucket3}
}

// ParseBucket parses a bucket key. The empty string is valid and means
// "no bucket".
func ParseBucket(s string) (Bucket, error) {
	b := Bucket(strings.ToLower(strings.TrimSpace(s)))
	if b == NoBucket {
		return NoBucket, nil
	}
	for _, known := range Buckets() {
		if b == known {
			return b, nil
		}
	}
	return NoBucket, fmt.Errorf("unknown bucket: %q", s)
}

// Purposes of the two fixed buckets. The bucket1 family is free-form.
const (
	bucket2Purpose = "Emergency fund"
	bucket3Purpose = "Retirement corpus"
)

// BucketConfig holds the user-editable goal configuration: a target
// amount and a purpose label per bucket.
type BucketConfig struct {
	targets  map[Bucket]Money
	purposes map[Bucket]string
}

// NewBucketConfig creates a configuration with zero targets and the
// fixed purposes in place.
func NewBucketConfig() *BucketConfig {
	return &BucketConfig{
		targets: make(map[Bucket]Money),
		purposes: map[Bucket]string{
			Bucket2: bucket2Purpose,
			Bucket3: bucket3Purpose,
		},
	}
}

// Target returns the goal amount configured for a bucket.
func (c *BucketConfig) Target(b Bucket) Money { return c.targets[b] }

// Purpose returns the purpose label of a bucket.
func (c *BucketConfig) Purpose(b Bucket) string { return c.purposes[b] }

// SetTarget sets the goal amount of a bucket.
func (c *BucketConfig) SetTarget(b Bucket, target Money) error {
	if _, err := ParseBucket(string(b)); err != nil || b == NoBucket {
		return fmt.Errorf("cannot set a target for %q", b)
	}
	if target.IsNegative() {
		return fmt.Errorf("target for %s cannot be negative", b)
	}
	c.targets[b] = target
	return nil
}

// SetPurpose sets the purpose label of a bucket. The purposes of
// bucket2 and bucket3 are fixed and cannot be edited.
func (c *BucketConfig) SetPurpose(b Bucket, purpose string) error {
	if _, err := ParseBucket(string(b)); err != nil || b == NoBucket {
		return fmt.Errorf("cannot set a purpose for %q", b)
	}
	if b == Bucket2 || b == Bucket3 {
		return fmt.Errorf("the purpose of %s is fixed", b)
	}
	c.purposes[b] = strings.TrimSpace(purpose)
	return nil
}

// BucketSummary is the goal-progress view of one bucket.
type BucketSummary struct {
	Bucket         Bucket
	Purpose        string
	TargetAmount   Money
	CurrentValue   Money
	InvestedAmount Money
	GainLoss       Money
	// ProgressPercent is uncapped: a bucket past its goal reports more
	// than 100.
	ProgressPercent Percent
	// ShortfallAmount is clamped at zero.
	ShortfallAmount Money
	HoldingsCount   int
	AnnualYield     Percent // value-weighted over the bucket's holdings
	XIRR            Percent // value-weighted over the bucket's holdings
}

// SummarizeBuckets aggregates holdings into one summary per configured
// bucket. Every bucket is present even with zero holdings, so an empty
// bucket still reports its target and full shortfall. Holdings with no
// bucket tag appear in no summary. Output is sorted by bucket name.
func SummarizeBuckets(holdings []Holding, cfg *BucketConfig) []BucketSummary {
	byBucket := make(map[Bucket]*BucketSummary, len(Buckets()))
	for _, b := range Buckets() {
		byBucket[b] = &BucketSummary{
			Bucket:       b,
			Purpose:      cfg.Purpose(b),
			TargetAmount: cfg.Target(b),
		}
	}

	type weighted struct{ yield, xirr, value float64 }
	weights := make(map[Bucket]*weighted)

	for _, h := range holdings {
		s, ok := byBucket[h.Bucket]
		if !ok {
			continue // untagged holdings belong to the overall summary only
		}
		s.CurrentValue = s.CurrentValue.Add(h.CurrentValue)
		s.InvestedAmount = s.InvestedAmount.Add(h.InvestedAmount)
		s.HoldingsCount++

		w, ok := weights[h.Bucket]
		if !ok {
			w = &weighted{}
			weights[h.Bucket] = w
		}
		v := h.CurrentValue.AsFloat()
		w.yield += float64(h.AnnualYield) * v
		w.xirr += float64(h.XIRR) * v
		w.value += v
	}

	out := make([]BucketSummary, 0, len(byBucket))
	for _, b := range Buckets() {
		s := byBucket[b]
		s.GainLoss = s.CurrentValue.Sub(s.InvestedAmount)
		if s.TargetAmount.IsPositive() {
			s.ProgressPercent = asPercent(s.CurrentValue.AsFloat() / s.TargetAmount.AsFloat())
		}
		if shortfall := s.TargetAmount.Sub(s.CurrentValue); shortfall.IsPositive() {
			s.ShortfallAmount = shortfall
		} else {
			s.ShortfallAmount = M(0)
		}
		if w := weights[b]; w != nil && w.value != 0 {
			s.AnnualYield = clampPercent(w.yield / w.value)
			s.XIRR = clampPercent(w.xirr / w.value)
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bucket < out[j].Bucket })
	return out
}
