package nivesh

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTrade writes one trade as a single JSONL line. Struct field
// order keeps the format canonical.
func EncodeTrade(w io.Writer, t Trade) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("could not encode trade %s: %w", t.ID, err)
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes the whole ledger in JSONL, one trade per line, in
// ledger order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, t := range l.Trades() {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream of trades into a sorted ledger.
//
// Blank lines are skipped. An unknown investment type, side or bucket
// is a load error (a typo must not silently produce an orphan record),
// but otherwise-dirty historical rows (blank name, non-positive
// quantity) load fine: they are excluded from analytics, not from the
// file. The derived amount is always recomputed from quantity × rate;
// the persisted value is never trusted.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var t Trade
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("line %d: could not decode trade: %w", line, err)
		}
		if _, err := ParseInvestmentType(string(t.Type)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := ParseTradeSide(string(t.Side)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := ParseBucket(string(t.Bucket)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		t.deriveAmount()
		ledger.append(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// bucketEntry is a specialized struct for decoding the bucket
// configuration document.
type bucketEntry struct {
	Target  decimal.Decimal `json:"target"`
	Purpose string          `json:"purpose,omitempty"`
}

// EncodeBucketConfig writes the bucket configuration as one canonical
// JSON object, buckets in lexicographic order.
func EncodeBucketConfig(w io.Writer, cfg *BucketConfig) error {
	var obj jsonObjectWriter
	for _, b := range Buckets() {
		var e jsonObjectWriter
		e.Append("target", cfg.Target(b))
		e.Optional("purpose", cfg.Purpose(b))
		raw, err := e.MarshalJSON()
		if err != nil {
			return err
		}
		obj.AppendRaw(string(b), raw)
	}
	raw, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return err
	}
	return nil
}

// DecodeBucketConfig reads a bucket configuration document. Unknown
// bucket keys are a load error; the fixed purposes of bucket2 and
// bucket3 are enforced regardless of what the file says.
func DecodeBucketConfig(r io.Reader) (*BucketConfig, error) {
	var doc map[string]bucketEntry
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode bucket configuration: %w", err)
	}
	cfg := NewBucketConfig()
	for key, entry := range doc {
		b, err := ParseBucket(key)
		if err != nil || b == NoBucket {
			return nil, fmt.Errorf("invalid bucket configuration: unknown bucket %q", key)
		}
		if err := cfg.SetTarget(b, M(entry.Target)); err != nil {
			return nil, err
		}
		if b == Bucket2 || b == Bucket3 {
			continue // purposes are fixed
		}
		if entry.Purpose != "" {
			if err := cfg.SetPurpose(b, entry.Purpose); err != nil {
				return nil, err
			}
		}
	}
	return cfg, nil
}
