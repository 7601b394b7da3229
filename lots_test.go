package nivesh

import (
	"testing"
	"time"
)

func TestLotQueueConsume(t *testing.T) {
	d1 := NewDate(2024, time.January, 15)
	d2 := NewDate(2024, time.February, 1)

	tests := []struct {
		name          string
		sell          float64
		wantCost      Money
		wantRemaining Quantity
	}{
		{"partial oldest lot", 10, M(10 * 100), Q(40)},
		{"exactly oldest lot", 30, M(30 * 100), Q(20)},
		{"across both lots", 40, M(30*100 + 10*110), Q(10)},
		{"everything", 50, M(30*100 + 20*110), Q(0)},
		{"oversell absorbed", 80, M(30*100 + 20*110), Q(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q lotQueue
			q = q.push(d1, Q(30), M(100))
			q = q.push(d2, Q(20), M(110))

			q, cost := q.consume(Q(tt.sell))
			if !cost.Equal(tt.wantCost) {
				t.Errorf("consume(%v) cost = %v, want %v", tt.sell, cost, tt.wantCost)
			}
			if !q.totalQuantity().Equal(tt.wantRemaining) {
				t.Errorf("consume(%v) remaining = %v, want %v", tt.sell, q.totalQuantity(), tt.wantRemaining)
			}
		})
	}
}

func TestLotQueueConsumeIsFIFO(t *testing.T) {
	var q lotQueue
	q = q.push(NewDate(2024, time.January, 15), Q(50), M(2400))
	q = q.push(NewDate(2024, time.February, 1), Q(30), M(2500))

	q, cost := q.consume(Q(40))

	// The 40 units all come from the oldest lot at 2400.
	if want := M(40 * 2400); !cost.Equal(want) {
		t.Errorf("cost = %v, want %v", cost, want)
	}
	if len(q) != 2 {
		t.Fatalf("len(queue) = %d, want 2", len(q))
	}
	if !q[0].quantity.Equal(Q(10)) || !q[0].price.Equal(M(2400)) {
		t.Errorf("queue[0] = %v @ %v, want 10 @ 2400", q[0].quantity, q[0].price)
	}
	if !q[1].quantity.Equal(Q(30)) || !q[1].price.Equal(M(2500)) {
		t.Errorf("queue[1] = %v @ %v, want 30 @ 2500", q[1].quantity, q[1].price)
	}
}
