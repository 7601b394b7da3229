package nivesh

// lot represents a single open buy-side slice of an instrument, used
// for FIFO cost basis calculations. Lots exist only during a holdings
// computation; they are never persisted.
type lot struct {
	date     Date
	quantity Quantity // remaining quantity
	price    Money    // unit price at acquisition
}

type lotQueue []lot

// push appends a new open lot at the back of the queue.
func (q lotQueue) push(date Date, quantity Quantity, price Money) lotQueue {
	return append(q, lot{date: date, quantity: quantity, price: price})
}

// consume removes quantityToSell from the oldest lots first, partially
// consuming the last one touched when needed. It returns the remaining
// queue and the cost basis of the consumed units (consumed quantity ×
// unit price, per lot). A sell that exceeds all open lots consumes
// everything and the excess is absorbed: the cost of units that never
// had a lot is zero.
func (q lotQueue) consume(quantityToSell Quantity) (lotQueue, Money) {
	var cost Money
	for len(q) > 0 && quantityToSell.IsPositive() {
		front := q[0]
		if front.quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot.
			cost = cost.Add(front.price.Mul(quantityToSell))
			q[0].quantity = front.quantity.Sub(quantityToSell)
			return q, cost
		}
		// Full sale of this lot.
		cost = cost.Add(front.price.Mul(front.quantity))
		quantityToSell = quantityToSell.Sub(front.quantity)
		q = q[1:]
	}
	return q, cost
}

// totalQuantity sums the remaining quantity over all open lots.
func (q lotQueue) totalQuantity() Quantity {
	var total Quantity
	for _, l := range q {
		total = total.Add(l.quantity)
	}
	return total
}
