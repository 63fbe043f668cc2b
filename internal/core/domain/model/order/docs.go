// Package order contains the order aggregate: the Order root, its line
// Items and the Status lifecycle state machine. An order and its items are
// created together and persisted as one atomic unit; the only mutation the
// service exposes afterwards is the Pending -> Cancelled status transition.
package order
