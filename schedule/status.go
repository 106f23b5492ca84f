package schedule

// Status is a milestone's lifecycle state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusInvoiced Status = "invoiced"
	StatusPaid     Status = "paid"
	StatusOverdue  Status = "overdue"
)

// CanTransition reports whether a milestone may move from one status to
// another. The lifecycle only advances: pending → invoiced → paid, with
// skips forward allowed (a COD milestone is paid without ever being
// invoiced). Overdue is set by an external time-based process from
// pending or invoiced, and an overdue milestone can still be paid.
// There is no unpay: paid is terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusInvoiced || to == StatusPaid || to == StatusOverdue
	case StatusInvoiced:
		return to == StatusPaid || to == StatusOverdue
	case StatusOverdue:
		return to == StatusPaid
	}
	return false
}
