package checkout

// Status tracks a checkout through its two writes. The order write and the
// cart clear cannot be one transaction against two stores, so the state in
// between (StatusOrderWritten) is explicit and observable.
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusOrderWritten Status = "ORDER_WRITTEN"
	StatusCartCleared  Status = "CART_CLEARED"
	StatusFailed       Status = "FAILED"
)

var transitions = map[Status][]Status{
	StatusPending:      {StatusOrderWritten, StatusFailed},
	StatusOrderWritten: {StatusCartCleared, StatusFailed},
}

func CanTransitionTo(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCartCleared || s == StatusFailed
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
