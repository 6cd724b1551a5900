package apitype

type Command interface {
	IsThrottled() bool
}

// Throttled marks commands whose handling may be coalesced when they
// arrive faster than the receiver can process them.
type Throttled struct {
}

type NotThrottled struct {
}

func (s *Throttled) IsThrottled() bool {
	return true
}

func (s *NotThrottled) IsThrottled() bool {
	return false
}
