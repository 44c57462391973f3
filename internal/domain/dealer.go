package domain

// OutcomeKind tags a dealer narrative entry
type OutcomeKind string

const (
	OutcomeSale     OutcomeKind = "sale"
	OutcomeScam     OutcomeKind = "scam"
	OutcomeMeeting  OutcomeKind = "meeting"
	OutcomeWaiting  OutcomeKind = "waiting"
	OutcomeKill     OutcomeKind = "kill"
	OutcomeDrugs    OutcomeKind = "drugs"
	OutcomeRandom   OutcomeKind = "random"
	OutcomeViolence OutcomeKind = "violence"
	OutcomeRobbery  OutcomeKind = "robbery"
)

// MaxDealerActivities caps the shared narrative log
const MaxDealerActivities = 30

// DealerActivity is one narrative log entry
type DealerActivity struct {
	ID        string      `json:"id"`
	Timestamp int64       `json:"timestamp"`
	Kind      OutcomeKind `json:"kind"`
	Message   string      `json:"message"`
	Grams     int         `json:"grams,omitempty"`
	Revenue   int         `json:"revenue,omitempty"`
	Customer  string      `json:"customer,omitempty"`
	WorkerID  string      `json:"worker_id"`
}

// DealerDrugEffect is a timed modifier on one worker's sales
type DealerDrugEffect struct {
	WorkerID        string  `json:"worker_id"`
	SalesMultiplier float64 `json:"sales_multiplier"`
	ScamBonus       float64 `json:"scam_bonus"`
	ExpiresAt       int64   `json:"expires_at"`
}

// Expired reports whether the effect has run out at now
func (e DealerDrugEffect) Expired(now int64) bool {
	return now > e.ExpiresAt
}
