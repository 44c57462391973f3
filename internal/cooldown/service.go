// Package cooldown evaluates absolute-timestamp cooldowns. Nothing here runs a
// timer: a cooldown is inert until the next check compares it against now.
package cooldown

import (
	"fmt"
	"time"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSeconds, e.Action, seconds)
}

// Is allows errors.Is() to work with ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Remaining returns how long until an action last performed at lastAt (unix ms)
// with the given cooldown may run again. Zero when it is ready.
func Remaining(lastAt int64, cooldown time.Duration, now int64) time.Duration {
	if lastAt <= 0 || cooldown <= 0 {
		return 0
	}
	readyAt := lastAt + cooldown.Milliseconds()
	if now >= readyAt {
		return 0
	}
	return time.Duration(readyAt-now) * time.Millisecond
}

// Check returns ErrOnCooldown when the action is not ready at now
func Check(action string, lastAt int64, cooldown time.Duration, now int64) error {
	if rem := Remaining(lastAt, cooldown, now); rem > 0 {
		return ErrOnCooldown{Action: action, Remaining: rem}
	}
	return nil
}
