package cooldown

// Error Message Format Strings (for ErrOnCooldown.Error())
const (
	ErrFmtCooldownMinutes = "'%s' on cooldown: %dm %ds remaining"
	ErrFmtCooldownSeconds = "'%s' on cooldown: %ds remaining"
)
