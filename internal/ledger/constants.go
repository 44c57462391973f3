package ledger

// Level curve: XP needed to advance from level N is BaseXP * N^LevelExponent
const (
	BaseXP        = 100.0
	LevelExponent = 1.5

	// MaxLevelUpsPerGrant bounds the level-up loop for pathological grants
	MaxLevelUpsPerGrant = 1000

	SkillPointsPerLevel = 1
	GemMilestoneEvery   = 5
	GemsPerMilestone    = 5
)
