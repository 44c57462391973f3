package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgInsufficientFunds   = "insufficient funds"
	ErrMsgInsufficientGems    = "insufficient gems"
	ErrMsgInsufficientProduct = "insufficient dried product"

	// Lookup errors
	ErrMsgSlotNotFound       = "grow slot not found"
	ErrMsgRackNotFound       = "drying rack not found"
	ErrMsgSeedNotFound       = "seed not found"
	ErrMsgBudNotFound        = "bud not found"
	ErrMsgChannelNotFound    = "sales channel not found"
	ErrMsgWorkerNotFound     = "worker not found"
	ErrMsgFertilizerNotFound = "fertilizer not found"
	ErrMsgSoilNotFound       = "soil not found"
	ErrMsgUpgradeNotFound    = "upgrade not found"

	// Slot / rack state errors
	ErrMsgSlotLocked       = "grow slot is locked"
	ErrMsgSlotOccupied     = "grow slot is occupied"
	ErrMsgSlotEmpty        = "grow slot is empty"
	ErrMsgNotReady         = "plant is not ready to harvest"
	ErrMsgRackLocked       = "drying rack is locked"
	ErrMsgRackOccupied     = "drying rack is occupied"
	ErrMsgRackEmpty        = "drying rack is empty"
	ErrMsgDryingUnfinished = "drying is not finished"
	ErrMsgAlreadyUnlocked  = "already unlocked"
	ErrMsgMaxReached       = "maximum already reached"

	// Sales errors
	ErrMsgChannelLocked  = "sales channel is locked"
	ErrMsgNotDried       = "bud is not dried"
	ErrMsgQualityTooLow  = "quality below channel minimum"
	ErrMsgLevelTooLow    = "player level too low"
	ErrMsgExceedsSaleCap = "grams exceed channel per-sale cap"
	ErrMsgOnCooldown     = "sales channel on cooldown"

	// Worker errors
	ErrMsgAlreadyOwned = "worker already owned"
	ErrMsgNotOwned     = "worker not owned"
	ErrMsgMaxLevel     = "worker already at max level"

	// Validation errors
	ErrMsgInvalidQuantity = "quantity must be positive"
	ErrMsgWrongState      = "bud is in the wrong state"
	ErrMsgInvalidInput    = "invalid input"

	// Persistence errors
	ErrMsgCorruptSave   = "save data is corrupt"
	ErrMsgSaveNotFound  = "save not found"
	ErrMsgFutureVersion = "save was written by a newer version"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientGems    = errors.New(ErrMsgInsufficientGems)
	ErrInsufficientProduct = errors.New(ErrMsgInsufficientProduct)

	ErrSlotNotFound       = errors.New(ErrMsgSlotNotFound)
	ErrRackNotFound       = errors.New(ErrMsgRackNotFound)
	ErrSeedNotFound       = errors.New(ErrMsgSeedNotFound)
	ErrBudNotFound        = errors.New(ErrMsgBudNotFound)
	ErrChannelNotFound    = errors.New(ErrMsgChannelNotFound)
	ErrWorkerNotFound     = errors.New(ErrMsgWorkerNotFound)
	ErrFertilizerNotFound = errors.New(ErrMsgFertilizerNotFound)
	ErrSoilNotFound       = errors.New(ErrMsgSoilNotFound)
	ErrUpgradeNotFound    = errors.New(ErrMsgUpgradeNotFound)

	ErrSlotLocked       = errors.New(ErrMsgSlotLocked)
	ErrSlotOccupied     = errors.New(ErrMsgSlotOccupied)
	ErrSlotEmpty        = errors.New(ErrMsgSlotEmpty)
	ErrNotReady         = errors.New(ErrMsgNotReady)
	ErrRackLocked       = errors.New(ErrMsgRackLocked)
	ErrRackOccupied     = errors.New(ErrMsgRackOccupied)
	ErrRackEmpty        = errors.New(ErrMsgRackEmpty)
	ErrDryingUnfinished = errors.New(ErrMsgDryingUnfinished)
	ErrAlreadyUnlocked  = errors.New(ErrMsgAlreadyUnlocked)
	ErrMaxReached       = errors.New(ErrMsgMaxReached)

	ErrChannelLocked  = errors.New(ErrMsgChannelLocked)
	ErrNotDried       = errors.New(ErrMsgNotDried)
	ErrQualityTooLow  = errors.New(ErrMsgQualityTooLow)
	ErrLevelTooLow    = errors.New(ErrMsgLevelTooLow)
	ErrExceedsSaleCap = errors.New(ErrMsgExceedsSaleCap)
	ErrOnCooldown     = errors.New(ErrMsgOnCooldown)

	ErrAlreadyOwned = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned     = errors.New(ErrMsgNotOwned)
	ErrMaxLevel     = errors.New(ErrMsgMaxLevel)

	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrWrongState      = errors.New(ErrMsgWrongState)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)

	ErrCorruptSave   = errors.New(ErrMsgCorruptSave)
	ErrSaveNotFound  = errors.New(ErrMsgSaveNotFound)
	ErrFutureVersion = errors.New(ErrMsgFutureVersion)
)
