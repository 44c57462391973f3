package game

// Save triggers
const (
	TriggerAutosave = "autosave"
	TriggerShutdown = "shutdown"
	TriggerManual   = "manual"
	TriggerImport   = "import"
	TriggerNewGame  = "new_game"
)

// Log messages
const (
	LogMsgLoadedSave     = "Save loaded"
	LogMsgNewGame        = "No save found, starting a new game"
	LogMsgOfflineCatchUp = "Offline progress applied"
	LogMsgSaved          = "Save written"
	LogMsgSaveFailed     = "Failed to write save"
	LogMsgImported       = "Save imported"
	LogMsgImportRejected = "Import rejected"
	LogMsgActionRejected = "Action rejected"
	LogMsgPublishFailed  = "Failed to publish game event"
	LogMsgTickApplied    = "Tick applied"
)

// MaxTickSeconds bounds a single live tick; longer gaps go through offline catch-up
const MaxTickSeconds = 60.0
