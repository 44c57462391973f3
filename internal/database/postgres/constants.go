package postgres

// Error Messages
const (
	ErrMsgFailedToLoadSave   = "failed to load save"
	ErrMsgFailedToEncodeSave = "failed to encode save"
	ErrMsgFailedToWriteSave  = "failed to write save"
	ErrMsgFailedToDeleteSave = "failed to delete save"
)
