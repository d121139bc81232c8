package models

// LifecycleAction is a status transition requested for a note.
type LifecycleAction string

const (
	ActionArchive           LifecycleAction = "archive"
	ActionUnarchive         LifecycleAction = "unarchive"
	ActionTrash             LifecycleAction = "trash"
	ActionRestore           LifecycleAction = "restore"
	ActionDeletePermanently LifecycleAction = "deletePermanently"
)
