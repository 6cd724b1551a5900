package api

type Topic string

const (
	ViewOpened     Topic = "view-opened"
	ViewClosed     Topic = "view-closed"
	ZoomChanged    Topic = "zoom-changed"
	MarksUpdated   Topic = "marks-updated"
	ImageProcessed Topic = "image-processed"
	TaskCompleted  Topic = "task-completed"
	ShowError      Topic = "show-error"
)
