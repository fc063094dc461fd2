package dto

// WindowQuery carries the optional time-window selection and display
// language for history and statistics reads.
type WindowQuery struct {
	Window string `form:"window" binding:"omitempty,timewindow"`
	Lang   string `form:"lang"`
}
