package dto

// CreateBoardRequest is the payload for creating a board.
type CreateBoardRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion,omitempty"`
}

// UpdateBoardRequest is the payload for updating a board. All fields are
// optional, but at least one must be provided.
type UpdateBoardRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateBoardRequest) Empty() bool {
	return r.Nombre == nil && r.Descripcion == nil
}

// BoardStats summarizes progress across a board's columns and tasks.
// A task counts as completed when its avance is 100.
type BoardStats struct {
	TotalColumns         int `json:"totalColumns"`
	TotalTasks           int `json:"totalTasks"`
	CompletedTasks       int `json:"completedTasks"`
	PendingTasks         int `json:"pendingTasks"`
	CompletionPercentage int `json:"completionPercentage"`
}
