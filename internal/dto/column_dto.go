package dto

// CreateColumnRequest is the payload for creating a column. The owning
// board id is required; a column cannot exist without a parent.
type CreateColumnRequest struct {
	BoardID  int    `json:"board_id" binding:"required"`
	Titulo   string `json:"titulo" binding:"required"`
	Color    string `json:"color,omitempty"`
	Posicion int    `json:"posicion"`
}

// UpdateColumnRequest is the payload for updating a column.
type UpdateColumnRequest struct {
	Titulo   *string `json:"titulo,omitempty"`
	Color    *string `json:"color,omitempty"`
	Posicion *int    `json:"posicion,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateColumnRequest) Empty() bool {
	return r.Titulo == nil && r.Color == nil && r.Posicion == nil
}
