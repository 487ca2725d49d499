package dto

import "kanban-board-client/internal/model"

// CreateTaskRequest is the payload for creating a task. The owning column
// id is required; a task cannot exist without a parent.
type CreateTaskRequest struct {
	ColumnID        int            `json:"column_id" binding:"required"`
	Nombre          string         `json:"nombre" binding:"required"`
	Descripcion     string         `json:"descripcion,omitempty"`
	FechaAsignacion string         `json:"fecha_asignacion,omitempty"`
	FechaLimite     string         `json:"fecha_limite,omitempty"`
	Asignador       string         `json:"asignador,omitempty"`
	Responsable     string         `json:"responsable,omitempty"`
	Avance          int            `json:"avance"`
	Prioridad       model.Priority `json:"prioridad,omitempty"`
	Estado          model.Status   `json:"estado,omitempty"`
}

// UpdateTaskRequest is the payload for updating a task.
type UpdateTaskRequest struct {
	ColumnID        *int            `json:"column_id,omitempty"`
	Nombre          *string         `json:"nombre,omitempty"`
	Descripcion     *string         `json:"descripcion,omitempty"`
	FechaAsignacion *string         `json:"fecha_asignacion,omitempty"`
	FechaLimite     *string         `json:"fecha_limite,omitempty"`
	Asignador       *string         `json:"asignador,omitempty"`
	Responsable     *string         `json:"responsable,omitempty"`
	Avance          *int            `json:"avance,omitempty"`
	Prioridad       *model.Priority `json:"prioridad,omitempty"`
	Estado          *model.Status   `json:"estado,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateTaskRequest) Empty() bool {
	return r.ColumnID == nil && r.Nombre == nil && r.Descripcion == nil &&
		r.FechaAsignacion == nil && r.FechaLimite == nil && r.Asignador == nil &&
		r.Responsable == nil && r.Avance == nil && r.Prioridad == nil && r.Estado == nil
}
