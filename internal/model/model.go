package model

// Priority levels a task can carry. Wire values are the Spanish keywords
// used by the remote API.
type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baja"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status values a task can carry.
type Status string

const (
	StatusPending    Status = "Pendiente"
	StatusInProgress Status = "En progreso"
	StatusCompleted  Status = "Completado"
	StatusBlocked    Status = "Bloqueado"
)

// Valid reports whether s is one of the known task statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

// DefaultColumnColor is applied when the remote API omits a column color.
const DefaultColumnColor = "#6B7280"

// Board is the top-level project container. Columns is populated only when
// the board was fetched with detail.
type Board struct {
	ID          int      `json:"id"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
	Columns     []Column `json:"columns,omitempty"`
}

// Column is an ordered bucket of tasks within a board.
type Column struct {
	ID        int    `json:"id"`
	BoardID   int    `json:"board_id"`
	Titulo    string `json:"titulo"`
	Color     string `json:"color,omitempty"`
	Posicion  int    `json:"posicion"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Tasks     []Task `json:"tasks,omitempty"`
}

// Task is a unit of work within a column.
type Task struct {
	ID              int      `json:"id"`
	ColumnID        int      `json:"column_id"`
	Nombre          string   `json:"nombre"`
	Descripcion     string   `json:"descripcion,omitempty"`
	FechaAsignacion string   `json:"fecha_asignacion,omitempty"`
	FechaLimite     string   `json:"fecha_limite,omitempty"`
	Asignador       string   `json:"asignador,omitempty"`
	Responsable     string   `json:"responsable,omitempty"`
	Avance          int      `json:"avance"`
	Prioridad       Priority `json:"prioridad,omitempty"`
	Estado          Status   `json:"estado,omitempty"`
	CreatedAt       string   `json:"created_at,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

// Completed reports whether the task counts as done. Completion is derived
// from progress alone; the estado field is a parallel signal and is not
// consulted.
func (t Task) Completed() bool {
	return t.Avance == 100
}
