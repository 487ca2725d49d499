package domain

import (
	"time"
)

// Task is the persistence model for a task within a column.
type Task struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ColumnID        int       `gorm:"not null;index:idx_tasks_column_id" json:"column_id"`
	Nombre          string    `gorm:"type:varchar(200);not null" json:"nombre"`
	Descripcion     string    `gorm:"type:text" json:"descripcion,omitempty"`
	FechaAsignacion string    `gorm:"type:varchar(32)" json:"fecha_asignacion,omitempty"`
	FechaLimite     string    `gorm:"type:varchar(32)" json:"fecha_limite,omitempty"`
	Asignador       string    `gorm:"type:varchar(255)" json:"asignador,omitempty"`
	Responsable     string    `gorm:"type:varchar(255)" json:"responsable,omitempty"`
	Avance          int       `gorm:"not null;default:0" json:"avance"`
	Prioridad       string    `gorm:"type:varchar(16);not null;default:media" json:"prioridad"`
	Estado          string    `gorm:"type:varchar(32);not null;default:Pendiente" json:"estado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
