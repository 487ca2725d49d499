package domain

import (
	"time"
)

// Column is the persistence model for a column within a board.
type Column struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	BoardID   int       `gorm:"not null;index:idx_columns_board_id" json:"board_id"`
	Titulo    string    `gorm:"type:varchar(255);not null" json:"titulo"`
	Color     string    `gorm:"type:varchar(16)" json:"color,omitempty"`
	Posicion  int       `gorm:"not null;default:0" json:"posicion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tasks     []Task    `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Column
func (Column) TableName() string {
	return "columns"
}
