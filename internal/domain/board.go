package domain

import (
	"time"
)

// Board is the persistence model for a board served by the devserver. The
// json tags reproduce the remote API's wire format, Spanish keys included.
type Board struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string    `gorm:"type:varchar(255);not null" json:"nombre"`
	Descripcion string    `gorm:"type:text" json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Columns     []Column  `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"columns,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
