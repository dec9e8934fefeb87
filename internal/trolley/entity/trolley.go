package entity

import (
	"fmt"
	"time"
)

// Trolley is a physical service cart assigned to an airline.
type Trolley struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Airline     string    `json:"airline" gorm:"size:255;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Levels  []TrolleyLevel  `json:"levels,omitempty" gorm:"foreignKey:TrolleyID;constraint:OnDelete:CASCADE"`
	Drawers []TrolleyDrawer `json:"drawers,omitempty" gorm:"foreignKey:TrolleyID;constraint:OnDelete:CASCADE"`
}

func (Trolley) TableName() string {
	return "trolleys"
}

// Level numbers are fixed vertical tiers within a trolley.
const (
	LevelTop    = 1
	LevelMiddle = 2
	LevelBottom = 3
)

// TrolleyLevel is one of up to three tiers of a trolley.
type TrolleyLevel struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TrolleyID   uint      `json:"trolley_id" gorm:"not null;index;uniqueIndex:uq_trolley_level,priority:1"`
	LevelNumber int       `json:"level_number" gorm:"not null;uniqueIndex:uq_trolley_level,priority:2"`
	Capacity    int       `json:"capacity" gorm:"not null;default:20"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Trolley *Trolley `json:"trolley,omitempty" gorm:"foreignKey:TrolleyID"`
}

func (TrolleyLevel) TableName() string {
	return "trolley_levels"
}

// LevelDisplay returns the human-readable tier name for a level number.
func LevelDisplay(levelNumber int) string {
	switch levelNumber {
	case LevelTop:
		return "Level 1 (Top)"
	case LevelMiddle:
		return "Level 2 (Middle)"
	case LevelBottom:
		return "Level 3 (Bottom)"
	default:
		return fmt.Sprintf("Level %d", levelNumber)
	}
}

// Display returns the human-readable tier name.
func (l TrolleyLevel) Display() string {
	return LevelDisplay(l.LevelNumber)
}

// TrolleyDrawer is an individually identified storage compartment
// within a trolley level.
type TrolleyDrawer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TrolleyID   uint      `json:"trolley_id" gorm:"not null;index"`
	DrawerID    string    `json:"drawer_id" gorm:"size:255;not null;uniqueIndex"`
	LevelID     uint      `json:"level_id" gorm:"not null;index"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Trolley *Trolley      `json:"trolley,omitempty" gorm:"foreignKey:TrolleyID;constraint:OnDelete:CASCADE"`
	Level   *TrolleyLevel `json:"level,omitempty" gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE"`
}

func (TrolleyDrawer) TableName() string {
	return "trolley_drawers"
}
