package entity

import (
	"time"
)

// Specification is a named packing plan binding required products and
// quantities to specific drawers, optionally templated to a trolley.
type Specification struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	SpecID            string    `json:"spec_id" gorm:"size:100;not null;uniqueIndex"`
	Name              string    `json:"name" gorm:"size:255;not null"`
	Description       *string   `json:"description" gorm:"type:text"`
	TrolleyTemplateID *uint     `json:"trolley_template_id" gorm:"index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	TrolleyTemplate *Trolley            `json:"trolley_template,omitempty" gorm:"foreignKey:TrolleyTemplateID;constraint:OnDelete:SET NULL"`
	Items           []SpecificationItem `json:"items,omitempty" gorm:"foreignKey:SpecificationID;constraint:OnDelete:CASCADE"`
}

func (Specification) TableName() string {
	return "specifications"
}

// SpecificationItem is one (drawer, product, required_quantity) line of
// a Specification. Unique per (specification, drawer, product).
type SpecificationItem struct {
	ID               uint `json:"id" gorm:"primaryKey"`
	SpecificationID  uint `json:"specification_id" gorm:"not null;uniqueIndex:uq_spec_drawer_product,priority:1"`
	DrawerID         uint `json:"drawer_id" gorm:"not null;uniqueIndex:uq_spec_drawer_product,priority:2"`
	ProductID        uint `json:"product_id" gorm:"not null;uniqueIndex:uq_spec_drawer_product,priority:3"`
	RequiredQuantity int  `json:"required_quantity" gorm:"not null;default:1"`

	Specification *Specification `json:"specification,omitempty" gorm:"foreignKey:SpecificationID"`
	Drawer        *TrolleyDrawer `json:"drawer,omitempty" gorm:"foreignKey:DrawerID;constraint:OnDelete:CASCADE"`
	Product       *Product       `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (SpecificationItem) TableName() string {
	return "specification_items"
}
