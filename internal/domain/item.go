package domain

// Item Model (read-only catalogue)
type Item struct {
	ID         uint    `gorm:"primaryKey" json:"id"`    // Primary key
	Nom        string  `gorm:"not null" json:"nom"`     // Item name
	Descripcio string  `json:"descripcio"`              // Description
	Preu       float64 `json:"preu"`                    // Price
}

// TableName keeps the legacy table name
func (Item) TableName() string { return "items" }
