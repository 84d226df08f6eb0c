package domain

// Usuari Model
type Usuari struct {
	ID           uint     `gorm:"primaryKey" json:"id"`                                                              // Primary key
	Nom          string   `gorm:"not null" json:"nom"`                                                               // Display name
	Correu       string   `gorm:"unique;not null" json:"correu"`                                                     // Unique email address
	Contrasenya  string   `gorm:"not null" json:"contrasenya"`                                                       // Hashed password
	Edat         int      `json:"edat"`                                                                             // Age
	Nacionalitat string   `json:"nacionalitat"`                                                                      // Nationality
	CodiPostal   string   `gorm:"column:codiPostal" json:"codiPostal"`                                               // Postal code
	ImatgePerfil string   `gorm:"column:imatgePerfil" json:"imatgePerfil"`                                           // Profile image reference
	Rol          string   `gorm:"default:USER" json:"rol"`                                                           // Role: USER or ADMIN
	Btc          float64  `gorm:"not null;default:0" json:"btc"`                                                     // BTC balance
	Plantes      []Planta `gorm:"foreignKey:UsuariID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"plantes,omitempty"` // Plants owned by this user
}

// TableName keeps the legacy table name
func (Usuari) TableName() string { return "usuaris" }
