package domain

import "time"

// Planta Model
type Planta struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`                                           // Primary key
	UsuariID            uint      `gorm:"column:usuari_id;not null" json:"usuari_id"`                     // Foreign key to Usuari
	Nom                 string    `json:"nom"`                                                            // Plant name
	Tipus               string    `json:"tipus"`                                                          // Plant type
	Nivell              int       `gorm:"not null;default:0" json:"nivell"`                               // Level
	Atac                int       `gorm:"not null;default:0" json:"atac"`                                 // Attack stat
	Defensa             int       `gorm:"not null;default:0" json:"defensa"`                              // Defense stat
	Velocitat           int       `gorm:"not null;default:0" json:"velocitat"`                            // Speed stat
	HabilitatEspecial   string    `gorm:"column:habilitat_especial" json:"habilitat_especial"`            // Special ability
	Energia             int       `gorm:"not null;default:100" json:"energia"`                            // Energy
	Estat               string    `gorm:"default:actiu" json:"estat"`                                     // Status
	Raritat             string    `gorm:"default:comú" json:"raritat"`                                    // Rarity
	Imatge              string    `json:"imatge"`                                                         // Image reference
	UltimaActualitzacio time.Time `gorm:"column:ultima_actualitzacio;autoUpdateTime" json:"ultima_actualitzacio"` // Refreshed on every update
}

// TableName keeps the legacy table name
func (Planta) TableName() string { return "plantas" }
