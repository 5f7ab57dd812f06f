package model

// Contador is a named monotonic counter (receipt and withdrawal numbering).
// Valor holds the last number handed out; it is advanced atomically with
// an UPSERT so numbers survive restarts and are never reused.
type Contador struct {
	Clave string `gorm:"primaryKey;type:varchar(30)"`
	Valor int64  `gorm:"not null;default:0"`
}

func (Contador) TableName() string { return "contadores" }
