package models

type Question struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	// stored as a plain int, not validated against the categories table
	// at write time
	Category   int `gorm:"not null;index" json:"category"`
	Difficulty int `gorm:"not null" json:"difficulty"`
}
