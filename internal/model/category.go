package model

import "time"

// Category — пользовательская категория записей. Иконка и цвет — метаданные
// для отображения, сервер их не интерпретирует.
type Category struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name  string `gorm:"not null;size:100"`
	Icon  string `gorm:"size:50"`
	Color string `gorm:"size:50"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
