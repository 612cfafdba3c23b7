package model

import "time"

// Password — серверная модель записи хранилища. Секретное значение хранится
// только в зашифрованном виде (cipher+nonce), остальные поля — открытым
// текстом по дизайну.
type Password struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CategoryID *string   `gorm:"type:uuid;index"` // опциональная ссылка на categories.id
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	Title string `gorm:"not null;size:100"`

	// Cipher/Nonce — единственный результат работы шифровального слоя.
	Cipher []byte `gorm:"not null"`
	Nonce  []byte `gorm:"not null"`

	URL   string `gorm:"size:500"`
	Notes string

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
