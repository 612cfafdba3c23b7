package model

import "time"

// User — учётная запись хранилища. Хранит только хэш пароля и секрет 2FA,
// исходный пароль нигде не сохраняется.
type User struct {
	ID    int64  `gorm:"primaryKey"`
	Email string `gorm:"uniqueIndex;not null;size:120"`

	// PasswordHash непустой для любой активной учётной записи.
	PasswordHash string `gorm:"not null;size:128"`

	// TwoFactorSecret выдаётся один раз при регистрации (base32) и дальше
	// не перегенерируется автоматически.
	TwoFactorSecret string `gorm:"size:32"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
