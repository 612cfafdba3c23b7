package model

import "time"

// History — запись журнала действий. Только добавление: записи не изменяются
// и не удаляются штатными операциями.
type History struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Action    string `gorm:"not null;size:255"`
	Details   string `gorm:"size:255"`
	IPAddress string `gorm:"size:45"`

	Timestamp time.Time `gorm:"autoCreateTime"`
}
