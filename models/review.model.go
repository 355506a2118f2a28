package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Role      string    `gorm:"type:varchar(200);not null" json:"role"`
	Company   string    `gorm:"type:varchar(200);not null" json:"company"`
	Email     *string   `gorm:"type:varchar(254)" json:"email"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Review    string    `gorm:"type:text;not null" json:"review"`
}

func (Review) TableName() string {
	return "reviews"
}
