package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademyModel struct {
	AcademyID      uuid.UUID      `gorm:"column:academy_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"academy_id"`
	AcademyName    string         `gorm:"column:academy_name;type:varchar(120);not null" json:"academy_name"`
	AcademyPhone   *string        `gorm:"column:academy_phone;type:varchar(32)" json:"academy_phone,omitempty"`
	AcademyAddress *string        `gorm:"column:academy_address;type:text" json:"academy_address,omitempty"`
	AcademyCreatedAt time.Time    `gorm:"column:academy_created_at;autoCreateTime" json:"academy_created_at"`
	AcademyUpdatedAt time.Time    `gorm:"column:academy_updated_at;autoUpdateTime" json:"academy_updated_at"`
	AcademyDeletedAt gorm.DeletedAt `gorm:"column:academy_deleted_at;index" json:"-"`
}

func (AcademyModel) TableName() string {
	return "academies"
}
