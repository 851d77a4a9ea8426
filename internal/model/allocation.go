package model

import "time"

// Allocation 课时分配表，对应 allocations
type Allocation struct {
	AllocationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"allocation_id"`
	PlanID       string    `gorm:"type:uuid;not null;index"                       json:"plan_id"`
	ItemID       string    `gorm:"type:uuid;not null"                             json:"item_id"`
	WeekID       string    `gorm:"type:uuid;not null"                             json:"week_id"`
	Hours        int       `gorm:"not null"                                       json:"hours"`
	Position     int       `gorm:"not null"                                       json:"position"`
	Completed    bool      `gorm:"not null;default:false"                         json:"completed"`
	Notes        string    `gorm:"type:text;not null;default:''"                  json:"notes"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName 指定表名
func (Allocation) TableName() string { return "allocations" }
