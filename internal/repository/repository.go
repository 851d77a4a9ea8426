package repository

import (
	"context"

	"gorm.io/gorm"
)

// batchSize 批量插入每批行数
const batchSize = 200

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	AcademicYear   AcademicYearRepository
	Week           WeekRepository
	Course         CourseRepository
	CurriculumItem CurriculumItemRepository
	Plan           PlanRepository
	Allocation     AllocationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:             db,
		AcademicYear:   NewAcademicYearRepo(db),
		Week:           NewWeekRepo(db),
		Course:         NewCourseRepo(db),
		CurriculumItem: NewCurriculumItemRepo(db),
		Plan:           NewPlanRepo(db),
		Allocation:     NewAllocationRepo(db),
	}
}

// BeginTx 开启事务；未连接数据库时（单元测试）返回 nil
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到事务连接的 Repository；tx 为 nil 时返回自身
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
