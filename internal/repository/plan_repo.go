package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/internal/model"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// PlanFilter 教学计划列表筛选条件
type PlanFilter struct {
	AcademicYearID string
	CourseID       string
	ClassName      string
	Offset         int
	Limit          int
}

// PlanRepository 教学计划数据访问接口
type PlanRepository interface {
	Create(ctx context.Context, plan *model.Plan) error
	GetByID(ctx context.Context, id string) (*model.Plan, error)
	GetByKey(ctx context.Context, className, courseID, academicYearID string) (*model.Plan, error)
	List(ctx context.Context, filter PlanFilter) ([]model.Plan, int64, error)
	Update(ctx context.Context, plan *model.Plan) error
	Delete(ctx context.Context, id string) error
}

type planRepo struct {
	db *gorm.DB
}

// NewPlanRepo 创建 PlanRepository 实例
func NewPlanRepo(db *gorm.DB) PlanRepository {
	return &planRepo{db: db}
}

func (r *planRepo) Create(ctx context.Context, plan *model.Plan) error {
	err := r.db.WithContext(ctx).Create(plan).Error
	return pkgerrors.Wrap(err, "创建教学计划失败")
}

func (r *planRepo) GetByID(ctx context.Context, id string) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) GetByKey(ctx context.Context, className, courseID, academicYearID string) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.WithContext(ctx).
		Where("class_name = ? AND course_id = ? AND academic_year_id = ?", className, courseID, academicYearID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) List(ctx context.Context, filter PlanFilter) ([]model.Plan, int64, error) {
	var plans []model.Plan
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Plan{})
	if filter.AcademicYearID != "" {
		db = db.Where("academic_year_id = ?", filter.AcademicYearID)
	}
	if filter.CourseID != "" {
		db = db.Where("course_id = ?", filter.CourseID)
	}
	if filter.ClassName != "" {
		db = db.Where("class_name = ?", filter.ClassName)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(filter.Offset).Limit(filter.Limit).
		Order("class_name ASC, created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

// Update 乐观锁更新：version 不匹配时返回 ErrOptimisticLock
func (r *planRepo) Update(ctx context.Context, plan *model.Plan) error {
	oldVersion := plan.Version
	result := r.db.WithContext(ctx).
		Model(plan).
		Where("plan_id = ? AND version = ?", plan.PlanID, oldVersion).
		Updates(map[string]interface{}{
			"name":            plan.Name,
			"weekly_hours":    plan.WeeklyHours,
			"mode":            plan.Mode,
			"total_hours":     plan.TotalHours,
			"shortfall_hours": plan.ShortfallHours,
			"shortfalls":      plan.Shortfalls,
			"updated_by":      plan.UpdatedBy,
			"version":         oldVersion + 1,
		})
	if result.Error != nil {
		return pkgerrors.Wrap(result.Error, "更新教学计划失败")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	plan.Version = oldVersion + 1
	return nil
}

// Delete 硬删除；allocations 通过外键级联删除
func (r *planRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("plan_id = ?", id).
		Delete(&model.Plan{}).Error
}
