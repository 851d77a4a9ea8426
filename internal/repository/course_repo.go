package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/internal/model"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// CourseFilter 课程列表筛选条件
type CourseFilter struct {
	Grade       int
	ProgramType string
	Offset      int
	Limit       int
}

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter CourseFilter) ([]model.Course, int64, error)
	Delete(ctx context.Context, id string, deletedBy string) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

// Create 创建课程，Items 随课程一并写入
func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	err := r.db.WithContext(ctx).Create(course).Error
	return pkgerrors.Wrap(err, "创建课程失败")
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *courseRepo) List(ctx context.Context, filter CourseFilter) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Course{})
	if filter.Grade > 0 {
		db = db.Where("grade = ?", filter.Grade)
	}
	if filter.ProgramType != "" {
		db = db.Where("program_type = ?", filter.ProgramType)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(filter.Offset).Limit(filter.Limit).
		Order("grade ASC, code ASC").
		Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

func (r *courseRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("course_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
