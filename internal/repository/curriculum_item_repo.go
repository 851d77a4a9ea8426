package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/internal/model"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// CurriculumItemRepository 课程内容数据访问接口
type CurriculumItemRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]model.CurriculumItem, error)
	DeleteByCourse(ctx context.Context, courseID string) error
	BatchCreate(ctx context.Context, items []model.CurriculumItem) error
}

type curriculumItemRepo struct {
	db *gorm.DB
}

// NewCurriculumItemRepo 创建 CurriculumItemRepository 实例
func NewCurriculumItemRepo(db *gorm.DB) CurriculumItemRepository {
	return &curriculumItemRepo{db: db}
}

func (r *curriculumItemRepo) ListByCourse(ctx context.Context, courseID string) ([]model.CurriculumItem, error) {
	var items []model.CurriculumItem
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

// DeleteByCourse 删除课程全部内容；相关 allocations 通过外键级联删除
func (r *curriculumItemRepo) DeleteByCourse(ctx context.Context, courseID string) error {
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&model.CurriculumItem{}).Error
	return pkgerrors.Wrap(err, "删除课程内容失败")
}

func (r *curriculumItemRepo) BatchCreate(ctx context.Context, items []model.CurriculumItem) error {
	if len(items) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).CreateInBatches(&items, batchSize).Error
	return pkgerrors.Wrap(err, "批量写入课程内容失败")
}
