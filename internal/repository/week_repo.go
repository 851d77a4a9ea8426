package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/internal/model"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// WeekRepository 周次数据访问接口
type WeekRepository interface {
	DeleteByAcademicYear(ctx context.Context, academicYearID string) error
	BatchCreate(ctx context.Context, weeks []model.Week) error
	ListByAcademicYear(ctx context.Context, academicYearID string, teachingOnly bool) ([]model.Week, error)
}

type weekRepo struct {
	db *gorm.DB
}

// NewWeekRepo 创建 WeekRepository 实例
func NewWeekRepo(db *gorm.DB) WeekRepository {
	return &weekRepo{db: db}
}

// DeleteByAcademicYear 删除学年全部周次；allocations 通过外键级联删除
func (r *weekRepo) DeleteByAcademicYear(ctx context.Context, academicYearID string) error {
	err := r.db.WithContext(ctx).
		Where("academic_year_id = ?", academicYearID).
		Delete(&model.Week{}).Error
	return pkgerrors.Wrap(err, "删除周次失败")
}

func (r *weekRepo) BatchCreate(ctx context.Context, weeks []model.Week) error {
	if len(weeks) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).CreateInBatches(&weeks, batchSize).Error
	return pkgerrors.Wrap(err, "批量写入周次失败")
}

// ListByAcademicYear 按时间顺序列出周次
func (r *weekRepo) ListByAcademicYear(ctx context.Context, academicYearID string, teachingOnly bool) ([]model.Week, error) {
	var weeks []model.Week
	db := r.db.WithContext(ctx).Where("academic_year_id = ?", academicYearID)
	if teachingOnly {
		db = db.Where("type = ?", model.WeekTypeTeaching)
	}
	err := db.Order("week_index ASC").Find(&weeks).Error
	return weeks, err
}
