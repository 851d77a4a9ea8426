package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bagerxx/OgretmenPlan/internal/model"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// AcademicYearRepository 学年数据访问接口
type AcademicYearRepository interface {
	Upsert(ctx context.Context, year *model.AcademicYear) error
	GetByID(ctx context.Context, id string) (*model.AcademicYear, error)
	GetByYear(ctx context.Context, year int) (*model.AcademicYear, error)
	List(ctx context.Context) ([]model.AcademicYear, error)
}

type academicYearRepo struct {
	db *gorm.DB
}

// NewAcademicYearRepo 创建 AcademicYearRepository 实例
func NewAcademicYearRepo(db *gorm.DB) AcademicYearRepository {
	return &academicYearRepo{db: db}
}

// Upsert 按 year 插入或覆盖；created_* 字段保留首次生成时的值
func (r *academicYearRepo) Upsert(ctx context.Context, year *model.AcademicYear) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"label", "start_date", "end_date", "holidays", "summary", "updated_at", "updated_by",
			}),
		}).
		Create(year).Error
	return pkgerrors.Wrap(err, "写入学年失败")
}

func (r *academicYearRepo) GetByID(ctx context.Context, id string) (*model.AcademicYear, error) {
	var year model.AcademicYear
	err := r.db.WithContext(ctx).
		Where("academic_year_id = ?", id).
		First(&year).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *academicYearRepo) GetByYear(ctx context.Context, year int) (*model.AcademicYear, error) {
	var ay model.AcademicYear
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		First(&ay).Error
	if err != nil {
		return nil, err
	}
	return &ay, nil
}

func (r *academicYearRepo) List(ctx context.Context) ([]model.AcademicYear, error) {
	var years []model.AcademicYear
	err := r.db.WithContext(ctx).
		Order("year DESC").
		Find(&years).Error
	return years, err
}
