package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/internal/model"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// AllocationRepository 课时分配数据访问接口
type AllocationRepository interface {
	DeleteByPlan(ctx context.Context, planID string) error
	BatchCreate(ctx context.Context, allocations []model.Allocation) error
	ListByPlan(ctx context.Context, planID string) ([]model.Allocation, error)
	GetByID(ctx context.Context, id string) (*model.Allocation, error)
	UpdateProgress(ctx context.Context, allocation *model.Allocation) error
}

type allocationRepo struct {
	db *gorm.DB
}

// NewAllocationRepo 创建 AllocationRepository 实例
func NewAllocationRepo(db *gorm.DB) AllocationRepository {
	return &allocationRepo{db: db}
}

func (r *allocationRepo) DeleteByPlan(ctx context.Context, planID string) error {
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Delete(&model.Allocation{}).Error
	return pkgerrors.Wrap(err, "删除课时分配失败")
}

func (r *allocationRepo) BatchCreate(ctx context.Context, allocations []model.Allocation) error {
	if len(allocations) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).CreateInBatches(&allocations, batchSize).Error
	return pkgerrors.Wrap(err, "批量写入课时分配失败")
}

// ListByPlan 按输出顺序列出分配
func (r *allocationRepo) ListByPlan(ctx context.Context, planID string) ([]model.Allocation, error) {
	var allocations []model.Allocation
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("position ASC").
		Find(&allocations).Error
	return allocations, err
}

func (r *allocationRepo) GetByID(ctx context.Context, id string) (*model.Allocation, error) {
	var allocation model.Allocation
	err := r.db.WithContext(ctx).
		Where("allocation_id = ?", id).
		First(&allocation).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// UpdateProgress 只更新完成状态与备注
func (r *allocationRepo) UpdateProgress(ctx context.Context, allocation *model.Allocation) error {
	return r.db.WithContext(ctx).
		Model(allocation).
		Where("allocation_id = ?", allocation.AllocationID).
		Updates(map[string]interface{}{
			"completed":  allocation.Completed,
			"notes":      allocation.Notes,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}
