package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bagerxx/OgretmenPlan/config"
	"github.com/bagerxx/OgretmenPlan/internal/repository"
	"github.com/bagerxx/OgretmenPlan/pkg/redis"
)

// timeLayout 审计时间的输出格式
const timeLayout = "2006-01-02T15:04:05Z"

// Cache 服务层使用的 JSON 缓存，由 pkg/redis.Client 实现
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service 所有 Service 的聚合入口
type Service struct {
	Calendar CalendarService
	Course   CourseService
	Plan     PlanService
	Export   ExportService
}

// NewService 创建 Service 聚合；rdb 为 nil 时不使用缓存
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var cache Cache
	if rdb != nil {
		cache = rdb
	}
	return &Service{
		Calendar: NewCalendarService(repo, cache, cfg.Planner.CacheTTL, logger),
		Course:   NewCourseService(repo, cfg.Planner, logger),
		Plan:     NewPlanService(repo, cfg.Planner, logger),
		Export:   NewExportService(repo, logger),
	}
}
