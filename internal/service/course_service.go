package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/config"
	"github.com/bagerxx/OgretmenPlan/internal/dto"
	"github.com/bagerxx/OgretmenPlan/internal/model"
	"github.com/bagerxx/OgretmenPlan/internal/repository"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound   = errors.New("课程不存在")
	ErrCourseCodeExists = errors.New("课程代码已存在")
)

// CourseService 课程与课程内容业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest, callerID string) (*dto.CourseResponse, error)
	Get(ctx context.Context, id string) (*dto.CourseResponse, error)
	List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseResponse, int64, error)
	Delete(ctx context.Context, id string, callerID string) error
	ReplaceItems(ctx context.Context, id string, req *dto.ReplaceItemsRequest, callerID string) (*dto.CourseResponse, error)
}

type courseService struct {
	repo    *repository.Repository
	planner config.PlannerConfig
	logger  *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, planner config.PlannerConfig, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, planner: planner, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest, callerID string) (*dto.CourseResponse, error) {
	fields := validateItems(req.ProgramType, req.Items)
	if req.DefaultWeeklyHours < s.planner.MinWeeklyHours || req.DefaultWeeklyHours > s.planner.MaxWeeklyHours {
		fields = append([]pkgerrors.FieldError{{
			Field: "default_weekly_hours",
			Error: fmt.Sprintf("每周课时必须在 %d-%d 之间", s.planner.MinWeeklyHours, s.planner.MaxWeeklyHours),
		}}, fields...)
	}
	if len(fields) > 0 {
		return nil, pkgerrors.NewValidationError(nil, fields...)
	}

	exists, err := s.repo.Course.ExistsByCode(ctx, req.Code)
	if err != nil {
		s.logger.Error("检查课程代码失败", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrCourseCodeExists
	}

	course := &model.Course{
		Code:               req.Code,
		Name:               req.Name,
		Grade:              req.Grade,
		ProgramType:        req.ProgramType,
		DefaultWeeklyHours: req.DefaultWeeklyHours,
		Items:              toItemModels("", req.ProgramType, req.Items),
	}
	course.CreatedBy = model.StringPtr(callerID)
	course.UpdatedBy = model.StringPtr(callerID)

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return toCourseResponse(course), nil
}

// ────────────────────── Get ──────────────────────

func (s *courseService) Get(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) getCourse(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return course, nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseResponse, int64, error) {
	courses, total, err := s.repo.Course.List(ctx, repository.CourseFilter{
		Grade:       req.Grade,
		ProgramType: req.ProgramType,
		Offset:      req.GetOffset(),
		Limit:       req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i]))
	}
	return result, total, nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.getCourse(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Course.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ReplaceItems ──────────────────────

// ReplaceItems 整体替换课程内容；已有计划中引用旧内容的分配随之级联删除
func (s *courseService) ReplaceItems(ctx context.Context, id string, req *dto.ReplaceItemsRequest, callerID string) (*dto.CourseResponse, error) {
	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if fields := validateItems(course.ProgramType, req.Items); len(fields) > 0 {
		return nil, pkgerrors.NewValidationError(nil, fields...)
	}

	items := toItemModels(course.CourseID, course.ProgramType, req.Items)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)

	if err := txRepo.CurriculumItem.DeleteByCourse(ctx, course.CourseID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("删除课程内容失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if err := txRepo.CurriculumItem.BatchCreate(ctx, items); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("写入课程内容失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("课程内容已替换",
		zap.String("course_id", course.CourseID),
		zap.Int("items", len(items)),
		zap.String("by", callerID),
	)

	stored, err := s.repo.CurriculumItem.ListByCourse(ctx, course.CourseID)
	if err != nil {
		s.logger.Error("查询课程内容失败", zap.Error(err))
		return nil, err
	}
	course.Items = stored
	return toCourseResponse(course), nil
}

// ── 校验与转换 ──

// validateItems 学习成果的课时要么全部填写要么全部省略；技能必须有权重
func validateItems(programType string, items []dto.CurriculumItemRequest) []pkgerrors.FieldError {
	var fields []pkgerrors.FieldError
	switch programType {
	case model.ProgramOutcome:
		withHours := 0
		for _, it := range items {
			if it.DurationHours > 0 {
				withHours++
			}
		}
		if withHours == 0 || withHours == len(items) {
			return nil
		}
		for i, it := range items {
			if it.DurationHours <= 0 {
				fields = append(fields, pkgerrors.FieldError{
					Field: fmt.Sprintf("items[%d].duration_hours", i),
					Error: "部分内容填写了课时，其余内容也必须填写",
				})
			}
		}
	case model.ProgramSkill:
		for i, it := range items {
			if it.Weight <= 0 {
				fields = append(fields, pkgerrors.FieldError{
					Field: fmt.Sprintf("items[%d].weight", i),
					Error: "技能必须填写大于 0 的权重",
				})
			}
		}
	}
	return fields
}

func toItemModels(courseID, programType string, items []dto.CurriculumItemRequest) []model.CurriculumItem {
	out := make([]model.CurriculumItem, 0, len(items))
	for i, it := range items {
		out = append(out, model.CurriculumItem{
			CourseID:      courseID,
			Kind:          programType,
			Code:          it.Code,
			Name:          it.Name,
			DurationHours: it.DurationHours,
			Weight:        it.Weight,
			Position:      i + 1,
		})
	}
	return out
}

func toCourseResponse(course *model.Course) *dto.CourseResponse {
	resp := &dto.CourseResponse{
		ID:                 course.CourseID,
		Code:               course.Code,
		Name:               course.Name,
		Grade:              course.Grade,
		ProgramType:        course.ProgramType,
		DefaultWeeklyHours: course.DefaultWeeklyHours,
		CreatedAt:          course.CreatedAt.Format(timeLayout),
	}
	for _, it := range course.Items {
		resp.Items = append(resp.Items, dto.CurriculumItemResponse{
			ID:            it.ItemID,
			Kind:          it.Kind,
			Code:          it.Code,
			Name:          it.Name,
			DurationHours: it.DurationHours,
			Weight:        it.Weight,
			Position:      it.Position,
		})
	}
	return resp
}
