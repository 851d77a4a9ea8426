package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/config"
	"github.com/bagerxx/OgretmenPlan/internal/distribution"
	"github.com/bagerxx/OgretmenPlan/internal/dto"
	"github.com/bagerxx/OgretmenPlan/internal/model"
	"github.com/bagerxx/OgretmenPlan/internal/repository"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// ── 教学计划模块业务错误 ──

var (
	ErrPlanNotFound       = errors.New("教学计划不存在")
	ErrPlanExists         = errors.New("目标学年已存在相同班级与课程的计划")
	ErrAllocationNotFound = errors.New("课时分配不存在")
)

// PlanService 教学计划业务接口
//
// 一个计划对应唯一的 (班级, 课程, 学年)。Distribute 对同一键重复调用时覆盖原计划，
// 课时分配整体替换，未能安排的课时以 shortfalls 与 warnings 返回而不是报错。
type PlanService interface {
	Distribute(ctx context.Context, req *dto.DistributeRequest, callerID string) (*dto.PlanDetailResponse, error)
	Get(ctx context.Context, id string) (*dto.PlanDetailResponse, error)
	List(ctx context.Context, req *dto.PlanListRequest) ([]dto.PlanResponse, int64, error)
	Stats(ctx context.Context, id string) (*dto.PlanStatsResponse, error)
	Copy(ctx context.Context, id string, req *dto.CopyPlanRequest, callerID string) (*dto.CopyPlanResponse, error)
	UpdateAllocation(ctx context.Context, planID, allocationID string, req *dto.UpdateAllocationRequest) (*dto.AllocationResponse, error)
	Delete(ctx context.Context, id string) error
}

type planService struct {
	repo    *repository.Repository
	planner config.PlannerConfig
	logger  *zap.Logger
}

// NewPlanService 创建 PlanService 实例
func NewPlanService(repo *repository.Repository, planner config.PlannerConfig, logger *zap.Logger) PlanService {
	return &planService{repo: repo, planner: planner, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// Distribute 生成课时分配
// ═══════════════════════════════════════════════════════════
//
// 流程：
//   1. 确定每周课时（请求值或课程默认值）并校验范围
//   2. 加载课程内容与学年教学周
//   3. 选择分配模式并运行分配引擎
//   4. 事务内 Upsert 计划并替换全部分配

func (s *planService) Distribute(ctx context.Context, req *dto.DistributeRequest, callerID string) (*dto.PlanDetailResponse, error) {
	course, err := s.getCourse(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	weekly := req.WeeklyHours
	if weekly == 0 {
		weekly = course.DefaultWeeklyHours
	}
	if weekly < s.planner.MinWeeklyHours || weekly > s.planner.MaxWeeklyHours {
		return nil, pkgerrors.FieldInvalid("weekly_hours",
			fmt.Sprintf("每周课时必须在 %d-%d 之间", s.planner.MinWeeklyHours, s.planner.MaxWeeklyHours))
	}

	year, err := s.getYearByNumber(ctx, req.Year)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.CurriculumItem.ListByCourse(ctx, course.CourseID)
	if err != nil {
		s.logger.Error("查询课程内容失败", zap.String("course_id", course.CourseID), zap.Error(err))
		return nil, err
	}
	weeks, err := s.repo.Week.ListByAcademicYear(ctx, year.AcademicYearID, true)
	if err != nil {
		s.logger.Error("查询教学周失败", zap.Int("year", req.Year), zap.Error(err))
		return nil, err
	}

	mode := resolveMode(course.ProgramType, req.Mode, items)
	result, err := runEngine(mode, items, weeks, weekly)
	if err != nil {
		return nil, err
	}

	itemNames := itemNameIndex(items)
	shortfalls := toShortfallResponses(result.Shortfalls, itemNames)
	shortfallJSON, _ := json.Marshal(shortfalls)

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("%s %s", req.ClassName, course.Name)
	}

	plan := &model.Plan{
		ClassName:      req.ClassName,
		CourseID:       course.CourseID,
		AcademicYearID: year.AcademicYearID,
		Name:           name,
		WeeklyHours:    weekly,
		Mode:           mode,
		TotalHours:     sumEngineHours(result.Allocations),
		ShortfallHours: result.TotalShortfall(),
		Shortfalls:     datatypes.JSON(shortfallJSON),
	}

	saved, allocations, err := s.savePlan(ctx, plan, result.Allocations, callerID)
	if err != nil {
		return nil, err
	}

	warnings := distributionWarnings(result, shortfalls, len(items), len(weeks), weekly)
	fields := []zap.Field{
		zap.String("plan_id", saved.PlanID),
		zap.String("class", saved.ClassName),
		zap.String("course_id", saved.CourseID),
		zap.Int("year", req.Year),
		zap.String("mode", mode),
		zap.Int("total_hours", saved.TotalHours),
	}
	if saved.ShortfallHours > 0 {
		s.logger.Warn("课时分配存在缺口", append(fields, zap.Int("shortfall_hours", saved.ShortfallHours))...)
	} else {
		s.logger.Info("课时分配已生成", fields...)
	}

	return &dto.PlanDetailResponse{
		Plan:        toPlanResponse(saved),
		Allocations: toAllocationResponses(allocations, itemNames, weekIndex(weeks)),
		Shortfalls:  shortfalls,
		Warnings:    warnings,
	}, nil
}

// savePlan 按键 Upsert 计划并替换分配，整体在一个事务内完成
func (s *planService) savePlan(ctx context.Context, plan *model.Plan, result []distribution.Allocation, callerID string) (*model.Plan, []model.Allocation, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, nil, err
	}
	txRepo := s.repo.WithTx(tx)

	fail := func(msg string, err error) (*model.Plan, []model.Allocation, error) {
		if tx != nil {
			tx.Rollback()
		}
		if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
			s.logger.Error(msg, zap.Error(err))
		}
		return nil, nil, err
	}

	existing, err := txRepo.Plan.GetByKey(ctx, plan.ClassName, plan.CourseID, plan.AcademicYearID)
	switch {
	case err == nil:
		existing.Name = plan.Name
		existing.WeeklyHours = plan.WeeklyHours
		existing.Mode = plan.Mode
		existing.TotalHours = plan.TotalHours
		existing.ShortfallHours = plan.ShortfallHours
		existing.Shortfalls = plan.Shortfalls
		existing.UpdatedBy = model.StringPtr(callerID)
		if err := txRepo.Plan.Update(ctx, existing); err != nil {
			return fail("更新教学计划失败", err)
		}
		plan = existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		plan.CreatedBy = model.StringPtr(callerID)
		plan.UpdatedBy = model.StringPtr(callerID)
		if err := txRepo.Plan.Create(ctx, plan); err != nil {
			return fail("创建教学计划失败", err)
		}
	default:
		return fail("查询教学计划失败", err)
	}

	allocations := make([]model.Allocation, 0, len(result))
	for _, a := range result {
		allocations = append(allocations, model.Allocation{
			PlanID:   plan.PlanID,
			ItemID:   a.ItemID,
			WeekID:   a.WeekID,
			Hours:    a.Hours,
			Position: a.Position,
		})
	}
	if err := txRepo.Allocation.DeleteByPlan(ctx, plan.PlanID); err != nil {
		return fail("删除旧分配失败", err)
	}
	if err := txRepo.Allocation.BatchCreate(ctx, allocations); err != nil {
		return fail("写入分配失败", err)
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, nil, err
		}
	}

	stored, err := s.repo.Allocation.ListByPlan(ctx, plan.PlanID)
	if err != nil {
		s.logger.Error("查询分配失败", zap.Error(err))
		return nil, nil, err
	}
	return plan, stored, nil
}

// resolveMode 显式指定优先；技能型按权重；学习成果全部未填课时时平均分配
func resolveMode(programType, requested string, items []model.CurriculumItem) string {
	if requested != "" {
		return requested
	}
	if programType == model.ProgramSkill {
		return model.ModeWeight
	}
	if len(items) > 0 {
		for _, it := range items {
			if it.DurationHours > 0 {
				return model.ModeHours
			}
		}
		return model.ModeEqual
	}
	return model.ModeHours
}

func runEngine(mode string, items []model.CurriculumItem, weeks []model.Week, weekly int) (distribution.Result, error) {
	engineItems := make([]distribution.Item, 0, len(items))
	for _, it := range items {
		engineItems = append(engineItems, distribution.Item{
			ID:            it.ItemID,
			Name:          it.Name,
			DurationHours: it.DurationHours,
			Weight:        it.Weight,
			Position:      it.Position,
		})
	}
	engineWeeks := make([]distribution.Week, 0, len(weeks))
	for _, w := range weeks {
		engineWeeks = append(engineWeeks, distribution.Week{ID: w.WeekID, Sequence: w.SequenceOrZero()})
	}

	switch mode {
	case model.ModeWeight:
		return distribution.DistributeByWeight(engineItems, engineWeeks, weekly)
	case model.ModeEqual:
		shares := distribution.EqualShares(len(engineWeeks)*weekly, len(engineItems))
		for i := range engineItems {
			engineItems[i].DurationHours = shares[i]
		}
	}
	return distribution.Distribute(engineItems, engineWeeks, weekly)
}

func distributionWarnings(result distribution.Result, shortfalls []dto.ShortfallResponse, itemCount, weekCount, weekly int) []string {
	warnings := []string{}
	if itemCount == 0 {
		warnings = append(warnings, "课程没有内容，未生成任何分配")
	}
	if weekCount == 0 {
		warnings = append(warnings, "学年没有教学周，全部课时无法安排")
	}
	for _, sf := range shortfalls {
		warnings = append(warnings, fmt.Sprintf("内容「%s」有 %d 课时未能安排", sf.ItemName, sf.MissingHours))
	}
	capacity := weekCount * weekly
	if used := sumEngineHours(result.Allocations); itemCount > 0 && used < capacity {
		warnings = append(warnings, fmt.Sprintf("已安排 %d 课时，可用 %d 课时，剩余 %d 课时未使用", used, capacity, capacity-used))
	}
	return warnings
}

// ────────────────────── Get ──────────────────────

func (s *planService) Get(ctx context.Context, id string) (*dto.PlanDetailResponse, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	allocations, err := s.repo.Allocation.ListByPlan(ctx, plan.PlanID)
	if err != nil {
		s.logger.Error("查询分配失败", zap.String("plan_id", id), zap.Error(err))
		return nil, err
	}
	items, err := s.repo.CurriculumItem.ListByCourse(ctx, plan.CourseID)
	if err != nil {
		s.logger.Error("查询课程内容失败", zap.Error(err))
		return nil, err
	}
	weeks, err := s.repo.Week.ListByAcademicYear(ctx, plan.AcademicYearID, false)
	if err != nil {
		s.logger.Error("查询周次失败", zap.Error(err))
		return nil, err
	}

	return &dto.PlanDetailResponse{
		Plan:        toPlanResponse(plan),
		Allocations: toAllocationResponses(allocations, itemNameIndex(items), weekIndex(weeks)),
		Shortfalls:  decodeShortfalls(plan.Shortfalls),
	}, nil
}

// ────────────────────── List ──────────────────────

func (s *planService) List(ctx context.Context, req *dto.PlanListRequest) ([]dto.PlanResponse, int64, error) {
	filter := repository.PlanFilter{
		CourseID:  req.CourseID,
		ClassName: req.ClassName,
		Offset:    req.GetOffset(),
		Limit:     req.GetPageSize(),
	}
	if req.Year > 0 {
		year, err := s.getYearByNumber(ctx, req.Year)
		if err != nil {
			return nil, 0, err
		}
		filter.AcademicYearID = year.AcademicYearID
	}

	plans, total, err := s.repo.Plan.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出教学计划失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, toPlanResponse(&plans[i]))
	}
	return result, total, nil
}

// ────────────────────── Stats ──────────────────────

func (s *planService) Stats(ctx context.Context, id string) (*dto.PlanStatsResponse, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	weeks, err := s.repo.Week.ListByAcademicYear(ctx, plan.AcademicYearID, true)
	if err != nil {
		s.logger.Error("查询教学周失败", zap.Error(err))
		return nil, err
	}
	allocations, err := s.repo.Allocation.ListByPlan(ctx, plan.PlanID)
	if err != nil {
		s.logger.Error("查询分配失败", zap.Error(err))
		return nil, err
	}

	stats := &dto.PlanStatsResponse{
		PlanID:           plan.PlanID,
		TotalHours:       len(weeks) * plan.WeeklyHours,
		TotalAllocations: len(allocations),
		ShortfallHours:   plan.ShortfallHours,
	}
	for _, a := range allocations {
		stats.UsedHours += a.Hours
		if a.Completed {
			stats.CompletedHours += a.Hours
			stats.CompletedAllocations++
		}
	}
	stats.RemainingHours = stats.TotalHours - stats.UsedHours
	stats.UsagePercent = percent(stats.UsedHours, stats.TotalHours)
	stats.CompletionPercent = percent(stats.CompletedAllocations, stats.TotalAllocations)
	return stats, nil
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// ────────────────────── Copy ──────────────────────

// Copy 按教学周序号把计划复制到另一学年
// 目标学年中不存在对应序号的分配被丢弃，丢弃的课时计入缺口；完成状态不复制
func (s *planService) Copy(ctx context.Context, id string, req *dto.CopyPlanRequest, callerID string) (*dto.CopyPlanResponse, error) {
	src, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	target, err := s.getYearByNumber(ctx, req.TargetYear)
	if err != nil {
		return nil, err
	}

	_, err = s.repo.Plan.GetByKey(ctx, src.ClassName, src.CourseID, target.AcademicYearID)
	if err == nil {
		return nil, ErrPlanExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询教学计划失败", zap.Error(err))
		return nil, err
	}

	srcAllocs, err := s.repo.Allocation.ListByPlan(ctx, src.PlanID)
	if err != nil {
		s.logger.Error("查询分配失败", zap.Error(err))
		return nil, err
	}
	srcWeeks, err := s.repo.Week.ListByAcademicYear(ctx, src.AcademicYearID, false)
	if err != nil {
		s.logger.Error("查询周次失败", zap.Error(err))
		return nil, err
	}
	targetWeeks, err := s.repo.Week.ListByAcademicYear(ctx, target.AcademicYearID, true)
	if err != nil {
		s.logger.Error("查询周次失败", zap.Error(err))
		return nil, err
	}
	items, err := s.repo.CurriculumItem.ListByCourse(ctx, src.CourseID)
	if err != nil {
		s.logger.Error("查询课程内容失败", zap.Error(err))
		return nil, err
	}

	srcSeq := make(map[string]int, len(srcWeeks))
	for _, w := range srcWeeks {
		srcSeq[w.WeekID] = w.SequenceOrZero()
	}
	targetBySeq := make(map[int]string, len(targetWeeks))
	for _, w := range targetWeeks {
		targetBySeq[w.SequenceOrZero()] = w.WeekID
	}

	itemNames := itemNameIndex(items)
	shortfalls := decodeShortfalls(src.Shortfalls)
	copied := make([]model.Allocation, 0, len(srcAllocs))
	dropped := 0
	for _, a := range srcAllocs {
		weekID, ok := targetBySeq[srcSeq[a.WeekID]]
		if !ok {
			dropped++
			shortfalls = addShortfall(shortfalls, a.ItemID, itemNames[a.ItemID], a.Hours)
			continue
		}
		copied = append(copied, model.Allocation{
			ItemID:   a.ItemID,
			WeekID:   weekID,
			Hours:    a.Hours,
			Position: len(copied) + 1,
			Notes:    a.Notes,
		})
	}

	name := req.Name
	if name == "" {
		name = src.Name + " (Kopya)"
	}
	shortfallJSON, _ := json.Marshal(shortfalls)
	plan := &model.Plan{
		ClassName:      src.ClassName,
		CourseID:       src.CourseID,
		AcademicYearID: target.AcademicYearID,
		Name:           name,
		WeeklyHours:    src.WeeklyHours,
		Mode:           src.Mode,
		TotalHours:     sumModelHours(copied),
		ShortfallHours: sumShortfall(shortfalls),
		Shortfalls:     datatypes.JSON(shortfallJSON),
	}
	plan.CreatedBy = model.StringPtr(callerID)
	plan.UpdatedBy = model.StringPtr(callerID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Plan.Create(ctx, plan); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("创建教学计划失败", zap.Error(err))
		return nil, err
	}
	for i := range copied {
		copied[i].PlanID = plan.PlanID
	}
	if err := txRepo.Allocation.BatchCreate(ctx, copied); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("写入分配失败", zap.Error(err))
		return nil, err
	}
	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("教学计划已复制",
		zap.String("source_plan_id", src.PlanID),
		zap.String("plan_id", plan.PlanID),
		zap.Int("target_year", req.TargetYear),
		zap.Int("dropped", dropped),
	)

	detail, err := s.Get(ctx, plan.PlanID)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		detail.Warnings = []string{fmt.Sprintf("目标学年缺少对应教学周，丢弃 %d 条分配", dropped)}
	}
	return &dto.CopyPlanResponse{PlanDetailResponse: *detail, DroppedAllocations: dropped}, nil
}

func addShortfall(list []dto.ShortfallResponse, itemID, itemName string, hours int) []dto.ShortfallResponse {
	for i := range list {
		if list[i].ItemID == itemID {
			list[i].MissingHours += hours
			return list
		}
	}
	return append(list, dto.ShortfallResponse{ItemID: itemID, ItemName: itemName, MissingHours: hours})
}

// ────────────────────── UpdateAllocation ──────────────────────

func (s *planService) UpdateAllocation(ctx context.Context, planID, allocationID string, req *dto.UpdateAllocationRequest) (*dto.AllocationResponse, error) {
	alloc, err := s.repo.Allocation.GetByID(ctx, allocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAllocationNotFound
		}
		s.logger.Error("查询分配失败", zap.String("id", allocationID), zap.Error(err))
		return nil, err
	}
	if alloc.PlanID != planID {
		return nil, ErrAllocationNotFound
	}

	if req.Completed != nil {
		alloc.Completed = *req.Completed
	}
	if req.Notes != nil {
		alloc.Notes = *req.Notes
	}
	if err := s.repo.Allocation.UpdateProgress(ctx, alloc); err != nil {
		s.logger.Error("更新分配失败", zap.String("id", allocationID), zap.Error(err))
		return nil, err
	}

	resp := toAllocationResponse(*alloc, nil, nil)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *planService) Delete(ctx context.Context, id string) error {
	if _, err := s.getPlan(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Plan.Delete(ctx, id); err != nil {
		s.logger.Error("删除教学计划失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 查询辅助 ──

func (s *planService) getPlan(ctx context.Context, id string) (*model.Plan, error) {
	plan, err := s.repo.Plan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		s.logger.Error("查询教学计划失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return plan, nil
}

func (s *planService) getCourse(ctx context.Context, id string) (*model.Course, error) {
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

func (s *planService) getYearByNumber(ctx context.Context, year int) (*model.AcademicYear, error) {
	ay, err := s.repo.AcademicYear.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAcademicYearNotFound
		}
		s.logger.Error("查询学年失败", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return ay, nil
}

// ── 转换 ──

func itemNameIndex(items []model.CurriculumItem) map[string]string {
	out := make(map[string]string, len(items))
	for _, it := range items {
		out[it.ItemID] = it.Name
	}
	return out
}

func weekIndex(weeks []model.Week) map[string]model.Week {
	out := make(map[string]model.Week, len(weeks))
	for _, w := range weeks {
		out[w.WeekID] = w
	}
	return out
}

func toShortfallResponses(shortfalls []distribution.Shortfall, names map[string]string) []dto.ShortfallResponse {
	out := make([]dto.ShortfallResponse, 0, len(shortfalls))
	for _, sf := range shortfalls {
		out = append(out, dto.ShortfallResponse{ItemID: sf.ItemID, ItemName: names[sf.ItemID], MissingHours: sf.MissingHours})
	}
	return out
}

func decodeShortfalls(raw datatypes.JSON) []dto.ShortfallResponse {
	out := []dto.ShortfallResponse{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func sumShortfall(list []dto.ShortfallResponse) int {
	total := 0
	for _, sf := range list {
		total += sf.MissingHours
	}
	return total
}

func sumEngineHours(allocs []distribution.Allocation) int {
	total := 0
	for _, a := range allocs {
		total += a.Hours
	}
	return total
}

func sumModelHours(allocs []model.Allocation) int {
	total := 0
	for _, a := range allocs {
		total += a.Hours
	}
	return total
}

func toPlanResponse(plan *model.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:             plan.PlanID,
		ClassName:      plan.ClassName,
		CourseID:       plan.CourseID,
		AcademicYearID: plan.AcademicYearID,
		Name:           plan.Name,
		WeeklyHours:    plan.WeeklyHours,
		Mode:           plan.Mode,
		TotalHours:     plan.TotalHours,
		ShortfallHours: plan.ShortfallHours,
		Version:        plan.Version,
		CreatedAt:      plan.CreatedAt.Format(timeLayout),
		UpdatedAt:      plan.UpdatedAt.Format(timeLayout),
	}
}

func toAllocationResponse(a model.Allocation, names map[string]string, weeks map[string]model.Week) dto.AllocationResponse {
	resp := dto.AllocationResponse{
		ID:        a.AllocationID,
		ItemID:    a.ItemID,
		ItemName:  names[a.ItemID],
		WeekID:    a.WeekID,
		Hours:     a.Hours,
		Position:  a.Position,
		Completed: a.Completed,
		Notes:     a.Notes,
	}
	if w, ok := weeks[a.WeekID]; ok {
		resp.WeekSequence = w.SequenceOrZero()
		resp.WeekLabel = w.Label
	}
	return resp
}

func toAllocationResponses(allocs []model.Allocation, names map[string]string, weeks map[string]model.Week) []dto.AllocationResponse {
	out := make([]dto.AllocationResponse, 0, len(allocs))
	for _, a := range allocs {
		out = append(out, toAllocationResponse(a, names, weeks))
	}
	return out
}
