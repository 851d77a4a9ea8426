package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/internal/calendar"
	"github.com/bagerxx/OgretmenPlan/internal/dto"
	"github.com/bagerxx/OgretmenPlan/internal/model"
	"github.com/bagerxx/OgretmenPlan/internal/repository"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// ── 学年日历模块业务错误 ──

var ErrAcademicYearNotFound = errors.New("学年不存在")

// CalendarService 学年日历业务接口
type CalendarService interface {
	Generate(ctx context.Context, req *dto.GenerateCalendarRequest, callerID string) (*dto.CalendarResponse, error)
	Preview(ctx context.Context, req *dto.GenerateCalendarRequest) (*dto.PreviewResponse, error)
	ListYears(ctx context.Context) ([]dto.AcademicYearResponse, error)
	GetYear(ctx context.Context, year int) (*dto.AcademicYearResponse, error)
	ListWeeks(ctx context.Context, year int, teachingOnly bool) ([]dto.WeekResponse, error)
}

type calendarService struct {
	repo     *repository.Repository
	cache    Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例；cache 可为 nil
func NewCalendarService(repo *repository.Repository, cache Cache, cacheTTL time.Duration, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func weekCacheKey(year int, teachingOnly bool) string {
	return fmt.Sprintf("plan:weeks:%d:%t", year, teachingOnly)
}

// ────────────────────── Generate ──────────────────────

// Generate 生成并保存学年日历；同一学年重复生成时整体替换周次
// 周次通过外键级联，已有计划的课时分配随旧周次一起删除
func (s *calendarService) Generate(ctx context.Context, req *dto.GenerateCalendarRequest, callerID string) (*dto.CalendarResponse, error) {
	in, err := buildCalendarInput(req)
	if err != nil {
		return nil, err
	}
	if !in.Start.Before(in.End) {
		return nil, pkgerrors.FieldInvalid("end_date", "结束日期必须晚于开始日期")
	}

	result := calendar.Generate(in)
	warnings := calendarWarnings(in, result)

	holidays, _ := json.Marshal(toHolidayResponses(in.Holidays))
	summary, _ := json.Marshal(result.Summary)
	ay := &model.AcademicYear{
		Year:      in.Year,
		Label:     in.Label,
		StartDate: in.Start,
		EndDate:   in.End,
		Holidays:  datatypes.JSON(holidays),
		Summary:   datatypes.JSON(summary),
	}
	ay.CreatedBy = model.StringPtr(callerID)
	ay.UpdatedBy = model.StringPtr(callerID)
	ay.UpdatedAt = time.Now().UTC()

	// 使用事务保证 学年 Upsert + 周次替换 的原子性
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()
	txRepo := s.repo.WithTx(tx)

	rollback := func(msg string, err error) (*dto.CalendarResponse, error) {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error(msg, zap.Int("year", in.Year), zap.Error(err))
		return nil, err
	}

	if err := txRepo.AcademicYear.Upsert(ctx, ay); err != nil {
		return rollback("保存学年失败", err)
	}
	saved, err := txRepo.AcademicYear.GetByYear(ctx, in.Year)
	if err != nil {
		return rollback("查询学年失败", err)
	}
	if err := txRepo.Week.DeleteByAcademicYear(ctx, saved.AcademicYearID); err != nil {
		return rollback("删除旧周次失败", err)
	}
	weeks := toWeekModels(saved.AcademicYearID, result.Weeks)
	if err := txRepo.Week.BatchCreate(ctx, weeks); err != nil {
		return rollback("写入周次失败", err)
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	s.invalidateWeeks(ctx, in.Year)

	s.logger.Info("学年日历已生成",
		zap.Int("year", in.Year),
		zap.Int("teaching_weeks", result.Summary.TeachingWeekCount),
		zap.Int("holiday_weeks", result.Summary.HolidayWeekCount),
		zap.String("by", callerID),
	)

	// 重新读取，拿到数据库生成的周次 ID
	stored, err := s.repo.Week.ListByAcademicYear(ctx, saved.AcademicYearID, false)
	if err != nil {
		s.logger.Error("查询周次失败", zap.Error(err))
		return nil, err
	}

	return &dto.CalendarResponse{
		AcademicYear: toAcademicYearResponse(saved),
		Weeks:        toWeekResponses(stored),
		Warnings:     warnings,
	}, nil
}

// ────────────────────── Preview ──────────────────────

func (s *calendarService) Preview(_ context.Context, req *dto.GenerateCalendarRequest) (*dto.PreviewResponse, error) {
	in, err := buildCalendarInput(req)
	if err != nil {
		return nil, err
	}
	result := calendar.Generate(in)

	weeks := make([]dto.WeekResponse, 0, len(result.Weeks))
	for _, w := range result.Weeks {
		weeks = append(weeks, toWeekResponse(toWeekModel("", w)))
	}
	return &dto.PreviewResponse{Weeks: weeks, Summary: result.Summary}, nil
}

// ────────────────────── ListYears ──────────────────────

func (s *calendarService) ListYears(ctx context.Context) ([]dto.AcademicYearResponse, error) {
	years, err := s.repo.AcademicYear.List(ctx)
	if err != nil {
		s.logger.Error("列出学年失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.AcademicYearResponse, 0, len(years))
	for i := range years {
		result = append(result, toAcademicYearResponse(&years[i]))
	}
	return result, nil
}

// ────────────────────── GetYear ──────────────────────

func (s *calendarService) GetYear(ctx context.Context, year int) (*dto.AcademicYearResponse, error) {
	ay, err := s.getYear(ctx, year)
	if err != nil {
		return nil, err
	}
	resp := toAcademicYearResponse(ay)
	return &resp, nil
}

func (s *calendarService) getYear(ctx context.Context, year int) (*model.AcademicYear, error) {
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

// ────────────────────── ListWeeks ──────────────────────

// ListWeeks 列出学年周次；配置了缓存时先读缓存，缓存故障不影响查询
func (s *calendarService) ListWeeks(ctx context.Context, year int, teachingOnly bool) ([]dto.WeekResponse, error) {
	key := weekCacheKey(year, teachingOnly)
	if s.cache != nil {
		var cached []dto.WeekResponse
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("读取周次缓存失败", zap.String("key", key), zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	ay, err := s.getYear(ctx, year)
	if err != nil {
		return nil, err
	}
	weeks, err := s.repo.Week.ListByAcademicYear(ctx, ay.AcademicYearID, teachingOnly)
	if err != nil {
		s.logger.Error("查询周次失败", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	result := toWeekResponses(weeks)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, result, s.cacheTTL); err != nil {
			s.logger.Warn("写入周次缓存失败", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}

func (s *calendarService) invalidateWeeks(ctx context.Context, year int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, weekCacheKey(year, true), weekCacheKey(year, false)); err != nil {
		s.logger.Warn("清除周次缓存失败", zap.Int("year", year), zap.Error(err))
	}
}

// ── 输入转换 ──

// buildCalendarInput 解析日期并展开假期；所有字段错误一次性返回
func buildCalendarInput(req *dto.GenerateCalendarRequest) (calendar.Input, error) {
	var fields []pkgerrors.FieldError
	collect := func(err error) {
		if ve, ok := pkgerrors.AsValidationError(err); ok {
			fields = append(fields, ve.Fields...)
		}
	}

	start, err := calendar.ParseDate("start_date", req.StartDate)
	collect(err)
	end, err := calendar.ParseDate("end_date", req.EndDate)
	collect(err)

	holidays := make([]calendar.Holiday, 0, len(req.Holidays))
	for i, h := range req.Holidays {
		prefix := fmt.Sprintf("holidays[%d]", i)
		cat := calendar.Category(h.Category)
		if !cat.Valid() {
			fields = append(fields, pkgerrors.FieldError{Field: prefix + ".category", Error: "未知的假期类别"})
			continue
		}
		hs, err := calendar.ParseDate(prefix+".start", h.Start)
		if err != nil {
			collect(err)
			continue
		}

		if cat.IsReligious() && h.End == "" {
			rh, _ := calendar.ReligiousHoliday(cat, hs)
			holidays = append(holidays, rh)
			continue
		}
		if h.End == "" {
			fields = append(fields, pkgerrors.FieldError{Field: prefix + ".end", Error: "固定假期必须提供结束日期"})
			continue
		}
		he, err := calendar.ParseDate(prefix+".end", h.End)
		if err != nil {
			collect(err)
			continue
		}
		if he.Before(hs) {
			fields = append(fields, pkgerrors.FieldError{Field: prefix + ".end", Error: "结束日期不能早于开始日期"})
			continue
		}
		holidays = append(holidays, calendar.Holiday{Category: cat, Interval: calendar.NewInterval(hs, he)})
	}

	if len(fields) > 0 {
		return calendar.Input{}, pkgerrors.NewValidationError(nil, fields...)
	}

	label := req.Label
	if label == "" {
		label = fmt.Sprintf("%d-%d Eğitim Öğretim Yılı", req.Year, req.Year+1)
	}
	return calendar.Input{Year: req.Year, Label: label, Start: start, End: end, Holidays: holidays}, nil
}

func calendarWarnings(in calendar.Input, result calendar.Result) []string {
	warnings := []string{}
	if result.Summary.TeachingWeekCount == 0 {
		warnings = append(warnings, "日期范围内没有完整的教学周")
	}
	hasSemesterBreak := false
	for _, h := range in.Holidays {
		if h.Category == calendar.CategorySemesterBreak {
			hasSemesterBreak = true
			break
		}
	}
	if !hasSemesterBreak && result.Summary.TeachingWeekCount > 0 {
		warnings = append(warnings, "未设置学期间假期，全部教学周计入第一学期")
	}
	return warnings
}

// ── 模型转换 ──

func toWeekModel(academicYearID string, w calendar.Week) model.Week {
	m := model.Week{
		AcademicYearID: academicYearID,
		WeekIndex:      w.Index,
		StartDate:      w.Start,
		EndDate:        w.End,
		Type:           string(w.Type),
		Term:           string(w.Term),
		Label:          w.Label,
	}
	if w.Sequence > 0 {
		seq := w.Sequence
		m.Sequence = &seq
	}
	return m
}

func toWeekModels(academicYearID string, weeks []calendar.Week) []model.Week {
	out := make([]model.Week, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, toWeekModel(academicYearID, w))
	}
	return out
}

func toWeekResponse(w model.Week) dto.WeekResponse {
	return dto.WeekResponse{
		ID:        w.WeekID,
		Sequence:  w.Sequence,
		Index:     w.WeekIndex,
		StartDate: w.StartDate.Format(calendar.DateLayout),
		EndDate:   w.EndDate.Format(calendar.DateLayout),
		Type:      w.Type,
		Term:      w.Term,
		Label:     w.Label,
	}
}

func toWeekResponses(weeks []model.Week) []dto.WeekResponse {
	out := make([]dto.WeekResponse, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, toWeekResponse(w))
	}
	return out
}

func toHolidayResponses(holidays []calendar.Holiday) []dto.HolidayResponse {
	out := make([]dto.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, dto.HolidayResponse{
			Category: string(h.Category),
			Start:    h.Start.Format(calendar.DateLayout),
			End:      h.End.Format(calendar.DateLayout),
		})
	}
	return out
}

func toAcademicYearResponse(ay *model.AcademicYear) dto.AcademicYearResponse {
	resp := dto.AcademicYearResponse{
		ID:        ay.AcademicYearID,
		Year:      ay.Year,
		Label:     ay.Label,
		StartDate: ay.StartDate.Format(calendar.DateLayout),
		EndDate:   ay.EndDate.Format(calendar.DateLayout),
		Holidays:  []dto.HolidayResponse{},
		UpdatedAt: ay.UpdatedAt.Format(timeLayout),
	}
	if len(ay.Holidays) > 0 {
		_ = json.Unmarshal(ay.Holidays, &resp.Holidays)
	}
	if len(ay.Summary) > 0 {
		_ = json.Unmarshal(ay.Summary, &resp.Summary)
	}
	return resp
}
