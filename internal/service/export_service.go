package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/internal/model"
	"github.com/bagerxx/OgretmenPlan/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

const (
	planSheet      = "Yıllık Plan"
	shortfallSheet = "Eksik Saatler"
	icsProductID   = "-//OgretmenPlan//Akademik Takvim//TR"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 年度计划导出为 Excel (.xlsx)，每个教学周一行
//   - 学年日历导出为 iCalendar，每周一个全天事件
//   - 导出内容与建议文件名一起返回，由 Handler 层设置响应头
type ExportService interface {
	// ExportPlanExcel 导出年度教学计划为 Excel
	ExportPlanExcel(ctx context.Context, planID string) (*bytes.Buffer, string, error)
	// ExportCalendarICS 导出学年日历为 iCalendar
	ExportCalendarICS(ctx context.Context, year int) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportPlanExcel 导出年度教学计划
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Yıllık Plan"：标题行 + 表头 + 每个教学周一行 + 合计行
//   - 列：Hafta | Tarih | Dönem | İçerik | Saat | Durum
//   - 存在缺口时追加 Sheet "Eksik Saatler"

func (s *exportService) ExportPlanExcel(ctx context.Context, planID string) (*bytes.Buffer, string, error) {
	plan, err := s.repo.Plan.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrPlanNotFound
		}
		s.logger.Error("查询教学计划失败", zap.String("plan_id", planID), zap.Error(err))
		return nil, "", err
	}

	yearLabel := ""
	if ay, err := s.repo.AcademicYear.GetByID(ctx, plan.AcademicYearID); err == nil {
		yearLabel = ay.Label
	}
	weeks, err := s.repo.Week.ListByAcademicYear(ctx, plan.AcademicYearID, true)
	if err != nil {
		s.logger.Error("查询教学周失败", zap.Error(err))
		return nil, "", err
	}
	allocations, err := s.repo.Allocation.ListByPlan(ctx, plan.PlanID)
	if err != nil {
		s.logger.Error("查询分配失败", zap.Error(err))
		return nil, "", err
	}
	items, err := s.repo.CurriculumItem.ListByCourse(ctx, plan.CourseID)
	if err != nil {
		s.logger.Error("查询课程内容失败", zap.Error(err))
		return nil, "", err
	}
	names := itemNameIndex(items)

	byWeek := make(map[string][]model.Allocation)
	for _, a := range allocations {
		byWeek[a.WeekID] = append(byWeek[a.WeekID], a)
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(planSheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(planSheet, "A", "A", 8)
	f.SetColWidth(planSheet, "B", "B", 22)
	f.SetColWidth(planSheet, "C", "C", 12)
	f.SetColWidth(planSheet, "D", "D", 60)
	f.SetColWidth(planSheet, "E", "E", 8)
	f.SetColWidth(planSheet, "F", "F", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	wrapStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	// 标题行
	title := plan.Name
	if yearLabel != "" {
		title = fmt.Sprintf("%s - %s", yearLabel, plan.Name)
	}
	f.SetCellValue(planSheet, "A1", title)
	f.MergeCell(planSheet, "A1", "F1")
	f.SetCellStyle(planSheet, "A1", "A1", headerStyle)

	// 表头
	for i, h := range []string{"Hafta", "Tarih", "Dönem", "İçerik", "Saat", "Durum"} {
		f.SetCellValue(planSheet, cell(colName(i), 2), h)
	}
	f.SetCellStyle(planSheet, "A2", "F2", headerStyle)

	// 数据行
	row := 3
	total := 0
	for _, w := range weeks {
		var lines []string
		hours, completed := 0, 0
		for _, a := range byWeek[w.WeekID] {
			lines = append(lines, fmt.Sprintf("%s (%d saat)", names[a.ItemID], a.Hours))
			hours += a.Hours
			if a.Completed {
				completed++
			}
		}
		status := ""
		if n := len(byWeek[w.WeekID]); n > 0 && completed == n {
			status = "Tamamlandı"
		}

		f.SetCellValue(planSheet, cell("A", row), w.SequenceOrZero())
		f.SetCellValue(planSheet, cell("B", row), w.Label)
		f.SetCellValue(planSheet, cell("C", row), termLabel(w.Term))
		f.SetCellValue(planSheet, cell("D", row), strings.Join(lines, "\n"))
		f.SetCellValue(planSheet, cell("E", row), hours)
		f.SetCellValue(planSheet, cell("F", row), status)
		f.SetCellStyle(planSheet, cell("D", row), cell("D", row), wrapStyle)
		total += hours
		row++
	}

	// 合计行
	f.SetCellValue(planSheet, cell("D", row), "Toplam")
	f.SetCellValue(planSheet, cell("E", row), total)

	// 缺口
	if shortfalls := decodeShortfalls(plan.Shortfalls); len(shortfalls) > 0 {
		f.NewSheet(shortfallSheet)
		f.SetColWidth(shortfallSheet, "A", "A", 60)
		f.SetColWidth(shortfallSheet, "B", "B", 14)
		f.SetCellValue(shortfallSheet, "A1", "İçerik")
		f.SetCellValue(shortfallSheet, "B1", "Eksik Saat")
		f.SetCellStyle(shortfallSheet, "A1", "B1", headerStyle)
		for i, sf := range shortfalls {
			name := sf.ItemName
			if name == "" {
				name = names[sf.ItemID]
			}
			f.SetCellValue(shortfallSheet, cell("A", i+2), name)
			f.SetCellValue(shortfallSheet, cell("B", i+2), sf.MissingHours)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("Yillik_Plan_%s.xlsx", plan.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendarICS 导出学年日历
// ═══════════════════════════════════════════════════════════
//
// 每周一个全天事件（周一至周五，DTEND 为周六）；CATEGORIES 为 TEACHING 或 HOLIDAY。
// UID 由周次 ID 派生，重复导出时保持不变，日历客户端可据此覆盖旧事件。

func (s *exportService) ExportCalendarICS(ctx context.Context, year int) ([]byte, string, error) {
	ay, err := s.repo.AcademicYear.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrAcademicYearNotFound
		}
		s.logger.Error("查询学年失败", zap.Int("year", year), zap.Error(err))
		return nil, "", err
	}
	weeks, err := s.repo.Week.ListByAcademicYear(ctx, ay.AcademicYearID, false)
	if err != nil {
		s.logger.Error("查询周次失败", zap.Int("year", year), zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(ay.Label)

	for _, w := range weeks {
		event := cal.AddEvent(weekUID(w.WeekID))
		event.SetDtStampTime(ay.UpdatedAt)
		event.SetAllDayStartAt(w.StartDate)
		event.SetAllDayEndAt(w.EndDate.AddDate(0, 0, 1))
		event.SetProperty(ics.ComponentPropertyCategories, w.Type)
		event.SetDescription(termLabel(w.Term))
		if w.IsTeaching() {
			event.SetSummary(fmt.Sprintf("%d. Hafta (%s)", w.SequenceOrZero(), w.Label))
		} else {
			event.SetSummary(fmt.Sprintf("Tatil (%s)", w.Label))
		}
	}

	return []byte(cal.Serialize()), fmt.Sprintf("takvim_%d.ics", year), nil
}

// weekUID 由周次 ID 派生稳定的事件 UID
func weekUID(weekID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("ogretmen-plan:week:"+weekID)).String() + "@ogretmen-plan"
}

// ── 辅助函数 ──

func termLabel(term string) string {
	if term == "SECOND" {
		return "2. Dönem"
	}
	return "1. Dönem"
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
