package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bagerxx/OgretmenPlan/internal/dto"
	"github.com/bagerxx/OgretmenPlan/internal/service"
	apperrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
	"github.com/bagerxx/OgretmenPlan/pkg/response"
	"github.com/bagerxx/OgretmenPlan/pkg/validate"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = validate.Setup()
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock CalendarService ──

type mockCalendarService struct {
	generateResult *dto.CalendarResponse
	generateErr    error
	generateCaller string
	previewResult  *dto.PreviewResponse
	previewErr     error
	years          []dto.AcademicYearResponse
	yearsErr       error
	yearResult     *dto.AcademicYearResponse
	yearErr        error
	weeks          []dto.WeekResponse
	weeksErr       error
	teachingOnly   bool
}

func (m *mockCalendarService) Generate(_ context.Context, _ *dto.GenerateCalendarRequest, callerID string) (*dto.CalendarResponse, error) {
	m.generateCaller = callerID
	return m.generateResult, m.generateErr
}
func (m *mockCalendarService) Preview(_ context.Context, _ *dto.GenerateCalendarRequest) (*dto.PreviewResponse, error) {
	return m.previewResult, m.previewErr
}
func (m *mockCalendarService) ListYears(_ context.Context) ([]dto.AcademicYearResponse, error) {
	return m.years, m.yearsErr
}
func (m *mockCalendarService) GetYear(_ context.Context, _ int) (*dto.AcademicYearResponse, error) {
	return m.yearResult, m.yearErr
}
func (m *mockCalendarService) ListWeeks(_ context.Context, _ int, teachingOnly bool) ([]dto.WeekResponse, error) {
	m.teachingOnly = teachingOnly
	return m.weeks, m.weeksErr
}

// ── Mock CourseService ──

type mockCourseService struct {
	createResult *dto.CourseResponse
	createErr    error
	getResult    *dto.CourseResponse
	getErr       error
	listResult   []dto.CourseResponse
	listTotal    int64
	deleteErr    error
	replaceErr   error
}

func (m *mockCourseService) Create(_ context.Context, _ *dto.CreateCourseRequest, _ string) (*dto.CourseResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockCourseService) Get(_ context.Context, _ string) (*dto.CourseResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockCourseService) List(_ context.Context, _ *dto.CourseListRequest) ([]dto.CourseResponse, int64, error) {
	return m.listResult, m.listTotal, nil
}
func (m *mockCourseService) Delete(_ context.Context, _ string, _ string) error {
	return m.deleteErr
}
func (m *mockCourseService) ReplaceItems(_ context.Context, _ string, _ *dto.ReplaceItemsRequest, _ string) (*dto.CourseResponse, error) {
	return m.getResult, m.replaceErr
}

// ── Mock PlanService ──

type mockPlanService struct {
	distributeResult *dto.PlanDetailResponse
	distributeErr    error
	getResult        *dto.PlanDetailResponse
	getErr           error
	listResult       []dto.PlanResponse
	listTotal        int64
	statsResult      *dto.PlanStatsResponse
	copyResult       *dto.CopyPlanResponse
	copyErr          error
	updateResult     *dto.AllocationResponse
	updateErr        error
	updatePlanID     string
	deleteErr        error
}

func (m *mockPlanService) Distribute(_ context.Context, _ *dto.DistributeRequest, _ string) (*dto.PlanDetailResponse, error) {
	return m.distributeResult, m.distributeErr
}
func (m *mockPlanService) Get(_ context.Context, _ string) (*dto.PlanDetailResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockPlanService) List(_ context.Context, _ *dto.PlanListRequest) ([]dto.PlanResponse, int64, error) {
	return m.listResult, m.listTotal, nil
}
func (m *mockPlanService) Stats(_ context.Context, _ string) (*dto.PlanStatsResponse, error) {
	return m.statsResult, m.getErr
}
func (m *mockPlanService) Copy(_ context.Context, _ string, _ *dto.CopyPlanRequest, _ string) (*dto.CopyPlanResponse, error) {
	return m.copyResult, m.copyErr
}
func (m *mockPlanService) UpdateAllocation(_ context.Context, planID, _ string, _ *dto.UpdateAllocationRequest) (*dto.AllocationResponse, error) {
	m.updatePlanID = planID
	return m.updateResult, m.updateErr
}
func (m *mockPlanService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	data     []byte
	filename string
	err      error
}

func (m *mockExportService) ExportPlanExcel(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportCalendarICS(_ context.Context, _ int) ([]byte, string, error) {
	return m.data, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setAuth(c *gin.Context) {
	c.Set("user_id", "test-user-id")
	c.Set("role", "admin")
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// serve 注册单个路由并执行请求；auth 为 true 时注入认证信息
func serve(method, pattern, target string, body io.Reader, auth bool, fn gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	r := gin.New()
	r.Handle(method, pattern, func(c *gin.Context) {
		if auth {
			setAuth(c)
		}
		fn(c)
	})
	r.ServeHTTP(w, req)
	return w
}

func validationFields(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp struct {
		Code int                     `json:"code"`
		Data response.ValidationData `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	out := map[string]string{}
	for _, f := range resp.Data.Fields {
		out[f.Field] = f.Error
	}
	return out
}

// ═══════════════════════════════════════════════════════════
// CalendarHandler Tests
// ═══════════════════════════════════════════════════════════

func validCalendarRequest() dto.GenerateCalendarRequest {
	return dto.GenerateCalendarRequest{
		Year:      2025,
		StartDate: "2025-09-08",
		EndDate:   "2026-06-26",
		Holidays: []dto.HolidayRequest{
			{Category: "semester_break", Start: "2026-01-19", End: "2026-01-30"},
		},
	}
}

func TestCalendarHandler_Generate_Success(t *testing.T) {
	mock := &mockCalendarService{generateResult: &dto.CalendarResponse{Warnings: []string{}}}
	h := NewCalendarHandler(mock)

	w := serve("POST", "/calendars/generate", "/calendars/generate", jsonBody(validCalendarRequest()), true, h.Generate)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mock.generateCaller != "test-user-id" {
		t.Errorf("expected caller test-user-id, got %q", mock.generateCaller)
	}
}

func TestCalendarHandler_Generate_Unauthenticated(t *testing.T) {
	h := NewCalendarHandler(&mockCalendarService{})

	w := serve("POST", "/calendars/generate", "/calendars/generate", jsonBody(validCalendarRequest()), false, h.Generate)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCalendarHandler_Generate_BindErrorsListFields(t *testing.T) {
	h := NewCalendarHandler(&mockCalendarService{})

	req := validCalendarRequest()
	req.StartDate = "08.09.2025"
	req.Holidays[0].Category = "carnival"

	w := serve("POST", "/calendars/generate", "/calendars/generate", jsonBody(req), true, h.Generate)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	fields := validationFields(t, w)
	if _, ok := fields["start_date"]; !ok {
		t.Errorf("expected start_date field error, got %v", fields)
	}
	if _, ok := fields["holidays[0].category"]; !ok {
		t.Errorf("expected holidays[0].category field error, got %v", fields)
	}
}

func TestCalendarHandler_Generate_BadJSON(t *testing.T) {
	h := NewCalendarHandler(&mockCalendarService{})

	w := serve("POST", "/calendars/generate", "/calendars/generate", strings.NewReader("{invalid"), true, h.Generate)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10001 {
		t.Errorf("expected code 10001, got %d", resp.Code)
	}
}

func TestCalendarHandler_Generate_ServiceValidationError(t *testing.T) {
	mock := &mockCalendarService{
		generateErr: apperrors.FieldInvalid("holidays[0].end", "结束日期不能早于开始日期"),
	}
	h := NewCalendarHandler(mock)

	w := serve("POST", "/calendars/generate", "/calendars/generate", jsonBody(validCalendarRequest()), true, h.Generate)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if _, ok := validationFields(t, w)["holidays[0].end"]; !ok {
		t.Error("expected holidays[0].end in data.fields")
	}
}

func TestCalendarHandler_Preview(t *testing.T) {
	mock := &mockCalendarService{previewResult: &dto.PreviewResponse{Weeks: []dto.WeekResponse{}}}
	h := NewCalendarHandler(mock)

	w := serve("POST", "/calendars/preview", "/calendars/preview", jsonBody(validCalendarRequest()), false, h.Preview)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestCalendarHandler_GetYear_NotFound(t *testing.T) {
	h := NewCalendarHandler(&mockCalendarService{yearErr: service.ErrAcademicYearNotFound})

	w := serve("GET", "/calendars/:year", "/calendars/2030", nil, true, h.GetYear)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12001 {
		t.Errorf("expected code 12001, got %d", resp.Code)
	}
}

func TestCalendarHandler_GetYear_InvalidParam(t *testing.T) {
	h := NewCalendarHandler(&mockCalendarService{})

	w := serve("GET", "/calendars/:year", "/calendars/abc", nil, true, h.GetYear)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if _, ok := validationFields(t, w)["year"]; !ok {
		t.Error("expected year in data.fields")
	}
}

func TestCalendarHandler_ListWeeks_TeachingOnly(t *testing.T) {
	mock := &mockCalendarService{weeks: []dto.WeekResponse{{Index: 1}}}
	h := NewCalendarHandler(mock)

	w := serve("GET", "/calendars/:year/weeks", "/calendars/2025/weeks?teaching_only=true", nil, true, h.ListWeeks)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !mock.teachingOnly {
		t.Error("expected teaching_only to be passed through")
	}
}

func TestCalendarHandler_ListYears_InternalError(t *testing.T) {
	h := NewCalendarHandler(&mockCalendarService{yearsErr: errors.New("db down")})

	w := serve("GET", "/calendars", "/calendars", nil, true, h.ListYears)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// CourseHandler Tests
// ═══════════════════════════════════════════════════════════

func validCourseRequest() dto.CreateCourseRequest {
	return dto.CreateCourseRequest{
		Code:               "MAT9",
		Name:               "Matematik",
		Grade:              9,
		ProgramType:        "outcome",
		DefaultWeeklyHours: 4,
		Items: []dto.CurriculumItemRequest{
			{Name: "Kümeler", DurationHours: 10},
		},
	}
}

func TestCourseHandler_Create_Success(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{createResult: &dto.CourseResponse{ID: "c-1"}})

	w := serve("POST", "/courses", "/courses", jsonBody(validCourseRequest()), true, h.CreateCourse)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCourseHandler_Create_InvalidProgramType(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{})

	req := validCourseRequest()
	req.ProgramType = "mixed"
	w := serve("POST", "/courses", "/courses", jsonBody(req), true, h.CreateCourse)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if _, ok := validationFields(t, w)["program_type"]; !ok {
		t.Error("expected program_type in data.fields")
	}
}

func TestCourseHandler_Create_CodeExists(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{createErr: service.ErrCourseCodeExists})

	w := serve("POST", "/courses", "/courses", jsonBody(validCourseRequest()), true, h.CreateCourse)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestCourseHandler_List_Paged(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{
		listResult: []dto.CourseResponse{{ID: "c-1"}, {ID: "c-2"}},
		listTotal:  45,
	})

	w := serve("GET", "/courses", "/courses?page=2&page_size=20", nil, true, h.ListCourses)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Data response.PageData `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Pagination.Page != 2 || resp.Data.Pagination.TotalPages != 3 {
		t.Errorf("unexpected pagination: %+v", resp.Data.Pagination)
	}
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{getErr: service.ErrCourseNotFound})

	w := serve("GET", "/courses/:id", "/courses/missing", nil, true, h.GetCourse)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestCourseHandler_ReplaceItems_ServiceValidation(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{
		replaceErr: apperrors.FieldInvalid("items[0].weight", "技能必须填写大于 0 的权重"),
	})

	body := jsonBody(dto.ReplaceItemsRequest{Items: []dto.CurriculumItemRequest{{Name: "Okuma"}}})
	w := serve("PUT", "/courses/:id/items", "/courses/c-1/items", body, true, h.ReplaceItems)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if _, ok := validationFields(t, w)["items[0].weight"]; !ok {
		t.Error("expected items[0].weight in data.fields")
	}
}

// ═══════════════════════════════════════════════════════════
// PlanHandler Tests
// ═══════════════════════════════════════════════════════════

func validDistributeRequest() dto.DistributeRequest {
	return dto.DistributeRequest{
		ClassName: "9-A",
		CourseID:  "0b6f7c3e-3b5e-4d69-9c4a-2f1a7c7d9e10",
		Year:      2025,
	}
}

func TestPlanHandler_Distribute_ShortfallIsOK(t *testing.T) {
	mock := &mockPlanService{distributeResult: &dto.PlanDetailResponse{
		Shortfalls: []dto.ShortfallResponse{{ItemID: "i-1", ItemName: "Kümeler", MissingHours: 4}},
		Warnings:   []string{"内容「Kümeler」有 4 课时未能安排"},
	}}
	h := NewPlanHandler(mock)

	w := serve("POST", "/plans/distribute", "/plans/distribute", jsonBody(validDistributeRequest()), true, h.Distribute)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "missing_hours") {
		t.Error("expected shortfalls in response body")
	}
}

func TestPlanHandler_Distribute_InvalidCourseID(t *testing.T) {
	h := NewPlanHandler(&mockPlanService{})

	req := validDistributeRequest()
	req.CourseID = "not-a-uuid"
	req.Mode = "random"
	w := serve("POST", "/plans/distribute", "/plans/distribute", jsonBody(req), true, h.Distribute)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	fields := validationFields(t, w)
	if _, ok := fields["course_id"]; !ok {
		t.Errorf("expected course_id field error, got %v", fields)
	}
	if _, ok := fields["mode"]; !ok {
		t.Errorf("expected mode field error, got %v", fields)
	}
}

func TestPlanHandler_Distribute_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode int
	}{
		{"course not found", service.ErrCourseNotFound, http.StatusNotFound, 13001},
		{"year not found", service.ErrAcademicYearNotFound, http.StatusNotFound, 12001},
		{"optimistic lock", apperrors.ErrOptimisticLock, http.StatusConflict, 14004},
		{"weekly hours", apperrors.FieldInvalid("weekly_hours", "每周课时必须在 1-40 之间"), http.StatusBadRequest, 10001},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, 50000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPlanHandler(&mockPlanService{distributeErr: tt.err})

			w := serve("POST", "/plans/distribute", "/plans/distribute", jsonBody(validDistributeRequest()), true, h.Distribute)

			if w.Code != tt.wantHTTP {
				t.Errorf("expected %d, got %d", tt.wantHTTP, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestPlanHandler_Copy_Exists(t *testing.T) {
	h := NewPlanHandler(&mockPlanService{copyErr: service.ErrPlanExists})

	w := serve("POST", "/plans/:id/copy", "/plans/p-1/copy", jsonBody(dto.CopyPlanRequest{TargetYear: 2026}), true, h.CopyPlan)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 14003 {
		t.Errorf("expected code 14003, got %d", resp.Code)
	}
}

func TestPlanHandler_Copy_Created(t *testing.T) {
	h := NewPlanHandler(&mockPlanService{copyResult: &dto.CopyPlanResponse{DroppedAllocations: 1}})

	w := serve("POST", "/plans/:id/copy", "/plans/p-1/copy", jsonBody(dto.CopyPlanRequest{TargetYear: 2026}), true, h.CopyPlan)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestPlanHandler_UpdateAllocation(t *testing.T) {
	mock := &mockPlanService{updateResult: &dto.AllocationResponse{ID: "a-1", Completed: true}}
	h := NewPlanHandler(mock)

	done := true
	body := jsonBody(dto.UpdateAllocationRequest{Completed: &done})
	w := serve("PATCH", "/plans/:id/allocations/:allocationId", "/plans/p-1/allocations/a-1", body, true, h.UpdateAllocation)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.updatePlanID != "p-1" {
		t.Errorf("expected plan id p-1, got %q", mock.updatePlanID)
	}
}

func TestPlanHandler_UpdateAllocation_EmptyBody(t *testing.T) {
	h := NewPlanHandler(&mockPlanService{})

	w := serve("PATCH", "/plans/:id/allocations/:allocationId", "/plans/p-1/allocations/a-1", jsonBody(map[string]string{}), true, h.UpdateAllocation)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPlanHandler_GetStats_NotFound(t *testing.T) {
	h := NewPlanHandler(&mockPlanService{getErr: service.ErrPlanNotFound})

	w := serve("GET", "/plans/:id/stats", "/plans/missing/stats", nil, true, h.GetStats)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPlanHandler_Delete(t *testing.T) {
	h := NewPlanHandler(&mockPlanService{})

	w := serve("DELETE", "/plans/:id", "/plans/p-1", nil, true, h.DeletePlan)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportPlan_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("fake-excel-content"),
		filename: "Yillik_Plan_9-A Matematik.xlsx",
	}
	h := NewExportHandler(mock)

	w := serve("GET", "/plans/:id/export", "/plans/p-1/export", nil, true, h.ExportPlan)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
		t.Errorf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Yillik_Plan_9-A%20Matematik.xlsx") {
		t.Errorf("unexpected content disposition: %s", cd)
	}
	if w.Body.String() != "fake-excel-content" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestExportHandler_ExportPlan_NotFound(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrPlanNotFound})

	w := serve("GET", "/plans/:id/export", "/plans/missing/export", nil, true, h.ExportPlan)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestExportHandler_ExportCalendar(t *testing.T) {
	mock := &mockExportService{data: []byte("BEGIN:VCALENDAR"), filename: "takvim_2025.ics"}
	h := NewExportHandler(mock)

	w := serve("GET", "/calendars/:year/ics", "/calendars/2025/ics", nil, true, h.ExportCalendar)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar") {
		t.Errorf("unexpected content type: %s", w.Header().Get("Content-Type"))
	}
}

func TestExportHandler_ExportCalendar_YearNotFound(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrAcademicYearNotFound})

	w := serve("GET", "/calendars/:year/ics", "/calendars/2031/ics", nil, true, h.ExportCalendar)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
