package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bagerxx/OgretmenPlan/internal/model"
	"github.com/bagerxx/OgretmenPlan/internal/repository"
	pkgerrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

var errDuplicateKey = errors.New("duplicate key value violates unique constraint")

// ── Mock AcademicYearRepository ──

type mockAcademicYearRepo struct {
	years map[int]*model.AcademicYear
}

func newMockAcademicYearRepo() *mockAcademicYearRepo {
	return &mockAcademicYearRepo{years: make(map[int]*model.AcademicYear)}
}

func (m *mockAcademicYearRepo) Upsert(_ context.Context, year *model.AcademicYear) error {
	if existing, ok := m.years[year.Year]; ok {
		year.AcademicYearID = existing.AcademicYearID
		year.CreatedAt = existing.CreatedAt
		year.CreatedBy = existing.CreatedBy
	} else {
		year.AcademicYearID = fmt.Sprintf("ay-%d", year.Year)
		year.CreatedAt = time.Now()
	}
	cp := *year
	m.years[year.Year] = &cp
	return nil
}

func (m *mockAcademicYearRepo) GetByID(_ context.Context, id string) (*model.AcademicYear, error) {
	for _, y := range m.years {
		if y.AcademicYearID == id {
			cp := *y
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAcademicYearRepo) GetByYear(_ context.Context, year int) (*model.AcademicYear, error) {
	if y, ok := m.years[year]; ok {
		cp := *y
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAcademicYearRepo) List(_ context.Context) ([]model.AcademicYear, error) {
	var result []model.AcademicYear
	for _, y := range m.years {
		result = append(result, *y)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year > result[j].Year })
	return result, nil
}

// ── Mock WeekRepository ──

type mockWeekRepo struct {
	weeks map[string][]model.Week // academic_year_id → weeks
	calls int                     // ListByAcademicYear 调用次数
}

func newMockWeekRepo() *mockWeekRepo {
	return &mockWeekRepo{weeks: make(map[string][]model.Week)}
}

func (m *mockWeekRepo) DeleteByAcademicYear(_ context.Context, academicYearID string) error {
	delete(m.weeks, academicYearID)
	return nil
}

func (m *mockWeekRepo) BatchCreate(_ context.Context, weeks []model.Week) error {
	for _, w := range weeks {
		if w.WeekID == "" {
			w.WeekID = fmt.Sprintf("%s-w%02d", w.AcademicYearID, w.WeekIndex)
		}
		m.weeks[w.AcademicYearID] = append(m.weeks[w.AcademicYearID], w)
	}
	return nil
}

func (m *mockWeekRepo) ListByAcademicYear(_ context.Context, academicYearID string, teachingOnly bool) ([]model.Week, error) {
	m.calls++
	result := []model.Week{}
	for _, w := range m.weeks[academicYearID] {
		if teachingOnly && !w.IsTeaching() {
			continue
		}
		result = append(result, w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].WeekIndex < result[j].WeekIndex })
	return result, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
	items   *mockCurriculumItemRepo
}

func newMockCourseRepo(items *mockCurriculumItemRepo) *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course), items: items}
}

func (m *mockCourseRepo) Create(ctx context.Context, course *model.Course) error {
	if course.CourseID == "" {
		course.CourseID = "course-" + course.Code
	}
	course.CreatedAt = time.Now()
	for i := range course.Items {
		course.Items[i].CourseID = course.CourseID
	}
	_ = m.items.BatchCreate(ctx, course.Items)
	stored, _ := m.items.ListByCourse(ctx, course.CourseID)
	course.Items = stored

	cp := *course
	cp.Items = nil
	m.courses[course.CourseID] = &cp
	return nil
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	cp.Items, _ = m.items.ListByCourse(ctx, id)
	return &cp, nil
}

func (m *mockCourseRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, c := range m.courses {
		if c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCourseRepo) List(_ context.Context, filter repository.CourseFilter) ([]model.Course, int64, error) {
	var result []model.Course
	for _, c := range m.courses {
		if filter.Grade > 0 && c.Grade != filter.Grade {
			continue
		}
		if filter.ProgramType != "" && c.ProgramType != filter.ProgramType {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, int64(len(result)), nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.courses, id)
	return nil
}

// ── Mock CurriculumItemRepository ──

type mockCurriculumItemRepo struct {
	items map[string][]model.CurriculumItem // course_id → items
	seq   int
}

func newMockCurriculumItemRepo() *mockCurriculumItemRepo {
	return &mockCurriculumItemRepo{items: make(map[string][]model.CurriculumItem)}
}

func (m *mockCurriculumItemRepo) ListByCourse(_ context.Context, courseID string) ([]model.CurriculumItem, error) {
	result := append([]model.CurriculumItem{}, m.items[courseID]...)
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

func (m *mockCurriculumItemRepo) DeleteByCourse(_ context.Context, courseID string) error {
	delete(m.items, courseID)
	return nil
}

func (m *mockCurriculumItemRepo) BatchCreate(_ context.Context, items []model.CurriculumItem) error {
	for _, it := range items {
		if it.ItemID == "" {
			m.seq++
			it.ItemID = fmt.Sprintf("item-%d", m.seq)
		}
		m.items[it.CourseID] = append(m.items[it.CourseID], it)
	}
	return nil
}

// ── Mock PlanRepository ──

type mockPlanRepo struct {
	plans map[string]*model.Plan
	seq   int
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[string]*model.Plan)}
}

func (m *mockPlanRepo) Create(_ context.Context, plan *model.Plan) error {
	for _, p := range m.plans {
		if p.ClassName == plan.ClassName && p.CourseID == plan.CourseID && p.AcademicYearID == plan.AcademicYearID {
			return errDuplicateKey
		}
	}
	m.seq++
	plan.PlanID = fmt.Sprintf("plan-%d", m.seq)
	plan.Version = 1
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	cp := *plan
	m.plans[plan.PlanID] = &cp
	return nil
}

func (m *mockPlanRepo) GetByID(_ context.Context, id string) (*model.Plan, error) {
	if p, ok := m.plans[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPlanRepo) GetByKey(_ context.Context, className, courseID, academicYearID string) (*model.Plan, error) {
	for _, p := range m.plans {
		if p.ClassName == className && p.CourseID == courseID && p.AcademicYearID == academicYearID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPlanRepo) List(_ context.Context, filter repository.PlanFilter) ([]model.Plan, int64, error) {
	var result []model.Plan
	for _, p := range m.plans {
		if filter.AcademicYearID != "" && p.AcademicYearID != filter.AcademicYearID {
			continue
		}
		if filter.CourseID != "" && p.CourseID != filter.CourseID {
			continue
		}
		if filter.ClassName != "" && p.ClassName != filter.ClassName {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PlanID < result[j].PlanID })
	return result, int64(len(result)), nil
}

func (m *mockPlanRepo) Update(_ context.Context, plan *model.Plan) error {
	stored, ok := m.plans[plan.PlanID]
	if !ok || stored.Version != plan.Version {
		return pkgerrors.ErrOptimisticLock
	}
	plan.Version++
	cp := *plan
	m.plans[plan.PlanID] = &cp
	return nil
}

func (m *mockPlanRepo) Delete(_ context.Context, id string) error {
	delete(m.plans, id)
	return nil
}

// ── Mock AllocationRepository ──

type mockAllocationRepo struct {
	allocations map[string][]model.Allocation // plan_id → allocations
	seq         int
}

func newMockAllocationRepo() *mockAllocationRepo {
	return &mockAllocationRepo{allocations: make(map[string][]model.Allocation)}
}

func (m *mockAllocationRepo) DeleteByPlan(_ context.Context, planID string) error {
	delete(m.allocations, planID)
	return nil
}

func (m *mockAllocationRepo) BatchCreate(_ context.Context, allocations []model.Allocation) error {
	for _, a := range allocations {
		m.seq++
		a.AllocationID = fmt.Sprintf("alloc-%d", m.seq)
		m.allocations[a.PlanID] = append(m.allocations[a.PlanID], a)
	}
	return nil
}

func (m *mockAllocationRepo) ListByPlan(_ context.Context, planID string) ([]model.Allocation, error) {
	result := append([]model.Allocation{}, m.allocations[planID]...)
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

func (m *mockAllocationRepo) GetByID(_ context.Context, id string) (*model.Allocation, error) {
	for _, list := range m.allocations {
		for _, a := range list {
			if a.AllocationID == id {
				cp := a
				return &cp, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAllocationRepo) UpdateProgress(_ context.Context, allocation *model.Allocation) error {
	list := m.allocations[allocation.PlanID]
	for i := range list {
		if list[i].AllocationID == allocation.AllocationID {
			list[i].Completed = allocation.Completed
			list[i].Notes = allocation.Notes
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock Cache ──

type mockCache struct {
	data   map[string][]byte
	hits   int
	getErr error
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, dst interface{}) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(raw, dst)
}

func (m *mockCache) SetJSON(_ context.Context, key string, v interface{}, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *mockCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// ── 组装 ──

type mockRepos struct {
	years       *mockAcademicYearRepo
	weeks       *mockWeekRepo
	courses     *mockCourseRepo
	items       *mockCurriculumItemRepo
	plans       *mockPlanRepo
	allocations *mockAllocationRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	items := newMockCurriculumItemRepo()
	m := &mockRepos{
		years:       newMockAcademicYearRepo(),
		weeks:       newMockWeekRepo(),
		courses:     newMockCourseRepo(items),
		items:       items,
		plans:       newMockPlanRepo(),
		allocations: newMockAllocationRepo(),
	}
	repo := &repository.Repository{
		AcademicYear:   m.years,
		Week:           m.weeks,
		Course:         m.courses,
		CurriculumItem: m.items,
		Plan:           m.plans,
		Allocation:     m.allocations,
	}
	return repo, m
}
