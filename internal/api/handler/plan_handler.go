package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bagerxx/OgretmenPlan/internal/dto"
	"github.com/bagerxx/OgretmenPlan/internal/service"
	apperrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
	"github.com/bagerxx/OgretmenPlan/pkg/response"
)

// PlanHandler 教学计划模块 HTTP 处理器
type PlanHandler struct {
	planSvc service.PlanService
}

// NewPlanHandler 创建 PlanHandler
func NewPlanHandler(planSvc service.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// Distribute 为 (班级, 课程, 学年) 生成课时分配
// POST /api/v1/plans/distribute
//
// 课时不足不算失败：返回 200，缺口在 data.shortfalls 与 data.warnings 中给出
func (h *PlanHandler) Distribute(c *gin.Context) {
	var req dto.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.planSvc.Distribute(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, result)
}

// ListPlans 计划列表
// GET /api/v1/plans?year=2025&course_id=&class_name=
func (h *PlanHandler) ListPlans(c *gin.Context) {
	var req dto.PlanListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	list, total, err := h.planSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetPlan 计划详情（含分配）
// GET /api/v1/plans/:id
func (h *PlanHandler) GetPlan(c *gin.Context) {
	result, err := h.planSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, result)
}

// GetStats 计划统计
// GET /api/v1/plans/:id/stats
func (h *PlanHandler) GetStats(c *gin.Context) {
	result, err := h.planSvc.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, result)
}

// CopyPlan 复制计划到另一学年
// POST /api/v1/plans/:id/copy
func (h *PlanHandler) CopyPlan(c *gin.Context) {
	var req dto.CopyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.planSvc.Copy(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateAllocation 更新单条分配的完成状态与备注
// PATCH /api/v1/plans/:id/allocations/:allocationId
func (h *PlanHandler) UpdateAllocation(c *gin.Context) {
	var req dto.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if req.Completed == nil && req.Notes == nil {
		response.BadRequest(c, 10001, "至少需要提供 completed 或 notes")
		return
	}

	result, err := h.planSvc.UpdateAllocation(c.Request.Context(), c.Param("id"), c.Param("allocationId"), &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, result)
}

// DeletePlan 删除计划
// DELETE /api/v1/plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *PlanHandler) handlePlanError(c *gin.Context, err error) {
	if validationFailed(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		response.NotFound(c, 14001, "教学计划不存在")
	case errors.Is(err, service.ErrAllocationNotFound):
		response.NotFound(c, 14002, "课时分配不存在")
	case errors.Is(err, service.ErrPlanExists):
		response.Conflict(c, 14003, "目标学年已存在相同班级与课程的计划")
	case errors.Is(err, apperrors.ErrOptimisticLock):
		response.Conflict(c, 14004, "计划已被其他请求修改，请重试")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	case errors.Is(err, service.ErrAcademicYearNotFound):
		response.NotFound(c, 12001, "学年不存在")
	default:
		response.InternalError(c)
	}
}
