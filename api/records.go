package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Athlon05/Balanacea-app/middleware"
	"github.com/Athlon05/Balanacea-app/models"
	"github.com/Athlon05/Balanacea-app/service"
	"github.com/Athlon05/Balanacea-app/store"
)

// RecordHandler 收支记录处理器
// 单条记录的增删改查走条目编辑器，删除直接走存储表
type RecordHandler struct {
	editor *service.Editor
	store  *store.Client
}

// NewRecordHandler 创建收支记录处理器
func NewRecordHandler(editor *service.Editor, st *store.Client) *RecordHandler {
	return &RecordHandler{editor: editor, store: st}
}

// UpdateRecordRequest 更新请求
// kind 可与路径中的原种类不同，此时执行跨表搬移
type UpdateRecordRequest struct {
	Kind          string `json:"kind" example:"expense"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	Category      string `json:"category"`
	PaymentMethod string `json:"payment_method"`
}

func (r UpdateRecordRequest) form() *service.Form {
	return &service.Form{
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
	}
}

// parseTarget 解析路径中的 (kind, id)
func parseTarget(c *gin.Context) (models.Kind, uint, bool) {
	kind, err := models.ParseKind(c.Param("kind"))
	if err != nil {
		BadRequest(c, err.Error())
		return "", 0, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的记录 ID")
		return "", 0, false
	}
	return kind, uint(id), true
}

// submitError 提交失败的统一错误出口
func submitError(c *gin.Context, err error) {
	var fieldErrs service.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		ValidationFailed(c, fieldErrs)
	case errors.Is(err, store.ErrNoSession):
		Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrRecordNotFound):
		NotFound(c, err.Error())
	default:
		if se, ok := store.AsStoreError(err); ok {
			InternalError(c, se.Message)
			return
		}
		InternalError(c, err.Error())
	}
}

// Get 加载单条记录到表单
// @Summary 加载记录
// @Description 按 (kind, id) 加载记录。记录不存在时返回空白表单而不是错误
// @Tags 记录
// @Produce json
// @Param kind path string true "记录种类: income/expense"
// @Param id path int true "记录 ID"
// @Success 200 {object} Response{data=service.Form} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未登录"
// @Router /api/v1/records/{kind}/{id} [get]
func (h *RecordHandler) Get(c *gin.Context) {
	kind, id, ok := parseTarget(c)
	if !ok {
		return
	}

	form, err := h.editor.Load(c.Request.Context(), kind, id)
	if err != nil {
		submitError(c, err)
		return
	}
	Success(c, form)
}

// Create 新建记录
// @Summary 新建记录
// @Description 校验表单后插入对应种类的表，归属自动设为当前会话用户
// @Tags 记录
// @Accept json
// @Produce json
// @Param kind path string true "记录种类: income/expense"
// @Param request body service.Form true "记录表单"
// @Success 200 {object} Response{data=models.Record} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未登录"
// @Failure 422 {object} Response "表单校验失败"
// @Router /api/v1/records/{kind} [post]
func (h *RecordHandler) Create(c *gin.Context) {
	kind, err := models.ParseKind(c.Param("kind"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	var form service.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	rec, err := h.editor.Submit(c.Request.Context(), &form, kind, nil)
	if err != nil {
		submitError(c, err)
		return
	}
	SuccessWithMessage(c, "创建成功", rec)
}

// Update 更新记录
// @Summary 更新记录
// @Description 种类未变时原地覆盖全部字段；请求体的 kind 与路径不同时先删旧表行再插新表行，
// @Description 新行获得新分配的 id。搬移不是原子操作，删除成功而插入失败时记录丢失并报错说明
// @Tags 记录
// @Accept json
// @Produce json
// @Param kind path string true "原记录种类: income/expense"
// @Param id path int true "记录 ID"
// @Param request body UpdateRecordRequest true "记录表单"
// @Success 200 {object} Response{data=models.Record} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未登录"
// @Failure 404 {object} Response "记录不存在"
// @Failure 422 {object} Response "表单校验失败"
// @Router /api/v1/records/{kind}/{id} [put]
func (h *RecordHandler) Update(c *gin.Context) {
	originalKind, id, ok := parseTarget(c)
	if !ok {
		return
	}
	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	kind := originalKind
	if req.Kind != "" {
		parsed, err := models.ParseKind(req.Kind)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		kind = parsed
	}

	form := req.form()
	if kind != originalKind {
		// 切换种类后原类别可能不再合法，先行清空再校验
		service.ChangeKind(form, kind)
	}

	rec, err := h.editor.Submit(c.Request.Context(), form, kind, &service.EditTarget{Kind: originalKind, ID: id})
	if err != nil {
		submitError(c, err)
		return
	}
	SuccessWithMessage(c, "更新成功", rec)
}

// Delete 删除记录
// @Summary 删除记录
// @Description 按 (kind, id) 删除记录，删除失败会返回错误消息
// @Tags 记录
// @Produce json
// @Param kind path string true "记录种类: income/expense"
// @Param id path int true "记录 ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未登录"
// @Failure 500 {object} Response "存储服务错误"
// @Router /api/v1/records/{kind}/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	kind, id, ok := parseTarget(c)
	if !ok {
		return
	}

	tbl, err := h.store.Table(kind)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	if err := tbl.Delete(c.Request.Context(), middleware.GetAccessToken(c), id); err != nil {
		submitError(c, err)
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// OptionsResponse 表单枚举选项
type OptionsResponse struct {
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"payment_methods"`
}

// Options 获取表单枚举选项
// @Summary 获取表单枚举选项
// @Description 返回指定种类的类别集合与共享的支付方式集合，类别集合跟随种类变化
// @Tags 记录
// @Produce json
// @Param kind query string true "记录种类: income/expense"
// @Success 200 {object} Response{data=OptionsResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/records/options [get]
func (h *RecordHandler) Options(c *gin.Context) {
	kind, err := models.ParseKind(c.Query("kind"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, OptionsResponse{
		Categories:     models.CategoriesFor(kind),
		PaymentMethods: models.PaymentMethods(),
	})
}
