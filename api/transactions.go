package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Athlon05/Balanacea-app/middleware"
	"github.com/Athlon05/Balanacea-app/service"
	"github.com/Athlon05/Balanacea-app/store"
)

// TransactionHandler 交易视图处理器
// 合并两张表的记录并做筛选与分页，数据在进入纯函数前已经取齐
type TransactionHandler struct {
	store *store.Client
}

// NewTransactionHandler 创建交易视图处理器
func NewTransactionHandler(st *store.Client) *TransactionHandler {
	return &TransactionHandler{store: st}
}

// List 获取交易列表
// @Summary 获取交易列表
// @Description 合并收入与支出记录，按（日期降序，插入顺序降序）排序后筛选、分页。固定每页 10 条
// @Tags 交易
// @Produce json
// @Param filter query string false "筛选模式: all/income/expense" default(all)
// @Param page query int false "页码" default(1)
// @Success 200 {object} Response{data=TransactionPage} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未登录"
// @Failure 500 {object} Response "存储服务错误"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	mode, err := service.ParseFilterMode(c.Query("filter"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	page := 1
	if p := c.Query("page"); p != "" {
		page, err = strconv.Atoi(p)
		if err != nil || page < 1 {
			BadRequest(c, "无效的页码")
			return
		}
	}

	token := middleware.GetAccessToken(c)
	lists := service.FetchLists(c.Request.Context(), h.store, token)
	if err := lists.Err(); err != nil {
		InternalError(c, err.Error())
		return
	}
	// 单侧失败不影响另一侧的展示，只记日志
	if lists.IncomeErr != nil {
		logrus.Warnf("拉取收入记录失败: %v", lists.IncomeErr)
	}
	if lists.ExpenseErr != nil {
		logrus.Warnf("拉取支出记录失败: %v", lists.ExpenseErr)
	}

	filtered := service.Filter(service.Merge(lists.Incomes, lists.Expenses), mode)
	items, totalPages := service.Paginate(filtered, page, service.PageSize)
	if page > totalPages {
		page = totalPages
	}

	Success(c, TransactionPage{
		Total:      len(filtered),
		Page:       page,
		PageSize:   service.PageSize,
		TotalPages: totalPages,
		List:       items,
	})
}

// Summary 获取收支汇总
// @Summary 获取收支汇总
// @Description 统计收入总和、支出总和与余额，金额保留两位小数
// @Tags 交易
// @Produce json
// @Success 200 {object} Response{data=service.Summary} "获取成功"
// @Failure 401 {object} Response "未登录"
// @Failure 500 {object} Response "存储服务错误"
// @Router /api/v1/transactions/summary [get]
func (h *TransactionHandler) Summary(c *gin.Context) {
	token := middleware.GetAccessToken(c)
	lists := service.FetchLists(c.Request.Context(), h.store, token)
	if err := lists.Err(); err != nil {
		InternalError(c, err.Error())
		return
	}
	if lists.IncomeErr != nil {
		logrus.Warnf("拉取收入记录失败: %v", lists.IncomeErr)
	}
	if lists.ExpenseErr != nil {
		logrus.Warnf("拉取支出记录失败: %v", lists.ExpenseErr)
	}

	Success(c, service.Totals(lists.Incomes, lists.Expenses))
}
