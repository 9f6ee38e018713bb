package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Athlon05/Balanacea-app/middleware"
	"github.com/Athlon05/Balanacea-app/models"
	"github.com/Athlon05/Balanacea-app/service"
	"github.com/Athlon05/Balanacea-app/store"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	store *store.Client
}

// NewExportHandler 创建导出处理器
func NewExportHandler(st *store.Client) *ExportHandler {
	return &ExportHandler{store: st}
}

var exportHeaders = []string{"种类", "ID", "描述", "金额", "日期", "类别", "支付方式", "创建时间"}

func kindLabel(kind models.Kind) string {
	if kind == models.KindIncome {
		return "收入"
	}
	return "支出"
}

// fetchTransactions 取齐并合并交易序列，失败时已写好响应
func (h *ExportHandler) fetchTransactions(c *gin.Context) ([]models.Transaction, bool) {
	mode, err := service.ParseFilterMode(c.Query("filter"))
	if err != nil {
		BadRequest(c, err.Error())
		return nil, false
	}

	token := middleware.GetAccessToken(c)
	lists := service.FetchLists(c.Request.Context(), h.store, token)
	if lists.IncomeErr != nil {
		InternalError(c, lists.IncomeErr.Error())
		return nil, false
	}
	if lists.ExpenseErr != nil {
		InternalError(c, lists.ExpenseErr.Error())
		return nil, false
	}

	return service.Filter(service.Merge(lists.Incomes, lists.Expenses), mode), true
}

func transactionRow(t models.Transaction) []string {
	return []string{
		kindLabel(t.Kind),
		fmt.Sprintf("%d", t.ID),
		t.Description,
		t.Amount.StringFixed(2),
		t.Date.String(),
		t.Category,
		t.PaymentMethod,
		t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ExportCSV 导出交易明细为 CSV
// @Summary 导出交易明细为 CSV
// @Description 导出合并后的交易序列，可选按种类筛选
// @Tags 导出
// @Produce text/csv
// @Param filter query string false "筛选模式: all/income/expense" default(all)
// @Success 200 {file} file "CSV 文件"
// @Failure 401 {object} Response "未登录"
// @Failure 500 {object} Response "存储服务错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	transactions, ok := h.fetchTransactions(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	for _, t := range transactions {
		if err := writer.Write(transactionRow(t)); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出交易明细为 Excel
// @Summary 导出交易明细为 Excel
// @Description 导出合并后的交易序列为 xlsx，可选按种类筛选
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param filter query string false "筛选模式: all/income/expense" default(all)
// @Success 200 {file} file "Excel 文件"
// @Failure 401 {object} Response "未登录"
// @Failure 500 {object} Response "存储服务错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	transactions, ok := h.fetchTransactions(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "交易明细"
	index, err := f.NewSheet(sheet)
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}
	for row, t := range transactions {
		for col, value := range transactionRow(t) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}
	_ = f.SetColWidth(sheet, "C", "C", 30)
	_ = f.SetColWidth(sheet, "H", "H", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
