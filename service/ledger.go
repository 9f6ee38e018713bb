package service

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Athlon05/Balanacea-app/models"
)

// PageSize 交易列表固定页大小
const PageSize = 10

// FilterMode 交易列表筛选模式
type FilterMode string

const (
	FilterAll     FilterMode = "all"
	FilterIncome  FilterMode = "income"
	FilterExpense FilterMode = "expense"
)

// ParseFilterMode 解析筛选模式，空串视为 all
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterIncome, FilterExpense:
		return FilterMode(s), nil
	}
	return "", fmt.Errorf("无效的筛选模式: %s", s)
}

// Summary 收支汇总
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// MarshalJSON 金额统一保留两位小数展示
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"total_income":  s.TotalIncome.StringFixed(2),
		"total_expense": s.TotalExpense.StringFixed(2),
		"balance":       s.Balance.StringFixed(2),
	})
}

// Merge 合并两张表的记录为带种类标签的交易序列
// 排序键：日期降序，同日按 created_at（存储端的插入顺序）降序；
// 两个键都相同时保持输入顺序，重复调用结果一致
func Merge(incomes, expenses []models.Record) []models.Transaction {
	ts := make([]models.Transaction, 0, len(incomes)+len(expenses))
	for _, rec := range incomes {
		ts = append(ts, models.NewTransaction(models.KindIncome, rec))
	}
	for _, rec := range expenses {
		ts = append(ts, models.NewTransaction(models.KindExpense, rec))
	}

	sort.SliceStable(ts, func(i, j int) bool {
		if !ts[i].Date.Equal(ts[j].Date.Time) {
			return ts[i].Date.After(ts[j].Date)
		}
		return ts[i].CreatedAt.After(ts[j].CreatedAt)
	})
	return ts
}

// Totals 计算收入总和、支出总和与余额
// 金额累加走 decimal，避免二进制浮点误差
func Totals(incomes, expenses []models.Record) Summary {
	totalIncome := decimal.Zero
	for _, rec := range incomes {
		totalIncome = totalIncome.Add(rec.Amount)
	}
	totalExpense := decimal.Zero
	for _, rec := range expenses {
		totalExpense = totalExpense.Add(rec.Amount)
	}
	return Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
}

// Filter 按种类筛选交易
// 必须在 Merge 之后调用，筛选不改变排序
func Filter(ts []models.Transaction, mode FilterMode) []models.Transaction {
	if mode == FilterAll || mode == "" {
		return ts
	}
	kind := models.KindIncome
	if mode == FilterExpense {
		kind = models.KindExpense
	}
	filtered := make([]models.Transaction, 0, len(ts))
	for _, t := range ts {
		if t.Kind == kind {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Paginate 固定大小分页
// 总页数向上取整，空序列也算 1 页（空态由展示层单独处理）；
// 页码越界时收敛到 [1, totalPages]
func Paginate(ts []models.Transaction, page, pageSize int) ([]models.Transaction, int) {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	totalPages := (len(ts) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start >= len(ts) {
		return []models.Transaction{}, totalPages
	}
	end := start + pageSize
	if end > len(ts) {
		end = len(ts)
	}
	return ts[start:end], totalPages
}
