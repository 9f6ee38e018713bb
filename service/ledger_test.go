package service

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Athlon05/Balanacea-app/models"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func rec(t *testing.T, id uint, amount, date string, createdAt time.Time) models.Record {
	t.Helper()
	return models.Record{
		ID:        id,
		Amount:    decimal.RequireFromString(amount),
		Date:      mustDate(t, date),
		CreatedAt: createdAt,
	}
}

func TestMergeLengthAndTags(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	incomes := []models.Record{
		rec(t, 1, "100", "2024-01-01", base),
		rec(t, 2, "200", "2024-01-03", base.Add(time.Hour)),
	}
	expenses := []models.Record{
		rec(t, 1, "50", "2024-01-02", base.Add(2 * time.Hour)),
	}

	ts := Merge(incomes, expenses)
	require.Len(t, ts, len(incomes)+len(expenses))

	// 每个元素的标签与来源列表一致
	var incomeCount, expenseCount int
	for _, tx := range ts {
		switch tx.Kind {
		case models.KindIncome:
			incomeCount++
		case models.KindExpense:
			expenseCount++
		}
	}
	assert.Equal(t, len(incomes), incomeCount)
	assert.Equal(t, len(expenses), expenseCount)
}

func TestMergeOrdering(t *testing.T) {
	base := time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC)
	incomes := []models.Record{rec(t, 1, "1000", "2024-01-10", base)}
	expenses := []models.Record{
		rec(t, 1, "250", "2024-01-09", base.Add(time.Hour)),
		rec(t, 2, "50", "2024-01-09", base.Add(2*time.Hour)),
	}

	ts := Merge(incomes, expenses)
	require.Len(t, ts, 3)

	// 日期降序在先，同日按 created_at 降序
	assert.Equal(t, models.KindIncome, ts[0].Kind)
	assert.Equal(t, "2024-01-10", ts[0].Date.String())
	assert.Equal(t, uint(2), ts[1].ID)
	assert.Equal(t, uint(1), ts[2].ID)
}

func TestMergeStability(t *testing.T) {
	// 日期与 created_at 都相同时保持输入顺序，重复调用结果一致
	same := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	incomes := []models.Record{
		rec(t, 10, "1", "2024-02-01", same),
		rec(t, 11, "2", "2024-02-01", same),
		rec(t, 12, "3", "2024-02-01", same),
	}

	first := Merge(incomes, nil)
	for i := 0; i < 5; i++ {
		again := Merge(incomes, nil)
		for j := range first {
			assert.Equal(t, first[j].ID, again[j].ID)
		}
	}
	assert.Equal(t, uint(10), first[0].ID)
	assert.Equal(t, uint(11), first[1].ID)
	assert.Equal(t, uint(12), first[2].ID)
}

func TestTotalsBalance(t *testing.T) {
	incomes := []models.Record{
		rec(t, 1, "0.1", "2024-01-01", time.Time{}),
		rec(t, 2, "0.2", "2024-01-02", time.Time{}),
	}
	expenses := []models.Record{
		rec(t, 1, "0.3", "2024-01-03", time.Time{}),
	}

	s := Totals(incomes, expenses)
	// decimal 累加无二进制浮点误差
	assert.True(t, s.TotalIncome.Equal(decimal.RequireFromString("0.3")))
	assert.True(t, s.TotalExpense.Equal(decimal.RequireFromString("0.3")))
	assert.True(t, s.Balance.IsZero())
	assert.True(t, s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpense)))
}

func TestTotalsScenario(t *testing.T) {
	incomes := []models.Record{rec(t, 1, "1000", "2024-01-10", time.Time{})}
	expenses := []models.Record{
		rec(t, 1, "250", "2024-01-09", time.Time{}),
		rec(t, 2, "50", "2024-01-09", time.Time{}),
	}

	s := Totals(incomes, expenses)
	assert.Equal(t, "1000.00", s.TotalIncome.StringFixed(2))
	assert.Equal(t, "300.00", s.TotalExpense.StringFixed(2))
	assert.Equal(t, "700.00", s.Balance.StringFixed(2))
}

func TestSummaryJSON(t *testing.T) {
	s := Totals(
		[]models.Record{rec(t, 1, "1000", "2024-01-10", time.Time{})},
		[]models.Record{rec(t, 1, "300", "2024-01-09", time.Time{})},
	)
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_income":"1000.00","total_expense":"300.00","balance":"700.00"}`, string(data))
}

func TestFilterPartition(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	var incomes, expenses []models.Record
	for i := 0; i < 7; i++ {
		incomes = append(incomes, rec(t, uint(i+1), "10", "2024-03-01", base.Add(time.Duration(i)*time.Minute)))
	}
	for i := 0; i < 5; i++ {
		expenses = append(expenses, rec(t, uint(i+1), "5", "2024-03-02", base.Add(time.Duration(i)*time.Minute)))
	}

	all := Filter(Merge(incomes, expenses), FilterAll)
	onlyIncome := Filter(all, FilterIncome)
	onlyExpense := Filter(all, FilterExpense)

	// 两个筛选结果互斥且并集等于全集
	assert.Len(t, onlyIncome, 7)
	assert.Len(t, onlyExpense, 5)
	assert.Len(t, all, len(onlyIncome)+len(onlyExpense))
	for _, tx := range onlyIncome {
		assert.Equal(t, models.KindIncome, tx.Kind)
	}
	for _, tx := range onlyExpense {
		assert.Equal(t, models.KindExpense, tx.Kind)
	}

	// 筛选不改变排序
	for i := 1; i < len(onlyExpense); i++ {
		assert.False(t, onlyExpense[i].CreatedAt.After(onlyExpense[i-1].CreatedAt))
	}
}

func TestParseFilterMode(t *testing.T) {
	mode, err := ParseFilterMode("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, mode)

	mode, err = ParseFilterMode("income")
	require.NoError(t, err)
	assert.Equal(t, FilterIncome, mode)

	_, err = ParseFilterMode("refund")
	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	var incomes []models.Record
	for i := 0; i < 23; i++ {
		incomes = append(incomes, rec(t, uint(i+1), "1", "2024-04-01", base.Add(time.Duration(i)*time.Minute)))
	}
	ts := Merge(incomes, nil)

	// 23 条，每页 10：页大小为 [10,10,3]
	page1, totalPages := Paginate(ts, 1, PageSize)
	assert.Equal(t, 3, totalPages)
	assert.Len(t, page1, 10)
	page2, _ := Paginate(ts, 2, PageSize)
	assert.Len(t, page2, 10)
	page3, _ := Paginate(ts, 3, PageSize)
	assert.Len(t, page3, 3)

	// 按序拼接各页可完整还原序列
	var joined []models.Transaction
	joined = append(joined, page1...)
	joined = append(joined, page2...)
	joined = append(joined, page3...)
	require.Len(t, joined, len(ts))
	for i := range ts {
		assert.Equal(t, ts[i].ID, joined[i].ID, fmt.Sprintf("位置 %d", i))
	}
}

func TestPaginateEmptyAndClamp(t *testing.T) {
	// 空序列也算 1 页
	items, totalPages := Paginate(nil, 1, PageSize)
	assert.Equal(t, 1, totalPages)
	assert.Empty(t, items)

	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	ts := Merge([]models.Record{rec(t, 1, "1", "2024-04-01", base)}, nil)

	// 越界页码收敛到边界
	items, totalPages = Paginate(ts, 99, PageSize)
	assert.Equal(t, 1, totalPages)
	assert.Len(t, items, 1)

	items, _ = Paginate(ts, 0, PageSize)
	assert.Len(t, items, 1)
}
