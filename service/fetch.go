package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Athlon05/Balanacea-app/models"
	"github.com/Athlon05/Balanacea-app/store"
)

// LedgerLists 双表并发拉取的结果
// 两次拉取互不影响：一侧失败不会丢弃另一侧已取回的数据
type LedgerLists struct {
	Incomes    []models.Record
	Expenses   []models.Record
	IncomeErr  error
	ExpenseErr error
}

// Err 两侧都失败时才整体报错，返回收入侧的错误
func (l LedgerLists) Err() error {
	if l.IncomeErr != nil && l.ExpenseErr != nil {
		return l.IncomeErr
	}
	return nil
}

// FetchLists 并发拉取收入与支出两张表
// 这是同一动作里唯一并行发出的存储请求，两边都等待完成后返回
func FetchLists(ctx context.Context, st *store.Client, token string) LedgerLists {
	var lists LedgerLists

	var g errgroup.Group
	g.Go(func() error {
		tbl, err := st.Table(models.KindIncome)
		if err != nil {
			lists.IncomeErr = err
			return nil
		}
		lists.Incomes, lists.IncomeErr = tbl.List(ctx, token)
		return nil
	})
	g.Go(func() error {
		tbl, err := st.Table(models.KindExpense)
		if err != nil {
			lists.ExpenseErr = err
			return nil
		}
		lists.Expenses, lists.ExpenseErr = tbl.List(ctx, token)
		return nil
	})
	_ = g.Wait()

	return lists
}
