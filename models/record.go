package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record 收支记录
// 收入表与支出表的行结构完全一致，共用同一字段布局；
// 记录属于哪一种由所在表决定。id 仅在各自表内唯一，
// 跨表定位一律使用 (Kind, ID) 二元组
type Record struct {
	ID            uint            `json:"id,omitempty"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          Date            `json:"date"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	UserID        uuid.UUID       `json:"user_id"`
	CreatedAt     time.Time       `json:"created_at,omitempty"`
}

// Transaction 交易视图，Record 加上种类判别标签
// 仅用于展示与导出，从不落库
type Transaction struct {
	Kind Kind `json:"kind"`
	Record
}

// NewTransaction 为记录打上种类标签
func NewTransaction(kind Kind, rec Record) Transaction {
	return Transaction{Kind: kind, Record: rec}
}
