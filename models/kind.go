package models

import "fmt"

// Kind 记录种类标签，区分收入与支出两张并行表
// 种类由记录所在的表决定，不会作为字段落库
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ParseKind 解析种类标签
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense:
		return Kind(s), nil
	}
	return "", fmt.Errorf("无效的记录种类: %s", s)
}

// Valid 是否为合法种类
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// TableName 种类对应的存储表名
func (k Kind) TableName() string {
	if k == KindIncome {
		return "income_records"
	}
	return "expense_records"
}
