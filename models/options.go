package models

// 收入类别常量
const (
	IncomeCategorySalary     = "工资"
	IncomeCategorySideJob    = "兼职"
	IncomeCategoryInvestment = "理财"
	IncomeCategorySales      = "销售"
	IncomeCategoryOther      = "其他"
)

// 支出类别常量
const (
	ExpenseCategoryFood          = "餐饮"
	ExpenseCategoryTransport     = "交通"
	ExpenseCategoryUtilities     = "生活缴费"
	ExpenseCategoryEntertainment = "娱乐"
	ExpenseCategoryMedical       = "医疗"
	ExpenseCategoryOther         = "其他"
)

// 支付方式常量（收入与支出共用）
const (
	PaymentMethodCash       = "现金"
	PaymentMethodCredit     = "信用卡"
	PaymentMethodDebit      = "储蓄卡"
	PaymentMethodTransfer   = "转账"
	PaymentMethodOther      = "其他"
)

// IncomeCategories 获取所有收入类别
func IncomeCategories() []string {
	return []string{
		IncomeCategorySalary,
		IncomeCategorySideJob,
		IncomeCategoryInvestment,
		IncomeCategorySales,
		IncomeCategoryOther,
	}
}

// ExpenseCategories 获取所有支出类别
func ExpenseCategories() []string {
	return []string{
		ExpenseCategoryFood,
		ExpenseCategoryTransport,
		ExpenseCategoryUtilities,
		ExpenseCategoryEntertainment,
		ExpenseCategoryMedical,
		ExpenseCategoryOther,
	}
}

// PaymentMethods 获取所有支付方式
func PaymentMethods() []string {
	return []string{
		PaymentMethodCash,
		PaymentMethodCredit,
		PaymentMethodDebit,
		PaymentMethodTransfer,
		PaymentMethodOther,
	}
}

// CategoriesFor 按种类获取类别集合
// 类别集合跟随当前选中的种类，编辑中切换种类后原类别可能不再合法
func CategoriesFor(kind Kind) []string {
	if kind == KindIncome {
		return IncomeCategories()
	}
	return ExpenseCategories()
}

// ValidCategory 类别是否属于该种类的枚举集合
func ValidCategory(kind Kind, category string) bool {
	for _, c := range CategoriesFor(kind) {
		if c == category {
			return true
		}
	}
	return false
}

// ValidPaymentMethod 支付方式是否属于共享枚举集合
func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods() {
		if m == method {
			return true
		}
	}
	return false
}
