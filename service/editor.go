package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/Athlon05/Balanacea-app/models"
	"github.com/Athlon05/Balanacea-app/session"
	"github.com/Athlon05/Balanacea-app/store"
)

// ErrRecordNotFound 更新或删除的目标记录已不存在
var ErrRecordNotFound = errors.New("记录不存在或已被删除")

// Form 条目编辑表单
// 金额按文本接收，解析为非负 decimal 后才允许落库
type Form struct {
	Description   string `json:"description" validate:"required" message:"required:请输入描述"`
	Amount        string `json:"amount" validate:"required" message:"required:请输入金额"`
	Date          string `json:"date" validate:"required" message:"required:请选择日期"`
	Category      string `json:"category" validate:"required" message:"required:请选择类别"`
	PaymentMethod string `json:"payment_method" validate:"required" message:"required:请选择支付方式"`
}

// DefaultForm 空白表单，日期默认今天
func DefaultForm() *Form {
	return &Form{Date: models.Today().String()}
}

// FieldErrors 字段级校验错误，键为表单字段名
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, m := range e {
		msgs = append(msgs, m)
	}
	return strings.Join(msgs, "；")
}

// EditTarget 编辑目标，(Kind, ID) 二元组才是记录的完整身份
type EditTarget struct {
	Kind models.Kind
	ID   uint
}

// Editor 条目编辑器
// 负责单条记录的加载、校验与提交，包括编辑中改种类时的跨表搬移
type Editor struct {
	store *store.Client
	gate  *session.Gate
}

// NewEditor 创建条目编辑器
func NewEditor(st *store.Client, gate *session.Gate) *Editor {
	return &Editor{store: st, gate: gate}
}

// Load 按 (kind, id) 加载记录到表单
// 记录不存在不算错误，返回空白表单
func (e *Editor) Load(ctx context.Context, kind models.Kind, id uint) (*Form, error) {
	token, ok := e.gate.AccessToken()
	if !ok {
		return nil, store.ErrNoSession
	}

	tbl, err := e.store.Table(kind)
	if err != nil {
		return nil, err
	}
	rec, err := tbl.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return DefaultForm(), nil
	}
	return &Form{
		Description:   rec.Description,
		Amount:        rec.Amount.String(),
		Date:          rec.Date.String(),
		Category:      rec.Category,
		PaymentMethod: rec.PaymentMethod,
	}, nil
}

// jsonFieldNames 校验错误键名与表单 JSON 字段对齐
var jsonFieldNames = map[string]string{
	"Description":   "description",
	"Amount":        "amount",
	"Date":          "date",
	"Category":      "category",
	"PaymentMethod": "payment_method",
}

// Validate 校验表单并构造记录
// 所有字段必填；类别集合跟随当前选中的种类判定
func (e *Editor) Validate(form *Form, kind models.Kind) (models.Record, FieldErrors) {
	fieldErrs := FieldErrors{}

	v := validate.Struct(form)
	if !v.Validate() {
		for field, msgs := range v.Errors.All() {
			name := jsonFieldNames[field]
			if name == "" {
				name = field
			}
			for _, msg := range msgs {
				fieldErrs[name] = msg
				break
			}
		}
	}

	var rec models.Record
	rec.Description = strings.TrimSpace(form.Description)
	if rec.Description == "" && fieldErrs["description"] == "" {
		fieldErrs["description"] = "请输入描述"
	}

	if form.Amount != "" {
		amount, err := decimal.NewFromString(form.Amount)
		switch {
		case err != nil:
			fieldErrs["amount"] = "金额必须是数字"
		case amount.IsNegative():
			fieldErrs["amount"] = "金额不能为负数"
		default:
			rec.Amount = amount
		}
	}

	if form.Date != "" {
		date, err := models.ParseDate(form.Date)
		if err != nil {
			fieldErrs["date"] = err.Error()
		} else {
			rec.Date = date
		}
	}

	if form.Category != "" {
		if !models.ValidCategory(kind, form.Category) {
			fieldErrs["category"] = "类别不在当前种类的可选范围内"
		} else {
			rec.Category = form.Category
		}
	}

	if form.PaymentMethod != "" {
		if !models.ValidPaymentMethod(form.PaymentMethod) {
			fieldErrs["payment_method"] = "支付方式不在可选范围内"
		} else {
			rec.PaymentMethod = form.PaymentMethod
		}
	}

	if len(fieldErrs) > 0 {
		return models.Record{}, fieldErrs
	}
	return rec, nil
}

// ChangeKind 编辑中切换种类
// 类别集合跟随新种类，原类别不再合法时立即清空
func ChangeKind(form *Form, newKind models.Kind) {
	if form.Category != "" && !models.ValidCategory(newKind, form.Category) {
		form.Category = ""
	}
}

// Submit 提交表单
// 无 editing 时新建；种类未变时原地更新；种类变化时先删旧表行、再插新表行。
// 跨表搬移不是原子操作：删除成功而插入失败时记录即告丢失，错误里会明确说明
func (e *Editor) Submit(ctx context.Context, form *Form, kind models.Kind, editing *EditTarget) (*models.Record, error) {
	sess := e.gate.Current()
	if sess == nil {
		// 未认证直接拒绝，不向存储端发起任何写入
		return nil, store.ErrNoSession
	}

	rec, fieldErrs := e.Validate(form, kind)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	rec.UserID = sess.User.ID
	token := sess.AccessToken

	newTbl, err := e.store.Table(kind)
	if err != nil {
		return nil, err
	}

	// 新建
	if editing == nil {
		return newTbl.Insert(ctx, token, rec)
	}

	// 原地更新
	if editing.Kind == kind {
		updated, err := newTbl.Update(ctx, token, editing.ID, rec)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, ErrRecordNotFound
		}
		return updated, nil
	}

	// 种类变化：跨表搬移，新行拿到存储端新分配的 id
	oldTbl, err := e.store.Table(editing.Kind)
	if err != nil {
		return nil, err
	}
	if err := oldTbl.Delete(ctx, token, editing.ID); err != nil {
		return nil, err
	}
	inserted, err := newTbl.Insert(ctx, token, rec)
	if err != nil {
		msg := "记录已从原表删除，但写入新表失败，该记录已丢失"
		if se, ok := store.AsStoreError(err); ok {
			return nil, &store.StoreError{StatusCode: se.StatusCode, Message: msg + ": " + se.Message}
		}
		return nil, &store.StoreError{Message: msg + ": " + err.Error()}
	}
	return inserted, nil
}
