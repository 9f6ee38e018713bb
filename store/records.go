package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Athlon05/Balanacea-app/models"
)

// RecordTable 单一种类记录表的能力接口
// 每个种类各有一个实现实例，按标签选择；行级归属由存储端策略裁决
type RecordTable interface {
	// List 列出当前用户的全部记录，按 (date desc, created_at desc) 排序
	List(ctx context.Context, token string) ([]models.Record, error)
	// Get 按 id 取单条记录；不存在返回 nil, nil（视为正常情况，不是错误）
	Get(ctx context.Context, token string, id uint) (*models.Record, error)
	// Insert 插入一条记录，id 与 created_at 由存储端分配
	Insert(ctx context.Context, token string, rec models.Record) (*models.Record, error)
	// Update 按 id 覆盖全部字段
	Update(ctx context.Context, token string, id uint, rec models.Record) (*models.Record, error)
	// Delete 按 id 删除
	Delete(ctx context.Context, token string, id uint) error
}

type recordTable struct {
	client *Client
	kind   models.Kind
}

func (t *recordTable) path() string {
	return "/rest/v1/" + t.kind.TableName()
}

// recordPayload 写入请求体
// 不携带 id 与 created_at，这两个字段由存储端分配
type recordPayload struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          models.Date     `json:"date"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	UserID        uuid.UUID       `json:"user_id"`
}

func payloadOf(rec models.Record) recordPayload {
	return recordPayload{
		Description:   rec.Description,
		Amount:        rec.Amount,
		Date:          rec.Date,
		Category:      rec.Category,
		PaymentMethod: rec.PaymentMethod,
		UserID:        rec.UserID,
	}
}

func (t *recordTable) List(ctx context.Context, token string) ([]models.Record, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "date.desc,created_at.desc")

	data, err := t.client.do(ctx, http.MethodGet, t.path(), query, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("解析记录列表失败: %w", err)
	}
	return records, nil
}

func (t *recordTable) Get(ctx context.Context, token string, id uint) (*models.Record, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+strconv.FormatUint(uint64(id), 10))
	query.Set("limit", "1")

	data, err := t.client.do(ctx, http.MethodGet, t.path(), query, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("解析记录失败: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (t *recordTable) Insert(ctx context.Context, token string, rec models.Record) (*models.Record, error) {
	headers := map[string]string{"Prefer": "return=representation"}
	data, err := t.client.do(ctx, http.MethodPost, t.path(), nil, token, []recordPayload{payloadOf(rec)}, headers)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("解析记录失败: %w", err)
	}
	if len(records) == 0 {
		return nil, &StoreError{Message: "插入记录失败：存储服务未返回数据"}
	}
	return &records[0], nil
}

func (t *recordTable) Update(ctx context.Context, token string, id uint, rec models.Record) (*models.Record, error) {
	query := url.Values{}
	query.Set("id", "eq."+strconv.FormatUint(uint64(id), 10))

	headers := map[string]string{"Prefer": "return=representation"}
	data, err := t.client.do(ctx, http.MethodPatch, t.path(), query, token, payloadOf(rec), headers)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("解析记录失败: %w", err)
	}
	if len(records) == 0 {
		// 更新目标不存在，与 Get 一致按缺失处理
		return nil, nil
	}
	return &records[0], nil
}

func (t *recordTable) Delete(ctx context.Context, token string, id uint) error {
	query := url.Values{}
	query.Set("id", "eq."+strconv.FormatUint(uint64(id), 10))

	headers := map[string]string{"Prefer": "return=minimal"}
	_, err := t.client.do(ctx, http.MethodDelete, t.path(), query, token, nil, headers)
	return err
}
