package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Athlon05/Balanacea-app/config"
	"github.com/Athlon05/Balanacea-app/models"
)

// Client 记录存储服务客户端
// 对接 Supabase 兼容的托管后端：/auth/v1 负责认证，/rest/v1 负责两张记录表。
// 持久化、行级归属校验与查询执行全部由存储端完成，这里只是薄薄的一层 HTTP 封装
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client

	incomes  RecordTable
	expenses RecordTable
}

// NewClient 创建存储客户端
// 服务地址与 API Key 缺失属于不可恢复的启动错误
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.Store.EndpointURL == "" {
		return nil, errors.New("记录存储服务地址未配置")
	}
	if cfg.Store.APIKey == "" {
		return nil, errors.New("记录存储服务 API Key 未配置")
	}

	timeout := cfg.Store.TimeoutSecs
	if timeout <= 0 {
		timeout = 30
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.Store.EndpointURL, "/"),
		apiKey:  cfg.Store.APIKey,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
	c.incomes = &recordTable{client: c, kind: models.KindIncome}
	c.expenses = &recordTable{client: c, kind: models.KindExpense}
	return c, nil
}

// Table 按种类标签选择记录表
// 两个变体各持有一个实现，调用方只凭标签选择，不做表名字符串分支
func (c *Client) Table(kind models.Kind) (RecordTable, error) {
	switch kind {
	case models.KindIncome:
		return c.incomes, nil
	case models.KindExpense:
		return c.expenses, nil
	}
	return nil, fmt.Errorf("无效的记录种类: %s", kind)
}

// do 发送请求并返回响应体
// token 为空时使用 API Key 匿名身份；非 2xx 状态映射为 *StoreError，后端消息原样保留
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body interface{}, headers map[string]string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("编码请求失败: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	if token == "" {
		token = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &StoreError{Message: "请求存储服务失败: " + err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &StoreError{StatusCode: resp.StatusCode, Message: "读取响应失败: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StoreError{StatusCode: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
	}
	return data, nil
}

// errorMessage 从后端错误响应中提取消息
// GoTrue 与 PostgREST 的错误字段不一致，逐个尝试
func errorMessage(data []byte, status int) string {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		Err              string `json:"error"`
	}
	_ = json.Unmarshal(data, &payload)
	for _, m := range []string{payload.Message, payload.Msg, payload.ErrorDescription, payload.Err} {
		if m != "" {
			return m
		}
	}
	if len(data) > 0 {
		return string(data)
	}
	return fmt.Sprintf("存储服务返回状态码 %d", status)
}
