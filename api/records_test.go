package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Athlon05/Balanacea-app/service"
)

func validRecordForm() service.Form {
	return service.Form{
		Description:   "一月工资",
		Amount:        "5000.00",
		Date:          "2024-01-10",
		Category:      "工资",
		PaymentMethod: "转账",
	}
}

func TestCreateRecordUnauthorized(t *testing.T) {
	env, cleanup := newTestEnv(t, false)
	defer cleanup()

	w := env.perform(t, http.MethodPost, "/api/v1/records/income", validRecordForm())
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "请先登录", decodeResponse(t, w).Message)
	// 未登录的请求被拦下，不触达存储端
	assert.Empty(t, env.fake.restCalls())
}

func TestCreateRecord(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	env.fake.on(http.MethodPost, "/rest/v1/income_records", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-test", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id": 21, "description": "一月工资", "amount": 5000,
			"date": "2024-01-10", "category": "工资", "payment_method": "转账",
			"user_id": "` + testUserID + `", "created_at": "2024-01-10T09:00:00Z"}]`))
	})

	w := env.perform(t, http.MethodPost, "/api/v1/records/income", validRecordForm())
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "创建成功", resp.Message)
	data := dataMap(t, resp)
	assert.Equal(t, float64(21), data["id"])
	assert.Equal(t, testUserID, data["user_id"])
}

func TestCreateRecordBadKind(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	w := env.perform(t, http.MethodPost, "/api/v1/records/transfer", validRecordForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.fake.restCalls())
}

func TestCreateRecordValidation(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	w := env.perform(t, http.MethodPost, "/api/v1/records/income", service.Form{
		Description:   "工资",
		Amount:        "abc",
		Date:          "2024-01-10",
		Category:      "餐饮",
		PaymentMethod: "转账",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeResponse(t, w)
	fields, ok := resp.Fields.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "金额必须是数字", fields["amount"])
	assert.NotEmpty(t, fields["category"])
	// 校验失败时不发起写入
	assert.Empty(t, env.fake.restCalls())
}

func TestUpdateRecord(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	env.fake.on(http.MethodPatch, "/rest/v1/income_records", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "eq.7", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`[{"id": 7, "description": "一月工资", "amount": 5000,
			"date": "2024-01-10", "category": "工资", "payment_method": "转账",
			"user_id": "` + testUserID + `", "created_at": "2024-01-01T09:00:00Z"}]`))
	})

	body := UpdateRecordRequest{
		Kind:          "income",
		Description:   "一月工资",
		Amount:        "5000.00",
		Date:          "2024-01-10",
		Category:      "工资",
		PaymentMethod: "转账",
	}
	w := env.perform(t, http.MethodPut, "/api/v1/records/income/7", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "更新成功", decodeResponse(t, w).Message)
	assert.Equal(t, []string{"PATCH /rest/v1/income_records"}, env.fake.restCalls())
}

func TestUpdateRecordKindChange(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	env.fake.on(http.MethodDelete, "/rest/v1/income_records", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "eq.7", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	env.fake.on(http.MethodPost, "/rest/v1/expense_records", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id": 31, "description": "聚餐", "amount": 200,
			"date": "2024-01-10", "category": "餐饮", "payment_method": "现金",
			"user_id": "` + testUserID + `", "created_at": "2024-01-10T20:00:00Z"}]`))
	})

	body := UpdateRecordRequest{
		Kind:          "expense",
		Description:   "聚餐",
		Amount:        "200",
		Date:          "2024-01-10",
		Category:      "餐饮",
		PaymentMethod: "现金",
	}
	w := env.perform(t, http.MethodPut, "/api/v1/records/income/7", body)
	require.Equal(t, http.StatusOK, w.Code)

	// 先删旧表行再插新表行，新行拿到新分配的 id
	assert.Equal(t, []string{
		"DELETE /rest/v1/income_records",
		"POST /rest/v1/expense_records",
	}, env.fake.restCalls())
	assert.Equal(t, float64(31), dataMap(t, decodeResponse(t, w))["id"])
}

func TestUpdateRecordMissing(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	env.fake.on(http.MethodPatch, "/rest/v1/income_records", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	body := UpdateRecordRequest{
		Kind:          "income",
		Description:   "一月工资",
		Amount:        "5000.00",
		Date:          "2024-01-10",
		Category:      "工资",
		PaymentMethod: "转账",
	}
	w := env.perform(t, http.MethodPut, "/api/v1/records/income/404", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecord(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	env.fake.on(http.MethodGet, "/rest/v1/expense_records", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 5, "description": "打车", "amount": 23.5,
			"date": "2024-01-08", "category": "交通", "payment_method": "信用卡",
			"user_id": "` + testUserID + `", "created_at": "2024-01-08T18:00:00Z"}]`))
	})

	w := env.perform(t, http.MethodGet, "/api/v1/records/expense/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, decodeResponse(t, w))
	assert.Equal(t, "打车", data["description"])
	assert.Equal(t, "23.5", data["amount"])
}

func TestGetRecordAbsent(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	env.fake.on(http.MethodGet, "/rest/v1/expense_records", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	// 记录不存在返回空白表单而不是错误
	w := env.perform(t, http.MethodGet, "/api/v1/records/expense/99", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", dataMap(t, decodeResponse(t, w))["description"])
}

func TestDeleteRecord(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	env.fake.on(http.MethodDelete, "/rest/v1/expense_records", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "eq.5", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	w := env.perform(t, http.MethodDelete, "/api/v1/records/expense/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "删除成功", decodeResponse(t, w).Message)
}

func TestDeleteRecordError(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	env.fake.on(http.MethodDelete, "/rest/v1/expense_records", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"permission denied for table expense_records"}`))
	})

	// 删除失败不允许静默吞掉，错误消息透出给调用方
	w := env.perform(t, http.MethodDelete, "/api/v1/records/expense/5", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeResponse(t, w).Message, "permission denied")
}

func TestRecordOptions(t *testing.T) {
	env, cleanup := newTestEnv(t, true)
	defer cleanup()

	w := env.perform(t, http.MethodGet, "/api/v1/records/options?kind=expense", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, decodeResponse(t, w))
	categories, ok := data["categories"].([]interface{})
	require.True(t, ok)
	assert.Len(t, categories, 6)
	assert.Contains(t, categories, "餐饮")
	assert.NotContains(t, categories, "工资")

	methods, ok := data["payment_methods"].([]interface{})
	require.True(t, ok)
	assert.Len(t, methods, 5)

	w = env.perform(t, http.MethodGet, "/api/v1/records/options", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
