package store

import "errors"

// ErrNoSession 无有效会话时的认证错误
// 所有记录操作在发起前都要求存在已认证会话
var ErrNoSession = errors.New("未登录或会话已失效")

// StoreError 存储后端返回的错误
// 后端消息原样透传给用户，不做改写
type StoreError struct {
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	return e.Message
}

// AsStoreError 判断并提取存储错误
func AsStoreError(err error) (*StoreError, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
