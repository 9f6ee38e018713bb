package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// User 存储端的认证用户
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session 认证会话
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// SignIn 邮箱密码登录
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	query := url.Values{}
	query.Set("grant_type", "password")

	body := map[string]string{"email": email, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, "", body, nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("解析会话失败: %w", err)
	}
	if session.AccessToken == "" {
		return nil, &StoreError{Message: "登录失败：存储服务未返回会话"}
	}
	return &session, nil
}

// SignUp 注册新账号
// 后端开启邮箱确认时不会立即返回会话，此时 Session.AccessToken 为空
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, "", body, nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("解析会话失败: %w", err)
	}
	if session.AccessToken == "" {
		// 确认流程下响应体直接就是用户对象
		_ = json.Unmarshal(data, &session.User)
	}
	return &session, nil
}

// SignOut 注销会话
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, accessToken, nil, nil)
	return err
}

// RefreshSession 用 refresh token 换取新会话
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	query := url.Values{}
	query.Set("grant_type", "refresh_token")

	body := map[string]string{"refresh_token": refreshToken}
	data, err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, "", body, nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("解析会话失败: %w", err)
	}
	if session.AccessToken == "" {
		return nil, &StoreError{Message: "会话刷新失败：存储服务未返回会话"}
	}
	return &session, nil
}

// GetUser 获取当前会话对应的用户
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	data, err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken, nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("解析用户信息失败: %w", err)
	}
	return &user, nil
}
