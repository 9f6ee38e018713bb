package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Athlon05/Balanacea-app/session"
	"github.com/Athlon05/Balanacea-app/store"
)

// AuthHandler 认证处理器
// 认证本身由记录存储服务完成，这里只是会话门的动作边界
type AuthHandler struct {
	gate *session.Gate
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(gate *session.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"password123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// SessionInfo 会话信息
type SessionInfo struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	Email         string `json:"email,omitempty"`
}

func sessionInfoOf(sess *store.Session) SessionInfo {
	if sess == nil || sess.AccessToken == "" {
		return SessionInfo{}
	}
	return SessionInfo{
		Authenticated: true,
		UserID:        sess.User.ID.String(),
		Email:         sess.User.Email,
	}
}

// authError 认证动作的统一错误出口，存储端消息原样透出
func authError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrPasswordTooShort) {
		BadRequest(c, err.Error())
		return
	}
	if se, ok := store.AsStoreError(err); ok {
		status := se.StatusCode
		if status < 400 {
			status = http.StatusUnauthorized
		}
		Error(c, status, se.Message)
		return
	}
	InternalError(c, err.Error())
}

// Register 注册账号
// @Summary 注册账号
// @Description 通过记录存储服务创建账号。后端开启邮箱确认时需先确认邮箱再登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=SessionInfo} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 422 {object} Response "存储服务拒绝注册"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	sess, err := h.gate.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		authError(c, err)
		return
	}
	if sess.AccessToken == "" {
		SuccessWithMessage(c, "注册成功，请查收确认邮件后登录", sessionInfoOf(nil))
		return
	}
	SuccessWithMessage(c, "注册成功", sessionInfoOf(sess))
}

// Login 登录
// @Summary 登录
// @Description 邮箱密码登录，认证失败时原样返回存储服务的错误消息
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=SessionInfo} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "邮箱或密码错误"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	sess, err := h.gate.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		authError(c, err)
		return
	}
	SuccessWithMessage(c, "登录成功", sessionInfoOf(sess))
}

// Logout 退出登录
// @Summary 退出登录
// @Description 注销当前会话并清除本地状态
// @Tags 认证
// @Produce json
// @Success 200 {object} Response "已退出登录"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.gate.SignOut(c.Request.Context()); err != nil {
		InternalError(c, err.Error())
		return
	}
	SuccessWithMessage(c, "已退出登录", nil)
}

// GetSession 查询当前会话
// @Summary 查询当前会话
// @Description 返回当前认证状态与用户信息
// @Tags 认证
// @Produce json
// @Success 200 {object} Response{data=SessionInfo} "获取成功"
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	Success(c, sessionInfoOf(h.gate.Current()))
}
