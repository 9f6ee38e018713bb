package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Athlon05/Balanacea-app/config"
	"github.com/Athlon05/Balanacea-app/store"
)

// ErrPasswordTooShort 输入期的密码长度校验错误
// 除最小长度外不做其他口令策略，复杂度要求由存储端决定
var ErrPasswordTooShort = errors.New("密码长度不能少于 6 位")

const minPasswordLen = 6

// Gate 会话门
// 持有进程级的当前认证会话，是全部动作之间唯一共享的可变状态。
// 会话只由 run 协程这一个写者修改，其他组件在发起记录操作前读取；
// 订阅者注册回调并获得解除函数，token 到期前由写者自动刷新，
// 刷新失败视为登出
type Gate struct {
	store  *store.Client
	leeway time.Duration

	mu      sync.RWMutex
	current *store.Session

	subMu  sync.Mutex
	subs   map[int]func(*store.Session)
	nextID int

	changes chan *store.Session
	done    chan struct{}
	once    sync.Once
}

// NewGate 创建会话门
func NewGate(st *store.Client, cfg *config.Config) *Gate {
	leeway := cfg.Session.RefreshLeeway
	if leeway <= 0 {
		leeway = time.Minute
	}
	return &Gate{
		store:   st,
		leeway:  leeway,
		subs:    make(map[int]func(*store.Session)),
		changes: make(chan *store.Session),
		done:    make(chan struct{}),
	}
}

// Start 启动会话写者协程
// 进程启动时没有持久化的会话，初始为未登录状态
func (g *Gate) Start() {
	go g.run()
}

// Close 停止写者协程
func (g *Gate) Close() {
	g.once.Do(func() { close(g.done) })
}

// run 唯一的会话写者
// 登录、登出、刷新产生的变更都在这里依次应用并广播
func (g *Gate) run() {
	var refreshC <-chan time.Time
	var timer *time.Timer

	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			refreshC = nil
		}
	}

	for {
		select {
		case s := <-g.changes:
			g.apply(s)
			stopTimer()
			if s != nil && s.RefreshToken != "" {
				timer = time.NewTimer(g.refreshDelay(s))
				refreshC = timer.C
			}
		case <-refreshC:
			stopTimer()
			sess := g.Current()
			if sess == nil {
				continue
			}
			refreshed, err := g.store.RefreshSession(context.Background(), sess.RefreshToken)
			if err != nil {
				logrus.Warnf("会话刷新失败，按登出处理: %v", err)
				g.apply(nil)
				continue
			}
			g.apply(refreshed)
			timer = time.NewTimer(g.refreshDelay(refreshed))
			refreshC = timer.C
		case <-g.done:
			stopTimer()
			return
		}
	}
}

// apply 写入会话状态并通知订阅者
func (g *Gate) apply(s *store.Session) {
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()

	g.subMu.Lock()
	subs := make([]func(*store.Session), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.subMu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

// refreshDelay 距离下次刷新的时长
// 优先取 token 声明里的过期时间，取不到则退回 ExpiresIn
func (g *Gate) refreshDelay(s *store.Session) time.Duration {
	expiry := tokenExpiry(s.AccessToken)
	if expiry.IsZero() && s.ExpiresIn > 0 {
		expiry = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	if expiry.IsZero() {
		return time.Hour
	}
	d := time.Until(expiry) - g.leeway
	if d < time.Second {
		d = time.Second
	}
	return d
}

func (g *Gate) push(s *store.Session) {
	select {
	case g.changes <- s:
	case <-g.done:
	}
}

// SignIn 登录
func (g *Gate) SignIn(ctx context.Context, email, password string) (*store.Session, error) {
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	sess, err := g.store.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	g.push(sess)
	return sess, nil
}

// SignUp 注册
// 后端直接返回会话时视同登录成功；开启邮箱确认时返回的会话
// AccessToken 为空，保持未登录
func (g *Gate) SignUp(ctx context.Context, email, password string) (*store.Session, error) {
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	sess, err := g.store.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if sess.AccessToken != "" {
		g.push(sess)
	}
	return sess, nil
}

// SignOut 登出
// 本地状态立即清除，存储端注销失败只记录日志不阻断
func (g *Gate) SignOut(ctx context.Context) error {
	sess := g.Current()
	if sess == nil {
		return nil
	}
	if err := g.store.SignOut(ctx, sess.AccessToken); err != nil {
		logrus.Warnf("存储端注销失败: %v", err)
	}
	g.push(nil)
	return nil
}

// Restore 用持久化的 refresh token 恢复启动时的会话
func (g *Gate) Restore(ctx context.Context, refreshToken string) error {
	sess, err := g.store.RefreshSession(ctx, refreshToken)
	if err != nil {
		return err
	}
	g.push(sess)
	return nil
}

// Current 当前会话，未登录返回 nil
func (g *Gate) Current() *store.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current
}

// UserID 当前用户 id
func (g *Gate) UserID() (uuid.UUID, bool) {
	sess := g.Current()
	if sess == nil {
		return uuid.Nil, false
	}
	return sess.User.ID, true
}

// AccessToken 当前会话的 access token
func (g *Gate) AccessToken() (string, bool) {
	sess := g.Current()
	if sess == nil {
		return "", false
	}
	return sess.AccessToken, true
}

// Subscribe 订阅会话变更，返回解除订阅的函数
func (g *Gate) Subscribe(fn func(*store.Session)) func() {
	g.subMu.Lock()
	id := g.nextID
	g.nextID++
	g.subs[id] = fn
	g.subMu.Unlock()

	return func() {
		g.subMu.Lock()
		delete(g.subs, id)
		g.subMu.Unlock()
	}
}
