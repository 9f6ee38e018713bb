package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Athlon05/Balanacea-app/config"
	"github.com/Athlon05/Balanacea-app/router"
	"github.com/Athlon05/Balanacea-app/session"
	"github.com/Athlon05/Balanacea-app/store"
)

// @title Balanacea 收支管理 API
// @version 1.0
// @description 个人收支管理服务，记录增删改查、汇总与导出，持久化与认证委托给外部记录存储服务
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		logrus.Info("Balanacea v1.0.0")
		return
	}

	// 加载 .env（可选），再加载配置（内置默认 + 外部覆盖 + 环境变量）
	_ = godotenv.Load()
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		logrus.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	// 记录存储连接参数缺失属于不可恢复的启动错误
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("配置校验失败: %v", err)
	}
	config.PrintConfig()

	// 初始化记录存储客户端
	st, err := store.NewClient(cfg)
	if err != nil {
		logrus.Fatalf("初始化记录存储客户端失败: %v", err)
	}

	// 启动会话门
	gate := session.NewGate(st, cfg)
	gate.Start()
	defer gate.Close()

	// 可选：用持久化的 refresh token 恢复上次的会话
	if token := os.Getenv("FINTRACK_SESSION_REFRESH_TOKEN"); token != "" {
		if err := gate.Restore(context.Background(), token); err != nil {
			logrus.Warnf("恢复会话失败: %v", err)
		}
	}

	// 设置路由
	r := router.SetupRouter(cfg, st, gate)

	logrus.Info("==========================================")
	logrus.Info("  💰 Balanacea 收支管理已启动")
	logrus.Info("==========================================")
	logrus.Infof("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	logrus.Infof("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	logrus.Info("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		logrus.Fatalf("服务器启动失败: %v", err)
	}
}
