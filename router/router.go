package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Athlon05/Balanacea-app/api"
	"github.com/Athlon05/Balanacea-app/config"
	_ "github.com/Athlon05/Balanacea-app/docs"
	"github.com/Athlon05/Balanacea-app/middleware"
	"github.com/Athlon05/Balanacea-app/service"
	"github.com/Athlon05/Balanacea-app/session"
	"github.com/Athlon05/Balanacea-app/store"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, st *store.Client, gate *session.Gate) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Balanacea",
			"version": "1.0.0",
		})
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := api.NewAuthHandler(gate)
	recordHandler := api.NewRecordHandler(service.NewEditor(st, gate), st)
	transactionHandler := api.NewTransactionHandler(st)
	exportHandler := api.NewExportHandler(st)

	v1 := r.Group("/api/v1")

	// 认证接口无需会话，登录与注册做限流
	auth := v1.Group("/auth")
	{
		authLimit := middleware.AuthRateLimit(5, time.Minute)
		auth.POST("/register", authLimit, authHandler.Register)
		auth.POST("/login", authLimit, authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/session", authHandler.GetSession)
	}

	// 记录操作全部要求已登录
	authed := v1.Group("")
	authed.Use(middleware.SessionRequired(gate))
	{
		authed.GET("/transactions", transactionHandler.List)
		authed.GET("/transactions/summary", transactionHandler.Summary)

		authed.GET("/records/options", recordHandler.Options)
		authed.GET("/records/:kind/:id", recordHandler.Get)
		authed.POST("/records/:kind", recordHandler.Create)
		authed.PUT("/records/:kind/:id", recordHandler.Update)
		authed.DELETE("/records/:kind/:id", recordHandler.Delete)

		authed.GET("/export/csv", exportHandler.ExportCSV)
		authed.GET("/export/excel", exportHandler.ExportExcel)
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
