package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Session SessionConfig `mapstructure:"session"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// StoreConfig 记录存储服务（外部托管后端）配置
// EndpointURL 与 APIKey 必须通过环境变量或配置文件提供，缺失时启动失败
type StoreConfig struct {
	EndpointURL string `mapstructure:"endpoint_url"`
	APIKey      string `mapstructure:"api_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// SessionConfig 会话配置
type SessionConfig struct {
	// RefreshLeewaySecs 在 access token 过期前多少秒发起刷新
	RefreshLeewaySecs int           `mapstructure:"refresh_leeway_secs"`
	RefreshLeeway     time.Duration `mapstructure:"-"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			logrus.Warnf("无法读取指定配置文件 %s: %v", configPath, err)
		} else {
			logrus.Infof("已合并外部配置文件: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/fintrack")
		externalViper.AddConfigPath("$HOME/.fintrack")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				logrus.Warnf("合并外部配置失败: %v", err)
			} else {
				logrus.Infof("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 环境变量覆盖，如 FINTRACK_STORE_ENDPOINT_URL / FINTRACK_STORE_API_KEY
	v.SetEnvPrefix("FINTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 解析配置
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if cfg.Session.RefreshLeewaySecs <= 0 {
		cfg.Session.RefreshLeewaySecs = 60
	}
	cfg.Session.RefreshLeeway = time.Duration(cfg.Session.RefreshLeewaySecs) * time.Second

	// 保存到全局变量
	GlobalConfig = &cfg

	return &cfg, nil
}

// Validate 校验必填项
// 记录存储的连接参数缺失属于不可恢复的启动错误
func (c *Config) Validate() error {
	if c.Store.EndpointURL == "" {
		return fmt.Errorf("缺少记录存储服务地址，请设置 FINTRACK_STORE_ENDPOINT_URL")
	}
	if c.Store.APIKey == "" {
		return fmt.Errorf("缺少记录存储服务 API Key，请设置 FINTRACK_STORE_API_KEY")
	}
	return nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("配置未初始化，请先调用 LoadConfig")
	}
	return GlobalConfig
}

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	logrus.Infof("当前配置:")
	logrus.Infof("  服务器: %s (模式: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	logrus.Infof("  记录存储: %s", GlobalConfig.Store.EndpointURL)
}
