package config

// DefaultConfigYAML 嵌入的默认配置
// 记录存储的 endpoint_url 与 api_key 没有默认值，必须由环境变量或外部配置提供
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"
  base_url: "http://localhost:8080"

store:
  endpoint_url: ""
  api_key: ""
  timeout_secs: 30

session:
  refresh_leeway_secs: 60
`)
