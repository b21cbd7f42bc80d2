// Package config 站点配置信息
package config

// Initialize 触发各配置文件的 init 注册
// main 包通过空导入该包完成配置加载
func Initialize() {
}
