//go:build !android

package utils

// EnsureStorageDir 桌面平台由 gdata 自行创建目录，这里无需处理
func EnsureStorageDir() error {
	return nil
}

// StoragePath 桌面平台返回空字符串（路径由 gdata 决定）
func StoragePath() string {
	return ""
}
