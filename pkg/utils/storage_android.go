//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 打开存储之前创建 /data/data/{package}/saves
//
// gdata 在 Android 上不会预先创建子目录，目录不可写时返回错误。
func EnsureStorageDir() error {
	dir, err := savesDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// StoragePath 应用私有数据目录，检测失败返回空字符串
func StoragePath() string {
	pkg, err := packageName()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

func savesDir() (string, error) {
	pkg, err := packageName()
	if err != nil {
		return "", fmt.Errorf("failed to detect package name: %w", err)
	}
	return filepath.Join("/data/data", pkg, "saves"), nil
}

// packageName 从 /proc/self/cmdline 读取包名（第一个参数）
func packageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
