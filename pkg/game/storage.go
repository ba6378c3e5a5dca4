package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/conga/pkg/utils"
)

// AppName 存储目录名（gdata 以此区分应用）
const AppName = "conga"

// OpenStorage 打开跨平台持久化存储
//
// 打开失败时返回 nil，调用方进入降级模式（设置和战绩只保存在内存中）。
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Storage] Warning: failed to open gdata storage: %v (running without persistence)", err)
		return nil
	}
	if dir := utils.StoragePath(); dir != "" {
		log.Printf("[Storage] Opened gdata storage for %q in %s", appName, dir)
	} else {
		log.Printf("[Storage] Opened gdata storage for %q", appName)
	}
	return m
}
