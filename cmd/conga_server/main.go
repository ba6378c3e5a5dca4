// conga_server 通过 WebSocket 提供对局服务
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/conga/internal/server"
	"github.com/decker502/conga/pkg/config"
)

var (
	addr       = flag.String("addr", ":8080", "监听地址")
	configPath = flag.String("config", "data/conga.yaml", "调参配置文件路径（不存在时使用默认配置）")
)

func main() {
	flag.Parse()

	cfg := config.LoadGameConfigOrDefault(*configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx, *addr, cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
