package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/decker502/conga/pkg/config"
)

const (
	// TickRate 模拟频率（每秒帧数）
	TickRate = 60
	// RoomIdleTimeout 无人房间保留时间
	RoomIdleTimeout = time.Minute
)

// NewHandler 返回服务路由
//
//	/ws?room=<id>  WebSocket 对局连接
//	/healthz       存活检查
func NewHandler(h *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(h, w, r)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ok rooms=%d\n", h.RoomCount())
	})
	return mux
}

// RunTicker 以 TickRate 推进所有房间，并定期清理空房间，直到 ctx 结束
func RunTicker(ctx context.Context, h *Hub) {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()
	cleanup := time.NewTicker(RoomIdleTimeout)
	defer cleanup.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			h.Advance(now)
		case <-cleanup.C:
			h.CleanupEmptyRooms(RoomIdleTimeout)
		}
	}
}

// ListenAndServe 启动服务，ctx 结束时优雅关闭
func ListenAndServe(ctx context.Context, addr string, cfg *config.GameConfig) error {
	hub := NewHub(cfg)
	srv := &http.Server{Addr: addr, Handler: NewHandler(hub)}

	go RunTicker(ctx, hub)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[Server] Shutdown error: %v", err)
		}
	}()

	log.Printf("[Server] Listening on %s (%d Hz)", addr, TickRate)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
