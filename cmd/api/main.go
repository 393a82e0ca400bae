package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agiledash/calendar-backend-go/internal/config"
	appHTTP "github.com/agiledash/calendar-backend-go/internal/handler/http"
	"github.com/agiledash/calendar-backend-go/internal/pkg/cron"
	"github.com/agiledash/calendar-backend-go/internal/repository/tracker"
	calendarService "github.com/agiledash/calendar-backend-go/internal/service/calendar"
	holidayService "github.com/agiledash/calendar-backend-go/internal/service/holiday"
	"log/slog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	trackerClient := tracker.NewClient(cfg.Tracker.BaseURL, cfg.Tracker.Timeout)
	holidaySvc := holidayService.NewService()
	calendarSvc := calendarService.NewService(trackerClient, holidaySvc, cfg.Calendar.CacheMonths)

	// First load; a failure is not fatal, the sync job below retries on its
	// interval and the refresh endpoint can force one.
	if err := calendarSvc.LoadInitial(context.Background()); err != nil {
		slog.Error("Initial calendar load failed", "error", err)
	}

	scheduler := cron.NewScheduler()
	scheduler.AddJob("resource-sync", cfg.Calendar.SyncInterval, calendarSvc.LoadInitial)
	scheduler.Start(context.Background())
	defer scheduler.Stop()

	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc, holidaySvc)
	router := appHTTP.NewRouter(calendarHandler, cfg.App.AllowedOrigin, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	if err := server.Shutdown(context.Background()); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
