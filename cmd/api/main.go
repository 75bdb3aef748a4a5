package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sunshine-dental/clinic-backend-go/internal/config"
	scheduleDomain "github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
	appHTTP "github.com/sunshine-dental/clinic-backend-go/internal/handler/http"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/clock"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/cron"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/database"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/jwt"
	"github.com/sunshine-dental/clinic-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sunshine-dental/clinic-backend-go/internal/service/attendance"
	authService "github.com/sunshine-dental/clinic-backend-go/internal/service/auth"
	leaveService "github.com/sunshine-dental/clinic-backend-go/internal/service/leave"
	reportService "github.com/sunshine-dental/clinic-backend-go/internal/service/report"
	scheduleService "github.com/sunshine-dental/clinic-backend-go/internal/service/schedule"
	verificationService "github.com/sunshine-dental/clinic-backend-go/internal/service/verification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleEntryRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	embeddingRepo := postgresql.NewEmbeddingRepository(db)
	networkRepo := postgresql.NewNetworkRepository(db)
	txManager := postgresql.NewTxManager(db)

	clk := clock.NewRealClock()
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	gate := verificationService.NewVerificationService(verificationService.Config{
		SimilarityThreshold: cfg.Verification.SimilarityThreshold,
		EmbeddingDimension:  cfg.Verification.EmbeddingDimension,
		EnforceNetworkCheck: cfg.Verification.EnforceNetworkCheck,
		GlobalWhitelist:     cfg.Verification.GlobalWhitelist,
	}, embeddingRepo, networkRepo)

	authSvc := authService.NewAuthService(staffRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceService.Config{
		DefaultStartTime: cfg.Attendance.DefaultStartTime,
		DefaultWorkHours: cfg.Attendance.DefaultWorkHours,
	}, attendanceRepo, scheduleRepo, gate, clk, location)
	scheduleSvc := scheduleService.NewScheduleService(scheduleService.Config{
		DutyMode:              scheduleDomain.DutyMode(cfg.Schedule.DutyMode),
		RequiredDoctorsPerDay: cfg.Schedule.RequiredDoctorsPerDay,
		MinClinicCoverage:     cfg.Schedule.MinClinicCoverage,
	}, scheduleRepo, txManager, location)
	cascade := leaveService.NewCascadeEngine(attendanceRepo, scheduleRepo, cfg.Attendance.RestDay)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, cascade, clk, location)
	reportSvc := reportService.NewReportService(attendanceRepo, location)

	scheduler := cron.NewScheduler()
	jobs := cron.NewAttendanceJobs(attendanceRepo, scheduleRepo, staffRepo, clk, location, cfg.Attendance.RestDay)
	jobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc, location)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		scheduleHandler,
		leaveHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "addr", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
