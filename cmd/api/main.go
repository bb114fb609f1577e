package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Aggron2k/nexus-hub-sub000/internal/config"
	appHTTP "github.com/Aggron2k/nexus-hub-sub000/internal/handler/http"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/clock"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/database"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/jwt"
	"github.com/Aggron2k/nexus-hub-sub000/internal/repository/postgresql"
	attendanceService "github.com/Aggron2k/nexus-hub-sub000/internal/service/attendance"
	payrollService "github.com/Aggron2k/nexus-hub-sub000/internal/service/payroll"
	positionService "github.com/Aggron2k/nexus-hub-sub000/internal/service/position"
	scheduleService "github.com/Aggron2k/nexus-hub-sub000/internal/service/schedule"
	shiftRequestService "github.com/Aggron2k/nexus-hub-sub000/internal/service/shiftrequest"
	timeOffService "github.com/Aggron2k/nexus-hub-sub000/internal/service/timeoff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	weekScheduleRepo := postgresql.NewWeekScheduleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	shiftRequestRepo := postgresql.NewShiftRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	clk := clock.System()

	positionSvc := positionService.NewPositionService(positionRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, weekScheduleRepo, shiftRepo, userRepo, positionRepo, clk)
	shiftRequestSvc := shiftRequestService.NewRequestService(db, shiftRequestRepo, weekScheduleRepo, shiftRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, shiftRepo, clk)
	timeOffSvc := timeOffService.NewTimeOffService(timeOffRepo, userRepo, cfg.Scheduling.AnnualVacationDays)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo)

	devTokenEnabled := cfg.App.Env != "production"
	authHandler := appHTTP.NewAuthHandler(jwtSvc, userRepo, devTokenEnabled)
	userHandler := appHTTP.NewUserHandler(userRepo)
	positionHandler := appHTTP.NewPositionHandler(positionSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	shiftRequestHandler := appHTTP.NewShiftRequestHandler(shiftRequestSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	timeOffHandler := appHTTP.NewTimeOffHandler(timeOffSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		jwtSvc,
		authHandler,
		userHandler,
		positionHandler,
		scheduleHandler,
		shiftRequestHandler,
		attendanceHandler,
		timeOffHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
