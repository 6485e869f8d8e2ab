package main

import (
	"fmt"
	"net/http"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/config"
	appHTTP "github.com/Naveen-M-V/HRMS-Updated-sub001/internal/handler/http"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/cron"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/database"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/jwt"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/repository/postgresql"
	employeeService "github.com/Naveen-M-V/HRMS-Updated-sub001/internal/service/employee"
	leaveService "github.com/Naveen-M-V/HRMS-Updated-sub001/internal/service/leave"
	shiftService "github.com/Naveen-M-V/HRMS-Updated-sub001/internal/service/shift"
	timeEntryService "github.com/Naveen-M-V/HRMS-Updated-sub001/internal/service/timeentry"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftAssignmentRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	leaveRepo := postgresql.NewLeaveRecordRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, employeeRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(timeEntryRepo, shiftRepo, leaveRepo, cfg.Attendance)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)

	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		scheduler.AddJob("mark_missed_shifts", cfg.Cron.MissedShiftInterval, cron.MarkMissedShiftsJob(shiftRepo))
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(cfg, jwtService, shiftHandler, timeEntryHandler, employeeHandler, leaveHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
