package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/peopledesk/payroll-backend-go/internal/config"
	appHTTP "github.com/peopledesk/payroll-backend-go/internal/handler/http"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/database"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/eventbus"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/peopledesk/payroll-backend-go/internal/repository/postgresql"
	calculationService "github.com/peopledesk/payroll-backend-go/internal/service/calculation"
	companyService "github.com/peopledesk/payroll-backend-go/internal/service/company"
	listenerService "github.com/peopledesk/payroll-backend-go/internal/service/listener"
	"github.com/peopledesk/payroll-backend-go/internal/service/master"
	payfundService "github.com/peopledesk/payroll-backend-go/internal/service/payfund"
	paymentService "github.com/peopledesk/payroll-backend-go/internal/service/payment"
	payperiodService "github.com/peopledesk/payroll-backend-go/internal/service/payperiod"
	positionService "github.com/peopledesk/payroll-backend-go/internal/service/position"
	reportService "github.com/peopledesk/payroll-backend-go/internal/service/report"
	tasklistService "github.com/peopledesk/payroll-backend-go/internal/service/tasklist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	payPeriodRepo := postgresql.NewPayPeriodRepository(db)
	paymentTypeRepo := postgresql.NewPaymentTypeRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	paymentPosRepo := postgresql.NewPaymentPositionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	fundTypeRepo := postgresql.NewFundTypeRepository(db)
	payFundRepo := postgresql.NewPayFundRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	bus := eventbus.New(log)

	calcService := calculationService.NewService(
		log,
		companyRepo,
		positionRepo,
		payPeriodRepo,
		paymentTypeRepo,
		paymentRepo,
		paymentPosRepo,
		payrollRepo,
		payFundRepo,
	)
	fundService := payfundService.NewService(
		log,
		companyRepo,
		positionRepo,
		payPeriodRepo,
		fundTypeRepo,
		payFundRepo,
		payrollRepo,
	)
	taskEngine := tasklistService.NewService(
		log,
		companyRepo,
		payPeriodRepo,
		positionRepo,
		departmentRepo,
		paymentRepo,
		paymentTypeRepo,
		taskRepo,
	)
	listenerService.NewService(log, calcService, fundService, companyRepo, paymentRepo).Register(bus)

	companySvc := companyService.NewCompanyService(log, bus, companyRepo, payPeriodRepo)
	positionSvc := positionService.NewPositionService(log, bus, positionRepo, companyRepo)
	payPeriodSvc := payperiodService.NewPayPeriodService(log, bus, companyRepo, payPeriodRepo)
	paymentSvc := paymentService.NewPaymentService(log, paymentRepo, paymentPosRepo)
	taskSvc := tasklistService.NewTaskService(log, taskEngine, companyRepo, taskRepo)
	masterSvc := master.NewMasterService(log, bus, paymentTypeRepo, fundTypeRepo, payFundRepo, departmentRepo, payrollRepo, positionRepo)
	reportSvc := reportService.NewService(companyRepo, paymentRepo, paymentTypeRepo)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewCompanyHandler(companySvc),
		appHTTP.NewPositionHandler(positionSvc),
		appHTTP.NewPayPeriodHandler(payPeriodSvc),
		appHTTP.NewPaymentHandler(paymentSvc),
		appHTTP.NewTaskHandler(taskSvc),
		appHTTP.NewMasterHandler(masterSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
