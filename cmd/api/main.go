package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/config"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/fixtures"
	appHTTP "github.com/rottnpotato/BISUpayroll-sub000/internal/handler/http"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/repository/postgresql"
	bracketService "github.com/rottnpotato/BISUpayroll-sub000/internal/service/bracket"
	holidayService "github.com/rottnpotato/BISUpayroll-sub000/internal/service/holiday"
	ledgerService "github.com/rottnpotato/BISUpayroll-sub000/internal/service/ledger"
	payrollService "github.com/rottnpotato/BISUpayroll-sub000/internal/service/payroll"
	roleService "github.com/rottnpotato/BISUpayroll-sub000/internal/service/role"
	ruleService "github.com/rottnpotato/BISUpayroll-sub000/internal/service/rule"
	settingService "github.com/rottnpotato/BISUpayroll-sub000/internal/service/setting"
)

const settingsSaveQuiet = 2 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bisu-payroll"),
		slog.String("env", cfg.App.Env),
	)

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.DefaultPoolOptions())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	settingRepo := postgresql.NewSettingRepository(db)
	bracketRepo := postgresql.NewBracketRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)

	defaults := fixtures.NewProvider()

	var settingSvc setting.SettingService
	saveQueue := settingService.NewSaveQueue(settingsSaveQuiet, func(ctx context.Context, req setting.SaveSectionRequest) setting.SaveConfigResponse {
		return settingSvc.SaveSection(ctx, req)
	})
	defer saveQueue.Close(ctx)
	settingSvc = settingService.NewSettingService(db, settingRepo, defaults, saveQueue, logger)
	bracketSvc := bracketService.NewBracketService(bracketRepo, defaults, logger)
	roleSvc := roleService.NewRoleService(roleRepo, logger)
	ruleSvc := ruleService.NewRuleService(ruleRepo, logger)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, logger)
	payrollSvc := payrollService.NewPayrollService(
		settingRepo, bracketRepo, roleRepo, ruleRepo, holidayRepo, employeeRepo,
		defaults, logger,
	)
	ledgerSvc := ledgerService.NewLedgerService(ledgerRepo, payrollSvc, logger)

	router := appHTTP.NewRouter(logger, cfg.App.FrontendURL, appHTTP.Handlers{
		Setting: appHTTP.NewSettingHandler(settingSvc),
		Bracket: appHTTP.NewBracketHandler(bracketSvc),
		Role:    appHTTP.NewRoleHandler(roleSvc),
		Rule:    appHTTP.NewRuleHandler(ruleSvc),
		Holiday: appHTTP.NewHolidayHandler(holidaySvc),
		Payroll: appHTTP.NewPayrollHandler(payrollSvc),
		Ledger:  appHTTP.NewLedgerHandler(ledgerSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
