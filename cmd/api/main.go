package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "complaintflow-backend/internal/adapter/http"
	"complaintflow-backend/internal/adapter/middleware"
	mysqlrepo "complaintflow-backend/internal/adapter/repository/mysql"
	"complaintflow-backend/internal/config"
	"complaintflow-backend/internal/domain/complaint"
	"complaintflow-backend/internal/domain/history"
	"complaintflow-backend/internal/domain/issuetype"
	"complaintflow-backend/internal/domain/user"
	"complaintflow-backend/internal/infrastructure/cache"
	"complaintflow-backend/internal/infrastructure/db"
	"complaintflow-backend/internal/usecase/auth"
	"complaintflow-backend/internal/usecase/directory"
	"complaintflow-backend/internal/usecase/workflow"
	"complaintflow-backend/pkg/token"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&user.User{},
		&issuetype.IssueType{},
		&complaint.Complaint{},
		&history.Entry{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories + unit of work
	complaints := mysqlrepo.NewComplaintRepository(gdb)
	entries := mysqlrepo.NewHistoryRepository(gdb)
	users := mysqlrepo.NewUserRepository(gdb)
	issues := mysqlrepo.NewIssueTypeRepository(gdb)
	tx := mysqlrepo.NewGormUoW(gdb)

	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// usecases
	workflowUC := workflow.NewUsecase(complaints, entries, tx)
	authUC := auth.NewUsecase(users, tokens)
	directoryUC := directory.NewUsecase(users, issues)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	complaintH := httpadp.NewComplaintHandler(workflowUC)
	directoryH := httpadp.NewDirectoryHandler(directoryUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	authed := middleware.Authenticate(tokens)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.POST("/api/auth/login", authH.Login)

	api := e.Group("/api", authed,
		middleware.RequestTimeout(time.Duration(cfg.StoreTimeoutSecs)*time.Second))
	api.POST("/complaints", complaintH.Create,
		middleware.RequireRole(user.RoleOutlet, user.RoleSalesRep), idemp)
	api.GET("/complaints", complaintH.List)
	api.GET("/complaints/:id", complaintH.Get)
	// every role may call; the workflow policy decides who gets 403
	api.PATCH("/complaints/:id/status", complaintH.UpdateStatus, idemp)
	api.GET("/users", directoryH.Users, middleware.RequireRole(user.RoleAdmin))
	api.GET("/issue-types", directoryH.IssueTypes,
		middleware.RequireRole(user.RoleAdmin, user.RoleOutlet, user.RoleSalesRep))

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
