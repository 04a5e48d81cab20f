package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/auth"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions     *session.Manager
	AuthUC       *auth.AuthUseCase
	ViewUC       *usecase.ViewUseCase
	CompanyUC    *usecase.CompanyUseCase
	MerchantUC   *usecase.MerchantUseCase
	CommissionUC *usecase.CommissionUseCase
	PaymentUC    *usecase.PaymentUseCase
	SettlementUC *usecase.SettlementUseCase
	TerminalUC   *usecase.TerminalUseCase
	CenterUC     *usecase.CenterUseCase
	TotpUC       *usecase.TotpUseCase
	UserUC       *usecase.UserUseCase
	LoginLimiter *LoginRateLimiter
	// Now reloj para la expiración de tokens (tests).
	Now func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	if deps.LoginLimiter != nil {
		api.Post("/auth/login", deps.LoginLimiter.Handler(), authHandler.Login)
	} else {
		api.Post("/auth/login", authHandler.Login)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Sessions, deps.Now))
	protected.Post("/auth/logout", authHandler.Logout)

	// Sesión
	sessionHandler := NewSessionHandler()
	protected.Get("/session", sessionHandler.Get)
	protected.Put("/session/center", sessionHandler.SwitchCenter)
	protected.Put("/session/payment-purpose", sessionHandler.SetPaymentPurpose)
	protected.Post("/session/sidebar/toggle", sessionHandler.ToggleSidebar)
	protected.Post("/session/theme/toggle", sessionHandler.ToggleTheme)

	// Vistas (listados con formulario de búsqueda)
	views := protected.Group("/views/:view")
	viewHandler := NewViewHandler(deps.ViewUC)
	views.Get("/", viewHandler.Get)
	views.Post("/date-tab", viewHandler.DateTab)
	views.Post("/dates", viewHandler.Dates)
	views.Post("/condition", viewHandler.Condition)
	views.Post("/keyword", viewHandler.Keyword)
	views.Post("/page", viewHandler.Page)
	views.Post("/size", viewHandler.Size)
	views.Post("/search", viewHandler.Search)
	views.Post("/reset", viewHandler.Reset)

	// Organizaciones
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)

	// Comercios
	merchants := protected.Group("/merchants")
	merchantHandler := NewMerchantHandler(deps.MerchantUC)
	merchants.Post("/", merchantHandler.Create)
	merchants.Get("/:id", merchantHandler.GetByID)
	merchants.Put("/:id", merchantHandler.Update)
	merchants.Delete("/:id", merchantHandler.Delete)

	// Comisiones
	commissions := protected.Group("/commissions")
	commissionHandler := NewCommissionHandler(deps.CommissionUC)
	commissions.Get("/rows", commissionHandler.Rows)
	commissions.Patch("/:id", commissionHandler.Edit)
	commissions.Post("/:id/save", commissionHandler.Save)
	commissions.Get("/:id/histories", commissionHandler.Histories)

	// Transacciones
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/:id/cancel", paymentHandler.Cancel)
	payments.Post("/:id/register-terminal", paymentHandler.RegisterTerminal)
	payments.Get("/:id/receipt", paymentHandler.Receipt)

	// Liquidaciones
	settlements := protected.Group("/settlements")
	settlementHandler := NewSettlementHandler(deps.SettlementUC)
	settlements.Get("/statistics/rows", settlementHandler.StatisticsRows)
	settlements.Get("/statistics/report.pdf", settlementHandler.ExportPDF)
	settlements.Get("/statistics/report.xlsx", settlementHandler.ExportXLSX)
	settlements.Get("/statistics/branch-commission", settlementHandler.BranchCommission)
	settlements.Get("/amounts", settlementHandler.Amounts)

	// Terminales (check-duplicate antes de /:id)
	terminals := protected.Group("/terminals")
	terminalHandler := NewTerminalHandler(deps.TerminalUC)
	terminals.Get("/check-duplicate", terminalHandler.CheckDuplicate)
	terminals.Post("/", terminalHandler.Create)
	terminals.Get("/:id", terminalHandler.GetByID)
	terminals.Put("/:id", terminalHandler.Update)
	terminals.Delete("/:id", terminalHandler.Delete)

	// Centros y TOTP
	centerHandler := NewCenterHandler(deps.CenterUC, deps.TotpUC)
	centers := protected.Group("/centers")
	centers.Get("/", centerHandler.List)
	centers.Get("/detail", centerHandler.Detail)
	centers.Post("/", centerHandler.Create)
	centers.Put("/:id", centerHandler.Update)

	totp := protected.Group("/totp")
	totp.Get("/status", centerHandler.TotpStatus)
	totp.Post("/setup", centerHandler.TotpSetup)
	totp.Post("/enable", centerHandler.TotpEnable)
	totp.Post("/disable", centerHandler.TotpDisable)
	totp.Post("/verify", centerHandler.TotpVerify)

	// Usuarios
	protected.Get("/users/check-duplicate", NewUserHandler(deps.UserUC).CheckDuplicate)
}
