package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Empleados-api/docs"
	appanalytics "github.com/jhoicas/Empleados-api/internal/application/analytics"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/directory"
	"github.com/jhoicas/Empleados-api/internal/application/export"
	"github.com/jhoicas/Empleados-api/internal/application/view"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/Empleados-api/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/Empleados-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// @title                       Employee Directory API
// @version                     1.0
// @description                 Administración local del directorio de personal.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")
	if cfg.JWT.Ephemeral {
		log.Warn().Msg("JWT_SECRET no definido: se usa un secret aleatorio, las sesiones no sobreviven a un reinicio")
	}

	kv, err := localstore.OpenBoltStore(cfg.Storage.Dir, cfg.Storage.File)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.Dir).Msg("abrir almacenamiento local")
	}
	defer kv.Close()
	storage := localstore.NewJSONStorage(kv, log.Component("storage"))

	store := directory.NewEmployeeStore(storage, directory.WithSeedOnEmpty(cfg.Storage.SeedOnEmpty))
	store.Initialize()
	log.Info().Int("employees", store.Stats().Total).Msg("directorio cargado")

	gate, err := auth.NewSessionGate(storage, auth.Config{
		Username:     cfg.Admin.Username,
		Name:         cfg.Admin.Name,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		LoginDelay:   cfg.UI.LoginDelay,
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("credencial de administrador")
	}
	gate.Restore()

	listView := view.NewListView(store)
	dashboardUC := appanalytics.NewDashboardUseCase(store)

	// Impresión y exportación de la lista filtrada
	exportUC := export.NewExportUseCase(store,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		infraxlsx.NewExcelizeExporter(cfg.App.Name),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // foto de perfil de hasta 5 MiB en base64
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.UI.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.UI.SwaggerFile,
			Path:     "docs",
			Title:    "Employee Directory API",
		}))
	} else {
		log.Warn().Str("file", cfg.UI.SwaggerFile).Msg("swagger deshabilitado: documento no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "loading": store.IsLoading()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:     store,
		Session:   gate,
		ListView:  listView,
		Dashboard: dashboardUC,
		Export:    exportUC,
		SaveDelay: cfg.UI.SaveDelay,
		Log:       log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
