package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appcache "github.com/tu-usuario/textil-lotes/internal/application/cache"
	"github.com/tu-usuario/textil-lotes/internal/application/session"
	"github.com/tu-usuario/textil-lotes/internal/infrastructure/localstore"
	"github.com/tu-usuario/textil-lotes/internal/infrastructure/remote"
	httpRouter "github.com/tu-usuario/textil-lotes/internal/interfaces/http"
	"github.com/tu-usuario/textil-lotes/pkg/config"
	"github.com/tu-usuario/textil-lotes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	remoteClient := remote.NewClient(remote.Config{
		BaseURL: cfg.Remote.URL,
		APIKey:  cfg.Remote.APIKey,
	}, log)
	loteStore := remote.NewLoteStore(remoteClient)
	clienteStore := remote.NewClienteStore(remoteClient)

	local := localstore.New(cfg.LocalStore.Path, log)

	// Los caches se cargan recién cuando la primera petición autenticada
	// publica una identidad en la sesión; con sesión anónima no se consulta nada.
	sesion := session.NewContext()
	notifier := appcache.NewLogNotifier(log)
	loteCache := appcache.NewLoteCache(loteStore, sesion, notifier)
	clienteCache := appcache.NewClienteCache(clienteStore, sesion, notifier)
	buscador := appcache.NewBuscadorClientes(clienteCache, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		LoteCache:    loteCache,
		ClienteCache: clienteCache,
		Buscador:     buscador,
		LocalStore:   local,
		Sesion:       sesion,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Cerrar los caches antes de apagar: las respuestas remotas que
	// resuelvan durante el apagado se descartan en lugar de aplicarse.
	loteCache.Cerrar()
	clienteCache.Cerrar()

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
