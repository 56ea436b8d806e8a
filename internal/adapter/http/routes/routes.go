package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "paintshop_lots/docs" // swagger spec
	"paintshop_lots/internal/adapter/http/handlers"
	"paintshop_lots/internal/adapter/http/middleware"
	"paintshop_lots/internal/config"
	"paintshop_lots/internal/infrastructure/payments"
	"paintshop_lots/internal/infrastructure/realtime"
	"paintshop_lots/internal/usecase"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Lots        *handlers.LotHandler
	Scheduling  *handlers.SchedulingHandler
	Settlements *handlers.SettlementHandler
	History     *handlers.HistoryHandler
	Finance     *handlers.FinanceHandler
	Obligations *handlers.ObligationHandler
	Feed        *handlers.FeedHandler
}

// Run wires the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	hub := realtime.NewHub()
	go hub.Run(ctx)
	feed := realtime.NewFeed(hub, newRedisBridge(ctx, cfg, hub))

	var verifier interfaces.IPaymentVerifier
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured, provider payment ids will be rejected")
	} else {
		verifier = mpGateway
	}

	h, closeHandlers := newHandlers(cfg, repos, hub, feed, verifier)
	defer closeHandlers()
	router := NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	return srv.Shutdown(shutdownCtx)
}

// newHandlers builds the use cases over repos and wraps them in handlers. The
// returned func stops pending settlement countdowns.
func newHandlers(cfg *config.Config, repos repositories, hub *realtime.Hub, feed interfaces.IChangeFeed, verifier interfaces.IPaymentVerifier) (Handlers, func()) {
	lotUseCase := usecase.NewLotUseCase(repos.lots, repos.history, feed)
	schedulingUseCase := usecase.NewSchedulingUseCase(repos.lots, feed, cfg.StationCount)
	historyUseCase := usecase.NewHistoryUseCase(repos.lots, repos.history, feed)
	promptUseCase := usecase.NewSettlementPromptUseCase(lotUseCase, realtime.NewFinanceEntryNotifier(feed), feed, cfg.SettlementPromptTimeout())
	ledgerUseCase := usecase.NewLedgerUseCase(repos.direct, repos.converted, lotUseCase, verifier, feed)
	obligationUseCase := usecase.NewObligationUseCase(repos.obligations, repos.converted, lotUseCase, feed)

	return Handlers{
		Lots:        handlers.NewLotHandler(lotUseCase, schedulingUseCase, promptUseCase),
		Scheduling:  handlers.NewSchedulingHandler(schedulingUseCase),
		Settlements: handlers.NewSettlementHandler(promptUseCase),
		History:     handlers.NewHistoryHandler(historyUseCase),
		Finance:     handlers.NewFinanceHandler(ledgerUseCase),
		Obligations: handlers.NewObligationHandler(obligationUseCase),
		Feed:        handlers.NewFeedHandler(hub),
	}, promptUseCase.Close
}

// NewRouter mounts middlewares, docs, metrics and the /v1 API.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLotRoutes(v1, h.Lots, h.Scheduling)
	addSettlementRoutes(v1, h.Settlements)
	addHistoryRoutes(v1, h.History)
	addFinanceRoutes(v1, h.Finance, h.Obligations)
	v1.GET(PathFeed, h.Feed.Subscribe)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ActorRole())
}

func newRedisBridge(ctx context.Context, cfg *config.Config, hub *realtime.Hub) *realtime.RedisBridge {
	if cfg.RedisURL == "" {
		return nil
	}
	rdb, err := realtime.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, change feed stays local to this replica")
		return nil
	}
	go func() {
		<-ctx.Done()
		_ = rdb.Close()
	}()
	bridge := realtime.NewRedisBridge(rdb, cfg.RealtimeChannel, hub)
	go bridge.Run(ctx)
	return bridge
}
