package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "underwriting_service/docs" // swagger spec registration
	"underwriting_service/internal/adapter/http/handlers"
	"underwriting_service/internal/adapter/http/middleware"
	"underwriting_service/internal/adapter/persistence/repository"
	"underwriting_service/internal/config"
	"underwriting_service/internal/infrastructure/cache"
	"underwriting_service/internal/infrastructure/database"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/infrastructure/payments"
	"underwriting_service/internal/usecase"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterOptions struct {
	CORSAllowOrigins []string
	Idempotency      cache.IdempotencyStore
	IdempotencyTTL   time.Duration
	// TraceService enables otelgin spans under this service name when set.
	TraceService string
}

// NewRouter builds the gin engine: middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, opts RouterOptions, log *logger.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, h)
	addPaymentRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, opts RouterOptions, log *logger.Logger) {
	log = logger.OrNop(log)
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "panic", fmt.Sprint(recovered), "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if opts.TraceService != "" {
		router.Use(otelgin.Middleware(opts.TraceService))
	}
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(opts.CORSAllowOrigins))
	if opts.Idempotency != nil {
		router.Use(middleware.Idempotency(opts.Idempotency, opts.IdempotencyTTL, log))
	}
}

// App is the wired service plus whatever must be closed on shutdown.
type App struct {
	Router  *gin.Engine
	closers []func() error
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// Build wires stores, providers, usecases and handlers from cfg.
func Build(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	log = logger.OrNop(log)
	app := &App{}

	proposals, artifacts, err := newStores(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	secret := cfg.PaymentTokenSecret
	if secret == "" {
		if cfg.StoreDriver != config.StoreMemory {
			return nil, errors.New("PAYMENT_TOKEN_SECRET is required")
		}
		secret = uuid.NewString()
		log.Warn("PAYMENT_TOKEN_SECRET unset, using an ephemeral secret; QR links die with the process")
	}
	tokens, err := payments.NewJWTCapabilityTokens(secret)
	if err != nil {
		return nil, err
	}

	var links interfaces.IPaymentLinkProvider
	provider, err := payments.NewLinkProvider(payments.LinkProviderOptions{
		Provider:            cfg.PaymentLinkProvider,
		Mock:                cfg.PaymentGatewayMock,
		WorkerURL:           cfg.PaymentLinkWorkerURL,
		WorkerRatePerSecond: cfg.PaymentLinkRate,
		Timeout:             cfg.PaymentLinkTimeout,
		MercadoPagoToken:    cfg.MercadoPagoToken,
	}, log)
	if err != nil {
		log.Warn("payment link provider not configured", "error", err)
	} else {
		links = provider
	}

	qr := payments.QREncoder{}

	lifecycle := usecase.NewLifecycleUseCase(proposals, usecase.LifecycleOptions{
		StoreTimeout:            cfg.StoreTimeout,
		AllowIssueBeforePayment: cfg.PolicyIssueBeforePayment,
	}, log)
	bridge := usecase.NewPaymentBridgeUseCase(proposals, artifacts, lifecycle, tokens, qr, links, usecase.PaymentBridgeOptions{
		PortalURL:      cfg.CustomerPortalURL,
		TokenTTL:       cfg.PaymentTokenTTL,
		AuthCodeLength: cfg.AuthCodeLength,
		StoreTimeout:   cfg.StoreTimeout,
		LinkTimeout:    cfg.PaymentLinkTimeout,
	}, log)
	decision := usecase.NewDecisionUseCase(proposals, lifecycle, bridge, cfg.StoreTimeout, log)
	intake := usecase.NewProposalUseCase(proposals, artifacts, cfg.StoreTimeout, log)

	idem, closeIdem, err := newIdempotencyStore(cfg, log)
	if err != nil {
		return nil, err
	}
	if closeIdem != nil {
		app.closers = append(app.closers, closeIdem)
	}

	opts := RouterOptions{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		Idempotency:      idem,
		IdempotencyTTL:   cfg.IdempotencyTTL,
	}
	if cfg.OTelEnabled {
		opts.TraceService = cfg.OTelServiceName
	}

	app.Router = NewRouter(Handlers{
		Proposals: handlers.NewProposalHandler(intake, log),
		Decisions: handlers.NewDecisionHandler(decision, qr, log),
		Lifecycle: handlers.NewLifecycleHandler(lifecycle),
		Payments:  handlers.NewPaymentHandler(bridge, log),
	}, opts, log)
	return app, nil
}

func newStores(ctx context.Context, cfg config.Config, log *logger.Logger) (interfaces.IProposalRepository, interfaces.IPaymentArtifactRepository, error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn("using in-memory store, data is lost on restart")
		store := repository.NewMemoryStore()
		return store, store, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
	if err != nil {
		return nil, nil, fmt.Errorf("dynamodb: %w", err)
	}
	tables := repository.Tables{Proposals: cfg.ProposalsTable, Artifacts: cfg.PaymentArtifactsTable}
	return repository.NewProposalDynamoRepository(ddb, tables), repository.NewPaymentArtifactDynamoRepository(ddb, tables), nil
}

func newIdempotencyStore(cfg config.Config, log *logger.Logger) (cache.IdempotencyStore, func() error, error) {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryStore(), nil, nil
	}
	rs, err := cache.NewRedisStore(cfg.RedisAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	log.Info("idempotency store ready", "redis_addr", cfg.RedisAddr)
	return rs, rs.Close, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	log = logger.OrNop(log)
	app, err := Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("shutdown close failed", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("underwriting service listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
