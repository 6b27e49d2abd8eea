package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	bookingDraftHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/booking_draft"
	cancelBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/confirm_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_booking"
	getBookingDatesHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_booking_dates"
	getBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_bookings"
	getCatalogHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_catalog"
	getServiceMastersHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_service_masters"
	webhookProxyHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/webhook_proxy"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/config"
	bookingStore "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/amqpsink"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/crmwebhook"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/telegram"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	getAvailableSlotsUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
	submitBookingUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BeautyBooking...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Backend)

	// Инициализируем метрики (если включены). nil безопасен для всех методов
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог студии
	studioCatalog, err := catalog.Load(cfg.Catalog.File, time.Now())
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded (file=%q, seeds=%d)", cfg.Catalog.File, len(studioCatalog.Seeds()))

	engine, err := availability.NewEngine(studioCatalog.Schedule(), studioCatalog.Seeds())
	if err != nil {
		log.Fatal("Failed to initialize availability engine: %v", err)
	}

	// Хранилище записей
	store, closeStore := openStore(cfg, log)
	defer closeStore()

	// Менеджер записей, восстанавливаем сохранённую коллекцию
	manager := bookingsService.NewManager(
		store,
		studioCatalog,
		engine,
		log,
		bookingsService.WithMetrics(metricsCollector),
	)
	manager.Load(context.Background())

	// Возможности хоста Telegram
	identity, notifier := newTelegram(cfg.Telegram, log)

	// Получатели подтверждённых записей
	var sinks []submitBookingUC.DeliverySink
	if cfg.Delivery.Webhook.Enabled {
		sinks = append(sinks, crmwebhook.NewClient(cfg.Delivery.Webhook.URL, config.Seconds(cfg.Delivery.Timeout), log))
	}
	if cfg.Delivery.AMQP.Enabled {
		sinks = append(sinks, amqpsink.NewPublisher(cfg.Delivery.AMQP.URL, cfg.Delivery.AMQP.Queue, log))
	}
	log.Info("Delivery sinks configured: %d", len(sinks))

	proxyClient := crmwebhook.NewClient(cfg.Proxy.UpstreamURL, config.Seconds(cfg.Proxy.Timeout), log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(studioCatalog, manager, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(manager, sinks, notifier, metricsCollector, log).
		WithDeliveryTimeout(config.Seconds(cfg.Delivery.Timeout))

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(studioCatalog, log)
	getServiceMasters := getServiceMastersHandler.NewHandler(studioCatalog, log)
	getBookingDates := getBookingDatesHandler.NewHandler(studioCatalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookingDraft := bookingDraftHandler.NewHandler(manager, log)
	confirmBooking := confirmBookingHandler.NewHandler(submitBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(manager, log)
	getBooking := getBookingHandler.NewHandler(manager, log)
	cancelBooking := cancelBookingHandler.NewHandler(manager, log)
	webhookProxy := webhookProxyHandler.NewHandler(proxyClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Прокси к CRM: любые методы, CORS на каждом ответе
	r.Handle("/api/webhook", middleware.CORS(http.HandlerFunc(webhookProxy.Handle)))

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity(identity, log))

	// --- Каталог ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/masters", getServiceMasters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dates", getBookingDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters/{masterId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Черновик записи ---
	api.HandleFunc("/draft", bookingDraft.Start).Methods(http.MethodPost)
	api.HandleFunc("/draft", bookingDraft.Get).Methods(http.MethodGet)
	api.HandleFunc("/draft", bookingDraft.Reset).Methods(http.MethodDelete)
	api.HandleFunc("/draft/master", bookingDraft.SelectMaster).Methods(http.MethodPatch)
	api.HandleFunc("/draft/date", bookingDraft.SelectDate).Methods(http.MethodPatch)
	api.HandleFunc("/draft/time", bookingDraft.SelectTime).Methods(http.MethodPatch)
	api.HandleFunc("/draft/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Мои записи ---
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/upcoming-count", getBookings.Count).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся фоновых доставок в CRM и очередь
	submitBookingUseCase.Wait()

	log.Info("Server stopped gracefully")
}

// openStore выбирает хранилище записей по storage.backend
func openStore(cfg *config.Config, log *logger.Logger) (bookingsService.BookingStore, func()) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(config.Seconds(cfg.Database.ConnMaxLifetime))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		store := bookingStore.NewPostgresStore(db, cfg.Storage.Namespace)
		if err := store.Migrate(ctx); err != nil {
			log.Fatal("Failed to migrate bookings table: %v", err)
		}

		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return store, func() { _ = db.Close() }

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		return bookingStore.NewRedisStore(client, cfg.Storage.Namespace), func() { _ = client.Close() }

	default:
		log.Info("Using in-memory booking storage, bookings are lost on restart")
		return bookingStore.NewMemoryStore(), func() {}
	}
}

// newTelegram бот при наличии токена, иначе локальные заглушки
func newTelegram(cfg config.TelegramConfig, log *logger.Logger) (middleware.UserIdentitySource, submitBookingUC.HapticNotifier) {
	if cfg.LocalMode() {
		log.Info("Telegram: local mode, mock user id=%d", telegram.MockUser.ID)
		return telegram.LocalIdentity{}, telegram.NewLocalNotifier(log)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Error("Telegram: failed to initialize bot, falling back to local mode: %v", err)
		return telegram.LocalIdentity{}, telegram.NewLocalNotifier(log)
	}

	log.Info("Telegram: authorized as @%s", bot.Self.UserName)
	identity := telegram.NewInitDataValidator(cfg.BotToken, config.Seconds(cfg.InitMaxAge))
	notifier := telegram.NewBotNotifier(bot, time.Duration(cfg.RetryDelay)*time.Millisecond, log)
	return identity, notifier
}
