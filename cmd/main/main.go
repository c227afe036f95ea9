package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"farmtrade-main/internal/app"
	"farmtrade-main/internal/cart"
	elasticService "farmtrade-main/internal/elastic_search"
	"farmtrade-main/internal/etl"
	handlersAdmin "farmtrade-main/internal/handlers/admin"
	handlersCart "farmtrade-main/internal/handlers/cart"
	handlersOrder "farmtrade-main/internal/handlers/order"
	handlersProduct "farmtrade-main/internal/handlers/product"
	handlersUser "farmtrade-main/internal/handlers/user"
	"farmtrade-main/internal/kafka"
	"farmtrade-main/internal/middleware"
	"farmtrade-main/internal/order"
	"farmtrade-main/internal/product"
	"farmtrade-main/internal/session"
	"farmtrade-main/internal/user"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

const (
	cfgPath      = "config/config.yaml"
	RedisAddr    = "redis:6379"
	ElasticAddr  = "http://elasticsearch:9200"
	KafkaBrokers = "kafka:9092"
	KafkaTopic   = "user-events"
)

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init db
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("error to database start: %v", err)
	}

	db.SetMaxOpenConns(c.MaxOpenConns)
	if err := db.Ping(); err != nil {
		logger.Infof("Failed to get response to ping: %v", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     RedisAddr,
		Password: "",
		DB:       0, // стандартная БД
	})

	// init elasticsearch
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{ElasticAddr},
	})
	if err != nil {
		logger.Fatalf("error to create elasticsearch client: %v", err)
	}

	elastic := elasticService.NewService(esClient, logger, c.CfgES.Index)
	if err := elastic.EnsureIndex(context.Background()); err != nil {
		logger.Warnf("failed to ensure elasticsearch index: %v", err)
	}

	// init kafka producer
	eventProducer := kafka.NewProducer([]string{KafkaBrokers}, KafkaTopic, logger)

	// init repository
	userRepository := user.NewUserDBRepository(db, logger)
	sessionRepository := session.NewSessionRepository(redisClient, logger, c.Secret, c.SessionDuration)
	productRepository := product.NewProductDBRepository(db, logger)
	orderRepository := order.NewOrderDBRepository(db, logger)
	// корзина живёт ровно столько же, сколько сессия
	cartRepository := cart.NewCartRedisRepository(redisClient, logger, c.SessionDuration)

	// init ETL pipeline: переносит новые товары в поисковый индекс
	pipeline := etl.NewPipeline(
		etl.NewPostgresExtractor(db, logger),
		etl.NewTransformer(logger),
		etl.NewElasticLoader(elastic, logger, db),
		logger,
		c.ETLInterval,
	)
	go pipeline.Run(context.Background())

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)
	r.Handle("/metrics", promhttp.Handler())

	// init handlers
	userHandlers := handlersUser.NewUserHandler(logger, userRepository, sessionRepository, cartRepository)
	productHandlers := handlersProduct.NewProductHandler(logger, productRepository, elastic, eventProducer)
	orderHandlers := handlersOrder.NewOrderHandler(logger, orderRepository)
	cartHandlers := handlersCart.NewCartHandler(logger, cartRepository, productRepository, orderRepository, eventProducer)
	adminHandlers := handlersAdmin.NewAdminHandler(logger, userRepository, orderRepository, productRepository)

	// Ручки требующие авторизации
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.Auth(sessionRepository, logger))

	authRouter.HandleFunc("/user/{id}", userHandlers.ChangeProfile).Methods("PUT")
	authRouter.HandleFunc("/user/logout", userHandlers.Logout).Methods("POST")

	authRouter.HandleFunc("/cart", cartHandlers.GetCart).Methods("GET")
	authRouter.HandleFunc("/cart", cartHandlers.Clear).Methods("DELETE")
	authRouter.HandleFunc("/cart/item/{productID}", cartHandlers.AddItem).Methods("POST")
	authRouter.HandleFunc("/cart/item/{productID}", cartHandlers.UpdateItem).Methods("PUT")
	authRouter.HandleFunc("/cart/item/{productID}", cartHandlers.RemoveItem).Methods("DELETE")

	authRouter.HandleFunc("/order/{id}", orderHandlers.GetByID).Methods("GET")

	// Ручки только для ритейлеров: заказы оформляет и отменяет покупатель
	retailerRouter := authRouter.NewRoute().Subrouter()
	retailerRouter.Use(middleware.RequireRole(user.RoleRetailer, logger))

	retailerRouter.HandleFunc("/cart/checkout", cartHandlers.Checkout).Methods("POST")
	retailerRouter.HandleFunc("/order/{id}/cancel", orderHandlers.Cancel).Methods("POST")
	retailerRouter.HandleFunc("/orders/my", orderHandlers.GetMy).Methods("GET")

	// Ручки только для фермеров
	farmerRouter := authRouter.NewRoute().Subrouter()
	farmerRouter.Use(middleware.RequireRole(user.RoleFarmer, logger))

	farmerRouter.HandleFunc("/product", productHandlers.Create).Methods("POST")
	farmerRouter.HandleFunc("/product/{id}", productHandlers.Update).Methods("PUT")
	farmerRouter.HandleFunc("/product/{id}", productHandlers.Delete).Methods("DELETE")
	farmerRouter.HandleFunc("/products/my", productHandlers.GetMy).Methods("GET")
	farmerRouter.HandleFunc("/orders/farmer", orderHandlers.GetForFarmer).Methods("GET")
	farmerRouter.HandleFunc("/order/{id}/status", orderHandlers.UpdateStatus).Methods("PUT")

	// Ручки только для админов
	adminRouter := authRouter.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.RequireRole(user.RoleAdmin, logger))

	adminRouter.HandleFunc("/users", adminHandlers.ListUsers).Methods("GET")
	adminRouter.HandleFunc("/orders", adminHandlers.ListOrders).Methods("GET")
	adminRouter.HandleFunc("/product/{id}", adminHandlers.DeleteProduct).Methods("DELETE")

	// Ручки НЕ требующие авторизации
	noAuthRouter := r.PathPrefix("/api").Subrouter()

	noAuthRouter.HandleFunc("/user/{id}", userHandlers.Info).Methods("GET")
	noAuthRouter.HandleFunc("/user/register", userHandlers.Register).Methods("POST")
	noAuthRouter.HandleFunc("/user/login", userHandlers.Login).Methods("POST")

	noAuthRouter.HandleFunc("/products", productHandlers.GetAll).Methods("GET")
	noAuthRouter.HandleFunc("/products/search", productHandlers.Search).Methods("GET")
	noAuthRouter.HandleFunc("/product/{id}", productHandlers.GetByID).Methods("GET")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		panic("can't start server: " + err.Error())
	}
}
