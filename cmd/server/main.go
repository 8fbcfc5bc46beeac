package main

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/go-petr/pet-wallet/internal/gatewaylogrepo"
	"github.com/go-petr/pet-wallet/internal/middleware"
	"github.com/go-petr/pet-wallet/internal/sessiondelivery"
	"github.com/go-petr/pet-wallet/internal/sessionrepo"
	"github.com/go-petr/pet-wallet/internal/sessionservice"
	"github.com/go-petr/pet-wallet/internal/transactiondelivery"
	"github.com/go-petr/pet-wallet/internal/transactionrepo"
	"github.com/go-petr/pet-wallet/internal/transactionservice"
	"github.com/go-petr/pet-wallet/internal/userdelivery"
	"github.com/go-petr/pet-wallet/internal/userrepo"
	"github.com/go-petr/pet-wallet/internal/userservice"
	"github.com/go-petr/pet-wallet/internal/walletdelivery"
	"github.com/go-petr/pet-wallet/internal/walletrepo"
	"github.com/go-petr/pet-wallet/internal/walletservice"
	"github.com/go-petr/pet-wallet/pkg/configpkg"
	"github.com/go-petr/pet-wallet/pkg/currencypkg"
	"github.com/go-petr/pet-wallet/pkg/tokenpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	server, err := createServer(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

func createServer(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*gin.Engine, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	walletRepo := walletrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	gatewayLogRepo := gatewaylogrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	walletService := walletservice.New(walletRepo, userService)
	transactionService := transactionservice.New(transactionRepo, walletRepo, userRepo, userService, gatewayLogRepo)

	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)
	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	walletHandler := walletdelivery.NewHandler(walletService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	server.POST("/users", userHandler.Register)
	server.POST("/users/login", userHandler.Login)
	server.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := server.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.GET("/users", userHandler.List)
	authRoutes.GET("/users/:id", userHandler.Get)
	authRoutes.POST("/users/:id/activate", userHandler.Activate)
	authRoutes.POST("/users/:id/freeze", userHandler.Freeze)
	authRoutes.POST("/users/:id/disable", userHandler.Disable)
	authRoutes.POST("/users/:id/close", userHandler.Close)

	authRoutes.POST("/wallets", walletHandler.Create)
	authRoutes.GET("/wallets", walletHandler.ListByUser)
	authRoutes.GET("/wallets/:id", walletHandler.Get)
	authRoutes.GET("/wallets/:id/balance", walletHandler.Balance)
	authRoutes.POST("/wallets/:id/activate", walletHandler.Activate)
	authRoutes.POST("/wallets/:id/freeze", walletHandler.Freeze)
	authRoutes.POST("/wallets/:id/close", walletHandler.Close)

	authRoutes.POST("/transactions/topup", transactionHandler.TopUp)
	authRoutes.POST("/transactions/pay", transactionHandler.MakePayment)
	authRoutes.GET("/transactions", transactionHandler.ListByWallet)
	authRoutes.GET("/transactions/recent", transactionHandler.ListRecent)
	authRoutes.GET("/transactions/refunds", transactionHandler.ListRefunds)
	authRoutes.GET("/transactions/:id", transactionHandler.Get)
	authRoutes.POST("/transactions/:id/refund", transactionHandler.Refund)
	authRoutes.POST("/transactions/:id/gateway-logs", transactionHandler.RecordGatewayLog)
	authRoutes.GET("/transactions/:id/gateway-logs", transactionHandler.ListGatewayLogs)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", currencypkg.ValidCurrency)
		if err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	return server, nil
}
