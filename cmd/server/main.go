package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"onboarding-backend/internal/api/routes"
	"onboarding-backend/internal/auth"
	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/config"
	"onboarding-backend/internal/database"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"
	"onboarding-backend/internal/scheduler"
	"onboarding-backend/internal/service"
	"onboarding-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	_ "onboarding-backend/docs" // This is needed for swag
)

//	@title			Enterprise Onboarding Backend API
//	@version		1.0
//	@description	Registers enterprises and drives their onboarding: sub-domain, TLS certificate, ingress, DID document and participant credential.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.AppName, cfg.Environment, cfg.OTelEndpoint)
	if err != nil {
		logrus.WithError(err).Warn("Tracing disabled")
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	awsCfg, err := clients.LoadAWSConfig(ctx, clients.AWSOptions{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.AWSEndpoint,
	})
	if err != nil {
		logrus.Fatal("Failed to load AWS configuration:", err)
	}
	dns := clients.NewRoute53DNS(awsCfg)
	store := clients.NewS3Store(awsCfg, cfg.S3Bucket, cfg.AWSEndpoint)

	orchestrator, err := clients.NewKubernetesOrchestrator(cfg.K8sBasePath, cfg.K8sToken, cfg.K8sInsecureSkipVerify)
	if err != nil {
		logrus.Fatal("Failed to initialize kubernetes client:", err)
	}

	fs := afero.NewOsFs()
	ingressTemplate, err := clients.LoadIngressTemplate(fs, cfg.K8sIngressTemplatePath, cfg.K8sServiceName)
	if err != nil {
		logrus.Fatal("Failed to load ingress template:", err)
	}

	ca := clients.NewACMEAuthority(cfg.ACMEDirectoryURL, cfg.ACMEContactEmail, nil)
	signer := clients.NewSignerClient(cfg.SignerHost, cfg.SignerTimeout)
	pcm := clients.NewPCMClient(cfg.PCMHost, cfg.SignerTimeout)

	// Redis shares job locks between replicas; a single instance can do without
	var redisClient redis.UniversalClient
	var locker scheduler.JobLocker
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		locker = scheduler.NewRedisLocker(redisClient)
	} else {
		logrus.Info("REDIS_ADDR not set, using in-process job locks")
		locker = scheduler.NewMemoryLocker()
	}

	enterpriseRepo := repository.NewEnterpriseRepository(db)
	certificateRepo := repository.NewEnterpriseCertificateRepository(db)
	credentialRepo := repository.NewEnterpriseCredentialRepository(db)
	jobRepo := repository.NewScheduledJobRepository(db)

	schedulerOpts := scheduler.Options{
		InitialDelay:   cfg.SchedulerInitialDelay,
		RepeatInterval: cfg.SchedulerRepeatInterval,
		PollInterval:   cfg.SchedulerPollInterval,
		LeaseDuration:  cfg.SchedulerLeaseDuration,
		Workers:        cfg.SchedulerWorkers,
		BatchSize:      cfg.SchedulerBatchSize,
	}
	jobScheduler := scheduler.NewScheduler(jobRepo, schedulerOpts)

	domainStep := service.NewDomainStep(dns, cfg.HostedZoneID, cfg.ServerIP, cfg.DNSPropagationDelay)
	steps := service.Steps{
		Domain: domainStep,
		Certificate: service.NewCertificateStep(ca, domainStep, store, certificateRepo, fs, service.CertificateOptions{
			TempDir:           cfg.TempDir,
			ChallengeAttempts: cfg.ACMEChallengeAttempts,
			ChallengeInterval: cfg.ACMEChallengeInterval,
			OrderAttempts:     cfg.ACMEOrderAttempts,
			OrderInterval:     cfg.ACMEOrderInterval,
		}),
		Ingress: service.NewIngressStep(store, certificateRepo, orchestrator, ingressTemplate, cfg.K8sNamespace, fs, cfg.TempDir),
		Identity: service.NewIdentitySteps(signer, pcm, store, credentialRepo, service.IdentityOptions{
			AppName:                    cfg.AppName,
			ParticipantCredentialDefID: cfg.PCMParticipantCredentialDefID,
			PresignedKeyURLTTL:         cfg.PresignedKeyURLTTL,
		}),
	}

	validate := validator.New()
	if err := service.RegisterValidations(validate); err != nil {
		logrus.Fatal("Failed to register validations:", err)
	}

	onboardingService := service.NewOnboardingService(enterpriseRepo, jobScheduler, steps, cfg.CertificateRecoveryRepeat)
	registrationService := service.NewRegistrationService(enterpriseRepo, pcm, jobScheduler, validate, service.RegistrationOptions{
		AppName:                   cfg.AppName,
		BaseDomain:                cfg.BaseDomain,
		MembershipCredentialDefID: cfg.PCMMembershipCredentialDefID,
	})
	enterpriseService := service.NewEnterpriseService(enterpriseRepo, jobRepo, credentialRepo, store)

	authConfig := auth.NewAuthConfig(cfg)
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		logrus.Fatal("Failed to initialize auth service:", err)
	}

	router := routes.SetupRoutes(cfg, &routes.Services{
		DB:           db,
		Redis:        redisClient,
		Registration: registrationService,
		Enterprises:  enterpriseService,
		Onboarding:   onboardingService,
		Auth:         authService,
	})

	dispatcher := scheduler.NewDispatcher(jobRepo, onboardingService, locker, schedulerOpts)
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Start(ctx)
	}()

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	<-dispatcherDone

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close redis client")
		}
	}
	if err := database.Close(db); err != nil {
		logrus.WithError(err).Warn("Failed to close database")
	}
	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("Failed to flush traces")
		}
	}
}
