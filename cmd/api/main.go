package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/database/postgres"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/integrator/fieldapp"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/integrator/fieldapp/fieldappclient"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/repository"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/api"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/scheduler"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/alerting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/authenticating"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	activityRepo := repository.NewActivityRepository(pgConn)
	goalsRepo := repository.NewGoalsRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	fieldAppClient := fieldappclient.NewClient(cfg)
	fieldAppIntegrator := fieldapp.New(cfg, fieldAppClient)

	reporter := reporting.NewService(activityRepo, goalsRepo, cfg)
	defer reporter.Close()

	alertEvaluator := alerting.NewService(activityRepo, goalsRepo, alertRepo)

	activitySyncService := scheduler.NewActivitySyncService(
		activityRepo,
		fieldAppIntegrator,
		reporter,
		cfg,
	)

	alertSyncService := scheduler.NewAlertSyncService(
		alertEvaluator,
		cfg,
	)

	if err := activitySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de sincronización de actividades")
	} else {
		logrus.Info("Agendador de sincronización de actividades iniciado con éxito")
	}

	if err := alertSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de reevaluación de alertas")
	} else {
		logrus.Info("Agendador de reevaluación de alertas iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		reporter,
		alertEvaluator,
		authenticator,
		activitySyncService,
		alertSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger define el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
