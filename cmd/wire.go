package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/qoocca/parent-pay/internal/adapters/api"
	"github.com/qoocca/parent-pay/internal/adapters/credentials"
	renderreceipts "github.com/qoocca/parent-pay/internal/adapters/render/receipts"
	"github.com/qoocca/parent-pay/internal/application"
	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/notify"
	"github.com/qoocca/parent-pay/internal/ports"
)

const (
	configName     = "config"
	configType     = "toml"
	configDirName  = ".parentpay"
	baseURLKey     = "api.base_url"
	httpTimeoutKey = "api.timeout"

	defaultBaseURL     = "https://api.qoocca.com"
	defaultHTTPTimeout = 30 * time.Second
)

type app struct {
	creds           *credentials.Manager
	auth            *application.AuthService
	receipts        *application.ReceiptService
	payments        *application.PaymentService
	pushTokens      *application.PushTokenService
	receiver        *notify.Receiver
	receiptRenderer func([]domain.Receipt, renderreceipts.RenderOptions) string
	now             func() time.Time
}

func wireApp() (*app, error) {
	cfg := viper.New()

	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(baseURLKey, envOrDefault("PARENTPAY_API_BASE_URL", defaultBaseURL))
	cfg.SetDefault(httpTimeoutKey, defaultHTTPTimeout)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	creds := credentials.NewManager(configDir)
	if err := creds.MigrateLegacyIfNeeded(); err != nil {
		log.Warn().Err(err).Msg("legacy session migration failed")
	}

	client := api.NewClient(cfg.GetString(baseURLKey), &http.Client{
		Timeout: cfg.GetDuration(httpTimeoutKey),
	})

	dedup := notify.NewDeduplicator(ports.SystemClock{})

	return &app{
		creds:           creds,
		auth:            application.NewAuthService(api.NewAuthRepository(client)),
		receipts:        application.NewReceiptService(api.NewReceiptRepository(client)),
		payments:        application.NewPaymentService(api.NewPaymentRepository(client)),
		pushTokens:      application.NewPushTokenService(api.NewPushTokenRepository(client)),
		receiver:        notify.NewReceiver(dedup, terminalNotifier{}),
		receiptRenderer: renderreceipts.Render,
		now:             time.Now,
	}, nil
}

func resolveConfigDir() (string, error) {
	if dir := os.Getenv("PARENTPAY_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDirName), nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
