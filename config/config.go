package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"

	defaultRetryBaseDelay     = 2 * time.Second
	defaultRetryMaxDelay      = 30 * time.Second
	defaultRetryMaxAttempts   = 6
	defaultSubscribeTimeout   = 10 * time.Second
	defaultCacheStaleTime     = 30 * time.Second
	defaultCancellationFee    = 2000
	defaultCommissionRate     = 0.10
	defaultDisputeWindowHours = 48
	defaultCurrency           = "AOA"
	defaultMaxConflictRetries = 3
	defaultNotifierPort       = 8081
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Realtime configuration for the service request / delivery change stream
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Cache configuration for the keyed query store
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// PubSub configuration for row change publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Notifier configuration for the push worker process
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Storage configuration for uploaded files
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Payments configuration for wallet top-ups
	Payments *PaymentsConfig `json:"payments" yaml:"payments"`

	// Mail configuration for support ticket e-mails
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// QRCode configuration for delivery pickup codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Platform holds the defaults used until an admin saves platform settings
	Platform *PlatformConfig `json:"platform" yaml:"platform"`

	Wallet *WalletConfig `json:"wallet" yaml:"wallet"`
}

type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	MinPasswordLen  int           `json:"minPasswordLen" yaml:"minPasswordLen"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RealtimeConfig defines retry behaviour of realtime sessions
type RealtimeConfig struct {
	// Provider of the change feed: "memory" (in-process) or "postgres" (LISTEN/NOTIFY)
	Provider string `json:"provider" yaml:"provider"`

	// Channel used for LISTEN/NOTIFY when provider is postgres
	NotifyChannel string `json:"notifyChannel" yaml:"notifyChannel"`

	RetryBaseDelay   time.Duration `json:"retryBaseDelay" yaml:"retryBaseDelay"`
	RetryMaxDelay    time.Duration `json:"retryMaxDelay" yaml:"retryMaxDelay"`
	MaxRetries       int           `json:"maxRetries" yaml:"maxRetries"`
	SubscribeTimeout time.Duration `json:"subscribeTimeout" yaml:"subscribeTimeout"`

	// Heartbeat interval of the SSE stream
	Heartbeat time.Duration `json:"heartbeat" yaml:"heartbeat"`
}

// NotifierConfig defines where the notifier worker listens for pushes
type NotifierConfig struct {
	Port int `json:"port" yaml:"port"`
}

// CacheConfig defines the keyed query store behaviour
type CacheConfig struct {
	StaleTime time.Duration `json:"staleTime" yaml:"staleTime"`
}

// PubSubConfig defines Pub/Sub configuration for row change publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP push or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the notifier worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// StorageConfig defines the blob bucket used for uploads
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL, e.g. file:///var/data, mem://, gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// SignedURLTTL is the lifetime of download URLs handed to clients
	SignedURLTTL time.Duration `json:"signedUrlTtl" yaml:"signedUrlTtl"`

	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`

	// PublicBaseURL prefixes the API download route for buckets that cannot sign URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// PaymentsConfig defines the payment gateway used for wallet top-ups
type PaymentsConfig struct {
	// Provider is "mercadopago" or "mock"
	Provider    string `json:"provider" yaml:"provider"`
	AccessToken string `json:"accessToken" yaml:"accessToken"`
}

// MailConfig defines outbound e-mail through Amazon SES
type MailConfig struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	Region          string `json:"region" yaml:"region"`
	From            string `json:"from" yaml:"from"`
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PlatformConfig defines default platform settings
type PlatformConfig struct {
	CancellationFee      int64   `json:"cancellationFee" yaml:"cancellationFee"`
	CommissionRate       float64 `json:"commissionRate" yaml:"commissionRate"`
	DisputeWindowHours   int     `json:"disputeWindowHours" yaml:"disputeWindowHours"`
	MinTechnicianBalance int64   `json:"minTechnicianBalance" yaml:"minTechnicianBalance"`
	Currency             string  `json:"currency" yaml:"currency"`
}

// WalletConfig defines wallet update behaviour
type WalletConfig struct {
	MaxConflictRetries int `json:"maxConflictRetries" yaml:"maxConflictRetries"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is aligned with the YAML keys, e.g. REALTIME_RETRYBASEDELAY -> realtime.retryBaseDelay
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is fine; the variables may come from the environment itself.
	_ = godotenv.Load(".env")

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if len(cfg.HTTP.AllowOrigins) == 0 {
		cfg.HTTP.AllowOrigins = []string{"*"}
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills optional sections so that callers never deal with nil pointers.
func (c *Config) ApplyDefaults() {
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.AccessTokenTTL <= 0 {
		c.Auth.AccessTokenTTL = 15 * time.Minute
	}
	if c.Auth.RefreshTokenTTL <= 0 {
		c.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if c.Auth.MinPasswordLen <= 0 {
		c.Auth.MinPasswordLen = 8
	}

	if c.Realtime == nil {
		c.Realtime = &RealtimeConfig{}
	}
	if c.Realtime.Provider == "" {
		c.Realtime.Provider = "memory"
	}
	if c.Realtime.NotifyChannel == "" {
		c.Realtime.NotifyChannel = "row_changes"
	}
	if c.Realtime.RetryBaseDelay <= 0 {
		c.Realtime.RetryBaseDelay = defaultRetryBaseDelay
	}
	if c.Realtime.RetryMaxDelay <= 0 {
		c.Realtime.RetryMaxDelay = defaultRetryMaxDelay
	}
	if c.Realtime.MaxRetries <= 0 {
		c.Realtime.MaxRetries = defaultRetryMaxAttempts
	}
	if c.Realtime.SubscribeTimeout <= 0 {
		c.Realtime.SubscribeTimeout = defaultSubscribeTimeout
	}
	if c.Realtime.Heartbeat <= 0 {
		c.Realtime.Heartbeat = 25 * time.Second
	}

	if c.Cache == nil {
		c.Cache = &CacheConfig{}
	}
	if c.Cache.StaleTime <= 0 {
		c.Cache.StaleTime = defaultCacheStaleTime
	}

	if c.Notifier == nil {
		c.Notifier = &NotifierConfig{}
	}
	if c.Notifier.Port <= 0 {
		c.Notifier.Port = defaultNotifierPort
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.BucketURL == "" {
		c.Storage.BucketURL = "mem://"
	}
	if c.Storage.SignedURLTTL <= 0 {
		c.Storage.SignedURLTTL = 15 * time.Minute
	}
	if c.Storage.MaxUploadBytes <= 0 {
		c.Storage.MaxUploadBytes = 5 << 20
	}

	if c.Platform == nil {
		c.Platform = &PlatformConfig{CancellationFee: defaultCancellationFee}
	}
	if c.Platform.CommissionRate <= 0 {
		c.Platform.CommissionRate = defaultCommissionRate
	}
	if c.Platform.DisputeWindowHours <= 0 {
		c.Platform.DisputeWindowHours = defaultDisputeWindowHours
	}
	if c.Platform.Currency == "" {
		c.Platform.Currency = defaultCurrency
	}

	if c.Wallet == nil {
		c.Wallet = &WalletConfig{}
	}
	if c.Wallet.MaxConflictRetries <= 0 {
		c.Wallet.MaxConflictRetries = defaultMaxConflictRetries
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
