package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultNotificationWindow = 7 * 24 * time.Hour
	defaultSearchRadius       = 3000
	defaultPlaceCategory      = "parking"
	defaultMessageBody        = "A parking enforcement officer was reported at a lot you are watching. Check your car!"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// CORS lists the UI origins allowed to call the relay. "*" allows any origin.
	CORS CORSConfig `json:"cors" yaml:"cors"`

	// Store selects the subscription/marker backend: "firebase" or "memory".
	Store StoreConfig `json:"store" yaml:"store"`

	// Firebase configuration for the realtime database
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Twilio configuration for SMS delivery
	Twilio *TwilioConfig `json:"twilio" yaml:"twilio"`

	// SMS selects and tunes the delivery provider
	SMS SMSConfig `json:"sms" yaml:"sms"`

	// Places configuration for the nearby parking lookup
	Places *PlacesConfig `json:"places" yaml:"places"`

	// Notification configuration for counts and dispatch
	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// Map configuration for the viewer fallback position
	Map MapConfig `json:"map" yaml:"map"`

	// QRCode configuration for lot share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Web configuration for the SPA server
	Web *WebConfig `json:"web" yaml:"web"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CORSConfig defines the cross-origin policy for the relay
type CORSConfig struct {
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// StoreConfig defines which persistence backend is used
type StoreConfig struct {
	Provider string `json:"provider" yaml:"provider"`
}

// FirebaseConfig defines Firebase configuration for the realtime database
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	DatabaseURL     string `json:"databaseUrl" yaml:"databaseUrl"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// ServiceAccount is used when no credentials file is given. The fields
	// mirror the service account JSON document.
	ServiceAccount *ServiceAccountConfig `json:"serviceAccount" yaml:"serviceAccount"`

	// Web holds the public client configuration injected into the SPA.
	Web FirebaseWebConfig `json:"web" yaml:"web"`
}

// ServiceAccountConfig mirrors a Google service account key file
type ServiceAccountConfig struct {
	Type                string `json:"type" yaml:"type"`
	ProjectID           string `json:"project_id" yaml:"projectId"`
	PrivateKeyID        string `json:"private_key_id" yaml:"privateKeyId"`
	PrivateKey          string `json:"private_key" yaml:"privateKey"`
	ClientEmail         string `json:"client_email" yaml:"clientEmail"`
	ClientID            string `json:"client_id" yaml:"clientId"`
	AuthURI             string `json:"auth_uri" yaml:"authUri"`
	TokenURI            string `json:"token_uri" yaml:"tokenUri"`
	AuthProviderCertURL string `json:"auth_provider_x509_cert_url" yaml:"authProviderCertUrl"`
	ClientCertURL       string `json:"client_x509_cert_url" yaml:"clientCertUrl"`
}

// FirebaseWebConfig is the browser-side Firebase configuration
type FirebaseWebConfig struct {
	APIKey            string `json:"apiKey" yaml:"apiKey"`
	AuthDomain        string `json:"authDomain" yaml:"authDomain"`
	StorageBucket     string `json:"storageBucket" yaml:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId" yaml:"messagingSenderId"`
	AppID             string `json:"appId" yaml:"appId"`
}

// TwilioConfig defines Twilio API key credentials
type TwilioConfig struct {
	AccountSID   string `json:"accountSid" yaml:"accountSid"`
	APIKeySID    string `json:"apiKeySid" yaml:"apiKeySid"`
	APIKeySecret string `json:"apiKeySecret" yaml:"apiKeySecret"`
	PhoneNumber  string `json:"phoneNumber" yaml:"phoneNumber"`
}

// SMSConfig defines the SMS provider and its send limits
type SMSConfig struct {
	// Provider type: "twilio" for Twilio or "log" to only log messages
	Provider string `json:"provider" yaml:"provider"`

	// Maximum concurrent sends within one dispatch (0 = unlimited)
	MaxConcurrency int `json:"maxConcurrency" yaml:"maxConcurrency"`

	// Messages per second across all dispatches (0 = unlimited)
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`

	// Country code prefixed to 10-digit numbers before delivery
	DefaultCountryCode string `json:"defaultCountryCode" yaml:"defaultCountryCode"`
}

// PlacesConfig defines Google Places configuration
type PlacesConfig struct {
	APIKey         string  `json:"apiKey" yaml:"apiKey"`
	RadiusMeters   float64 `json:"radiusMeters" yaml:"radiusMeters"`
	Category       string  `json:"category" yaml:"category"`
	MaxResultCount int64   `json:"maxResultCount" yaml:"maxResultCount"`
}

// NotificationConfig defines the trailing count window and dispatch message
type NotificationConfig struct {
	Window      time.Duration `json:"window" yaml:"window"`
	MessageBody string        `json:"messageBody" yaml:"messageBody"`
}

// MapConfig defines the viewer fallback coordinate
type MapConfig struct {
	DefaultLat float64 `json:"defaultLat" yaml:"defaultLat"`
	DefaultLng float64 `json:"defaultLng" yaml:"defaultLng"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// WebConfig defines the SPA server configuration
type WebConfig struct {
	Port      int    `json:"port" yaml:"port"`
	PublicDir string `json:"publicDir" yaml:"publicDir"`
	RelayURL  string `json:"relayUrl" yaml:"relayUrl"`
	MapsKey   string `json:"mapsKey" yaml:"mapsKey"`
}

// legacyEnvKeys maps the flat variable names of older deployments
// onto config paths, so existing .env files keep working.
var legacyEnvKeys = map[string]string{
	"PORT":                              "http.port",
	"ORIGIN_URL":                        "cors.allowedOrigins",
	"TWILIO_ACCOUNT_SID":                "twilio.accountSid",
	"TWILIO_API_KEY_SID":                "twilio.apiKeySid",
	"TWILIO_API_KEY_SECRET":             "twilio.apiKeySecret",
	"TWILIO_PHONE_NUMBER":               "twilio.phoneNumber",
	"FIREBASE_DATABASE_URL":             "firebase.databaseUrl",
	"FIREBASE_TYPE":                     "firebase.serviceAccount.type",
	"FIREBASE_PROJECT_ID":               "firebase.serviceAccount.projectId",
	"FIREBASE_PRIVATE_KEY_ID":           "firebase.serviceAccount.privateKeyId",
	"FIREBASE_PRIVATE_KEY":              "firebase.serviceAccount.privateKey",
	"FIREBASE_CLIENT_EMAIL":             "firebase.serviceAccount.clientEmail",
	"FIREBASE_CLIENT_ID":                "firebase.serviceAccount.clientId",
	"FIREBASE_AUTH_URI":                 "firebase.serviceAccount.authUri",
	"FIREBASE_TOKEN_URI":                "firebase.serviceAccount.tokenUri",
	"FIREBASE_AUTH_PROVIDER_CERT_URL":   "firebase.serviceAccount.authProviderCertUrl",
	"FIREBASE_CLIENT_CERT_URL":          "firebase.serviceAccount.clientCertUrl",
	"VITE_MAPS_API_KEY":                 "web.mapsKey",
	"VITE_FIREBASE_API_KEY":             "firebase.web.apiKey",
	"VITE_FIREBASE_AUTH_DOMAIN":         "firebase.web.authDomain",
	"VITE_FIREBASE_STORAGE_BUCKET":      "firebase.web.storageBucket",
	"VITE_FIREBASE_MESSAGING_SENDER_ID": "firebase.web.messagingSenderId",
	"VITE_FIREBASE_APP_ID":              "firebase.web.appId",
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

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			if key, ok := legacyEnvKeys[k]; ok {
				return key, transformLegacyValue(key, v)
			}

			// Example: TWILIO_ACCOUNTSID -> twilio.accountSid
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
				mapstructure.StringToSliceHookFunc(","),
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
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Notification.Window <= 0 {
		c.Notification.Window = defaultNotificationWindow
	}
	if strings.TrimSpace(c.Notification.MessageBody) == "" {
		c.Notification.MessageBody = defaultMessageBody
	}
	if c.Map.DefaultLat == 0 && c.Map.DefaultLng == 0 {
		c.Map.DefaultLat = 37.7749
		c.Map.DefaultLng = -122.4194
	}
	if c.Places != nil {
		if c.Places.RadiusMeters <= 0 {
			c.Places.RadiusMeters = defaultSearchRadius
		}
		if c.Places.Category == "" {
			c.Places.Category = defaultPlaceCategory
		}
	}
}

// CredentialsJSON renders the inline service account as a key file document.
// It returns nil when no inline service account is configured.
func (f *FirebaseConfig) CredentialsJSON() ([]byte, error) {
	if f == nil || f.ServiceAccount == nil || f.ServiceAccount.PrivateKey == "" {
		return nil, nil
	}

	account := *f.ServiceAccount
	if account.Type == "" {
		account.Type = "service_account"
	}

	data, err := json.Marshal(account)
	if err != nil {
		return nil, errors.Wrap(err, "marshal service account")
	}

	return data, nil
}

// transformLegacyValue adapts values whose legacy encoding differs from ours.
func transformLegacyValue(key, value string) any {
	switch key {
	case "firebase.serviceAccount.privateKey":
		// Keys stored in .env files carry literal "\n" sequences.
		return strings.ReplaceAll(value, `\n`, "\n")
	case "cors.allowedOrigins":
		return strings.Split(value, ",")
	default:
		return value
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
