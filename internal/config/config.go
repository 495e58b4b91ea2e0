package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	DB       *DBconfig
	RabbitMq *RabbitMqconfig
	Srv      *Serviceconfig
	App      *Appconfig
	Driver   *DriverPolicyconfig
	Log      *Loggerconfig
}

type DBconfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RabbitMqconfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

type Serviceconfig struct {
	AdminServicePort string
}

type Appconfig struct {
	JwtSecret     string
	TokenTTLHours int
}

// DriverPolicyconfig holds the defaults applied to drivers onboarded from the
// dashboard. The backend owns the credentials of a freshly created driver, so
// the password and initial status are deployment policy, not request input.
type DriverPolicyconfig struct {
	DefaultPassword string
	InitialStatus   string
}

type Loggerconfig struct {
	Level string
}

func New() (*Config, error) {
	_ = godotenv.Load(".env")

	cnf := &Config{
		DB: &DBconfig{
			Host:     cast.ToString(getOrReturnDefault("DB_HOST", "localhost")),
			Port:     cast.ToInt(getOrReturnDefault("DB_PORT", 5432)),
			User:     cast.ToString(getOrReturnDefault("DB_USER", "fleet_user")),
			Password: cast.ToString(getOrReturnDefault("DB_PASSWORD", "fleet_pass")),
			Database: cast.ToString(getOrReturnDefault("DB_NAME", "fleet_db")),
		},
		RabbitMq: &RabbitMqconfig{
			Host:     cast.ToString(getOrReturnDefault("RABBITMQ_HOST", "localhost")),
			Port:     cast.ToInt(getOrReturnDefault("RABBITMQ_PORT", 5672)),
			User:     cast.ToString(getOrReturnDefault("RABBITMQ_USER", "guest")),
			Password: cast.ToString(getOrReturnDefault("RABBITMQ_PASSWORD", "guest")),
			VHost:    cast.ToString(getOrReturnDefault("RABBITMQ_VHOST", "")),
		},
		Srv: &Serviceconfig{
			AdminServicePort: cast.ToString(getOrReturnDefault("ADMIN_SERVICE_PORT", "3004")),
		},
		App: &Appconfig{
			JwtSecret:     cast.ToString(getOrReturnDefault("JWT_SECRET", "fleet-admin-secret")),
			TokenTTLHours: cast.ToInt(getOrReturnDefault("TOKEN_TTL_HOURS", 24)),
		},
		Driver: &DriverPolicyconfig{
			DefaultPassword: cast.ToString(getOrReturnDefault("DRIVER_DEFAULT_PASSWORD", "driver@123")),
			InitialStatus:   cast.ToString(getOrReturnDefault("DRIVER_INITIAL_STATUS", "Live")),
		},
		Log: &Loggerconfig{
			Level: cast.ToString(getOrReturnDefault("LOG_LEVEL", "INFO")),
		},
	}

	return cnf, nil
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
