// config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Ledger        LedgerConfiguration
	Weather       WeatherConfiguration
	Marketplace   MarketplaceConfiguration
	Verifier      VerifierConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Agent         AgentConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// LedgerConfiguration stores the algod node connection settings
type LedgerConfiguration struct {
	Address string
	Token   string
}

// WeatherConfiguration stores the upstream weather provider settings
type WeatherConfiguration struct {
	Provider       string
	OpenWeatherKey string
	WeatherAPIKey  string
	CacheTTL       string
}

// MarketplaceConfiguration stores the token marketplace settings
type MarketplaceConfiguration struct {
	AppID         string
	AssetID       uint64
	PriceMicro    uint64
	TokenDuration int64
	SinkAddress   string
}

// VerifierConfiguration selects the credential verification policy
type VerifierConfiguration struct {
	Policy         string
	ThresholdMicro uint64
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// AgentConfiguration stores the autonomous agent settings
type AgentConfiguration struct {
	BackendURL   string
	MaxAttempts  int
	RetryDelay   string
	SettleDelay  string
	RequestDelay string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("ledger.address", "http://localhost:4001")
	viper.SetDefault("ledger.token", "")
	viper.SetDefault("weather.provider", "open-meteo")
	viper.SetDefault("weather.cacheTTL", "5m")
	viper.SetDefault("marketplace.appId", "0")
	viper.SetDefault("marketplace.assetId", 0)
	viper.SetDefault("marketplace.priceMicro", 1_000_000)
	viper.SetDefault("marketplace.tokenDuration", 3600)
	viper.SetDefault("marketplace.sinkAddress", "")
	viper.SetDefault("verifier.policy", "balance")
	viper.SetDefault("verifier.thresholdMicro", 5_000_000)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("agent.backendURL", "http://localhost:8000")
	viper.SetDefault("agent.maxAttempts", 3)
	viper.SetDefault("agent.retryDelay", "5s")
	viper.SetDefault("agent.settleDelay", "2s")
	viper.SetDefault("agent.requestDelay", "3s")
	viper.SetDefault("log.dir", "")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetUint64 retrieves an unsigned integer value from the configuration
func GetUint64(key string) uint64 {
	return viper.GetUint64(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
