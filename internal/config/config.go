package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBackendURL, "http://n8n.xandys.xyz:8000")
	viper.SetDefault(KeyHTTPTimeout, 30*time.Second)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, "/mcp/jsonrpc")
}

func BackendURL() string         { return viper.GetString(KeyBackendURL) }
func HTTPTimeout() time.Duration { return viper.GetDuration(KeyHTTPTimeout) }
func LogLevel() string           { return viper.GetString(KeyLogLevel) }
func Transport() string          { return viper.GetString(KeyTransport) }
func Host() string               { return viper.GetString(KeyHost) }
func Port() int                  { return viper.GetInt(KeyPort) }
func EndpointPath() string       { return viper.GetString(KeyEndpointPath) }
