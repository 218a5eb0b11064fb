package configs

import (
	"github.com/spf13/viper"
)

// EnvConfig holds values that only come from the process environment.
type EnvConfig struct {
	ApplicationName string
	Environment     string
	LogLevel        string
	PropertiesFile  string
	MessagesFile    string
}

var Env *EnvConfig

func init() {
	v := viper.New()
	v.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "hospital-admin"),
		Environment:     getStringOrDefault(v, "APP_ENV", "dev"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		PropertiesFile:  getStringOrDefault(v, "PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesFile:    getStringOrDefault(v, "MESSAGES_FILE_PATH", "configs/messages.yml"),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
