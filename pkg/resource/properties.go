package resource

import (
	"fmt"
	stdlog "log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from YAML. A missing file is not fatal here so packages
// that only need defaults (tests, cmd/pagination) still load; main calls Init and fails hard.
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	if err := Init(value); err != nil {
		stdlog.Printf("Properties not loaded: %v", err)
	}
}

// Init reads the YAML file at filepath and resolves ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	for key, value := range resolved {
		v.Set(key, value)
	}
	properties = v
	return nil
}

// Load replaces the current properties with the given flat map. Keys use dot notation.
func Load(values map[string]any) {
	v := viper.New()
	for key, value := range values {
		v.Set(key, value)
	}
	properties = v
}

// parsePropertiesMap walks the YAML tree and flattens it into dotted keys.
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			stdlog.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} occurrence in value.
// Strings without placeholders are returned unchanged.
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		parts := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(parts[1]); exists {
			return envValue
		}
		return parts[2]
	})
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns the property or def when it is unset or blank.
func GetStringOrDefault(key, def string) string {
	if value := strings.TrimSpace(properties.GetString(key)); value != "" {
		return value
	}
	return def
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

// GetDurationOrDefault returns the property or def when it is unset or not positive.
func GetDurationOrDefault(key string, def time.Duration) time.Duration {
	if value := properties.GetDuration(key); value > 0 {
		return value
	}
	return def
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

// GetIntOrDefault returns the property or def when it is unset.
func GetIntOrDefault(key string, def int) int {
	if !properties.IsSet(key) {
		return def
	}
	return properties.GetInt(key)
}

func GetInt64(key string) int64 {
	return properties.GetInt64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}

// GetStringMapString returns every property below prefix as a flat map keyed by the remainder.
func GetStringMapString(prefix string) map[string]string {
	out := make(map[string]string)
	for _, key := range properties.AllKeys() {
		if strings.HasPrefix(key, prefix+".") {
			out[strings.TrimPrefix(key, prefix+".")] = properties.GetString(key)
		}
	}
	return out
}
