package msg

import (
	"encoding/json"
	"fmt"
	stdlog "log"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mu       sync.RWMutex
	messages = map[string]string{}
)

// init loads messages from YAML; a missing catalog leaves keys unresolved instead of exiting.
func init() {
	value, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	if err := Init(value); err != nil {
		stdlog.Printf("Messages not loaded: %v", err)
	}
}

// Init replaces the catalog with the messages found in the YAML file at filepath.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read messages %s: %w", filepath, err)
	}

	loaded := make(map[string]string)
	parseMessageMap("", v.AllSettings(), loaded)

	mu.Lock()
	messages = loaded
	mu.Unlock()
	return nil
}

// Register adds or overrides single messages, mostly for tests.
func Register(entries map[string]string) {
	mu.Lock()
	defer mu.Unlock()
	for key, value := range entries {
		messages[key] = value
	}
}

// parseMessageMap reads the yml tree recursively into dotted keys.
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			stdlog.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}, ... replaced by args.
func GetMessage(key string, args ...interface{}) string {
	mu.RLock()
	message, exists := messages[key]
	mu.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, argToString(arg))
	}

	return message
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

// isPrimitive reports whether value is a bool, number or string.
func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
