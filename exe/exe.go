package exe

import (
	"os"
	"strconv"
	"strings"
)

func GetEnvDef(name, def string) (result string) {
	result = os.Getenv(name)
	if result == "" {
		result = def
	}
	return
}

func GetBoolEnvDef(name string, def bool) (result bool) {
	value := strings.ToLower(os.Getenv(name))
	if value == "" {
		return def
	}
	result, _ = strconv.ParseBool(value)
	return
}

// GetIntEnvDef falls back to def when the variable is unset or not an integer.
func GetIntEnvDef(name string, def int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return def
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return result
}
