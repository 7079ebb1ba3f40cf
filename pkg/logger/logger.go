package logger

import "go.uber.org/zap"

// New builds the application logger for the given environment. Production
// gets the JSON config, everything else a human-readable development logger.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
