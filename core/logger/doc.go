// Package logger provides a structured logging facility based on Zap.
//
// New builds a development logger for the "debug" level and a production
// logger otherwise; Format selects json or console encoding.
//
// # Request Correlation
//
// The rayid middleware stores a request id in the Fiber context. WithRayID
// attaches it to a logger so every entry written while serving a request can
// be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Spec update failed", zap.Error(err))
package logger
