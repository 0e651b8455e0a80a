// Package logger provides a small formatted logger for cluster
// supervisors: a colorized console sink plus an optional append-mode
// file sink, sharing one aligned line layout.
//
// # Line Layout
//
// Every line starts with "[<timestamp>] [<instance>]" padded to a
// fixed column, followed by ": <message>". Error lines may carry a
// "Stack:" continuation. Console lines are wrapped in a per-level
// ANSI color (info blue, warning yellow, error red, http green); the
// file sink receives the identical text uncolored.
//
// # Features
//
//   - Instance-owned sinks, no package-level logging state
//   - Per-call instance labels: As("Worker") or Cluster(3)
//   - Optional file logging into a managed log directory
//   - A .gitignore ("*.log") written into newly created log directories
//   - Graceful handling of nil errors in Error calls
//
// # Usage
//
// Build a logger once at startup:
//
//	log, err := logger.New(logger.Config{})
//	if err != nil {
//	    // the log directory or file could not be set up
//	}
//	defer log.Close()
//
// Log with the configured default label, or override it per call:
//
//	log.Info("manager started")
//	log.Info("worker online", logger.Cluster(3))
//	log.Warn("queue is filling up", logger.As("Dispatcher"))
//	log.HTTP("GET /status 200")
//
// Attach an error to get a stack continuation on the line:
//
//	log.Error("worker crashed", err, logger.Cluster(3))
//
// # File Logging
//
// Enable the file sink via Config:
//
//	log, err := logger.New(logger.Config{
//	    LogToFile: true,
//	    LogDir:    "logs",
//	    LogFile:   "manager.logs",
//	})
//
// The directory is created if absent (non-recursively: parent
// segments must already exist) and the file is opened in append mode
// and held until Close.
package logger
