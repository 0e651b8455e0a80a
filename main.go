package main

import (
	"errors"
	"os"

	"github.com/clusterkit/cluster-logger/logger"
)

// Example demonstrating the cluster-logger usage.
func main() {
	cfg := logger.Config{}

	// Usage: ./cluster-logger [logdir]
	// Example: ./cluster-logger ./logs
	if len(os.Args) > 1 {
		cfg.LogToFile = true
		cfg.LogDir = os.Args[1]
	}

	log, err := logger.New(cfg)
	if err != nil {
		os.Stderr.WriteString("logger setup failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Close() // Don't forget to release the log file!

	if cfg.LogToFile {
		log.Info("logging to console and " + cfg.LogDir)
	} else {
		log.Info("logging to console only (provide a log directory to enable file logging)")
	}

	// Default instance label ("Manager" unless configured otherwise)
	log.Info("manager started")
	log.Warn("no workers registered yet")

	// Per-call instance labels
	log.Info("worker online", logger.Cluster(1))
	log.Info("worker online", logger.Cluster(2))
	log.Warn("slow heartbeat", logger.Cluster(2))
	log.Info("draining connections", logger.As("Dispatcher"))

	// HTTP traffic lines are colored green
	log.HTTP("GET /status 200")
	log.HTTP("POST /jobs 201", logger.Cluster(1))

	// Errors carry a Stack continuation when an error is attached
	log.Error("worker crashed", errors.New("exit status 2"), logger.Cluster(2))
	log.Error("restart scheduled", nil, logger.Cluster(2))
}
