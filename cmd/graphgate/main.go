package main

import (
	"log"

	"go.uber.org/zap"

	graphgate "github.com/app-sre/graphgate/pkg"
	"github.com/app-sre/graphgate/pkg/cmd"
)

func main() {
	newLogger := zap.NewDevelopment
	if graphgate.Production() {
		newLogger = zap.NewProduction
	}

	l, err := newLogger()
	if err != nil {
		log.Fatalf("Unable to initialize Zap logger: %s", err)
	}
	defer func() { _ = l.Sync() }()

	logger := l.Sugar()
	if err := cmd.Run(logger); err != nil {
		logger.Fatalf("Unable to start graphgate: %s", err)
	}
}
