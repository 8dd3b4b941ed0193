// Package main is the entry point for the translate Lambda function.
package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/candinya/translate-layer/app"
	"github.com/candinya/translate-layer/types"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yml"
	}

	cfg, err := types.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	handler, err := app.NewLambdaHandler(cfg)
	if err != nil {
		log.Fatalf("failed to initialize handler: %v", err)
	}

	lambda.Start(handler)
}
