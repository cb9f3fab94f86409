package config

import "os"

type Config struct {
	ServerPort  string
	OutputDir   string
	MaxFileSize int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}

	return &Config{
		ServerPort:  serverPort,
		OutputDir:   outputDir,
		MaxFileSize: 10 * 1024 * 1024, // 10 MB
	}
}
