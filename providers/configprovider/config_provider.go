package configprovider

import (
	"log"
	"os"
	"path/filepath"

	"github.com/FrumiousOwl/Teses-front-sub000/providers"
	"github.com/joho/godotenv"
)

type EnvConfigProvider struct {
	apiBaseURL     string
	shellPort      string
	credentialFile string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.apiBaseURL = os.Getenv("API_BASE_URL")
	if e.apiBaseURL == "" {
		e.apiBaseURL = "http://localhost:5077/api"
	}

	e.shellPort = os.Getenv("SHELL_PORT")
	if e.shellPort == "" {
		e.shellPort = "8245"
	}

	e.credentialFile = os.Getenv("CREDENTIAL_FILE")
	if e.credentialFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		e.credentialFile = filepath.Join(dir, "teses", "credential.json")
	}
	return nil
}

func (e *EnvConfigProvider) GetAPIBaseURL() string {
	return e.apiBaseURL
}

func (e *EnvConfigProvider) GetShellPort() string {
	return e.shellPort
}

func (e *EnvConfigProvider) GetCredentialFile() string {
	return e.credentialFile
}
