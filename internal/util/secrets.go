package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type DbSecrets struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DbName   string `json:"dbName"`
}

func (s DbSecrets) ToConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s",
		s.User, s.Password, s.Host, s.Port, s.DbName,
	)
}

type Secrets struct {
	Db             DbSecrets `json:"db"`
	FinnhubApiKey  string    `json:"finnhubApiKey"`
	JwtDecodeToken string    `json:"jwtDecodeToken"`
}

// LoadSecrets reads secrets.json (or SECRETS_FILE_PATH) and lets
// individual env vars override file values. A .env file is loaded
// first if present so local dev doesn't need exported vars.
func LoadSecrets() (*Secrets, error) {
	_ = godotenv.Load()

	secrets := &Secrets{}

	path := os.Getenv("SECRETS_FILE_PATH")
	if path == "" {
		path = "secrets.json"
	}
	contents, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(contents, secrets); err != nil {
			return nil, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}

	if v := os.Getenv("DB_HOST"); v != "" {
		secrets.Db.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		secrets.Db.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		secrets.Db.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		secrets.Db.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		secrets.Db.DbName = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		secrets.FinnhubApiKey = v
	}
	if v := os.Getenv("SUPABASE_JWT_SECRET"); v != "" {
		secrets.JwtDecodeToken = v
	}

	if secrets.Db.Port == "" {
		secrets.Db.Port = "5432"
	}

	return secrets, nil
}
