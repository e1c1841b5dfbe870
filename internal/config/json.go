package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		AccessTokenSecret    string   `json:"access_token_secret"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenSecret   string   `json:"refresh_token_secret"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		TokenIssuer          string   `json:"token_issuer"`
		Version              string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			UploadDir string   `json:"upload_dir"`
			UploadTTL Duration `json:"upload_ttl"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		MaxUploadSize   int64    `json:"max_upload_size"`
		InsecureCookies bool     `json:"insecure_cookies"`
	} `json:"server,omitempty"`

	Adapter struct {
		Media struct {
			CloudName string   `json:"cloud_name"`
			APIKey    string   `json:"api_key"`
			APISecret string   `json:"api_secret"`
			BaseURL   string   `json:"base_url"`
			Timeout   Duration `json:"timeout"`
		} `json:"media,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AccessTokenSecret:    jsonCfg.App.AccessTokenSecret,
			AccessTokenDuration:  time.Duration(jsonCfg.App.AccessTokenDuration),
			RefreshTokenSecret:   jsonCfg.App.RefreshTokenSecret,
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			Version:              jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				UploadDir: jsonCfg.Storage.Files.UploadDir,
				UploadTTL: time.Duration(jsonCfg.Storage.Files.UploadTTL),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:   jsonCfg.Server.MaxUploadSize,
			InsecureCookies: jsonCfg.Server.InsecureCookies,
		},
		Adapter: Adapter{
			Media: Media{
				CloudName: jsonCfg.Adapter.Media.CloudName,
				APIKey:    jsonCfg.Adapter.Media.APIKey,
				APISecret: jsonCfg.Adapter.Media.APISecret,
				BaseURL:   jsonCfg.Adapter.Media.BaseURL,
				Timeout:   time.Duration(jsonCfg.Adapter.Media.Timeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
