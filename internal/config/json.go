package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey string   `json:"password_hash_key"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		Version         string   `json:"version"`
		LogLevel        string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Client struct {
			DSN string `json:"dsn"`
		} `json:"client,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	IPFS struct {
		PublishURL     string   `json:"publish_url"`
		PublishJWT     string   `json:"publish_jwt"`
		Gateways       []string `json:"gateways"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxContentSize int      `json:"max_content_size"`
	} `json:"ipfs,omitempty"`

	Crypto struct {
		ScryptN int `json:"scrypt_n"`
		ScryptR int `json:"scrypt_r"`
		ScryptP int `json:"scrypt_p"`
	} `json:"crypto,omitempty"`

	Gateway struct {
		HTTPAddress string `json:"http_address"`
		DataDir     string `json:"data_dir"`
		PinToken    string `json:"pin_token"`
	} `json:"gateway,omitempty"`
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
			PasswordHashKey: jsonCfg.App.PasswordHashKey,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			Version:         jsonCfg.App.Version,
			LogLevel:        jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Client: ClientDB{
				DSN: jsonCfg.Storage.Client.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		IPFS: IPFS{
			PublishURL:     jsonCfg.IPFS.PublishURL,
			PublishJWT:     jsonCfg.IPFS.PublishJWT,
			Gateways:       jsonCfg.IPFS.Gateways,
			RequestTimeout: time.Duration(jsonCfg.IPFS.RequestTimeout),
			MaxContentSize: jsonCfg.IPFS.MaxContentSize,
		},
		Crypto: Crypto{
			ScryptN: jsonCfg.Crypto.ScryptN,
			ScryptR: jsonCfg.Crypto.ScryptR,
			ScryptP: jsonCfg.Crypto.ScryptP,
		},
		Gateway: Gateway{
			HTTPAddress: jsonCfg.Gateway.HTTPAddress,
			DataDir:     jsonCfg.Gateway.DataDir,
			PinToken:    jsonCfg.Gateway.PinToken,
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
