package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements pflag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server and gateway flags from args (without the
// program name).
//
// Flags:
//
//	-a, --address          ledger listen address host:port
//	-d, --database-dsn     ledger database DSN
//	    --database-driver  postgres | sqlite
//	-c, --config           JSON config file path
//	    --password-hash-key
//	    --token-sign-key
//	    --token-issuer
//	    --token-duration   e.g. 1h, 30m
//	    --request-timeout  e.g. 30s
//	    --log-level
//	-g, --gateway-address  content gateway listen address host:port
//	    --gateway-data-dir Badger directory
//	    --pin-token        content gateway bearer token
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, gatewayAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var passwordHashKey, tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var logLevel string
	var gatewayDataDir, pinToken string

	fs := pflag.NewFlagSet("marketplace", pflag.ContinueOnError)
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&databaseDSN, "database-dsn", "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "database-driver", "", "Database driver: postgres or sqlite")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.VarP(&gatewayAddress, "gateway-address", "g", "Content gateway net address host:port")
	fs.StringVar(&gatewayDataDir, "gateway-data-dir", "", "Content gateway data directory")
	fs.StringVar(&pinToken, "pin-token", "", "Content gateway pin token")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Gateway: Gateway{
			HTTPAddress: gatewayAddress.String(),
			DataDir:     gatewayDataDir,
			PinToken:    pinToken,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
