package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-f temporary upload directory
//	-upload-ttl age after which leftover uploads are removed (e.g., "1h")
//	-c/-config json file path with configs
//	-access-token-secret access token signing secret
//	-access-token-duration access token lifetime (e.g., "15m")
//	-refresh-token-secret refresh token signing secret
//	-refresh-token-duration refresh token lifetime (e.g., "240h")
//	-token-issuer token issuer name
//	-version application version
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-size maximum multipart body size in bytes
//	-insecure-cookies drop the Secure attribute from session cookies
//	-media-cloud-name / -media-api-key / -media-api-secret media host credentials
//	-media-base-url media host API base URL
//	-media-timeout media upload timeout
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-engineer-hub", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.UploadDir, "f", "", "Temporary upload directory")
	fs.DurationVar(&cfg.Storage.Files.UploadTTL, "upload-ttl", 0, "Leftover upload lifetime (e.g., 1h)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.AccessTokenSecret, "access-token-secret", "", "Access token signing secret")
	fs.DurationVar(&cfg.App.AccessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 15m, 1h)")
	fs.StringVar(&cfg.App.RefreshTokenSecret, "refresh-token-secret", "", "Refresh token signing secret")
	fs.DurationVar(&cfg.App.RefreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 240h)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&cfg.Server.MaxUploadSize, "max-upload-size", 0, "Maximum multipart body size in bytes")
	fs.BoolVar(&cfg.Server.InsecureCookies, "insecure-cookies", false, "Send session cookies without the Secure attribute")
	fs.StringVar(&cfg.Adapter.Media.CloudName, "media-cloud-name", "", "Media host cloud name")
	fs.StringVar(&cfg.Adapter.Media.APIKey, "media-api-key", "", "Media host API key")
	fs.StringVar(&cfg.Adapter.Media.APISecret, "media-api-secret", "", "Media host API secret")
	fs.StringVar(&cfg.Adapter.Media.BaseURL, "media-base-url", "", "Media host API base URL")
	fs.DurationVar(&cfg.Adapter.Media.Timeout, "media-timeout", 0, "Media upload timeout (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
