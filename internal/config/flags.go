package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-server-url base URL of the server (client side)
//	-mongo-user database username
//	-mongo-pass database password
//	-mongo-address database cluster host
//	-cache client cache database path
//	-c/-config json file path with configs
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-token-renew-ahead renewal window before expiry (e.g., "10m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval client task refresh interval (e.g., "10s")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var serverURL string
	var mongoUser string
	var mongoPass string
	var mongoAddress string
	var cachePath string
	var jsonConfigPath string
	var tokenIssuer string
	var tokenDuration time.Duration
	var tokenRenewAhead time.Duration
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&serverURL, "server-url", "", "Server base URL")
	flag.StringVar(&mongoUser, "mongo-user", "", "MongoDB username")
	flag.StringVar(&mongoPass, "mongo-pass", "", "MongoDB password")
	flag.StringVar(&mongoAddress, "mongo-address", "", "MongoDB cluster host")
	flag.StringVar(&cachePath, "cache", "", "Client cache database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&tokenRenewAhead, "token-renew-ahead", 0, "Token renewal window (e.g., 10m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Client refresh interval (e.g., 10s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			TokenRenewAhead: tokenRenewAhead,
		},
		Storage: Storage{
			Mongo: Mongo{
				User:    mongoUser,
				Pass:    mongoPass,
				Address: mongoAddress,
			},
			Cache: Cache{
				Path: cachePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format is invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
