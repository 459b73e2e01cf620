package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-r redis address in format host:port
//	-c/-config configuration file path (JSON or YAML)
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "1h", "30m")
//	-admin-login admin login
//	-log-level log level (debug, info, warn, error)
//	-recent-limit number of articles returned by /article/recent
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var redisAddress string
	var configPath string
	var tokenSignKey string
	var tokenDuration time.Duration
	var adminLogin string
	var logLevel string
	var recentLimit int

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "r", "", "Redis address host:port")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&adminLogin, "admin-login", "", "Admin login")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&recentLimit, "recent-limit", 0, "Number of recent articles")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			AdminLogin:    adminLogin,
			LogLevel:      logLevel,
		},
		Server: Server{
			HTTPAddress:         serverAddress.String(),
			RecentArticlesLimit: recentLimit,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress},
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that a
// lower-priority source can provide the address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. It validates the port
// range and checks IP correctness unless host is empty or "localhost".
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
