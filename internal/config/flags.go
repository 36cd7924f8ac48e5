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
//	-a server/API address in format [host]:[port]
//	-d local cache database DSN
//	-c/-config json file path with configs
//	-request-timeout REST request timeout (e.g., "15s")
//	-heartbeat-interval realtime keepalive period (e.g., "25s")
//	-reconnect-base-delay realtime backoff seed (e.g., "1s")
//	-max-reconnect-attempts realtime reconnection bound
//	-queue-cap realtime outbound queue capacity
//	-handshake-timeout realtime dial timeout (e.g., "10s")
//	-poll-interval polling fallback refresh period (e.g., "30s")
//	-token-sign-key devserver token signing key
//	-token-issuer devserver token issuer name
//	-token-duration devserver token duration (e.g., "24h")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var heartbeatInterval time.Duration
	var reconnectBaseDelay time.Duration
	var maxReconnectAttempts int
	var queueCap int
	var handshakeTimeout time.Duration
	var pollInterval time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "REST request timeout (e.g., 15s)")
	flag.DurationVar(&heartbeatInterval, "heartbeat-interval", 0, "Realtime keepalive period (e.g., 25s)")
	flag.DurationVar(&reconnectBaseDelay, "reconnect-base-delay", 0, "Realtime backoff seed (e.g., 1s)")
	flag.IntVar(&maxReconnectAttempts, "max-reconnect-attempts", 0, "Realtime reconnection bound")
	flag.IntVar(&queueCap, "queue-cap", 0, "Realtime outbound queue capacity")
	flag.DurationVar(&handshakeTimeout, "handshake-timeout", 0, "Realtime dial timeout (e.g., 10s)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Polling fallback refresh period (e.g., 30s)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Realtime: Realtime{
			HeartbeatInterval:    heartbeatInterval,
			ReconnectBaseDelay:   reconnectBaseDelay,
			MaxReconnectAttempts: maxReconnectAttempts,
			QueueCap:             queueCap,
			HandshakeTimeout:     handshakeTimeout,
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
