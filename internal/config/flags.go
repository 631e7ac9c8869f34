package config

import (
	"errors"
	"flag"
	"io"
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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a pubsub backend (IPFS API) address in format [host]:[port]
//	-relay-address relay listen address in format [host]:[port]
//	-t topic name
//	-sigil command sigil character
//	-log-file client log file path
//	-request-timeout publish / relay request timeout (e.g., "10s")
//	-poll-interval UI poll interval (e.g., "100ms")
//	-retry-initial first subscription retry delay (e.g., "100ms")
//	-retry-max maximum subscription retry delay (e.g., "10s")
//	-c/-config json file path with configs
//
// Unlike the package-level flag set, a private [flag.FlagSet] is used so the
// function can be called more than once (tests, relay + client in one binary).
func ParseFlags(args []string) (*StructuredConfig, error) {
	var adapterAddress, relayAddress NetAddress
	var topic, sigil, logFile, jsonConfigPath string
	var requestTimeout, pollInterval, retryInitial, retryMax time.Duration

	fs := flag.NewFlagSet("pubsub-chat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&adapterAddress, "a", "Pubsub backend address host:port")
	fs.Var(&relayAddress, "relay-address", "Relay listen address host:port")
	fs.StringVar(&topic, "t", "", "Topic name")
	fs.StringVar(&sigil, "sigil", "", "Command sigil character")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "UI poll interval (e.g., 100ms)")
	fs.DurationVar(&retryInitial, "retry-initial", 0, "First subscription retry delay")
	fs.DurationVar(&retryMax, "retry-max", 0, "Maximum subscription retry delay")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			Topic:   topic,
			Sigil:   sigil,
			LogFile: logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    relayAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval:         pollInterval,
			RetryInitialInterval: retryInitial,
			RetryMaxInterval:     retryMax,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
