// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a relay listen address in format [host]:[port]
//	-r relay base URL used by the client
//	-d database DSN
//	-driver message store driver (sqlite, postgres, redis)
//	-redis redis address
//	-settings client settings sqlite file
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-client-timeout outbound request timeout (e.g., "10s")
//	-poll-interval message polling interval (e.g., "1s")
//	-debounce password edit debounce (e.g., "3s")
//	-max-attempts rejected passwords before the challenge aborts
//	-channel default channel
//	-ui client front-end (tui, cli)
//	-hash-key security hash key
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress NetAddress
	var relayURL, databaseDSN, driver, redisAddress, settingsPath string
	var jsonConfigPath, channel, ui, hashKey string
	var requestTimeout, clientTimeout, pollInterval, debounce time.Duration
	var maxAttempts int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&relayURL, "r", "", "Relay base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Message store driver: sqlite, postgres or redis")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&settingsPath, "settings", "", "Client settings sqlite file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Message polling interval (e.g., 1s)")
	fs.DurationVar(&debounce, "debounce", 0, "Password edit debounce (e.g., 3s)")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Rejected passwords before the challenge aborts")
	fs.StringVar(&channel, "channel", "", "Default channel")
	fs.StringVar(&ui, "ui", "", "Client front-end: tui or cli")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			HashKey:  hashKey,
			ClientUI: ui,
		},
		Storage: Storage{
			Driver:       driver,
			DB:           DB{DSN: databaseDSN},
			Redis:        Redis{Address: redisAddress},
			SettingsPath: settingsPath,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    relayURL,
			RequestTimeout: clientTimeout,
		},
		Workers: Workers{
			PollInterval:  pollInterval,
			DebounceDelay: debounce,
		},
		Auth:         Auth{MaxAttempts: maxAttempts},
		Chat:         Chat{DefaultChannel: channel},
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
