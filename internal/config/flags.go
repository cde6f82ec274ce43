// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

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
//	-a server address in format [host]:[port]
//	-d database DSN
//	-engine storage engine (postgres, sqlite, memory)
//	-sqlite-path sqlite database file path
//	-c/-config json file path with configs
//	-key-source master key source (env, passphrase)
//	-key-env-var environment variable holding the hex master key
//	-key-salt salt for passphrase key derivation
//	-legacy-plaintext legacy plaintext policy (passthrough, reject)
//	-not-selected-label label for empty lookup references
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-projection-interval projection worker interval (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var engine string
	var sqlitePath string
	var jsonConfigPath string
	var keySource string
	var keyEnvVar string
	var keySalt string
	var legacyPlaintext string
	var notSelectedLabel string
	var requestTimeout time.Duration
	var projectionInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&engine, "engine", "", "Storage engine (postgres, sqlite, memory)")
	flag.StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&keySource, "key-source", "", "Master key source (env, passphrase)")
	flag.StringVar(&keyEnvVar, "key-env-var", "", "Env variable holding the hex master key")
	flag.StringVar(&keySalt, "key-salt", "", "Salt for passphrase key derivation")
	flag.StringVar(&legacyPlaintext, "legacy-plaintext", "", "Legacy plaintext policy (passthrough, reject)")
	flag.StringVar(&notSelectedLabel, "not-selected-label", "", "Label for empty lookup references")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&projectionInterval, "projection-interval", 0, "Projection worker interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			KeySource:        keySource,
			KeyEnvVar:        keyEnvVar,
			KeySalt:          keySalt,
			LegacyPlaintext:  legacyPlaintext,
			NotSelectedLabel: notSelectedLabel,
		},
		Storage: Storage{
			Engine: engine,
			DB: DB{
				DSN: databaseDSN,
			},
			SQLite: SQLite{
				Path: sqlitePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ProjectionInterval: projectionInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
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
