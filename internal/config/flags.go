// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-media-dir local media blob directory
//	-s3-bucket S3 bucket for media blobs
//	-s3-region S3 region of the media bucket
//	-c/-config json file path with configs
//	-messages-secret master secret for message content and media
//	-marketplace-secret master secret for transaction payloads
//	-posts-secret master secret for shared-post summaries
//	-hash-key transport body integrity key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sweep-interval media sweeper interval (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var mediaDir string
	var s3Bucket string
	var s3Region string
	var jsonConfigPath string
	var messagesSecret string
	var marketplaceSecret string
	var postsSecret string
	var hashKey string
	var requestTimeout time.Duration
	var sweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&mediaDir, "media-dir", "", "Local media blob directory")
	flag.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket for media blobs")
	flag.StringVar(&s3Region, "s3-region", "", "S3 region of the media bucket")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&messagesSecret, "messages-secret", "", "Master secret for message content and media")
	flag.StringVar(&marketplaceSecret, "marketplace-secret", "", "Master secret for transaction payloads")
	flag.StringVar(&postsSecret, "posts-secret", "", "Master secret for shared-post summaries")
	flag.StringVar(&hashKey, "hash-key", "", "Transport body integrity key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Media sweeper interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			MessagesSecret:    messagesSecret,
			MarketplaceSecret: marketplaceSecret,
			PostsSecret:       postsSecret,
			HashKey:           hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Media: Media{
				Dir:      mediaDir,
				S3Bucket: s3Bucket,
				S3Region: s3Region,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter:      Adapter{},
		Workers:      Workers{SweepInterval: sweepInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String renders the canonical host:port form. An address with neither
// part set renders as the empty string so merging treats it as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a host:port string. The host must be "localhost" or a
// literal IP; the port must be a positive integer.
func (a *NetAddress) Set(s string) error {
	host, portPart, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portPart, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portPart)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portPart, err)
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
