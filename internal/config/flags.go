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

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-server-timeout HTTP server read/write timeout (e.g., "30s")
//	-config-server configuration server base URL
//	-request-timeout configuration server request timeout (e.g., "10s")
//	-app-name application name used for configuration server lookups
//	-run-as identity quoted in permission remediations
//	-charset charset of local files (e.g., "UTF-8")
//	-search-locations comma separated native repository directories
//	-c/-config json file path with configs
//
// Positional arguments remaining after the flags are available through [Args].
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlags(flag.CommandLine, os.Args[1:])
	return cfg
}

// Args returns the positional command-line arguments left after [ParseFlags].
func Args() []string {
	return flag.CommandLine.Args()
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serverTimeout time.Duration
	var configServerAddress string
	var requestTimeout time.Duration
	var appName string
	var runAs string
	var charset string
	var searchLocations string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "HTTP server timeout (e.g., 30s, 1m)")
	fs.StringVar(&configServerAddress, "config-server", "", "Configuration server base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Configuration server request timeout (e.g., 10s)")
	fs.StringVar(&appName, "app-name", "", "Application name for configuration server lookups")
	fs.StringVar(&runAs, "run-as", "", "Identity quoted in permission remediations")
	fs.StringVar(&charset, "charset", "", "Charset of local files (e.g., UTF-8, ISO-8859-1)")
	fs.StringVar(&searchLocations, "search-locations", "", "Comma separated native repository directories")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		App: App{
			Name: appName,
		},
		Reader: Reader{
			RunAs:        runAs,
			LocalCharset: charset,
		},
		Adapter: Adapter{
			HTTPAddress:    configServerAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Storage: Storage{
			Native: Native{
				SearchLocations: splitList(searchLocations),
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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
		return errors.New("port number must be in range 1..65535")
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
