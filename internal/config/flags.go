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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env deployment environment (development|production)
//	-session-duration session lifetime (e.g. "168h")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-web-dir directory with front-end pages
//	-ai-project Vertex AI project id
//	-ocr-languages OCR language profile (e.g. "eng+hin")
func ParseFlags() *StructuredConfig {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	return parseFlags(fs, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var appEnv string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var webDir string
	var aiProject string
	var ocrLanguages string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appEnv, "env", "", "Deployment environment (development|production)")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&webDir, "web-dir", "", "Directory with front-end pages")
	fs.StringVar(&aiProject, "ai-project", "", "Vertex AI project id")
	fs.StringVar(&ocrLanguages, "ocr-languages", "", "OCR language profile (e.g., eng+hin)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			Env:             appEnv,
			SessionDuration: sessionDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			WebDir:         webDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		AI: AI{
			ProjectID: aiProject,
		},
		OCR: OCR{
			Languages: splitLanguages(ocrLanguages),
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
