package clickhouse

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/config"
)

// GetTLSConfig creates a TLS config for connecting to ClickHouse over mTLS.
//
// Example usage:
//
//	tlsConfig, err := GetTLSConfig(config.TLS{
//		CertFile: "certs/client.crt",
//		KeyFile:  "certs/client.key",
//		CAFile:   "certs/ca.crt",
//	})
//	if err != nil {
//		return err
//	}
func GetTLSConfig(cfg config.TLS) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(config.ExpandHome(cfg.CertFile), config.ExpandHome(cfg.KeyFile))
	if err != nil {
		return nil, errors.Wrap(err, "unable to load cert_file/key_file")
	}

	caCert, err := os.ReadFile(config.ExpandHome(cfg.CAFile))
	if err != nil {
		return nil, errors.Wrap(err, "unable to load ca_file")
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return nil, errors.Errorf("no certificates found in %s", cfg.CAFile)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
