// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package apptls

import (
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"os"
	"time"

	"github.com/stretchr/testify/suite"
)

// Suite is a stretchr/testify suite that manages the lifecycle of a testing
// certificate.  Embed it in suites that exercise TLS servers.
type Suite struct {
	suite.Suite

	dir             string
	certificate     *tls.Certificate
	certificateFile string
	keyFile         string
}

// Config returns a configuration object using this suite's certificate.
func (suite *Suite) Config() *Config {
	return &Config{
		Certificates: []ExternalCertificate{
			{
				CertificateFile: suite.certificateFile,
				KeyFile:         suite.keyFile,
			},
		},
	}
}

// CertificateFile is the PEM file holding this suite's certificate.
func (suite *Suite) CertificateFile() string {
	return suite.certificateFile
}

// ClientTLSConfig returns a client configuration that trusts this suite's certificate.
func (suite *Suite) ClientTLSConfig() *tls.Config {
	leaf, err := x509.ParseCertificate(suite.certificate.Certificate[0])
	suite.Require().NoError(err)

	pool := x509.NewCertPool()
	pool.AddCert(leaf)
	return &tls.Config{
		RootCAs:    pool,
		ServerName: "test.net",
		MinVersion: tls.VersionTLS13,
	}
}

// SetupSuite creates a testing certificate and stores the certificate and its
// private key in temporary files.
func (suite *Suite) SetupSuite() {
	var err error
	suite.dir, err = os.MkdirTemp("", "apptls-*")
	suite.Require().NoError(err)

	suite.certificate, err = CreateTestCertificate(&x509.Certificate{
		SerialNumber: big.NewInt(837492837),
		Issuer: pkix.Name{
			CommonName: "test",
		},
		Subject: pkix.Name{
			CommonName: "test",
		},
		DNSNames: []string{
			"test.net",
		},
		NotBefore: time.Now().Add(-time.Hour),
		NotAfter:  time.Now().Add(time.Hour),
	})

	suite.Require().NoError(
		err,
		"Unable to generate test certificate",
	)

	suite.certificateFile, suite.keyFile, err = CreateTestServerFiles(suite.dir, suite.certificate)
	suite.Require().NoError(
		err,
		"Unable to create temporary server files",
	)
}

// TearDownSuite cleans up the temporary files created in setup.
func (suite *Suite) TearDownSuite() {
	if err := os.RemoveAll(suite.dir); err != nil {
		suite.T().Logf("Unable to remove directory %s: %s", suite.dir, err)
	}
}
