// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package apptls

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrTLSCertificateRequired         = errors.New("Both a certificateFile and keyFile are required")
	ErrUnableToAddClientCACertificate = errors.New("Unable to add client CA certificate")

	// strongCipherSuites are the tls.CipherSuite values that are safe for TLS versions less than 1.3
	strongCipherSuites = []uint16{
		tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
		tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	}
)

// Version is a TLS protocol version that can be configured as text, e.g. "TLS1.2".
type Version uint16

var versions = map[string]Version{
	"1.0": tls.VersionTLS10,
	"1.1": tls.VersionTLS11,
	"1.2": tls.VersionTLS12,
	"1.3": tls.VersionTLS13,
}

// UnmarshalText accepts "TLS1.0" through "TLS1.3".  The prefix is optional and
// case insensitive.
func (v *Version) UnmarshalText(text []byte) error {
	name := strings.TrimPrefix(strings.ToUpper(string(text)), "TLS")
	if parsed, ok := versions[name]; ok {
		*v = parsed
		return nil
	}

	return fmt.Errorf("unsupported TLS version: %q", text)
}

// String returns the crypto/tls name for this version.
func (v Version) String() string {
	return tls.VersionName(uint16(v))
}

// PeerVerifyError represents a verification error for a particular client certificate
type PeerVerifyError struct {
	Certificate *x509.Certificate
	Reason      string
}

// Error satisfies the error interface.  It returns the Reason text.
func (pve *PeerVerifyError) Error() string {
	return pve.Reason
}

// PeerVerifyConfig allows common checks against a client certificate to be configured externally.
// Any constraint that matches will result in a valid peer cert.
type PeerVerifyConfig struct {
	// DNSSuffixes enumerates any DNS suffixes that are checked.  A DNSName field of at least (1) peer cert
	// must have one of these suffixes.  Matching is case insensitive.
	DNSSuffixes []string

	// CommonNames lists the subject common names that at least (1) peer cert must have.
	// Matching common names is case sensitive.
	CommonNames []string
}

// verifier produces the tls.Config.VerifyPeerCertificate strategy for this configuration.
// If nothing is configured, this method returns nil.
func (pvc *PeerVerifyConfig) verifier() func([][]byte, [][]*x509.Certificate) error {
	if pvc == nil || (len(pvc.DNSSuffixes) == 0 && len(pvc.CommonNames) == 0) {
		return nil
	}

	// make a safe clone to host our closure
	var clone PeerVerifyConfig
	for _, suffix := range pvc.DNSSuffixes {
		clone.DNSSuffixes = append(clone.DNSSuffixes, strings.ToLower(suffix))
	}

	clone.CommonNames = append(clone.CommonNames, pvc.CommonNames...)
	return func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		for _, rawCert := range rawCerts {
			peerCert, err := x509.ParseCertificate(rawCert)
			if err != nil {
				return err
			}

			if err := clone.Verify(peerCert); err != nil {
				return err
			}
		}

		return nil
	}
}

// Verify checks a single peer certificate against this configuration.
func (pvc PeerVerifyConfig) Verify(peerCert *x509.Certificate) error {
	for _, suffix := range pvc.DNSSuffixes {
		for _, dnsName := range peerCert.DNSNames {
			if strings.HasSuffix(strings.ToLower(dnsName), suffix) {
				return nil
			}
		}

		// Allow the common name to be suffixed by a DNS suffix
		if strings.HasSuffix(strings.ToLower(peerCert.Subject.CommonName), suffix) {
			return nil
		}
	}

	for _, commonName := range pvc.CommonNames {
		if commonName == peerCert.Subject.CommonName {
			return nil
		}
	}

	return &PeerVerifyError{
		Certificate: peerCert,
		Reason:      "No DNS name or common name matched",
	}
}

// ExternalCertificate represents a certificate with its key file on the filesystem.
type ExternalCertificate struct {
	CertificateFile string
	KeyFile         string
}

// Load reads in the certificate and key files from the file system
func (ec ExternalCertificate) Load() (tls.Certificate, error) {
	if len(ec.CertificateFile) > 0 && len(ec.KeyFile) > 0 {
		return tls.LoadX509KeyPair(ec.CertificateFile, ec.KeyFile)
	}

	return tls.Certificate{}, ErrTLSCertificateRequired
}

// Config represents the unmarshaled TLS options for a server.
type Config struct {
	// Certificates is the set of certificates to present to a client.  At least one is required.
	Certificates []ExternalCertificate

	// ClientCAs is the optional set of PEM files containing certificates expected from a client.
	// Configure this as part of mTLS.
	ClientCAs []string

	// NextProtos is the list of supported application protocols.  Defaults to "http/1.1" if unset.
	NextProtos []string

	// MinVersion is the minimum required TLS version.  If unset, TLS 1.3 is required.
	MinVersion Version

	// MaxVersion is the maximum allowed TLS version.  If unset, the crypto/tls default is used.
	MaxVersion Version

	// PeerVerify specifies the certificate validation done on client certificates.
	PeerVerify *PeerVerifyConfig
}

// New constructs a *tls.Config from this Config instance, usually unmarshaled
// from some external source.  If this instance is nil, it returns nil with no error,
// meaning that a server should not use TLS.
func (c *Config) New() (*tls.Config, error) {
	if c == nil {
		return nil, nil
	}

	tc := &tls.Config{
		MinVersion:            uint16(c.MinVersion),
		MaxVersion:            uint16(c.MaxVersion),
		NextProtos:            append([]string{}, c.NextProtos...),
		VerifyPeerCertificate: c.PeerVerify.verifier(),

		// always use the strong cipher suites for tls versions < 1.3
		CipherSuites: strongCipherSuites,
	}

	if len(tc.NextProtos) == 0 {
		tc.NextProtos = []string{"http/1.1"}
	}

	// crypto/tls would otherwise allow versions older than 1.3
	if tc.MinVersion == 0 {
		tc.MinVersion = tls.VersionTLS13
	}

	if tc.MaxVersion != 0 && tc.MaxVersion < tc.MinVersion {
		tc.MaxVersion = tc.MinVersion
	}

	if len(c.Certificates) == 0 {
		return nil, ErrTLSCertificateRequired
	}

	for _, ec := range c.Certificates {
		cert, err := ec.Load()
		if err != nil {
			return nil, err
		}

		tc.Certificates = append(tc.Certificates, cert)
	}

	if len(c.ClientCAs) > 0 {
		pool := x509.NewCertPool()
		for _, file := range c.ClientCAs {
			pemCert, err := os.ReadFile(file)
			if err != nil {
				return nil, err
			}

			if !pool.AppendCertsFromPEM(pemCert) {
				return nil, ErrUnableToAddClientCACertificate
			}
		}

		tc.ClientCAs = pool
		tc.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return tc, nil
}
