// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package apptls

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"os"
)

// CreateTestCertificate creates a self-signed x509 ceritificate for use in testing
// TLS code.  A 2048-bit RSA key pair is used, and otherwise all defaults are taken.
func CreateTestCertificate(template *x509.Certificate) (*tls.Certificate, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}

	return &tls.Certificate{
		Certificate: [][]byte{derBytes},
		PrivateKey:  key,
	}, nil
}

// CreateTestServerFiles writes the certificate file and key file expected by
// ExternalCertificate into the given directory.  The first entry of the certificate's
// chain is written as the certificate.
func CreateTestServerFiles(dir string, certificate *tls.Certificate) (certificateFileName, keyFileName string, err error) {
	var (
		certificateFile *os.File
		keyFile         *os.File
		keyBytes        []byte
	)

	certificateFile, err = os.CreateTemp(dir, "test-cert-*.pem")
	if err == nil {
		defer certificateFile.Close()
		keyFile, err = os.CreateTemp(dir, "test-key-*.pem")
	}

	if err == nil {
		defer keyFile.Close()
		err = pem.Encode(certificateFile, &pem.Block{
			Type:  "CERTIFICATE",
			Bytes: certificate.Certificate[0],
		})
	}

	if err == nil {
		keyBytes, err = x509.MarshalPKCS8PrivateKey(certificate.PrivateKey)
	}

	if err == nil {
		err = pem.Encode(keyFile, &pem.Block{
			Type:  "PRIVATE KEY",
			Bytes: keyBytes,
		})
	}

	if err == nil {
		certificateFileName = certificateFile.Name()
		keyFileName = keyFile.Name()
	}

	return
}
