package infra

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"log/slog"
	"strings"
)

// ParseOrGenerateSigningKey parses the PEM encoded RSA key used to sign
// access tokens. Without one configured, a throwaway key is generated:
// tokens then stop working across restarts and replicas, which is fine
// for local development only.
func ParseOrGenerateSigningKey(logger *slog.Logger, privateKeyString string) *rsa.PrivateKey {
	if privateKeyString == "" {
		logger.Warn("AUTHENTICATION_JWT_SIGNING_KEY is not set, generating a one-off signing key")
		privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			log.Fatalf("Can't generate a signing key: %s", err)
		}
		return privateKey
	}
	return MustParseSigningKey(privateKeyString)
}

func MustParseSigningKey(privateKeyString string) *rsa.PrivateKey {
	// docker-compose escapes the newlines of multi-line env variables
	privateKeyString = strings.Replace(privateKeyString, "\\n", "\n", -1)
	block, _ := pem.Decode([]byte(privateKeyString))
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		log.Fatalf("failed to decode PEM block containing RSA private key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		log.Fatalf("Can't load AUTHENTICATION_JWT_SIGNING_KEY private key %s", err)
	}
	return privateKey
}
