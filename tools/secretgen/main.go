// Package main generates a random token signing secret and writes it
// to a file readable only by the owner.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
)

// secretBytes is the raw length of the generated secret.
const secretBytes = 32

func main() {
	var out string
	flag.StringVar(&out, "o", "jwt.secret", "output file for the signing secret")
	flag.Parse()

	secret, err := generateSecret()
	if err != nil {
		log.Fatalf("failed to generate secret: %v", err)
	}

	if err := os.WriteFile(out, []byte(secret), 0600); err != nil {
		log.Fatalf("failed to write %s: %v", out, err)
	}

	fmt.Printf("✅ Signing secret written to %s\n", out)
}

// generateSecret returns a base64-encoded random secret.
func generateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
