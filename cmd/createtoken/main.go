package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"securityscan.com/securityscan/security"
)

func main() {
	id := flag.String("id", "cli", "identity id")
	name := flag.String("name", "cli", "identity name")
	email := flag.String("email", "", "identity email")
	role := flag.String("role", "admin", "identity role")
	ttl := flag.Int64("ttl", 3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("SECURITYSCAN_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("SECURITYSCAN_SIGNING_SECRET is required")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:    *id,
		Name:  *name,
		Email: *email,
		Role:  *role,
	}, secret, *ttl)
	if err != nil {
		log.Fatalf("failed to create token: %v", err)
	}

	fmt.Println(token)
}
