// Command token issues a bearer token for the market API.
//
//	go run ./cmd/token -sub mobile-app
package main

import (
	"flag"
	"fmt"
	"os"

	"market_movers/internal/config"
	jwtmw "market_movers/internal/platform/jwt"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file")
	subject := flag.String("sub", "", "client id written into the token subject")
	flag.Parse()

	if err := run(*envFile, *subject); err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
}

func run(envFile, subject string) error {
	cfg, err := config.LoadJWT(envFile)
	if err != nil {
		return err
	}

	token, err := jwtmw.NewGenerator(cfg.Secret, cfg.Expiration).GenerateToken(subject)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
