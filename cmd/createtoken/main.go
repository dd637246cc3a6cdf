package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	"qurocare.com/alms/security"
)

// Mints a session token for an employee name, for poking the API without
// going through the login form.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <employee name>", os.Args[0])
	}

	secret, err := base64.StdEncoding.DecodeString(os.Getenv("ALMS_SIGNING_SECRET"))
	if err != nil || len(secret) == 0 {
		log.Fatal("ALMS_SIGNING_SECRET must be a non-empty base64 string")
	}

	token, err := security.CreateSessionToken(os.Args[1], secret, time.Hour)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
