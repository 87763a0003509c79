package main

// genhash prints the argon2id PHC hash of a password, for seeding users by
// hand or rotating credentials directly in the database.
//
// Usage: genhash <password>

import (
	"fmt"
	"os"

	"inventia/internal/service"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(1)
	}

	hash, err := service.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
