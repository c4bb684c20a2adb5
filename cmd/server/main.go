package main

import (
	"log"

	"github.com/Saannndddyyyyy/best-manager/internal/app"
)

func main() {
	server, err := app.NewServer()
	if err != nil {
		log.Fatal(err)
	}
	log.Fatal(server.Start())
}
