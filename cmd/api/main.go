package main

import (
	"log"

	"stockpulse/cmd"

	_ "github.com/lib/pq"
)

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	if err := deps.QuoteRefreshApp.Start(); err != nil {
		log.Fatal(err)
	}

	if err := deps.ApiHandler.StartApi(3009); err != nil {
		log.Fatal(err)
	}
}
