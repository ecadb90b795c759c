package main

import (
	"log"
	"os"

	"rectsum/internal/geom"
	"rectsum/internal/report"
)

func main() {
	totals := geom.Sum(geom.Tables())
	if err := report.New(os.Stdout).Print(totals); err != nil {
		log.Fatal(err)
	}
}
