package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"buildings-api/internal/buildings"
	"buildings-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to a saved DataHub JSON response")
	search := flag.String("q", "", "Name search")
	sort := flag.String("sort", "asc", "Sort direction: asc or desc")
	pageSize := flag.Int("page-size", buildings.DefaultPageSize, "Items per page: 6, 12 or 24")
	page := flag.Int("page", 1, "Page number")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	dir, err := buildings.ParseSortDirection(*sort)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if !buildings.ValidPageSize(*pageSize) {
		fmt.Printf("Error: --page-size must be one of %v\n", buildings.PageSizes)
		os.Exit(1)
	}

	state := buildings.ViewState{Search: *search, Direction: dir, PageSize: *pageSize, Page: *page}
	if err := run(os.Stdout, *file, state); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, path string, state buildings.ViewState) error {
	records, err := readRecords(path)
	if err != nil {
		return err
	}

	markers := buildings.Markers(records, state)
	fmt.Fprintf(w, "Parsed %d records, %d markers\n", len(records), len(markers))
	for _, m := range markers {
		fmt.Fprintf(w, "  %-40s %10.6f %10.6f %s\n", m.Title, m.Position.Lat, m.Position.Lng, m.Geohash)
	}

	p := buildings.List(records, state)
	fmt.Fprintf(w, "Page %d/%d (%d items)\n", p.Page, p.TotalPages, p.TotalItems)
	for _, card := range buildings.Cards(p.Items) {
		fmt.Fprintf(w, "  %-40s %s, %s %s\n", card.Name, card.StreetName, card.PostalCode, card.City)
	}
	return nil
}

func readRecords(path string) ([]models.BuildingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var resp models.GroupedProductsResponse
	if err := json.NewDecoder(f).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}
	return resp.Data.GroupedProducts, nil
}
