package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/CommunityWatch/CW-Backend/internal/db"
	"github.com/CommunityWatch/CW-Backend/internal/jurisdiction"
	"github.com/joho/godotenv"
)

// Resolves a lat/lon against the boundary dataset and prints the filing
// authority, defer chain included. Usage: check-point <lat> <lon>
func main() {
	_ = godotenv.Load(".env.local")

	if len(os.Args) != 3 {
		log.Fatal("usage: check-point <lat> <lon>")
	}
	lat, latErr := strconv.ParseFloat(os.Args[1], 64)
	lon, lonErr := strconv.ParseFloat(os.Args[2], 64)
	if latErr != nil || lonErr != nil {
		log.Fatal("lat and lon must be decimal degrees")
	}

	path := os.Getenv("BOUNDARY_GEOJSON")
	if path == "" {
		log.Fatal("BOUNDARY_GEOJSON not set")
	}
	boundaries, err := jurisdiction.LoadBoundaries(path)
	if err != nil {
		log.Fatalf("Boundary load error: %v", err)
	}
	fmt.Printf("Loaded %d boundary features\n", boundaries.Len())

	db.Connect()
	store := jurisdiction.NewStore(db.DB)
	resolver := &jurisdiction.Resolver{Boundaries: boundaries, Store: store}

	resolution, err := resolver.Resolve(context.Background(), lat, lon)
	if err != nil {
		log.Fatalf("Resolve error: %v", err)
	}
	if resolution == nil {
		fmt.Println("No jurisdiction contains this point")
		return
	}

	fmt.Printf("Matched jurisdiction: %s", resolution.JurisdictionID)
	if resolution.Gis != nil {
		fmt.Printf(" (%s)", resolution.Gis.Name)
	}
	fmt.Println()

	if resolution.Filing == nil {
		fmt.Println("No filing info on record")
		return
	}
	fmt.Printf("Filing info last updated: %s\n", resolution.Filing.LastUpdated)
	for _, m := range resolution.Filing.Methods {
		fmt.Printf("  - %s: %v\n", m.Method, m.Values)
	}
	for _, d := range resolution.Filing.Documents {
		fmt.Printf("  - %s: %s\n", d.Name, d.URL)
	}
}
