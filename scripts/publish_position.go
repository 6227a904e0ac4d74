//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type positionFix struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ReportedAt time.Time `json:"reported_at"`
}

// Manual test helper: publishes one position fix onto the stream the position
// worker consumes. Run with `go run scripts/publish_position.go`.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	lat := flag.Float64("lat", 62.085348, "latitude")
	lng := flag.Float64("lng", 6.873744, "longitude")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	fix := positionFix{
		Lat:        *lat,
		Lng:        *lng,
		ReportedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(fix)
	if err != nil {
		log.Fatalf("Failed to marshal fix: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:position:updates",
		Values: map[string]interface{}{"data": string(payload)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish fix: %v", err)
	}

	fmt.Printf("Published position fix %s: %.6f, %.6f\n", id, fix.Lat, fix.Lng)
}
