//go:build ignore

// Publishes a submitted event for an existing request id and waits for the
// status worker to report it on stream:optimization:done.
//
//	go run scripts/test_publish.go -request opt_1700000000_0a1b2c3d
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type submittedEvent struct {
	RunID       uuid.UUID `json:"run_id"`
	RequestID   string    `json:"request_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	requestID := flag.String("request", "", "optimizer request id to track")
	wait := flag.Duration("wait", 2*time.Minute, "how long to wait for the done event")
	flag.Parse()

	if *requestID == "" {
		log.Fatal("-request is required")
	}

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := submittedEvent{
		RunID:       uuid.New(),
		RequestID:   *requestID,
		SubmittedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// read the done stream from here on
	lastID := "$"
	if last, err := client.XRevRangeN(ctx, "stream:optimization:done", "+", "-", 1).Result(); err == nil && len(last) == 1 {
		lastID = last[0].ID
	}

	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:optimization:submitted",
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: stream:optimization:submitted\n")
	fmt.Printf("   Message ID: %s\n", msgID)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("\nWaiting for stream:optimization:done...\n")

	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{"stream:optimization:done", lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil && err != redis.Nil {
			log.Fatalf("Failed to read done stream: %v", err)
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var done map[string]interface{}
				if err := json.Unmarshal([]byte(raw), &done); err != nil {
					continue
				}
				if done["request_id"] == event.RequestID {
					pretty, _ := json.MarshalIndent(done, "", "  ")
					fmt.Printf("\nDone event received:\n%s\n", pretty)
					return
				}
			}
		}
	}
	fmt.Println("Timeout waiting for done event")
}
