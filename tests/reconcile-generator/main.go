package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/events"
	"github.com/google/uuid"
)

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "checkout-reconcile", "reconcile topic")
	customers := flag.String("customers", "c1,c2,c3", "comma separated customer ids")
	every := flag.Duration("every", 2*time.Second, "publish interval")
	flag.Parse()

	writer := events.NewWriter(strings.Split(*brokers, ","), *topic, 10*time.Millisecond)
	defer writer.Close()
	// Only tasks are produced here.
	publisher := events.NewPublisher(writer, writer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ids := strings.Split(*customers, ",")

	ticker := time.NewTicker(*every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			task := randomTask(ids)
			if err := publisher.Enqueue(ctx, task); err != nil {
				log.Println("failed to publish task:", err)
				continue
			}
			log.Println("task published", task.Kind, task.OrderID)
		case <-ctx.Done():
			return
		}
	}
}

func randomTask(customers []string) entities.ReconcileTask {
	task := entities.ReconcileTask{
		ID:         uuid.NewString(),
		Kind:       entities.ReconcileDeleteOrphanOrder,
		CustomerID: customers[rand.Intn(len(customers))],
		OrderID:    uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
	}
	if rand.Intn(2) == 0 {
		task.Kind = entities.ReconcileClearCart
		for range rand.Intn(3) + 1 {
			task.CartItemIDs = append(task.CartItemIDs, uuid.NewString())
		}
	}
	return task
}
