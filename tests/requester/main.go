package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const body = `{
	"shipping": {
		"full_name": "Ann Lee",
		"phone": "+14155550100",
		"line1": "1 Main St",
		"city": "Springfield",
		"postal_code": "12345",
		"country": "US"
	},
	"payment_method": "card"
}`

// Fires bursts of checkouts sharing one idempotency key, the way a client
// retrying on a flaky network does. Exactly one order per key must come out.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	customer := flag.String("customer", "c1", "customer id sent in X-Customer-ID")
	flag.Parse()

	for {
		key := randomID(16)
		var wg sync.WaitGroup
		for range rand.Intn(10) + 1 {
			wg.Go(func() { doRequest(*baseURL+"/checkout", *customer, key) })
		}
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest(url, customer, key string) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Customer-ID", customer)
	req.Header.Set("Idempotency-Key", key)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	fmt.Println("POST", url, key, "->", resp.Status)
	resp.Body.Close()
}
