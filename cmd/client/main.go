package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	view "github.com/GulizarHanum/Birthday/pkg/model"
)

const serverPort = 8080

// Usage example on the command line:
// > go run main.go
func main() {
	fmt.Println()
	fmt.Println("  Elements      POST       PUT       GET    DELETE ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{100, 500, 1000, 5000}
	postBody := []byte(`{
		"name": "Marcus Antonius",
		"date": "1983-11-09",
		"role": "FRIEND"
	}`)
	for _, loops := range sizes {
		firstID, _ := sendPostRequest(bytes.NewReader(postBody))
		fmt.Printf("%10d", loops)
		{
			// POST requests
			var duration int64
			for i := 0; i < loops; i++ {
				_, d := sendPostRequest(bytes.NewReader(postBody))
				duration += d
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		{
			// PUT requests
			f := func(id int64) int64 {
				body := fmt.Sprintf(`{"id": %d, "name": "Marcus Antonius", "date": "1983-11-09", "role": "FAMILY"}`, id)
				_, d := sendRequest(http.MethodPut, baseURL(), bytes.NewReader([]byte(body)))
				return d
			}
			callInLoop(firstID, loops, f)
		}
		{
			// GET requests
			f := func(id int64) int64 {
				_, d := sendRequest(http.MethodGet, fmt.Sprintf("%s/%d", baseURL(), id), nil)
				return d
			}
			callInLoop(firstID, loops, f)
		}
		{
			// DELETE requests
			f := func(id int64) int64 {
				return sendDeleteRequest(id)
			}
			callInLoop(firstID, loops, f)
		}
		sendDeleteRequest(firstID)
		fmt.Println()
	}
}

func baseURL() string {
	return fmt.Sprintf("http://localhost:%d/v1/birthdays", serverPort)
}

func callInLoop(firstID int64, loops int, f func(id int64) int64) {
	ids := createRandomSliceWithIDs(firstID+1, loops)
	var duration int64
	for _, id := range ids {
		d := f(id)
		duration += d
	}
	fmt.Printf("%10d", duration/int64(loops*1000))
}

func createRandomSliceWithIDs(firstID int64, loops int) []int64 {
	ids := make([]int64, 0, loops)
	for i := 0; i < loops; i++ {
		ids = append(ids, firstID+int64(i))
	}
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return ids
}

// sendPostRequest adds a birthday. The response lists all birthdays, so the new one is the one
// with the highest id.
func sendPostRequest(bodyReader io.Reader) (int64, int64) {
	resBody, duration := sendRequest(http.MethodPost, baseURL(), bodyReader)
	var birthdays []view.Birthday
	err := json.Unmarshal(resBody, &birthdays)
	if err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	var newest int64
	for _, b := range birthdays {
		if b.Id != nil && *b.Id > newest {
			newest = *b.Id
		}
	}
	return newest, duration
}

func sendDeleteRequest(id int64) int64 {
	_, duration := sendRequest(http.MethodDelete, fmt.Sprintf("%s?id=%d", baseURL(), id), nil)
	return duration
}

func sendRequest(method string, requestURL string, bodyReader io.Reader) ([]byte, int64) {
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	before := time.Now().UnixNano()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	after := time.Now().UnixNano()
	return resBody, after - before
}
