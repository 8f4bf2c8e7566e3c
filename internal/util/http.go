package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

var client = http.Client{Timeout: 12 * time.Second}

// GetBytes fetches url and returns the body of a 200 response.
func GetBytes(url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
