package quotes

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// dailyCache implements a simple disk cache for HTTP responses keyed
// per day, so slow bulk downloads (like the AMFI NAV dump) are fetched
// at most once a day.
type dailyCache struct {
	base http.RoundTripper
}

func (c *dailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("nivesh-%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func (c *dailyCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *dailyCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	// DumpResponse drained the body; put it back for the caller.
	resp.Body = io.NopCloser(bytes.NewReader(contentBody(content)))
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// contentBody returns the body part of a dumped HTTP response.
func contentBody(dump []byte) []byte {
	if i := bytes.Index(dump, []byte("\r\n\r\n")); i >= 0 {
		return dump[i+4:]
	}
	return nil
}

// daily returns a client whose responses are disk-cached until the end
// of the day.
func daily() *http.Client {
	return &http.Client{Transport: &dailyCache{http.DefaultTransport}}
}

// userAgent identifies the client; some quote endpoints reject requests
// without one.
const userAgent = "nivesh/1.0"

// jwget performs an HTTP GET and unmarshals the JSON response into the
// provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
