package api

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/killallgit/gameshelf-api/api/types"
)

var appHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		cfg             CORSConfig
		method          string
		origin          string
		expectedStatus  int
		expectedBody    string
		expectedHeaders map[string]string
	}{
		{
			name:           "preflight request",
			cfg:            CORSConfig{Origins: []string{"*"}, Headers: appHeaders},
			method:         http.MethodOptions,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
			expectedBody:   "",
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
				"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
			},
		},
		{
			name:           "regular POST request",
			cfg:            CORSConfig{Origins: []string{"*"}, Headers: appHeaders},
			method:         http.MethodPost,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"success"}`,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin": "*",
			},
		},
		{
			name:           "listed origin is echoed",
			cfg:            CORSConfig{Origins: []string{"https://shelf.example"}},
			method:         http.MethodGet,
			origin:         "https://shelf.example",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"success"}`,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin": "https://shelf.example",
				"Vary":                        "Origin",
			},
		},
		{
			name:           "unlisted origin gets no allow header",
			cfg:            CORSConfig{Origins: []string{"https://shelf.example"}},
			method:         http.MethodGet,
			origin:         "https://evil.example",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"success"}`,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin": "",
			},
		},
		{
			name:           "empty config defaults to any origin",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"success"}`,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Headers": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.cfg))
			router.Any("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			for header, expectedValue := range tt.expectedHeaders {
				assert.Equal(t, expectedValue, w.Header().Get(header), "Header: %s", header)
			}
		})
	}
}

func TestRequestSizeLimitWithSize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	customLimit := int64(512 * 1024)

	tests := []struct {
		name           string
		bodySize       int
		expectedStatus int
	}{
		{name: "request under limit", bodySize: 256 * 1024, expectedStatus: http.StatusOK},
		{name: "request at limit", bodySize: 512 * 1024, expectedStatus: http.StatusOK},
		{name: "request over limit", bodySize: 1024 * 1024, expectedStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestSizeLimitWithSize(customLimit))
			router.POST("/test", func(c *gin.Context) {
				_, err := io.ReadAll(c.Request.Body)
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					c.Status(http.StatusRequestEntityTooLarge)
					return
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(strings.Repeat("a", tt.bodySize)))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		requestCount      int
		requestsPerSecond int
		burstSize         int
		expectSomeBlocked bool
		waitBetween       time.Duration
	}{
		{
			name:              "requests under rate limit",
			requestCount:      3,
			requestsPerSecond: 10,
			burstSize:         5,
		},
		{
			name:              "burst requests",
			requestCount:      6,
			requestsPerSecond: 2,
			burstSize:         3,
			expectSomeBlocked: true,
		},
		{
			name:              "spaced requests",
			requestCount:      5,
			requestsPerSecond: 10,
			burstSize:         2,
			waitBetween:       150 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupStop := make(chan struct{})
			defer close(cleanupStop)

			router := gin.New()
			router.Use(PerClientRateLimit(&sync.Map{}, cleanupStop, &sync.Once{}, tt.requestsPerSecond, tt.burstSize))
			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			successCount, blockedCount := 0, 0
			var blockedBody string
			for i := 0; i < tt.requestCount; i++ {
				if tt.waitBetween > 0 && i > 0 {
					time.Sleep(tt.waitBetween)
				}

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				req.RemoteAddr = "127.0.0.1:12345"
				router.ServeHTTP(w, req)

				switch w.Code {
				case http.StatusOK:
					successCount++
				case http.StatusTooManyRequests:
					blockedCount++
					blockedBody = w.Body.String()
				}
			}

			if tt.expectSomeBlocked {
				assert.Greater(t, blockedCount, 0, "Expected some requests to be blocked")
				assert.JSONEq(t, `{"success":false,"error":"`+types.MsgTooManyRequests+`"}`, blockedBody)
			} else {
				assert.Equal(t, 0, blockedCount, "Expected no requests to be blocked")
				assert.Equal(t, tt.requestCount, successCount, "Expected all requests to succeed")
			}
		})
	}
}

func TestPerClientRateLimit_DifferentClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cleanupStop := make(chan struct{})
	defer close(cleanupStop)

	router := gin.New()
	router.Use(PerClientRateLimit(&sync.Map{}, cleanupStop, &sync.Once{}, 2, 2))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.1:54321"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPerClientRateLimit_ConcurrentSameClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cleanupStop := make(chan struct{})
	defer close(cleanupStop)

	limiters := &sync.Map{}
	router := gin.New()
	router.Use(PerClientRateLimit(limiters, cleanupStop, &sync.Once{}, 1000, 1000))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.RemoteAddr = "10.0.0.1:4000"
				router.ServeHTTP(httptest.NewRecorder(), req)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 25; j++ {
			sweepRateLimiters(limiters, time.Now(), time.Hour)
		}
	}()
	wg.Wait()

	value, ok := limiters.Load("10.0.0.1")
	if assert.True(t, ok) {
		assert.Less(t, value.(*clientLimiter).idleSince(time.Now()), time.Minute)
	}
}

func TestSweepRateLimiters(t *testing.T) {
	limiters := &sync.Map{}
	limiters.Store("client", newClientLimiter(1, 1))

	sweepRateLimiters(limiters, time.Now().Add(5*time.Minute), 10*time.Minute)
	_, ok := limiters.Load("client")
	assert.True(t, ok)

	sweepRateLimiters(limiters, time.Now().Add(11*time.Minute), 10*time.Minute)
	_, ok = limiters.Load("client")
	assert.False(t, ok)
}

func TestCleanupOldRateLimiters_Stops(t *testing.T) {
	cleanupStop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		cleanupOldRateLimiters(&sync.Map{}, cleanupStop)
		close(done)
	}()
	close(cleanupStop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not stop")
	}
}
