// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quorion/testutil"
)

// TestConcurrentProjectPages verifies that simultaneous page views each get
// their own lookup and a complete page
func TestConcurrentProjectPages(t *testing.T) {
	for _, stream := range []bool{false, true} {
		cfg := testutil.GetTestConfig()
		cfg.StreamPages = stream
		handler, create := newTestHandler(t, cfg)

		first := testutil.NewTestProject()
		second := testutil.NewTestProject()
		second.Name = "Leaf Atlas"
		ids := []string{create(first), create(second), "missing"}

		numRequests := 30
		var okCount, wrongCount atomic.Int32
		var wg sync.WaitGroup

		for i := 0; i < numRequests; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				id := ids[i%len(ids)]
				w := getProjectPage(handler, id)
				body := w.Body.String()

				switch id {
				case "missing":
					if strings.Contains(body, "Project not found") && !strings.Contains(body, "Project Actions") {
						okCount.Add(1)
						return
					}
				case ids[1]:
					if w.Code == http.StatusOK && strings.Contains(body, "Leaf Atlas") {
						okCount.Add(1)
						return
					}
				default:
					if w.Code == http.StatusOK && strings.Contains(body, "Urban Noise Map") && !strings.Contains(body, "Leaf Atlas") {
						okCount.Add(1)
						return
					}
				}
				wrongCount.Add(1)
			}(i)
		}

		wg.Wait()

		if int(okCount.Load()) != numRequests {
			t.Errorf("stream=%v: expected %d correct pages, got %d (%d wrong)", stream, numRequests, okCount.Load(), wrongCount.Load())
		}
	}
}
