package audit

import (
	"context"
	"net/http"
	"time"
)

const defaultUserAgent = "metergeist-link-checker/1.0 (+https://metergeist.com)"

// Checker probes external URLs sequentially with a polite delay.
type Checker struct {
	Client    *http.Client
	UserAgent string
	Delay     time.Duration
}

// NewChecker returns a Checker with the default client, agent, and delay.
func NewChecker() *Checker {
	return &Checker{
		Client:    &http.Client{Timeout: 15 * time.Second},
		UserAgent: defaultUserAgent,
		Delay:     300 * time.Millisecond,
	}
}

// CheckURL probes one URL: HEAD first, falling back to GET when the server
// rejects HEAD with 403 or 405 or the request fails. Returns the status and
// elapsed milliseconds; status 0 means the connection failed entirely.
func (c *Checker) CheckURL(ctx context.Context, target string) (status, responseMS int) {
	start := time.Now()
	st, err := c.request(ctx, http.MethodHead, target)
	elapsed := int(time.Since(start).Milliseconds())
	if err == nil && st != 403 && st != 405 {
		return st, elapsed
	}

	start = time.Now()
	st, err = c.request(ctx, http.MethodGet, target)
	elapsed = int(time.Since(start).Milliseconds())
	if err != nil {
		return 0, elapsed
	}
	return st, elapsed
}

func (c *Checker) request(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// CheckResult reports an external check pass.
type CheckResult struct {
	Checked int
	Broken  int
}

// CheckExternal probes every distinct external target recorded by the last
// scan and stores the outcomes. progress, if non-nil, is called after each
// URL.
func CheckExternal(ctx context.Context, store *Store, c *Checker, progress func(target string, status int)) (CheckResult, error) {
	targets, err := store.ExternalTargets()
	if err != nil {
		return CheckResult{}, err
	}
	var result CheckResult
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		status, ms := c.CheckURL(ctx, target)
		if err := store.MarkChecked(target, status, ms, time.Now()); err != nil {
			return result, err
		}
		result.Checked++
		if status == 0 || status == 404 || status == 410 {
			result.Broken++
		}
		if progress != nil {
			progress(target, status)
		}
		if c.Delay > 0 {
			time.Sleep(c.Delay)
		}
	}
	return result, nil
}
