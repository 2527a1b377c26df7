package main

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server (API_URL)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := apiURL()
	if len(args) > 0 {
		base = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(base + path); err != nil {
			PrintError("%s: %v", path, err)
			return err
		}
		duration := time.Since(start)

		if duration > time.Second {
			PrintWarning("%s: slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}

	return nil
}

func checkEndpoint(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}
