package main

import (
	"fmt"
	"strings"
	"time"

	"wordbag/internal/config"
)

func expandFlagPath(flag, value string) (string, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%s: %w", flag, err)
	}
	return expanded, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
