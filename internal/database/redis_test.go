package database

import (
	"strings"
	"testing"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient("not-a-redis-url")
	if err == nil {
		t.Fatal("Expected error for invalid Redis URL")
	}
	if !strings.Contains(err.Error(), "parse Redis URL") {
		t.Fatalf("unexpected error %q", err)
	}
}
