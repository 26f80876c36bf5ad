package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKeyStableAndOpaque(t *testing.T) {
	a := Key("https://api.example.com/records/clients?key=secret")
	b := Key("https://api.example.com/records/clients?key=secret")
	if a != b {
		t.Error("same URL produced different keys")
	}
	if strings.Contains(a, "secret") {
		t.Error("key leaks URL contents")
	}
	if a == Key("https://api.example.com/records/cases") {
		t.Error("different URLs collided")
	}
	if !strings.HasPrefix(a, "caseglance:v1:") {
		t.Errorf("key %q missing version prefix", a)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Error("hit on empty cache")
	}
	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Get("k"); !ok || string(v) != "v" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	if err := c.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("hit after delete")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)
	if err := c.Set(Key("url"), []byte("payload"), 0); err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Get(Key("url")); !ok || string(v) != "payload" {
		t.Errorf("Get = %q, %v", v, ok)
	}

	// Expired entries miss and are removed.
	if err := c.Set(Key("old"), []byte("stale"), -time.Second); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(Key("old")); ok {
		t.Error("expired entry returned")
	}
}

func TestLayeredCachePromotes(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)
	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}

	// A fresh layered cache over the same dir only has the disk copy.
	c2 := NewLayeredCache(time.Minute, dir, time.Minute)
	if v, ok := c2.Get("k"); !ok || string(v) != "v" {
		t.Fatalf("disk fallback Get = %q, %v", v, ok)
	}
	if v, ok := c2.memory.Get("k"); !ok || string(v) != "v" {
		t.Error("disk hit not promoted to memory")
	}
}
