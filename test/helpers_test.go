//go:build integration
// +build integration

package test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	planner "github.com/shahriyarnawaz/Planner"
	"github.com/shahriyarnawaz/Planner/store"
)

func newIntegrationStore(t *testing.T) (store.Store, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := store.NewRedis(rdb, "planner")

	return s, mr, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

func mintToken(t *testing.T, ttl time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("integration-key"))
	if err != nil {
		t.Fatalf("mint token failed: %v", err)
	}
	return raw
}

func encodeUser(t *testing.T, user planner.UserRecord) string {
	t.Helper()

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("encode user failed: %v", err)
	}
	return string(raw)
}

type stubAPI struct {
	payload planner.LoginPayload
	err     error
}

func (a *stubAPI) Login(context.Context, string, string) (planner.LoginPayload, error) {
	if a.err != nil {
		return planner.LoginPayload{}, a.err
	}
	return a.payload, nil
}

func (a *stubAPI) Profile(context.Context, string) (planner.Profile, error) {
	return planner.Profile{}, planner.ErrBackendUnavailable
}

type navRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (n *navRecorder) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *navRecorder) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}
