package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTracker(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	tr, err := Dial(ctx, addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer tr.Close()

	id := uuid.NewString()
	if alive, err := tr.Alive(ctx, id); err != nil || alive {
		t.Fatalf("fresh id alive=%v err=%v", alive, err)
	}
	if err := tr.Touch(ctx, id, time.Minute); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if alive, err := tr.Alive(ctx, id); err != nil || !alive {
		t.Fatalf("touched id alive=%v err=%v", alive, err)
	}
	if err := tr.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}
