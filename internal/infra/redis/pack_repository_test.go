package redis

import (
	"context"
	"testing"
	"time"

	"triviahost/internal/domain"
	"triviahost/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestPackRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	loader := &countingLoader{
		PackLoader: memory.NewStaticPackLoader(map[string]domain.QuestionPack{
			"default": samplePack(),
		}),
	}
	repo := NewPackRepository(client, loader, time.Minute)

	pack, err := repo.GetPack(context.Background(), "default")
	if err != nil {
		t.Fatalf("get pack: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if len(pack.Questions) != 1 || pack.Questions[0].Answer != 1 {
		t.Fatalf("unexpected pack content: %+v", pack)
	}
	if !mr.Exists("pack:default") {
		t.Fatalf("expected pack cached under pack:default")
	}

	// Second call should hit Redis, loader not incremented.
	cached, err := repo.GetPack(context.Background(), "default")
	if err != nil {
		t.Fatalf("get pack cached: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if cached.Questions[0].Prompt != pack.Questions[0].Prompt {
		t.Fatalf("cached pack diverged: %+v", cached)
	}
}

func TestPackRepositoryReloadsCorruptEntries(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	if err := mr.Set("pack:default", "{not json"); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}

	loader := &countingLoader{
		PackLoader: memory.NewStaticPackLoader(map[string]domain.QuestionPack{
			"default": samplePack(),
		}),
	}
	repo := NewPackRepository(client, loader, time.Minute)

	if _, err := repo.GetPack(context.Background(), "default"); err != nil {
		t.Fatalf("get pack: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected reload past corrupt cache, loader calls=%d", loader.calls)
	}
}

type countingLoader struct {
	memory.PackLoader
	calls int
}

func (l *countingLoader) LoadPack(ctx context.Context, packID string) (domain.QuestionPack, error) {
	l.calls++
	return l.PackLoader.LoadPack(ctx, packID)
}

func samplePack() domain.QuestionPack {
	return domain.QuestionPack{
		ID: "default",
		Questions: []domain.Question{
			{
				Prompt:  "What is 2 + 2?",
				Options: []string{"3", "4", "5", "6"},
				Answer:  1,
			},
		},
	}
}
