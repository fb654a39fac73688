//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	perr "gitinsight/internal/platform/errors"
	"gitinsight/internal/platform/store"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func openStore(t *testing.T, dsn string) *store.Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	s, err := store.Open(ctx, store.Config{
		AppName: "gitinsight-candidates-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestCandidates_Roundtrip_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s := openStore(t, dsn)
	if err := EnsureSchema(ctx, s.PG); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	// second call must be a no-op
	if err := EnsureSchema(ctx, s.PG); err != nil {
		t.Fatalf("EnsureSchema not idempotent: %v", err)
	}

	r := NewPG().Bind(s.PG)
	username := "user-" + uuid.NewString()

	first, err := r.Upsert(ctx, UpsertInput{
		Username:  username,
		Name:      "The Octocat",
		AvatarURL: "https://example.com/a.png",
		Bio:       "builds things",
		Summary:   "v1 summary",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if first.ID == 0 || first.Username != username || first.Summary != "v1 summary" {
		t.Fatalf("first row = %+v", first)
	}
	if first.SavedAt.IsZero() {
		t.Fatalf("saved_at not set")
	}

	// same username replaces rather than duplicates
	second, err := r.Upsert(ctx, UpsertInput{Username: username, Summary: "v2 summary"})
	if err != nil {
		t.Fatalf("re-upsert failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created new row, ids %d vs %d", first.ID, second.ID)
	}
	if second.Summary != "v2 summary" || second.Name != "" {
		t.Fatalf("second row = %+v", second)
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	found := false
	for _, row := range list {
		if row.Username == username {
			found = true
		}
	}
	if !found {
		t.Fatalf("saved candidate missing from list")
	}

	if err := r.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	// deleting again is a no-op
	if err := r.Delete(ctx, second.ID); err != nil {
		t.Fatalf("repeat Delete failed: %v", err)
	}
}

func TestCandidates_SummaryLengthBackstop_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s := openStore(t, dsn)
	if err := EnsureSchema(ctx, s.PG); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	r := NewPG().Bind(s.PG)

	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'x'
	}
	_, err := r.Upsert(ctx, UpsertInput{Username: "user-" + uuid.NewString(), Summary: string(long)})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want InvalidArgument from varchar(2000), got %v", err)
	}
}
