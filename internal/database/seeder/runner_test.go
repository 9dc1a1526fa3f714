package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/wate11/HyMatch-project/internal/database"
)

type mockDB struct{}

func (mockDB) Ping(context.Context) error { return nil }
func (mockDB) Close() error               { return nil }
func (mockDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (mockDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

type mockSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (m mockSeeder) Name() string { return m.name }
func (m mockSeeder) Run(context.Context, database.DB) error {
	*m.ran = append(*m.ran, m.name)
	return m.err
}

func TestRunner_RunsInOrder(t *testing.T) {
	var ran []string
	r := Runner{Seeders: []Seeder{
		mockSeeder{name: "schema", ran: &ran},
		nil,
		mockSeeder{name: "jobs", ran: &ran},
	}}

	if err := r.Run(context.Background(), mockDB{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ran) != 2 || ran[0] != "schema" || ran[1] != "jobs" {
		t.Fatalf("expected [schema jobs], got %v", ran)
	}
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		mockSeeder{name: "schema", err: boom, ran: &ran},
		mockSeeder{name: "jobs", ran: &ran},
	}}

	err := r.Run(context.Background(), mockDB{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped seeder error, got %v", err)
	}
	if len(ran) != 1 {
		t.Fatalf("later seeders must not run after a failure, got %v", ran)
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
