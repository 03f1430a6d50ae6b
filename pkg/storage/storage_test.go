package storage

import (
	"context"
	"errors"
	"testing"
)

func TestOpenSQLiteMemory(t *testing.T) {
	db, err := Open(context.Background(), Config{
		Driver: "sqlite",
		DSN:    "file:storage_open_test?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	var one int
	if err := db.NewSelect().ColumnExpr("1").Scan(context.Background(), &one); err != nil {
		t.Fatalf("select: %v", err)
	}
	if one != 1 {
		t.Fatalf("expected 1, got %d", one)
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{name: "missing dsn", cfg: Config{Driver: "sqlite"}, want: ErrDSNRequired},
		{name: "unknown driver", cfg: Config{Driver: "oracle", DSN: "x"}, want: ErrDriverUnsupported},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Open(context.Background(), tc.cfg); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
