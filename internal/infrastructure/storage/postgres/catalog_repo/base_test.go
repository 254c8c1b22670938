package catalog_repo

import (
	"context"
	"testing"
)

func newTestRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "version", "code", "name"}, func() any { return nil })
}

func TestBaseSelect_SQL(t *testing.T) {
	repo := newTestRepo()

	sql, _, err := repo.baseSelect(context.Background()).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	want := "SELECT id, version, code, name FROM test_table"
	if sql != want {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", want, sql)
	}
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to name", orderBy: "", want: "name ASC"},
		{name: "plain field", orderBy: "code", want: "code ASC"},
		{name: "descending prefix", orderBy: "-code", want: "code DESC"},
		{name: "explicit ascending prefix", orderBy: "+name", want: "name ASC"},
		{name: "unknown field rejected", orderBy: "quantity; DROP TABLE", wantErr: true},
		{name: "bare minus rejected", orderBy: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOrderBy failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidColumn(t *testing.T) {
	repo := newTestRepo()

	if !repo.validColumn("code") {
		t.Error("code should be a valid column")
	}
	if repo.validColumn("password") {
		t.Error("unknown column should be rejected")
	}
}
