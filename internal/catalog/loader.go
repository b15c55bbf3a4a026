// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"github.com/tomtom215/reelmatch/internal/logging"
)

// catalogColumns are the CSV columns the loader requires.
var catalogColumns = []string{
	"title", "type", "listed_in", "release_year", "description",
	"cast", "director", "rating", "duration",
}

// LoadCSV reads a catalog export through an in-memory DuckDB instance.
//
// All columns are read as VARCHAR so that sparse or oddly typed exports do not
// trip type inference; release_year is converted with TRY_CAST and becomes nil
// when unparseable. Rows with an empty title are skipped. Row order matches the
// file, which fixes each item's index.
func LoadCSV(ctx context.Context, path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	items, err := queryItems(ctx, db, path)
	if err != nil {
		return nil, err
	}

	cat := New(items)
	lg := logging.WithComponent("catalog")
	lg.Info().
		Str("path", path).
		Int("items", cat.Len()).
		Int("movies", cat.MovieCount()).
		Int("tv_shows", cat.ShowCount()).
		Msg("Catalog loaded")
	return cat, nil
}

func queryItems(ctx context.Context, db *sql.DB, path string) ([]Item, error) {
	query := buildCatalogQuery(path)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog csv: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []Item
	for rows.Next() {
		var (
			title, typ, listedIn, description sql.NullString
			cast, director, rating, duration  sql.NullString
			year                              sql.NullInt64
		)
		if err := rows.Scan(&title, &typ, &listedIn, &year, &description,
			&cast, &director, &rating, &duration); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		// untitled rows stay so row indexes line up with the embeddings artifact
		it := Item{
			Title:       strings.TrimSpace(title.String),
			Type:        ParseMediaType(typ.String),
			ListedIn:    listedIn.String,
			Description: description.String,
			Cast:        cast.String,
			Director:    director.String,
			Rating:      rating.String,
			Duration:    duration.String,
		}
		if year.Valid {
			it.ReleaseYear = IntPtr(int(year.Int64))
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog row iteration failed: %w", err)
	}
	return items, nil
}

// buildCatalogQuery inlines the path as a SQL string literal; table functions
// do not accept bound parameters for the file argument.
func buildCatalogQuery(path string) string {
	literal := "'" + strings.ReplaceAll(path, "'", "''") + "'"

	cols := make([]string, 0, len(catalogColumns))
	for _, c := range catalogColumns {
		if c == "release_year" {
			cols = append(cols, "TRY_CAST(TRY_CAST(release_year AS DOUBLE) AS BIGINT) AS release_year")
			continue
		}
		cols = append(cols, fmt.Sprintf("%q", c))
	}

	return fmt.Sprintf(
		"SELECT %s FROM read_csv_auto(%s, header = true, all_varchar = true)",
		strings.Join(cols, ", "), literal,
	)
}
