// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

// TestEmbeddedMigrations checks that every embedded file carries goose
// annotations for both directions.
func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, name := range files {
		data, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)

		content := string(data)
		assert.True(t, strings.Contains(content, "-- +goose Up"), "%s: missing Up annotation", name)
		assert.True(t, strings.Contains(content, "-- +goose Down"), "%s: missing Down annotation", name)
	}
}

func TestEmbeddedMigrations_Schema(t *testing.T) {
	users, err := fs.ReadFile(embedMigrations, "00001_users.sql")
	require.NoError(t, err)
	posts, err := fs.ReadFile(embedMigrations, "00002_posts.sql")
	require.NoError(t, err)

	assert.Contains(t, string(users), "UNIQUE (username)")
	assert.Contains(t, string(users), "UNIQUE (email)")
	assert.Contains(t, string(users), "PRIMARY KEY (follower_id, followee_id)")
	assert.Contains(t, string(posts), "CHECK (text <> '' OR file <> '')")
	assert.Contains(t, string(posts), "PRIMARY KEY (post_id, user_id)")
}
