/*
Copyright 2026 Dima Krasner

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package creds stores access tokens of Mastodon instances in a SQLite database.
package creds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/oauth2"
)

// ErrNotFound is returned by [Store.Load] when there is no token for an instance.
var ErrNotFound = errors.New("no credentials")

// Credential is an access token for an instance. It implements [oauth2.TokenSource].
type Credential struct {
	Instance    string
	AccessToken string
	UserID      string
}

func (c *Credential) Token() (*oauth2.Token, error) {
	if c.AccessToken == "" {
		return nil, fmt.Errorf("%w for %s", ErrNotFound, c.Instance)
	}

	return &oauth2.Token{AccessToken: c.AccessToken, TokenType: "Bearer"}, nil
}

type Store struct {
	db *sql.DB
}

// Open opens a credentials database and creates it if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS credentials(instance STRING NOT NULL PRIMARY KEY, token STRING NOT NULL, userid STRING, inserted INTEGER DEFAULT (UNIXEPOCH()))`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create credentials table in %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Save stores a token and replaces the previous token of the same instance.
func (s *Store) Save(ctx context.Context, c *Credential) error {
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO credentials(instance, token, userid) VALUES($1, $2, NULLIF($3, '')) ON CONFLICT(instance) DO UPDATE SET token = $2, userid = NULLIF($3, ''), inserted = UNIXEPOCH()`,
		c.Instance,
		c.AccessToken,
		c.UserID,
	); err != nil {
		return fmt.Errorf("failed to save credentials for %s: %w", c.Instance, err)
	}

	return nil
}

// SetUserID caches the account ID of the token owner.
func (s *Store) SetUserID(ctx context.Context, instance, userID string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE credentials SET userid = $1 WHERE instance = $2`, userID, instance)
	if err != nil {
		return fmt.Errorf("failed to set user ID for %s: %w", instance, err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to set user ID for %s: %w", instance, err)
	} else if n == 0 {
		return fmt.Errorf("%w for %s", ErrNotFound, instance)
	}

	return nil
}

// Load returns the token of an instance.
func (s *Store) Load(ctx context.Context, instance string) (*Credential, error) {
	c := Credential{Instance: instance}
	var userID sql.NullString

	if err := s.db.QueryRowContext(ctx, `SELECT token, userid FROM credentials WHERE instance = ?`, instance).Scan(&c.AccessToken, &userID); errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w for %s", ErrNotFound, instance)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load credentials for %s: %w", instance, err)
	}

	c.UserID = userID.String
	return &c, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
