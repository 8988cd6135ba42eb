// Copyright 2026 The maclab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

const pgUndefinedTable = "42P01"

// postgresStore keeps profiles in a two column table (key, data). The table
// is created on the first write.
type postgresStore struct {
	pool  *pgxpool.Pool
	table string
	key   string
}

func newPostgresStore(ctx context.Context, conf config.PostgresConfig, key string) (*postgresStore, error) {
	if len(conf.DSN) == 0 {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"postgres profile store requires 'dsn' property to be set")
	}

	if len(conf.Table) == 0 {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"postgres profile store requires 'table' property to be set")
	}

	poolConf, err := pgxpool.ParseConfig(conf.DSN)
	if err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"invalid postgres dsn").CausedBy(err)
	}

	poolConf.ConnConfig.RuntimeParams["application_name"] = "maclab"

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"failed creating postgres connection pool").CausedBy(err)
	}

	return &postgresStore{
		pool:  pool,
		table: pgx.Identifier{conf.Table}.Sanitize(),
		key:   key,
	}, nil
}

func (s *postgresStore) Load(ctx context.Context) (Profile, error) {
	var raw []byte

	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT data FROM %s WHERE key = $1`, s.table), s.key).Scan(&raw)
	if err != nil {
		var pgErr *pgconn.PgError

		if errors.Is(err, pgx.ErrNoRows) || (errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable) {
			return Profile{}, maclab.ErrNoProfile
		}

		return Profile{}, errorchain.NewWithMessage(maclab.ErrCommunication,
			"failed to read profile").CausedBy(err)
	}

	return decodeProfile(raw)
}

func (s *postgresStore) Save(ctx context.Context, profile Profile) error {
	raw, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, data JSONB NOT NULL)`, s.table))
	batch.Queue(fmt.Sprintf(
		`INSERT INTO %s (key, data) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data`,
		s.table), s.key, raw)

	if err = s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return errorchain.NewWithMessage(maclab.ErrCommunication,
			"failed to write profile").CausedBy(err)
	}

	return nil
}

func (s *postgresStore) Close() error {
	s.pool.Close()

	return nil
}
