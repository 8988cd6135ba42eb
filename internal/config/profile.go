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

package config

const (
	ProfileStoreBlob     = "blob"
	ProfileStoreRedis    = "redis"
	ProfileStorePostgres = "postgres"
)

type ProfileConfig struct {
	Type     string         `koanf:"type"     validate:"required,oneof=blob redis postgres"`
	Key      string         `koanf:"key"      validate:"required"`
	Blob     BlobConfig     `koanf:"blob"`
	Redis    RedisConfig    `koanf:"redis"`
	Postgres PostgresConfig `koanf:"postgres"`
}

type BlobConfig struct {
	URL string `koanf:"url"`
}

type RedisConfig struct {
	Address  string `koanf:"address"`
	DB       int    `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type PostgresConfig struct {
	DSN   string `koanf:"dsn"`
	Table string `koanf:"table"`
}
