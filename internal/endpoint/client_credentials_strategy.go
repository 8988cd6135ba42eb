// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
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

package endpoint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ccs-maclab/maclab/internal/cache"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

const defaultCacheLeeway = 15

type tokenEndpointResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type ClientCredentialsStrategy struct {
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	Scopes       []string `mapstructure:"scopes"`
	TokenURL     string   `mapstructure:"token_url"`
}

func (c *ClientCredentialsStrategy) Apply(ctx context.Context, req *http.Request) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("Applying client-credentials strategy to authenticate request")

	key := c.calculateCacheKey()
	cch := cache.Ctx(ctx)

	if raw, err := cch.Get(ctx, key); err == nil {
		var token tokenEndpointResponse
		if err = json.Unmarshal(raw, &token); err == nil {
			logger.Debug().Msg("Reusing access token from cache")

			req.Header.Set("Authorization", token.TokenType+" "+token.AccessToken)

			return nil
		}

		logger.Warn().Err(err).Msg("Unexpected cache entry. Dropping it")

		_ = cch.Delete(ctx, key)
	}

	logger.Debug().Msg("Retrieving new access token")

	raw, token, err := c.getAccessToken(ctx)
	if err != nil {
		return err
	}

	if ttl := time.Duration(token.ExpiresIn-defaultCacheLeeway) * time.Second; ttl > 0 {
		if err = cch.Set(ctx, key, raw, ttl); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache access token")
		}
	}

	req.Header.Set("Authorization", token.TokenType+" "+token.AccessToken)

	return nil
}

func (c *ClientCredentialsStrategy) calculateCacheKey() string {
	digest := sha256.New()
	digest.Write([]byte(c.ClientID))
	digest.Write([]byte(c.ClientSecret))
	digest.Write([]byte(c.TokenURL))
	digest.Write([]byte(strings.Join(c.Scopes, "")))

	return hex.EncodeToString(digest.Sum(nil))
}

func (c *ClientCredentialsStrategy) getAccessToken(ctx context.Context) ([]byte, *tokenEndpointResponse, error) {
	ept := Endpoint{
		URL:    c.TokenURL,
		Method: http.MethodPost,
		AuthStrategy: &BasicAuthStrategy{
			User:     url.QueryEscape(c.ClientID),
			Password: url.QueryEscape(c.ClientSecret),
		},
		Headers: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"Accept":       "application/json",
		},
	}

	data := url.Values{"grant_type": []string{"client_credentials"}}
	if len(c.Scopes) != 0 {
		data.Add("scope", strings.Join(c.Scopes, " "))
	}

	rawData, err := ept.SendRequest(ctx, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, nil, err
	}

	var ter tokenEndpointResponse
	if err = json.Unmarshal(rawData, &ter); err != nil {
		return nil, nil, errorchain.
			NewWithMessage(maclab.ErrCommunication, "failed to unmarshal token endpoint response").
			CausedBy(err)
	}

	return rawData, &ter, nil
}

func (c *ClientCredentialsStrategy) validate() error {
	return errors.Join(
		requiredProperty("client-credentials", "client_id", c.ClientID),
		requiredProperty("client-credentials", "client_secret", c.ClientSecret),
		requiredProperty("client-credentials", "token_url", c.TokenURL),
	)
}
