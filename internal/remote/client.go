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

package remote

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ccs-maclab/maclab/internal/cache"
	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/endpoint"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/schedule"
	"github.com/ccs-maclab/maclab/internal/validation"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

const requestIDHeader = "X-Request-ID"

// Lists holds one consistent fetch of the three collections served by the
// schedule service.
type Lists struct {
	Subjects    []schedule.Subject
	Links       []schedule.Link
	Instructors []schedule.Instructor
	FetchedAt   time.Time
}

type Client struct {
	subjects    endpoint.Endpoint
	links       endpoint.Endpoint
	instructors endpoint.Endpoint
	createLink  endpoint.Endpoint

	cch cache.Cache
	v   validation.Validator
}

func NewClient(conf *config.Configuration, cch cache.Cache, validator validation.Validator) (*Client, error) {
	var (
		auth endpoint.AuthenticationStrategy
		err  error
	)

	if conf.API.Auth != nil {
		auth, err = endpoint.NewAuthenticationStrategy(conf.API.Auth.Type, conf.API.Auth.Config)
		if err != nil {
			return nil, err
		}
	}

	newEndpoint := func(path, method string) endpoint.Endpoint {
		headers := map[string]string{"Accept": "application/json"}
		if method == http.MethodPost {
			headers["Content-Type"] = "application/json"
		}

		for name, value := range conf.API.Headers {
			headers[name] = value
		}

		ep := endpoint.Endpoint{
			URL:          conf.API.Resolve(path),
			Method:       method,
			Timeout:      conf.API.Timeout,
			AuthStrategy: auth,
			Headers:      headers,
		}

		if conf.API.Retry != nil {
			ep.Retry = &endpoint.Retry{
				GiveUpAfter: conf.API.Retry.GiveUpAfter,
				MaxDelay:    conf.API.Retry.MaxDelay,
			}
		}

		return ep
	}

	return &Client{
		subjects:    newEndpoint(conf.API.Endpoints.Subjects, http.MethodGet),
		links:       newEndpoint(conf.API.Endpoints.Links, http.MethodGet),
		instructors: newEndpoint(conf.API.Endpoints.Instructors, http.MethodGet),
		createLink:  newEndpoint(conf.API.Endpoints.CreateLink, http.MethodPost),
		cch:         cch,
		v:           validator,
	}, nil
}

func (c *Client) ListSubjects(ctx context.Context) ([]schedule.Subject, error) {
	raw, err := c.send(ctx, c.subjects, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[schedule.Subject](raw)
}

func (c *Client) ListLinks(ctx context.Context) ([]schedule.Link, error) {
	raw, err := c.send(ctx, c.links, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[schedule.Link](raw)
}

func (c *Client) ListInstructors(ctx context.Context) ([]schedule.Instructor, error) {
	raw, err := c.send(ctx, c.instructors, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[schedule.Instructor](raw)
}

// CreateLink links the user to the subject. The response body is ignored.
func (c *Client) CreateLink(ctx context.Context, link schedule.Link) error {
	if err := c.v.ValidateStruct(link); err != nil {
		return errorchain.NewWithMessage(maclab.ErrValidation, "invalid link").CausedBy(err)
	}

	body, err := json.Marshal(schedule.Link{UserID: link.UserID, SubjectID: link.SubjectID})
	if err != nil {
		return errorchain.NewWithMessage(maclab.ErrInternal, "failed to marshal link").CausedBy(err)
	}

	zerolog.Ctx(ctx).Info().
		Int("_user_id", link.UserID).
		Int("_subject_id", link.SubjectID).
		Msg("Creating link")

	_, err = c.send(ctx, c.createLink, body)

	return err
}

// FetchAll retrieves all three collections concurrently. If any of the
// requests fails, the whole fetch fails and the remaining requests are
// canceled.
func (c *Client) FetchAll(ctx context.Context) (Lists, error) {
	var lists Lists

	grp, gctx := errgroup.WithContext(ctx)

	grp.Go(func() (err error) {
		lists.Subjects, err = c.ListSubjects(gctx)

		return err
	})
	grp.Go(func() (err error) {
		lists.Links, err = c.ListLinks(gctx)

		return err
	})
	grp.Go(func() (err error) {
		lists.Instructors, err = c.ListInstructors(gctx)

		return err
	})

	if err := grp.Wait(); err != nil {
		return Lists{}, err
	}

	lists.FetchedAt = time.Now()

	return lists, nil
}

func (c *Client) send(ctx context.Context, ep endpoint.Endpoint, body []byte) ([]byte, error) {
	requestID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("_request_id", requestID).Logger()
	ctx = cache.WithContext(logger.WithContext(ctx), c.cch)

	req, err := ep.CreateRequest(ctx, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set(requestIDHeader, requestID)

	raw, err := ep.Do(req)
	if err != nil {
		logger.Debug().Err(err).Str("_endpoint", ep.URL).Msg("Request failed")

		return nil, err
	}

	return raw, nil
}
