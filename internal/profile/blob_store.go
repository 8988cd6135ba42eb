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

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob" // to support azure blobs
	_ "gocloud.dev/blob/fileblob"  // to support local files
	_ "gocloud.dev/blob/gcsblob"   // to support gc storage blobs
	_ "gocloud.dev/blob/memblob"   // to support in memory blobs
	_ "gocloud.dev/blob/s3blob"    // to support aws s3 blobs
	"gocloud.dev/gcerrors"

	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

type blobStore struct {
	bucket *blob.Bucket
	key    string
}

func newBlobStore(ctx context.Context, conf config.BlobConfig, key string) (*blobStore, error) {
	if len(conf.URL) == 0 {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"blob profile store requires 'url' property to be set")
	}

	bucket, err := blob.OpenBucket(ctx, conf.URL)
	if err != nil {
		return nil, errorchain.NewWithMessagef(maclab.ErrConfiguration,
			"failed to open bucket %s", conf.URL).CausedBy(err)
	}

	return &blobStore{bucket: bucket, key: key}, nil
}

func (s *blobStore) Load(ctx context.Context) (Profile, error) {
	raw, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return Profile{}, maclab.ErrNoProfile
		}

		return Profile{}, errorchain.NewWithMessage(maclab.ErrCommunication,
			"failed to read profile").CausedBy(err)
	}

	return decodeProfile(raw)
}

func (s *blobStore) Save(ctx context.Context, profile Profile) error {
	raw, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	if err = s.bucket.WriteAll(ctx, s.key, raw, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errorchain.NewWithMessage(maclab.ErrCommunication,
			"failed to write profile").CausedBy(err)
	}

	return nil
}

func (s *blobStore) Close() error { return s.bucket.Close() }
