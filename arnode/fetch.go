// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"cogentcore.org/ar/xyz"
)

// FetchModel downloads the model at the given URL in the background and
// imports it with [Builder.ImportDirect], naming the result and applying
// the transform as in [Builder.ImportModel]. The downloaded file is staged
// in [Builder.StagingFS] during the import and always removed afterwards.
//
// The returned channel receives exactly one value and is then closed.
// The value is nil if anything failed, including any response status
// other than 200; failures are logged, not returned.
func (b *Builder) FetchModel(name, url string, transform []float64) <-chan xyz.Node {
	ch := make(chan xyz.Node, 1)
	go func() {
		var node xyz.Node
		defer func() {
			if r := recover(); r != nil {
				slog.Error("arnode.FetchModel: panic during fetch", "url", url, "panic", r)
				node = nil
			}
			ch <- node
			close(ch)
		}()
		gp, err := b.fetchModel(name, url, transform)
		if err != nil {
			slog.Error("arnode.FetchModel: fetch failed", "url", url, "error", err)
			return
		}
		node = gp
	}()
	return ch
}

// FetchModelFunc is [Builder.FetchModel] with the result passed to the
// given function, which is called exactly once, on a background goroutine.
func (b *Builder) FetchModelFunc(name, url string, transform []float64, done func(n xyz.Node)) {
	ch := b.FetchModel(name, url, transform)
	go func() {
		done(<-ch)
	}()
}

func (b *Builder) fetchModel(name, url string, transform []float64) (*xyz.Group, error) {
	const op = "arnode.FetchModel"
	if err := checkTransform(op, transform); err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrNetworkFailure, err)
	}
	if ua := b.Settings.UserAgent; ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	client := b.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrNetworkFailure, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w: response status %s", op, ErrNetworkFailure, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrNetworkFailure, err)
	}

	fname := stagedName(resp.Request.URL, data)
	if err := b.stage(fname, data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer b.unstage(fname)
	return b.ImportModel(name, ModelSource{Kind: StagedSource, Path: fname}, b.ImportDirect(), transform)
}
