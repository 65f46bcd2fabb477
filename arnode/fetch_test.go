// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arnode

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cogentcore.org/ar/math32"
	"cogentcore.org/ar/xyz"
	"github.com/hack-pad/hackpadfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modelServer serves a glTF file with two parts at /models/parts.glb
// and at /download, files that fail to import at /garbage.glb and
// /shared.gltf, and answers 404 for anything else.
func modelServer(t *testing.T) *httptest.Server {
	t.Helper()
	glb := partsGLB(t, 2)
	mux := http.NewServeMux()
	serve := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ar-test", r.Header.Get("User-Agent"))
		w.Write(glb)
	}
	mux.HandleFunc("/models/parts.glb", serve)
	mux.HandleFunc("/download", serve)
	mux.HandleFunc("/garbage.glb", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("glTF garbage"))
	})
	mux.HandleFunc("/shared.gltf", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"asset":{"version":"2.0"},"scene":0,"scenes":[{"nodes":[0]}],"nodes":[{"children":[1,1]},{}]}`))
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/models/parts.glb", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func fetchTestBuilder(t *testing.T, srv *httptest.Server) *Builder {
	b := newTestBuilder(t, nil)
	b.HTTPClient = srv.Client()
	b.Settings.UserAgent = "ar-test"
	return b
}

// receive returns the value from the channel, failing after a timeout.
func receive(t *testing.T, ch <-chan xyz.Node) xyz.Node {
	t.Helper()
	select {
	case n := <-ch:
		_, open := <-ch
		assert.False(t, open)
		return n
	case <-time.After(10 * time.Second):
		t.Fatal("no result from FetchModel")
	}
	return nil
}

func assertStagingEmpty(t *testing.T, b *Builder) {
	t.Helper()
	des, err := hackpadfs.ReadDir(b.StagingFS, ".")
	require.NoError(t, err)
	assert.Empty(t, des)
}

func TestFetchModel(t *testing.T) {
	srv := modelServer(t)
	b := fetchTestBuilder(t, srv)

	for _, p := range []string{"/models/parts.glb", "/download", "/moved"} {
		n := receive(t, b.FetchModel("remote", srv.URL+p, translation(0, 0, -2)))
		require.NotNil(t, n, p)
		gp := n.AsNodeBase()
		assert.Equal(t, "remote", gp.Name)
		assertVec3(t, math32.Vec3(0, 0, -2), gp.Pose.Pos)
		require.Equal(t, 2, gp.NumChildren())
		for i := 0; i < 2; i++ {
			part := gp.Child(i).AsNodeBase()
			assertVec3(t, math32.Vec3(0.01, 0.01, 0.01), part.Pose.Scale)
			assert.Equal(t, 1, part.NumChildren())
		}
		assertStagingEmpty(t, b)
	}
}

func TestFetchModelFailures(t *testing.T) {
	srv := modelServer(t)
	b := fetchTestBuilder(t, srv)

	assert.Nil(t, receive(t, b.FetchModel("m", srv.URL+"/missing.glb", nil)))
	assert.Nil(t, receive(t, b.FetchModel("m", srv.URL+"/models/parts.glb", []float64{1})))
	assert.Nil(t, receive(t, b.FetchModel("m", "://bad url", nil)))
	assertStagingEmpty(t, b)

	_, err := b.fetchModel("m", srv.URL+"/missing.glb", nil)
	assert.ErrorIs(t, err, ErrNetworkFailure)

	// the staged file is removed when the import fails
	for _, p := range []string{"/garbage.glb", "/shared.gltf"} {
		assert.Nil(t, receive(t, b.FetchModel("m", srv.URL+p, nil)), p)
		assertStagingEmpty(t, b)
		_, err = b.fetchModel("m", srv.URL+p, nil)
		assert.ErrorIs(t, err, ErrParseFailure, p)
		assertStagingEmpty(t, b)
	}

	srv.Close()
	_, err = b.fetchModel("m", srv.URL+"/models/parts.glb", nil)
	assert.ErrorIs(t, err, ErrNetworkFailure)
}

func TestFetchModelFunc(t *testing.T) {
	srv := modelServer(t)
	b := fetchTestBuilder(t, srv)

	ch := make(chan xyz.Node, 1)
	b.FetchModelFunc("f", srv.URL+"/download", nil, func(n xyz.Node) {
		ch <- n
		close(ch)
	})
	n := receive(t, ch)
	require.NotNil(t, n)
	assert.Equal(t, "f", n.AsNodeBase().Name)
}
