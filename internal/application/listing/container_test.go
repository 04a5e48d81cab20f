package listing_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/settlement-admin/internal/application/listing"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func okFetch(items ...item) listing.FetchFunc[item] {
	return func(context.Context, map[string]string) (*listing.Page[item], error) {
		return &listing.Page[item]{Items: items, TotalElements: int64(len(items)), TotalPages: 1}, nil
	}
}

func TestFetch_Exito(t *testing.T) {
	var got []item
	c := listing.New(okFetch(item{1, "a"}, item{2, "b"}), listing.Options[item]{
		OnSuccess: func(items []item) { got = items },
	})

	snap, err := c.Fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, int64(2), snap.TotalElements)
	assert.False(t, snap.Loading)
	assert.Len(t, got, 2)
}

func TestFetch_FalloLimpiaYNotificaUnaVez(t *testing.T) {
	fail := true
	calls := 0
	c := listing.New(func(context.Context, map[string]string) (*listing.Page[item], error) {
		if fail {
			return nil, errors.New("boom")
		}
		return &listing.Page[item]{Items: []item{{1, "a"}}, TotalElements: 1}, nil
	}, listing.Options[item]{OnError: func(error) { calls++ }})

	fail = false
	_, err := c.Fetch(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, c.Snapshot().Items, 1)

	fail = true
	snap, err := c.Fetch(context.Background(), nil)
	require.Error(t, err)
	assert.NotNil(t, snap.Items)
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.TotalElements)
	assert.Equal(t, 1, calls)
	assert.EqualError(t, c.Snapshot().Err, "boom")
}

func TestFetch_PanicSeConvierteEnError(t *testing.T) {
	calls := 0
	c := listing.New(func(context.Context, map[string]string) (*listing.Page[item], error) {
		panic("nil map")
	}, listing.Options[item]{OnError: func(error) { calls++ }})

	assert.NotPanics(t, func() {
		_, err := c.Fetch(context.Background(), nil)
		assert.Error(t, err)
	})
	assert.Equal(t, 1, calls)
}

func TestFetch_SinOnErrorNoFalla(t *testing.T) {
	c := listing.New(func(context.Context, map[string]string) (*listing.Page[item], error) {
		return nil, errors.New("x")
	}, listing.Options[item]{})
	_, err := c.Fetch(context.Background(), nil)
	assert.Error(t, err)
}

func TestFetch_CargaReemplazadaNoEscribe(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var errCalls int
	var mu sync.Mutex

	c := listing.New(func(ctx context.Context, p map[string]string) (*listing.Page[item], error) {
		if p["page"] == "0" {
			close(started)
			select {
			case <-ctx.Done():
			case <-release:
			}
			return &listing.Page[item]{Items: []item{{1, "stale"}}, TotalElements: 1}, nil
		}
		return &listing.Page[item]{Items: []item{{2, "fresh"}}, TotalElements: 1}, nil
	}, listing.Options[item]{OnError: func(error) { mu.Lock(); errCalls++; mu.Unlock() }})

	done := make(chan error, 1)
	go func() {
		_, err := c.Fetch(context.Background(), map[string]string{"page": "0"})
		done <- err
	}()
	<-started

	snap, err := c.Fetch(context.Background(), map[string]string{"page": "1"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", snap.Items[0].Name)

	close(release)
	select {
	case err := <-done:
		assert.ErrorIs(t, err, listing.ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("la primera carga no terminó")
	}

	assert.Equal(t, "fresh", c.Snapshot().Items[0].Name)
	mu.Lock()
	assert.Zero(t, errCalls, "una carga reemplazada no notifica")
	mu.Unlock()
}

// ── Decode / FromList ─────────────────────────────────────────────────────────

type fakeList struct {
	path, field string
	query       ports.Query
	raw         *ports.RawPage
}

func (f *fakeList) List(_ context.Context, path, field string, q ports.Query) (*ports.RawPage, error) {
	f.path, f.field, f.query = path, field, q
	return f.raw, nil
}

func TestFromList_MezclaFiltros(t *testing.T) {
	api := &fakeList{raw: &ports.RawPage{
		Items:         []json.RawMessage{json.RawMessage(`{"id":7,"name":"x"}`)},
		TotalElements: 11,
		TotalPages:    2,
	}}
	fetch := listing.FromList[item](api, "/merchants", "merchants", func(context.Context) map[string]string {
		return map[string]string{"centerId": "3", "paymentPurpose": ""}
	})

	page, err := fetch(context.Background(), map[string]string{"page": "1"})
	require.NoError(t, err)
	assert.Equal(t, "/merchants", api.path)
	assert.Equal(t, "merchants", api.field)
	assert.Equal(t, ports.Query{"page": "1", "centerId": "3"}, api.query)
	assert.Equal(t, []item{{7, "x"}}, page.Items)
	assert.Equal(t, int64(11), page.TotalElements)
}

func TestDecode_ElementoInvalido(t *testing.T) {
	_, err := listing.Decode[item](&ports.RawPage{Items: []json.RawMessage{json.RawMessage(`"str"`)}})
	assert.Error(t, err)

	page, err := listing.Decode[item](nil)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}
