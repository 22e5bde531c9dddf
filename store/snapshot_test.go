package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedState(t *testing.T) *State {
	t.Helper()
	s := NewSeededState(time.Millisecond)

	p, ok := s.Catalog.Get(1)
	require.True(t, ok)
	s.Cart.Add(p)
	s.Cart.Add(p)
	pending, err := s.Checkout.Submit(CustomerInfo{Name: "A", Phone: "1", Address: "X"})
	require.NoError(t, err)
	waitCommit(t, pending)

	draft := s.Content.BeginEdit()
	draft.Title = "Обновленный заголовок"
	require.NoError(t, draft.Save())

	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := populatedState(t)

	products := s.Catalog.List()
	orders := s.Ledger.Orders()
	content := s.Content.Get()

	data, err := s.Snapshot.Export()
	require.NoError(t, err)

	require.NoError(t, s.Snapshot.Import(data))

	assert.Equal(t, products, s.Catalog.List())
	assert.Equal(t, orders, s.Ledger.Orders())
	assert.Equal(t, content, s.Content.Get())
}

func TestSnapshotImportIntoFreshState(t *testing.T) {
	src := populatedState(t)
	data, err := src.Snapshot.Export()
	require.NoError(t, err)

	dst := NewState(time.Millisecond)
	require.NoError(t, dst.Snapshot.Import(data))

	assert.Equal(t, src.Catalog.List(), dst.Catalog.List())
	assert.Equal(t, src.Ledger.Orders(), dst.Ledger.Orders())
	assert.Equal(t, src.Content.Get(), dst.Content.Get())
}

func TestSnapshotExportDocumentShape(t *testing.T) {
	s := populatedState(t)
	data, err := s.Snapshot.Export()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "products")
	assert.Contains(t, doc, "orders")
	assert.Contains(t, doc, "homeContent")
}

func TestSnapshotExportIsPureRead(t *testing.T) {
	s := populatedState(t)
	before := s.Catalog.List()

	_, err := s.Snapshot.Export()
	require.NoError(t, err)

	assert.Equal(t, before, s.Catalog.List())
}

func TestSnapshotPartialImport(t *testing.T) {
	s := NewSeededState(time.Millisecond)
	products := s.Catalog.List()

	doc := `{"homeContent":{"title":"t","subtitle":"s","description":"d"}}`
	require.NoError(t, s.Snapshot.Import([]byte(doc)))

	assert.Equal(t, HomeContent{Title: "t", Subtitle: "s", Description: "d"}, s.Content.Get())
	assert.Equal(t, products, s.Catalog.List(), "absent keys must leave their store untouched")
	assert.Equal(t, 0, s.Ledger.Len())
}

func TestSnapshotImportInvalidJSON(t *testing.T) {
	s := NewSeededState(time.Millisecond)
	products := s.Catalog.List()
	content := s.Content.Get()

	err := s.Snapshot.Import([]byte(`{"products": [`))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, products, s.Catalog.List(), "parse failure must not mutate any store")
	assert.Equal(t, content, s.Content.Get())
	assert.Equal(t, 0, s.Ledger.Len())
}

func TestSnapshotImportAdvancesIDCounters(t *testing.T) {
	s := NewState(time.Millisecond)

	doc := `{"products":[{"id":6,"name":"x","price":1}],"orders":[{"id":4,"items":[],"customerName":"A","phone":"1","address":"X","total":0,"date":""}]}`
	require.NoError(t, s.Snapshot.Import([]byte(doc)))

	p, err := s.Catalog.Add(ProductDraft{Name: "y", Price: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)

	o := s.Ledger.Append(Order{Total: 1})
	assert.Equal(t, int64(5), o.ID)
}

func TestInspect(t *testing.T) {
	s := populatedState(t)
	data, err := s.Snapshot.Export()
	require.NoError(t, err)

	info, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, 6, info.Products)
	assert.Equal(t, 1, info.Orders)
	assert.True(t, info.HasContent)

	_, err = Inspect([]byte("nonsense"))
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}
