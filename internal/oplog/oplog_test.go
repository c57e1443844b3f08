package oplog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deadcoast/sik-sort/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_WriteAndReadBack(t *testing.T) {
	dir := t.TempDir()

	s, err := NewSession(dir)
	require.NoError(t, err)

	s.Append(types.SortOperation{
		Source:           "/src/photo.jpg",
		Destination:      "/src/img/photo.jpg",
		Category:         "img",
		Timestamp:        time.Now(),
		ConflictResolved: false,
	})
	s.Append(types.SortOperation{
		Source:           "/src/b/dup.txt",
		Destination:      "/src/msk/dup_1.txt",
		Category:         "msk",
		Timestamp:        time.Now(),
		ConflictResolved: true,
	})
	require.NoError(t, s.Finalize())

	doc, err := Latest(dir)
	require.NoError(t, err)

	require.Len(t, doc.Operations, 2)
	assert.Equal(t, "/src/photo.jpg", doc.Operations[0].Source)
	assert.True(t, doc.Operations[1].ConflictResolved)
	assert.False(t, doc.StartTime.IsZero())
	assert.False(t, doc.EndTime.IsZero())
	assert.False(t, doc.EndTime.Before(doc.StartTime))
}

func TestSession_DocumentKeys(t *testing.T) {
	// The document is a persisted wire format; key names are a contract.
	dir := t.TempDir()

	s, err := NewSession(dir)
	require.NoError(t, err)
	s.Append(types.SortOperation{
		Source:      "/a",
		Destination: "/b",
		Category:    "msk",
		Timestamp:   time.Now(),
	})
	require.NoError(t, s.Finalize())

	data, err := os.ReadFile(filepath.Join(dir, "session-"+s.ID()+".json"))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "start_time")
	assert.Contains(t, raw, "end_time")
	assert.Contains(t, raw, "operations")

	var ops []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["operations"], &ops))
	require.Len(t, ops, 1)
	for _, key := range []string{"source", "destination", "category", "timestamp", "conflict_resolved"} {
		assert.Contains(t, ops[0], key)
	}

	// Timestamps must parse as RFC 3339.
	var start string
	require.NoError(t, json.Unmarshal(raw["start_time"], &start))
	_, err = time.Parse(time.RFC3339, start)
	assert.NoError(t, err)
}

func TestSession_EmptyRunStillWrites(t *testing.T) {
	dir := t.TempDir()

	s, err := NewSession(dir)
	require.NoError(t, err)
	require.NoError(t, s.Finalize())

	doc, err := Latest(dir)
	require.NoError(t, err)
	assert.Empty(t, doc.Operations)
	assert.NotNil(t, doc.Operations, "operations must serialize as an array, not null")
}

func TestSession_LockBlocksSecondRun(t *testing.T) {
	dir := t.TempDir()

	first, err := NewSession(dir)
	require.NoError(t, err)
	defer first.Discard()

	_, err = NewSession(dir)
	require.Error(t, err, "second concurrent session against the same dir must fail")
}

func TestSession_DiscardReleasesLock(t *testing.T) {
	dir := t.TempDir()

	first, err := NewSession(dir)
	require.NoError(t, err)
	first.Discard()

	second, err := NewSession(dir)
	require.NoError(t, err)
	second.Discard()
}

func TestLatest_PicksNewest(t *testing.T) {
	dir := t.TempDir()

	for _, id := range []string{"old", "new"} {
		s, err := NewSession(dir)
		require.NoError(t, err)
		s.Append(types.SortOperation{Source: id, Category: "msk", Timestamp: time.Now()})
		require.NoError(t, s.Finalize())
		time.Sleep(10 * time.Millisecond)
	}

	doc, err := Latest(dir)
	require.NoError(t, err)
	require.Len(t, doc.Operations, 1)
	assert.Equal(t, "new", doc.Operations[0].Source)
}

func TestLatest_NoLogs(t *testing.T) {
	_, err := Latest(t.TempDir())
	require.Error(t, err)
}
