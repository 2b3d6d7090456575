package save

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wawax007/MewgenicsRenamer/pkg/catblob"
)

// makeCatBlob builds a raw-layout cat blob for tests.
func makeCatBlob(t *testing.T, name string, tail []byte) []byte {
	t.Helper()

	units := utf16.Encode([]rune(name))
	blob := binary.LittleEndian.AppendUint32(nil, catblob.Magic)
	blob = append(blob, []byte{1, 2, 3, 4, 5, 6, 7, 8}...) // seed
	blob = binary.LittleEndian.AppendUint32(blob, uint32(len(units)))
	blob = binary.LittleEndian.AppendUint32(blob, 0) // padding
	for _, u := range units {
		blob = binary.LittleEndian.AppendUint16(blob, u)
	}
	return append(blob, tail...)
}

// fakeStore is an in-memory row store. dropWrites simulates a store
// that acknowledges writes but never persists them.
type fakeStore struct {
	rows       map[string][]byte
	writes     int
	dropWrites bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string][]byte)}
}

func (f *fakeStore) rowKey(table string, key Key) string {
	return table + "/" + key.String()
}

func (f *fakeStore) Read(table string, key Key) ([]byte, bool, error) {
	data, ok := f.rows[f.rowKey(table, key)]
	return data, ok, nil
}

func (f *fakeStore) Write(table string, key Key, data []byte) error {
	f.writes++
	if f.dropWrites {
		return nil
	}
	f.rows[f.rowKey(table, key)] = data
	return nil
}

func TestRenameInStore(t *testing.T) {
	t.Parallel()

	tail := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	store := newFakeStore()
	store.rows["cats/7"] = makeCatBlob(t, "Muffin", tail)

	oldName, compressed, err := RenameInStore(store, "cats", IntKey(7), "Biscuit", catblob.DetectLimits{})
	require.NoError(t, err)
	assert.Equal(t, "Muffin", oldName)
	assert.False(t, compressed)

	rec, err := catblob.Decode(store.rows["cats/7"], catblob.DetectLimits{})
	require.NoError(t, err)
	name, err := rec.Name()
	require.NoError(t, err)
	assert.Equal(t, "Biscuit", name)

	gotTail, err := rec.Tail()
	require.NoError(t, err)
	assert.Equal(t, tail, gotTail)
}

func TestRenameInStoreDroppedWrite(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.rows["cats/1"] = makeCatBlob(t, "Muffin", []byte{1, 2, 3})
	store.dropWrites = true

	_, _, err := RenameInStore(store, "cats", IntKey(1), "Biscuit", catblob.DetectLimits{})
	require.ErrorIs(t, err, ErrWriteVerification)
	assert.Equal(t, 1, store.writes, "write was attempted before verification failed")
}

func TestRenameInStoreInvalidNameWritesNothing(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	original := makeCatBlob(t, "Muffin", []byte{1, 2, 3})
	store.rows["cats/1"] = original

	_, _, err := RenameInStore(store, "cats", IntKey(1), "", catblob.DetectLimits{})
	require.ErrorIs(t, err, catblob.ErrInvalidName)
	assert.Zero(t, store.writes)
	assert.Equal(t, original, store.rows["cats/1"])
}

func TestRenameInStoreUnparseableBlob(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.rows["cats/1"] = []byte("not a blob")

	_, _, err := RenameInStore(store, "cats", IntKey(1), "Biscuit", catblob.DetectLimits{})
	require.ErrorIs(t, err, catblob.ErrNotCatBlob)
	assert.Zero(t, store.writes)
}

func TestRenameInStoreMissingRow(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	_, _, err := RenameInStore(store, "cats", IntKey(99), "Biscuit", catblob.DetectLimits{})
	require.ErrorIs(t, err, ErrRowNotFound)
}

func TestRenameInStoreTextKey(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.rows["files/save_file_cat"] = makeCatBlob(t, "Profile", nil)

	oldName, _, err := RenameInStore(store, "files", TextKey("save_file_cat"), "Hero", catblob.DetectLimits{})
	require.NoError(t, err)
	assert.Equal(t, "Profile", oldName)
}
