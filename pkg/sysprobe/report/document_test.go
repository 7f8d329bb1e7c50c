package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentPreservesInsertionOrder(t *testing.T) {
	doc := NewDocument().
		Add("platform", "linux").
		Add("family", "Ubuntu").
		Add("bitness", 64)

	var names []string
	for _, f := range doc.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"platform", "family", "bitness"}, names)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"platform":"linux","family":"Ubuntu","bitness":64}`, string(out))
	// JSONEq ignores order, so also check the raw byte order.
	assert.Equal(t, `{"platform":"linux","family":"Ubuntu","bitness":64}`, string(out))
}

func TestDocumentSuppressesAbsentValues(t *testing.T) {
	type testCase struct {
		name  string
		value any
		kept  bool
	}

	var nilDoc *Document
	var nilSlice []string

	cases := []testCase{
		{"untyped nil", nil, false},
		{"empty string", "", false},
		{"nil document", nilDoc, false},
		{"empty document", NewDocument(), false},
		{"nil slice", nilSlice, false},
		{"empty slice", []string{}, false},
		{"empty map", map[string]string{}, false},
		{"zero int", 0, true},
		{"zero float", 0.0, true},
		{"false bool", false, true},
		{"non-empty string", "x", true},
		{"populated document", NewDocument().Add("a", 1), true},
		{"populated slice", []string{"eth0"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := NewDocument().Add("field", tc.value)
			assert.Equal(t, tc.kept, doc.Has("field"))
		})
	}
}

func TestDocumentAddReplacesInPlace(t *testing.T) {
	doc := NewDocument().
		Add("a", 1).
		Add("b", 2).
		Add("a", 3)

	require.Equal(t, 2, doc.Len())
	v, ok := doc.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	// Replacement keeps the original position.
	assert.Equal(t, "a", doc.Fields()[0].Name)
}

func TestEmptyDocumentMarshalsToEmptyObject(t *testing.T) {
	out, err := json.Marshal(NewDocument())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestDocumentNestedMarshal(t *testing.T) {
	child := NewDocument().Add("name", "eth0").Add("mtu", 1500)
	doc := NewDocument().Add("platform", "linux")
	doc.AddDocument("network", child)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"platform":"linux","network":{"name":"eth0","mtu":1500}}`, string(out))
}

func TestDocumentSliceOfDocuments(t *testing.T) {
	disks := []*Document{
		NewDocument().Add("name", "sda").Add("size", uint64(512)),
		NewDocument().Add("name", "sdb").Add("size", uint64(1024)),
	}
	doc := NewDocument().Add("disks", disks)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"disks":[{"name":"sda","size":512},{"name":"sdb","size":1024}]}`, string(out))
}

func TestNilDocumentAccessors(t *testing.T) {
	var doc *Document
	assert.Equal(t, 0, doc.Len())
	assert.Nil(t, doc.Fields())
	_, ok := doc.Get("anything")
	assert.False(t, ok)
}
