package factory

import (
	"testing"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/openshift/restclient-go/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const podList = `{
	"apiVersion": "v1",
	"kind": "PodList",
	"metadata": {"resourceVersion": "1234"},
	"items": [
		{"metadata": {"name": "web-1", "namespace": "demo"}, "status": {"phase": "Running"}},
		{"metadata": {"name": "web-2", "namespace": "demo"}, "status": {"phase": "Pending"}},
		{"metadata": {"name": "web-3", "namespace": "demo"}}
	]
}`

func TestCreateList(t *testing.T) {
	f := newTestFactory(openShiftClient())

	items, err := f.CreateList([]byte(podList), api.KindPod)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i, want := range []string{"web-1", "web-2", "web-3"} {
		pod, ok := items[i].(*model.Pod)
		require.True(t, ok, "item %d is %T", i, items[i])
		assert.Equal(t, want, pod.Name())
		assert.Equal(t, "demo", pod.Namespace())
		assert.Equal(t, api.KindPod, pod.Kind())
		assert.Equal(t, "v1", pod.APIVersion())
	}
	assert.Equal(t, "Running", items[0].(*model.Pod).Phase())
}

func TestCreateListKindMismatch(t *testing.T) {
	f := newTestFactory(nil)

	_, err := f.CreateList([]byte(podList), api.KindService)
	require.Error(t, err)
	assert.True(t, IsListKindMismatch(err))
	assert.False(t, IsResourceCreation(err))

	var mismatch *ListKindMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "ServiceList", mismatch.Expected)
	assert.Equal(t, "PodList", mismatch.Actual)

	// A heterogeneous List is not a PodList either.
	_, err = f.CreateList([]byte(`{"apiVersion":"v1","kind":"List","items":[]}`), api.KindPod)
	assert.True(t, IsListKindMismatch(err))
}

func TestCreateListRequestedKindWins(t *testing.T) {
	f := newTestFactory(nil)

	items, err := f.CreateList([]byte(`{"apiVersion":"v1","kind":"ServiceList","items":[{"kind":"Pod","metadata":{"name":"odd"}}]}`), api.KindService)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.IsType(t, &model.Service{}, items[0])
	assert.Equal(t, api.KindService, items[0].Kind())
}

func TestCreateListEmpty(t *testing.T) {
	f := newTestFactory(nil)

	for _, in := range []string{
		`{"apiVersion":"v1","kind":"PodList"}`,
		`{"apiVersion":"v1","kind":"PodList","items":[]}`,
		`{"apiVersion":"v1","kind":"PodList","items":null}`,
	} {
		items, err := f.CreateList([]byte(in), api.KindPod)
		require.NoError(t, err, in)
		assert.Empty(t, items)

		res, err := f.Create([]byte(in))
		require.NoError(t, err, in)
		require.IsType(t, &model.List{}, res)
		assert.Zero(t, res.(*model.List).Len())
	}
}

func TestCreateListFailures(t *testing.T) {
	f := newTestFactory(nil)

	_, err := f.CreateList([]byte(`{"kind":"PodList"}`), api.KindPod)
	assert.True(t, IsMalformedInput(err))

	_, err = f.CreateList([]byte(`not a list`), api.KindPod)
	assert.True(t, IsMalformedInput(err))

	_, err = f.CreateList([]byte(`{"apiVersion":"v1","kind":"PodList","items":{"name":"web"}}`), api.KindPod)
	assert.True(t, IsResourceCreation(err))
	assert.ErrorIs(t, err, model.ErrInvalidItems)

	_, err = f.CreateList([]byte(`{"apiVersion":"v1","kind":"PodList","items":[{"metadata":{}}, "web"]}`), api.KindPod)
	assert.True(t, IsResourceCreation(err))
	assert.ErrorIs(t, err, model.ErrInvalidItems)

	_, err = f.CreateList([]byte(`{"apiVersion":"v1beta3","kind":"RouteList","items":[{"metadata":{"name":"web"}}]}`), api.KindRoute)
	require.Error(t, err)
	var unsupported *api.UnsupportedVersionError
	require.ErrorAs(t, err, &unsupported)
	assert.Same(t, unsupported, err)
}
