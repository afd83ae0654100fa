package properties

import (
	"testing"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGetCommonKeys(t *testing.T) {
	reg := NewDefault()

	keys, err := reg.Get("v1", "FooBar")
	require.NoError(t, err)

	p, ok := keys.Path(Name)
	assert.True(t, ok)
	assert.Equal(t, []string{"metadata", "name"}, p)

	p, ok = keys.Path(Namespace)
	assert.True(t, ok)
	assert.Equal(t, []string{"metadata", "namespace"}, p)

	_, ok = keys.Path(PodIP)
	assert.False(t, ok, "unknown kinds only carry the common keys")
}

func TestDefaultGetKindKeys(t *testing.T) {
	reg := NewDefault()

	keys, err := reg.Get("v1", api.KindPod)
	require.NoError(t, err)
	assert.Equal(t, []string{"status", "podIP"}, keys[PodIP])
	assert.Equal(t, []string{"metadata", "name"}, keys[Name])

	keys, err = reg.Get("route.openshift.io/v1", api.KindRoute)
	require.NoError(t, err)
	assert.Equal(t, []string{"spec", "host"}, keys[Host])
}

func TestDefaultGetListKeys(t *testing.T) {
	reg := NewDefault()

	keys, err := reg.Get("v1", "PodList")
	require.NoError(t, err)
	assert.Equal(t, []string{"items"}, keys[Items])
	assert.Equal(t, []string{"metadata", "resourceVersion"}, keys[ResourceVersion])

	_, ok := keys[PodIP]
	assert.False(t, ok, "collections do not carry the item keys")
}

func TestDefaultGetUnsupportedVersion(t *testing.T) {
	reg := NewDefault()

	for _, version := range []string{"v1beta1", "v1beta3"} {
		_, err := reg.Get(version, api.KindBuildConfig)
		assert.True(t, api.IsUnsupportedVersion(err), "version %s", version)

		_, err = reg.Get(version, "BuildConfigList")
		assert.True(t, api.IsUnsupportedVersion(err), "list in version %s", version)
	}

	_, err := reg.Get("extensions/v1beta1", api.KindIngress)
	assert.NoError(t, err, "Kubernetes beta groups stay usable")
}

func TestDefaultGetMalformedVersion(t *testing.T) {
	_, err := NewDefault().Get("a/b/c", api.KindPod)
	assert.Error(t, err)
	assert.False(t, api.IsUnsupportedVersion(err))
}

func TestDefaultRegister(t *testing.T) {
	reg := NewDefault()
	reg.Register("Widget", KeyMap{"size": {"spec", "size"}})

	keys, err := reg.Get("example.com/v1", "Widget")
	require.NoError(t, err)
	assert.Equal(t, []string{"spec", "size"}, keys["size"])
}

func TestKeyMapKeys(t *testing.T) {
	m := KeyMap{"b": {"b"}, "a": {"a"}, "c": {"c"}}
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}
