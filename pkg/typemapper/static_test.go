package typemapper

import (
	"testing"

	"github.com/openshift/restclient-go/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticEndpointFor(t *testing.T) {
	m := NewStatic(OpenShiftEndpoints()...)

	ep, err := m.EndpointFor("", api.KindPod)
	require.NoError(t, err)
	assert.Equal(t, KubeAPI, ep.Prefix)
	assert.Equal(t, "v1", ep.APIVersion())
	assert.Equal(t, "", ep.Extension())

	ep, err = m.EndpointFor("v1", api.KindRoute)
	require.NoError(t, err)
	assert.Equal(t, OpenShiftAPI, ep.Prefix)
	assert.Equal(t, "", ep.Extension(), "legacy OpenShift endpoints have no extension")

	ep, err = m.EndpointFor("", api.KindDeployment)
	require.NoError(t, err)
	assert.Equal(t, GroupAPI, ep.Prefix)
	assert.Equal(t, "apps/v1", ep.APIVersion())
	assert.Equal(t, "apps", ep.Extension())
}

func TestStaticEndpointForVersion(t *testing.T) {
	m := NewStatic(OpenShiftEndpoints()...)

	ep, err := m.EndpointFor("", api.KindIngress)
	require.NoError(t, err)
	assert.Equal(t, "networking.k8s.io/v1", ep.APIVersion(), "first registered endpoint is preferred")

	ep, err = m.EndpointFor("extensions/v1beta1", api.KindIngress)
	require.NoError(t, err)
	assert.Equal(t, "extensions", ep.Group())

	ep, err = m.EndpointFor("v1beta1", api.KindIngress)
	require.NoError(t, err)
	assert.Equal(t, "extensions", ep.Group(), "a bare version matches any group")

	_, err = m.EndpointFor("batch/v1", api.KindIngress)
	assert.True(t, IsEndpointNotFound(err))
}

func TestStaticEndpointNotFound(t *testing.T) {
	m := NewStatic()

	_, err := m.EndpointFor("v1", "FooBar")
	require.Error(t, err)
	assert.True(t, IsEndpointNotFound(err))

	var nf *EndpointNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "FooBar", nf.Kind)
	assert.Contains(t, err.Error(), "FooBar")
}

func TestStaticAdd(t *testing.T) {
	m := NewStatic()
	m.Add(Endpoint{Prefix: GroupAPI, APIGroupName: "example.com", Version: "v1", Kind: "Widget"})

	ep, err := m.EndpointFor("example.com/v1", "Widget")
	require.NoError(t, err)
	assert.Equal(t, "example.com", ep.Extension())

	// the returned endpoint is a copy
	ep.Kind = "Other"
	ep, err = m.EndpointFor("", "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", ep.Kind)
}

func TestEndpointGroupVersionName(t *testing.T) {
	ep := Endpoint{Prefix: GroupAPI, APIGroupName: "apps/v1", Version: "v1", Kind: api.KindDeployment}

	assert.Equal(t, "apps", ep.Group())
	assert.Equal(t, "apps", ep.Extension())
	assert.Equal(t, "apps/v1", ep.APIVersion())
	assert.Equal(t, "apis/apps/v1/Deployment", ep.String())
}
