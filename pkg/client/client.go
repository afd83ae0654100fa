// Package client provides the handle every materialized resource keeps
// to the connection it came from.
package client

import (
	"errors"
	"fmt"

	"github.com/openshift/restclient-go/pkg/typemapper"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/rest"
)

// ErrMissingClient is returned when an operation needs a client handle
// and none was configured.
var ErrMissingClient = errors.New("client is required")

// Client is the handle passed to every constructed resource. Resources
// use it to perform later operations against the originating server.
type Client interface {
	// Host returns the server the client is connected to.
	Host() string
}

// TypeMapperProvider is implemented by clients that can resolve kinds to
// the endpoints serving them on their server.
type TypeMapperProvider interface {
	TypeMapper() typemapper.Mapper
}

// TypeMapperFor adapts c to the type mapping capability. It returns nil
// when c is nil or does not provide one.
func TypeMapperFor(c Client) typemapper.Mapper {
	if c == nil {
		return nil
	}
	p, ok := c.(TypeMapperProvider)
	if !ok {
		return nil
	}
	return p.TypeMapper()
}

// RESTClient is a Client connected to a server through a rest.Config.
type RESTClient struct {
	config *rest.Config
	mapper typemapper.Mapper
}

var (
	_ Client             = (*RESTClient)(nil)
	_ TypeMapperProvider = (*RESTClient)(nil)
)

// NewForConfig creates a client whose type mapper is backed by the
// server's discovery endpoint.
func NewForConfig(config *rest.Config) (*RESTClient, error) {
	if config == nil {
		return nil, errors.New("REST config is required")
	}
	dc, err := discovery.NewDiscoveryClientForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery client: %w", err)
	}
	return &RESTClient{
		config: rest.CopyConfig(config),
		mapper: typemapper.NewDiscovery(dc),
	}, nil
}

// NewWithMapper creates a client that resolves kinds with the given
// mapper instead of server discovery.
func NewWithMapper(config *rest.Config, mapper typemapper.Mapper) *RESTClient {
	if config == nil {
		config = &rest.Config{}
	}
	return &RESTClient{
		config: rest.CopyConfig(config),
		mapper: mapper,
	}
}

// Host implements Client.
func (c *RESTClient) Host() string {
	return c.config.Host
}

// Config returns a copy of the client's REST configuration.
func (c *RESTClient) Config() *rest.Config {
	return rest.CopyConfig(c.config)
}

// TypeMapper implements TypeMapperProvider.
func (c *RESTClient) TypeMapper() typemapper.Mapper {
	return c.mapper
}
