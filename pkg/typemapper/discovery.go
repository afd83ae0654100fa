package typemapper

import (
	"fmt"
	"strings"
	"sync"

	"github.com/openshift/restclient-go/pkg/logging"
	"github.com/openshift/restclient-go/pkg/metrics"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/discovery"
	"k8s.io/klog/v2"
)

// Discovery is a Mapper backed by server discovery. Discovery data is
// loaded on first use and kept until Refresh is called.
//
// Thread-safety: safe for concurrent use.
type Discovery struct {
	client  discovery.DiscoveryInterface
	metrics *metrics.DiscoveryMetrics

	mu     sync.Mutex
	loaded bool
	byKind map[string][]Endpoint
}

var _ Mapper = (*Discovery)(nil)

// NewDiscovery creates a mapper over the given discovery client. Loads
// are recorded in the global metrics registry.
func NewDiscovery(client discovery.DiscoveryInterface) *Discovery {
	return NewDiscoveryWithMetrics(client, metrics.Global().Discovery())
}

// NewDiscoveryWithMetrics creates a mapper recording its loads in m.
func NewDiscoveryWithMetrics(client discovery.DiscoveryInterface, m *metrics.DiscoveryMetrics) *Discovery {
	return &Discovery{client: client, metrics: m}
}

// EndpointFor implements Mapper.
func (d *Discovery) EndpointFor(version, kind string) (*Endpoint, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.loaded {
		if err := d.loadLocked(); err != nil {
			return nil, err
		}
	}
	return match(d.byKind[kind], version, kind)
}

// Refresh discards the cached discovery data and loads it again.
func (d *Discovery) Refresh() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.loaded = false
	return d.loadLocked()
}

func (d *Discovery) loadLocked() error {
	status := metrics.StatusSuccess
	groups, lists, err := d.client.ServerGroupsAndResources()
	if err != nil {
		if !discovery.IsGroupDiscoveryFailedError(err) || len(lists) == 0 {
			d.metrics.RecordRefresh(metrics.StatusError, 0)
			return fmt.Errorf("failed to discover server resources: %w", err)
		}
		// partial results are still usable
		klog.V(logging.LevelWarning).InfoS("Partial API discovery", "error", err)
		status = metrics.StatusPartial
	}

	preferred := make(map[string]string, len(groups))
	for _, g := range groups {
		if g == nil {
			continue
		}
		preferred[g.Name] = g.PreferredVersion.Version
	}

	byKind := make(map[string][]Endpoint)
	count := 0
	for _, list := range lists {
		if list == nil {
			continue
		}
		gv, err := schema.ParseGroupVersion(list.GroupVersion)
		if err != nil {
			klog.V(logging.LevelWarning).InfoS("Skipping malformed group version",
				"groupVersion", list.GroupVersion, "error", err)
			continue
		}
		for _, r := range list.APIResources {
			if strings.Contains(r.Name, "/") {
				// subresources are not addressable kinds
				continue
			}
			e := endpointFor(gv, r)
			count++
			if preferred[gv.Group] == gv.Version {
				byKind[e.Kind] = append([]Endpoint{e}, byKind[e.Kind]...)
			} else {
				byKind[e.Kind] = append(byKind[e.Kind], e)
			}
		}
	}

	d.byKind = byKind
	d.loaded = true
	d.metrics.RecordRefresh(status, count)

	klog.V(logging.LevelInfo).InfoS("Loaded API discovery", "groups", len(groups), "kinds", len(byKind))
	return nil
}

func endpointFor(gv schema.GroupVersion, r metav1.APIResource) Endpoint {
	prefix := GroupAPI
	if gv.Group == "" {
		prefix = KubeAPI
	}
	return Endpoint{
		Prefix:       prefix,
		APIGroupName: gv.Group,
		Version:      gv.Version,
		Kind:         r.Kind,
		Resource:     r.Name,
		Namespaced:   r.Namespaced,
	}
}
