package model

import (
	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Pod is a group of containers scheduled together.
type Pod struct{ Base }

// NewPod implements Constructor.
func NewPod(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Pod{Base: b} })
}

// IP returns the address assigned to the pod.
func (p *Pod) IP() string { return p.StringField(properties.PodIP) }

// HostIP returns the address of the node running the pod.
func (p *Pod) HostIP() string { return p.StringField(properties.HostIP) }

// Phase returns the pod lifecycle phase, e.g. "Running".
func (p *Pod) Phase() string { return p.StringField(properties.Phase) }

// NodeName returns the node the pod is scheduled to.
func (p *Pod) NodeName() string { return p.StringField(properties.NodeName) }

// ContainerNames returns the names of the pod's containers in order.
func (p *Pod) ContainerNames() []string {
	var names []string
	for _, c := range p.ObjectsField(properties.Containers) {
		if name, ok := c["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// AsPod decodes the pod into its typed form.
func (p *Pod) AsPod() (*corev1.Pod, error) {
	out := &corev1.Pod{}
	return out, p.convert(out)
}

// Service exposes a set of pods behind a stable address.
type Service struct{ Base }

// NewService implements Constructor.
func NewService(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Service{Base: b} })
}

// ClusterIP returns the virtual address of the service.
func (s *Service) ClusterIP() string { return s.StringField(properties.ClusterIP) }

// Type returns the service type, e.g. "ClusterIP".
func (s *Service) Type() string { return s.StringField(properties.Type) }

// Selector returns the pod selector.
func (s *Service) Selector() map[string]string { return s.StringMapField(properties.Selector) }

// SetSelector replaces the pod selector.
func (s *Service) SetSelector(selector map[string]string) {
	s.SetStringMap(properties.Selector, selector)
}

// Ports returns the declared port numbers in order.
func (s *Service) Ports() []int64 {
	var ports []int64
	for _, p := range s.ObjectsField(properties.Ports) {
		switch n := p["port"].(type) {
		case int64:
			ports = append(ports, n)
		case float64:
			ports = append(ports, int64(n))
		}
	}
	return ports
}

// AsService decodes the service into its typed form.
func (s *Service) AsService() (*corev1.Service, error) {
	out := &corev1.Service{}
	return out, s.convert(out)
}

// ReplicationController keeps a number of pod replicas running.
type ReplicationController struct{ Base }

// NewReplicationController implements Constructor.
func NewReplicationController(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &ReplicationController{Base: b} })
}

// DesiredReplicas returns the requested replica count.
func (r *ReplicationController) DesiredReplicas() int64 { return r.Int64Field(properties.Replicas) }

// SetDesiredReplicas sets the requested replica count.
func (r *ReplicationController) SetDesiredReplicas(n int64) { r.SetInt64(properties.Replicas, n) }

// CurrentReplicas returns the observed replica count.
func (r *ReplicationController) CurrentReplicas() int64 {
	return r.Int64Field(properties.ReplicasCurrent)
}

// Selector returns the pod selector.
func (r *ReplicationController) Selector() map[string]string {
	return r.StringMapField(properties.Selector)
}

// AsReplicationController decodes the controller into its typed form.
func (r *ReplicationController) AsReplicationController() (*corev1.ReplicationController, error) {
	out := &corev1.ReplicationController{}
	return out, r.convert(out)
}

// Namespace partitions cluster resources.
type Namespace struct{ Base }

// NewNamespace implements Constructor.
func NewNamespace(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Namespace{Base: b} })
}

// DisplayName returns the human readable name.
func (n *Namespace) DisplayName() string { return n.StringField(properties.DisplayName) }

// Phase returns "Active" or "Terminating".
func (n *Namespace) Phase() string { return n.StringField(properties.ProjectPhase) }

// AsNamespace decodes the namespace into its typed form.
func (n *Namespace) AsNamespace() (*corev1.Namespace, error) {
	out := &corev1.Namespace{}
	return out, n.convert(out)
}

// Secret holds sensitive data.
type Secret struct{ Base }

// NewSecret implements Constructor.
func NewSecret(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Secret{Base: b} })
}

// Type returns the secret type, e.g. "Opaque".
func (s *Secret) Type() string { return s.StringField(properties.SecretType) }

// Data returns the base64 encoded values keyed by name.
func (s *Secret) Data() map[string]string { return s.StringMapField(properties.Data) }

// SetStringData stores plain text values; the server encodes them.
func (s *Secret) SetStringData(data map[string]string) {
	s.SetStringMap(properties.StringData, data)
}

// AsSecret decodes the secret into its typed form.
func (s *Secret) AsSecret() (*corev1.Secret, error) {
	out := &corev1.Secret{}
	return out, s.convert(out)
}

// ConfigMap holds configuration data.
type ConfigMap struct{ Base }

// NewConfigMap implements Constructor.
func NewConfigMap(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &ConfigMap{Base: b} })
}

// Data returns the configuration values.
func (m *ConfigMap) Data() map[string]string { return m.StringMapField(properties.Data) }

// SetData replaces the configuration values.
func (m *ConfigMap) SetData(data map[string]string) { m.SetStringMap(properties.Data, data) }

// AsConfigMap decodes the config map into its typed form.
func (m *ConfigMap) AsConfigMap() (*corev1.ConfigMap, error) {
	out := &corev1.ConfigMap{}
	return out, m.convert(out)
}

// ServiceAccount is an identity for processes running in pods.
type ServiceAccount struct{ Base }

// NewServiceAccount implements Constructor.
func NewServiceAccount(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &ServiceAccount{Base: b} })
}

// SecretNames returns the names of the secrets the account may use.
func (s *ServiceAccount) SecretNames() []string { return refNames(s.ObjectsField(properties.Secrets)) }

// ImagePullSecretNames returns the names of the image pull secrets.
func (s *ServiceAccount) ImagePullSecretNames() []string {
	return refNames(s.ObjectsField(properties.ImagePullSecrets))
}

// AsServiceAccount decodes the account into its typed form.
func (s *ServiceAccount) AsServiceAccount() (*corev1.ServiceAccount, error) {
	out := &corev1.ServiceAccount{}
	return out, s.convert(out)
}

// Event reports something that happened to an object.
type Event struct{ Base }

// NewEvent implements Constructor.
func NewEvent(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Event{Base: b} })
}

// Reason returns the short machine readable reason.
func (e *Event) Reason() string { return e.StringField(properties.Reason) }

// Message returns the human readable description.
func (e *Event) Message() string { return e.StringField(properties.Message) }

// Type returns "Normal" or "Warning".
func (e *Event) Type() string { return e.StringField(properties.EventType) }

// Count returns how many times the event occurred.
func (e *Event) Count() int64 { return e.Int64Field(properties.Count) }

// AsEvent decodes the event into its typed form.
func (e *Event) AsEvent() (*corev1.Event, error) {
	out := &corev1.Event{}
	return out, e.convert(out)
}

// LimitRange constrains resource consumption per object in a namespace.
type LimitRange struct{ Base }

// NewLimitRange implements Constructor.
func NewLimitRange(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &LimitRange{Base: b} })
}

// AsLimitRange decodes the limit range into its typed form.
func (l *LimitRange) AsLimitRange() (*corev1.LimitRange, error) {
	out := &corev1.LimitRange{}
	return out, l.convert(out)
}

// ResourceQuota constrains aggregate resource consumption in a namespace.
type ResourceQuota struct{ Base }

// NewResourceQuota implements Constructor.
func NewResourceQuota(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &ResourceQuota{Base: b} })
}

// Hard returns the enforced limits.
func (q *ResourceQuota) Hard() map[string]string { return q.StringMapField(properties.Hard) }

// Used returns the observed usage.
func (q *ResourceQuota) Used() map[string]string { return q.StringMapField(properties.Used) }

// AsResourceQuota decodes the quota into its typed form.
func (q *ResourceQuota) AsResourceQuota() (*corev1.ResourceQuota, error) {
	out := &corev1.ResourceQuota{}
	return out, q.convert(out)
}

// PersistentVolume is a piece of provisioned storage.
type PersistentVolume struct{ Base }

// NewPersistentVolume implements Constructor.
func NewPersistentVolume(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &PersistentVolume{Base: b} })
}

// AccessModes returns the supported access modes.
func (v *PersistentVolume) AccessModes() []string { return v.stringList(properties.AccessModes) }

// Capacity returns the storage capacity, e.g. "5Gi".
func (v *PersistentVolume) Capacity() string {
	return v.StringMapField(properties.Capacity)["storage"]
}

// ReclaimPolicy returns what happens to the volume once released.
func (v *PersistentVolume) ReclaimPolicy() string { return v.StringField(properties.ReclaimPolicy) }

// Phase returns the volume phase, e.g. "Bound".
func (v *PersistentVolume) Phase() string { return v.StringField(properties.Phase) }

// AsPersistentVolume decodes the volume into its typed form.
func (v *PersistentVolume) AsPersistentVolume() (*corev1.PersistentVolume, error) {
	out := &corev1.PersistentVolume{}
	return out, v.convert(out)
}

// PersistentVolumeClaim is a request for storage.
type PersistentVolumeClaim struct{ Base }

// NewPersistentVolumeClaim implements Constructor.
func NewPersistentVolumeClaim(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &PersistentVolumeClaim{Base: b} })
}

// AccessModes returns the requested access modes.
func (v *PersistentVolumeClaim) AccessModes() []string { return v.stringList(properties.AccessModes) }

// RequestedStorage returns the requested size, e.g. "1Gi".
func (v *PersistentVolumeClaim) RequestedStorage() string {
	return v.StringMapField(properties.Requests)["storage"]
}

// SetRequestedStorage sets the requested size.
func (v *PersistentVolumeClaim) SetRequestedStorage(size string) {
	requests := v.StringMapField(properties.Requests)
	if requests == nil {
		requests = map[string]string{}
	}
	requests["storage"] = size
	v.SetStringMap(properties.Requests, requests)
}

// VolumeName returns the bound volume.
func (v *PersistentVolumeClaim) VolumeName() string { return v.StringField(properties.VolumeName) }

// Phase returns the claim phase, e.g. "Pending".
func (v *PersistentVolumeClaim) Phase() string { return v.StringField(properties.Phase) }

// AsPersistentVolumeClaim decodes the claim into its typed form.
func (v *PersistentVolumeClaim) AsPersistentVolumeClaim() (*corev1.PersistentVolumeClaim, error) {
	out := &corev1.PersistentVolumeClaim{}
	return out, v.convert(out)
}

func refNames(refs []map[string]interface{}) []string {
	var names []string
	for _, r := range refs {
		if name, ok := r["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}
