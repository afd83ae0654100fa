package model

import (
	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Build is a single run of a BuildConfig.
type Build struct{ Base }

// NewBuild implements Constructor.
func NewBuild(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Build{Base: b} })
}

// Status returns the build phase, e.g. "Complete".
func (b *Build) Status() string { return b.StringField(properties.BuildStatus) }

// Message returns the detail of the current phase.
func (b *Build) Message() string { return b.StringField(properties.BuildMessage) }

// PodName returns the build pod.
func (b *Build) PodName() string { return b.StringField(properties.BuildPodName) }

// SourceURI returns the git repository being built.
func (b *Build) SourceURI() string { return b.StringField(properties.SourceURI) }

// OutputTo returns the image the build pushes to, as "Kind/name".
func (b *Build) OutputTo() string { return objectRef(b.Base, properties.OutputTo) }

// Cancelled reports whether the build has been cancelled.
func (b *Build) Cancelled() bool { return b.Status() == "Cancelled" }

// BuildConfig describes how to build an image from source.
type BuildConfig struct{ Base }

// NewBuildConfig implements Constructor.
func NewBuildConfig(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &BuildConfig{Base: b} })
}

// SourceURI returns the git repository to build.
func (b *BuildConfig) SourceURI() string { return b.StringField(properties.SourceURI) }

// SetSourceURI sets the git repository to build.
func (b *BuildConfig) SetSourceURI(uri string) { b.SetString(properties.SourceURI, uri) }

// SourceRef returns the git ref to build.
func (b *BuildConfig) SourceRef() string { return b.StringField(properties.SourceRef) }

// StrategyType returns the build strategy, e.g. "Source" or "Docker".
func (b *BuildConfig) StrategyType() string {
	v, ok := b.Field(properties.BuildStrategy)
	if !ok {
		return ""
	}
	m, _ := v.(map[string]interface{})
	t, _ := m["type"].(string)
	return t
}

// OutputTo returns the image the build pushes to, as "Kind/name".
func (b *BuildConfig) OutputTo() string { return objectRef(b.Base, properties.OutputTo) }

// LastVersion returns the number of the most recent build.
func (b *BuildConfig) LastVersion() int64 { return b.Int64Field(properties.LastVersion) }

// TriggerTypes returns the configured trigger types in order.
func (b *BuildConfig) TriggerTypes() []string { return triggerTypes(b.Base) }

// BuildRequest asks the server to start or clone a build.
type BuildRequest struct{ Base }

// NewBuildRequest implements Constructor.
func NewBuildRequest(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &BuildRequest{Base: b} })
}

// From returns the image the build is started from, as "Kind/name".
func (r *BuildRequest) From() string { return objectRef(r.Base, properties.BuildRequestTo) }

// AddBuildCause records why the build was requested.
func (r *BuildRequest) AddBuildCause(message string) {
	causes := r.SliceField(properties.TriggeredBy)
	causes = append(causes, map[string]interface{}{"message": message})
	r.SetValue(properties.TriggeredBy, causes)
}

// BuildCauses returns the recorded causes in order.
func (r *BuildRequest) BuildCauses() []string {
	var out []string
	for _, c := range r.ObjectsField(properties.TriggeredBy) {
		if m, ok := c["message"].(string); ok {
			out = append(out, m)
		}
	}
	return out
}

// objectRef renders the object reference stored under key as "Kind/name".
func objectRef(b Base, key string) string {
	v, ok := b.Field(key)
	if !ok {
		return ""
	}
	m, _ := v.(map[string]interface{})
	kind, _ := m["kind"].(string)
	name, _ := m["name"].(string)
	if kind == "" {
		return name
	}
	return kind + "/" + name
}

func triggerTypes(b Base) []string {
	var out []string
	for _, t := range b.ObjectsField(properties.Triggers) {
		if s, ok := t["type"].(string); ok {
			out = append(out, s)
		}
	}
	return out
}
