package model

import (
	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// DeploymentConfig rolls out replication controllers for a pod template.
type DeploymentConfig struct{ Base }

// NewDeploymentConfig implements Constructor.
func NewDeploymentConfig(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &DeploymentConfig{Base: b} })
}

// Replicas returns the requested replica count.
func (d *DeploymentConfig) Replicas() int64 { return d.Int64Field(properties.Replicas) }

// SetReplicas sets the requested replica count.
func (d *DeploymentConfig) SetReplicas(n int64) { d.SetInt64(properties.Replicas, n) }

// Selector returns the pod selector.
func (d *DeploymentConfig) Selector() map[string]string {
	return d.StringMapField(properties.Selector)
}

// LatestVersion returns the number of the latest rollout.
func (d *DeploymentConfig) LatestVersion() int64 { return d.Int64Field(properties.LastVersion) }

// TriggerTypes returns the configured trigger types in order.
func (d *DeploymentConfig) TriggerTypes() []string { return triggerTypes(d.Base) }

// ImageStream tracks a set of tagged images.
type ImageStream struct{ Base }

// NewImageStream implements Constructor.
func NewImageStream(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &ImageStream{Base: b} })
}

// DockerImageRepository returns the repository the stream tracks. The
// repository resolved by the server is preferred over the requested one.
func (i *ImageStream) DockerImageRepository() string {
	if repo := i.StringField(properties.StatusDockerImageRepository); repo != "" {
		return repo
	}
	return i.StringField(properties.DockerImageRepository)
}

// SetDockerImageRepository sets the repository to track.
func (i *ImageStream) SetDockerImageRepository(repo string) {
	i.SetString(properties.DockerImageRepository, repo)
}

// TagNames returns the names of the requested tags in order.
func (i *ImageStream) TagNames() []string { return refNames(i.ObjectsField(properties.Tags)) }

// ImageStreamImport imports images into an image stream.
type ImageStreamImport struct{ Base }

// NewImageStreamImport implements Constructor.
func NewImageStreamImport(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &ImageStreamImport{Base: b} })
}

// Import reports whether the import is persisted rather than a dry run.
func (i *ImageStreamImport) Import() bool { return i.BoolField(properties.ImportImport) }

// SetImport sets whether the import is persisted.
func (i *ImageStreamImport) SetImport(persist bool) { i.SetValue(properties.ImportImport, persist) }

// AddImage requests the import of a docker image.
func (i *ImageStreamImport) AddImage(dockerImage string) {
	images := i.SliceField(properties.ImportImages)
	images = append(images, map[string]interface{}{
		"from": map[string]interface{}{"kind": "DockerImage", "name": dockerImage},
	})
	i.SetValue(properties.ImportImages, images)
}

// Route exposes a service at a host name.
type Route struct{ Base }

// NewRoute implements Constructor.
func NewRoute(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Route{Base: b} })
}

// Host returns the host name the route answers on.
func (r *Route) Host() string { return r.StringField(properties.Host) }

// SetHost sets the host name.
func (r *Route) SetHost(host string) { r.SetString(properties.Host, host) }

// Path returns the path the route answers on.
func (r *Route) Path() string { return r.StringField(properties.Path) }

// ServiceName returns the service the route points to.
func (r *Route) ServiceName() string { return r.StringField(properties.ToName) }

// SetServiceName points the route to a service.
func (r *Route) SetServiceName(name string) {
	r.SetString(properties.ToKind, "Service")
	r.SetString(properties.ToName, name)
}

// TLS reports whether the route terminates TLS.
func (r *Route) TLS() bool {
	_, ok := r.Field(properties.TLS)
	return ok
}

// URL returns the address of the route.
func (r *Route) URL() string {
	if r.Host() == "" {
		return ""
	}
	scheme := "http"
	if r.TLS() {
		scheme = "https"
	}
	return scheme + "://" + r.Host() + r.Path()
}

// Project is a namespace with OpenShift metadata.
type Project struct{ Base }

// NewProject implements Constructor.
func NewProject(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Project{Base: b} })
}

// DisplayName returns the human readable name.
func (p *Project) DisplayName() string { return p.StringField(properties.DisplayName) }

// Description returns the project description.
func (p *Project) Description() string { return p.StringField(properties.Description) }

// Phase returns "Active" or "Terminating".
func (p *Project) Phase() string { return p.StringField(properties.ProjectPhase) }

// ProjectRequest asks the server to provision a project.
type ProjectRequest struct{ Base }

// NewProjectRequest implements Constructor.
func NewProjectRequest(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &ProjectRequest{Base: b} })
}

// DisplayName returns the requested human readable name.
func (p *ProjectRequest) DisplayName() string { return p.StringField(properties.DisplayName) }

// SetDisplayName sets the requested human readable name.
func (p *ProjectRequest) SetDisplayName(name string) { p.SetString(properties.DisplayName, name) }

// Description returns the requested description.
func (p *ProjectRequest) Description() string { return p.StringField(properties.Description) }

// SetDescription sets the requested description.
func (p *ProjectRequest) SetDescription(d string) { p.SetString(properties.Description, d) }

// Template is a parameterized set of objects.
type Template struct{ Base }

// NewTemplate implements Constructor.
func NewTemplate(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Template{Base: b} })
}

// ObjectCount returns the number of objects in the template.
func (t *Template) ObjectCount() int { return len(t.SliceField(properties.Objects)) }

// Parameters returns the parameter values keyed by name. Parameters
// without a value map to "".
func (t *Template) Parameters() map[string]string {
	out := map[string]string{}
	for _, p := range t.ObjectsField(properties.Parameters) {
		name, ok := p["name"].(string)
		if !ok {
			continue
		}
		value, _ := p["value"].(string)
		out[name] = value
	}
	return out
}

// ObjectLabels returns the labels applied to every object.
func (t *Template) ObjectLabels() map[string]string {
	return t.StringMapField(properties.TemplateLabels)
}

// User is an OpenShift user.
type User struct{ Base }

// NewUser implements Constructor.
func NewUser(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &User{Base: b} })
}

// FullName returns the user's full name.
func (u *User) FullName() string { return u.StringField(properties.FullName) }

// Identities returns the identity provider mappings.
func (u *User) Identities() []string { return u.stringList(properties.Identities) }

// Groups returns the groups the user belongs to.
func (u *User) Groups() []string { return u.stringList(properties.Groups) }
