package model

import (
	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Deployment is an apps group rollout of replica sets.
type Deployment struct{ Base }

// NewDeployment implements Constructor.
func NewDeployment(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Deployment{Base: b} })
}

// Replicas returns the requested replica count.
func (d *Deployment) Replicas() int64 { return d.Int64Field(properties.Replicas) }

// SetReplicas sets the requested replica count.
func (d *Deployment) SetReplicas(n int64) { d.SetInt64(properties.Replicas, n) }

// ReadyReplicas returns the number of ready pods.
func (d *Deployment) ReadyReplicas() int64 { return d.Int64Field(properties.ReadyReplicas) }

// Selector returns the label selector of the managed pods.
func (d *Deployment) Selector() map[string]string {
	return d.StringMapField(properties.MatchLabels)
}

// AsDeployment decodes the deployment into its typed form.
func (d *Deployment) AsDeployment() (*appsv1.Deployment, error) {
	out := &appsv1.Deployment{}
	return out, d.convert(out)
}

// ReplicaSet keeps a number of identical pods running.
type ReplicaSet struct{ Base }

// NewReplicaSet implements Constructor.
func NewReplicaSet(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &ReplicaSet{Base: b} })
}

// Replicas returns the requested replica count.
func (r *ReplicaSet) Replicas() int64 { return r.Int64Field(properties.Replicas) }

// CurrentReplicas returns the observed replica count.
func (r *ReplicaSet) CurrentReplicas() int64 { return r.Int64Field(properties.ReplicasCurrent) }

// AsReplicaSet decodes the replica set into its typed form.
func (r *ReplicaSet) AsReplicaSet() (*appsv1.ReplicaSet, error) {
	out := &appsv1.ReplicaSet{}
	return out, r.convert(out)
}

// Job runs pods to completion.
type Job struct{ Base }

// NewJob implements Constructor.
func NewJob(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Job{Base: b} })
}

// Completions returns the number of successful pods required.
func (j *Job) Completions() int64 { return j.Int64Field(properties.Completions) }

// Succeeded returns the number of pods that succeeded.
func (j *Job) Succeeded() int64 { return j.Int64Field(properties.Succeeded) }

// Failed returns the number of pods that failed.
func (j *Job) Failed() int64 { return j.Int64Field(properties.Failed) }

// Complete reports whether the required completions were reached. A job
// without completions is complete after its first success.
func (j *Job) Complete() bool {
	want := j.Completions()
	if want == 0 {
		want = 1
	}
	return j.Succeeded() >= want
}

// AsJob decodes the job into its typed form.
func (j *Job) AsJob() (*batchv1.Job, error) {
	out := &batchv1.Job{}
	return out, j.convert(out)
}

// Ingress routes external HTTP traffic to services.
type Ingress struct{ Base }

// NewIngress implements Constructor.
func NewIngress(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Ingress{Base: b} })
}

// Hosts returns the host of every rule in order. Rules without a host
// are skipped.
func (i *Ingress) Hosts() []string {
	var out []string
	for _, r := range i.ObjectsField(properties.Rules) {
		if h, ok := r["host"].(string); ok && h != "" {
			out = append(out, h)
		}
	}
	return out
}

// ClassName returns the ingress class.
func (i *Ingress) ClassName() string { return i.StringField(properties.IngressClassName) }

// TLS reports whether any TLS configuration is present.
func (i *Ingress) TLS() bool { return len(i.SliceField(properties.TLS)) > 0 }

// AsIngress decodes the ingress into its typed networking.k8s.io/v1 form.
func (i *Ingress) AsIngress() (*networkingv1.Ingress, error) {
	out := &networkingv1.Ingress{}
	return out, i.convert(out)
}
