package model

import (
	"testing"

	"github.com/openshift/restclient-go/pkg/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load builds a resource of the document's kind with ctor.
func load(t *testing.T, ctor Constructor, raw string) Resource {
	t.Helper()
	doc, err := document.Parse([]byte(raw))
	require.NoError(t, err)
	version, kind, err := document.TypeFields(doc)
	require.NoError(t, err)
	res, err := ctor(doc, nil, keysFor(t, version, kind))
	require.NoError(t, err)
	return res
}

func TestPod(t *testing.T) {
	pod := load(t, NewPod, `{
		"apiVersion": "v1", "kind": "Pod",
		"metadata": {"name": "web-1", "namespace": "demo"},
		"spec": {"nodeName": "node-a", "containers": [{"name": "app", "image": "nginx"}, {"name": "sidecar", "image": "envoy"}]},
		"status": {"phase": "Running", "podIP": "10.1.2.3", "hostIP": "192.168.0.4"}
	}`).(*Pod)

	assert.Equal(t, "Running", pod.Phase())
	assert.Equal(t, "10.1.2.3", pod.IP())
	assert.Equal(t, "192.168.0.4", pod.HostIP())
	assert.Equal(t, "node-a", pod.NodeName())
	assert.Equal(t, []string{"app", "sidecar"}, pod.ContainerNames())

	typed, err := pod.AsPod()
	require.NoError(t, err)
	assert.Equal(t, "web-1", typed.Name)
	assert.Equal(t, "demo", typed.Namespace)
	require.Len(t, typed.Spec.Containers, 2)
	assert.Equal(t, "envoy", typed.Spec.Containers[1].Image)
}

func TestService(t *testing.T) {
	svc := load(t, NewService, `{
		"apiVersion": "v1", "kind": "Service",
		"metadata": {"name": "web"},
		"spec": {"type": "ClusterIP", "clusterIP": "172.30.0.10", "selector": {"app": "web"}, "ports": [{"port": 80}, {"port": 443}]}
	}`).(*Service)

	assert.Equal(t, "ClusterIP", svc.Type())
	assert.Equal(t, "172.30.0.10", svc.ClusterIP())
	assert.Equal(t, []int64{80, 443}, svc.Ports())
	assert.Equal(t, map[string]string{"app": "web"}, svc.Selector())

	svc.SetSelector(map[string]string{"app": "api"})
	typed, err := svc.AsService()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"app": "api"}, typed.Spec.Selector)
}

func TestSecretAndConfigMap(t *testing.T) {
	secret := load(t, NewSecret, `{
		"apiVersion": "v1", "kind": "Secret", "type": "Opaque",
		"metadata": {"name": "creds"},
		"data": {"password": "c2VjcmV0"}
	}`).(*Secret)
	assert.Equal(t, "Opaque", secret.Type())
	assert.Equal(t, map[string]string{"password": "c2VjcmV0"}, secret.Data())

	secret.SetStringData(map[string]string{"user": "admin"})
	typed, err := secret.AsSecret()
	require.NoError(t, err)
	assert.Equal(t, "admin", typed.StringData["user"])
	assert.Equal(t, []byte("secret"), typed.Data["password"])

	cm := load(t, NewConfigMap, `{"apiVersion": "v1", "kind": "ConfigMap", "metadata": {"name": "cfg"}}`).(*ConfigMap)
	assert.Nil(t, cm.Data())
	cm.SetData(map[string]string{"mode": "debug"})
	assert.Equal(t, map[string]string{"mode": "debug"}, cm.Data())
}

func TestPersistentVolumeClaim(t *testing.T) {
	pvc := load(t, NewPersistentVolumeClaim, `{
		"apiVersion": "v1", "kind": "PersistentVolumeClaim",
		"metadata": {"name": "data"},
		"spec": {"accessModes": ["ReadWriteOnce"], "volumeName": "pv-1"},
		"status": {"phase": "Bound"}
	}`).(*PersistentVolumeClaim)

	assert.Equal(t, []string{"ReadWriteOnce"}, pvc.AccessModes())
	assert.Equal(t, "pv-1", pvc.VolumeName())
	assert.Equal(t, "Bound", pvc.Phase())
	assert.Empty(t, pvc.RequestedStorage())

	pvc.SetRequestedStorage("5Gi")
	assert.Equal(t, "5Gi", pvc.RequestedStorage())
}

func TestEvent(t *testing.T) {
	ev := load(t, NewEvent, `{
		"apiVersion": "v1", "kind": "Event",
		"metadata": {"name": "web.17a"},
		"reason": "BackOff", "message": "Back-off restarting failed container", "type": "Warning", "count": 4
	}`).(*Event)

	assert.Equal(t, "BackOff", ev.Reason())
	assert.Equal(t, "Warning", ev.Type())
	assert.Equal(t, int64(4), ev.Count())
}

func TestBuildConfig(t *testing.T) {
	bc := load(t, NewBuildConfig, `{
		"apiVersion": "build.openshift.io/v1", "kind": "BuildConfig",
		"metadata": {"name": "app"},
		"spec": {
			"source": {"git": {"uri": "https://github.com/example/app.git", "ref": "main"}},
			"strategy": {"type": "Source"},
			"output": {"to": {"kind": "ImageStreamTag", "name": "app:latest"}},
			"triggers": [{"type": "GitHub"}, {"type": "ConfigChange"}]
		},
		"status": {"lastVersion": 3}
	}`).(*BuildConfig)

	assert.Equal(t, "https://github.com/example/app.git", bc.SourceURI())
	assert.Equal(t, "main", bc.SourceRef())
	assert.Equal(t, "Source", bc.StrategyType())
	assert.Equal(t, "ImageStreamTag/app:latest", bc.OutputTo())
	assert.Equal(t, int64(3), bc.LastVersion())
	assert.Equal(t, []string{"GitHub", "ConfigChange"}, bc.TriggerTypes())

	bc.SetSourceURI("https://github.com/example/other.git")
	assert.Equal(t, "https://github.com/example/other.git", bc.SourceURI())
}

func TestBuildAndBuildRequest(t *testing.T) {
	b := load(t, NewBuild, `{
		"apiVersion": "build.openshift.io/v1", "kind": "Build",
		"metadata": {"name": "app-3"},
		"status": {"phase": "Cancelled", "message": "cancelled by user"}
	}`).(*Build)
	assert.True(t, b.Cancelled())
	assert.Equal(t, "cancelled by user", b.Message())

	req := load(t, NewBuildRequest, `{
		"apiVersion": "build.openshift.io/v1", "kind": "BuildRequest",
		"metadata": {"name": "app"},
		"from": {"kind": "DockerImage", "name": "registry/app:1"}
	}`).(*BuildRequest)
	assert.Equal(t, "DockerImage/registry/app:1", req.From())

	req.AddBuildCause("manual")
	req.AddBuildCause("webhook")
	assert.Equal(t, []string{"manual", "webhook"}, req.BuildCauses())
}

func TestDeploymentConfig(t *testing.T) {
	dc := load(t, NewDeploymentConfig, `{
		"apiVersion": "apps.openshift.io/v1", "kind": "DeploymentConfig",
		"metadata": {"name": "web"},
		"spec": {"replicas": 2, "selector": {"app": "web"}, "triggers": [{"type": "ImageChange"}]},
		"status": {"latestVersion": 7}
	}`).(*DeploymentConfig)

	assert.Equal(t, int64(2), dc.Replicas())
	assert.Equal(t, int64(7), dc.LatestVersion())
	assert.Equal(t, map[string]string{"app": "web"}, dc.Selector())
	assert.Equal(t, []string{"ImageChange"}, dc.TriggerTypes())

	dc.SetReplicas(4)
	assert.Equal(t, int64(4), dc.Replicas())
}

func TestImageStream(t *testing.T) {
	is := load(t, NewImageStream, `{
		"apiVersion": "image.openshift.io/v1", "kind": "ImageStream",
		"metadata": {"name": "app"},
		"spec": {"dockerImageRepository": "docker.io/example/app", "tags": [{"name": "latest"}, {"name": "1.0"}]}
	}`).(*ImageStream)

	assert.Equal(t, "docker.io/example/app", is.DockerImageRepository())
	assert.Equal(t, []string{"latest", "1.0"}, is.TagNames())

	is.Document().Object["status"] = map[string]interface{}{"dockerImageRepository": "172.30.1.1:5000/demo/app"}
	assert.Equal(t, "172.30.1.1:5000/demo/app", is.DockerImageRepository())

	imp := load(t, NewImageStreamImport, `{"apiVersion": "image.openshift.io/v1", "kind": "ImageStreamImport", "metadata": {"name": "app"}}`).(*ImageStreamImport)
	assert.False(t, imp.Import())
	imp.SetImport(true)
	imp.AddImage("docker.io/library/nginx:latest")
	assert.True(t, imp.Import())
	images := imp.ObjectsField("images")
	require.Len(t, images, 1)
	assert.Equal(t, "docker.io/library/nginx:latest", images[0]["from"].(map[string]interface{})["name"])
}

func TestRoute(t *testing.T) {
	route := load(t, NewRoute, `{
		"apiVersion": "route.openshift.io/v1", "kind": "Route",
		"metadata": {"name": "web"},
		"spec": {"host": "web.apps.example.com", "path": "/api", "to": {"kind": "Service", "name": "web"}}
	}`).(*Route)

	assert.Equal(t, "web", route.ServiceName())
	assert.False(t, route.TLS())
	assert.Equal(t, "http://web.apps.example.com/api", route.URL())

	route.Document().Object["spec"].(map[string]interface{})["tls"] = map[string]interface{}{"termination": "edge"}
	assert.Equal(t, "https://web.apps.example.com/api", route.URL())

	route.SetServiceName("api")
	route.SetHost("")
	assert.Equal(t, "api", route.ServiceName())
	assert.Empty(t, route.URL())
}

func TestProject(t *testing.T) {
	p := load(t, NewProject, `{
		"apiVersion": "project.openshift.io/v1", "kind": "Project",
		"metadata": {"name": "demo", "annotations": {"openshift.io/display-name": "Demo", "openshift.io/description": "Sandbox"}},
		"status": {"phase": "Active"}
	}`).(*Project)
	assert.Equal(t, "Demo", p.DisplayName())
	assert.Equal(t, "Sandbox", p.Description())
	assert.Equal(t, "Active", p.Phase())

	req := load(t, NewProjectRequest, `{"apiVersion": "project.openshift.io/v1", "kind": "ProjectRequest", "metadata": {"name": "demo"}}`).(*ProjectRequest)
	req.SetDisplayName("Demo")
	req.SetDescription("Sandbox")
	assert.Equal(t, "Demo", req.Document().Object["displayName"])
	assert.Equal(t, "Sandbox", req.Description())
}

func TestTemplate(t *testing.T) {
	tmpl := load(t, NewTemplate, `{
		"apiVersion": "template.openshift.io/v1", "kind": "Template",
		"metadata": {"name": "app"},
		"objects": [{"kind": "Service"}, {"kind": "Route"}],
		"parameters": [{"name": "NAME", "value": "web"}, {"name": "SECRET"}, {"value": "orphan"}],
		"labels": {"template": "app"}
	}`).(*Template)

	assert.Equal(t, 2, tmpl.ObjectCount())
	assert.Equal(t, map[string]string{"NAME": "web", "SECRET": ""}, tmpl.Parameters())
	assert.Equal(t, map[string]string{"template": "app"}, tmpl.ObjectLabels())
}

func TestAuthorization(t *testing.T) {
	binding := load(t, NewRoleBinding, `{
		"apiVersion": "authorization.openshift.io/v1", "kind": "RoleBinding",
		"metadata": {"name": "admins"},
		"roleRef": {"name": "admin"},
		"subjects": [{"kind": "User", "name": "alice"}, {"kind": "Group", "name": "ops"}],
		"userNames": ["alice"], "groupNames": ["ops"]
	}`).(*RoleBinding)

	assert.Equal(t, "admin", binding.RoleName())
	assert.Equal(t, []string{"User/alice", "Group/ops"}, binding.Subjects())
	assert.Equal(t, []string{"alice"}, binding.UserNames())
	assert.Equal(t, []string{"ops"}, binding.GroupNames())

	policy := load(t, NewPolicy, `{
		"apiVersion": "authorization.openshift.io/v1", "kind": "Policy",
		"metadata": {"name": "default"},
		"roles": [{"name": "admin"}, {"name": "view"}]
	}`).(*Policy)
	assert.Equal(t, []string{"admin", "view"}, policy.RoleNames())

	role := load(t, NewRole, `{
		"apiVersion": "authorization.openshift.io/v1", "kind": "Role",
		"metadata": {"name": "view"},
		"rules": [{"verbs": ["get"]}, {"verbs": ["list"]}]
	}`).(*Role)
	assert.Equal(t, 2, role.RuleCount())
}

func TestOAuth(t *testing.T) {
	token := load(t, NewOAuthAccessToken, `{
		"apiVersion": "oauth.openshift.io/v1", "kind": "OAuthAccessToken",
		"metadata": {"name": "sha256~abc"},
		"clientName": "openshift-browser-client", "userName": "alice", "scopes": ["user:full"], "expiresIn": 86400
	}`).(*OAuthAccessToken)

	assert.Equal(t, "openshift-browser-client", token.ClientName())
	assert.Equal(t, "alice", token.UserName())
	assert.Equal(t, []string{"user:full"}, token.Scopes())
	assert.Equal(t, int64(86400), token.ExpiresIn())

	client := load(t, NewOAuthClient, `{
		"apiVersion": "oauth.openshift.io/v1", "kind": "OAuthClient",
		"metadata": {"name": "console"},
		"secret": "s3cr3t", "redirectURIs": ["https://console.example.com/auth/callback"]
	}`).(*OAuthClient)
	assert.Equal(t, "s3cr3t", client.Secret())
	assert.Equal(t, []string{"https://console.example.com/auth/callback"}, client.RedirectURIs())
}

func TestUser(t *testing.T) {
	user := load(t, NewUser, `{
		"apiVersion": "user.openshift.io/v1", "kind": "User",
		"metadata": {"name": "alice"},
		"fullName": "Alice Example", "identities": ["github:alice"], "groups": ["ops"]
	}`).(*User)

	assert.Equal(t, "Alice Example", user.FullName())
	assert.Equal(t, []string{"github:alice"}, user.Identities())
	assert.Equal(t, []string{"ops"}, user.Groups())
}

func TestStatus(t *testing.T) {
	status := load(t, NewStatus, `{
		"apiVersion": "v1", "kind": "Status",
		"status": "Failure", "message": "pods \"web\" not found", "reason": "NotFound", "code": 404
	}`).(*Status)

	assert.True(t, status.IsFailure())
	assert.Equal(t, int64(404), status.Code())
	assert.Equal(t, "NotFound", status.Reason())

	typed, err := status.AsStatus()
	require.NoError(t, err)
	assert.Equal(t, int32(404), typed.Code)
	assert.Equal(t, `pods "web" not found`, typed.Message)
}

func TestDeploymentAndReplicaSet(t *testing.T) {
	d := load(t, NewDeployment, `{
		"apiVersion": "apps/v1", "kind": "Deployment",
		"metadata": {"name": "web"},
		"spec": {"replicas": 3, "selector": {"matchLabels": {"app": "web"}}},
		"status": {"readyReplicas": 2}
	}`).(*Deployment)

	assert.Equal(t, int64(3), d.Replicas())
	assert.Equal(t, int64(2), d.ReadyReplicas())
	assert.Equal(t, map[string]string{"app": "web"}, d.Selector())

	d.SetReplicas(1)
	typed, err := d.AsDeployment()
	require.NoError(t, err)
	require.NotNil(t, typed.Spec.Replicas)
	assert.Equal(t, int32(1), *typed.Spec.Replicas)

	rs := load(t, NewReplicaSet, `{
		"apiVersion": "apps/v1", "kind": "ReplicaSet",
		"metadata": {"name": "web-5d9"},
		"spec": {"replicas": 3},
		"status": {"replicas": 1}
	}`).(*ReplicaSet)
	assert.Equal(t, int64(3), rs.Replicas())
	assert.Equal(t, int64(1), rs.CurrentReplicas())
}

func TestJob(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		complete bool
	}{
		{"no completions, no success", `{"apiVersion": "batch/v1", "kind": "Job"}`, false},
		{"no completions, one success", `{"apiVersion": "batch/v1", "kind": "Job", "status": {"succeeded": 1}}`, true},
		{"partial", `{"apiVersion": "batch/v1", "kind": "Job", "spec": {"completions": 3}, "status": {"succeeded": 2, "failed": 1}}`, false},
		{"done", `{"apiVersion": "batch/v1", "kind": "Job", "spec": {"completions": 3}, "status": {"succeeded": 3}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := load(t, NewJob, tt.raw).(*Job)
			assert.Equal(t, tt.complete, job.Complete())
		})
	}
}

func TestIngress(t *testing.T) {
	ing := load(t, NewIngress, `{
		"apiVersion": "networking.k8s.io/v1", "kind": "Ingress",
		"metadata": {"name": "web"},
		"spec": {"ingressClassName": "nginx", "rules": [{"host": "a.example.com"}, {"http": {}}, {"host": "b.example.com"}], "tls": [{"hosts": ["a.example.com"]}]}
	}`).(*Ingress)

	assert.Equal(t, []string{"a.example.com", "b.example.com"}, ing.Hosts())
	assert.Equal(t, "nginx", ing.ClassName())
	assert.True(t, ing.TLS())

	typed, err := ing.AsIngress()
	require.NoError(t, err)
	require.NotNil(t, typed.Spec.IngressClassName)
	assert.Equal(t, "nginx", *typed.Spec.IngressClassName)
}
