package properties

import "github.com/openshift/restclient-go/pkg/api"

// Kind specific logical fields
const (
	// Pod
	PodIP        = "podIP"
	Phase        = "phase"
	Containers   = "containers"
	HostIP       = "hostIP"
	NodeName     = "nodeName"
	Volumes      = "volumes"
	Conditions   = "conditions"
	InitStatuses = "initContainerStatuses"

	// Service
	Ports     = "ports"
	Selector  = "selector"
	ClusterIP = "clusterIP"
	Type      = "type"

	// ReplicationController, DeploymentConfig
	Replicas        = "replicas"
	ReplicasCurrent = "status.replicas"
	Template        = "template"
	Triggers        = "triggers"
	Strategy        = "strategy"

	// Build, BuildConfig, BuildRequest
	SourceURI      = "sourceURI"
	SourceRef      = "sourceRef"
	OutputTo       = "outputTo"
	BuildStrategy  = "buildStrategy"
	BuildStatus    = "buildStatus"
	BuildMessage   = "buildMessage"
	BuildPodName   = "podName"
	LastVersion    = "lastVersion"
	TriggeredBy    = "triggeredBy"
	BuildRequestTo = "from"

	// ImageStream, ImageStreamImport
	DockerImageRepository       = "dockerImageRepository"
	StatusDockerImageRepository = "status.dockerImageRepository"
	Tags                        = "tags"
	ImportImages                = "images"
	ImportImport                = "import"

	// Route
	Host       = "host"
	Path       = "path"
	ToKind     = "to.kind"
	ToName     = "to.name"
	TargetPort = "port.targetPort"
	TLS        = "tls"

	// Project, Namespace, ProjectRequest
	DisplayName  = "displayName"
	Description  = "description"
	ProjectPhase = "status.phase"

	// Secret, ConfigMap
	Data       = "data"
	StringData = "stringData"
	SecretType = "secretType"

	// ServiceAccount
	Secrets          = "secrets"
	ImagePullSecrets = "imagePullSecrets"

	// Event
	Reason         = "reason"
	Message        = "message"
	InvolvedObject = "involvedObject"
	EventType      = "eventType"
	Count          = "count"

	// LimitRange, ResourceQuota
	Limits = "limits"
	Hard   = "hard"
	Used   = "used"

	// PersistentVolume, PersistentVolumeClaim
	AccessModes   = "accessModes"
	Capacity      = "capacity"
	Requests      = "requests"
	VolumeName    = "volumeName"
	ClaimRef      = "claimRef"
	ReclaimPolicy = "reclaimPolicy"

	// Template
	Objects        = "objects"
	Parameters     = "parameters"
	TemplateLabels = "templateLabels"

	// Authorization
	Rules        = "rules"
	RoleRef      = "roleRef"
	Subjects     = "subjects"
	UserNames    = "userNames"
	GroupNames   = "groupNames"
	RoleBindings = "roleBindings"
	PolicyRoles  = "roles"

	// OAuth
	ClientName   = "clientName"
	UserName     = "userName"
	Scopes       = "scopes"
	ExpiresIn    = "expiresIn"
	RedirectURIs = "redirectURIs"
	Secret       = "secret"

	// User
	FullName   = "fullName"
	Identities = "identities"
	Groups     = "groups"

	// Deployment, ReplicaSet, Job, Ingress
	ReadyReplicas    = "readyReplicas"
	MatchLabels      = "matchLabels"
	Completions      = "completions"
	Succeeded        = "succeeded"
	Failed           = "failed"
	IngressClassName = "ingressClassName"

	// Status
	StatusCode    = "code"
	StatusReason  = "statusReason"
	StatusMessage = "statusMessage"
	StatusStatus  = "status"
	StatusDetails = "details"
)

var builtinKeys = map[string]KeyMap{
	api.KindPod: {
		PodIP:        {"status", "podIP"},
		HostIP:       {"status", "hostIP"},
		Phase:        {"status", "phase"},
		Conditions:   {"status", "conditions"},
		InitStatuses: {"status", "initContainerStatuses"},
		Containers:   {"spec", "containers"},
		NodeName:     {"spec", "nodeName"},
		Volumes:      {"spec", "volumes"},
	},
	api.KindService: {
		Ports:     {"spec", "ports"},
		Selector:  {"spec", "selector"},
		ClusterIP: {"spec", "clusterIP"},
		Type:      {"spec", "type"},
	},
	api.KindReplicationController: {
		Replicas:        {"spec", "replicas"},
		ReplicasCurrent: {"status", "replicas"},
		Selector:        {"spec", "selector"},
		Template:        {"spec", "template"},
		Containers:      {"spec", "template", "spec", "containers"},
	},
	api.KindDeploymentConfig: {
		Replicas:    {"spec", "replicas"},
		Selector:    {"spec", "selector"},
		Template:    {"spec", "template"},
		Containers:  {"spec", "template", "spec", "containers"},
		Triggers:    {"spec", "triggers"},
		Strategy:    {"spec", "strategy"},
		LastVersion: {"status", "latestVersion"},
	},
	api.KindBuildConfig: {
		SourceURI:     {"spec", "source", "git", "uri"},
		SourceRef:     {"spec", "source", "git", "ref"},
		OutputTo:      {"spec", "output", "to"},
		BuildStrategy: {"spec", "strategy"},
		Triggers:      {"spec", "triggers"},
		LastVersion:   {"status", "lastVersion"},
	},
	api.KindBuild: {
		SourceURI:     {"spec", "source", "git", "uri"},
		OutputTo:      {"spec", "output", "to"},
		BuildStrategy: {"spec", "strategy"},
		BuildStatus:   {"status", "phase"},
		BuildMessage:  {"status", "message"},
		BuildPodName:  {"podName"},
		TriggeredBy:   {"spec", "triggeredBy"},
	},
	api.KindBuildRequest: {
		BuildRequestTo: {"from"},
		TriggeredBy:    {"triggeredBy"},
	},
	api.KindImageStream: {
		DockerImageRepository:       {"spec", "dockerImageRepository"},
		StatusDockerImageRepository: {"status", "dockerImageRepository"},
		Tags:                        {"spec", "tags"},
	},
	api.KindImageStreamImport: {
		ImportImages: {"spec", "images"},
		ImportImport: {"spec", "import"},
	},
	api.KindRoute: {
		Host:       {"spec", "host"},
		Path:       {"spec", "path"},
		ToKind:     {"spec", "to", "kind"},
		ToName:     {"spec", "to", "name"},
		TargetPort: {"spec", "port", "targetPort"},
		TLS:        {"spec", "tls"},
	},
	api.KindProject: {
		DisplayName:  {"metadata", "annotations", "openshift.io/display-name"},
		Description:  {"metadata", "annotations", "openshift.io/description"},
		ProjectPhase: {"status", "phase"},
	},
	api.KindProjectRequest: {
		DisplayName: {"displayName"},
		Description: {"description"},
	},
	api.KindNamespace: {
		DisplayName:  {"metadata", "annotations", "openshift.io/display-name"},
		Description:  {"metadata", "annotations", "openshift.io/description"},
		ProjectPhase: {"status", "phase"},
	},
	api.KindSecret: {
		Data:       {"data"},
		StringData: {"stringData"},
		SecretType: {"type"},
	},
	api.KindConfigMap: {
		Data: {"data"},
	},
	api.KindServiceAccount: {
		Secrets:          {"secrets"},
		ImagePullSecrets: {"imagePullSecrets"},
	},
	api.KindEvent: {
		Reason:         {"reason"},
		Message:        {"message"},
		InvolvedObject: {"involvedObject"},
		EventType:      {"type"},
		Count:          {"count"},
	},
	api.KindLimitRange: {
		Limits: {"spec", "limits"},
	},
	api.KindResourceQuota: {
		Hard: {"spec", "hard"},
		Used: {"status", "used"},
	},
	api.KindPersistentVolume: {
		AccessModes:   {"spec", "accessModes"},
		Capacity:      {"spec", "capacity"},
		ClaimRef:      {"spec", "claimRef"},
		ReclaimPolicy: {"spec", "persistentVolumeReclaimPolicy"},
		Phase:         {"status", "phase"},
	},
	api.KindPersistentVolumeClaim: {
		AccessModes: {"spec", "accessModes"},
		Requests:    {"spec", "resources", "requests"},
		VolumeName:  {"spec", "volumeName"},
		Capacity:    {"status", "capacity"},
		Phase:       {"status", "phase"},
	},
	api.KindTemplate: {
		Objects:        {"objects"},
		Parameters:     {"parameters"},
		TemplateLabels: {"labels"},
	},
	api.KindPolicy: {
		PolicyRoles: {"roles"},
	},
	api.KindPolicyBinding: {
		RoleBindings: {"roleBindings"},
	},
	api.KindRole: {
		Rules: {"rules"},
	},
	api.KindRoleBinding: {
		RoleRef:    {"roleRef"},
		Subjects:   {"subjects"},
		UserNames:  {"userNames"},
		GroupNames: {"groupNames"},
	},
	api.KindOAuthAccessToken: {
		ClientName: {"clientName"},
		UserName:   {"userName"},
		Scopes:     {"scopes"},
		ExpiresIn:  {"expiresIn"},
	},
	api.KindOAuthAuthorizeToken: {
		ClientName: {"clientName"},
		UserName:   {"userName"},
		Scopes:     {"scopes"},
		ExpiresIn:  {"expiresIn"},
	},
	api.KindOAuthClient: {
		Secret:       {"secret"},
		RedirectURIs: {"redirectURIs"},
	},
	api.KindOAuthClientAuthorization: {
		ClientName: {"clientName"},
		UserName:   {"userName"},
		Scopes:     {"scopes"},
	},
	api.KindUser: {
		FullName:   {"fullName"},
		Identities: {"identities"},
		Groups:     {"groups"},
	},
	api.KindDeployment: {
		Replicas:        {"spec", "replicas"},
		ReplicasCurrent: {"status", "replicas"},
		ReadyReplicas:   {"status", "readyReplicas"},
		MatchLabels:     {"spec", "selector", "matchLabels"},
		Containers:      {"spec", "template", "spec", "containers"},
	},
	api.KindReplicaSet: {
		Replicas:        {"spec", "replicas"},
		ReplicasCurrent: {"status", "replicas"},
		ReadyReplicas:   {"status", "readyReplicas"},
		MatchLabels:     {"spec", "selector", "matchLabels"},
		Containers:      {"spec", "template", "spec", "containers"},
	},
	api.KindJob: {
		Completions: {"spec", "completions"},
		Succeeded:   {"status", "succeeded"},
		Failed:      {"status", "failed"},
		Containers:  {"spec", "template", "spec", "containers"},
	},
	api.KindIngress: {
		Rules:            {"spec", "rules"},
		TLS:              {"spec", "tls"},
		IngressClassName: {"spec", "ingressClassName"},
	},
	api.KindStatus: {
		StatusCode:    {"code"},
		StatusReason:  {"reason"},
		StatusMessage: {"message"},
		StatusStatus:  {"status"},
		StatusDetails: {"details"},
	},
}
