package api

import "strings"

// Well-known kinds shipped with the client.
// OpenShift kinds
const (
	KindBuild                    = "Build"
	KindBuildConfig              = "BuildConfig"
	KindBuildRequest             = "BuildRequest"
	KindDeploymentConfig         = "DeploymentConfig"
	KindImageStream              = "ImageStream"
	KindImageStreamImport        = "ImageStreamImport"
	KindOAuthAccessToken         = "OAuthAccessToken"
	KindOAuthAuthorizeToken      = "OAuthAuthorizeToken"
	KindOAuthClient              = "OAuthClient"
	KindOAuthClientAuthorization = "OAuthClientAuthorization"
	KindPolicy                   = "Policy"
	KindPolicyBinding            = "PolicyBinding"
	KindProject                  = "Project"
	KindProjectRequest           = "ProjectRequest"
	KindRole                     = "Role"
	KindRoleBinding              = "RoleBinding"
	KindRoute                    = "Route"
	KindTemplate                 = "Template"
	KindUser                     = "User"
)

// Kubernetes kinds
const (
	KindConfigMap             = "ConfigMap"
	KindEvent                 = "Event"
	KindLimitRange            = "LimitRange"
	KindNamespace             = "Namespace"
	KindPersistentVolume      = "PersistentVolume"
	KindPersistentVolumeClaim = "PersistentVolumeClaim"
	KindPod                   = "Pod"
	KindReplicationController = "ReplicationController"
	KindResourceQuota         = "ResourceQuota"
	KindSecret                = "Secret"
	KindService               = "Service"
	KindServiceAccount        = "ServiceAccount"
	KindStatus                = "Status"
)

// Extension group kinds
const (
	KindDeployment = "Deployment"
	KindReplicaSet = "ReplicaSet"
	KindJob        = "Job"
	KindIngress    = "Ingress"
)

// KindList is the kind of a heterogeneous collection.
const KindList = "List"

// ListSuffix marks a collection kind, e.g. PodList.
const ListSuffix = "List"

// Document field names shared by every resource.
const (
	FieldKind       = "kind"
	FieldAPIVersion = "apiVersion"
	FieldItems      = "items"
)

// IsListKind reports whether kind names a collection.
func IsListKind(kind string) bool {
	return strings.HasSuffix(kind, ListSuffix)
}

// ListKind returns the collection kind for a singular kind.
func ListKind(kind string) string {
	return kind + ListSuffix
}

// ItemKind returns the singular kind for a collection kind. The bare
// "List" kind has no singular form and yields "".
func ItemKind(listKind string) string {
	return strings.TrimSuffix(listKind, ListSuffix)
}
