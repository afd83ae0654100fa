package registry

import (
	"github.com/openshift/restclient-go/pkg/api"
	"github.com/openshift/restclient-go/pkg/model"
)

// API groups of the built-in kinds
const (
	GroupCore          = ""
	GroupBuild         = "build.openshift.io"
	GroupApps          = "apps.openshift.io"
	GroupImage         = "image.openshift.io"
	GroupOAuth         = "oauth.openshift.io"
	GroupProject       = "project.openshift.io"
	GroupAuthorization = "authorization.openshift.io"
	GroupRoute         = "route.openshift.io"
	GroupTemplate      = "template.openshift.io"
	GroupUser          = "user.openshift.io"
)

func builtinDefinitions() []Definition {
	return []Definition{
		{Kind: api.KindBuild, Group: GroupBuild, New: model.NewBuild},
		{Kind: api.KindBuildConfig, Group: GroupBuild, New: model.NewBuildConfig},
		{Kind: api.KindBuildRequest, Group: GroupBuild, New: model.NewBuildRequest},
		{Kind: api.KindDeploymentConfig, Group: GroupApps, New: model.NewDeploymentConfig},
		{Kind: api.KindImageStream, Group: GroupImage, New: model.NewImageStream},
		{Kind: api.KindImageStreamImport, Group: GroupImage, New: model.NewImageStreamImport},
		{Kind: api.KindNamespace, Group: GroupCore, New: model.NewNamespace},
		{Kind: api.KindOAuthAccessToken, Group: GroupOAuth, New: model.NewOAuthAccessToken},
		{Kind: api.KindOAuthAuthorizeToken, Group: GroupOAuth, New: model.NewOAuthAuthorizeToken},
		{Kind: api.KindOAuthClient, Group: GroupOAuth, New: model.NewOAuthClient},
		{Kind: api.KindOAuthClientAuthorization, Group: GroupOAuth, New: model.NewOAuthClientAuthorization},
		{Kind: api.KindProject, Group: GroupProject, New: model.NewProject},
		{Kind: api.KindProjectRequest, Group: GroupProject, New: model.NewProjectRequest},
		{Kind: api.KindPolicy, Group: GroupAuthorization, New: model.NewPolicy},
		{Kind: api.KindPolicyBinding, Group: GroupAuthorization, New: model.NewPolicyBinding},
		{Kind: api.KindRole, Group: GroupAuthorization, New: model.NewRole},
		{Kind: api.KindRoleBinding, Group: GroupAuthorization, New: model.NewRoleBinding},
		{Kind: api.KindRoute, Group: GroupRoute, New: model.NewRoute},
		{Kind: api.KindTemplate, Group: GroupTemplate, New: model.NewTemplate},
		{Kind: api.KindUser, Group: GroupUser, New: model.NewUser},
		{Kind: api.KindEvent, Group: GroupCore, New: model.NewEvent},
		{Kind: api.KindLimitRange, Group: GroupCore, New: model.NewLimitRange},
		{Kind: api.KindPod, Group: GroupCore, New: model.NewPod},
		{Kind: api.KindPersistentVolumeClaim, Group: GroupCore, New: model.NewPersistentVolumeClaim},
		{Kind: api.KindPersistentVolume, Group: GroupCore, New: model.NewPersistentVolume},
		{Kind: api.KindResourceQuota, Group: GroupCore, New: model.NewResourceQuota},
		{Kind: api.KindReplicationController, Group: GroupCore, New: model.NewReplicationController},
		{Kind: api.KindStatus, Group: GroupCore, New: model.NewStatus},
		{Kind: api.KindService, Group: GroupCore, New: model.NewService},
		{Kind: api.KindSecret, Group: GroupCore, New: model.NewSecret},
		{Kind: api.KindServiceAccount, Group: GroupCore, New: model.NewServiceAccount},
		{Kind: api.KindConfigMap, Group: GroupCore, New: model.NewConfigMap},
	}
}
