package model

import (
	"github.com/openshift/restclient-go/pkg/client"
	"github.com/openshift/restclient-go/pkg/properties"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Policy holds the roles of a namespace.
type Policy struct{ Base }

// NewPolicy implements Constructor.
func NewPolicy(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Policy{Base: b} })
}

// RoleNames returns the names of the roles in the policy.
func (p *Policy) RoleNames() []string { return refNames(p.ObjectsField(properties.PolicyRoles)) }

// PolicyBinding holds the role bindings of a namespace.
type PolicyBinding struct{ Base }

// NewPolicyBinding implements Constructor.
func NewPolicyBinding(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &PolicyBinding{Base: b} })
}

// RoleBindingNames returns the names of the bindings in the policy.
func (p *PolicyBinding) RoleBindingNames() []string {
	return refNames(p.ObjectsField(properties.RoleBindings))
}

// Role is a set of rules.
type Role struct{ Base }

// NewRole implements Constructor.
func NewRole(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Role{Base: b} })
}

// RuleCount returns the number of rules.
func (r *Role) RuleCount() int { return len(r.SliceField(properties.Rules)) }

// RoleBinding grants a role to users and groups.
type RoleBinding struct{ Base }

// NewRoleBinding implements Constructor.
func NewRoleBinding(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &RoleBinding{Base: b} })
}

// RoleName returns the bound role.
func (r *RoleBinding) RoleName() string {
	v, ok := r.Field(properties.RoleRef)
	if !ok {
		return ""
	}
	m, _ := v.(map[string]interface{})
	name, _ := m["name"].(string)
	return name
}

// UserNames returns the users the role is granted to.
func (r *RoleBinding) UserNames() []string { return r.stringList(properties.UserNames) }

// GroupNames returns the groups the role is granted to.
func (r *RoleBinding) GroupNames() []string { return r.stringList(properties.GroupNames) }

// Subjects returns the subjects as "Kind/name".
func (r *RoleBinding) Subjects() []string {
	var out []string
	for _, s := range r.ObjectsField(properties.Subjects) {
		kind, _ := s["kind"].(string)
		name, _ := s["name"].(string)
		out = append(out, kind+"/"+name)
	}
	return out
}

// OAuthAccessToken is a token issued to a client on behalf of a user.
type OAuthAccessToken struct{ Base }

// NewOAuthAccessToken implements Constructor.
func NewOAuthAccessToken(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &OAuthAccessToken{Base: b} })
}

// ClientName returns the client the token was issued to.
func (t *OAuthAccessToken) ClientName() string { return t.StringField(properties.ClientName) }

// UserName returns the user the token acts for.
func (t *OAuthAccessToken) UserName() string { return t.StringField(properties.UserName) }

// Scopes returns the granted scopes.
func (t *OAuthAccessToken) Scopes() []string { return t.stringList(properties.Scopes) }

// ExpiresIn returns the lifetime in seconds.
func (t *OAuthAccessToken) ExpiresIn() int64 { return t.Int64Field(properties.ExpiresIn) }

// OAuthAuthorizeToken is an authorization code.
type OAuthAuthorizeToken struct{ Base }

// NewOAuthAuthorizeToken implements Constructor.
func NewOAuthAuthorizeToken(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &OAuthAuthorizeToken{Base: b} })
}

// ClientName returns the client the code was issued to.
func (t *OAuthAuthorizeToken) ClientName() string { return t.StringField(properties.ClientName) }

// UserName returns the user the code acts for.
func (t *OAuthAuthorizeToken) UserName() string { return t.StringField(properties.UserName) }

// Scopes returns the granted scopes.
func (t *OAuthAuthorizeToken) Scopes() []string { return t.stringList(properties.Scopes) }

// ExpiresIn returns the lifetime in seconds.
func (t *OAuthAuthorizeToken) ExpiresIn() int64 { return t.Int64Field(properties.ExpiresIn) }

// OAuthClient is an application allowed to request tokens.
type OAuthClient struct{ Base }

// NewOAuthClient implements Constructor.
func NewOAuthClient(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &OAuthClient{Base: b} })
}

// Secret returns the client secret.
func (o *OAuthClient) Secret() string { return o.StringField(properties.Secret) }

// RedirectURIs returns the allowed redirect targets.
func (o *OAuthClient) RedirectURIs() []string { return o.stringList(properties.RedirectURIs) }

// OAuthClientAuthorization records a user's grant to a client.
type OAuthClientAuthorization struct{ Base }

// NewOAuthClientAuthorization implements Constructor.
func NewOAuthClientAuthorization(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &OAuthClientAuthorization{Base: b} })
}

// ClientName returns the authorized client.
func (a *OAuthClientAuthorization) ClientName() string { return a.StringField(properties.ClientName) }

// UserName returns the user who granted the authorization.
func (a *OAuthClientAuthorization) UserName() string { return a.StringField(properties.UserName) }

// Scopes returns the granted scopes.
func (a *OAuthClientAuthorization) Scopes() []string { return a.stringList(properties.Scopes) }

// Status is the result the server returns for failed or non-object calls.
type Status struct{ Base }

// NewStatus implements Constructor.
func NewStatus(doc *unstructured.Unstructured, c client.Client, keys properties.KeyMap) (Resource, error) {
	return build(doc, c, keys, func(b Base) Resource { return &Status{Base: b} })
}

// Code returns the HTTP status code.
func (s *Status) Code() int64 { return s.Int64Field(properties.StatusCode) }

// Reason returns the machine readable reason, e.g. "NotFound".
func (s *Status) Reason() string { return s.StringField(properties.StatusReason) }

// Message returns the human readable description.
func (s *Status) Message() string { return s.StringField(properties.StatusMessage) }

// IsFailure reports whether the status describes a failed call.
func (s *Status) IsFailure() bool {
	return s.StringField(properties.StatusStatus) == metav1.StatusFailure
}

// AsStatus decodes the status into its typed form.
func (s *Status) AsStatus() (*metav1.Status, error) {
	out := &metav1.Status{}
	return out, s.convert(out)
}
