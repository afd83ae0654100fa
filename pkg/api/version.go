package api

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// ParseVersion splits an apiVersion such as "build.openshift.io/v1" into
// its group and version. Core versions ("v1") have an empty group.
func ParseVersion(apiVersion string) (schema.GroupVersion, error) {
	return schema.ParseGroupVersion(apiVersion)
}

// QualifiedVersion joins a group and version into an apiVersion. A group
// that already carries a version ("group/version") is returned as is.
func QualifiedVersion(group, version string) string {
	if group == "" {
		return version
	}
	if gv, err := schema.ParseGroupVersion(group); err == nil && gv.Group != "" && gv.Version != "" {
		return gv.String()
	}
	return schema.GroupVersion{Group: group, Version: version}.String()
}
