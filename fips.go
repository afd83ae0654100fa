//go:build fips
// +build fips

package main

/*
Compiled only with BUILD_TAGS=fips.

Importing fipsonly restricts the TLS connections restclient opens to API
servers (discovery and kubeconfig-authenticated requests) to FIPS approved
settings. Requires a Go toolchain built with GOEXPERIMENT=systemcrypto.
*/

import (
	_ "crypto/tls/fipsonly"
) //nolint:golint,unused
