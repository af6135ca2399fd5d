// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable replaces build metadata that was not injected at link time.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit the client binary was built
// from. The values come from -ldflags and are shown on startup and in the
// about overlay of the upload page.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values become
// [NotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// String renders the startup banner lines.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
