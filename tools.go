//go:build tools

// Build-tag-guarded file pinning developer tooling versions in go.mod,
// the way daoran-rdk pins its own lint/CI binaries without making them a
// runtime dependency of the library.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/rhysd/actionlint/cmd/actionlint"
)
