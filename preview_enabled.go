//go:build fontkit_preview

package fontkit

const previewBuild = true
