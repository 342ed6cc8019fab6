//go:build !fontkit_preview

package fontkit

// previewBuild is true when built with the fontkit_preview tag. Preview
// builds skip locale substitution so layout tools show the nominal font.
const previewBuild = false
