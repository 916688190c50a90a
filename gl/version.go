// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version is a driver or browser reported API version. Embedded versions
// describe OpenGL ES; browser contexts report the OpenGL ES version their
// WebGL level corresponds to.
type Version struct {
	Major, Minor uint32
	// Patch is nil when the driver did not report a release number.
	Patch *uint32
	// Embedded is set for OpenGL ES and WebGL versions.
	Embedded bool
	// VendorInfo is the free form text following the version number.
	VendorInfo string
}

var esPrefixes = []string{"OpenGL ES-CM ", "OpenGL ES-CL ", "OpenGL ES "}

// NewVersion returns a desktop version.
func NewVersion(major, minor uint32, patch *uint32, vendorInfo string) Version {
	return Version{Major: major, Minor: minor, Patch: patch, VendorInfo: vendorInfo}
}

// NewEmbeddedVersion returns an OpenGL ES version.
func NewEmbeddedVersion(major, minor uint32, vendorInfo string) Version {
	return Version{Major: major, Minor: minor, Embedded: true, VendorInfo: vendorInfo}
}

// ParseVersion parses the result of glGetString(GL_VERSION) or the
// browser's VERSION parameter. Accepted forms are
//
//	<major>.<minor>[.<release>] [vendor info]
//	OpenGL ES[-CM|-CL] <major>.<minor> [vendor info]
//	WebGL <major>.<minor> [vendor info]
//
// WebGL version N maps to OpenGL ES version N+1.
func ParseVersion(raw string) (Version, error) {
	var v Version
	src := strings.TrimSpace(raw)
	webgl := false
	for _, p := range esPrefixes {
		if rest, ok := strings.CutPrefix(src, p); ok {
			v.Embedded = true
			src = rest
			break
		}
	}
	if !v.Embedded {
		if rest, ok := strings.CutPrefix(src, "WebGL "); ok {
			webgl = true
			v.Embedded = true
			src = rest
		}
	}
	num, info, _ := strings.Cut(src, " ")
	v.VendorInfo = strings.TrimSpace(info)
	parts := strings.Split(num, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, &VersionError{Raw: raw, Reason: "expected <major>.<minor>[.<release>]"}
	}
	var nums [3]uint32
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, &VersionError{Raw: raw, Reason: fmt.Sprintf("bad number %q", p)}
		}
		nums[i] = uint32(n)
	}
	v.Major, v.Minor = nums[0], nums[1]
	if len(parts) == 3 {
		patch := nums[2]
		v.Patch = &patch
	}
	if webgl {
		v.Major++
	}
	return v, nil
}

// Compare orders v and o by major, then minor version. Release numbers and
// vendor info do not take part. The ok result is false when v and o are of
// different kinds, in which case they are not ordered.
func (v Version) Compare(o Version) (c int, ok bool) {
	if v.Embedded != o.Embedded {
		return 0, false
	}
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c, true
	}
	return cmp.Compare(v.Minor, o.Minor), true
}

// AtLeast reports whether v is of the same kind as o and not older.
func (v Version) AtLeast(o Version) bool {
	c, ok := v.Compare(o)
	return ok && c >= 0
}

// AtLeastGL reports whether v is a desktop version of at least major.minor.
func (v Version) AtLeastGL(major, minor uint32) bool {
	return v.AtLeast(NewVersion(major, minor, nil, ""))
}

// AtLeastES reports whether v is an embedded version of at least
// major.minor.
func (v Version) AtLeastES(major, minor uint32) bool {
	return v.AtLeast(NewEmbeddedVersion(major, minor, ""))
}

func (v Version) String() string {
	var b strings.Builder
	if v.Embedded {
		b.WriteString("OpenGL ES ")
	}
	fmt.Fprintf(&b, "%d.%d", v.Major, v.Minor)
	if v.Patch != nil {
		fmt.Fprintf(&b, ".%d", *v.Patch)
	}
	if v.VendorInfo != "" {
		b.WriteByte(' ')
		b.WriteString(v.VendorInfo)
	}
	return b.String()
}
