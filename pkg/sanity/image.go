package sanity

import (
	"fmt"
	"strings"
)

// ImageRef is the opaque asset reference carried on image fields,
// shaped like "image-<id>-<width>x<height>.<format>".
type ImageRef struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
}

// ImageURL derives the CDN URL for an asset reference. A missing or
// malformed reference yields an empty string, never an error.
func (c *Client) ImageURL(image *ImageRef) string {
	if image == nil {
		return ""
	}
	return ResolveImageURL(c.projectID, c.dataset, image.Asset.Ref)
}

// ResolveImageURL composes the image CDN URL from a raw asset reference.
func ResolveImageURL(projectID, dataset, ref string) string {
	if ref == "" {
		return ""
	}

	parts := strings.SplitN(ref, "-", 3)
	if len(parts) != 3 {
		return ""
	}
	id, spec := parts[1], parts[2]
	if id == "" || !validImageSpec(spec) {
		return ""
	}

	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s", projectID, dataset, id, spec)
}

// validImageSpec checks the trailing "<width>x<height>.<format>" portion.
func validImageSpec(spec string) bool {
	dot := strings.LastIndexByte(spec, '.')
	if dot <= 0 || dot == len(spec)-1 {
		return false
	}
	dims := spec[:dot]
	w, h, ok := strings.Cut(dims, "x")
	if !ok || w == "" || h == "" {
		return false
	}
	return isDigits(w) && isDigits(h)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
